package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/happypaws-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/dto"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/timezone"
)

// Window selects which part of an owner's appointments to list, relative to
// the clock's current day.
type Window int

const (
	WindowUpcoming Window = iota // date >= today
	WindowHistory                // date < today
	WindowToday                  // date == today, not cancelled
)

type ListOwnerAppointments struct {
	repo  domain.Repository
	clock timezone.Clock
}

func NewListOwnerAppointments(
	repo domain.Repository,
	clock timezone.Clock,
) *ListOwnerAppointments {
	return &ListOwnerAppointments{
		repo:  repo,
		clock: clock,
	}
}

func (uc *ListOwnerAppointments) Execute(
	ctx context.Context,
	ownerID string,
	window Window,
) ([]dto.AppointmentListDTO, error) {

	today := timezone.Today(uc.clock)
	filter := domain.ListFilter{OwnerID: ownerID}

	switch window {
	case WindowHistory:
		filter.BeforeDate = today
	case WindowToday:
		filter.Date = today
		filter.ExcludeCancelled = true
	default:
		filter.FromDate = today
	}

	appointments, _, err := uc.repo.ListAppointments(ctx, filter)
	if err != nil {
		return nil, err
	}

	return dto.FromAppointments(appointments), nil
}
