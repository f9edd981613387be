package appointment

import (
	"context"

	"github.com/BruksfildServices01/happypaws-scheduler/internal/audit"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/auth"
	domain "github.com/BruksfildServices01/happypaws-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/models"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/timezone"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit audit.Sink
	clock timezone.Clock
}

func NewCancelAppointment(
	repo domain.Repository,
	audit audit.Sink,
	clock timezone.Clock,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
		clock: clock,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	p auth.Principal,
	appointmentID string,
) (*models.Appointment, error) {

	ap, err := loadOwned(ctx, uc.repo, p, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := domain.Cancel(ap, uc.clock.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  p.ID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	return ap, nil
}
