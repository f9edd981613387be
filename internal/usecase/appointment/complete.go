package appointment

import (
	"context"

	"github.com/BruksfildServices01/happypaws-scheduler/internal/audit"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/auth"
	domain "github.com/BruksfildServices01/happypaws-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/httperr"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/models"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/timezone"
)

type CompleteAppointment struct {
	repo  domain.Repository
	audit audit.Sink
	clock timezone.Clock
}

func NewCompleteAppointment(
	repo domain.Repository,
	audit audit.Sink,
	clock timezone.Clock,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:  repo,
		audit: audit,
		clock: clock,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	p auth.Principal,
	appointmentID string,
) (*models.Appointment, error) {

	if !p.Can(auth.CapCompleteAppointments) {
		return nil, httperr.ErrForbidden("forbidden")
	}

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := domain.Complete(ap, uc.clock.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  p.ID,
		Action:   "appointment_completed",
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	return ap, nil
}
