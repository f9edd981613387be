package appointment

import (
	"context"

	"github.com/BruksfildServices01/happypaws-scheduler/internal/audit"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/auth"
	domain "github.com/BruksfildServices01/happypaws-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/httperr"
)

type AdminDeleteAppointment struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewAdminDeleteAppointment(
	repo domain.Repository,
	audit audit.Sink,
) *AdminDeleteAppointment {
	return &AdminDeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute hard-deletes the appointment and its entry in the owner's list.
func (uc *AdminDeleteAppointment) Execute(
	ctx context.Context,
	p auth.Principal,
	appointmentID string,
) error {

	if !p.Can(auth.CapManageAnyAppointment) {
		return httperr.ErrForbidden("forbidden")
	}

	if err := uc.repo.DeleteAppointment(ctx, appointmentID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  p.ID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: appointmentID,
	})

	return nil
}
