package appointment

import (
	"context"

	"github.com/BruksfildServices01/happypaws-scheduler/internal/audit"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/auth"
	domain "github.com/BruksfildServices01/happypaws-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/httperr"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/models"
)

type RescheduleAppointmentInput struct {
	Date        string
	Time        string
	ServiceType *string
	Notes       *string
}

type RescheduleAppointment struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewRescheduleAppointment(
	repo domain.Repository,
	audit audit.Sink,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	p auth.Principal,
	appointmentID string,
	in RescheduleAppointmentInput,
) (*models.Appointment, error) {

	slot, err := domain.ParseSlot(in.Date, in.Time)
	if err != nil {
		return nil, err
	}

	change := domain.RescheduleChange{
		Date:  slot.Date,
		Time:  slot.Time,
		Notes: in.Notes,
	}
	if in.ServiceType != nil {
		svc := domain.ServiceType(*in.ServiceType)
		if !svc.Valid() {
			return nil, httperr.ErrBusiness("invalid_service_type")
		}
		change.ServiceType = &svc
	}

	ap, err := loadOwned(ctx, uc.repo, p, appointmentID)
	if err != nil {
		return nil, err
	}

	from := map[string]any{"date": ap.Date, "time": ap.Time}

	if err := domain.Reschedule(ap, change); err != nil {
		return nil, err
	}

	if err := uc.repo.MoveAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  p.ID,
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]any{
			"from": from,
			"to":   map[string]any{"date": ap.Date, "time": ap.Time},
		},
	})

	return ap, nil
}

// loadOwned fetches an appointment the principal is allowed to manage.
func loadOwned(
	ctx context.Context,
	repo domain.Repository,
	p auth.Principal,
	appointmentID string,
) (*models.Appointment, error) {

	ap, err := repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if !p.CanActOn(ap.OwnerID) {
		return nil, httperr.ErrForbidden("not_owner")
	}
	return ap, nil
}
