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

// AdminUpdateInput is a partial patch; nil fields are left untouched.
type AdminUpdateInput struct {
	Date        *string
	Time        *string
	ServiceType *string
	Status      *string
	Notes       *string
	PetID       *string
}

type AdminUpdateAppointment struct {
	repo  domain.Repository
	audit audit.Sink
	clock timezone.Clock
}

func NewAdminUpdateAppointment(
	repo domain.Repository,
	audit audit.Sink,
	clock timezone.Clock,
) *AdminUpdateAppointment {
	return &AdminUpdateAppointment{
		repo:  repo,
		audit: audit,
		clock: clock,
	}
}

func (uc *AdminUpdateAppointment) Execute(
	ctx context.Context,
	p auth.Principal,
	appointmentID string,
	in AdminUpdateInput,
) (*models.Appointment, error) {

	if !p.Can(auth.CapManageAnyAppointment) {
		return nil, httperr.ErrForbidden("forbidden")
	}

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	date, hm := ap.Date, ap.Time
	if in.Date != nil {
		date = *in.Date
	}
	if in.Time != nil {
		hm = *in.Time
	}
	slot, err := domain.ParseSlot(date, hm)
	if err != nil {
		return nil, err
	}
	ap.Date, ap.Time = slot.Date, slot.Time

	if in.ServiceType != nil {
		svc := domain.ServiceType(*in.ServiceType)
		if !svc.Valid() {
			return nil, httperr.ErrBusiness("invalid_service_type")
		}
		ap.ServiceType = string(svc)
	}

	if in.Status != nil {
		st := domain.Status(*in.Status)
		if !st.Valid() {
			return nil, httperr.ErrBusiness("invalid_status")
		}
		now := uc.clock.Now()
		switch {
		case st == domain.StatusCancelled && ap.CancelledAt == nil:
			ap.CancelledAt = &now
		case st == domain.StatusCompleted && ap.CompletedAt == nil:
			ap.CompletedAt = &now
		}
		ap.Status = string(st)
	}

	if in.Notes != nil {
		ap.Notes = *in.Notes
	}

	if in.PetID != nil && *in.PetID != ap.PetID {
		pet, err := uc.repo.GetPet(ctx, *in.PetID)
		if err != nil {
			return nil, err
		}
		ap.PetID = pet.ID
		ap.Pet = pet
	}

	// Admin edits are trusted, but the slot index still applies.
	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  p.ID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	return ap, nil
}
