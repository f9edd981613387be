package appointment

import (
	"context"

	"github.com/BruksfildServices01/happypaws-scheduler/internal/audit"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/auth"
	domain "github.com/BruksfildServices01/happypaws-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/httperr"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	PetID       string
	Date        string
	Time        string
	ServiceType string
	Notes       string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewCreateAppointment(
	repo domain.Repository,
	audit audit.Sink,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	p auth.Principal,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	slot, err := domain.ParseSlot(in.Date, in.Time)
	if err != nil {
		return nil, err
	}

	svc := domain.ServiceType(in.ServiceType)
	if !svc.Valid() {
		return nil, httperr.ErrBusiness("invalid_service_type")
	}

	// --------------------------------------------------
	// Pet must belong to the caller (admins book for the pet's owner)
	// --------------------------------------------------
	pet, err := uc.repo.GetPet(ctx, in.PetID)
	if err != nil {
		return nil, err
	}
	if !p.CanActOn(pet.OwnerID) {
		return nil, httperr.ErrNotFound("pet_not_found")
	}

	ap := &models.Appointment{
		Date:        slot.Date,
		Time:        slot.Time,
		ServiceType: string(svc),
		Status:      string(domain.InitialStatus()),
		Notes:       in.Notes,
		PetID:       pet.ID,
		OwnerID:     pet.OwnerID,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		if httperr.IsBusiness(err, "slot_already_booked") {
			uc.audit.Dispatch(audit.Event{
				ActorID:  p.ID,
				Action:   "appointment_conflict",
				Entity:   "appointment",
				Metadata: map[string]any{"date": slot.Date, "time": slot.Time},
			})
		}
		return nil, err
	}

	ap.Pet = pet

	uc.audit.Dispatch(audit.Event{
		ActorID:  p.ID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	return ap, nil
}
