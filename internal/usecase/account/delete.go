package account

import (
	"context"

	"github.com/BruksfildServices01/happypaws-scheduler/internal/audit"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/auth"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/httperr"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/infra/repository"
)

// ======================================================
// DELETE USER
// ======================================================

type DeleteUser struct {
	repo  Repository
	audit audit.Sink
}

func NewDeleteUser(repo Repository, audit audit.Sink) *DeleteUser {
	return &DeleteUser{repo: repo, audit: audit}
}

// Execute removes the user, their pets with the pets' records, and every
// appointment they booked. Nothing is removed unless everything is.
func (uc *DeleteUser) Execute(
	ctx context.Context,
	p auth.Principal,
	userID string,
) (repository.CascadeResult, error) {

	if !p.Can(auth.CapManageAccounts) {
		return repository.CascadeResult{}, httperr.ErrForbidden("forbidden")
	}

	res, err := uc.repo.DeleteUserCascade(ctx, userID)
	if err != nil {
		return repository.CascadeResult{}, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  p.ID,
		Action:   "user_deleted",
		Entity:   "user",
		EntityID: userID,
		Metadata: res,
	})

	return res, nil
}

// ======================================================
// DELETE PET
// ======================================================

type DeletePet struct {
	repo  Repository
	audit audit.Sink
}

func NewDeletePet(repo Repository, audit audit.Sink) *DeletePet {
	return &DeletePet{repo: repo, audit: audit}
}

// Execute removes the pet and its records. Appointments booked for the pet
// stay in place.
func (uc *DeletePet) Execute(
	ctx context.Context,
	p auth.Principal,
	petID string,
) (repository.CascadeResult, error) {

	if !p.Can(auth.CapManageAccounts) {
		return repository.CascadeResult{}, httperr.ErrForbidden("forbidden")
	}

	res, err := uc.repo.DeletePetCascade(ctx, petID)
	if err != nil {
		return repository.CascadeResult{}, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  p.ID,
		Action:   "pet_deleted",
		Entity:   "pet",
		EntityID: petID,
		Metadata: res,
	})

	return res, nil
}
