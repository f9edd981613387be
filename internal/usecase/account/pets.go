package account

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/happypaws-scheduler/internal/audit"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/auth"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/httperr"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/models"
)

type CreatePetInput struct {
	Name    string
	Species string
	Breed   string
	Gender  string
	Age     string
}

type CreatePet struct {
	repo  Repository
	audit audit.Sink
}

func NewCreatePet(repo Repository, audit audit.Sink) *CreatePet {
	return &CreatePet{repo: repo, audit: audit}
}

func (uc *CreatePet) Execute(ctx context.Context, p auth.Principal, in CreatePetInput) (*models.Pet, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, httperr.ErrBusiness("invalid_pet_name")
	}

	gender := in.Gender
	if gender == "" {
		gender = "Unknown"
	}

	pet := &models.Pet{
		OwnerID: p.ID,
		Name:    name,
		Species: strings.TrimSpace(in.Species),
		Breed:   in.Breed,
		Gender:  gender,
		Age:     in.Age,
	}
	if err := uc.repo.CreatePet(ctx, pet); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  p.ID,
		Action:   "pet_created",
		Entity:   "pet",
		EntityID: pet.ID,
	})

	return pet, nil
}

type ListPets struct {
	repo Repository
}

func NewListPets(repo Repository) *ListPets {
	return &ListPets{repo: repo}
}

func (uc *ListPets) Execute(ctx context.Context, p auth.Principal) ([]models.Pet, error) {
	return uc.repo.ListPetsByOwner(ctx, p.ID)
}
