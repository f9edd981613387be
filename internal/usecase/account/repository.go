package account

import (
	"context"

	"github.com/BruksfildServices01/happypaws-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/models"
)

type Repository interface {
	CreateUser(ctx context.Context, u *models.User) error
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	DeleteUserCascade(ctx context.Context, userID string) (repository.CascadeResult, error)

	CreatePet(ctx context.Context, p *models.Pet) error
	ListPetsByOwner(ctx context.Context, ownerID string) ([]models.Pet, error)
	DeletePetCascade(ctx context.Context, petID string) (repository.CascadeResult, error)
}

var _ Repository = (*repository.AccountGormRepository)(nil)
