package account

import (
	"context"

	"github.com/BruksfildServices01/happypaws-scheduler/internal/auth"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/models"
)

type GetProfile struct {
	repo Repository
}

func NewGetProfile(repo Repository) *GetProfile {
	return &GetProfile{repo: repo}
}

func (uc *GetProfile) Execute(ctx context.Context, p auth.Principal) (*models.User, error) {
	return uc.repo.GetUser(ctx, p.ID)
}
