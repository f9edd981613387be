package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/happypaws-scheduler/internal/domain/appointment"
)

// ListBookedTimes returns the occupied times of a day so clients can render
// the free slots.
type ListBookedTimes struct {
	repo domain.Repository
}

func NewListBookedTimes(repo domain.Repository) *ListBookedTimes {
	return &ListBookedTimes{repo: repo}
}

func (uc *ListBookedTimes) Execute(
	ctx context.Context,
	date string,
) ([]string, error) {

	day, err := domain.ParseDate(date)
	if err != nil {
		return nil, err
	}

	return uc.repo.ListBookedTimes(ctx, day)
}
