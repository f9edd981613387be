package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/happypaws-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/dto"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/httperr"
)

type AdminListInput struct {
	Date   string
	From   string
	To     string
	UserID string
	PetID  string
	Status string

	Page  int
	Limit int
}

type AdminListResult struct {
	Appointments []dto.AppointmentListDTO
	Total        int64
	Page         int
	Limit        int
}

const (
	defaultPageLimit = 50
	maxPageLimit     = 200
)

type AdminListAppointments struct {
	repo domain.Repository
}

func NewAdminListAppointments(repo domain.Repository) *AdminListAppointments {
	return &AdminListAppointments{repo: repo}
}

func (uc *AdminListAppointments) Execute(
	ctx context.Context,
	in AdminListInput,
) (*AdminListResult, error) {

	filter := domain.ListFilter{
		OwnerID: in.UserID,
		PetID:   in.PetID,
	}

	var err error
	if in.Date != "" {
		if filter.Date, err = domain.ParseDate(in.Date); err != nil {
			return nil, err
		}
	}
	if in.From != "" {
		if filter.FromDate, err = domain.ParseDate(in.From); err != nil {
			return nil, err
		}
	}
	if in.To != "" {
		if filter.ToDate, err = domain.ParseDate(in.To); err != nil {
			return nil, err
		}
	}
	if in.Status != "" {
		st := domain.Status(in.Status)
		if !st.Valid() {
			return nil, httperr.ErrBusiness("invalid_status")
		}
		filter.Status = st
	}

	page := in.Page
	if page <= 0 {
		page = 1
	}
	limit := in.Limit
	if limit <= 0 || limit > maxPageLimit {
		limit = defaultPageLimit
	}
	filter.Limit = limit
	filter.Offset = (page - 1) * limit

	appointments, total, err := uc.repo.ListAppointments(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &AdminListResult{
		Appointments: dto.FromAppointments(appointments),
		Total:        total,
		Page:         page,
		Limit:        limit,
	}, nil
}
