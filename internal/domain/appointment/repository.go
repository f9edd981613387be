package appointment

import (
	"context"

	"github.com/BruksfildServices01/happypaws-scheduler/internal/models"
)

// ListFilter narrows appointment listings. Zero values disable a filter.
type ListFilter struct {
	OwnerID string
	PetID   string
	Status  Status

	Date       string // exact day
	FromDate   string // inclusive
	BeforeDate string // exclusive
	ToDate     string // inclusive

	ExcludeCancelled bool

	Limit  int
	Offset int
}

type Repository interface {
	// -------- Pet --------
	GetPet(
		ctx context.Context,
		petID string,
	) (*models.Pet, error)

	// -------- Appointment (create / conflict) --------

	// CreateAppointment checks the slot, inserts the appointment and links it
	// to the owner's appointment list in one transaction.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// MoveAppointment saves a new slot for an existing appointment, with the
	// same slot check as CreateAppointment (ignoring the appointment itself).
	MoveAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointment(
		ctx context.Context,
		appointmentID string,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		appointmentID string,
	) error

	// -------- Queries --------
	ListAppointments(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Appointment, int64, error)

	ListBookedTimes(
		ctx context.Context,
		date string,
	) ([]string, error)
}
