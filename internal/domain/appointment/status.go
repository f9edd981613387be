package appointment

import "github.com/BruksfildServices01/happypaws-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusConfirmed   Status = "Confirmed"
	StatusCancelled   Status = "Cancelled"
	StatusRescheduled Status = "Rescheduled"
	StatusCompleted   Status = "Completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusConfirmed, StatusCancelled, StatusRescheduled, StatusCompleted:
		return true
	}
	return false
}

// Active appointments hold their slot.
func (s Status) Active() bool {
	return s != StatusCancelled
}

func (s Status) Terminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

func InitialStatus() Status {
	return StatusConfirmed
}

// ===============================
// Service Type
// ===============================

type ServiceType string

const (
	ServiceVaccination ServiceType = "Vaccination"
	ServiceCheckup     ServiceType = "Checkup"
	ServiceGrooming    ServiceType = "Grooming"
	ServiceDental      ServiceType = "Dental"
)

func (t ServiceType) Valid() bool {
	switch t {
	case ServiceVaccination, ServiceCheckup, ServiceGrooming, ServiceDental:
		return true
	}
	return false
}

// ===============================
// Validations
// ===============================

// CanReschedule, CanCancel and CanComplete all reject terminal states.
func CanReschedule(current Status) error {
	if current.Terminal() {
		return httperr.ErrConflict("invalid_state")
	}
	return nil
}

func CanCancel(current Status) error {
	if current.Terminal() {
		return httperr.ErrConflict("invalid_state")
	}
	return nil
}

func CanComplete(current Status) error {
	if current.Terminal() {
		return httperr.ErrConflict("invalid_state")
	}
	return nil
}
