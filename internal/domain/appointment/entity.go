package appointment

import (
	"time"

	"github.com/BruksfildServices01/happypaws-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

type RescheduleChange struct {
	Date        string
	Time        string
	ServiceType *ServiceType
	Notes       *string
}

func Reschedule(ap *models.Appointment, ch RescheduleChange) error {
	if err := CanReschedule(Status(ap.Status)); err != nil {
		return err
	}

	ap.Date = ch.Date
	ap.Time = ch.Time
	if ch.ServiceType != nil {
		ap.ServiceType = string(*ch.ServiceType)
	}
	if ch.Notes != nil {
		ap.Notes = *ch.Notes
	}
	ap.Status = string(StatusRescheduled)
	return nil
}
