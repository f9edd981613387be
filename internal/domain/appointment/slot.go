package appointment

import (
	"time"

	"github.com/BruksfildServices01/happypaws-scheduler/internal/httperr"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/timezone"
)

// Slot is a (date, time) pair that holds at most one active appointment.
type Slot struct {
	Date string
	Time string
}

// ParseSlot validates the wire formats and returns them normalized.
func ParseSlot(date, clock string) (Slot, error) {
	d, err := time.Parse(timezone.DateLayout, date)
	if err != nil {
		return Slot{}, httperr.ErrBusiness("invalid_date")
	}
	t, err := time.Parse(timezone.TimeLayout, clock)
	if err != nil {
		return Slot{}, httperr.ErrBusiness("invalid_time")
	}
	return Slot{
		Date: d.Format(timezone.DateLayout),
		Time: t.Format(timezone.TimeLayout),
	}, nil
}

func ParseDate(date string) (string, error) {
	d, err := time.Parse(timezone.DateLayout, date)
	if err != nil {
		return "", httperr.ErrBusiness("invalid_date")
	}
	return d.Format(timezone.DateLayout), nil
}
