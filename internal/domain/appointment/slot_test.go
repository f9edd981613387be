package appointment

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/happypaws-scheduler/internal/httperr"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/models"
)

func TestParseSlot(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		time     string
		want     Slot
		wantCode string
	}{
		{name: "valid", date: "2025-06-01", time: "10:00", want: Slot{Date: "2025-06-01", Time: "10:00"}},
		{name: "single digit hour is normalized", date: "2025-06-01", time: "9:30", want: Slot{Date: "2025-06-01", Time: "09:30"}},
		{name: "bad date", date: "01/06/2025", time: "10:00", wantCode: "invalid_date"},
		{name: "impossible date", date: "2025-02-30", time: "10:00", wantCode: "invalid_date"},
		{name: "bad time", date: "2025-06-01", time: "25:00", wantCode: "invalid_time"},
		{name: "empty time", date: "2025-06-01", time: "", wantCode: "invalid_time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSlot(tt.date, tt.time)
			if tt.wantCode != "" {
				if !httperr.IsBusiness(err, tt.wantCode) {
					t.Fatalf("err = %v, want %s", err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTransitions_TerminalStatesAreFinal(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	for _, st := range []Status{StatusCancelled, StatusCompleted} {
		ap := &models.Appointment{Status: string(st)}

		if err := Cancel(ap, now); !httperr.IsKind(err, httperr.KindConflict) {
			t.Fatalf("Cancel from %s: err = %v, want conflict", st, err)
		}
		if err := Complete(ap, now); !httperr.IsKind(err, httperr.KindConflict) {
			t.Fatalf("Complete from %s: err = %v, want conflict", st, err)
		}
		if err := Reschedule(ap, RescheduleChange{Date: "2025-06-02", Time: "10:00"}); !httperr.IsKind(err, httperr.KindConflict) {
			t.Fatalf("Reschedule from %s: err = %v, want conflict", st, err)
		}
	}
}

func TestReschedule_SetsStatusAndFields(t *testing.T) {
	notes := "bring vaccination card"
	svc := ServiceDental
	ap := &models.Appointment{
		Date:        "2025-06-01",
		Time:        "10:00",
		ServiceType: string(ServiceCheckup),
		Status:      string(StatusConfirmed),
	}

	err := Reschedule(ap, RescheduleChange{
		Date:        "2025-06-03",
		Time:        "11:30",
		ServiceType: &svc,
		Notes:       &notes,
	})
	if err != nil {
		t.Fatalf("Reschedule: %v", err)
	}

	if ap.Status != string(StatusRescheduled) {
		t.Fatalf("status = %s, want Rescheduled", ap.Status)
	}
	if ap.Date != "2025-06-03" || ap.Time != "11:30" {
		t.Fatalf("slot = %s %s", ap.Date, ap.Time)
	}
	if ap.ServiceType != string(ServiceDental) || ap.Notes != notes {
		t.Fatalf("fields not applied: %+v", ap)
	}
}
