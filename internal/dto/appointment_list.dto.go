package dto

import "github.com/BruksfildServices01/happypaws-scheduler/internal/models"

type AppointmentListDTO struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	ServiceType string `json:"service_type"`
	Status      string `json:"status"`
	Notes       string `json:"notes"`
	PetID       string `json:"pet_id"`
	PetName     string `json:"pet_name"`
	OwnerID     string `json:"owner_id"`
}

func FromAppointments(aps []models.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		item := AppointmentListDTO{
			ID:          ap.ID,
			Date:        ap.Date,
			Time:        ap.Time,
			ServiceType: ap.ServiceType,
			Status:      ap.Status,
			Notes:       ap.Notes,
			PetID:       ap.PetID,
			OwnerID:     ap.OwnerID,
		}
		// the pet may have been deleted after booking
		if ap.Pet != nil {
			item.PetName = ap.Pet.Name
		}
		out = append(out, item)
	}
	return out
}
