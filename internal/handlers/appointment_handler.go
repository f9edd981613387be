package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/happypaws-scheduler/internal/dto"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/httperr"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/middleware"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/models"
	ucAppointment "github.com/BruksfildServices01/happypaws-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create     *ucAppointment.CreateAppointment
	reschedule *ucAppointment.RescheduleAppointment
	cancel     *ucAppointment.CancelAppointment
	get        *ucAppointment.GetAppointment
	listOwn    *ucAppointment.ListOwnerAppointments
	booked     *ucAppointment.ListBookedTimes
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	reschedule *ucAppointment.RescheduleAppointment,
	cancel *ucAppointment.CancelAppointment,
	get *ucAppointment.GetAppointment,
	listOwn *ucAppointment.ListOwnerAppointments,
	booked *ucAppointment.ListBookedTimes,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:     create,
		reschedule: reschedule,
		cancel:     cancel,
		get:        get,
		listOwn:    listOwn,
		booked:     booked,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	PetID       string `json:"pet_id" binding:"required,uuid"`
	Date        string `json:"date" binding:"required,slotdate"`
	Time        string `json:"time" binding:"required,slottime"`
	ServiceType string `json:"service_type" binding:"required,servicetype"`
	Notes       string `json:"notes" binding:"max=500"`
}

type RescheduleAppointmentRequest struct {
	Date        string  `json:"date" binding:"required,slotdate"`
	Time        string  `json:"time" binding:"required,slottime"`
	ServiceType *string `json:"service_type" binding:"omitempty,servicetype"`
	Notes       *string `json:"notes" binding:"omitempty,max=500"`
}

// ======================================================
// RESPONSES
// ======================================================

func appointmentResponse(ap *models.Appointment) dto.AppointmentListDTO {
	return dto.FromAppointments([]models.Appointment{*ap})[0]
}

// ======================================================
// COMMANDS
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	ap, err := h.create.Execute(
		c.Request.Context(),
		middleware.MustPrincipal(c),
		ucAppointment.CreateAppointmentInput{
			PetID:       req.PetID,
			Date:        req.Date,
			Time:        req.Time,
			ServiceType: req.ServiceType,
			Notes:       req.Notes,
		},
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, appointmentResponse(ap))
}

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	id, ok := pathID(c, "id", "appointment_not_found")
	if !ok {
		return
	}

	var req RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	ap, err := h.reschedule.Execute(
		c.Request.Context(),
		middleware.MustPrincipal(c),
		id,
		ucAppointment.RescheduleAppointmentInput{
			Date:        req.Date,
			Time:        req.Time,
			ServiceType: req.ServiceType,
			Notes:       req.Notes,
		},
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, appointmentResponse(ap))
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c, "id", "appointment_not_found")
	if !ok {
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), middleware.MustPrincipal(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, appointmentResponse(ap))
}

// ======================================================
// QUERIES
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id", "appointment_not_found")
	if !ok {
		return
	}

	ap, err := h.get.Execute(c.Request.Context(), middleware.MustPrincipal(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, appointmentResponse(ap))
}

func (h *AppointmentHandler) ListUpcoming(c *gin.Context) {
	h.listWindow(c, ucAppointment.WindowUpcoming)
}

func (h *AppointmentHandler) ListHistory(c *gin.Context) {
	h.listWindow(c, ucAppointment.WindowHistory)
}

func (h *AppointmentHandler) ListReminders(c *gin.Context) {
	h.listWindow(c, ucAppointment.WindowToday)
}

func (h *AppointmentHandler) listWindow(c *gin.Context, w ucAppointment.Window) {
	items, err := h.listOwn.Execute(c.Request.Context(), middleware.MustPrincipal(c).ID, w)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, items)
}

func (h *AppointmentHandler) BookedTimes(c *gin.Context) {
	times, err := h.booked.Execute(c.Request.Context(), c.Param("date"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, times)
}
