package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/happypaws-scheduler/internal/httperr"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/happypaws-scheduler/internal/usecase/appointment"
)

type AdminAppointmentHandler struct {
	list     *ucAppointment.AdminListAppointments
	listUser *ucAppointment.ListOwnerAppointments
	get      *ucAppointment.GetAppointment
	update   *ucAppointment.AdminUpdateAppointment
	remove   *ucAppointment.AdminDeleteAppointment
	complete *ucAppointment.CompleteAppointment
}

func NewAdminAppointmentHandler(
	list *ucAppointment.AdminListAppointments,
	listUser *ucAppointment.ListOwnerAppointments,
	get *ucAppointment.GetAppointment,
	update *ucAppointment.AdminUpdateAppointment,
	remove *ucAppointment.AdminDeleteAppointment,
	complete *ucAppointment.CompleteAppointment,
) *AdminAppointmentHandler {
	return &AdminAppointmentHandler{
		list:     list,
		listUser: listUser,
		get:      get,
		update:   update,
		remove:   remove,
		complete: complete,
	}
}

// AdminUpdateAppointmentRequest is a partial patch; omitted fields are kept.
type AdminUpdateAppointmentRequest struct {
	Date        *string `json:"date" binding:"omitempty,slotdate"`
	Time        *string `json:"time" binding:"omitempty,slottime"`
	ServiceType *string `json:"service_type" binding:"omitempty,servicetype"`
	Status      *string `json:"status" binding:"omitempty,apptstatus"`
	Notes       *string `json:"notes" binding:"omitempty,max=500"`
	PetID       *string `json:"pet_id" binding:"omitempty,uuid"`
}

// ======================================================
// LISTS
// ======================================================

func (h *AdminAppointmentHandler) List(c *gin.Context) {
	res, err := h.list.Execute(c.Request.Context(), ucAppointment.AdminListInput{
		Date:   c.Query("date"),
		From:   c.Query("from"),
		To:     c.Query("to"),
		UserID: c.Query("user_id"),
		PetID:  c.Query("pet_id"),
		Status: c.Query("status"),
		Page:   queryInt(c, "page", 1),
		Limit:  queryInt(c, "limit", 50),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Page(c, res.Appointments, res.Total, res.Page, res.Limit)
}

func (h *AdminAppointmentHandler) ListByDate(c *gin.Context) {
	res, err := h.list.Execute(c.Request.Context(), ucAppointment.AdminListInput{
		Date:  c.Param("date"),
		Page:  queryInt(c, "page", 1),
		Limit: queryInt(c, "limit", 200),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Page(c, res.Appointments, res.Total, res.Page, res.Limit)
}

func (h *AdminAppointmentHandler) UserHistory(c *gin.Context) {
	h.userWindow(c, ucAppointment.WindowHistory)
}

func (h *AdminAppointmentHandler) UserActive(c *gin.Context) {
	h.userWindow(c, ucAppointment.WindowUpcoming)
}

func (h *AdminAppointmentHandler) userWindow(c *gin.Context, w ucAppointment.Window) {
	userID, ok := pathID(c, "userID", "user_not_found")
	if !ok {
		return
	}

	items, err := h.listUser.Execute(c.Request.Context(), userID, w)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, items)
}

// ======================================================
// SINGLE APPOINTMENT
// ======================================================

func (h *AdminAppointmentHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id", "appointment_not_found")
	if !ok {
		return
	}

	ap, err := h.get.Execute(c.Request.Context(), middleware.MustPrincipal(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AdminAppointmentHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id", "appointment_not_found")
	if !ok {
		return
	}

	var req AdminUpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), middleware.MustPrincipal(c), id, ucAppointment.AdminUpdateInput{
		Date:        req.Date,
		Time:        req.Time,
		ServiceType: req.ServiceType,
		Status:      req.Status,
		Notes:       req.Notes,
		PetID:       req.PetID,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AdminAppointmentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id", "appointment_not_found")
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), middleware.MustPrincipal(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Empty(c)
}

func (h *AdminAppointmentHandler) Complete(c *gin.Context) {
	id, ok := pathID(c, "id", "appointment_not_found")
	if !ok {
		return
	}

	ap, err := h.complete.Execute(c.Request.Context(), middleware.MustPrincipal(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, ap)
}
