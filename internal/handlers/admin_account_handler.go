package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/happypaws-scheduler/internal/httperr"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/middleware"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/usecase/account"
)

type AdminAccountHandler struct {
	deleteUser *account.DeleteUser
	deletePet  *account.DeletePet
}

func NewAdminAccountHandler(deleteUser *account.DeleteUser, deletePet *account.DeletePet) *AdminAccountHandler {
	return &AdminAccountHandler{deleteUser: deleteUser, deletePet: deletePet}
}

func (h *AdminAccountHandler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "id", "user_not_found")
	if !ok {
		return
	}

	res, err := h.deleteUser.Execute(c.Request.Context(), middleware.MustPrincipal(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, res)
}

func (h *AdminAccountHandler) DeletePet(c *gin.Context) {
	id, ok := pathID(c, "id", "pet_not_found")
	if !ok {
		return
	}

	res, err := h.deletePet.Execute(c.Request.Context(), middleware.MustPrincipal(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, res)
}
