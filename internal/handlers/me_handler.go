package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/happypaws-scheduler/internal/httperr"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/middleware"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/usecase/account"
)

type MeHandler struct {
	profile *account.GetProfile
}

func NewMeHandler(profile *account.GetProfile) *MeHandler {
	return &MeHandler{profile: profile}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	user, err := h.profile.Execute(c.Request.Context(), middleware.MustPrincipal(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, user)
}
