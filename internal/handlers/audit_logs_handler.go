package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/happypaws-scheduler/internal/audit"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/httperr"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logs *audit.Logger
}

func NewAuditLogsHandler(logs *audit.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	page := queryInt(c, "page", 1)
	if page <= 0 {
		page = 1
	}

	limit := queryInt(c, "limit", 50)
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	filter := audit.Filter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Limit:  limit,
		Offset: (page - 1) * limit,
	}

	// --------------------------------------------------
	// Optional date range, whole days
	// --------------------------------------------------

	if fromStr := c.Query("from"); fromStr != "" {
		from, err := time.Parse(timezone.DateLayout, fromStr)
		if err != nil {
			httperr.Respond(c, httperr.ErrBusiness("invalid_date"))
			return
		}
		filter.From = &from
	}

	if toStr := c.Query("to"); toStr != "" {
		to, err := time.Parse(timezone.DateLayout, toStr)
		if err != nil {
			httperr.Respond(c, httperr.ErrBusiness("invalid_date"))
			return
		}
		end := to.Add(24 * time.Hour)
		filter.To = &end
	}

	logs, total, err := h.logs.List(c.Request.Context(), filter)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Page(c, logs, total, page, limit)
}
