package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/happypaws-scheduler/internal/httperr"
)

// pathID reads a uuid path parameter. Malformed ids can never match a row,
// so they are answered as not found.
func pathID(c *gin.Context, name, notFoundCode string) (string, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.Respond(c, httperr.ErrNotFound(notFoundCode))
		return "", false
	}
	return id.String(), true
}

func queryInt(c *gin.Context, key string, def int) int {
	n, err := strconv.Atoi(c.DefaultQuery(key, strconv.Itoa(def)))
	if err != nil {
		return def
	}
	return n
}

func bindError(c *gin.Context, err error) {
	httperr.BadRequest(c, "invalid_request", "Invalid request body: "+err.Error())
}
