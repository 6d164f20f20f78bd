package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"schulhof.app/gradebook/pkg/apperror"
	"schulhof.app/gradebook/pkg/response"
)

// parseID reads the :id path parameter; on failure it writes the 400
// response and reports false.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("id must be a valid UUID"))
		return uuid.Nil, false
	}
	return id, true
}
