package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"medroster/backend/pkg/response"
)

// pathID extracts a numeric path parameter.
// Writes a 400 response and returns false when the value is not a positive
// integer; callers should return immediately on ok=false.
func pathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, 10001, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}
