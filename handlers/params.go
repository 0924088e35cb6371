package handlers

import (
	"strconv"

	"newsportal/middleware"
	"newsportal/models"

	"github.com/gin-gonic/gin"
)

// parseID reads a positive numeric path parameter.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// identity returns the caller resolved by the auth middleware, or the
// anonymous identity when the request carried no valid token.
func identity(c *gin.Context) models.Identity {
	actor, _ := middleware.CurrentIdentity(c)
	return actor
}
