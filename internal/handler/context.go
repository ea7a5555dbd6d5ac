package handler

import (
	"taskboard/internal/middleware"
	"taskboard/internal/model"

	"github.com/gin-gonic/gin"
)

// currentUserID pulls the authenticated caller's id out of the gin context.
func currentUserID(c *gin.Context) (model.ID, bool) {
	v, exists := c.Get(middleware.UserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(model.ID)
	return id, ok
}
