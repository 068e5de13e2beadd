package handlers

import (
	"net/http"

	"catalog-api/helper"

	"github.com/gin-gonic/gin"
)

// sendServiceError routes a typed service error to the matching response
// helper so every handler surfaces the same envelope.
func sendServiceError(u *helper.HTTPHelper, c *gin.Context, err error) {
	switch u.GetStatusCode(err) {
	case http.StatusNotFound:
		u.SendNotFoundError(c, err.Error(), u.EmptyJsonMap())
	case http.StatusUnauthorized:
		u.SendUnauthorizedError(c, err.Error(), u.EmptyJsonMap())
	case http.StatusForbidden:
		u.SendForbiddenError(c, err.Error(), u.EmptyJsonMap())
	case http.StatusConflict:
		u.SendConflictError(c, err.Error(), u.EmptyJsonMap())
	case http.StatusInternalServerError:
		u.SendDatabaseError(c, err.Error(), u.EmptyJsonMap())
	default:
		u.SendBadRequest(c, err.Error(), u.EmptyJsonMap())
	}
}

// userIDFromContext returns the authenticated user id, or zero for an
// anonymous request.
func userIDFromContext(c *gin.Context) uint {
	if v, exists := c.Get("user_id"); exists {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

func isAdminFromContext(c *gin.Context) bool {
	if v, exists := c.Get("is_admin"); exists {
		if isAdmin, ok := v.(bool); ok {
			return isAdmin
		}
	}
	return false
}
