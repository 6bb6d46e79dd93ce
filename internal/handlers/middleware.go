package handlers

import (
	"errors"
	"net/http"
	"strings"

	"restaurant_menu/internal/service"

	"github.com/gin-gonic/gin"
)

const adminCtxKey = "adminId"

// adminIdentity is the access guard for protected routes. It runs as a
// single pass: extract the bearer token, verify it cryptographically (no
// store access), then confirm the admin still exists before attaching the
// identity to the request context. Any failure aborts with 401.
func (h *Handler) adminIdentity(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "missing Authorization header",
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid Authorization header format",
		})
		return
	}

	adminID, err := h.services.Admins.ParseToken(parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid or expired token",
		})
		return
	}

	// Token is valid but may reference a removed admin.
	if _, err := h.services.Admins.GetProfile(c.Request.Context(), adminID); err != nil {
		if errors.Is(err, service.ErrAdminNotFound) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "admin no longer exists",
			})
			return
		}
		if h.log != nil {
			h.log.Errorw("auth_resolve_admin_failed", "admin_id", adminID, "err", err)
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": "internal error",
		})
		return
	}

	c.Set(adminCtxKey, adminID)
	c.Next()
}

// adminIDFromCtx returns the admin id attached by adminIdentity.
func adminIDFromCtx(c *gin.Context) (string, bool) {
	v, ok := c.Get(adminCtxKey)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
