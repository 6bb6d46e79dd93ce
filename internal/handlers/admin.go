package handlers

import (
	"errors"
	"net/http"

	"restaurant_menu/internal/models"
	"restaurant_menu/internal/service"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// updateProfileRequest fields are all optional; omitted/empty fields leave
// the stored value unchanged.
type updateProfileRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// adminResponse is the public view of an admin. The password hash is never
// part of any outward-facing shape.
type adminResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Token    string `json:"token,omitempty"`
}

func newAdminResponse(a *models.Admin, token string) adminResponse {
	return adminResponse{ID: a.ID, Username: a.Username, Email: a.Email, Token: token}
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// @Summary      Register admin
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  registerRequest  true  "Credentials"
// @Success      201  {object}  adminResponse
// @Failure      400  {object}  map[string]string
// @Router       /api/admin/register [post]
func (h *Handler) register(c *gin.Context) {
	var input registerRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	admin, token, err := h.services.Admins.Register(c.Request.Context(), input.Username, input.Email, input.Password)
	if err != nil {
		if h.log != nil {
			h.log.Infow("admin_register_failed", "email", input.Email, "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, newAdminResponse(admin, token))
}

// @Summary      Login admin
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  loginRequest  true  "Credentials"
// @Success      200  {object}  adminResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/admin/login [post]
func (h *Handler) login(c *gin.Context) {
	var input loginRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	admin, token, err := h.services.Admins.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if h.log != nil {
			h.log.Infow("admin_login_failed", "email", input.Email, "err", err)
		}
		// One body for unknown email and wrong password alike.
		c.JSON(http.StatusUnauthorized, gin.H{"error": service.ErrInvalidCredentials.Error()})
		return
	}

	c.JSON(http.StatusOK, newAdminResponse(admin, token))
}

// @Summary      Get admin profile
// @Tags         admin
// @Produce      json
// @Success      200  {object}  adminResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/profile [get]
// @Security     BearerAuth
func (h *Handler) getProfile(c *gin.Context) {
	adminID, ok := adminIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing admin identity"})
		return
	}

	admin, err := h.services.Admins.GetProfile(c.Request.Context(), adminID)
	if err != nil {
		h.adminError(c, err, "admin_get_profile_failed", adminID)
		return
	}

	c.JSON(http.StatusOK, newAdminResponse(admin, ""))
}

// @Summary      Update admin profile
// @Description  Only provided fields change; the password is re-hashed when present. A fresh token is always returned.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  updateProfileRequest  true  "Fields to update"
// @Success      200  {object}  adminResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/profile [put]
// @Security     BearerAuth
func (h *Handler) updateProfile(c *gin.Context) {
	adminID, ok := adminIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing admin identity"})
		return
	}

	var input updateProfileRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	admin, token, err := h.services.Admins.UpdateProfile(c.Request.Context(), adminID, service.ProfileUpdate{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.adminError(c, err, "admin_update_profile_failed", adminID)
		return
	}

	c.JSON(http.StatusOK, newAdminResponse(admin, token))
}

// adminError maps admin service errors to HTTP statuses.
func (h *Handler) adminError(c *gin.Context, err error, logKey, adminID string) {
	if errors.Is(err, service.ErrAdminNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if h.log != nil {
		h.log.Errorw(logKey, "admin_id", adminID, "err", err)
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
