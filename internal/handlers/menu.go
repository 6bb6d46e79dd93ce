package handlers

import (
	"errors"
	"net/http"

	"restaurant_menu/internal/service"

	"github.com/gin-gonic/gin"
)

type menuRequest struct {
	CategoryID  string `json:"category_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Image       string `json:"image"` // path returned by /api/upload; optional
	TimeMinutes int    `json:"time"`
	Slot        int    `json:"slot"`
}

func (r menuRequest) params() service.MenuParams {
	return service.MenuParams{
		CategoryID:  r.CategoryID,
		Name:        r.Name,
		Description: r.Description,
		Image:       r.Image,
		TimeMinutes: r.TimeMinutes,
		Slot:        r.Slot,
	}
}

// @Summary      Create menu item
// @Tags         menus
// @Accept       json
// @Produce      json
// @Param        body  body  menuRequest  true  "Menu item"
// @Success      201  {object}  models.Menu
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/menus [post]
// @Security     BearerAuth
func (h *Handler) createMenu(c *gin.Context) {
	var input menuRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	menu, err := h.services.Menus.Create(c.Request.Context(), input.params())
	if err != nil {
		h.menuError(c, err, "menu_create_failed")
		return
	}
	c.JSON(http.StatusCreated, menu)
}

// @Summary      List menu items
// @Tags         menus
// @Produce      json
// @Param        keyword  query  string  false  "Case-insensitive name filter"
// @Success      200  {array}  models.Menu
// @Router       /api/menus [get]
func (h *Handler) listMenus(c *gin.Context) {
	menus, err := h.services.Menus.List(c.Request.Context(), c.Query("keyword"))
	if err != nil {
		h.menuError(c, err, "menu_list_failed")
		return
	}
	c.JSON(http.StatusOK, menus)
}

// @Summary      Get menu item
// @Tags         menus
// @Produce      json
// @Param        id  path  string  true  "Menu id"
// @Success      200  {object}  models.Menu
// @Failure      404  {object}  map[string]string
// @Router       /api/menus/{id} [get]
func (h *Handler) getMenu(c *gin.Context) {
	menu, err := h.services.Menus.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.menuError(c, err, "menu_get_failed")
		return
	}
	c.JSON(http.StatusOK, menu)
}

// @Summary      List menu items by category
// @Tags         menus
// @Produce      json
// @Param        categoryId  path  string  true  "Category id"
// @Success      200  {array}  models.Menu
// @Failure      404  {object}  map[string]string
// @Router       /api/menus/category/{categoryId} [get]
func (h *Handler) listMenusByCategory(c *gin.Context) {
	menus, err := h.services.Menus.ListByCategory(c.Request.Context(), c.Param("categoryId"))
	if err != nil {
		h.menuError(c, err, "menu_list_by_category_failed")
		return
	}
	c.JSON(http.StatusOK, menus)
}

// @Summary      Update menu item
// @Description  Replaces the mutable fields; an empty image keeps the stored one.
// @Tags         menus
// @Accept       json
// @Produce      json
// @Param        id    path  string       true  "Menu id"
// @Param        body  body  menuRequest  true  "Menu item"
// @Success      200  {object}  models.Menu
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/menus/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateMenu(c *gin.Context) {
	var input menuRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	menu, err := h.services.Menus.Update(c.Request.Context(), c.Param("id"), input.params())
	if err != nil {
		h.menuError(c, err, "menu_update_failed")
		return
	}
	c.JSON(http.StatusOK, menu)
}

// @Summary      Delete menu item
// @Tags         menus
// @Produce      json
// @Param        id  path  string  true  "Menu id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/menus/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteMenu(c *gin.Context) {
	if err := h.services.Menus.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.menuError(c, err, "menu_delete_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "menu removed"})
}

// menuError maps menu service errors to HTTP statuses.
func (h *Handler) menuError(c *gin.Context, err error, logKey string) {
	switch {
	case errors.Is(err, service.ErrMenuNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrCategoryNotFound):
		// Unknown category on create/update is a client mistake; on the
		// by-category listing it is a missing resource.
		if c.Request.Method == http.MethodGet {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
	case errors.Is(err, service.ErrMenuInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		if h.log != nil {
			h.log.Errorw(logKey, "err", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
