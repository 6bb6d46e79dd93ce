package handlers

import (
	"errors"
	"net/http"

	"restaurant_menu/internal/service"

	"github.com/gin-gonic/gin"
)

type categoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// updateCategoryRequest has no required fields; empty fields stay unchanged.
type updateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// @Summary      Create category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body  categoryRequest  true  "Category"
// @Success      201  {object}  models.Category
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/categories [post]
// @Security     BearerAuth
func (h *Handler) createCategory(c *gin.Context) {
	var input categoryRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	cat, err := h.services.Categories.Create(c.Request.Context(), input.Name, input.Description)
	if err != nil {
		h.categoryError(c, err, "category_create_failed")
		return
	}
	c.JSON(http.StatusCreated, cat)
}

// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Success      200  {array}  models.Category
// @Router       /api/categories [get]
func (h *Handler) listCategories(c *gin.Context) {
	cats, err := h.services.Categories.List(c.Request.Context())
	if err != nil {
		h.categoryError(c, err, "category_list_failed")
		return
	}
	c.JSON(http.StatusOK, cats)
}

// @Summary      Get category
// @Tags         categories
// @Produce      json
// @Param        id  path  string  true  "Category id"
// @Success      200  {object}  models.Category
// @Failure      404  {object}  map[string]string
// @Router       /api/categories/{id} [get]
func (h *Handler) getCategory(c *gin.Context) {
	cat, err := h.services.Categories.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.categoryError(c, err, "category_get_failed")
		return
	}
	c.JSON(http.StatusOK, cat)
}

// @Summary      Update category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "Category id"
// @Param        body  body  updateCategoryRequest  true  "Fields to update"
// @Success      200  {object}  models.Category
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/categories/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateCategory(c *gin.Context) {
	var input updateCategoryRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	cat, err := h.services.Categories.Update(c.Request.Context(), c.Param("id"), service.CategoryUpdate{
		Name:        input.Name,
		Description: input.Description,
	})
	if err != nil {
		h.categoryError(c, err, "category_update_failed")
		return
	}
	c.JSON(http.StatusOK, cat)
}

// @Summary      Delete category
// @Description  Refused while menu items still reference the category.
// @Tags         categories
// @Produce      json
// @Param        id  path  string  true  "Category id"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/categories/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteCategory(c *gin.Context) {
	if err := h.services.Categories.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.categoryError(c, err, "category_delete_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "category removed"})
}

// categoryError maps category service errors to HTTP statuses.
func (h *Handler) categoryError(c *gin.Context, err error, logKey string) {
	switch {
	case errors.Is(err, service.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrCategoryName), errors.Is(err, service.ErrCategoryInUse):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		if h.log != nil {
			h.log.Errorw(logKey, "err", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
