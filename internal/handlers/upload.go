package handlers

import (
	"errors"
	"net/http"

	"restaurant_menu/internal/service"

	"github.com/gin-gonic/gin"
)

// @Summary      Upload image
// @Description  Accepts a multipart "image" field (jpg/jpeg/png/webp) and returns its public path for use on menu items.
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        image  formData  file  true  "Image file"
// @Success      201  {object}  map[string]string  "path"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/upload [post]
// @Security     BearerAuth
func (h *Handler) uploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrImageMissing.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		if h.log != nil {
			h.log.Errorw("upload_open_failed", "filename", fileHeader.Filename, "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded file"})
		return
	}
	defer func() { _ = file.Close() }()

	path, err := h.services.Uploads.SaveImage(fileHeader.Filename, fileHeader.Size, file)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrImageType),
			errors.Is(err, service.ErrImageTooBig),
			errors.Is(err, service.ErrImageMissing):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			if h.log != nil {
				h.log.Errorw("upload_save_failed", "filename", fileHeader.Filename, "err", err)
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store image"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"path": path})
}
