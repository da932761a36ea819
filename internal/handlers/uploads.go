package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      Upload an image
// @Description  Multipart field "file". Content is sniffed; only image types are stored.
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Image file"
// @Success      200  {object}  map[string]string  "url"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/profile/upload [post]
// @Security     BearerAuth
func (h *Handler) uploadFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file field is required"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	defer func() { _ = f.Close() }()

	url, err := h.services.Uploads.Store(c.Request.Context(), fileHeader.Filename, fileHeader.Size, f)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	if h.log != nil {
		h.log.Infow("upload_stored", "user", sessionUserID(c), "url", url)
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
