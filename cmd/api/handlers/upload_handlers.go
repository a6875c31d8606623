package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"poros-portal/cmd/api/services"
	"poros-portal/images"
)

// UploadImageHandler godoc
// @Summary      Upload a cover image (admin)
// @Description  Validates the upload, produces cover and thumbnail derivatives, stores both, returns their public URLs
// @Tags         upload
// @Security     SessionAuth
// @Param        image  formData  file  true  "Image file (JPG, PNG, WebP or GIF, max 10MB)"
// @Accept       multipart/form-data
// @Produce      json
// @Success      200  {object}  dto.UploadResultDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /upload/image [post]
func UploadImageHandler(svc *services.UploadService) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("image")
		if err != nil {
			respondError(c, fmt.Errorf("no file uploaded: %w", services.ErrInvalidInput))
			return
		}
		if file.Size > images.MaxUploadBytes {
			respondError(c, fmt.Errorf("%v: %w", images.ErrTooLarge, services.ErrInvalidInput))
			return
		}

		f, err := file.Open()
		if err != nil {
			respondError(c, err)
			return
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			respondError(c, err)
			return
		}

		result, err := svc.UploadImage(c.Request.Context(), data, file.Filename,
			file.Header.Get("Content-Type"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
