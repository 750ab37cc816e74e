package handler

import (
	"errors"
	"io"
	"net/http"

	"mascot-chat/internal/services"
	"mascot-chat/internal/transport/httpdto"
	mascot_errors "mascot-chat/pkg/errors"
	"mascot-chat/pkg/logger"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	service *services.UploadService
	logger  *logger.Logger
}

func NewUploadHandler(service *services.UploadService, l *logger.Logger) *UploadHandler {
	return &UploadHandler{service: service, logger: l}
}

// Upload accepts one file under the multipart field "mascot" and stores it
// under a timestamped, sanitized name.
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("mascot")
	if err != nil {
		if isTooLarge(err) {
			c.JSON(http.StatusRequestEntityTooLarge, httpdto.UploadResponse{Success: false, Error: "File too large."})
			return
		}
		c.JSON(http.StatusBadRequest, httpdto.UploadResponse{Success: false, Error: "No file uploaded. Use multipart field 'mascot'."})
		return
	}

	f, err := file.Open()
	if err != nil {
		h.fail(c, err)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		if isTooLarge(err) {
			c.JSON(http.StatusRequestEntityTooLarge, httpdto.UploadResponse{Success: false, Error: "File too large."})
			return
		}
		h.fail(c, err)
		return
	}

	url, err := h.service.Save(c.Request.Context(), file.Filename, data)
	if err != nil {
		if errors.Is(err, mascot_errors.ErrTooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, httpdto.UploadResponse{Success: false, Error: "File too large."})
			return
		}
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.UploadResponse{Success: true, URL: url})
}

// Serve returns the raw bytes of a previously stored asset.
func (h *UploadHandler) Serve(c *gin.Context) {
	data, err := h.service.Fetch(c.Request.Context(), c.Param("name"))
	if err != nil {
		if errors.Is(err, mascot_errors.ErrNotFound) {
			c.JSON(http.StatusNotFound, httpdto.ErrorResponse{Error: "Not found."})
			return
		}
		h.fail(c, err)
		return
	}
	c.Data(http.StatusOK, http.DetectContentType(data), data)
}

func (h *UploadHandler) fail(c *gin.Context, err error) {
	if h.logger != nil {
		h.logger.ErrorfCtx(c.Request.Context(), "upload failed: %s", err.Error())
	}
	c.JSON(http.StatusInternalServerError, httpdto.UploadResponse{Success: false, Error: "Upload failed."})
}

func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}
