package handler

import (
	"net/http"
	"time"

	"mascot-chat/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

const serviceName = "mascot-chat"

type SystemHandler struct{}

func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

func (h *SystemHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, httpdto.HealthResponse{
		OK:      true,
		Service: serviceName,
		Time:    time.Now().UTC().Format(time.RFC3339Nano),
	})
}
