package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gnomesuite/petstore-api/internal/dto"
)

type HealthHandler struct {
	version string
}

func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{version: version}
}

func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Message:   "Pet Store API is running!",
		Status:    "healthy",
		Version:   h.version,
		Timestamp: time.Now().UTC(),
	})
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Message:   "Service is healthy",
		Status:    "healthy",
		Version:   h.version,
		Timestamp: time.Now().UTC(),
	})
}
