package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/graphcommerce/graph-commerce-backend/internal/graph"
)

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Graph     string    `json:"graph,omitempty"`
}

type HealthHandler struct {
	serviceName string
	version     string
	graph       graph.Client
}

func NewHealthHandler(serviceName, version string, client graph.Client) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		graph:       client,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	graphStatus := "disabled"
	if h.graph != nil {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 1*time.Second)
		defer cancel()

		if err := h.graph.VerifyConnectivity(pingCtx); err != nil {
			graphStatus = "down"
		} else {
			graphStatus = "up"
		}
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		Graph:     graphStatus,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
