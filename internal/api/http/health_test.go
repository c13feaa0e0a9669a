package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/graphcommerce/graph-commerce-backend/internal/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGraph struct {
	pingErr error
}

func (s *stubGraph) ExecuteRead(ctx context.Context, cypher string, params map[string]any) ([]graph.Record, error) {
	return nil, nil
}

func (s *stubGraph) ExecuteWrite(ctx context.Context, cypher string, params map[string]any) (graph.WriteSummary, error) {
	return graph.WriteSummary{}, nil
}

func (s *stubGraph) VerifyConnectivity(ctx context.Context) error { return s.pingErr }
func (s *stubGraph) Close(ctx context.Context) error              { return nil }

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("reports the graph as up", func(t *testing.T) {
		router := gin.New()
		NewHealthHandler("graph-commerce-api", "1.0.0", &stubGraph{}).RegisterRoutes(router)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var response HealthResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.Equal(t, "healthy", response.Status)
		assert.Equal(t, "graph-commerce-api", response.Service)
		assert.Equal(t, "1.0.0", response.Version)
		assert.Equal(t, "up", response.Graph)
	})

	t.Run("reports the graph as down", func(t *testing.T) {
		router := gin.New()
		NewHealthHandler("graph-commerce-api", "1.0.0", &stubGraph{pingErr: errors.New("refused")}).RegisterRoutes(router)

		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var response HealthResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.Equal(t, "down", response.Graph)
	})
}
