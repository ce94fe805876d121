package di

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portal-server/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewContainer_DevWiring(t *testing.T) {
	t.Setenv("PROJECT_ROOT", "..")

	cfg := &config.Config{
		Environment: "development",
		HTTPAddr:    ":0",
		Location:    time.UTC,
		TuxRooms:    []string{"G308"},
	}

	c, err := NewContainer(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)

	c.Router.RegisterRoutes()

	rr := httptest.NewRecorder()
	c.MuxRouter.ServeHTTP(rr, httptest.NewRequest("GET", "/v1/rooms/free?now=2024-07-01T09:30:00Z", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "G308")

	rr = httptest.NewRecorder()
	c.MuxRouter.ServeHTTP(rr, httptest.NewRequest("GET", "/v1/exams?now=2024-07-01T00:00:00Z", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Analysis I")
	assert.NotContains(t, rr.Body.String(), "Lineare Algebra")
}
