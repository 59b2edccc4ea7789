package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hallwright/scenario-workbench/internal/services"
	"github.com/hallwright/scenario-workbench/internal/storage"
)

func TestHealth_Healthy(t *testing.T) {
	router := testRouter(storage.NewMockStorage(), nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "scenario-workbench", resp.Service)
	assert.Equal(t, "healthy", resp.Components["storage"])
	assert.Equal(t, "healthy", resp.Components["llm"])
}

func TestHealth_DegradedWhenStorageDown(t *testing.T) {
	store := storage.NewMockStorage()
	store.PingFunc = func(ctx context.Context) error { return assert.AnError }
	router := testRouter(store, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp.Status)
	assert.Equal(t, "unhealthy", resp.Components["storage"])
}

func TestHealth_DegradedWhenLLMDown(t *testing.T) {
	llm := services.NewMockLLMService()
	llm.PingFunc = func(ctx context.Context) error { return assert.AnError }
	router := testRouter(storage.NewMockStorage(), llm)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
}
