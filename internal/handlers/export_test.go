package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hallwright/scenario-workbench/internal/storage"
	"github.com/hallwright/scenario-workbench/pkg/scenario"
)

func TestExport_Markdown(t *testing.T) {
	router := testRouter(storage.NewMockStorage(), nil)

	doc := scenario.New()
	doc.Outline.Title = "The Lighthouse Affair"
	doc.Characters = []scenario.Character{{ID: "c1", Name: "Abigail Crane"}}
	body, err := json.Marshal(doc)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1/export", bytes.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/markdown; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "# The Lighthouse Affair")
	assert.Contains(t, w.Body.String(), "### Abigail Crane")
}

func TestExport_RejectsBadBody(t *testing.T) {
	router := testRouter(storage.NewMockStorage(), nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/export", bytes.NewReader([]byte("not json")))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
