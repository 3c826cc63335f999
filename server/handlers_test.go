package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mohdivswa-71124/Queue-Reporter/service"
	"github.com/Mohdivswa-71124/Queue-Reporter/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	st, err := store.New(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)
	return NewRouter(service.New(st)), st
}

func postReport(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, EndPointReport, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func getQueues(t *testing.T, router *gin.Engine) (*httptest.ResponseRecorder, []map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, EndPointQueues, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var entries []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	return w, entries
}

func TestSubmitAndListScenario(t *testing.T) {
	router, _ := newTestRouter(t)

	w := postReport(t, router, `{"location":"Market St","minutes":"14:30","category":"Alice","date":"2024-01-01"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = postReport(t, router, `{"location":"Market St","minutes":"15:00","category":"Bob","date":"2024-01-01"}`)
	require.Equal(t, http.StatusOK, w.Code)

	resp, entries := getQueues(t, router)
	require.Equal(t, http.StatusOK, resp.Code)
	require.Len(t, entries, 2)

	// Wire field names are part of the contract.
	assert.Equal(t, "Alice", entries[0]["Reported Name"])
	assert.Equal(t, float64(1), entries[0]["report"])
	assert.Equal(t, "Market St", entries[0]["location"])
	assert.Equal(t, "14:30", entries[0]["minutes"])
	assert.Equal(t, "2024-01-01", entries[0]["date"])
	assert.NotEmpty(t, entries[0]["timestamp"])

	assert.Equal(t, "Bob", entries[1]["Reported Name"])
	assert.Equal(t, float64(2), entries[1]["report"])
}

func TestSequencePerLocationIsIndependent(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, body := range []string{
		`{"location":"Market St","minutes":"14:30","category":"Alice","date":"2024-01-01"}`,
		`{"location":"Main Ave","minutes":"15:30","category":"Bob","date":"2024-01-01"}`,
	} {
		w := postReport(t, router, body)
		require.Equal(t, http.StatusOK, w.Code)
	}

	_, entries := getQueues(t, router)
	require.Len(t, entries, 2)
	assert.Equal(t, float64(1), entries[0]["report"])
	assert.Equal(t, float64(1), entries[1]["report"])
}

func TestSubmitValidationFailure(t *testing.T) {
	router, st := newTestRouter(t)

	w := postReport(t, router, `{"location":"Market St","minutes":"14:30","category":"","date":"2024-01-01"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "missing or empty field: category", w.Body.String())

	w = postReport(t, router, `{"minutes":"14:30","category":"Alice","date":"2024-01-01"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "missing or empty field: location", w.Body.String())

	// Store untouched by rejected submissions.
	reports, err := st.ListAll()
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestSubmitMalformedJSON(t *testing.T) {
	router, _ := newTestRouter(t)

	w := postReport(t, router, `{"location":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQueuesEmptyIsArray(t *testing.T) {
	router, _ := newTestRouter(t)

	resp, entries := getQueues(t, router)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Empty(t, entries)
	assert.Equal(t, "[]", strings.TrimSpace(resp.Body.String()))
}

func TestHelp(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, EndPointHelp, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), EndPointReport)
}
