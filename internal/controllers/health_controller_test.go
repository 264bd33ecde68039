package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pad/internal/store"
	"pad/internal/testutil"
)

func TestHealth_OK(t *testing.T) {
	ds := &testutil.MockDataStore{StatsData: store.Stats{
		PresenceUsers: 7,
		ProfileUsers:  5,
		LastLoad:      time.Date(2015, 9, 1, 12, 0, 0, 0, time.UTC),
	}}
	hc := NewHealthController(ds)

	rr := httptest.NewRecorder()
	hc.Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, float64(7), resp["presence_users"])
	assert.Equal(t, float64(5), resp["profile_users"])
	assert.Equal(t, "2015-09-01T12:00:00Z", resp["last_load"])
}

func TestHealth_NoLoadYet(t *testing.T) {
	hc := NewHealthController(&testutil.MockDataStore{})

	rr := httptest.NewRecorder()
	hc.Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	_, hasLastLoad := resp["last_load"]
	assert.False(t, hasLastLoad)
}

func TestHealth_MethodNotAllowed(t *testing.T) {
	hc := NewHealthController(&testutil.MockDataStore{})

	rr := httptest.NewRecorder()
	hc.Health(rr, httptest.NewRequest(http.MethodPost, "/health", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0h0m42s", formatDuration(42*time.Second))
	assert.Equal(t, "1h30m0s", formatDuration(90*time.Minute))
	assert.Equal(t, "25h0m5s", formatDuration(25*time.Hour+5*time.Second))
}
