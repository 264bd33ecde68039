package controllers

import (
	"fmt"
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"pad/internal/store"
)

type HealthController struct {
	store     store.DataStoreInterface
	startTime time.Time
}

type healthResponse struct {
	Status        string  `json:"status"`
	Uptime        string  `json:"uptime"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	PresenceUsers int     `json:"presence_users"`
	ProfileUsers  int     `json:"profile_users"`
	LastLoad      string  `json:"last_load,omitempty"`
}

func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(hc.startTime)
	stats := hc.store.Stats()
	resp := healthResponse{
		Status:        "ok",
		Uptime:        formatDuration(uptime),
		UptimeSeconds: uptime.Seconds(),
		PresenceUsers: stats.PresenceUsers,
		ProfileUsers:  stats.ProfileUsers,
	}
	if !stats.LastLoad.IsZero() {
		resp.LastLoad = stats.LastLoad.UTC().Format(time.RFC3339)
	}

	gson, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
}

func NewHealthController(store store.DataStoreInterface) *HealthController {
	return &HealthController{
		store:     store,
		startTime: time.Now(),
	}
}
