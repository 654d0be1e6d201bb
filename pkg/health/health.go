// Package health provides the JSON health endpoint served by every binary.
package health

import (
	"encoding/json"
	"net/http"
	"time"
)

// Response is the health check payload.
type Response struct {
	Status        string `json:"status"`
	Service       string `json:"service"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

// Handler reports process liveness. The services hold no external
// dependencies, so a reachable process is a healthy one.
type Handler struct {
	service   string
	startTime time.Time
}

// NewHandler creates a health handler for the named service.
func NewHandler(service string) *Handler {
	return &Handler{service: service, startTime: time.Now()}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Response{
		Status:        "healthy",
		Service:       h.service,
		UptimeSeconds: int64(time.Since(h.startTime).Seconds()),
	})
}
