// Package health reports service liveness and database reachability.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/ksr/files/internal/logger"
	"github.com/ksr/files/internal/response"
)

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Status is the state of one checked dependency.
type Status struct {
	Status string `json:"status" example:"up"`
}

// Report is the body of a successful health check.
type Report struct {
	Status  string            `json:"status"  example:"ok"`
	Info    map[string]Status `json:"info"`
	Error   map[string]Status `json:"error"`
	Details map[string]Status `json:"details"`
}

// Handler serves GET /health.
type Handler struct {
	db      Pinger
	timeout time.Duration
}

// NewHandler creates a health Handler that pings db.
func NewHandler(db Pinger) *Handler {
	return &Handler{db: db, timeout: 3 * time.Second}
}

// Check godoc
//
//	@Summary		Health check
//	@Description	Reports ok when the database answers a ping.
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	Report
//	@Failure		503	{object}	response.ErrorBody
//	@Router			/health [get]
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		logger.FromContext(r.Context()).Warn("health check failed", "error", err)
		response.ServiceUnavailable(w, r, "database is unavailable")
		return
	}

	up := map[string]Status{"database": {Status: "up"}}
	response.OK(w, Report{
		Status:  "ok",
		Info:    up,
		Error:   map[string]Status{},
		Details: up,
	})
}
