package http

import (
	"context"
	"net/http"
	"time"

	"github.com/aussiebroadwan/clinic/internal/clinic/store"
	"github.com/aussiebroadwan/clinic/pkg/clinicsdk"
	"github.com/aussiebroadwan/clinic/pkg/httpx"
)

// Pinger is implemented by OTP caches living outside the process.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ReadyzHandler godoc
//
//	@Summary		Readiness probe
//	@Description	Checks the database and, when external, the OTP cache.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	clinicsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	clinicsdk.HealthResponse	"a dependency is down"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store, otpCache any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &clinicsdk.HealthChecks{Database: "ok", OTPCache: "ok"}
		status, code := "ok", http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			status, code = "degraded", http.StatusServiceUnavailable
		}

		if p, ok := otpCache.(Pinger); ok {
			if err := p.Ping(r.Context()); err != nil {
				checks.OTPCache = "error: " + err.Error()
				status, code = "degraded", http.StatusServiceUnavailable
			}
		}

		httpx.WriteJSON(w, code, clinicsdk.HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
