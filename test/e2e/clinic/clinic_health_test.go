package clinic_test

import (
	"testing"
)

// TestHealthEndpoints checks both probes on a fresh service.
func TestHealthEndpoints(t *testing.T) {
	c := setupClinicContainer(t, nil)

	health, err := c.Livez(t.Context())
	assertHealthy(t, health, err)

	health, err = c.Readyz(t.Context())
	assertHealthy(t, health, err)
	if health.Checks != nil {
		t.Logf("readyz checks: database=%s otp=%s", health.Checks.Database, health.Checks.OTPCache)
	}
}
