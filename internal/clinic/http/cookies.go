package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/aussiebroadwan/clinic/internal/clinic/domain"
	"github.com/aussiebroadwan/clinic/internal/clinic/service"
)

// CookieConfig controls the refresh cookies.
type CookieConfig struct {
	Secure   bool
	SameSite http.SameSite
	MaxAge   time.Duration
}

// ParseSameSite maps lax, strict and none; anything else is lax.
func ParseSameSite(s string) http.SameSite {
	switch strings.ToLower(s) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

func (c CookieConfig) set(w http.ResponseWriter, kind domain.Kind, pair service.TokenPair) {
	maxAge := c.MaxAge
	if maxAge <= 0 {
		maxAge = time.Until(pair.RefreshExpiresAt)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     kind.CookieName(),
		Value:    pair.RefreshToken,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: c.SameSite,
	})
}

func (c CookieConfig) clear(w http.ResponseWriter, kind domain.Kind) {
	http.SetCookie(w, &http.Cookie{
		Name:     kind.CookieName(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: c.SameSite,
	})
}

// refreshToken returns the kind's refresh cookie value, or "".
func refreshToken(r *http.Request, kind domain.Kind) string {
	ck, err := r.Cookie(kind.CookieName())
	if err != nil {
		return ""
	}
	return ck.Value
}
