package http

import (
	"net/http"

	"github.com/aussiebroadwan/clinic/internal/clinic/domain"
	"github.com/aussiebroadwan/clinic/internal/clinic/service"
	"github.com/aussiebroadwan/clinic/pkg/httpx"
)

// SessionHandler serves the cookie-driven endpoints shared by every kind:
// sign-out and access token refresh.
type SessionHandler struct {
	Kind     domain.Kind
	Sessions *service.SessionService
	Cookies  CookieConfig
}

// HandleSignOut handles POST /{kind}/signOut
//
//	@Summary		Sign out
//	@Description	Revokes the refresh cookie of the kind and clears it.
//	@Tags			Sessions
//	@Produce		json
//	@Param			kind	path		string						true	"admin, doctor or patient"
//	@Success		200		{object}	clinicsdk.Envelope[any]		"empty data"
//	@Failure		401		{object}	clinicsdk.APIError			"missing, invalid, expired or revoked refresh cookie"
//	@Router			/{kind}/signOut [post].
func (h *SessionHandler) HandleSignOut(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.SignOut(r.Context(), h.Kind, refreshToken(r, h.Kind)); err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	h.Cookies.clear(w, h.Kind)
	httpx.WriteSuccess(w, http.StatusOK, struct{}{})
}

// HandleRefresh handles POST /{kind}/token
//
//	@Summary		Refresh access token
//	@Description	Exchanges the refresh cookie of the kind for a new access token.
//	@Description	With rotation enabled the cookie is replaced as well.
//	@Tags			Sessions
//	@Produce		json
//	@Param			kind	path		string							true	"admin, doctor or patient"
//	@Success		200		{object}	clinicsdk.Envelope[string]		"access token"
//	@Failure		401		{object}	clinicsdk.APIError				"missing, invalid, expired or revoked refresh cookie"
//	@Router			/{kind}/token [post].
func (h *SessionHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	out, err := h.Sessions.Refresh(r.Context(), h.Kind, refreshToken(r, h.Kind))
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	if out.Pair != nil {
		h.Cookies.set(w, h.Kind, *out.Pair)
	}
	httpx.WriteSuccess(w, http.StatusOK, out.AccessToken)
}
