package http

import (
	"net/http"

	"github.com/aussiebroadwan/clinic/internal/clinic/domain"
	"github.com/aussiebroadwan/clinic/internal/clinic/service"
	"github.com/aussiebroadwan/clinic/pkg/clinicsdk"
	"github.com/aussiebroadwan/clinic/pkg/httpx"
)

type AdminHandler struct {
	Admins  *service.AdminService
	Cookies CookieConfig
}

// HandleBootstrap handles POST /admin/superadmin
//
//	@Summary		Create the first superadmin
//	@Description	Only available once, and only with the configured bootstrap token.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			X-Bootstrap-Token	header		string										true	"Bootstrap token"
//	@Param			request				body		clinicsdk.AdminCredentialsRequest			true	"Credentials"
//	@Success		201					{object}	clinicsdk.Envelope[clinicsdk.AdminResponse]
//	@Failure		400					{object}	clinicsdk.APIError
//	@Failure		401					{object}	clinicsdk.APIError	"bad bootstrap token"
//	@Failure		409					{object}	clinicsdk.APIError	"superadmin already exists"
//	@Router			/admin/superadmin [post].
func (h *AdminHandler) HandleBootstrap(w http.ResponseWriter, r *http.Request) {
	var req clinicsdk.AdminCredentialsRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	a, err := h.Admins.Bootstrap(r.Context(), r.Header.Get(clinicsdk.BootstrapTokenHeader), req)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusCreated, adminView(a))
}

// HandleCreate handles POST /admin
//
//	@Summary		Create admin
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		clinicsdk.AdminCredentialsRequest	true	"Credentials"
//	@Success		201		{object}	clinicsdk.Envelope[clinicsdk.AdminResponse]
//	@Failure		400		{object}	clinicsdk.APIError
//	@Failure		401		{object}	clinicsdk.APIError
//	@Failure		403		{object}	clinicsdk.APIError
//	@Failure		409		{object}	clinicsdk.APIError	"username taken"
//	@Router			/admin [post].
func (h *AdminHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req clinicsdk.AdminCredentialsRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	a, err := h.Admins.Create(r.Context(), req)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusCreated, adminView(a))
}

// HandleSignIn handles POST /admin/signIn
//
//	@Summary		Start admin sign-in
//	@Description	Checks username and password, then issues an OTP.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		clinicsdk.AdminCredentialsRequest	true	"Credentials"
//	@Success		200		{object}	clinicsdk.Envelope[string]			"OTP, or an acknowledgement when echo is off"
//	@Failure		400		{object}	clinicsdk.APIError
//	@Failure		401		{object}	clinicsdk.APIError	"incorrect credentials"
//	@Failure		429		{object}	clinicsdk.APIError
//	@Router			/admin/signIn [post].
func (h *AdminHandler) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	var req clinicsdk.AdminCredentialsRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	code, err := h.Admins.SignIn(r.Context(), req)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, code)
}

// HandleConfirmSignIn handles POST /admin/confirm-signIn
//
//	@Summary		Confirm admin sign-in
//	@Description	Exchanges the OTP for an access token and sets the refreshTokenAdmin cookie.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		clinicsdk.AdminConfirmSignInRequest	true	"Username and OTP"
//	@Success		200		{object}	clinicsdk.Envelope[string]			"access token"
//	@Failure		400		{object}	clinicsdk.APIError					"OTP expired or incorrect"
//	@Failure		404		{object}	clinicsdk.APIError
//	@Failure		429		{object}	clinicsdk.APIError
//	@Router			/admin/confirm-signIn [post].
func (h *AdminHandler) HandleConfirmSignIn(w http.ResponseWriter, r *http.Request) {
	var req clinicsdk.AdminConfirmSignInRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	pair, err := h.Admins.ConfirmSignIn(r.Context(), req)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	h.Cookies.set(w, domain.KindAdmin, pair)
	httpx.WriteSuccess(w, http.StatusOK, pair.AccessToken)
}

// HandleList handles GET /admin
//
//	@Summary		List admins
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	clinicsdk.Envelope[[]clinicsdk.AdminResponse]
//	@Failure		401	{object}	clinicsdk.APIError
//	@Failure		403	{object}	clinicsdk.APIError
//	@Router			/admin [get].
func (h *AdminHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.Admins.List(r.Context())
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, views(list, adminView))
}

// HandleGet handles GET /admin/{id}
//
//	@Summary		Get admin
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Admin ID"
//	@Success		200	{object}	clinicsdk.Envelope[clinicsdk.AdminResponse]
//	@Failure		401	{object}	clinicsdk.APIError
//	@Failure		403	{object}	clinicsdk.APIError
//	@Failure		404	{object}	clinicsdk.APIError
//	@Router			/admin/{id} [get].
func (h *AdminHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	a, err := h.Admins.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, adminView(a))
}

// HandleUpdate handles PATCH /admin/{id}
//
//	@Summary		Update admin
//	@Description	Admins may change their own username and password. Changing a role takes a superadmin.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string						true	"Admin ID"
//	@Param			request	body		clinicsdk.UpdateAdminRequest	true	"Fields to change"
//	@Success		200		{object}	clinicsdk.Envelope[clinicsdk.AdminResponse]
//	@Failure		400		{object}	clinicsdk.APIError
//	@Failure		401		{object}	clinicsdk.APIError
//	@Failure		403		{object}	clinicsdk.APIError
//	@Failure		404		{object}	clinicsdk.APIError
//	@Failure		409		{object}	clinicsdk.APIError
//	@Router			/admin/{id} [patch].
func (h *AdminHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req clinicsdk.UpdateAdminRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	a, err := h.Admins.Update(r.Context(), caller(r), r.PathValue("id"), req)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, adminView(a))
}

// HandleDelete handles DELETE /admin/{id}
//
//	@Summary		Delete admin
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Admin ID"
//	@Success		200	{object}	clinicsdk.Envelope[any]
//	@Failure		401	{object}	clinicsdk.APIError
//	@Failure		403	{object}	clinicsdk.APIError
//	@Failure		404	{object}	clinicsdk.APIError
//	@Failure		409	{object}	clinicsdk.APIError	"cannot delete your own account"
//	@Router			/admin/{id} [delete].
func (h *AdminHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Admins.Delete(r.Context(), caller(r), r.PathValue("id")); err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, struct{}{})
}
