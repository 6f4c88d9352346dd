package http

import (
	"net/http"

	"github.com/aussiebroadwan/clinic/internal/clinic/domain"
	"github.com/aussiebroadwan/clinic/internal/clinic/service"
	"github.com/aussiebroadwan/clinic/pkg/clinicsdk"
	"github.com/aussiebroadwan/clinic/pkg/errx"
	"github.com/aussiebroadwan/clinic/pkg/httpx"
)

type DoctorHandler struct {
	Doctors  *service.DoctorService
	Sessions *service.SessionService
	Cookies  CookieConfig
}

// HandleCreate handles POST /doctor
//
//	@Summary		Create doctor
//	@Tags			Doctor
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		clinicsdk.CreateDoctorRequest	true	"Doctor"
//	@Success		201		{object}	clinicsdk.Envelope[clinicsdk.DoctorResponse]
//	@Failure		400		{object}	clinicsdk.APIError
//	@Failure		401		{object}	clinicsdk.APIError
//	@Failure		403		{object}	clinicsdk.APIError
//	@Failure		409		{object}	clinicsdk.APIError	"Phone number already exist"
//	@Router			/doctor [post].
func (h *DoctorHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req clinicsdk.CreateDoctorRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	d, err := h.Doctors.Create(r.Context(), req)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusCreated, doctorView(d))
}

// HandleSignIn handles POST /doctor/signIn
//
//	@Summary		Request doctor OTP
//	@Tags			Doctor
//	@Accept			json
//	@Produce		json
//	@Param			request	body		clinicsdk.DoctorSignInRequest	true	"Phone number"
//	@Success		200		{object}	clinicsdk.Envelope[string]		"OTP, or an acknowledgement when echo is off"
//	@Failure		400		{object}	clinicsdk.APIError
//	@Failure		404		{object}	clinicsdk.APIError	"Doctor not found"
//	@Failure		429		{object}	clinicsdk.APIError
//	@Router			/doctor/signIn [post].
func (h *DoctorHandler) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	var req clinicsdk.DoctorSignInRequest
	if err := decodeValid(w, r, &req); err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	code, err := h.Sessions.RequestOTP(r.Context(), domain.KindDoctor, req.PhoneNumber)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, code)
}

// HandleConfirmSignIn handles POST /doctor/confirm-signIn
//
//	@Summary		Confirm doctor sign-in
//	@Description	Exchanges the OTP for an access token and sets the refreshTokenDoctor cookie.
//	@Tags			Doctor
//	@Accept			json
//	@Produce		json
//	@Param			request	body		clinicsdk.DoctorConfirmSignInRequest	true	"Phone number and OTP"
//	@Success		200		{object}	clinicsdk.Envelope[string]				"access token"
//	@Failure		400		{object}	clinicsdk.APIError						"OTP expired or incorrect"
//	@Failure		404		{object}	clinicsdk.APIError
//	@Failure		429		{object}	clinicsdk.APIError
//	@Router			/doctor/confirm-signIn [post].
func (h *DoctorHandler) HandleConfirmSignIn(w http.ResponseWriter, r *http.Request) {
	var req clinicsdk.DoctorConfirmSignInRequest
	if err := decodeValid(w, r, &req); err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	pair, err := h.Sessions.ConfirmOTP(r.Context(), domain.KindDoctor, req.PhoneNumber, req.OTP)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	h.Cookies.set(w, domain.KindDoctor, pair)
	httpx.WriteSuccess(w, http.StatusOK, pair.AccessToken)
}

// HandleList handles GET /doctor
//
//	@Summary		List doctors
//	@Description	Every doctor with their availability slots.
//	@Tags			Doctor
//	@Produce		json
//	@Success		200	{object}	clinicsdk.Envelope[[]clinicsdk.DoctorResponse]
//	@Router			/doctor [get].
func (h *DoctorHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.Doctors.List(r.Context())
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, views(list, doctorView))
}

// HandleGet handles GET /doctor/{id}
//
//	@Summary		Get doctor
//	@Tags			Doctor
//	@Produce		json
//	@Param			id	path		string	true	"Doctor ID"
//	@Success		200	{object}	clinicsdk.Envelope[clinicsdk.DoctorResponse]
//	@Failure		404	{object}	clinicsdk.APIError
//	@Router			/doctor/{id} [get].
func (h *DoctorHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	d, err := h.Doctors.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, doctorView(d))
}

// HandleUpdate handles PATCH /doctor/{id}
//
//	@Summary		Update doctor
//	@Tags			Doctor
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string							true	"Doctor ID"
//	@Param			request	body		clinicsdk.UpdateDoctorRequest	true	"Fields to change"
//	@Success		200		{object}	clinicsdk.Envelope[clinicsdk.DoctorResponse]
//	@Failure		400		{object}	clinicsdk.APIError
//	@Failure		401		{object}	clinicsdk.APIError
//	@Failure		403		{object}	clinicsdk.APIError
//	@Failure		404		{object}	clinicsdk.APIError
//	@Failure		409		{object}	clinicsdk.APIError
//	@Router			/doctor/{id} [patch].
func (h *DoctorHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req clinicsdk.UpdateDoctorRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	d, err := h.Doctors.Update(r.Context(), r.PathValue("id"), req)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, doctorView(d))
}

// HandleDelete handles DELETE /doctor/{id}
//
//	@Summary		Delete doctor
//	@Description	Also deletes the doctor's slots and the appointments booked on them.
//	@Tags			Doctor
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Doctor ID"
//	@Success		200	{object}	clinicsdk.Envelope[any]
//	@Failure		401	{object}	clinicsdk.APIError
//	@Failure		403	{object}	clinicsdk.APIError
//	@Failure		404	{object}	clinicsdk.APIError
//	@Router			/doctor/{id} [delete].
func (h *DoctorHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Doctors.Delete(r.Context(), r.PathValue("id")); err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, struct{}{})
}

// decodeValid decodes and validates a request the service layer takes as
// plain arguments.
func decodeValid(w http.ResponseWriter, r *http.Request, dst any) error {
	if err := httpx.DecodeJSON(w, r, dst); err != nil {
		return err
	}
	if err := clinicsdk.Validate(dst); err != nil {
		return errx.Wrap(errx.KindValidation, err.Error(), err)
	}
	return nil
}
