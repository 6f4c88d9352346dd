package http

import (
	"net/http"

	"github.com/aussiebroadwan/clinic/internal/clinic/domain"
	"github.com/aussiebroadwan/clinic/internal/clinic/service"
	"github.com/aussiebroadwan/clinic/pkg/clinicsdk"
	"github.com/aussiebroadwan/clinic/pkg/httpx"
)

type PatientHandler struct {
	Patients *service.PatientService
	Cookies  CookieConfig
}

// HandleSignUp handles POST /patient/signUp
//
//	@Summary		Patient sign-up
//	@Description	Registers the patient, sets the refreshTokenPatient cookie and returns an access token.
//	@Tags			Patient
//	@Accept			json
//	@Produce		json
//	@Param			request	body		clinicsdk.PatientSignUpRequest	true	"Patient"
//	@Success		201		{object}	clinicsdk.Envelope[string]		"access token"
//	@Failure		400		{object}	clinicsdk.APIError
//	@Failure		409		{object}	clinicsdk.APIError	"Phone number already exist"
//	@Failure		429		{object}	clinicsdk.APIError
//	@Router			/patient/signUp [post].
func (h *PatientHandler) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	var req clinicsdk.PatientSignUpRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	_, pair, err := h.Patients.SignUp(r.Context(), req)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	h.Cookies.set(w, domain.KindPatient, pair)
	httpx.WriteSuccess(w, http.StatusCreated, pair.AccessToken)
}

// HandleSignIn handles POST /patient/signIn
//
//	@Summary		Patient sign-in
//	@Tags			Patient
//	@Accept			json
//	@Produce		json
//	@Param			request	body		clinicsdk.PatientSignInRequest	true	"Phone number and password"
//	@Success		200		{object}	clinicsdk.Envelope[string]		"access token"
//	@Failure		400		{object}	clinicsdk.APIError
//	@Failure		401		{object}	clinicsdk.APIError	"incorrect credentials"
//	@Failure		429		{object}	clinicsdk.APIError
//	@Router			/patient/signIn [post].
func (h *PatientHandler) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	var req clinicsdk.PatientSignInRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	pair, err := h.Patients.SignIn(r.Context(), req)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	h.Cookies.set(w, domain.KindPatient, pair)
	httpx.WriteSuccess(w, http.StatusOK, pair.AccessToken)
}

// HandleList handles GET /patient
//
//	@Summary		List patients
//	@Tags			Patient
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	clinicsdk.Envelope[[]clinicsdk.PatientResponse]
//	@Failure		401	{object}	clinicsdk.APIError
//	@Failure		403	{object}	clinicsdk.APIError
//	@Router			/patient [get].
func (h *PatientHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.Patients.List(r.Context())
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, views(list, patientView))
}

// HandleGet handles GET /patient/{id}
//
//	@Summary		Get patient
//	@Tags			Patient
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Patient ID"
//	@Success		200	{object}	clinicsdk.Envelope[clinicsdk.PatientResponse]
//	@Failure		401	{object}	clinicsdk.APIError
//	@Failure		403	{object}	clinicsdk.APIError
//	@Failure		404	{object}	clinicsdk.APIError
//	@Router			/patient/{id} [get].
func (h *PatientHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	p, err := h.Patients.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, patientView(p))
}

// HandleUpdate handles PATCH /patient/{id}
//
//	@Summary		Update patient
//	@Tags			Patient
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string							true	"Patient ID"
//	@Param			request	body		clinicsdk.UpdatePatientRequest	true	"Fields to change"
//	@Success		200		{object}	clinicsdk.Envelope[clinicsdk.PatientResponse]
//	@Failure		400		{object}	clinicsdk.APIError
//	@Failure		401		{object}	clinicsdk.APIError
//	@Failure		403		{object}	clinicsdk.APIError
//	@Failure		404		{object}	clinicsdk.APIError
//	@Failure		409		{object}	clinicsdk.APIError
//	@Router			/patient/{id} [patch].
func (h *PatientHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req clinicsdk.UpdatePatientRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	p, err := h.Patients.Update(r.Context(), r.PathValue("id"), req)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, patientView(p))
}

// HandleDelete handles DELETE /patient/{id}
//
//	@Summary		Delete patient
//	@Tags			Patient
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Patient ID"
//	@Success		200	{object}	clinicsdk.Envelope[any]
//	@Failure		401	{object}	clinicsdk.APIError
//	@Failure		403	{object}	clinicsdk.APIError
//	@Failure		404	{object}	clinicsdk.APIError
//	@Router			/patient/{id} [delete].
func (h *PatientHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Patients.Delete(r.Context(), r.PathValue("id")); err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, struct{}{})
}
