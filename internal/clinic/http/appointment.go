package http

import (
	"net/http"

	"github.com/aussiebroadwan/clinic/internal/clinic/domain"
	"github.com/aussiebroadwan/clinic/internal/clinic/service"
	"github.com/aussiebroadwan/clinic/internal/clinic/store"
	"github.com/aussiebroadwan/clinic/pkg/clinicsdk"
	"github.com/aussiebroadwan/clinic/pkg/httpx"
)

type AppointmentHandler struct {
	Appointments *service.AppointmentService
}

// HandleCreate handles POST /appointment
//
//	@Summary		Book appointment
//	@Description	patient_id defaults to the calling patient; admins must set it.
//	@Tags			Appointment
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		clinicsdk.CreateAppointmentRequest	true	"Appointment"
//	@Success		201		{object}	clinicsdk.Envelope[clinicsdk.AppointmentResponse]
//	@Failure		400		{object}	clinicsdk.APIError
//	@Failure		401		{object}	clinicsdk.APIError
//	@Failure		403		{object}	clinicsdk.APIError
//	@Failure		404		{object}	clinicsdk.APIError	"Patient or graph not found"
//	@Router			/appointment [post].
func (h *AppointmentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req clinicsdk.CreateAppointmentRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	a, err := h.Appointments.Create(r.Context(), caller(r), req)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusCreated, appointmentView(a))
}

// HandleList handles GET /appointment
//
//	@Summary		List appointments
//	@Description	Each appointment comes with its patient and slot.
//	@Tags			Appointment
//	@Produce		json
//	@Security		BearerAuth
//	@Param			patient_id	query		string	false	"Only this patient's appointments"
//	@Param			graph_id	query		string	false	"Only appointments on this slot"
//	@Param			status		query		string	false	"pending, completed or rejected"
//	@Success		200			{object}	clinicsdk.Envelope[[]clinicsdk.AppointmentResponse]
//	@Failure		401			{object}	clinicsdk.APIError
//	@Failure		403			{object}	clinicsdk.APIError
//	@Router			/appointment [get].
func (h *AppointmentHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	list, err := h.Appointments.List(r.Context(), store.AppointmentFilter{
		PatientID: q.Get("patient_id"),
		GraphID:   q.Get("graph_id"),
		Status:    domain.AppointmentStatus(q.Get("status")),
	})
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, views(list, appointmentView))
}

// HandleGet handles GET /appointment/{id}
//
//	@Summary		Get appointment
//	@Tags			Appointment
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Appointment ID"
//	@Success		200	{object}	clinicsdk.Envelope[clinicsdk.AppointmentResponse]
//	@Failure		401	{object}	clinicsdk.APIError
//	@Failure		403	{object}	clinicsdk.APIError
//	@Failure		404	{object}	clinicsdk.APIError
//	@Router			/appointment/{id} [get].
func (h *AppointmentHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	a, err := h.Appointments.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, appointmentView(a))
}

// HandleUpdate handles PATCH /appointment/{id}
//
//	@Summary		Update appointment
//	@Tags			Appointment
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string								true	"Appointment ID"
//	@Param			request	body		clinicsdk.UpdateAppointmentRequest	true	"Fields to change"
//	@Success		200		{object}	clinicsdk.Envelope[clinicsdk.AppointmentResponse]
//	@Failure		400		{object}	clinicsdk.APIError
//	@Failure		401		{object}	clinicsdk.APIError
//	@Failure		403		{object}	clinicsdk.APIError
//	@Failure		404		{object}	clinicsdk.APIError
//	@Router			/appointment/{id} [patch].
func (h *AppointmentHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req clinicsdk.UpdateAppointmentRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	a, err := h.Appointments.Update(r.Context(), r.PathValue("id"), req)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, appointmentView(a))
}

// HandleDelete handles DELETE /appointment/{id}
//
//	@Summary		Cancel appointment
//	@Tags			Appointment
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Appointment ID"
//	@Success		200	{object}	clinicsdk.Envelope[any]
//	@Failure		401	{object}	clinicsdk.APIError
//	@Failure		403	{object}	clinicsdk.APIError
//	@Failure		404	{object}	clinicsdk.APIError
//	@Router			/appointment/{id} [delete].
func (h *AppointmentHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Appointments.Delete(r.Context(), r.PathValue("id")); err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, struct{}{})
}
