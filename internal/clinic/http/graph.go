package http

import (
	"net/http"

	"github.com/aussiebroadwan/clinic/internal/clinic/domain"
	"github.com/aussiebroadwan/clinic/internal/clinic/service"
	"github.com/aussiebroadwan/clinic/internal/clinic/store"
	"github.com/aussiebroadwan/clinic/pkg/clinicsdk"
	"github.com/aussiebroadwan/clinic/pkg/httpx"
)

type GraphHandler struct {
	Graphs *service.GraphService
}

// HandleCreate handles POST /graph
//
//	@Summary		Create availability slot
//	@Description	doctorId defaults to the calling doctor; admins must set it.
//	@Tags			Graph
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		clinicsdk.CreateGraphRequest	true	"Slot"
//	@Success		201		{object}	clinicsdk.Envelope[clinicsdk.GraphResponse]
//	@Failure		400		{object}	clinicsdk.APIError
//	@Failure		401		{object}	clinicsdk.APIError
//	@Failure		403		{object}	clinicsdk.APIError
//	@Failure		404		{object}	clinicsdk.APIError	"Doctor not found"
//	@Router			/graph [post].
func (h *GraphHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req clinicsdk.CreateGraphRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	g, err := h.Graphs.Create(r.Context(), caller(r), req)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusCreated, graphView(g))
}

// HandleList handles GET /graph
//
//	@Summary		List availability slots
//	@Tags			Graph
//	@Produce		json
//	@Param			doctorId	query		string	false	"Only this doctor's slots"
//	@Param			status		query		string	false	"busy or free"
//	@Param			date		query		string	false	"YYYY-MM-DD"
//	@Success		200			{object}	clinicsdk.Envelope[[]clinicsdk.GraphResponse]
//	@Router			/graph [get].
func (h *GraphHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	list, err := h.Graphs.List(r.Context(), store.GraphFilter{
		DoctorID: q.Get("doctorId"),
		Status:   domain.GraphStatus(q.Get("status")),
		Date:     q.Get("date"),
	})
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, views(list, graphView))
}

// HandleGet handles GET /graph/{id}
//
//	@Summary		Get availability slot
//	@Tags			Graph
//	@Produce		json
//	@Param			id	path		string	true	"Graph ID"
//	@Success		200	{object}	clinicsdk.Envelope[clinicsdk.GraphResponse]
//	@Failure		404	{object}	clinicsdk.APIError
//	@Router			/graph/{id} [get].
func (h *GraphHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	g, err := h.Graphs.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, graphView(g))
}

// HandleUpdate handles PATCH /graph/{id}
//
//	@Summary		Update availability slot
//	@Tags			Graph
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string						true	"Graph ID"
//	@Param			request	body		clinicsdk.UpdateGraphRequest	true	"Fields to change"
//	@Success		200		{object}	clinicsdk.Envelope[clinicsdk.GraphResponse]
//	@Failure		400		{object}	clinicsdk.APIError
//	@Failure		401		{object}	clinicsdk.APIError
//	@Failure		403		{object}	clinicsdk.APIError
//	@Failure		404		{object}	clinicsdk.APIError
//	@Router			/graph/{id} [patch].
func (h *GraphHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req clinicsdk.UpdateGraphRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	g, err := h.Graphs.Update(r.Context(), caller(r), r.PathValue("id"), req)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, graphView(g))
}

// HandleDelete handles DELETE /graph/{id}
//
//	@Summary		Delete availability slot
//	@Tags			Graph
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Graph ID"
//	@Success		200	{object}	clinicsdk.Envelope[any]
//	@Failure		401	{object}	clinicsdk.APIError
//	@Failure		403	{object}	clinicsdk.APIError
//	@Failure		404	{object}	clinicsdk.APIError
//	@Router			/graph/{id} [delete].
func (h *GraphHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Graphs.Delete(r.Context(), r.PathValue("id")); err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, struct{}{})
}
