package service

import (
	"context"
	"log/slog"

	"github.com/aussiebroadwan/clinic/internal/clinic/domain"
	"github.com/aussiebroadwan/clinic/internal/clinic/store"
	"github.com/aussiebroadwan/clinic/pkg/clinicsdk"
	"github.com/aussiebroadwan/clinic/pkg/errx"
	"github.com/aussiebroadwan/clinic/pkg/idx"
	"github.com/aussiebroadwan/clinic/pkg/slogx"
)

// GraphService manages doctors' availability slots.
type GraphService struct {
	Store store.Store
}

// Create adds a slot. A doctor creates slots for themselves; an admin must
// name the doctor.
func (s *GraphService) Create(ctx context.Context, caller domain.Principal, req clinicsdk.CreateGraphRequest) (domain.Graph, error) {
	if err := validate(req); err != nil {
		return domain.Graph{}, err
	}

	doctorID := req.DoctorID
	switch {
	case caller.Role == domain.RoleDoctor:
		if doctorID != "" && doctorID != caller.ID {
			return domain.Graph{}, ErrForbidden
		}
		doctorID = caller.ID
	case doctorID == "":
		return domain.Graph{}, errx.Validation(`"doctorId" is required`)
	}

	if err := s.doctorExists(ctx, doctorID); err != nil {
		return domain.Graph{}, err
	}

	g := domain.Graph{
		ID:       idx.New().String(),
		Date:     req.Date,
		Time:     req.Time,
		Status:   domain.GraphStatus(req.Status),
		DoctorID: doctorID,
	}
	if err := persist(s.Store.Graphs().CreateGraph(ctx, g), nil, ""); err != nil {
		return domain.Graph{}, err
	}

	slogx.FromContext(ctx).Info("graph created", slog.String("graph_id", g.ID), slog.String("doctor_id", doctorID))
	return s.Get(ctx, g.ID)
}

func (s *GraphService) doctorExists(ctx context.Context, id string) error {
	_, err := s.Store.Doctors().GetDoctorByID(ctx, id)
	return lookup(err, errNotFoundDoctor.Detail)
}

func (s *GraphService) List(ctx context.Context, f store.GraphFilter) ([]domain.Graph, error) {
	return s.Store.Graphs().ListGraphs(ctx, f)
}

func (s *GraphService) Get(ctx context.Context, id string) (domain.Graph, error) {
	if !idx.Valid(id) {
		return domain.Graph{}, errNotFoundGraph
	}
	g, err := s.Store.Graphs().GetGraphByID(ctx, id)
	return g, lookup(err, errNotFoundGraph.Detail)
}

// Owner returns the id of the doctor a slot belongs to.
func (s *GraphService) Owner(ctx context.Context, id string) (string, error) {
	g, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return g.DoctorID, nil
}

// Update applies the non-nil fields of req. Moving a slot to another doctor
// takes an admin.
func (s *GraphService) Update(
	ctx context.Context,
	caller domain.Principal,
	id string,
	req clinicsdk.UpdateGraphRequest,
) (domain.Graph, error) {
	if err := validate(req); err != nil {
		return domain.Graph{}, err
	}
	g, err := s.Get(ctx, id)
	if err != nil {
		return domain.Graph{}, err
	}

	if req.DoctorID != nil && *req.DoctorID != g.DoctorID {
		if !caller.Role.AtLeast(domain.RoleAdmin) {
			return domain.Graph{}, ErrForbidden
		}
		if err := s.doctorExists(ctx, *req.DoctorID); err != nil {
			return domain.Graph{}, err
		}
		g.DoctorID = *req.DoctorID
	}
	if req.Date != nil {
		g.Date = *req.Date
	}
	if req.Time != nil {
		g.Time = *req.Time
	}
	if req.Status != nil {
		g.Status = domain.GraphStatus(*req.Status)
	}

	if err := persist(s.Store.Graphs().UpdateGraph(ctx, g), nil, errNotFoundGraph.Detail); err != nil {
		return domain.Graph{}, err
	}
	return s.Get(ctx, id)
}

// Delete removes a slot and any appointment booked on it.
func (s *GraphService) Delete(ctx context.Context, id string) error {
	if !idx.Valid(id) {
		return errNotFoundGraph
	}
	return persist(s.Store.Graphs().DeleteGraph(ctx, id), nil, errNotFoundGraph.Detail)
}
