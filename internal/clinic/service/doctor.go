package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/clinic/internal/clinic/domain"
	"github.com/aussiebroadwan/clinic/internal/clinic/store"
	"github.com/aussiebroadwan/clinic/pkg/clinicsdk"
	"github.com/aussiebroadwan/clinic/pkg/idx"
	"github.com/aussiebroadwan/clinic/pkg/slogx"
)

type DoctorService struct {
	Store store.Store
}

func (s *DoctorService) Create(ctx context.Context, req clinicsdk.CreateDoctorRequest) (domain.Doctor, error) {
	if err := validate(req); err != nil {
		return domain.Doctor{}, err
	}

	if _, err := s.Store.Doctors().GetDoctorByPhone(ctx, req.PhoneNumber); err == nil {
		return domain.Doctor{}, ErrPhoneTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.Doctor{}, err
	}

	d := domain.Doctor{
		ID:          idx.New().String(),
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		Special:     req.Special,
	}
	if err := persist(s.Store.Doctors().CreateDoctor(ctx, d), ErrPhoneTaken, ""); err != nil {
		return domain.Doctor{}, err
	}

	slogx.FromContext(ctx).Info("doctor created", slog.String("doctor_id", d.ID))
	return s.Get(ctx, d.ID)
}

// List returns every doctor with their slots attached.
func (s *DoctorService) List(ctx context.Context) ([]domain.Doctor, error) {
	doctors, err := s.Store.Doctors().ListDoctors(ctx)
	if err != nil {
		return nil, err
	}
	for i := range doctors {
		if doctors[i].Graphs, err = s.Store.Graphs().ListGraphs(ctx, store.GraphFilter{DoctorID: doctors[i].ID}); err != nil {
			return nil, err
		}
	}
	return doctors, nil
}

func (s *DoctorService) Get(ctx context.Context, id string) (domain.Doctor, error) {
	if !idx.Valid(id) {
		return domain.Doctor{}, errNotFoundDoctor
	}
	d, err := s.Store.Doctors().GetDoctorByID(ctx, id)
	if err != nil {
		return domain.Doctor{}, lookup(err, errNotFoundDoctor.Detail)
	}
	d.Graphs, err = s.Store.Graphs().ListGraphs(ctx, store.GraphFilter{DoctorID: id})
	return d, err
}

func (s *DoctorService) Update(ctx context.Context, id string, req clinicsdk.UpdateDoctorRequest) (domain.Doctor, error) {
	if err := validate(req); err != nil {
		return domain.Doctor{}, err
	}
	d, err := s.Get(ctx, id)
	if err != nil {
		return domain.Doctor{}, err
	}

	if req.FullName != nil {
		d.FullName = *req.FullName
	}
	if req.PhoneNumber != nil {
		d.PhoneNumber = *req.PhoneNumber
	}
	if req.Special != nil {
		d.Special = *req.Special
	}

	if err := persist(s.Store.Doctors().UpdateDoctor(ctx, d), ErrPhoneTaken, errNotFoundDoctor.Detail); err != nil {
		return domain.Doctor{}, err
	}
	return s.Get(ctx, id)
}

// Delete removes the doctor together with their slots and the appointments
// booked on them.
func (s *DoctorService) Delete(ctx context.Context, id string) error {
	if !idx.Valid(id) {
		return errNotFoundDoctor
	}
	if err := persist(s.Store.Doctors().DeleteDoctor(ctx, id), nil, errNotFoundDoctor.Detail); err != nil {
		return err
	}
	slogx.FromContext(ctx).Info("doctor deleted", slog.String("doctor_id", id))
	return nil
}
