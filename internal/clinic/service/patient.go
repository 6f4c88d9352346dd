package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/clinic/internal/clinic/domain"
	"github.com/aussiebroadwan/clinic/internal/clinic/store"
	"github.com/aussiebroadwan/clinic/pkg/clinicsdk"
	"github.com/aussiebroadwan/clinic/pkg/cryptox"
	"github.com/aussiebroadwan/clinic/pkg/idx"
	"github.com/aussiebroadwan/clinic/pkg/slogx"
)

type PatientService struct {
	Store  store.Store
	Tokens *TokenService
}

// SignUp registers a patient and signs them in straight away.
func (s *PatientService) SignUp(ctx context.Context, req clinicsdk.PatientSignUpRequest) (domain.Patient, TokenPair, error) {
	if err := validate(req); err != nil {
		return domain.Patient{}, TokenPair{}, err
	}

	// Cheap pre-check; the unique index still settles races.
	if _, err := s.Store.Patients().GetPatientByPhone(ctx, req.PhoneNumber); err == nil {
		return domain.Patient{}, TokenPair{}, ErrPhoneTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.Patient{}, TokenPair{}, err
	}

	hash, err := cryptox.HashPassword(req.Password)
	if err != nil {
		return domain.Patient{}, TokenPair{}, fmt.Errorf("hash password: %w", err)
	}

	p := domain.Patient{
		ID:           idx.New().String(),
		FullName:     req.FullName,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: hash,
		Address:      req.Address,
		Age:          req.Age,
		Gender:       domain.Gender(req.Gender),
	}
	if err := persist(s.Store.Patients().CreatePatient(ctx, p), ErrPhoneTaken, ""); err != nil {
		return domain.Patient{}, TokenPair{}, err
	}

	pair, err := s.Tokens.IssuePair(p.Principal())
	if err != nil {
		return domain.Patient{}, TokenPair{}, err
	}

	slogx.FromContext(ctx).Info("patient signed up", slog.String("patient_id", p.ID))
	return p, pair, nil
}

// SignIn checks phone and password. Both an unknown phone and a wrong
// password yield the same error.
func (s *PatientService) SignIn(ctx context.Context, req clinicsdk.PatientSignInRequest) (TokenPair, error) {
	if err := validate(req); err != nil {
		return TokenPair{}, err
	}
	l := slogx.FromContext(ctx)

	p, err := s.Store.Patients().GetPatientByPhone(ctx, req.PhoneNumber)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return TokenPair{}, ErrIncorrectCredentials
		}
		return TokenPair{}, err
	}

	if err := cryptox.VerifyPassword(req.Password, p.PasswordHash); err != nil {
		if !errors.Is(err, cryptox.ErrPasswordMismatch) {
			l.Error("stored password hash unusable", slog.String("patient_id", p.ID), slog.Any("error", err))
		}
		return TokenPair{}, ErrIncorrectCredentials
	}

	if cryptox.NeedsRehash(p.PasswordHash) {
		if hash, err := cryptox.HashPassword(req.Password); err == nil {
			if err := s.Store.Patients().UpdatePasswordHash(ctx, p.ID, hash); err != nil {
				l.Warn("failed to upgrade password hash", slog.String("patient_id", p.ID), slog.Any("error", err))
			}
		}
	}

	return s.Tokens.IssuePair(p.Principal())
}

func (s *PatientService) List(ctx context.Context) ([]domain.Patient, error) {
	return s.Store.Patients().ListPatients(ctx)
}

func (s *PatientService) Get(ctx context.Context, id string) (domain.Patient, error) {
	if !idx.Valid(id) {
		return domain.Patient{}, errNotFoundPatient
	}
	p, err := s.Store.Patients().GetPatientByID(ctx, id)
	return p, lookup(err, errNotFoundPatient.Detail)
}

// Update applies the non-nil fields of req. A new password is hashed.
func (s *PatientService) Update(ctx context.Context, id string, req clinicsdk.UpdatePatientRequest) (domain.Patient, error) {
	if err := validate(req); err != nil {
		return domain.Patient{}, err
	}
	p, err := s.Get(ctx, id)
	if err != nil {
		return domain.Patient{}, err
	}

	if req.FullName != nil {
		p.FullName = *req.FullName
	}
	if req.PhoneNumber != nil {
		p.PhoneNumber = *req.PhoneNumber
	}
	if req.Address != nil {
		p.Address = *req.Address
	}
	if req.Age != nil {
		p.Age = *req.Age
	}
	if req.Gender != nil {
		p.Gender = domain.Gender(*req.Gender)
	}
	if req.Password != nil {
		hash, err := cryptox.HashPassword(*req.Password)
		if err != nil {
			return domain.Patient{}, fmt.Errorf("hash password: %w", err)
		}
		p.PasswordHash = hash
	}

	if err := persist(s.Store.Patients().UpdatePatient(ctx, p), ErrPhoneTaken, errNotFoundPatient.Detail); err != nil {
		return domain.Patient{}, err
	}
	return s.Get(ctx, id)
}

func (s *PatientService) Delete(ctx context.Context, id string) error {
	if !idx.Valid(id) {
		return errNotFoundPatient
	}
	return persist(s.Store.Patients().DeletePatient(ctx, id), nil, errNotFoundPatient.Detail)
}
