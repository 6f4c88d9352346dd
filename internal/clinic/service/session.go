package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/clinic/internal/clinic/domain"
	"github.com/aussiebroadwan/clinic/internal/clinic/otp"
	"github.com/aussiebroadwan/clinic/internal/clinic/store"
	"github.com/aussiebroadwan/clinic/pkg/errx"
	"github.com/aussiebroadwan/clinic/pkg/jwtx"
	"github.com/aussiebroadwan/clinic/pkg/slogx"
)

// CodeGenerator produces one-time codes.
type CodeGenerator interface {
	Generate() (string, error)
}

// OTPAcknowledgement is returned instead of the code when echoing is off.
const OTPAcknowledgement = "OTP sent"

// SessionService drives the sign-in state machine of every principal kind:
// request an OTP, confirm it for a token pair, refresh, sign out.
type SessionService struct {
	Store  store.Store
	OTP    otp.Store
	Codes  CodeGenerator
	Sender otp.Sender
	Tokens *TokenService

	// OTPTTL is how long an issued code stays valid.
	OTPTTL time.Duration

	// EchoOTP returns the code in the sign-in response as well as sending it.
	EchoOTP bool

	// RotateRefresh makes Refresh revoke the presented refresh token and
	// issue a new one.
	RotateRefresh bool
}

// Refreshed is the outcome of a refresh. Pair is set only when rotation is on.
type Refreshed struct {
	AccessToken string
	Pair        *TokenPair
}

func (s *SessionService) ttl() time.Duration {
	if s.OTPTTL <= 0 {
		return otp.DefaultTTL
	}
	return s.OTPTTL
}

// principalByIdentifier resolves a doctor or patient by phone number, or an
// admin by username.
func (s *SessionService) principalByIdentifier(
	ctx context.Context,
	kind domain.Kind,
	identifier string,
) (domain.Principal, error) {
	switch kind {
	case domain.KindAdmin:
		a, err := s.Store.Admins().GetAdminByUsername(ctx, identifier)
		return a.Principal(), lookup(err, errNotFoundAdmin.Detail)
	case domain.KindDoctor:
		d, err := s.Store.Doctors().GetDoctorByPhone(ctx, identifier)
		return d.Principal(), lookup(err, errNotFoundDoctor.Detail)
	case domain.KindPatient:
		p, err := s.Store.Patients().GetPatientByPhone(ctx, identifier)
		return p.Principal(), lookup(err, errNotFoundPatient.Detail)
	}
	return domain.Principal{}, fmt.Errorf("unknown principal kind %q", kind)
}

func (s *SessionService) principalByID(ctx context.Context, kind domain.Kind, id string) (domain.Principal, error) {
	switch kind {
	case domain.KindAdmin:
		a, err := s.Store.Admins().GetAdminByID(ctx, id)
		return a.Principal(), lookup(err, errNotFoundAdmin.Detail)
	case domain.KindDoctor:
		d, err := s.Store.Doctors().GetDoctorByID(ctx, id)
		return d.Principal(), lookup(err, errNotFoundDoctor.Detail)
	case domain.KindPatient:
		p, err := s.Store.Patients().GetPatientByID(ctx, id)
		return p.Principal(), lookup(err, errNotFoundPatient.Detail)
	}
	return domain.Principal{}, fmt.Errorf("unknown principal kind %q", kind)
}

// RequestOTP issues a fresh code for the principal, replacing any earlier
// one. It returns the code when EchoOTP is set, otherwise an acknowledgement.
func (s *SessionService) RequestOTP(ctx context.Context, kind domain.Kind, identifier string) (string, error) {
	l := slogx.FromContext(ctx)

	p, err := s.principalByIdentifier(ctx, kind, identifier)
	if err != nil {
		return "", err
	}

	code, err := s.Codes.Generate()
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}

	if err := s.OTP.Set(ctx, otp.Key(string(kind), p.Identifier), code, s.ttl()); err != nil {
		return "", fmt.Errorf("store otp: %w", err)
	}

	if s.Sender != nil {
		if err := s.Sender.Send(ctx, p.Identifier, code); err != nil {
			// The code is stored; an echoing deployment can still complete sign-in.
			l.Error("failed to dispatch otp", slog.String("kind", string(kind)), slog.Any("error", err))
			if !s.EchoOTP {
				return "", fmt.Errorf("send otp: %w", err)
			}
		}
	}

	l.Info("otp issued", slog.String("kind", string(kind)), slog.String("principal_id", p.ID))
	if s.EchoOTP {
		return code, nil
	}
	return OTPAcknowledgement, nil
}

// ConfirmOTP exchanges a live code for a token pair. The code is consumed on
// success. Wrong codes count against it and the store drops it once its
// attempts run out.
func (s *SessionService) ConfirmOTP(ctx context.Context, kind domain.Kind, identifier, code string) (TokenPair, error) {
	p, err := s.principalByIdentifier(ctx, kind, identifier)
	if err != nil {
		return TokenPair{}, err
	}

	err = s.OTP.Consume(ctx, otp.Key(string(kind), p.Identifier), code)
	switch {
	case errors.Is(err, otp.ErrMiss), errors.Is(err, otp.ErrMismatch):
		slogx.FromContext(ctx).Info("otp rejected", slog.String("kind", string(kind)), slog.String("principal_id", p.ID))
		return TokenPair{}, ErrInvalidOTP
	case err != nil:
		return TokenPair{}, fmt.Errorf("consume otp: %w", err)
	}

	return s.Tokens.IssuePair(p)
}

// verifyRefresh checks a presented refresh cookie for the kind.
func (s *SessionService) verifyRefresh(ctx context.Context, kind domain.Kind, token string) (jwtx.Claims, error) {
	if token == "" {
		return jwtx.Claims{}, ErrRefreshMissing
	}

	c, err := s.Tokens.VerifyRefresh(ctx, token)
	switch {
	case errors.Is(err, jwtx.ErrExpired):
		return jwtx.Claims{}, ErrRefreshExpired
	case errors.Is(err, ErrRevoked):
		return jwtx.Claims{}, ErrRefreshRevoked
	case errors.Is(err, jwtx.ErrMalformed),
		errors.Is(err, jwtx.ErrInvalidSig),
		errors.Is(err, jwtx.ErrInvalidClaim),
		errors.Is(err, jwtx.ErrTokenType),
		errors.Is(err, jwtx.ErrIssuer),
		errors.Is(err, jwtx.ErrNotYetValid):
		return jwtx.Claims{}, errx.Wrap(errx.KindUnauthorized, ErrRefreshInvalid.Detail, err)
	case err != nil:
		return jwtx.Claims{}, err
	}

	// A doctor's token replayed in the admin cookie is not an admin session.
	if !kind.Admits(domain.Role(c.Role)) {
		return jwtx.Claims{}, ErrRefreshInvalid
	}
	return c, nil
}

// SignOut revokes the presented refresh token. The caller clears the cookie.
func (s *SessionService) SignOut(ctx context.Context, kind domain.Kind, refreshToken string) error {
	c, err := s.verifyRefresh(ctx, kind, refreshToken)
	if err != nil {
		return err
	}
	if err := s.Tokens.Revoke(ctx, refreshToken, c); err != nil {
		return fmt.Errorf("revoke refresh token: %w", err)
	}
	slogx.FromContext(ctx).Info("signed out", slog.String("kind", string(kind)), slog.String("principal_id", c.Subject))
	return nil
}

// Refresh mints a new access token. The role comes from the stored record,
// never from the presented token.
func (s *SessionService) Refresh(ctx context.Context, kind domain.Kind, refreshToken string) (Refreshed, error) {
	c, err := s.verifyRefresh(ctx, kind, refreshToken)
	if err != nil {
		return Refreshed{}, err
	}

	p, err := s.principalByID(ctx, kind, c.Subject)
	if err != nil {
		if errx.IsKind(err, errx.KindNotFound) {
			return Refreshed{}, ErrRefreshInvalid
		}
		return Refreshed{}, err
	}

	if !s.RotateRefresh {
		access, err := s.Tokens.IssueAccess(p)
		if err != nil {
			return Refreshed{}, fmt.Errorf("sign access token: %w", err)
		}
		return Refreshed{AccessToken: access}, nil
	}

	if err := s.Tokens.Revoke(ctx, refreshToken, c); err != nil {
		return Refreshed{}, fmt.Errorf("revoke refresh token: %w", err)
	}
	pair, err := s.Tokens.IssuePair(p)
	if err != nil {
		return Refreshed{}, err
	}
	return Refreshed{AccessToken: pair.AccessToken, Pair: &pair}, nil
}
