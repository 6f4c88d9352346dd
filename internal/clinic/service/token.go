package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/clinic/internal/clinic/domain"
	"github.com/aussiebroadwan/clinic/internal/clinic/store"
	"github.com/aussiebroadwan/clinic/pkg/cryptox"
	"github.com/aussiebroadwan/clinic/pkg/jwtx"
)

// ErrRevoked is returned by VerifyRefresh for a signed-out refresh token.
var ErrRevoked = errors.New("token revoked")

// TokenConfig configures a TokenService. Access and refresh tokens are signed
// with separate secrets so one cannot be forged from the other.
type TokenConfig struct {
	AccessSecret  string
	RefreshSecret string
	Issuer        string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
	Leeway        time.Duration

	// Now overrides the clock, for tests.
	Now func() time.Time
}

type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	RefreshExpiresAt time.Time
}

type TokenService struct {
	Store store.Store

	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time

	accessSigner    jwtx.Signer
	refreshSigner   jwtx.Signer
	accessVerifier  jwtx.Verifier
	refreshVerifier jwtx.Verifier
}

func NewTokenService(cfg TokenConfig, st store.Store) (*TokenService, error) {
	if cfg.AccessSecret == cfg.RefreshSecret {
		return nil, errors.New("access and refresh secrets must differ")
	}
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = jwtx.DefaultAccessTokenTTL
	}
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = jwtx.DefaultRefreshTokenTTL
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	accessSigner, err := jwtx.NewHMACSigner(cfg.AccessSecret)
	if err != nil {
		return nil, fmt.Errorf("access secret: %w", err)
	}
	refreshSigner, err := jwtx.NewHMACSigner(cfg.RefreshSecret)
	if err != nil {
		return nil, fmt.Errorf("refresh secret: %w", err)
	}

	opts := jwtx.VerifyOptions{Issuer: cfg.Issuer, Leeway: cfg.Leeway, Now: cfg.Now}
	accessVerifier, err := jwtx.NewHMACVerifier(cfg.AccessSecret, jwtx.TokenAccess, opts)
	if err != nil {
		return nil, err
	}
	refreshVerifier, err := jwtx.NewHMACVerifier(cfg.RefreshSecret, jwtx.TokenRefresh, opts)
	if err != nil {
		return nil, err
	}

	return &TokenService{
		Store:           st,
		issuer:          cfg.Issuer,
		accessTTL:       cfg.AccessTTL,
		refreshTTL:      cfg.RefreshTTL,
		now:             cfg.Now,
		accessSigner:    accessSigner,
		refreshSigner:   refreshSigner,
		accessVerifier:  accessVerifier,
		refreshVerifier: refreshVerifier,
	}, nil
}

// AccessVerifier is what the Authenticate middleware checks bearer tokens with.
func (s *TokenService) AccessVerifier() jwtx.Verifier { return s.accessVerifier }

func (s *TokenService) RefreshTTL() time.Duration { return s.refreshTTL }

// IssueAccess mints a short-lived access token for p.
func (s *TokenService) IssueAccess(p domain.Principal) (string, error) {
	c := jwtx.NewClaims(p.ID, p.Role.String(), jwtx.TokenAccess, s.accessTTL, s.issuer, s.now())
	return s.accessSigner.Sign(c)
}

// IssuePair mints an access token and a refresh token for the same principal.
func (s *TokenService) IssuePair(p domain.Principal) (TokenPair, error) {
	if p.ID == "" || !p.Role.Valid() {
		return TokenPair{}, errors.New("cannot issue tokens for an incomplete principal")
	}

	access, err := s.IssueAccess(p)
	if err != nil {
		return TokenPair{}, fmt.Errorf("sign access token: %w", err)
	}

	c := jwtx.NewClaims(p.ID, p.Role.String(), jwtx.TokenRefresh, s.refreshTTL, s.issuer, s.now())
	refresh, err := s.refreshSigner.Sign(c)
	if err != nil {
		return TokenPair{}, fmt.Errorf("sign refresh token: %w", err)
	}

	return TokenPair{
		AccessToken:      access,
		RefreshToken:     refresh,
		RefreshExpiresAt: c.ExpiresAtTime(),
	}, nil
}

func (s *TokenService) VerifyAccess(token string) (jwtx.Claims, error) {
	return s.accessVerifier.Verify(token)
}

// VerifyRefresh checks signature, expiry and type, then the revocation list.
func (s *TokenService) VerifyRefresh(ctx context.Context, token string) (jwtx.Claims, error) {
	c, err := s.refreshVerifier.Verify(token)
	if err != nil {
		return jwtx.Claims{}, err
	}

	revoked, err := s.Store.RevokedTokens().IsRevoked(ctx, cryptox.FingerprintToken(token))
	if err != nil {
		return jwtx.Claims{}, fmt.Errorf("check revocation: %w", err)
	}
	if revoked {
		return jwtx.Claims{}, ErrRevoked
	}
	return c, nil
}

// Revoke denylists a verified refresh token until it would have expired.
func (s *TokenService) Revoke(ctx context.Context, token string, c jwtx.Claims) error {
	return s.Store.RevokedTokens().RevokeToken(ctx, domain.RevokedToken{
		Fingerprint: cryptox.FingerprintToken(token),
		ExpiresAt:   c.ExpiresAtTime(),
	})
}
