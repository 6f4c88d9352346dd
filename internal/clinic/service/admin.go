package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/clinic/internal/clinic/domain"
	"github.com/aussiebroadwan/clinic/internal/clinic/store"
	"github.com/aussiebroadwan/clinic/pkg/clinicsdk"
	"github.com/aussiebroadwan/clinic/pkg/cryptox"
	"github.com/aussiebroadwan/clinic/pkg/errx"
	"github.com/aussiebroadwan/clinic/pkg/idx"
	"github.com/aussiebroadwan/clinic/pkg/slogx"
)

var (
	ErrBootstrapAlready      = errx.Conflict("superadmin already exists")
	ErrBootstrapUnauthorized = errx.Unauthorized("invalid bootstrap token")
	ErrSelfDelete            = errx.Conflict("cannot delete your own account")
	ErrSelfRoleChange        = errx.Conflict("cannot change your own role")
)

type AdminService struct {
	Store    store.Store
	Sessions *SessionService

	// BootstrapToken gates creation of the first superadmin. Empty disables
	// bootstrapping.
	BootstrapToken string
}

// Bootstrap creates the first superadmin. It succeeds once.
func (s *AdminService) Bootstrap(ctx context.Context, token string, req clinicsdk.AdminCredentialsRequest) (domain.Admin, error) {
	l := slogx.FromContext(ctx)

	if s.BootstrapToken == "" || subtle.ConstantTimeCompare([]byte(token), []byte(s.BootstrapToken)) != 1 {
		l.Warn("unauthorized bootstrap attempt")
		return domain.Admin{}, ErrBootstrapUnauthorized
	}
	if err := validate(req); err != nil {
		return domain.Admin{}, err
	}

	var a domain.Admin
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		exists, err := tx.Admins().HasRole(ctx, domain.RoleSuperAdmin)
		if err != nil {
			return err
		}
		if exists {
			return ErrBootstrapAlready
		}
		a, err = newAdmin(req, domain.RoleSuperAdmin)
		if err != nil {
			return err
		}
		return persist(tx.Admins().CreateAdmin(ctx, a), ErrUsernameTaken, "")
	})
	if err != nil {
		return domain.Admin{}, err
	}

	l.Info("superadmin bootstrapped", slog.String("admin_id", a.ID))
	return a, nil
}

// Create adds a plain admin.
func (s *AdminService) Create(ctx context.Context, req clinicsdk.AdminCredentialsRequest) (domain.Admin, error) {
	if err := validate(req); err != nil {
		return domain.Admin{}, err
	}
	a, err := newAdmin(req, domain.RoleAdmin)
	if err != nil {
		return domain.Admin{}, err
	}
	if err := persist(s.Store.Admins().CreateAdmin(ctx, a), ErrUsernameTaken, ""); err != nil {
		return domain.Admin{}, err
	}
	slogx.FromContext(ctx).Info("admin created", slog.String("admin_id", a.ID))
	return s.Get(ctx, a.ID)
}

func newAdmin(req clinicsdk.AdminCredentialsRequest, role domain.Role) (domain.Admin, error) {
	hash, err := cryptox.HashPassword(req.Password)
	if err != nil {
		return domain.Admin{}, fmt.Errorf("hash password: %w", err)
	}
	return domain.Admin{
		ID:           idx.New().String(),
		Username:     req.Username,
		PasswordHash: hash,
		Role:         role,
	}, nil
}

// SignIn checks username and password and then issues an OTP exactly like
// the doctor flow. It returns whatever RequestOTP returns.
func (s *AdminService) SignIn(ctx context.Context, req clinicsdk.AdminCredentialsRequest) (string, error) {
	if err := validate(req); err != nil {
		return "", err
	}

	a, err := s.Store.Admins().GetAdminByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrIncorrectCredentials
		}
		return "", err
	}
	if err := cryptox.VerifyPassword(req.Password, a.PasswordHash); err != nil {
		if !errors.Is(err, cryptox.ErrPasswordMismatch) {
			slogx.FromContext(ctx).Error("stored password hash unusable", slog.String("admin_id", a.ID), slog.Any("error", err))
		}
		return "", ErrIncorrectCredentials
	}

	return s.Sessions.RequestOTP(ctx, domain.KindAdmin, a.Username)
}

func (s *AdminService) ConfirmSignIn(ctx context.Context, req clinicsdk.AdminConfirmSignInRequest) (TokenPair, error) {
	if err := validate(req); err != nil {
		return TokenPair{}, err
	}
	return s.Sessions.ConfirmOTP(ctx, domain.KindAdmin, req.Username, req.OTP)
}

func (s *AdminService) List(ctx context.Context) ([]domain.Admin, error) {
	return s.Store.Admins().ListAdmins(ctx)
}

func (s *AdminService) Get(ctx context.Context, id string) (domain.Admin, error) {
	if !idx.Valid(id) {
		return domain.Admin{}, errNotFoundAdmin
	}
	a, err := s.Store.Admins().GetAdminByID(ctx, id)
	return a, lookup(err, errNotFoundAdmin.Detail)
}

// Update applies the non-nil fields of req on behalf of caller. Only a
// superadmin may change a role, and never their own, so the last superadmin
// cannot demote itself.
func (s *AdminService) Update(
	ctx context.Context,
	caller domain.Principal,
	id string,
	req clinicsdk.UpdateAdminRequest,
) (domain.Admin, error) {
	if err := validate(req); err != nil {
		return domain.Admin{}, err
	}
	a, err := s.Get(ctx, id)
	if err != nil {
		return domain.Admin{}, err
	}

	if req.Role != nil && domain.Role(*req.Role) != a.Role {
		if caller.Role != domain.RoleSuperAdmin {
			return domain.Admin{}, ErrForbidden
		}
		if caller.ID == a.ID {
			return domain.Admin{}, ErrSelfRoleChange
		}
		a.Role = domain.Role(*req.Role)
	}
	if req.Username != nil {
		a.Username = *req.Username
	}
	if req.Password != nil {
		hash, err := cryptox.HashPassword(*req.Password)
		if err != nil {
			return domain.Admin{}, fmt.Errorf("hash password: %w", err)
		}
		a.PasswordHash = hash
	}

	if err := persist(s.Store.Admins().UpdateAdmin(ctx, a), ErrUsernameTaken, errNotFoundAdmin.Detail); err != nil {
		return domain.Admin{}, err
	}
	return s.Get(ctx, id)
}

// Delete removes an admin. A superadmin cannot delete their own account,
// which keeps at least one superadmin around once bootstrapped.
func (s *AdminService) Delete(ctx context.Context, caller domain.Principal, id string) error {
	if !idx.Valid(id) {
		return errNotFoundAdmin
	}
	if caller.ID == id {
		return ErrSelfDelete
	}
	if err := persist(s.Store.Admins().DeleteAdmin(ctx, id), nil, errNotFoundAdmin.Detail); err != nil {
		return err
	}
	slogx.FromContext(ctx).Info("admin deleted", slog.String("admin_id", id), slog.String("by", caller.ID))
	return nil
}
