package service

import (
	"errors"
	"fmt"

	"github.com/aussiebroadwan/clinic/internal/clinic/store"
	"github.com/aussiebroadwan/clinic/pkg/clinicsdk"
	"github.com/aussiebroadwan/clinic/pkg/errx"
)

var (
	ErrIncorrectCredentials = errx.Unauthorized("incorrect credentials")
	ErrPhoneTaken           = errx.Conflict("Phone number already exist")
	ErrUsernameTaken        = errx.Conflict("Username already exist")
	ErrInvalidOTP           = errx.InvalidOTP("OTP expired or incorrect")
	ErrRefreshMissing       = errx.Unauthorized("Refresh token not found")
	ErrRefreshExpired       = errx.Unauthorized("Refresh token expired")
	ErrRefreshInvalid       = errx.Unauthorized("Invalid refresh token")
	ErrRefreshRevoked       = errx.Unauthorized("Refresh token revoked")
	ErrForbidden            = errx.Forbidden("Forbidden user")

	errNotFoundAdmin       = errx.NotFound("Admin not found")
	errNotFoundDoctor      = errx.NotFound("Doctor not found")
	errNotFoundPatient     = errx.NotFound("Patient not found")
	errNotFoundGraph       = errx.NotFound("Graph not found")
	errNotFoundAppointment = errx.NotFound("Appointment not found")
)

// validate runs the request's tag checks and reports failures as a 400.
func validate(req any) error {
	if err := clinicsdk.Validate(req); err != nil {
		return errx.Wrap(errx.KindValidation, err.Error(), err)
	}
	return nil
}

// lookup maps store.ErrNotFound onto a NotFound carrying detail and wraps
// anything else as an internal failure.
func lookup(err error, detail string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, store.ErrNotFound) {
		return errx.NotFound(detail)
	}
	return fmt.Errorf("%s: %w", detail, err)
}

// persist maps write-side store sentinels. conflict is returned for
// uniqueness violations.
func persist(err error, conflict error, notFound string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrAlreadyExists):
		return conflict
	case errors.Is(err, store.ErrNotFound):
		return errx.NotFound(notFound)
	case errors.Is(err, store.ErrInvalidReference):
		return errx.Validation("referenced record does not exist")
	}
	return err
}
