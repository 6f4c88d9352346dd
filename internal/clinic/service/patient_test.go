package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/clinic/pkg/clinicsdk"
	"github.com/aussiebroadwan/clinic/pkg/errx"
	"github.com/aussiebroadwan/clinic/pkg/idx"
	"github.com/stretchr/testify/require"
)

func patientCreds(phone, password string) clinicsdk.PatientSignInRequest {
	return clinicsdk.PatientSignInRequest{PhoneNumber: phone, Password: password}
}

func ptr[T any](v T) *T { return &v }

func TestPatientSignUp(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)

	req := clinicsdk.PatientSignUpRequest{
		FullName:    "Dilnoza Yusupova",
		PhoneNumber: "+998911234567",
		Password:    "secret1",
		Address:     "Samarkand",
		Age:         27,
		Gender:      "female",
	}

	p, pair, err := h.patients.SignUp(ctx, req)
	require.NoError(t, err)
	require.True(t, idx.Valid(p.ID))
	require.NotEqual(t, req.Password, p.PasswordHash)

	c, err := h.tokens.VerifyAccess(pair.AccessToken)
	require.NoError(t, err)
	require.Equal(t, p.ID, c.Subject)
	require.Equal(t, "patient", c.Role)

	_, _, err = h.patients.SignUp(ctx, req)
	require.ErrorIs(t, err, ErrPhoneTaken)
	require.Equal(t, 409, errx.KindOf(err).Status())
	require.Equal(t, "Phone number already exist", errx.Message(err))

	req.PhoneNumber = "12345"
	_, _, err = h.patients.SignUp(ctx, req)
	require.Equal(t, errx.KindValidation, errx.KindOf(err))
}

func TestPatientSignIn(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	p := h.patient(t, "+998912222222")

	tests := []struct {
		name     string
		phone    string
		password string
		wantErr  error
	}{
		{"correct", p.PhoneNumber, "secret1", nil},
		{"wrong password", p.PhoneNumber, "secret2", ErrIncorrectCredentials},
		{"unknown phone", "+998919999999", "secret1", ErrIncorrectCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pair, err := h.patients.SignIn(ctx, patientCreds(tt.phone, tt.password))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Equal(t, "incorrect credentials", errx.Message(err))
				return
			}
			require.NoError(t, err)
			require.NotEmpty(t, pair.AccessToken)
		})
	}
}

func TestPatientUpdate(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	p := h.patient(t, "+998913333333")
	other := h.patient(t, "+998914444444")

	got, err := h.patients.Update(ctx, p.ID, clinicsdk.UpdatePatientRequest{
		Address:  ptr("Bukhara"),
		Password: ptr("newpass"),
	})
	require.NoError(t, err)
	require.Equal(t, "Bukhara", got.Address)
	require.Equal(t, p.FullName, got.FullName)

	_, err = h.patients.SignIn(ctx, patientCreds(p.PhoneNumber, "secret1"))
	require.ErrorIs(t, err, ErrIncorrectCredentials)
	_, err = h.patients.SignIn(ctx, patientCreds(p.PhoneNumber, "newpass"))
	require.NoError(t, err)

	_, err = h.patients.Update(ctx, p.ID, clinicsdk.UpdatePatientRequest{PhoneNumber: ptr(other.PhoneNumber)})
	require.ErrorIs(t, err, ErrPhoneTaken)

	_, err = h.patients.Update(ctx, idx.New().String(), clinicsdk.UpdatePatientRequest{Age: ptr(40)})
	require.ErrorIs(t, err, errNotFoundPatient)
}

func TestPatientGetDelete(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	p := h.patient(t, "+998915555555")

	_, err := h.patients.Get(ctx, "not-an-id")
	require.ErrorIs(t, err, errNotFoundPatient)

	got, err := h.patients.Get(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, p.PhoneNumber, got.PhoneNumber)

	list, err := h.patients.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, h.patients.Delete(ctx, p.ID))
	require.ErrorIs(t, h.patients.Delete(ctx, p.ID), errNotFoundPatient)
}
