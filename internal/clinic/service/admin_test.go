package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/clinic/internal/clinic/domain"
	"github.com/aussiebroadwan/clinic/pkg/clinicsdk"
	"github.com/aussiebroadwan/clinic/pkg/errx"
	"github.com/stretchr/testify/require"
)

func credentials(username, password string) clinicsdk.AdminCredentialsRequest {
	return clinicsdk.AdminCredentialsRequest{Username: username, Password: password}
}

func updateRole(role string) clinicsdk.UpdateAdminRequest {
	return clinicsdk.UpdateAdminRequest{Role: &role}
}

func TestAdminBootstrap(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)

	_, err := h.admins.Bootstrap(ctx, "wrong", credentials("root", "rootpass"))
	require.ErrorIs(t, err, ErrBootstrapUnauthorized)

	a, err := h.admins.Bootstrap(ctx, "bootstrap-token", credentials("root", "rootpass"))
	require.NoError(t, err)
	require.Equal(t, domain.RoleSuperAdmin, a.Role)

	_, err = h.admins.Bootstrap(ctx, "bootstrap-token", credentials("root2", "rootpass"))
	require.ErrorIs(t, err, ErrBootstrapAlready)

	t.Run("disabled without a token", func(t *testing.T) {
		h := newHarness(t)
		h.admins.BootstrapToken = ""
		_, err := h.admins.Bootstrap(ctx, "", credentials("root", "rootpass"))
		require.ErrorIs(t, err, ErrBootstrapUnauthorized)
	})
}

func TestAdminSignIn(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	_, err := h.admins.Create(ctx, credentials("operator", "pass1234"))
	require.NoError(t, err)

	_, err = h.admins.SignIn(ctx, credentials("operator", "wrongpass"))
	require.ErrorIs(t, err, ErrIncorrectCredentials)
	_, err = h.admins.SignIn(ctx, credentials("nobody", "pass1234"))
	require.ErrorIs(t, err, ErrIncorrectCredentials)

	code, err := h.admins.SignIn(ctx, credentials("operator", "pass1234"))
	require.NoError(t, err)
	require.Equal(t, testCode, code)

	_, err = h.admins.ConfirmSignIn(ctx, clinicsdk.AdminConfirmSignInRequest{Username: "operator", OTP: "000000"})
	require.ErrorIs(t, err, ErrInvalidOTP)

	pair, err := h.admins.ConfirmSignIn(ctx, clinicsdk.AdminConfirmSignInRequest{Username: "operator", OTP: testCode})
	require.NoError(t, err)
	c, err := h.tokens.VerifyAccess(pair.AccessToken)
	require.NoError(t, err)
	require.Equal(t, "admin", c.Role)
}

func TestAdminCreateDuplicate(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)

	_, err := h.admins.Create(ctx, credentials("operator", "pass1234"))
	require.NoError(t, err)
	_, err = h.admins.Create(ctx, credentials("operator", "pass5678"))
	require.ErrorIs(t, err, ErrUsernameTaken)
	require.Equal(t, 409, errx.KindOf(err).Status())
}

func TestAdminUpdate(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	a, err := h.admins.Create(ctx, credentials("operator", "pass1234"))
	require.NoError(t, err)

	t.Run("admin cannot change a role", func(t *testing.T) {
		_, err := h.admins.Update(ctx, a.Principal(), a.ID, updateRole("superadmin"))
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("same role is a no-op", func(t *testing.T) {
		_, err := h.admins.Update(ctx, a.Principal(), a.ID, updateRole("admin"))
		require.NoError(t, err)
	})

	t.Run("self rename", func(t *testing.T) {
		name := "operator2"
		got, err := h.admins.Update(ctx, a.Principal(), a.ID, clinicsdk.UpdateAdminRequest{Username: &name})
		require.NoError(t, err)
		require.Equal(t, name, got.Username)
	})

	t.Run("superadmin promotes", func(t *testing.T) {
		got, err := h.admins.Update(ctx, admin(domain.RoleSuperAdmin), a.ID, updateRole("superadmin"))
		require.NoError(t, err)
		require.Equal(t, domain.RoleSuperAdmin, got.Role)
	})
}

func TestAdminSelfDemotion(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	root, err := h.admins.Bootstrap(ctx, "bootstrap-token", credentials("root", "rootpass"))
	require.NoError(t, err)

	_, err = h.admins.Update(ctx, root.Principal(), root.ID, updateRole("admin"))
	require.ErrorIs(t, err, ErrSelfRoleChange)

	got, err := h.admins.Get(ctx, root.ID)
	require.NoError(t, err)
	require.Equal(t, domain.RoleSuperAdmin, got.Role)

	name := "root2"
	got, err = h.admins.Update(ctx, root.Principal(), root.ID, clinicsdk.UpdateAdminRequest{
		Username: &name,
		Role:     ptr("superadmin"),
	})
	require.NoError(t, err, "restating the current role is not a change")
	require.Equal(t, name, got.Username)
}

func TestAdminDelete(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	root, err := h.admins.Bootstrap(ctx, "bootstrap-token", credentials("root", "rootpass"))
	require.NoError(t, err)
	a, err := h.admins.Create(ctx, credentials("operator", "pass1234"))
	require.NoError(t, err)

	require.ErrorIs(t, h.admins.Delete(ctx, root.Principal(), root.ID), ErrSelfDelete)
	require.NoError(t, h.admins.Delete(ctx, root.Principal(), a.ID))
	require.ErrorIs(t, h.admins.Delete(ctx, root.Principal(), a.ID), errNotFoundAdmin)

	list, err := h.admins.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
}
