package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/aussiebroadwan/clinic/internal/clinic/domain"
	"github.com/aussiebroadwan/clinic/internal/clinic/store"
	"github.com/aussiebroadwan/clinic/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())
	return s
}

func seedDoctor(t *testing.T, s *Store, phone string) domain.Doctor {
	t.Helper()
	d := domain.Doctor{ID: idx.New().String(), FullName: "Dr Karimov", PhoneNumber: phone, Special: "cardiology"}
	require.NoError(t, s.Doctors().CreateDoctor(context.Background(), d))
	return d
}

func seedPatient(t *testing.T, s *Store, phone string) domain.Patient {
	t.Helper()
	p := domain.Patient{
		ID:           idx.New().String(),
		FullName:     "Aziz Rakhimov",
		PhoneNumber:  phone,
		PasswordHash: "hash",
		Address:      "Tashkent",
		Age:          31,
		Gender:       domain.GenderMale,
	}
	require.NoError(t, s.Patients().CreatePatient(context.Background(), p))
	return p
}

func TestApplyMigrations_Idempotent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Ping(context.Background()))
}

func TestAdmins(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	has, err := s.Admins().HasRole(ctx, domain.RoleSuperAdmin)
	require.NoError(t, err)
	require.False(t, has)

	root := domain.Admin{ID: idx.New().String(), Username: "root", PasswordHash: "h", Role: domain.RoleSuperAdmin}
	require.NoError(t, s.Admins().CreateAdmin(ctx, root))

	dup := domain.Admin{ID: idx.New().String(), Username: "root", PasswordHash: "h", Role: domain.RoleAdmin}
	require.ErrorIs(t, s.Admins().CreateAdmin(ctx, dup), store.ErrAlreadyExists)

	has, err = s.Admins().HasRole(ctx, domain.RoleSuperAdmin)
	require.NoError(t, err)
	require.True(t, has)

	got, err := s.Admins().GetAdminByUsername(ctx, "root")
	require.NoError(t, err)
	require.Equal(t, root.ID, got.ID)
	require.Equal(t, domain.RoleSuperAdmin, got.Role)
	require.False(t, got.CreatedAt.IsZero())

	got.Username = "rooted"
	require.NoError(t, s.Admins().UpdateAdmin(ctx, got))
	_, err = s.Admins().GetAdminByUsername(ctx, "root")
	require.ErrorIs(t, err, store.ErrNotFound)

	list, err := s.Admins().ListAdmins(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, s.Admins().DeleteAdmin(ctx, root.ID))
	require.ErrorIs(t, s.Admins().DeleteAdmin(ctx, root.ID), store.ErrNotFound)
	_, err = s.Admins().GetAdminByID(ctx, root.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestDoctors_UniquePhone(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	a := seedDoctor(t, s, "+998901234567")
	b := seedDoctor(t, s, "+998901234568")

	clash := domain.Doctor{ID: idx.New().String(), FullName: "x", PhoneNumber: a.PhoneNumber, Special: "x"}
	require.ErrorIs(t, s.Doctors().CreateDoctor(ctx, clash), store.ErrAlreadyExists)

	b.PhoneNumber = a.PhoneNumber
	require.ErrorIs(t, s.Doctors().UpdateDoctor(ctx, b), store.ErrAlreadyExists)

	got, err := s.Doctors().GetDoctorByPhone(ctx, a.PhoneNumber)
	require.NoError(t, err)
	require.Equal(t, a.ID, got.ID)

	missing := domain.Doctor{ID: idx.New().String(), PhoneNumber: "+998900000000"}
	require.ErrorIs(t, s.Doctors().UpdateDoctor(ctx, missing), store.ErrNotFound)
}

func TestPatients(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	p := seedPatient(t, s, "+998901112233")

	clash := p
	clash.ID = idx.New().String()
	require.ErrorIs(t, s.Patients().CreatePatient(ctx, clash), store.ErrAlreadyExists)

	require.NoError(t, s.Patients().UpdatePasswordHash(ctx, p.ID, "new-hash"))
	got, err := s.Patients().GetPatientByPhone(ctx, p.PhoneNumber)
	require.NoError(t, err)
	require.Equal(t, "new-hash", got.PasswordHash)
	require.Equal(t, domain.GenderMale, got.Gender)
	require.Equal(t, 31, got.Age)

	list, err := s.Patients().ListPatients(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestGraphsAndAppointments_Cascade(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	doc := seedDoctor(t, s, "+998901234567")
	pat := seedPatient(t, s, "+998907654321")

	g := domain.Graph{ID: idx.New().String(), Date: "2025-06-01", Time: "09:30", DoctorID: doc.ID}
	require.NoError(t, s.Graphs().CreateGraph(ctx, g))

	orphan := domain.Graph{ID: idx.New().String(), Date: "2025-06-01", Time: "10:00", DoctorID: idx.New().String()}
	require.ErrorIs(t, s.Graphs().CreateGraph(ctx, orphan), store.ErrInvalidReference)

	got, err := s.Graphs().GetGraphByID(ctx, g.ID)
	require.NoError(t, err)
	require.Equal(t, domain.GraphFree, got.Status)

	a := domain.Appointment{ID: idx.New().String(), PatientID: pat.ID, GraphID: g.ID, Complaint: "headache"}
	require.NoError(t, s.Appointments().CreateAppointment(ctx, a))

	appt, err := s.Appointments().GetAppointmentByID(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, domain.AppointmentPending, appt.Status)

	byPatient, err := s.Appointments().ListAppointments(ctx, store.AppointmentFilter{PatientID: pat.ID})
	require.NoError(t, err)
	require.Len(t, byPatient, 1)

	none, err := s.Appointments().ListAppointments(ctx, store.AppointmentFilter{Status: domain.AppointmentRejected})
	require.NoError(t, err)
	require.Empty(t, none)

	byDoctor, err := s.Graphs().ListGraphs(ctx, store.GraphFilter{DoctorID: doc.ID})
	require.NoError(t, err)
	require.Len(t, byDoctor, 1)

	require.NoError(t, s.Doctors().DeleteDoctor(ctx, doc.ID))

	_, err = s.Graphs().GetGraphByID(ctx, g.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.Appointments().GetAppointmentByID(ctx, a.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestRevokedTokens(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	now := time.Now()

	require.NoError(t, s.RevokedTokens().RevokeToken(ctx, domain.RevokedToken{Fingerprint: "old", ExpiresAt: now.Add(-time.Minute)}))
	require.NoError(t, s.RevokedTokens().RevokeToken(ctx, domain.RevokedToken{Fingerprint: "live", ExpiresAt: now.Add(time.Hour)}))
	require.NoError(t, s.RevokedTokens().RevokeToken(ctx, domain.RevokedToken{Fingerprint: "live", ExpiresAt: now.Add(time.Hour)}))

	revoked, err := s.RevokedTokens().IsRevoked(ctx, "live")
	require.NoError(t, err)
	require.True(t, revoked)

	n, err := s.RevokedTokens().DeleteExpiredRevokedTokens(ctx, now)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	revoked, err = s.RevokedTokens().IsRevoked(ctx, "old")
	require.NoError(t, err)
	require.False(t, revoked)
}

func TestWithTx(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	boom := errors.New("boom")

	err := s.WithTx(ctx, func(tx store.Tx) error {
		d := domain.Doctor{ID: idx.New().String(), FullName: "x", PhoneNumber: "+998901234567", Special: "x"}
		if err := tx.Doctors().CreateDoctor(ctx, d); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	list, err := s.Doctors().ListDoctors(ctx)
	require.NoError(t, err)
	require.Empty(t, list, "rolled back")

	require.NoError(t, s.WithTx(ctx, func(tx store.Tx) error {
		require.ErrorIs(t, tx.WithTx(ctx, func(store.Tx) error { return nil }), sql.ErrTxDone)
		d := domain.Doctor{ID: idx.New().String(), FullName: "x", PhoneNumber: "+998901234567", Special: "x"}
		return tx.Doctors().CreateDoctor(ctx, d)
	}))

	list, err = s.Doctors().ListDoctors(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
}
