package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/clinic/internal/clinic/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrInvalidReference is returned when a row points at a parent that
	// does not exist (a graph without its doctor, an appointment without its
	// patient or graph).
	ErrInvalidReference = errors.New("store: invalid reference")
)

// Store is the root data access interface. Drivers expose one sub-repository
// per aggregate so callers cannot accidentally open a transaction inside
// another one.
type Store interface {
	Admins() Admins
	Doctors() Doctors
	Patients() Patients
	Graphs() Graphs
	Appointments() Appointments
	RevokedTokens() RevokedTokens

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn inside a transaction, committing when fn returns nil
	// and rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error
	Ping(ctx context.Context) error
}

// Tx is a transactional store.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Admins interface {
	GetAdminByID(ctx context.Context, id string) (domain.Admin, error)
	GetAdminByUsername(ctx context.Context, username string) (domain.Admin, error)
	ListAdmins(ctx context.Context) ([]domain.Admin, error)

	// CreateAdmin inserts a new admin. A taken username yields ErrAlreadyExists.
	CreateAdmin(ctx context.Context, a domain.Admin) error

	// UpdateAdmin overwrites username, password hash and role and bumps updated_at.
	UpdateAdmin(ctx context.Context, a domain.Admin) error
	DeleteAdmin(ctx context.Context, id string) error

	// HasRole reports whether at least one admin holds role.
	HasRole(ctx context.Context, role domain.Role) (bool, error)
}

type Doctors interface {
	GetDoctorByID(ctx context.Context, id string) (domain.Doctor, error)
	GetDoctorByPhone(ctx context.Context, phone string) (domain.Doctor, error)
	ListDoctors(ctx context.Context) ([]domain.Doctor, error)
	CreateDoctor(ctx context.Context, d domain.Doctor) error
	UpdateDoctor(ctx context.Context, d domain.Doctor) error

	// DeleteDoctor cascades to the doctor's graphs and their appointments.
	DeleteDoctor(ctx context.Context, id string) error
}

type Patients interface {
	GetPatientByID(ctx context.Context, id string) (domain.Patient, error)
	GetPatientByPhone(ctx context.Context, phone string) (domain.Patient, error)
	ListPatients(ctx context.Context) ([]domain.Patient, error)
	CreatePatient(ctx context.Context, p domain.Patient) error
	UpdatePatient(ctx context.Context, p domain.Patient) error

	// UpdatePasswordHash is used to upgrade legacy hashes after a sign-in.
	UpdatePasswordHash(ctx context.Context, id, hash string) error
	DeletePatient(ctx context.Context, id string) error
}

// GraphFilter narrows ListGraphs. Zero fields match everything.
type GraphFilter struct {
	DoctorID string
	Status   domain.GraphStatus
	Date     string
}

type Graphs interface {
	GetGraphByID(ctx context.Context, id string) (domain.Graph, error)
	ListGraphs(ctx context.Context, f GraphFilter) ([]domain.Graph, error)
	CreateGraph(ctx context.Context, g domain.Graph) error
	UpdateGraph(ctx context.Context, g domain.Graph) error
	DeleteGraph(ctx context.Context, id string) error
}

// AppointmentFilter narrows ListAppointments. Zero fields match everything.
type AppointmentFilter struct {
	PatientID string
	GraphID   string
	Status    domain.AppointmentStatus
}

type Appointments interface {
	GetAppointmentByID(ctx context.Context, id string) (domain.Appointment, error)
	ListAppointments(ctx context.Context, f AppointmentFilter) ([]domain.Appointment, error)
	CreateAppointment(ctx context.Context, a domain.Appointment) error
	UpdateAppointment(ctx context.Context, a domain.Appointment) error
	DeleteAppointment(ctx context.Context, id string) error
}

type RevokedTokens interface {
	// RevokeToken records a fingerprint. Revoking twice is not an error.
	RevokeToken(ctx context.Context, t domain.RevokedToken) error
	IsRevoked(ctx context.Context, fingerprint string) (bool, error)

	// DeleteExpiredRevokedTokens drops rows whose token would already be
	// rejected for expiry, returning how many were removed.
	DeleteExpiredRevokedTokens(ctx context.Context, now time.Time) (int64, error)
}
