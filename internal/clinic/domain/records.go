package domain

import "time"

type Admin struct {
	ID           string
	Username     string
	PasswordHash string
	Role         Role // admin or superadmin
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (a Admin) Principal() Principal {
	return Principal{ID: a.ID, Role: a.Role, Identifier: a.Username}
}

type Doctor struct {
	ID          string
	FullName    string
	PhoneNumber string
	Special     string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Graphs is populated on reads that ask for it.
	Graphs []Graph
}

func (d Doctor) Principal() Principal {
	return Principal{ID: d.ID, Role: RoleDoctor, Identifier: d.PhoneNumber}
}

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type Patient struct {
	ID           string
	FullName     string
	PhoneNumber  string
	PasswordHash string
	Address      string
	Age          int
	Gender       Gender
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (p Patient) Principal() Principal {
	return Principal{ID: p.ID, Role: RolePatient, Identifier: p.PhoneNumber}
}

type GraphStatus string

const (
	GraphFree GraphStatus = "free"
	GraphBusy GraphStatus = "busy"
)

// Graph is one availability slot of a doctor.
type Graph struct {
	ID        string
	Date      string // YYYY-MM-DD
	Time      string // HH:MM, 24h
	Status    GraphStatus
	DoctorID  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentRejected  AppointmentStatus = "rejected"
)

type Appointment struct {
	ID        string
	PatientID string
	GraphID   string
	Complaint string
	Status    AppointmentStatus
	CreatedAt time.Time
	UpdatedAt time.Time

	// Populated on detail reads.
	Patient *Patient
	Graph   *Graph
}

// RevokedToken marks a refresh token (by fingerprint) as unusable until it
// would have expired anyway.
type RevokedToken struct {
	Fingerprint string
	ExpiresAt   time.Time
}
