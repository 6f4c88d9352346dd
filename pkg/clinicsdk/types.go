package clinicsdk

import "time"

// Kind selects one of the three sign-in namespaces.
type Kind string

const (
	KindAdmin   Kind = "admin"
	KindDoctor  Kind = "doctor"
	KindPatient Kind = "patient"
)

// Envelope wraps every successful response.
type Envelope[T any] struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Data       T      `json:"data"`
}

// ============================================================================
// Admin
// ============================================================================

// AdminCredentialsRequest is used to create admins and to start an admin sign-in.
type AdminCredentialsRequest struct {
	Username string `json:"username" validate:"required,min=4,max=20"`
	Password string `json:"password" validate:"required,min=4,max=20"`
}

type AdminConfirmSignInRequest struct {
	Username string `json:"username" validate:"required,min=4,max=20"`
	OTP      string `json:"otp" validate:"required,numeric,min=4,max=8"`
}

type UpdateAdminRequest struct {
	Username *string `json:"username,omitempty" validate:"omitempty,min=4,max=20"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=4,max=20"`
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=admin superadmin"`
}

type AdminResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ============================================================================
// Doctor
// ============================================================================

type CreateDoctorRequest struct {
	FullName    string `json:"fullName" validate:"required,min=2,max=100"`
	PhoneNumber string `json:"phoneNumber" validate:"required,phone"`
	Special     string `json:"special" validate:"required,max=100"`
}

type UpdateDoctorRequest struct {
	FullName    *string `json:"fullName,omitempty" validate:"omitempty,min=2,max=100"`
	PhoneNumber *string `json:"phoneNumber,omitempty" validate:"omitempty,phone"`
	Special     *string `json:"special,omitempty" validate:"omitempty,max=100"`
}

type DoctorSignInRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required,phone"`
}

type DoctorConfirmSignInRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required,phone"`
	OTP         string `json:"otp" validate:"required,numeric,min=4,max=8"`
}

type DoctorResponse struct {
	ID          string          `json:"id"`
	FullName    string          `json:"fullName"`
	PhoneNumber string          `json:"phoneNumber"`
	Special     string          `json:"special"`
	Graphs      []GraphResponse `json:"graphs,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ============================================================================
// Patient
// ============================================================================

type PatientSignUpRequest struct {
	FullName    string `json:"fullName" validate:"required,min=2,max=100"`
	PhoneNumber string `json:"phoneNumber" validate:"required,phone"`
	Password    string `json:"password" validate:"required,min=4,max=20"`
	Address     string `json:"address" validate:"required,max=200"`
	Age         int    `json:"age" validate:"required,gte=1,lte=150"`
	Gender      string `json:"gender" validate:"required,oneof=male female"`
}

type PatientSignInRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required,phone"`
	Password    string `json:"password" validate:"required,max=20"`
}

type UpdatePatientRequest struct {
	FullName    *string `json:"fullName,omitempty" validate:"omitempty,min=2,max=100"`
	PhoneNumber *string `json:"phoneNumber,omitempty" validate:"omitempty,phone"`
	Password    *string `json:"password,omitempty" validate:"omitempty,min=4,max=20"`
	Address     *string `json:"address,omitempty" validate:"omitempty,max=200"`
	Age         *int    `json:"age,omitempty" validate:"omitempty,gte=1,lte=150"`
	Gender      *string `json:"gender,omitempty" validate:"omitempty,oneof=male female"`
}

type PatientResponse struct {
	ID          string    `json:"id"`
	FullName    string    `json:"fullName"`
	PhoneNumber string    `json:"phoneNumber"`
	Address     string    `json:"address"`
	Age         int       `json:"age"`
	Gender      string    `json:"gender"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ============================================================================
// Graph (availability slot)
// ============================================================================

type CreateGraphRequest struct {
	Date   string `json:"date" validate:"required,datetime=2006-01-02"`
	Time   string `json:"time" validate:"required,clock"`
	Status string `json:"status,omitempty" validate:"omitempty,oneof=busy free"`

	// DoctorID defaults to the calling doctor. Only admins may set another doctor.
	DoctorID string `json:"doctorId,omitempty" validate:"omitempty,ulid"`
}

type UpdateGraphRequest struct {
	Date     *string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Time     *string `json:"time,omitempty" validate:"omitempty,clock"`
	Status   *string `json:"status,omitempty" validate:"omitempty,oneof=busy free"`
	DoctorID *string `json:"doctorId,omitempty" validate:"omitempty,ulid"`
}

type GraphResponse struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Status    string    `json:"status"`
	DoctorID  string    `json:"doctorId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ============================================================================
// Appointment
// ============================================================================

type CreateAppointmentRequest struct {
	// PatientID defaults to the calling patient. Only admins may book for someone else.
	PatientID string `json:"patient_id,omitempty" validate:"omitempty,ulid"`
	GraphID   string `json:"graph_id" validate:"required,ulid"`
	Complaint string `json:"complaint" validate:"required,max=1000"`
	Status    string `json:"status,omitempty" validate:"omitempty,oneof=pending completed rejected"`
}

type UpdateAppointmentRequest struct {
	GraphID   *string `json:"graph_id,omitempty" validate:"omitempty,ulid"`
	Complaint *string `json:"complaint,omitempty" validate:"omitempty,max=1000"`
	Status    *string `json:"status,omitempty" validate:"omitempty,oneof=pending completed rejected"`
}

type AppointmentResponse struct {
	ID        string           `json:"id"`
	PatientID string           `json:"patient_id"`
	GraphID   string           `json:"graph_id"`
	Complaint string           `json:"complaint"`
	Status    string           `json:"status"`
	Patient   *PatientResponse `json:"patient,omitempty"`
	Graph     *GraphResponse   `json:"graph,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// ============================================================================
// Health
// ============================================================================

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
	OTPCache string `json:"otpCache"`
}
