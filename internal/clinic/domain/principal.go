package domain

// Kind names one sign-in namespace. Each kind has its own refresh cookie and
// its own OTP key space, so one client can hold sessions of several kinds.
type Kind string

const (
	KindAdmin   Kind = "admin"
	KindDoctor  Kind = "doctor"
	KindPatient Kind = "patient"
)

// CookieName is the refresh cookie for the kind.
func (k Kind) CookieName() string {
	switch k {
	case KindAdmin:
		return "refreshTokenAdmin"
	case KindDoctor:
		return "refreshTokenDoctor"
	default:
		return "refreshTokenPatient"
	}
}

// Admits reports whether a role belongs to this sign-in namespace.
func (k Kind) Admits(r Role) bool {
	switch k {
	case KindAdmin:
		return r == RoleAdmin || r == RoleSuperAdmin
	case KindDoctor:
		return r == RoleDoctor
	case KindPatient:
		return r == RolePatient
	}
	return false
}

// Principal is whoever a token speaks for.
type Principal struct {
	ID   string
	Role Role

	// Identifier is the phone number (doctor, patient) or username (admin).
	Identifier string
}
