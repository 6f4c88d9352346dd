package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/clinic/internal/clinic/domain"
	"github.com/aussiebroadwan/clinic/internal/clinic/otp"
	"github.com/aussiebroadwan/clinic/internal/clinic/store/drivers/sqlite"
	"github.com/aussiebroadwan/clinic/pkg/clinicsdk"
	"github.com/aussiebroadwan/clinic/pkg/idx"
	"github.com/stretchr/testify/require"
)

const (
	testAccessSecret  = "access-secret-access-secret-0123456789"
	testRefreshSecret = "refresh-secret-refresh-secret-0123456789"
	testCode          = "123456"
)

type fixedCode string

func (c fixedCode) Generate() (string, error) { return string(c), nil }

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type harness struct {
	store        *sqlite.Store
	otp          *otp.MemoryStore
	clock        *clock
	tokens       *TokenService
	sessions     *SessionService
	admins       *AdminService
	doctors      *DoctorService
	patients     *PatientService
	graphs       *GraphService
	appointments *AppointmentService
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	clk := &clock{t: time.Now().UTC()}
	tokens, err := NewTokenService(TokenConfig{
		AccessSecret:  testAccessSecret,
		RefreshSecret: testRefreshSecret,
		Issuer:        "clinic-test",
		Now:           clk.Now,
	}, st)
	require.NoError(t, err)

	otpStore := otp.NewMemoryStore(otp.WithClock(clk.Now))
	sessions := &SessionService{
		Store:   st,
		OTP:     otpStore,
		Codes:   fixedCode(testCode),
		Sender:  otp.LogSender{},
		Tokens:  tokens,
		EchoOTP: true,
	}

	return &harness{
		store:        st,
		otp:          otpStore,
		clock:        clk,
		tokens:       tokens,
		sessions:     sessions,
		admins:       &AdminService{Store: st, Sessions: sessions, BootstrapToken: "bootstrap-token"},
		doctors:      &DoctorService{Store: st},
		patients:     &PatientService{Store: st, Tokens: tokens},
		graphs:       &GraphService{Store: st},
		appointments: &AppointmentService{Store: st},
	}
}

func (h *harness) doctor(t *testing.T, phone string) domain.Doctor {
	t.Helper()
	d, err := h.doctors.Create(context.Background(), clinicsdk.CreateDoctorRequest{
		FullName:    "Dr Karimov",
		PhoneNumber: phone,
		Special:     "cardiology",
	})
	require.NoError(t, err)
	return d
}

func (h *harness) patient(t *testing.T, phone string) domain.Patient {
	t.Helper()
	p, _, err := h.patients.SignUp(context.Background(), clinicsdk.PatientSignUpRequest{
		FullName:    "Aziz Rakhimov",
		PhoneNumber: phone,
		Password:    "secret1",
		Address:     "Tashkent",
		Age:         31,
		Gender:      "male",
	})
	require.NoError(t, err)
	return p
}

func (h *harness) graph(t *testing.T, d domain.Doctor) domain.Graph {
	t.Helper()
	g, err := h.graphs.Create(context.Background(), d.Principal(), clinicsdk.CreateGraphRequest{
		Date: "2026-11-02",
		Time: "09:30",
	})
	require.NoError(t, err)
	return g
}

func admin(role domain.Role) domain.Principal {
	return domain.Principal{ID: idx.New().String(), Role: role, Identifier: "root"}
}
