package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aussiebroadwan/clinic/internal/clinic/domain"
	"github.com/aussiebroadwan/clinic/internal/clinic/otp"
	"github.com/aussiebroadwan/clinic/internal/clinic/service"
	"github.com/aussiebroadwan/clinic/internal/clinic/store/drivers/sqlite"
	"github.com/aussiebroadwan/clinic/pkg/clinicsdk"
	"github.com/aussiebroadwan/clinic/pkg/errx"
	"github.com/aussiebroadwan/clinic/pkg/httpx"
	"github.com/aussiebroadwan/clinic/pkg/idx"
	"github.com/aussiebroadwan/clinic/pkg/jwtx"
	"github.com/aussiebroadwan/clinic/pkg/slogx"
	"github.com/stretchr/testify/require"
)

const (
	testAccessSecret  = "access-secret-access-secret-0123456789"
	testRefreshSecret = "refresh-secret-refresh-secret-0123456789"
)

type fixedCode string

func (c fixedCode) Generate() (string, error) { return string(c), nil }

type testServer struct {
	router *Router
	tokens *service.TokenService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	tokens, err := service.NewTokenService(service.TokenConfig{
		AccessSecret:  testAccessSecret,
		RefreshSecret: testRefreshSecret,
		Issuer:        "clinic-test",
	}, st)
	require.NoError(t, err)

	otpStore := otp.NewMemoryStore()
	sessions := &service.SessionService{
		Store:   st,
		OTP:     otpStore,
		Codes:   fixedCode("123456"),
		Sender:  otp.LogSender{},
		Tokens:  tokens,
		EchoOTP: true,
	}

	r := NewRouter(tokens.AccessVerifier(), "test", st, otpStore, slogx.Discard())
	r.Cookies = CookieConfig{SameSite: http.SameSiteLaxMode, MaxAge: tokens.RefreshTTL()}
	r.Sessions = sessions
	r.AdminService = &service.AdminService{Store: st, Sessions: sessions, BootstrapToken: "bootstrap-token"}
	r.DoctorService = &service.DoctorService{Store: st}
	r.PatientService = &service.PatientService{Store: st, Tokens: tokens}
	r.GraphService = &service.GraphService{Store: st}
	r.AppointmentService = &service.AppointmentService{Store: st}
	r.ApplyRoutes()

	return &testServer{router: r, tokens: tokens}
}

func (s *testServer) do(
	t *testing.T,
	method, path, token string,
	body any,
	cookies ...*http.Cookie,
) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) token(t *testing.T, p domain.Principal) string {
	t.Helper()
	tok, err := s.tokens.IssueAccess(p)
	require.NoError(t, err)
	return tok
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var env clinicsdk.Envelope[T]
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	require.Equal(t, "success", env.Message)
	require.Equal(t, rec.Code, env.StatusCode)
	return env.Data
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) httpx.ErrorBody {
	t.Helper()
	var body httpx.ErrorBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func cookieNamed(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func principal(role domain.Role) domain.Principal {
	return domain.Principal{ID: idx.New().String(), Role: role}
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/livez", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodGet, "/readyz", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var health clinicsdk.HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&health))
	require.Equal(t, "ok", health.Status)
	require.Equal(t, "ok", health.Checks.Database)
}

func TestDoctorSignInFlow(t *testing.T) {
	ctx := context.Background()
	s := newTestServer(t)
	_, err := s.router.DoctorService.Create(ctx, clinicsdk.CreateDoctorRequest{
		FullName:    "Dr Karimov",
		PhoneNumber: "+998901234567",
		Special:     "cardiology",
	})
	require.NoError(t, err)

	rec := s.do(t, http.MethodPost, "/doctor/signIn", "", clinicsdk.DoctorSignInRequest{PhoneNumber: "+998901234567"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "123456", decodeData[string](t, rec))

	rec = s.do(t, http.MethodPost, "/doctor/confirm-signIn", "", clinicsdk.DoctorConfirmSignInRequest{
		PhoneNumber: "+998901234567",
		OTP:         "654321",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, errx.KindInvalidOTP, decodeError(t, rec).Code)

	rec = s.do(t, http.MethodPost, "/doctor/confirm-signIn", "", clinicsdk.DoctorConfirmSignInRequest{
		PhoneNumber: "+998901234567",
		OTP:         "123456",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	access := decodeData[string](t, rec)
	require.NotEmpty(t, access)

	cookie := cookieNamed(rec, "refreshTokenDoctor")
	require.NotNil(t, cookie)
	require.True(t, cookie.HttpOnly)
	require.Equal(t, "/", cookie.Path)
	require.Positive(t, cookie.MaxAge)

	rec = s.do(t, http.MethodPost, "/doctor/token", "", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, decodeData[string](t, rec))

	// A doctor cookie is not an admin session.
	adminCookie := &http.Cookie{Name: "refreshTokenAdmin", Value: cookie.Value}
	rec = s.do(t, http.MethodPost, "/admin/token", "", nil, adminCookie)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(t, http.MethodPost, "/doctor/signOut", "", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	cleared := cookieNamed(rec, "refreshTokenDoctor")
	require.NotNil(t, cleared)
	require.Negative(t, cleared.MaxAge)

	rec = s.do(t, http.MethodPost, "/doctor/token", "", nil, cookie)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Refresh token revoked", decodeError(t, rec).Error)
}

func TestConfirmSignInGuessing(t *testing.T) {
	ctx := context.Background()
	s := newTestServer(t)
	_, err := s.router.DoctorService.Create(ctx, clinicsdk.CreateDoctorRequest{
		FullName:    "Dr Karimov",
		PhoneNumber: "+998901234567",
		Special:     "cardiology",
	})
	require.NoError(t, err)

	rec := s.do(t, http.MethodPost, "/doctor/signIn", "", clinicsdk.DoctorSignInRequest{PhoneNumber: "+998901234567"})
	require.Equal(t, http.StatusOK, rec.Code)

	confirm := func(remote, forwardedFor, code string) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		require.NoError(t, json.NewEncoder(&buf).Encode(clinicsdk.DoctorConfirmSignInRequest{
			PhoneNumber: "+998901234567",
			OTP:         code,
		}))
		req := httptest.NewRequest(http.MethodPost, "/doctor/confirm-signIn", &buf)
		req.Header.Set("Content-Type", "application/json")
		req.RemoteAddr = remote
		req.Header.Set("X-Forwarded-For", forwardedFor)
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)
		return rec
	}

	// Rotating X-Forwarded-For from one peer does not buy fresh limiter keys.
	for i := range httpx.StrictLimit.Burst {
		rec := confirm("198.51.100.10:40000", fmt.Sprintf("203.0.113.%d", i+1), fmt.Sprintf("%06d", i))
		require.Equal(t, http.StatusBadRequest, rec.Code, "guess %d", i+1)
		require.Equal(t, errx.KindInvalidOTP, decodeError(t, rec).Code)
	}
	rec = confirm("198.51.100.10:40000", "203.0.113.250", "123456")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)

	// The wrong guesses burnt the code, so the right one fails from anywhere.
	rec = confirm("198.51.100.99:40000", "", "123456")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, errx.KindInvalidOTP, decodeError(t, rec).Code)
}

func TestSignOutWithoutCookie(t *testing.T) {
	s := newTestServer(t)
	for _, kind := range []string{"admin", "doctor", "patient"} {
		t.Run(kind, func(t *testing.T) {
			rec := s.do(t, http.MethodPost, "/"+kind+"/signOut", "", nil)
			require.Equal(t, http.StatusUnauthorized, rec.Code)
			require.Equal(t, errx.KindUnauthorized, decodeError(t, rec).Code)
		})
	}
}

func TestRefreshWithForeignSecret(t *testing.T) {
	s := newTestServer(t)

	signer, err := jwtx.NewHMACSigner("not-the-refresh-secret-but-long-enough")
	require.NoError(t, err)
	forged, err := signer.Sign(jwtx.NewClaims(idx.New().String(), "patient", jwtx.TokenRefresh, time.Hour, "clinic-test", time.Now()))
	require.NoError(t, err)

	rec := s.do(t, http.MethodPost, "/patient/token", "", nil, &http.Cookie{Name: "refreshTokenPatient", Value: forged})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPatientSignUp(t *testing.T) {
	s := newTestServer(t)
	req := clinicsdk.PatientSignUpRequest{
		FullName:    "Aziz Rakhimov",
		PhoneNumber: "+998931112233",
		Password:    "secret1",
		Address:     "Tashkent",
		Age:         31,
		Gender:      "male",
	}

	rec := s.do(t, http.MethodPost, "/patient/signUp", "", req)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotEmpty(t, decodeData[string](t, rec))
	require.NotNil(t, cookieNamed(rec, "refreshTokenPatient"))

	rec = s.do(t, http.MethodPost, "/patient/signUp", "", req)
	require.Equal(t, http.StatusConflict, rec.Code)
	body := decodeError(t, rec)
	require.Equal(t, "Phone number already exist", body.Error)
	require.Equal(t, errx.KindConflict, body.Code)

	rec = s.do(t, http.MethodPost, "/patient/signUp", "", map[string]any{"fullName": "x", "unexpected": true})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, errx.KindValidation, decodeError(t, rec).Code)

	rec = s.do(t, http.MethodPost, "/patient/signIn", "", clinicsdk.PatientSignInRequest{PhoneNumber: req.PhoneNumber, Password: "wrong"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "incorrect credentials", decodeError(t, rec).Error)
}

func TestBootstrapAndAdminSignIn(t *testing.T) {
	s := newTestServer(t)
	creds := clinicsdk.AdminCredentialsRequest{Username: "root", Password: "rootpass"}

	post := func(token string) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		require.NoError(t, json.NewEncoder(&buf).Encode(creds))
		req := httptest.NewRequest(http.MethodPost, "/admin/superadmin", &buf)
		req.Header.Set(clinicsdk.BootstrapTokenHeader, token)
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)
		return rec
	}

	require.Equal(t, http.StatusUnauthorized, post("nope").Code)

	rec := post("bootstrap-token")
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "superadmin", decodeData[clinicsdk.AdminResponse](t, rec).Role)

	require.Equal(t, http.StatusConflict, post("bootstrap-token").Code)

	rec = s.do(t, http.MethodPost, "/admin/signIn", "", clinicsdk.AdminCredentialsRequest{Username: "root", Password: "wrongpass"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(t, http.MethodPost, "/admin/signIn", "", creds)
	require.Equal(t, http.StatusOK, rec.Code)
	code := decodeData[string](t, rec)

	rec = s.do(t, http.MethodPost, "/admin/confirm-signIn", "", clinicsdk.AdminConfirmSignInRequest{Username: "root", OTP: code})
	require.Equal(t, http.StatusOK, rec.Code)
	access := decodeData[string](t, rec)
	require.NotNil(t, cookieNamed(rec, "refreshTokenAdmin"))

	rec = s.do(t, http.MethodGet, "/admin", access, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decodeData[[]clinicsdk.AdminResponse](t, rec), 1)
}

func TestGuards(t *testing.T) {
	ctx := context.Background()
	s := newTestServer(t)

	d, err := s.router.DoctorService.Create(ctx, clinicsdk.CreateDoctorRequest{
		FullName: "Dr Karimov", PhoneNumber: "+998901000001", Special: "cardiology",
	})
	require.NoError(t, err)
	otherDoctor, err := s.router.DoctorService.Create(ctx, clinicsdk.CreateDoctorRequest{
		FullName: "Dr Saidova", PhoneNumber: "+998901000002", Special: "dermatology",
	})
	require.NoError(t, err)
	g, err := s.router.GraphService.Create(ctx, d.Principal(), clinicsdk.CreateGraphRequest{Date: "2026-11-02", Time: "10:00"})
	require.NoError(t, err)

	p, _, err := s.router.PatientService.SignUp(ctx, clinicsdk.PatientSignUpRequest{
		FullName: "Aziz Rakhimov", PhoneNumber: "+998901000003", Password: "secret1",
		Address: "Tashkent", Age: 31, Gender: "male",
	})
	require.NoError(t, err)
	otherPatient, _, err := s.router.PatientService.SignUp(ctx, clinicsdk.PatientSignUpRequest{
		FullName: "Dilnoza Yusupova", PhoneNumber: "+998901000004", Password: "secret1",
		Address: "Samarkand", Age: 27, Gender: "female",
	})
	require.NoError(t, err)
	appt, err := s.router.AppointmentService.Create(ctx, p.Principal(), clinicsdk.CreateAppointmentRequest{
		GraphID: g.ID, Complaint: "headache",
	})
	require.NoError(t, err)

	super := s.token(t, principal(domain.RoleSuperAdmin))
	admin := s.token(t, principal(domain.RoleAdmin))
	doctor := s.token(t, d.Principal())
	doctor2 := s.token(t, otherDoctor.Principal())
	patient := s.token(t, p.Principal())
	patient2 := s.token(t, otherPatient.Principal())

	expiredSigner, err := jwtx.NewHMACSigner(testAccessSecret)
	require.NoError(t, err)
	expired, err := expiredSigner.Sign(jwtx.NewClaims(p.ID, "patient", jwtx.TokenAccess, time.Minute, "clinic-test", time.Now().Add(-time.Hour)))
	require.NoError(t, err)

	missingGraph := "/graph/" + idx.New().String()
	missingAppointment := "/appointment/" + idx.New().String()

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		body   any
		want   int
	}{
		{"no token", http.MethodGet, "/patient", "", nil, http.StatusUnauthorized},
		{"expired token", http.MethodGet, "/patient/" + p.ID, expired, nil, http.StatusUnauthorized},
		{"garbage token", http.MethodGet, "/patient", "not.a.jwt", nil, http.StatusUnauthorized},

		{"patient lists patients", http.MethodGet, "/patient", patient, nil, http.StatusForbidden},
		{"doctor lists patients", http.MethodGet, "/patient", doctor, nil, http.StatusOK},
		{"patient reads self", http.MethodGet, "/patient/" + p.ID, patient, nil, http.StatusOK},
		{"patient reads other", http.MethodGet, "/patient/" + p.ID, patient2, nil, http.StatusForbidden},

		{"admin lists admins", http.MethodGet, "/admin", admin, nil, http.StatusForbidden},
		{"superadmin lists admins", http.MethodGet, "/admin", super, nil, http.StatusOK},

		{"doctor creates doctor", http.MethodPost, "/doctor", doctor,
			clinicsdk.CreateDoctorRequest{FullName: "Dr X", PhoneNumber: "+998901000009", Special: "ent"}, http.StatusForbidden},
		{"doctor patches self", http.MethodPatch, "/doctor/" + d.ID, doctor,
			clinicsdk.UpdateDoctorRequest{Special: ptr("surgery")}, http.StatusOK},
		{"doctor patches other", http.MethodPatch, "/doctor/" + otherDoctor.ID, doctor,
			clinicsdk.UpdateDoctorRequest{Special: ptr("surgery")}, http.StatusForbidden},
		{"patient patches doctor", http.MethodPatch, "/doctor/" + d.ID, patient,
			clinicsdk.UpdateDoctorRequest{Special: ptr("surgery")}, http.StatusForbidden},

		{"patient patches self", http.MethodPatch, "/patient/" + p.ID, patient,
			clinicsdk.UpdatePatientRequest{Address: ptr("Bukhara")}, http.StatusOK},
		{"patient patches other", http.MethodPatch, "/patient/" + p.ID, patient2,
			clinicsdk.UpdatePatientRequest{Address: ptr("Bukhara")}, http.StatusForbidden},
		{"admin patches patient", http.MethodPatch, "/patient/" + p.ID, admin,
			clinicsdk.UpdatePatientRequest{Address: ptr("Khiva")}, http.StatusOK},

		{"patient creates graph", http.MethodPost, "/graph", patient,
			clinicsdk.CreateGraphRequest{Date: "2026-11-02", Time: "11:00"}, http.StatusForbidden},
		{"owner patches graph", http.MethodPatch, "/graph/" + g.ID, doctor,
			clinicsdk.UpdateGraphRequest{Status: ptr("busy")}, http.StatusOK},
		{"other doctor patches graph", http.MethodPatch, "/graph/" + g.ID, doctor2,
			clinicsdk.UpdateGraphRequest{Status: ptr("free")}, http.StatusForbidden},
		{"doctor patches missing graph", http.MethodPatch, missingGraph, doctor2,
			clinicsdk.UpdateGraphRequest{Status: ptr("free")}, http.StatusForbidden},
		{"doctor deletes malformed graph id", http.MethodDelete, "/graph/not-an-id", doctor2, nil, http.StatusForbidden},
		{"admin patches missing graph", http.MethodPatch, missingGraph, admin,
			clinicsdk.UpdateGraphRequest{Status: ptr("free")}, http.StatusNotFound},

		{"doctor books appointment", http.MethodPost, "/appointment", doctor,
			clinicsdk.CreateAppointmentRequest{GraphID: g.ID, Complaint: "x"}, http.StatusForbidden},
		{"patient lists appointments", http.MethodGet, "/appointment", patient, nil, http.StatusForbidden},
		{"doctor lists appointments", http.MethodGet, "/appointment", doctor, nil, http.StatusOK},
		{"owner reads appointment", http.MethodGet, "/appointment/" + appt.ID, patient, nil, http.StatusOK},
		{"other patient reads appointment", http.MethodGet, "/appointment/" + appt.ID, patient2, nil, http.StatusForbidden},
		{"admin reads appointment", http.MethodGet, "/appointment/" + appt.ID, admin, nil, http.StatusOK},
		{"patient reads missing appointment", http.MethodGet, missingAppointment, patient2, nil, http.StatusForbidden},
		{"admin reads missing appointment", http.MethodGet, missingAppointment, admin, nil, http.StatusNotFound},

		{"public doctor list", http.MethodGet, "/doctor", "", nil, http.StatusOK},
		{"public graph list", http.MethodGet, "/graph?doctorId=" + d.ID, "", nil, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(t, tt.method, tt.path, tt.token, tt.body)
			require.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}

func TestAppointmentBookedByPatient(t *testing.T) {
	ctx := context.Background()
	s := newTestServer(t)

	d, err := s.router.DoctorService.Create(ctx, clinicsdk.CreateDoctorRequest{
		FullName: "Dr Karimov", PhoneNumber: "+998902000001", Special: "cardiology",
	})
	require.NoError(t, err)

	rec := s.do(t, http.MethodPost, "/graph", s.token(t, d.Principal()), clinicsdk.CreateGraphRequest{Date: "2026-11-04", Time: "08:15"})
	require.Equal(t, http.StatusCreated, rec.Code)
	g := decodeData[clinicsdk.GraphResponse](t, rec)
	require.Equal(t, d.ID, g.DoctorID)
	require.Equal(t, "free", g.Status)

	p, _, err := s.router.PatientService.SignUp(ctx, clinicsdk.PatientSignUpRequest{
		FullName: "Aziz Rakhimov", PhoneNumber: "+998902000002", Password: "secret1",
		Address: "Tashkent", Age: 31, Gender: "male",
	})
	require.NoError(t, err)

	rec = s.do(t, http.MethodPost, "/appointment", s.token(t, p.Principal()), clinicsdk.CreateAppointmentRequest{
		GraphID:   g.ID,
		Complaint: "chest pain",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	a := decodeData[clinicsdk.AppointmentResponse](t, rec)
	require.Equal(t, p.ID, a.PatientID)
	require.Equal(t, "pending", a.Status)
	require.NotNil(t, a.Patient)
	require.NotNil(t, a.Graph)

	rec = s.do(t, http.MethodGet, "/doctor/"+d.ID, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decodeData[clinicsdk.DoctorResponse](t, rec).Graphs, 1)
}

func ptr[T any](v T) *T { return &v }
