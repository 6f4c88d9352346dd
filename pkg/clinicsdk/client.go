package clinicsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// BootstrapTokenHeader carries the one-time token for creating the first superadmin.
const BootstrapTokenHeader = "X-Bootstrap-Token"

// Client talks to the clinic service. It keeps refresh cookies between calls.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
			Jar:     jar,
		},
	}, nil
}

// Do sends body as JSON, with a bearer token when token is not empty, and
// decodes the envelope's data into out. out may be nil.
func (c *Client) Do(ctx context.Context, method, path, token string, body, out any) error {
	return c.do(ctx, method, path, map[string]string{"Authorization": bearer(token)}, body, out)
}

func bearer(token string) string {
	if token == "" {
		return ""
	}
	return "Bearer " + token
}

func (c *Client) do(ctx context.Context, method, path string, headers map[string]string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		if v != "" {
			req.Header.Set(k, v)
		}
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	env := Envelope[json.RawMessage]{}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}

// ---- health ----------------------------------------------------------------

func (c *Client) Livez(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/livez")
}

func (c *Client) Readyz(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/readyz")
}

func (c *Client) health(ctx context.Context, path string) (*HealthResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var health HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return &health, &APIError{StatusCode: resp.StatusCode, Message: health.Status}
	}
	return &health, nil
}

// ---- sessions --------------------------------------------------------------

// Refresh exchanges the stored refresh cookie of kind for a new access token.
func (c *Client) Refresh(ctx context.Context, kind Kind) (string, error) {
	var access string
	err := c.Do(ctx, http.MethodPost, "/"+string(kind)+"/token", "", nil, &access)
	return access, err
}

// SignOut revokes the stored refresh cookie of kind.
func (c *Client) SignOut(ctx context.Context, kind Kind) error {
	return c.Do(ctx, http.MethodPost, "/"+string(kind)+"/signOut", "", nil, nil)
}

// ---- admin -----------------------------------------------------------------

func (c *Client) BootstrapSuperadmin(ctx context.Context, bootstrapToken string, req AdminCredentialsRequest) (*AdminResponse, error) {
	var out AdminResponse
	err := c.do(ctx, http.MethodPost, "/admin/superadmin",
		map[string]string{BootstrapTokenHeader: bootstrapToken}, req, &out)
	return &out, err
}

// AdminSignIn checks credentials and returns the OTP when the server echoes it.
func (c *Client) AdminSignIn(ctx context.Context, req AdminCredentialsRequest) (string, error) {
	var code string
	err := c.Do(ctx, http.MethodPost, "/admin/signIn", "", req, &code)
	return code, err
}

func (c *Client) AdminConfirmSignIn(ctx context.Context, req AdminConfirmSignInRequest) (string, error) {
	var access string
	err := c.Do(ctx, http.MethodPost, "/admin/confirm-signIn", "", req, &access)
	return access, err
}

func (c *Client) CreateAdmin(ctx context.Context, token string, req AdminCredentialsRequest) (*AdminResponse, error) {
	var out AdminResponse
	err := c.Do(ctx, http.MethodPost, "/admin", token, req, &out)
	return &out, err
}

// ---- doctor ----------------------------------------------------------------

func (c *Client) CreateDoctor(ctx context.Context, token string, req CreateDoctorRequest) (*DoctorResponse, error) {
	var out DoctorResponse
	err := c.Do(ctx, http.MethodPost, "/doctor", token, req, &out)
	return &out, err
}

func (c *Client) GetDoctor(ctx context.Context, id string) (*DoctorResponse, error) {
	var out DoctorResponse
	err := c.Do(ctx, http.MethodGet, "/doctor/"+id, "", nil, &out)
	return &out, err
}

func (c *Client) ListDoctors(ctx context.Context) ([]DoctorResponse, error) {
	var out []DoctorResponse
	err := c.Do(ctx, http.MethodGet, "/doctor", "", nil, &out)
	return out, err
}

// DoctorSignIn requests an OTP and returns it when the server echoes it.
func (c *Client) DoctorSignIn(ctx context.Context, req DoctorSignInRequest) (string, error) {
	var code string
	err := c.Do(ctx, http.MethodPost, "/doctor/signIn", "", req, &code)
	return code, err
}

func (c *Client) DoctorConfirmSignIn(ctx context.Context, req DoctorConfirmSignInRequest) (string, error) {
	var access string
	err := c.Do(ctx, http.MethodPost, "/doctor/confirm-signIn", "", req, &access)
	return access, err
}

// ---- patient ---------------------------------------------------------------

func (c *Client) PatientSignUp(ctx context.Context, req PatientSignUpRequest) (string, error) {
	var access string
	err := c.Do(ctx, http.MethodPost, "/patient/signUp", "", req, &access)
	return access, err
}

func (c *Client) PatientSignIn(ctx context.Context, req PatientSignInRequest) (string, error) {
	var access string
	err := c.Do(ctx, http.MethodPost, "/patient/signIn", "", req, &access)
	return access, err
}

func (c *Client) GetPatient(ctx context.Context, token, id string) (*PatientResponse, error) {
	var out PatientResponse
	err := c.Do(ctx, http.MethodGet, "/patient/"+id, token, nil, &out)
	return &out, err
}

func (c *Client) UpdatePatient(ctx context.Context, token, id string, req UpdatePatientRequest) (*PatientResponse, error) {
	var out PatientResponse
	err := c.Do(ctx, http.MethodPatch, "/patient/"+id, token, req, &out)
	return &out, err
}

// ---- graph -----------------------------------------------------------------

func (c *Client) CreateGraph(ctx context.Context, token string, req CreateGraphRequest) (*GraphResponse, error) {
	var out GraphResponse
	err := c.Do(ctx, http.MethodPost, "/graph", token, req, &out)
	return &out, err
}

func (c *Client) ListGraphs(ctx context.Context) ([]GraphResponse, error) {
	var out []GraphResponse
	err := c.Do(ctx, http.MethodGet, "/graph", "", nil, &out)
	return out, err
}

// ---- appointment -----------------------------------------------------------

func (c *Client) CreateAppointment(ctx context.Context, token string, req CreateAppointmentRequest) (*AppointmentResponse, error) {
	var out AppointmentResponse
	err := c.Do(ctx, http.MethodPost, "/appointment", token, req, &out)
	return &out, err
}

func (c *Client) GetAppointment(ctx context.Context, token, id string) (*AppointmentResponse, error) {
	var out AppointmentResponse
	err := c.Do(ctx, http.MethodGet, "/appointment/"+id, token, nil, &out)
	return &out, err
}

func (c *Client) ListAppointments(ctx context.Context, token string) ([]AppointmentResponse, error) {
	var out []AppointmentResponse
	err := c.Do(ctx, http.MethodGet, "/appointment", token, nil, &out)
	return out, err
}
