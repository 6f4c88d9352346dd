package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/clinic/internal/clinic/domain"
	"github.com/aussiebroadwan/clinic/internal/clinic/otp"
	"github.com/aussiebroadwan/clinic/internal/clinic/service"
	"github.com/aussiebroadwan/clinic/internal/clinic/store"
	"github.com/aussiebroadwan/clinic/pkg/httpx"
	"github.com/aussiebroadwan/clinic/pkg/jwtx"
	"github.com/aussiebroadwan/clinic/pkg/slogx"

	_ "github.com/aussiebroadwan/clinic/api/clinic" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store    store.Store
	otpCache otp.Store
	Cookies  CookieConfig

	Sessions           *service.SessionService
	AdminService       *service.AdminService
	DoctorService      *service.DoctorService
	PatientService     *service.PatientService
	GraphService       *service.GraphService
	AppointmentService *service.AppointmentService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	otpCache otp.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		otpCache:     otpCache,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.Recover(),
	}

	return r
}

// Use appends global middleware. It runs inside the request logger.
func (r *Router) Use(mws ...httpx.Middleware) {
	r.middlewares = append(r.middlewares, mws...)
}

func (r *Router) ApplyRoutes() {
	r.registerAdmin()
	r.registerDoctor()
	r.registerPatient()
	r.registerGraph()
	r.registerAppointment()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Clinic Scheduling API
//	@version		0.1.0
//	@description	Patients, doctors, administrators, availability slots ("graphs") and appointments.
//	@description
//	@description				Sign-in issues a short-lived HS256 access token and sets a per-kind refresh cookie.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/clinic
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// guarded authenticates and then applies guards, rate limiting per principal.
func (r *Router) guarded(h http.HandlerFunc, limit httpx.RateLimitConfig, guards ...httpx.Middleware) http.Handler {
	mws := append([]httpx.Middleware{httpx.Authenticate(r.verifier)}, guards...)
	mws = append(mws, httpx.RateLimitByPrincipal(limit))
	return httpx.Chain(h, mws...)
}

func (r *Router) public(h http.HandlerFunc, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h, httpx.RateLimitByIP(limit))
}

// registerSession mounts signOut and token for a kind. Neither takes a bearer
// token; the refresh cookie is the credential.
func (r *Router) registerSession(kind domain.Kind) {
	h := &SessionHandler{Kind: kind, Sessions: r.Sessions, Cookies: r.Cookies}
	prefix := "POST /" + string(kind)

	r.Mux.Handle(prefix+"/signOut", r.public(h.HandleSignOut, httpx.ModerateLimit))
	r.Mux.Handle(prefix+"/token", r.public(h.HandleRefresh, httpx.ModerateLimit))
}

func (r *Router) registerAdmin() {
	h := &AdminHandler{Admins: r.AdminService, Cookies: r.Cookies}
	self := selfOr(domain.RoleSuperAdmin, pathID)
	super := requireRole(domain.RoleSuperAdmin)

	r.Mux.Handle("POST /admin/superadmin", r.public(h.HandleBootstrap, httpx.StrictLimit))

	// Sign-in attempts are limited per IP and username
	r.Mux.Handle("POST /admin/signIn",
		httpx.Chain(http.HandlerFunc(h.HandleSignIn),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "username"),
		),
	)
	r.Mux.Handle("POST /admin/confirm-signIn",
		httpx.Chain(http.HandlerFunc(h.HandleConfirmSignIn),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "username"),
		),
	)
	r.registerSession(domain.KindAdmin)

	r.Mux.Handle("POST /admin", r.guarded(h.HandleCreate, httpx.ModerateLimit, super))
	r.Mux.Handle("GET /admin", r.guarded(h.HandleList, httpx.LenientLimit, super))
	r.Mux.Handle("GET /admin/{id}", r.guarded(h.HandleGet, httpx.LenientLimit, self))
	r.Mux.Handle("PATCH /admin/{id}", r.guarded(h.HandleUpdate, httpx.ModerateLimit, self))
	r.Mux.Handle("DELETE /admin/{id}", r.guarded(h.HandleDelete, httpx.ModerateLimit, super))
}

func (r *Router) registerDoctor() {
	h := &DoctorHandler{Doctors: r.DoctorService, Sessions: r.Sessions, Cookies: r.Cookies}
	admin := requireRole(domain.RoleAdmin)

	r.Mux.Handle("POST /doctor/signIn",
		httpx.Chain(http.HandlerFunc(h.HandleSignIn),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "phoneNumber"),
		),
	)
	r.Mux.Handle("POST /doctor/confirm-signIn",
		httpx.Chain(http.HandlerFunc(h.HandleConfirmSignIn),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "phoneNumber"),
		),
	)
	r.registerSession(domain.KindDoctor)

	r.Mux.Handle("POST /doctor", r.guarded(h.HandleCreate, httpx.ModerateLimit, admin))
	r.Mux.Handle("GET /doctor", r.public(h.HandleList, httpx.PublicLimit))
	r.Mux.Handle("GET /doctor/{id}", r.public(h.HandleGet, httpx.PublicLimit))
	r.Mux.Handle("PATCH /doctor/{id}", r.guarded(h.HandleUpdate, httpx.ModerateLimit, selfOr(domain.RoleAdmin, pathID)))
	r.Mux.Handle("DELETE /doctor/{id}", r.guarded(h.HandleDelete, httpx.ModerateLimit, admin))
}

func (r *Router) registerPatient() {
	h := &PatientHandler{Patients: r.PatientService, Cookies: r.Cookies}

	r.Mux.Handle("POST /patient/signUp", r.public(h.HandleSignUp, httpx.StrictLimit))
	r.Mux.Handle("POST /patient/signIn",
		httpx.Chain(http.HandlerFunc(h.HandleSignIn),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "phoneNumber"),
		),
	)
	r.registerSession(domain.KindPatient)

	r.Mux.Handle("GET /patient", r.guarded(h.HandleList, httpx.LenientLimit, requireRole(domain.RoleDoctor)))
	r.Mux.Handle("GET /patient/{id}", r.guarded(h.HandleGet, httpx.LenientLimit, selfOr(domain.RoleDoctor, pathID)))
	r.Mux.Handle("PATCH /patient/{id}", r.guarded(h.HandleUpdate, httpx.ModerateLimit, selfOr(domain.RoleAdmin, pathID)))
	r.Mux.Handle("DELETE /patient/{id}", r.guarded(h.HandleDelete, httpx.ModerateLimit, requireRole(domain.RoleAdmin)))
}

func (r *Router) registerGraph() {
	h := &GraphHandler{Graphs: r.GraphService}
	owner := selfOr(domain.RoleAdmin, ownerOf(r.GraphService.Owner))

	r.Mux.Handle("POST /graph", r.guarded(h.HandleCreate, httpx.ModerateLimit, requireRole(domain.RoleDoctor)))
	r.Mux.Handle("GET /graph", r.public(h.HandleList, httpx.PublicLimit))
	r.Mux.Handle("GET /graph/{id}", r.public(h.HandleGet, httpx.PublicLimit))
	r.Mux.Handle("PATCH /graph/{id}", r.guarded(h.HandleUpdate, httpx.ModerateLimit, owner))
	r.Mux.Handle("DELETE /graph/{id}", r.guarded(h.HandleDelete, httpx.ModerateLimit, owner))
}

func (r *Router) registerAppointment() {
	h := &AppointmentHandler{Appointments: r.AppointmentService}
	owner := selfOr(domain.RoleAdmin, ownerOf(r.AppointmentService.Owner))

	r.Mux.Handle("POST /appointment", r.guarded(h.HandleCreate, httpx.ModerateLimit, requireRole(domain.RolePatient)))
	r.Mux.Handle("GET /appointment", r.guarded(h.HandleList, httpx.LenientLimit, requireRole(domain.RoleDoctor)))
	r.Mux.Handle("GET /appointment/{id}", r.guarded(h.HandleGet, httpx.LenientLimit, owner))
	r.Mux.Handle("PATCH /appointment/{id}", r.guarded(h.HandleUpdate, httpx.ModerateLimit, owner))
	r.Mux.Handle("DELETE /appointment/{id}", r.guarded(h.HandleDelete, httpx.ModerateLimit, owner))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.otpCache),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
