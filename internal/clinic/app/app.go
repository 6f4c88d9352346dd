package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	httpapi "github.com/aussiebroadwan/clinic/internal/clinic/http"
	"github.com/aussiebroadwan/clinic/internal/clinic/otp"
	"github.com/aussiebroadwan/clinic/internal/clinic/service"
	"github.com/aussiebroadwan/clinic/internal/clinic/store/drivers/sqlite"
	"github.com/aussiebroadwan/clinic/pkg/cryptox"
	"github.com/aussiebroadwan/clinic/pkg/httpx"
	"github.com/aussiebroadwan/clinic/pkg/slogx"
)

// BuildVersion is overridden at build time via -ldflags.
var BuildVersion = "v0.1.0"

// Application owns the clinic service and everything it depends on.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db            *sqlite.Store
	otpStore      otp.Store
	redis         *redis.Client
	traceShutdown func(context.Context) error

	tokenService        *service.TokenService
	sessionService      *service.SessionService
	adminService        *service.AdminService
	doctorService       *service.DoctorService
	patientService      *service.PatientService
	graphService        *service.GraphService
	appointmentService  *service.AppointmentService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: serviceName,
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	cryptox.SetPepperPath(cfg.PepperFile)

	if err := httpx.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid TRUSTED_PROXIES: %w", err)
	}

	ctx := context.Background()

	shutdown, err := setupTracing(ctx, cfg.OTLPEndpoint, BuildVersion)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}
	app.traceShutdown = shutdown

	if err := app.initDatabase(); err != nil {
		return nil, err
	}
	if err := app.initOTPStore(ctx); err != nil {
		_ = app.db.Close()
		return nil, err
	}
	if err := app.initServices(); err != nil {
		app.closeBackends()
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

// Handler is the fully wired HTTP handler, for in-process tests.
func (app *Application) Handler() http.Handler { return app.server.Handler }

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("clinic service starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"otp_backend", app.cfg.OTPBackend,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.housekeepingService.Stop()
			app.closeBackends()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown drains in-flight requests, stops background work and closes
// the backends.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down clinic service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.traceShutdown(ctx); err != nil {
		app.logger.Error("error flushing traces", "error", err)
	}

	if err := app.closeBackends(); err != nil {
		return err
	}

	app.logger.Info("clinic service stopped")
	return nil
}

func (app *Application) closeBackends() error {
	var errs []error
	if app.redis != nil {
		if err := app.redis.Close(); err != nil {
			app.logger.Error("error closing redis", "error", err)
			errs = append(errs, err)
		}
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (app *Application) initDatabase() error {
	dsn := fmt.Sprintf(
		"file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)",
		app.cfg.DatabaseFile,
	)
	db, err := sqlite.NewStore(dsn)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

func (app *Application) initOTPStore(ctx context.Context) error {
	switch app.cfg.OTPBackend {
	case OTPBackendRedis:
		app.redis = redis.NewClient(&redis.Options{
			Addr:     app.cfg.RedisAddr,
			Password: app.cfg.RedisPass,
			DB:       app.cfg.RedisDB,
		})
		store := otp.NewRedisStore(app.redis, otp.DefaultRedisPrefix,
			otp.WithMaxAttempts(app.cfg.OTPMaxAttempts),
		)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := store.Ping(pingCtx); err != nil {
			_ = app.redis.Close()
			app.redis = nil
			return fmt.Errorf("failed to reach redis at %s: %w", app.cfg.RedisAddr, err)
		}
		app.otpStore = store
	default:
		app.otpStore = otp.NewMemoryStore(otp.WithMaxAttempts(app.cfg.OTPMaxAttempts))
	}

	app.logger.Info("otp store ready", "backend", app.cfg.OTPBackend)
	return nil
}

func (app *Application) initServices() error {
	tokens, err := service.NewTokenService(service.TokenConfig{
		AccessSecret:  app.cfg.AccessSecret,
		RefreshSecret: app.cfg.RefreshSecret,
		Issuer:        app.cfg.Issuer,
		AccessTTL:     app.cfg.AccessTTL,
		RefreshTTL:    app.cfg.RefreshTTL,
	}, app.db)
	if err != nil {
		return fmt.Errorf("failed to initialize token service: %w", err)
	}
	app.tokenService = tokens

	codes, err := otp.NewGenerator(app.cfg.OTPDigits)
	if err != nil {
		return fmt.Errorf("failed to initialize otp generator: %w", err)
	}

	app.sessionService = &service.SessionService{
		Store:         app.db,
		OTP:           app.otpStore,
		Codes:         codes,
		Sender:        otp.LogSender{},
		Tokens:        tokens,
		OTPTTL:        app.cfg.OTPTTL,
		EchoOTP:       app.cfg.OTPEcho,
		RotateRefresh: app.cfg.RefreshRotate,
	}
	app.adminService = &service.AdminService{
		Store:          app.db,
		Sessions:       app.sessionService,
		BootstrapToken: app.cfg.BootstrapToken,
	}
	app.doctorService = &service.DoctorService{Store: app.db}
	app.patientService = &service.PatientService{Store: app.db, Tokens: tokens}
	app.graphService = &service.GraphService{Store: app.db}
	app.appointmentService = &service.AppointmentService{Store: app.db}

	// Redis expires its own keys; only the in-process store needs sweeping.
	var sweeper service.Sweeper
	if mem, ok := app.otpStore.(*otp.MemoryStore); ok {
		sweeper = mem
	}
	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		sweeper,
		app.logger,
		app.cfg.HousekeepingInterval,
	)

	if app.cfg.BootstrapToken == "" {
		app.logger.Warn("BOOTSTRAP_TOKEN is not set; superadmin bootstrap is disabled")
	}
	return nil
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.tokenService.AccessVerifier(),
		BuildVersion,
		app.db,
		app.otpStore,
		app.logger,
	)

	router.Cookies = httpapi.CookieConfig{
		Secure:   app.cfg.CookieSecure,
		SameSite: httpapi.ParseSameSite(app.cfg.CookieSameSite),
		MaxAge:   app.cfg.RefreshTTL,
	}
	router.Sessions = app.sessionService
	router.AdminService = app.adminService
	router.DoctorService = app.doctorService
	router.PatientService = app.patientService
	router.GraphService = app.graphService
	router.AppointmentService = app.appointmentService
	router.ApplyRoutes()

	app.router = router

	var handler http.Handler = router
	if app.cfg.OTLPEndpoint != "" {
		handler = traced(router)
	}

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
