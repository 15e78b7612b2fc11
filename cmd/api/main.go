package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"audit_funnel_backend/internal/applications"
	"audit_funnel_backend/internal/audit"
	"audit_funnel_backend/internal/audit/ports"
	auditrepo "audit_funnel_backend/internal/audit/repository"
	"audit_funnel_backend/internal/events"
	apphttp "audit_funnel_backend/internal/http"
	"audit_funnel_backend/internal/http/router"
	"audit_funnel_backend/internal/inspector"
	"audit_funnel_backend/internal/notification"
	"audit_funnel_backend/internal/pdf"
	"audit_funnel_backend/internal/sms"
	"audit_funnel_backend/internal/storage"
	"audit_funnel_backend/internal/templates"
	templaterepo "audit_funnel_backend/internal/templates/repository"
	"audit_funnel_backend/migrations"
	"audit_funnel_backend/platform/config"
	"audit_funnel_backend/platform/db"
	"audit_funnel_backend/platform/logger"
	"audit_funnel_backend/platform/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	if !strings.EqualFold(cfg.Env, "development") {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	var (
		pool         *pgxpool.Pool
		auditRepo    auditrepo.Repository
		templateRepo templaterepo.Repository
		health       apphttp.HealthChecker
	)

	if cfg.IsDatabaseEnabled() {
		if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
			return db.RunMigrations(ctx, cfg, migrations.FS)
		}); err != nil {
			log.Error("failed to run database migrations", "error", err)
			panic("failed to run database migrations: " + err.Error())
		}
		log.Info("database migrations complete")

		if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
			p, err := db.NewPool(ctx, cfg)
			if err != nil {
				return err
			}
			pool = p
			return nil
		}); err != nil {
			log.Error("failed to connect to database", "error", err)
			panic("failed to connect to database: " + err.Error())
		}
		defer pool.Close()
		log.Info("database connection established")

		auditRepo = auditrepo.New(pool)

		templatePg := templaterepo.New(pool)
		if err := templatePg.SeedDefaults(ctx); err != nil {
			log.Error("failed to seed template library", "error", err)
			panic("failed to seed template library: " + err.Error())
		}
		templateRepo = templatePg
		health = pool
	} else {
		log.Warn("DATABASE_URL not configured, using in-memory storage")
		auditRepo = auditrepo.NewMemory()
		templateRepo = templaterepo.NewMemory()
	}

	// Event bus for decoupled communication between modules
	eventBus := events.NewInMemoryBus(log)

	// Shared validator instance for dependency injection
	val := validator.New()

	// Landing page inspector for website audits
	pageInspector := inspector.New(cfg, log)

	// Gotenberg PDF rendering
	var renderer ports.ReportRenderer
	if cfg.IsGotenbergEnabled() {
		gotenberg := pdf.NewGotenbergClient(cfg.GetGotenbergURL(), cfg.GetGotenbergUsername(), cfg.GetGotenbergPassword())
		renderer = pdf.NewRenderer(gotenberg)
		log.Info("gotenberg PDF renderer initialized", "url", cfg.GetGotenbergURL())
	} else {
		log.Warn("GOTENBERG_URL not configured, PDF downloads disabled")
	}

	// MinIO archive for rendered report PDFs
	var archiver ports.ReportArchiver
	if cfg.IsMinIOEnabled() {
		minioArchiver, err := storage.NewMinIOArchiver(cfg)
		if err != nil {
			log.Error("failed to initialize storage service", "error", err)
			panic("failed to initialize storage service: " + err.Error())
		}
		if err := withRetry(ctx, log, "ensure report bucket", 5, 2*time.Second, func() error {
			return minioArchiver.EnsureBucketExists(ctx)
		}); err != nil {
			log.Error("failed to ensure report bucket exists", "error", err)
			panic("failed to ensure report bucket exists: " + err.Error())
		}
		archiver = minioArchiver
		log.Info("report PDF archive initialized", "bucket", cfg.GetMinioBucketReportPDFs())
	}

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	// Notification module subscribes to domain events (not HTTP-facing)
	var smsSender notification.SMSSender
	if client := sms.NewClient(cfg, log); client != nil {
		smsSender = client
		log.Info("twilio SMS notifications enabled")
	}
	notificationModule := notification.NewModule(smsSender, cfg.GetNotifyPhoneNumber(), log)
	notificationModule.RegisterHandlers(eventBus)

	auditModule := audit.NewModule(auditRepo, pageInspector, renderer, archiver, eventBus, val, log)
	templatesModule := templates.NewModule(templateRepo, log)
	applicationsModule := applications.NewModule(eventBus, val, log, cfg.IsTwilioEnabled())

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		Health:   health,
		EventBus: eventBus,
		Modules: []apphttp.Module{
			auditModule,
			templatesModule,
			applicationsModule,
		},
	}

	engine := router.New(app)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: engine,
	}

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", "error", err)
		}
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}
	return fmt.Errorf("%s failed after %d attempts: %w", name, attempts, lastErr)
}
