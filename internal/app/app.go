package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"gorm.io/gorm"

	"carelink-go/internal/config"
	"carelink-go/internal/db"
	"carelink-go/internal/domain/access"
	activitydomain "carelink-go/internal/domain/activity"
	appointmentdomain "carelink-go/internal/domain/appointment"
	connectiondomain "carelink-go/internal/domain/connection"
	healthdomain "carelink-go/internal/domain/health"
	locationdomain "carelink-go/internal/domain/location"
	medicationdomain "carelink-go/internal/domain/medication"
	seniordomain "carelink-go/internal/domain/senior"
	userdomain "carelink-go/internal/domain/user"
	"carelink-go/internal/metrics"
	"carelink-go/internal/repository/inmemory"
	activityrepo "carelink-go/internal/repository/postgres/activity"
	appointmentrepo "carelink-go/internal/repository/postgres/appointment"
	connectionrepo "carelink-go/internal/repository/postgres/connection"
	healthrepo "carelink-go/internal/repository/postgres/health"
	locationrepo "carelink-go/internal/repository/postgres/location"
	medicationrepo "carelink-go/internal/repository/postgres/medication"
	userrepo "carelink-go/internal/repository/postgres/user"
	"carelink-go/internal/transport/httpserver"
	"carelink-go/internal/transport/httpserver/handler"
	"carelink-go/internal/transport/httpserver/handler/care"
	"carelink-go/internal/transport/httpserver/handler/common"
	"carelink-go/internal/transport/httpserver/handler/connections"
	"carelink-go/internal/transport/httpserver/handler/seniors"
	"carelink-go/internal/transport/httpserver/handler/wellbeing"
	authmw "carelink-go/internal/transport/httpserver/middleware"
	"carelink-go/pkg/logger"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
	tokens     *inmemory.TTLCache[authmw.User]
	log        logger.Logger
}

func New(cfg config.Config, log logger.Logger) (*App, error) {
	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing router")
	tokens := inmemory.NewTTLCache[authmw.User]()
	router, err := NewRouter(cfg, dbConn, tokens, log)
	if err != nil {
		closeDB(dbConn)
		return nil, err
	}

	log.Info("app: initializing http server")
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
		tokens:     tokens,
		log:        log,
	}, nil
}

// NewRouter wires repositories, services and handlers over dbConn. tokens
// caches remotely verified bearer tokens.
func NewRouter(cfg config.Config, dbConn *gorm.DB, tokens authmw.TokenCache, log logger.Logger) (http.Handler, error) {
	sqlDB, err := dbConn.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}

	var m *metrics.Metrics
	var recorder access.Recorder
	if cfg.MetricsEnabled {
		m = metrics.New()
		recorder = m
	}

	connectionService := connectiondomain.NewService(connectionrepo.NewPostgres(dbConn))
	userService := userdomain.NewService(userrepo.NewPostgres(dbConn))
	healthService := healthdomain.NewService(healthrepo.NewPostgres(dbConn))
	appointmentService := appointmentdomain.NewService(appointmentrepo.NewPostgres(dbConn))
	medicationService := medicationdomain.NewService(medicationrepo.NewPostgres(dbConn))
	locationService := locationdomain.NewService(locationrepo.NewPostgres(dbConn))
	activityService := activitydomain.NewService(activityrepo.NewPostgres(dbConn))

	evaluator := access.NewEvaluator(connectionService, recorder)
	seniorService := seniordomain.NewService(seniordomain.Deps{
		Access:       evaluator,
		Health:       healthService,
		Medications:  medicationService,
		Appointments: appointmentService,
		Locations:    locationService,
		Activities:   activityService,
		Profiles:     userService,
	})

	handlers := handler.New(
		common.New(userService, sqlDB, log),
		connections.New(connectionService, log),
		seniors.New(seniorService, log),
		care.New(appointmentService, medicationService, log),
		wellbeing.New(healthService, locationService, activityService, log),
	)

	auth := authmw.NewSupabaseAuth(cfg.Supabase, userService, tokens, log)
	return httpserver.NewRouter(cfg, handlers, auth, m), nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

// PurgeTokens drops expired cache entries every interval until ctx is done.
func (a *App) PurgeTokens(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := a.tokens.Purge(); removed > 0 {
				a.log.Debug("auth: purged expired tokens", "count", removed)
			}
		}
	}
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func closeDB(dbConn *gorm.DB) {
	if sqlDB, err := dbConn.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// Migrate applies pending SQL migrations on the app's connection.
func (a *App) Migrate() error {
	applied, err := db.Migrate(a.db, a.cfg.DB.MigrationsDir, a.log)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	a.log.Info("db: migrations applied", "count", applied)
	return nil
}
