package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/frahmantamala/leave-management/internal"
	"github.com/frahmantamala/leave-management/internal/assistant"
	"github.com/frahmantamala/leave-management/internal/auth"
	authPostgres "github.com/frahmantamala/leave-management/internal/auth/postgres"
	"github.com/frahmantamala/leave-management/internal/core/events"
	"github.com/frahmantamala/leave-management/internal/leave"
	leavePostgres "github.com/frahmantamala/leave-management/internal/leave/postgres"
	"github.com/frahmantamala/leave-management/internal/leavetype"
	leavetypePostgres "github.com/frahmantamala/leave-management/internal/leavetype/postgres"
	"github.com/frahmantamala/leave-management/internal/transport"
	"github.com/frahmantamala/leave-management/internal/transport/rest"
	"github.com/frahmantamala/leave-management/internal/transport/swagger"
	"github.com/frahmantamala/leave-management/internal/user"
	userPostgres "github.com/frahmantamala/leave-management/internal/user/postgres"
	"github.com/frahmantamala/leave-management/pkg/logger"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config   *internal.Config
	DB       *sqlx.DB
	GormDB   *gorm.DB
	Router   *chi.Mux
	EventBus *events.EventBus
	Logger   *slog.Logger

	AuthHandler      *auth.Handler
	AuthService      *auth.Service
	UserHandler      *user.Handler
	LeaveHandler     *leave.Handler
	LeaveTypeHandler *leavetype.Handler
	AssistantHandler *assistant.Handler
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	rest.RegisterAllRoutes(deps.Router, deps.DB.DB, deps.AuthHandler, deps.AuthService,
		deps.UserHandler, deps.LeaveHandler, deps.LeaveTypeHandler, deps.AssistantHandler, deps.Logger)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			deps.Logger.Error("database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Observability.Logging.Format, config.Observability.Logging.Level)
	log := logger.LoggerWrapper()

	if err := swagger.ValidateSpec(context.Background(), "./api/openapi.yml"); err != nil {
		// A broken spec only affects the docs endpoint, not the API itself.
		log.Warn("openapi spec validation failed", "error", err)
	}

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: db.DB}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize gorm: %w", err)
	}

	eventBus := events.NewEventBus(log)
	registerAuditSubscribers(eventBus, log)

	// Auth
	tokenGen := auth.NewJWTTokenGenerator(
		config.Security.AccessTokenSecret,
		config.Security.RefreshTokenSecret,
		config.Security.AccessTokenDuration,
		config.Security.RefreshTokenDuration,
	)
	authRepo := authPostgres.NewRepository(gormDB)
	authService := auth.NewService(authRepo, tokenGen, config.Security.BCryptCost)
	authHandler := auth.NewHandler(authService)

	// Users
	userRepo := userPostgres.NewUserRepository(gormDB)
	userService := user.NewService(userRepo, authService, log)
	userHandler := user.NewHandler(userService)

	// Leave type catalog
	leaveTypeRepo := leavetypePostgres.NewLeaveTypeRepository(gormDB)
	leaveTypeService := leavetype.NewService(leaveTypeRepo, log)
	leaveTypeHandler := leavetype.NewHandler(transport.NewBaseHandler(log), leaveTypeService)

	// Leave workflow
	leaveRepo := leavePostgres.NewLeaveRepository(gormDB)
	leaveService := leave.NewService(leaveRepo, leaveTypeService, userService, eventBus, log)
	leaveHandler := leave.NewHandler(leaveService)

	// Reason assistant
	assistantClient := assistant.NewClient(assistant.Config{
		APIURL:  config.Assistant.APIURL,
		APIKey:  config.Assistant.APIKey,
		Timeout: config.Assistant.Timeout,
	}, log)
	assistantHandler := assistant.NewHandler(transport.NewBaseHandler(log), assistantClient, leaveTypeService)

	return &Dependencies{
		Config:   config,
		Logger:   log,
		DB:       db,
		GormDB:   gormDB,
		Router:   chi.NewRouter(),
		EventBus: eventBus,

		AuthHandler:      authHandler,
		AuthService:      authService,
		UserHandler:      userHandler,
		LeaveHandler:     leaveHandler,
		LeaveTypeHandler: leaveTypeHandler,
		AssistantHandler: assistantHandler,
	}, nil
}

// registerAuditSubscribers logs every leave lifecycle event so status changes
// leave a trace even when nobody is watching the request logs.
func registerAuditSubscribers(bus *events.EventBus, log *slog.Logger) {
	auditHandler := func(ctx context.Context, event events.Event) error {
		log.Info("audit: leave lifecycle event",
			"event_id", event.EventID(),
			"event_type", event.EventType(),
			"payload", event.Payload())
		return nil
	}

	bus.Subscribe(events.EventTypeLeaveSubmitted, auditHandler)
	bus.Subscribe(events.EventTypeLeaveApproved, auditHandler)
	bus.Subscribe(events.EventTypeLeaveRejected, auditHandler)
}

// initDB initializes the database connection
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	// verify connection; close underlying *sql.DB on failure
	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}
