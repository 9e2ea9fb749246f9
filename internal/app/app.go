package app

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"

	"daycare-service/internal/child"
	"daycare-service/internal/classroom"
	"daycare-service/internal/config"
	"daycare-service/internal/daycare"
	"daycare-service/internal/db"
	"daycare-service/internal/docs"
	"daycare-service/internal/enrollment"
	"daycare-service/internal/health"
	"daycare-service/internal/logger"
	"daycare-service/internal/metrics"
	"daycare-service/internal/middleware"
	"daycare-service/internal/parent"

	"github.com/gin-gonic/gin"
)

type App struct {
	config *config.Config
	router *gin.Engine
	server *http.Server
	logger *slog.Logger
}

func New() *App {
	slogLogger := logger.NewWithServiceContext(ServiceName, Version)

	// Set as default logger so slog.Info() uses JSON format
	slog.SetDefault(slogLogger)

	slogLogger.Info("initializing application")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	slogLogger.Info("config loaded", "env", cfg.Env)

	if cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	app := &App{
		config: cfg,
		router: gin.New(),
		logger: slogLogger,
	}

	database := db.New(cfg.Database)

	ctx := context.Background()
	if err := db.RunMigrations(ctx, database); err != nil {
		log.Fatal("failed to run migrations:", err)
	}
	if err := db.Seed(ctx, database); err != nil {
		log.Fatal("failed to seed database:", err)
	}

	httpMetrics, err := metrics.New(cfg.Metrics.Namespace)
	if err != nil {
		log.Fatal("failed to initialize metrics:", err)
	}

	app.router.Use(gin.Recovery())
	app.router.Use(middleware.CORS(cfg.Server.CORSAllowedOrigins))
	app.router.Use(httpMetrics.Middleware())

	// System endpoints
	healthHandler := health.NewHandler()
	healthHandler.RegisterRoutes(app.router)
	httpMetrics.RegisterRoutes(app.router)
	docs.RegisterRoutes(app.router)

	// Entity endpoints
	daycareRepo := daycare.NewRepository(database)
	daycareHandler := daycare.NewHandler(daycare.NewService(daycareRepo), slogLogger)
	daycareHandler.RegisterRoutes(app.router)

	classroomRepo := classroom.NewRepository(database)
	classroomHandler := classroom.NewHandler(classroom.NewService(classroomRepo), slogLogger)
	classroomHandler.RegisterRoutes(app.router)

	parentRepo := parent.NewRepository(database)
	parentHandler := parent.NewHandler(parent.NewService(parentRepo), slogLogger)
	parentHandler.RegisterRoutes(app.router)

	childRepo := child.NewRepository(database)
	childHandler := child.NewHandler(child.NewService(childRepo), slogLogger)
	childHandler.RegisterRoutes(app.router)

	enrollmentRepo := enrollment.NewRepository(database)
	enrollmentHandler := enrollment.NewHandler(enrollment.NewService(enrollmentRepo), slogLogger)
	enrollmentHandler.RegisterRoutes(app.router)

	slogLogger.Info("application initialized successfully")

	return app
}

func (a *App) Run() error {
	a.server = &http.Server{
		Addr:    fmt.Sprintf(":%s", a.config.Server.Port),
		Handler: a.router,
	}

	a.logger.Info("server starting", "port", a.config.Server.Port)
	return a.server.ListenAndServe()
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("shutting down server")
	return a.server.Shutdown(ctx)
}
