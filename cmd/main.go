package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createClientHandler "github.com/Elmamis69/jmares-reservas/internal/api/handlers/create_client"
	createReservationHandler "github.com/Elmamis69/jmares-reservas/internal/api/handlers/create_reservation"
	deleteReservationHandler "github.com/Elmamis69/jmares-reservas/internal/api/handlers/delete_reservation"
	getReservationHandler "github.com/Elmamis69/jmares-reservas/internal/api/handlers/get_reservation"
	healthHandler "github.com/Elmamis69/jmares-reservas/internal/api/handlers/health"
	listClientsHandler "github.com/Elmamis69/jmares-reservas/internal/api/handlers/list_clients"
	listReservationsHandler "github.com/Elmamis69/jmares-reservas/internal/api/handlers/list_reservations"
	loginHandler "github.com/Elmamis69/jmares-reservas/internal/api/handlers/login"
	updateReservationHandler "github.com/Elmamis69/jmares-reservas/internal/api/handlers/update_reservation"
	"github.com/Elmamis69/jmares-reservas/internal/api/middleware"
	"github.com/Elmamis69/jmares-reservas/internal/config"
	"github.com/Elmamis69/jmares-reservas/internal/domain"
	clientRepo "github.com/Elmamis69/jmares-reservas/internal/infra/storage/client"
	reservationRepo "github.com/Elmamis69/jmares-reservas/internal/infra/storage/reservation"
	userRepo "github.com/Elmamis69/jmares-reservas/internal/infra/storage/user"
	authService "github.com/Elmamis69/jmares-reservas/internal/service/auth"
	clientsService "github.com/Elmamis69/jmares-reservas/internal/service/clients"
	reservationsService "github.com/Elmamis69/jmares-reservas/internal/service/reservations"
	createReservationUC "github.com/Elmamis69/jmares-reservas/internal/usecase/create_reservation"
	updateReservationUC "github.com/Elmamis69/jmares-reservas/internal/usecase/update_reservation"
	"github.com/Elmamis69/jmares-reservas/pkg/dbmetrics"
	"github.com/Elmamis69/jmares-reservas/pkg/logger"
	"github.com/Elmamis69/jmares-reservas/pkg/metrics"
	"github.com/Elmamis69/jmares-reservas/pkg/simpletxmanager"
	"github.com/Elmamis69/jmares-reservas/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting jmares-reservas...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Transaction manager interface shared by the use cases.
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	var (
		reservationRepository *reservationRepo.Repository
		clientRepository      *clientRepo.Repository
		userRepository        *userRepo.Repository
		txMgr                 TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		clientRepository = clientRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		clientRepository = clientRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Services
	reservationsSvc := reservationsService.NewService(reservationRepository, log)
	clientsSvc := clientsService.NewService(clientRepository, log)
	authSvc := authService.NewService(
		userRepository,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute,
		log,
	)

	// Use cases
	createReservationUseCase := createReservationUC.NewUseCase(reservationRepository, txMgr, log)
	updateReservationUseCase := updateReservationUC.NewUseCase(reservationRepository, txMgr, log)

	// Handlers
	login := loginHandler.NewHandler(authSvc, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	updateReservation := updateReservationHandler.NewHandler(updateReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationsSvc, log)
	createClient := createClientHandler.NewHandler(clientsSvc, log)
	listClients := listClientsHandler.NewHandler(clientsSvc, log)
	health := healthHandler.NewHandler()

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	if cfg.RateLimit.Enabled {
		rateLimit, err := middleware.RateLimit(cfg.RateLimit.Rate)
		if err != nil {
			log.Fatal("Failed to configure rate limiter: %v", err)
		}
		r.Use(rateLimit)
		log.Info("Rate limiting enabled (%s)", cfg.RateLimit.Rate)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// Protected routes (valid access token required)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(cfg.Auth.JWTSecret))
	protected.Use(middleware.RequireRoles(string(domain.RoleAdmin), string(domain.RoleStaff)))

	// Reservations
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{id}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{id}", updateReservation.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/reservations/{id}", deleteReservation.Handle).Methods(http.MethodDelete)

	// Clients
	protected.HandleFunc("/clients", createClient.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/clients", listClients.Handle).Methods(http.MethodGet)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
