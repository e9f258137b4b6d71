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

	applyShiftActionHandler "github.com/m04kA/ORS-BookingService/internal/api/handlers/apply_shift_action"
	getProfileHandler "github.com/m04kA/ORS-BookingService/internal/api/handlers/get_profile"
	getShiftsHandler "github.com/m04kA/ORS-BookingService/internal/api/handlers/get_shifts"
	getUserShiftsHandler "github.com/m04kA/ORS-BookingService/internal/api/handlers/get_user_shifts"
	updateProfileHandler "github.com/m04kA/ORS-BookingService/internal/api/handlers/update_profile"
	"github.com/m04kA/ORS-BookingService/internal/api/middleware"
	"github.com/m04kA/ORS-BookingService/internal/config"
	profileRepo "github.com/m04kA/ORS-BookingService/internal/infra/storage/profile"
	shiftRepo "github.com/m04kA/ORS-BookingService/internal/infra/storage/shift"
	emailjsClient "github.com/m04kA/ORS-BookingService/internal/integrations/emailjs"
	identityServiceClient "github.com/m04kA/ORS-BookingService/internal/integrations/identityservice"
	profilesService "github.com/m04kA/ORS-BookingService/internal/service/profiles"
	shiftsService "github.com/m04kA/ORS-BookingService/internal/service/shifts"
	applyShiftActionUC "github.com/m04kA/ORS-BookingService/internal/usecase/apply_shift_action"
	"github.com/m04kA/ORS-BookingService/pkg/dbmetrics"
	"github.com/m04kA/ORS-BookingService/pkg/logger"
	"github.com/m04kA/ORS-BookingService/pkg/metrics"
	"github.com/m04kA/ORS-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/ORS-BookingService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting ORS-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем интеграционных клиентов
	identityClient := identityServiceClient.NewClient(
		cfg.IdentityService.URL,
		time.Duration(cfg.IdentityService.Timeout)*time.Second,
		log,
	)
	mailClient := emailjsClient.NewClient(
		cfg.EmailJS.URL,
		cfg.EmailJS.ServiceID,
		cfg.EmailJS.TemplateID,
		cfg.EmailJS.PublicKey,
		time.Duration(cfg.EmailJS.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (IdentityService=%s timeout=%ds, EmailJS=%s timeout=%ds)",
		cfg.IdentityService.URL, cfg.IdentityService.Timeout, cfg.EmailJS.URL, cfg.EmailJS.Timeout)

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		shiftRepository   *shiftRepo.Repository
		profileRepository *profileRepo.Repository
		txMgr             applyShiftActionUC.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		shiftRepository = shiftRepo.NewRepository(wrappedDB)
		profileRepository = profileRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		shiftRepository = shiftRepo.NewRepository(db)
		profileRepository = profileRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	shiftsSvc := shiftsService.NewService(
		shiftRepository,
		cfg.Booking.MaxParticipants,
		cfg.Booking.MaxWaitlist,
		log,
	)
	profilesSvc := profilesService.NewService(
		profileRepository,
		log,
	)

	// Инициализируем use case
	applyShiftActionUseCase := applyShiftActionUC.NewUseCase(
		shiftRepository,
		profileRepository,
		identityClient,
		mailClient,
		txMgr,
		applyShiftActionUC.Limits{
			MaxParticipants:          cfg.Booking.MaxParticipants,
			MaxWaitlist:              cfg.Booking.MaxWaitlist,
			CancelCutoffHours:        float64(cfg.Booking.CancelCutoffHours),
			LeaveWaitlistCutoffHours: float64(cfg.Booking.LeaveWaitlistCutoffHours),
			AllowedEmailSuffix:       cfg.Booking.AllowedEmailSuffix,
			ActionTimeout:            time.Duration(cfg.Booking.ActionTimeoutSeconds) * time.Second,
		},
		log,
	)

	// Инициализируем handlers
	applyShiftAction := applyShiftActionHandler.NewHandler(applyShiftActionUseCase, log)
	getShifts := getShiftsHandler.NewHandler(shiftsSvc, log)
	getUserShifts := getUserShiftsHandler.NewHandler(shiftsSvc, log)
	getProfile := getProfileHandler.NewHandler(profilesSvc, log)
	updateProfile := updateProfileHandler.NewHandler(profilesSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix: все ручки требуют X-User-ID header
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth)

	// --- Смены ---
	// Доска смен с занятостью и отметками пользователя
	api.HandleFunc("/shifts", getShifts.Handle).Methods(http.MethodGet)

	// Действие над сменой: запись / отмена / лист ожидания / выход
	api.HandleFunc("/shifts/{shiftId}/actions", applyShiftAction.Handle).Methods(http.MethodPost)

	// Заявки пользователя
	api.HandleFunc("/users/{userId}/shifts", getUserShifts.Handle).Methods(http.MethodGet)

	// --- Профиль ---
	api.HandleFunc("/users/{userId}/profile", getProfile.Handle).Methods(http.MethodGet)
	api.HandleFunc("/users/{userId}/profile", updateProfile.Handle).Methods(http.MethodPut)

	// Создаем HTTP сервер
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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
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
