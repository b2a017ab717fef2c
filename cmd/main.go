package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createHolidayHandler "github.com/sung-woo-jang/living-craft-backend/internal/api/handlers/create_holiday"
	deleteHolidayHandler "github.com/sung-woo-jang/living-craft-backend/internal/api/handlers/delete_holiday"
	getAvailableDatesHandler "github.com/sung-woo-jang/living-craft-backend/internal/api/handlers/get_available_dates"
	getAvailableTimesHandler "github.com/sung-woo-jang/living-craft-backend/internal/api/handlers/get_available_times"
	getServiceScheduleHandler "github.com/sung-woo-jang/living-craft-backend/internal/api/handlers/get_service_schedule"
	listHolidaysHandler "github.com/sung-woo-jang/living-craft-backend/internal/api/handlers/list_holidays"
	updateServiceScheduleHandler "github.com/sung-woo-jang/living-craft-backend/internal/api/handlers/update_service_schedule"
	"github.com/sung-woo-jang/living-craft-backend/internal/api/middleware"
	"github.com/sung-woo-jang/living-craft-backend/internal/config"
	calendarRepo "github.com/sung-woo-jang/living-craft-backend/internal/infra/storage/calendar"
	overrideRepo "github.com/sung-woo-jang/living-craft-backend/internal/infra/storage/override"
	reservationRepo "github.com/sung-woo-jang/living-craft-backend/internal/infra/storage/reservation"
	holidaysService "github.com/sung-woo-jang/living-craft-backend/internal/service/holidays"
	scheduleService "github.com/sung-woo-jang/living-craft-backend/internal/service/schedule"
	getAvailableDatesUC "github.com/sung-woo-jang/living-craft-backend/internal/usecase/get_available_dates"
	getAvailableTimesUC "github.com/sung-woo-jang/living-craft-backend/internal/usecase/get_available_times"
	"github.com/sung-woo-jang/living-craft-backend/pkg/dbmetrics"
	"github.com/sung-woo-jang/living-craft-backend/pkg/logger"
	"github.com/sung-woo-jang/living-craft-backend/pkg/metrics"
	"github.com/sung-woo-jang/living-craft-backend/pkg/txmanager"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to TOML config")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
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

	log.Info("Starting living-craft availability service...")
	log.Info("Configuration loaded from %s", *configPath)

	loc, err := cfg.Schedule.Location()
	if err != nil {
		log.Fatal("Failed to load schedule timezone %q: %v", cfg.Schedule.Timezone, err)
	}
	log.Info("Schedule timezone: %s", loc)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Инициализируем репозитории (с метриками или без)
	var (
		executor  dbmetrics.DBExecutor
		txMgr     *txmanager.TransactionManager
		ucMetrics getAvailableTimesUC.MetricsRecorder
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		executor = wrappedDB
		txMgr = txmanager.NewTransactionManager(wrappedDB)
		ucMetrics = metricsCollector
	} else {
		executor = db
		txMgr = txmanager.NewTransactionManager(txmanager.SQLBeginner{DB: db})
	}

	calendarRepository := calendarRepo.NewRepository(executor)
	overrideRepository := overrideRepo.NewRepository(executor)
	reservationRepository := reservationRepo.NewRepository(executor)

	// Инициализируем сервисы
	scheduleSvc := scheduleService.NewService(
		calendarRepository,
		overrideRepository,
		txMgr,
		log,
	)
	holidaysSvc := holidaysService.NewService(
		calendarRepository,
		overrideRepository,
		log,
	)

	// Инициализируем use cases
	getAvailableTimesUseCase := getAvailableTimesUC.NewUseCase(
		scheduleSvc,
		calendarRepository,
		overrideRepository,
		reservationRepository,
		ucMetrics,
		&getAvailableTimesUC.RealTimeProvider{Location: loc},
		log,
	)

	getAvailableDatesUseCase := getAvailableDatesUC.NewUseCase(
		scheduleSvc,
		calendarRepository,
		overrideRepository,
		ucMetrics,
		&getAvailableDatesUC.RealTimeProvider{Location: loc},
		log,
	)

	// Инициализируем handlers
	getAvailableTimes := getAvailableTimesHandler.NewHandler(getAvailableTimesUseCase, log)
	getAvailableDates := getAvailableDatesHandler.NewHandler(getAvailableDatesUseCase, log)
	getServiceSchedule := getServiceScheduleHandler.NewHandler(scheduleSvc, log)
	updateServiceSchedule := updateServiceScheduleHandler.NewHandler(scheduleSvc, log)
	createHoliday := createHolidayHandler.NewHandler(holidaysSvc, log)
	deleteHoliday := deleteHolidayHandler.NewHandler(holidaysSvc, log)
	listHolidays := listHolidaysHandler.NewHandler(holidaysSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Свободные слоты на дату
	api.HandleFunc("/services/{serviceId}/available-times", getAvailableTimes.Handle).Methods(http.MethodGet)

	// Недоступные даты месяца
	api.HandleFunc("/services/{serviceId}/available-dates", getAvailableDates.Handle).Methods(http.MethodGet)

	// Итоговое расписание услуги
	api.HandleFunc("/services/{serviceId}/schedule", getServiceSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Расписание услуги ---
	protected.HandleFunc("/services/{serviceId}/schedule", updateServiceSchedule.Handle).Methods(http.MethodPut)

	// --- Глобальные выходные ---
	protected.HandleFunc("/holidays", listHolidays.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/holidays", createHoliday.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/holidays/{date}", deleteHoliday.Handle).Methods(http.MethodDelete)

	// --- Выходные услуги ---
	protected.HandleFunc("/services/{serviceId}/holidays", listHolidays.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/services/{serviceId}/holidays", createHoliday.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/services/{serviceId}/holidays/{date}", deleteHoliday.Handle).Methods(http.MethodDelete)

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
	close(stopMetricsCh)

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
