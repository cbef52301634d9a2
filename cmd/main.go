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
	"github.com/redis/go-redis/v9"

	createReservationHandler "github.com/m04kA/RBM-ScheduleService/internal/api/handlers/create_reservation"
	deleteReservationHandler "github.com/m04kA/RBM-ScheduleService/internal/api/handlers/delete_reservation"
	getDayScheduleHandler "github.com/m04kA/RBM-ScheduleService/internal/api/handlers/get_day_schedule"
	getReservationHandler "github.com/m04kA/RBM-ScheduleService/internal/api/handlers/get_reservation"
	getReservationsHandler "github.com/m04kA/RBM-ScheduleService/internal/api/handlers/get_reservations"
	getVenuesHandler "github.com/m04kA/RBM-ScheduleService/internal/api/handlers/get_venues"
	updateReservationHandler "github.com/m04kA/RBM-ScheduleService/internal/api/handlers/update_reservation"
	"github.com/m04kA/RBM-ScheduleService/internal/api/middleware"
	"github.com/m04kA/RBM-ScheduleService/internal/config"
	"github.com/m04kA/RBM-ScheduleService/internal/domain"
	scheduleCache "github.com/m04kA/RBM-ScheduleService/internal/infra/cache/schedule"
	reservationRepo "github.com/m04kA/RBM-ScheduleService/internal/infra/storage/reservation"
	venueRepo "github.com/m04kA/RBM-ScheduleService/internal/infra/storage/venue"
	staffDirClient "github.com/m04kA/RBM-ScheduleService/internal/integrations/staffdir"
	indicatorService "github.com/m04kA/RBM-ScheduleService/internal/service/indicator"
	reservationsService "github.com/m04kA/RBM-ScheduleService/internal/service/reservations"
	createReservationUC "github.com/m04kA/RBM-ScheduleService/internal/usecase/create_reservation"
	getDayScheduleUC "github.com/m04kA/RBM-ScheduleService/internal/usecase/get_day_schedule"
	updateReservationUC "github.com/m04kA/RBM-ScheduleService/internal/usecase/update_reservation"
	"github.com/m04kA/RBM-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/RBM-ScheduleService/pkg/logger"
	"github.com/m04kA/RBM-ScheduleService/pkg/metrics"
	"github.com/m04kA/RBM-ScheduleService/pkg/simpletxmanager"
	"github.com/m04kA/RBM-ScheduleService/pkg/txmanager"
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

	log.Info("Starting RBM-ScheduleService...")
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

	// Геометрия сетки расписания
	axis := domain.Axis{
		StartHour:    cfg.Schedule.StartHour,
		EndHour:      cfg.Schedule.EndHour,
		HourHeight:   cfg.Schedule.HourHeightPx,
		HeaderHeight: cfg.Schedule.HeaderHeightPx,
	}

	// Кэш расписаний поверх Redis (опционально)
	var dayCache interface {
		Get(ctx context.Context, restaurantID int64, date time.Time, dest interface{}) error
		Set(ctx context.Context, restaurantID int64, date time.Time, value interface{}) error
		Invalidate(ctx context.Context, restaurantID int64, date time.Time) error
	}
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		dayCache = scheduleCache.New(redisClient, time.Duration(cfg.Redis.TTLSeconds)*time.Second, log)
		log.Info("Schedule cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTLSeconds)
	} else {
		dayCache = scheduleCache.NewNoop()
		log.Info("Schedule cache disabled, serving directly from database")
	}

	// Клиент справочника персонала
	staffClient := staffDirClient.NewClient(
		cfg.StaffService.URL,
		time.Duration(cfg.StaffService.Timeout)*time.Second,
		log,
	)
	log.Info("Staff directory client initialized (url=%s, timeout=%ds)",
		cfg.StaffService.URL, cfg.StaffService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		venueRepository       *venueRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		venueRepository = venueRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		venueRepository = venueRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Сервис линии текущего времени
	indicatorSvc := indicatorService.NewService(
		axis,
		time.Duration(cfg.Schedule.IndicatorRefreshSeconds)*time.Second,
		log,
	)
	indicatorSvc.Start(context.Background())
	defer indicatorSvc.Stop()

	// Сервис бронирований
	reservationsSvc := reservationsService.NewService(
		reservationRepository,
		venueRepository,
		dayCache,
		txMgr,
		log,
	)

	// Инициализируем use cases
	getDayScheduleUseCase := getDayScheduleUC.NewUseCase(
		reservationRepository,
		venueRepository,
		staffClient,
		indicatorSvc,
		dayCache,
		axis,
		cfg.Schedule.InitialScrollHours,
		cfg.Schedule.TodayScrollHours,
		log,
	)

	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		venueRepository,
		dayCache,
		txMgr,
		log,
	)

	updateReservationUseCase := updateReservationUC.NewUseCase(
		reservationRepository,
		venueRepository,
		dayCache,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getDaySchedule := getDayScheduleHandler.NewHandler(getDayScheduleUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	updateReservation := updateReservationHandler.NewHandler(updateReservationUseCase, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationsSvc, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	getReservations := getReservationsHandler.NewHandler(reservationsSvc, log)
	getVenues := getVenuesHandler.NewHandler(reservationsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Сквозной идентификатор запроса
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Расписание ---
	// Сетка дня со всеми колонками залов
	protected.HandleFunc("/restaurants/{restaurantId}/schedule", getDaySchedule.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/restaurants/{restaurantId}/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Список бронирований ресторана
	protected.HandleFunc("/restaurants/{restaurantId}/reservations", getReservations.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// Обновление бронирования
	protected.HandleFunc("/reservations/{reservationId}", updateReservation.Handle).Methods(http.MethodPut)

	// Удаление бронирования
	protected.HandleFunc("/reservations/{reservationId}", deleteReservation.Handle).Methods(http.MethodDelete)

	// --- Залы ---
	protected.HandleFunc("/restaurants/{restaurantId}/venues", getVenues.Handle).Methods(http.MethodGet)

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
