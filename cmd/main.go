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

	arriveReservationHandler "github.com/josephken/RMS-ReservationService/internal/api/handlers/arrive_reservation"
	cancelReservationHandler "github.com/josephken/RMS-ReservationService/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/josephken/RMS-ReservationService/internal/api/handlers/create_reservation"
	createTableHandler "github.com/josephken/RMS-ReservationService/internal/api/handlers/create_table"
	deleteReservationHandler "github.com/josephken/RMS-ReservationService/internal/api/handlers/delete_reservation"
	deleteTableHandler "github.com/josephken/RMS-ReservationService/internal/api/handlers/delete_table"
	findAvailableTablesHandler "github.com/josephken/RMS-ReservationService/internal/api/handlers/find_available_tables"
	getAvailableTimesHandler "github.com/josephken/RMS-ReservationService/internal/api/handlers/get_available_times"
	getReservationHandler "github.com/josephken/RMS-ReservationService/internal/api/handlers/get_reservation"
	getTableHandler "github.com/josephken/RMS-ReservationService/internal/api/handlers/get_table"
	getUserReservationsHandler "github.com/josephken/RMS-ReservationService/internal/api/handlers/get_user_reservations"
	listReservationsHandler "github.com/josephken/RMS-ReservationService/internal/api/handlers/list_reservations"
	listTablesHandler "github.com/josephken/RMS-ReservationService/internal/api/handlers/list_tables"
	updateReservationHandler "github.com/josephken/RMS-ReservationService/internal/api/handlers/update_reservation"
	updateTableHandler "github.com/josephken/RMS-ReservationService/internal/api/handlers/update_table"
	"github.com/josephken/RMS-ReservationService/internal/api/middleware"
	"github.com/josephken/RMS-ReservationService/internal/config"
	reservationRepo "github.com/josephken/RMS-ReservationService/internal/infra/storage/reservation"
	tableRepo "github.com/josephken/RMS-ReservationService/internal/infra/storage/table"
	notifyServiceClient "github.com/josephken/RMS-ReservationService/internal/integrations/notifyservice"
	userServiceClient "github.com/josephken/RMS-ReservationService/internal/integrations/userservice"
	reservationsService "github.com/josephken/RMS-ReservationService/internal/service/reservations"
	tablesService "github.com/josephken/RMS-ReservationService/internal/service/tables"
	createReservationUC "github.com/josephken/RMS-ReservationService/internal/usecase/create_reservation"
	findAvailableTablesUC "github.com/josephken/RMS-ReservationService/internal/usecase/find_available_tables"
	getAvailableTimesUC "github.com/josephken/RMS-ReservationService/internal/usecase/get_available_times"
	"github.com/josephken/RMS-ReservationService/pkg/dbmetrics"
	"github.com/josephken/RMS-ReservationService/pkg/logger"
	"github.com/josephken/RMS-ReservationService/pkg/metrics"
	"github.com/josephken/RMS-ReservationService/pkg/migrate"
	"github.com/josephken/RMS-ReservationService/pkg/simpletxmanager"
	"github.com/josephken/RMS-ReservationService/pkg/txmanager"
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

	log.Info("Starting RMS-ReservationService...")
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

	// Применяем миграции
	if err := migrate.Up(db, log); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}

	// Инициализируем интеграционных клиентов
	userClient := userServiceClient.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)
	notifyClient := notifyServiceClient.NewClient(
		cfg.NotifyService.URL,
		time.Duration(cfg.NotifyService.Timeout)*time.Second,
		log,
	)
	notifier := notifyServiceClient.NewDispatcher(notifyClient, log)
	log.Info("Integration clients initialized (UserService=%s timeout=%ds, NotifyService=%s timeout=%ds)",
		cfg.UserService.URL, cfg.UserService.Timeout, cfg.NotifyService.URL, cfg.NotifyService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		tableRepository       *tableRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		tableRepository = tableRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		tableRepository = tableRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(
		reservationRepository,
		tableRepository,
		userClient,
		notifier,
		log,
	)
	tableSvc := tablesService.NewService(
		tableRepository,
		userClient,
		log,
	)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		tableRepository,
		userClient,
		notifier,
		txMgr,
		log,
	)
	findAvailableTablesUseCase := findAvailableTablesUC.NewUseCase(tableRepository, log)
	getAvailableTimesUseCase := getAvailableTimesUC.NewUseCase(log)

	// Инициализируем handlers
	getAvailableTimes := getAvailableTimesHandler.NewHandler(getAvailableTimesUseCase, log)
	findAvailableTables := findAvailableTablesHandler.NewHandler(findAvailableTablesUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationSvc, log)
	updateReservation := updateReservationHandler.NewHandler(reservationSvc, log)
	arriveReservation := arriveReservationHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationSvc, log)
	createTable := createTableHandler.NewHandler(tableSvc, log)
	getTable := getTableHandler.NewHandler(tableSvc, log)
	listTables := listTablesHandler.NewHandler(tableSvc, log)
	updateTable := updateTableHandler.NewHandler(tableSvc, log)
	deleteTable := deleteTableHandler.NewHandler(tableSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

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
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Календарь доступных времён начала брони на две недели вперёд
	api.HandleFunc("/reservations/available-times", getAvailableTimes.Handle).Methods(http.MethodGet)

	// Поиск свободных столиков на конкретный слот
	api.HandleFunc("/tables/availability", findAvailableTables.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Брони ---
	// Создание брони
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Все брони ресторана (персонал)
	protected.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)

	// Получение брони по ID
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// Изменение телефона/размера компании
	protected.HandleFunc("/reservations/{reservationId}", updateReservation.Handle).Methods(http.MethodPatch)

	// Удаление брони (персонал)
	protected.HandleFunc("/reservations/{reservationId}", deleteReservation.Handle).Methods(http.MethodDelete)

	// Отметка прибытия гостей (персонал)
	protected.HandleFunc("/reservations/{reservationId}/arrive", arriveReservation.Handle).Methods(http.MethodPatch)

	// Отмена брони владельцем
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// История броней пользователя
	protected.HandleFunc("/users/{userId}/reservations", getUserReservations.Handle).Methods(http.MethodGet)

	// --- Столики (администрирование, персонал) ---
	protected.HandleFunc("/tables", createTable.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/tables", listTables.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/tables/{tableId}", getTable.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/tables/{tableId}", updateTable.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/tables/{tableId}", deleteTable.Handle).Methods(http.MethodDelete)

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
