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

	bookSlotsHandler "github.com/vlkhvnn/DJ-BookingService/internal/api/handlers/book_slots"
	createB2BRequestHandler "github.com/vlkhvnn/DJ-BookingService/internal/api/handlers/create_b2b_request"
	getAvailableSlotsHandler "github.com/vlkhvnn/DJ-BookingService/internal/api/handlers/get_available_slots"
	getB2BRequestHandler "github.com/vlkhvnn/DJ-BookingService/internal/api/handlers/get_b2b_request"
	getBookingHandler "github.com/vlkhvnn/DJ-BookingService/internal/api/handlers/get_booking"
	getEventHandler "github.com/vlkhvnn/DJ-BookingService/internal/api/handlers/get_event"
	getUserBookingsHandler "github.com/vlkhvnn/DJ-BookingService/internal/api/handlers/get_user_bookings"
	publishEventHandler "github.com/vlkhvnn/DJ-BookingService/internal/api/handlers/publish_event"
	respondB2BRequestHandler "github.com/vlkhvnn/DJ-BookingService/internal/api/handlers/respond_b2b_request"
	"github.com/vlkhvnn/DJ-BookingService/internal/api/middleware"
	"github.com/vlkhvnn/DJ-BookingService/internal/config"
	b2bRepo "github.com/vlkhvnn/DJ-BookingService/internal/infra/storage/b2b"
	bookingRepo "github.com/vlkhvnn/DJ-BookingService/internal/infra/storage/booking"
	eventRepo "github.com/vlkhvnn/DJ-BookingService/internal/infra/storage/event"
	slotRepo "github.com/vlkhvnn/DJ-BookingService/internal/infra/storage/slot"
	userServiceClient "github.com/vlkhvnn/DJ-BookingService/internal/integrations/userservice"
	b2bService "github.com/vlkhvnn/DJ-BookingService/internal/service/b2b"
	bookingsService "github.com/vlkhvnn/DJ-BookingService/internal/service/bookings"
	eventsService "github.com/vlkhvnn/DJ-BookingService/internal/service/events"
	bookSlotsUC "github.com/vlkhvnn/DJ-BookingService/internal/usecase/book_slots"
	createB2BRequestUC "github.com/vlkhvnn/DJ-BookingService/internal/usecase/create_b2b_request"
	getAvailableSlotsUC "github.com/vlkhvnn/DJ-BookingService/internal/usecase/get_available_slots"
	respondB2BRequestUC "github.com/vlkhvnn/DJ-BookingService/internal/usecase/respond_b2b_request"
	"github.com/vlkhvnn/DJ-BookingService/pkg/dbmetrics"
	"github.com/vlkhvnn/DJ-BookingService/pkg/logger"
	"github.com/vlkhvnn/DJ-BookingService/pkg/metrics"
	"github.com/vlkhvnn/DJ-BookingService/pkg/simpletxmanager"
	"github.com/vlkhvnn/DJ-BookingService/pkg/txmanager"
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

	log.Info("Starting DJ-BookingService...")
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

	// Инициализируем клиента каталога диджеев
	userClient := userServiceClient.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (UserService=%s timeout=%ds)",
		cfg.UserService.URL, cfg.UserService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		eventRepository   *eventRepo.Repository
		slotRepository    *slotRepo.Repository
		bookingRepository *bookingRepo.Repository
		b2bRepository     *b2bRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		eventRepository = eventRepo.NewRepository(wrappedDB)
		slotRepository = slotRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		b2bRepository = b2bRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		eventRepository = eventRepo.NewRepository(db)
		slotRepository = slotRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		b2bRepository = b2bRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	eventSvc := eventsService.NewService(eventRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	b2bSvc := b2bService.NewService(b2bRepository, log)

	// Инициализируем use cases
	bookSlotsUseCase := bookSlotsUC.NewUseCase(
		slotRepository,
		bookingRepository,
		userClient,
		txMgr,
		log,
	)

	createB2BRequestUseCase := createB2BRequestUC.NewUseCase(
		bookingRepository,
		b2bRepository,
		txMgr,
		log,
	)

	respondB2BRequestUseCase := respondB2BRequestUC.NewUseCase(
		b2bRepository,
		bookingRepository,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		eventRepository,
		slotRepository,
		log,
	)

	// Инициализируем handlers
	bookSlots := bookSlotsHandler.NewHandler(bookSlotsUseCase, log)
	createB2BRequest := createB2BRequestHandler.NewHandler(createB2BRequestUseCase, log)
	respondB2BRequest := respondB2BRequestHandler.NewHandler(respondB2BRequestUseCase, log)
	getB2BRequest := getB2BRequestHandler.NewHandler(b2bSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getEvent := getEventHandler.NewHandler(eventSvc, log)
	publishEvent := publishEventHandler.NewHandler(eventSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Каждому запросу - идентификатор для трассировки в логах
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

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Карточка события
	api.HandleFunc("/events/{eventId}", getEvent.Handle).Methods(http.MethodGet)

	// Слоты события с признаком бронируемости
	api.HandleFunc("/events/{eventId}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- События ---
	// Публикация события организатором
	protected.HandleFunc("/events/{eventId}/publish", publishEvent.Handle).Methods(http.MethodPatch)

	// --- Бронирования ---
	// Пакетное бронирование слотов
	protected.HandleFunc("/bookings", bookSlots.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// История бронирований диджея
	protected.HandleFunc("/users/{djId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- B2B запросы ---
	// Создание запроса на совместный сет
	protected.HandleFunc("/b2b-requests", createB2BRequest.Handle).Methods(http.MethodPost)

	// Получение запроса по ID
	protected.HandleFunc("/b2b-requests/{requestId}", getB2BRequest.Handle).Methods(http.MethodGet)

	// Действие над запросом: accept / decline / leave
	protected.HandleFunc("/b2b-requests/{requestId}", respondB2BRequest.Handle).Methods(http.MethodPatch)

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
