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

	cancelBookingHandler "github.com/m04kA/SBM-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SBM-BookingService/internal/api/handlers/create_booking"
	findEmployeesHandler "github.com/m04kA/SBM-BookingService/internal/api/handlers/find_employees"
	getAvailableSlotsHandler "github.com/m04kA/SBM-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SBM-BookingService/internal/api/handlers/get_booking"
	getClientBookingsHandler "github.com/m04kA/SBM-BookingService/internal/api/handlers/get_client_bookings"
	getPricingConfigHandler "github.com/m04kA/SBM-BookingService/internal/api/handlers/get_pricing_config"
	getRoomBookingsHandler "github.com/m04kA/SBM-BookingService/internal/api/handlers/get_room_bookings"
	priceQuoteHandler "github.com/m04kA/SBM-BookingService/internal/api/handlers/price_quote"
	suggestTimesHandler "github.com/m04kA/SBM-BookingService/internal/api/handlers/suggest_times"
	updatePricingConfigHandler "github.com/m04kA/SBM-BookingService/internal/api/handlers/update_pricing_config"
	"github.com/m04kA/SBM-BookingService/internal/api/middleware"
	"github.com/m04kA/SBM-BookingService/internal/config"
	pricingConfigRepo "github.com/m04kA/SBM-BookingService/internal/infra/storage/pricingconfig"
	reservationRepo "github.com/m04kA/SBM-BookingService/internal/infra/storage/reservation"
	staffServiceClient "github.com/m04kA/SBM-BookingService/internal/integrations/staffservice"
	availabilityService "github.com/m04kA/SBM-BookingService/internal/service/availability"
	pricingService "github.com/m04kA/SBM-BookingService/internal/service/pricing"
	pricingcfgService "github.com/m04kA/SBM-BookingService/internal/service/pricingcfg"
	reservationsService "github.com/m04kA/SBM-BookingService/internal/service/reservations"
	createBookingUC "github.com/m04kA/SBM-BookingService/internal/usecase/create_booking"
	findEmployeesUC "github.com/m04kA/SBM-BookingService/internal/usecase/find_employees"
	getAvailableSlotsUC "github.com/m04kA/SBM-BookingService/internal/usecase/get_available_slots"
	priceQuoteUC "github.com/m04kA/SBM-BookingService/internal/usecase/price_quote"
	suggestTimesUC "github.com/m04kA/SBM-BookingService/internal/usecase/suggest_times"
	"github.com/m04kA/SBM-BookingService/pkg/dbmetrics"
	"github.com/m04kA/SBM-BookingService/pkg/logger"
	"github.com/m04kA/SBM-BookingService/pkg/metrics"
	"github.com/m04kA/SBM-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/SBM-BookingService/pkg/txmanager"
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

	log.Info("Starting SBM-BookingService...")
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

	// Инициализируем интеграционного клиента
	staffClient := staffServiceClient.NewClient(
		cfg.StaffService.URL,
		time.Duration(cfg.StaffService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (StaffService=%s timeout=%ds)",
		cfg.StaffService.URL, cfg.StaffService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository   *reservationRepo.Repository
		pricingConfigRepository *pricingConfigRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		pricingConfigRepository = pricingConfigRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		pricingConfigRepository = pricingConfigRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	pricingEngine := pricingService.NewEngine()
	pricingConfigSvc := pricingcfgService.NewService(pricingConfigRepository, log)
	availabilitySvc := availabilityService.NewChecker(reservationRepository, staffClient, log)
	reservationSvc := reservationsService.NewService(reservationRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		reservationRepository,
		pricingConfigSvc,
		pricingEngine,
		staffClient,
		txMgr,
		log,
	)
	priceQuoteUseCase := priceQuoteUC.NewUseCase(pricingConfigSvc, pricingEngine, staffClient, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(availabilitySvc, pricingConfigSvc, log)
	suggestTimesUseCase := suggestTimesUC.NewUseCase(availabilitySvc, pricingConfigSvc, log)
	findEmployeesUseCase := findEmployeesUC.NewUseCase(availabilitySvc, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(reservationSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(reservationSvc, log)
	getClientBookings := getClientBookingsHandler.NewHandler(reservationSvc, log)
	getRoomBookings := getRoomBookingsHandler.NewHandler(reservationSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	suggestTimes := suggestTimesHandler.NewHandler(suggestTimesUseCase, log)
	findEmployees := findEmployeesHandler.NewHandler(findEmployeesUseCase, log)
	priceQuote := priceQuoteHandler.NewHandler(priceQuoteUseCase, log)
	getPricingConfig := getPricingConfigHandler.NewHandler(pricingConfigSvc, log)
	updatePricingConfig := updatePricingConfigHandler.NewHandler(pricingConfigSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

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

	// Сетка слотов комнаты на дату
	api.HandleFunc("/rooms/{roomId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Альтернативные свободные слоты
	api.HandleFunc("/rooms/{roomId}/suggested-times",
		suggestTimes.Handle).Methods(http.MethodGet)

	// Свободные сотрудники локации
	api.HandleFunc("/locations/{locationId}/available-employees",
		findEmployees.Handle).Methods(http.MethodGet)

	// Расчёт цены без бронирования
	api.HandleFunc("/price-quotes", priceQuote.Handle).Methods(http.MethodPost)

	// Конфигурация цен владельца
	api.HandleFunc("/owners/{ownerId}/pricing-config",
		getPricingConfig.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История бронирований клиента
	protected.HandleFunc("/clients/{clientId}/bookings", getClientBookings.Handle).Methods(http.MethodGet)

	// --- Управление расписанием (для администраторов) ---
	// Бронирования комнаты за период
	protected.HandleFunc("/rooms/{roomId}/bookings", getRoomBookings.Handle).Methods(http.MethodGet)

	// Обновление конфигурации цен
	protected.HandleFunc("/owners/{ownerId}/pricing-config",
		updatePricingConfig.Handle).Methods(http.MethodPut)

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
