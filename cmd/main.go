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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	adminLoginHandler "github.com/m04kA/SMC-PitchBooking/internal/api/handlers/admin_login"
	blockSlotHandler "github.com/m04kA/SMC-PitchBooking/internal/api/handlers/block_slot"
	cancelBookingHandler "github.com/m04kA/SMC-PitchBooking/internal/api/handlers/cancel_booking"
	closeDayHandler "github.com/m04kA/SMC-PitchBooking/internal/api/handlers/close_day"
	createBookingHandler "github.com/m04kA/SMC-PitchBooking/internal/api/handlers/create_booking"
	getBookingHandler "github.com/m04kA/SMC-PitchBooking/internal/api/handlers/get_booking"
	getOpeningHoursHandler "github.com/m04kA/SMC-PitchBooking/internal/api/handlers/get_opening_hours"
	healthHandler "github.com/m04kA/SMC-PitchBooking/internal/api/handlers/health"
	listAvailabilityHandler "github.com/m04kA/SMC-PitchBooking/internal/api/handlers/list_availability"
	listBlockedSlotsHandler "github.com/m04kA/SMC-PitchBooking/internal/api/handlers/list_blocked_slots"
	listBookingsHandler "github.com/m04kA/SMC-PitchBooking/internal/api/handlers/list_bookings"
	unblockSlotHandler "github.com/m04kA/SMC-PitchBooking/internal/api/handlers/unblock_slot"
	updateBookingHandler "github.com/m04kA/SMC-PitchBooking/internal/api/handlers/update_booking"
	updateOpeningHoursHandler "github.com/m04kA/SMC-PitchBooking/internal/api/handlers/update_opening_hours"
	"github.com/m04kA/SMC-PitchBooking/internal/api/middleware"
	"github.com/m04kA/SMC-PitchBooking/internal/config"
	blockedSlotRepo "github.com/m04kA/SMC-PitchBooking/internal/infra/storage/blockedslot"
	bookingRepo "github.com/m04kA/SMC-PitchBooking/internal/infra/storage/booking"
	openingHoursRepo "github.com/m04kA/SMC-PitchBooking/internal/infra/storage/openinghours"
	"github.com/m04kA/SMC-PitchBooking/internal/integrations/events"
	"github.com/m04kA/SMC-PitchBooking/internal/integrations/telegram"
	adminAuthService "github.com/m04kA/SMC-PitchBooking/internal/service/adminauth"
	bookingsService "github.com/m04kA/SMC-PitchBooking/internal/service/bookings"
	scheduleService "github.com/m04kA/SMC-PitchBooking/internal/service/schedule"
	cancelBookingUC "github.com/m04kA/SMC-PitchBooking/internal/usecase/cancel_booking"
	createBookingUC "github.com/m04kA/SMC-PitchBooking/internal/usecase/create_booking"
	getAvailabilityUC "github.com/m04kA/SMC-PitchBooking/internal/usecase/get_availability"
	"github.com/m04kA/SMC-PitchBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-PitchBooking/pkg/logger"
	"github.com/m04kA/SMC-PitchBooking/pkg/metrics"
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

	log.Info("Starting SMC-PitchBooking...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены); nil коллектор превращает запись метрик в no-op
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, prometheus.DefaultRegisterer)
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
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	err = db.PingContext(pingCtx)
	pingCancel()
	if err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Обертка над БД измеряет запросы; статистику пула собираем только при включенных метриках
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	openingHoursRepository := openingHoursRepo.NewRepository(wrappedDB)
	blockedSlotRepository := blockedSlotRepo.NewRepository(wrappedDB)

	// Инициализируем получателей событий
	var sinks []events.Sink

	var kafkaSink *events.KafkaSink
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaSink = events.NewKafkaSink(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		sinks = append(sinks, kafkaSink)
		log.Info("Kafka events enabled (brokers=%v, topic=%s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	}

	notifier, err := telegram.NewNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, log)
	if err != nil {
		log.Fatal("Failed to initialize telegram notifier: %v", err)
	}
	if notifier.Enabled() {
		sinks = append(sinks, notifier)
		log.Info("Telegram notifications enabled (chat_id=%d)", cfg.Telegram.ChatID)
	}

	dispatcher := events.NewDispatcher(
		sinks,
		time.Duration(cfg.Telegram.TimeoutSeconds)*time.Second,
		metricsCollector,
		log,
	)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		dispatcher,
		metricsCollector,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		openingHoursRepository,
		blockedSlotRepository,
		log,
	)
	adminAuthSvc := adminAuthService.NewService(
		cfg.Admin.Password,
		cfg.Admin.PasswordHash,
		cfg.Admin.JWTSecret,
		time.Duration(cfg.Admin.TokenTTLMinutes)*time.Minute,
		log,
	)
	if !cfg.AdminEnabled() {
		log.Warn("Admin password is not set, admin endpoints will reject every request")
	}

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		openingHoursRepository,
		blockedSlotRepository,
		dispatcher,
		metricsCollector,
		createBookingUC.ShareConfig{
			FacilityName:   cfg.Facility.Name,
			Location:       cfg.Facility.Location,
			CalendarDomain: cfg.Facility.CalendarDomain,
		},
		log,
	)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		openingHoursRepository,
		bookingRepository,
		blockedSlotRepository,
		log,
	)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		bookingRepository,
		dispatcher,
		metricsCollector,
		log,
	)

	// Инициализируем rate limiter
	var rateLimitStore middleware.Store
	var redisClient *redis.Client

	if cfg.UsesRedisRateLimit() {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		rateLimitStore = middleware.NewRedisStore(redisClient, "")
		log.Info("Rate limit store: redis (addr=%s)", cfg.Redis.Addr)
	} else {
		rateLimitStore = middleware.NewMemoryStore()
		log.Info("Rate limit store: memory")
	}

	rateLimiter := middleware.NewRateLimiter(
		rateLimitStore,
		middleware.RateLimitConfig{
			Requests: cfg.RateLimit.Requests,
			Window:   time.Duration(cfg.RateLimit.WindowSeconds) * time.Second,
			FailOpen: cfg.RateLimit.FailOpen,
		},
		metricsCollector,
		log,
	)
	limit := func(h http.HandlerFunc) http.Handler {
		if !cfg.RateLimit.Enabled {
			return h
		}
		return rateLimiter.Limit(h)
	}

	// Проверки готовности
	readinessChecks := map[string]healthHandler.Pinger{"postgres": wrappedDB}
	if redisClient != nil {
		readinessChecks["redis"] = healthHandler.PingerFunc(func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})
	}

	// Инициализируем handlers
	listAvailability := listAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	adminLogin := adminLoginHandler.NewHandler(adminAuthSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(bookingSvc, log)
	getOpeningHours := getOpeningHoursHandler.NewHandler(scheduleSvc, log)
	updateOpeningHours := updateOpeningHoursHandler.NewHandler(scheduleSvc, log)
	closeDay := closeDayHandler.NewHandler(scheduleSvc, log)
	listBlockedSlots := listBlockedSlotsHandler.NewHandler(scheduleSvc, log)
	blockSlot := blockSlotHandler.NewHandler(scheduleSvc, log)
	unblockSlot := unblockSlotHandler.NewHandler(scheduleSvc, log)
	health := healthHandler.NewHandler(readinessChecks, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recovery(log))

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

	r.HandleFunc("/healthz", health.Live).Methods(http.MethodGet)
	r.HandleFunc("/readyz", health.Ready).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступность слотов на N дней
	api.HandleFunc("/slots", listAvailability.Handle).Methods(http.MethodGet)

	// Создание бронирования
	api.Handle("/bookings", limit(createBooking.Handle)).Methods(http.MethodPost)

	// Отмена бронирования по ID или по дате и времени
	api.Handle("/bookings/cancel", limit(cancelBooking.Handle)).Methods(http.MethodPost)

	// Вход администратора
	api.Handle("/admin/login", limit(adminLogin.Handle)).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют Authorization: Bearer <token>)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(adminAuthSvc, log))

	// --- Бронирования ---
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPatch)

	// --- Расписание ---
	admin.HandleFunc("/opening-hours", getOpeningHours.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/opening-hours/{dayOfWeek}", updateOpeningHours.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/opening-hours/{dayOfWeek}", closeDay.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/blocked-slots", listBlockedSlots.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/blocked-slots", blockSlot.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/blocked-slots/{date}/{start}", unblockSlot.Handle).Methods(http.MethodDelete)

	// Внешние middleware работают до сопоставления маршрута, в том числе для preflight запросов
	var handler http.Handler = r
	handler = middleware.CORS(cfg.CORS.AllowedOrigins)(handler)
	handler = middleware.AccessLog(log)(handler)
	handler = middleware.RequestID(handler)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	// Дожидаемся отправки событий из очереди диспетчера
	if err := dispatcher.Close(shutdownCtx); err != nil {
		log.Error("Event queue was not drained before shutdown: %v", err)
	}

	if kafkaSink != nil {
		if err := kafkaSink.Close(); err != nil {
			log.Error("Failed to close kafka writer: %v", err)
		}
	}

	log.Info("Server stopped gracefully")
}
