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
	"github.com/hibiken/asynq"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	confirmBookingHandler "github.com/resortdesk/quote-service/internal/api/handlers/confirm_booking"
	deleteLeadHandler "github.com/resortdesk/quote-service/internal/api/handlers/delete_lead"
	generateQuoteHandler "github.com/resortdesk/quote-service/internal/api/handlers/generate_quote"
	getConfirmedBookingsHandler "github.com/resortdesk/quote-service/internal/api/handlers/get_confirmed_bookings"
	getDueRemindersHandler "github.com/resortdesk/quote-service/internal/api/handlers/get_due_reminders"
	getLeadHandler "github.com/resortdesk/quote-service/internal/api/handlers/get_lead"
	getRatesHandler "github.com/resortdesk/quote-service/internal/api/handlers/get_rates"
	getSeasonHandler "github.com/resortdesk/quote-service/internal/api/handlers/get_season"
	listLeadsHandler "github.com/resortdesk/quote-service/internal/api/handlers/list_leads"
	lookupRateHandler "github.com/resortdesk/quote-service/internal/api/handlers/lookup_rate"
	parseInquiryHandler "github.com/resortdesk/quote-service/internal/api/handlers/parse_inquiry"
	previewQuoteHandler "github.com/resortdesk/quote-service/internal/api/handlers/preview_quote"
	saveLeadHandler "github.com/resortdesk/quote-service/internal/api/handlers/save_lead"
	updateLeadNotesHandler "github.com/resortdesk/quote-service/internal/api/handlers/update_lead_notes"
	updateLeadStatusHandler "github.com/resortdesk/quote-service/internal/api/handlers/update_lead_status"
	updateRatesHandler "github.com/resortdesk/quote-service/internal/api/handlers/update_rates"
	"github.com/resortdesk/quote-service/internal/api/middleware"
	"github.com/resortdesk/quote-service/internal/config"
	"github.com/resortdesk/quote-service/internal/infra/queue/reminders"
	"github.com/resortdesk/quote-service/internal/infra/ratesource"
	leadRepo "github.com/resortdesk/quote-service/internal/infra/storage/lead"
	"github.com/resortdesk/quote-service/internal/infra/storage/memory"
	"github.com/resortdesk/quote-service/internal/inquiry"
	"github.com/resortdesk/quote-service/internal/pricing"
	"github.com/resortdesk/quote-service/internal/reminder"
	leadsService "github.com/resortdesk/quote-service/internal/service/leads"
	ratesService "github.com/resortdesk/quote-service/internal/service/rates"
	generateQuoteUC "github.com/resortdesk/quote-service/internal/usecase/generate_quote"
	saveQuoteAsLeadUC "github.com/resortdesk/quote-service/internal/usecase/save_quote_as_lead"
	"github.com/resortdesk/quote-service/pkg/clock"
	"github.com/resortdesk/quote-service/pkg/logger"
	"github.com/resortdesk/quote-service/pkg/metrics"
	"github.com/resortdesk/quote-service/pkg/txmanager"
)

// leadStore репозиторий лидов, общий для postgres и memory
type leadStore interface {
	saveQuoteAsLeadUC.LeadRepository
	leadsService.LeadRepository
}

// txManager общий интерфейс менеджеров транзакций
type txManager interface {
	saveQuoteAsLeadUC.TransactionManager
	leadsService.TransactionManager
}

// reminderDispatcher постановка напоминаний в очередь
type reminderDispatcher interface {
	Schedule(ctx context.Context, leadID int64, at time.Time) error
}

func main() {
	configPath := "config.toml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		configPath = v
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting resort quote service...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	realClock := clock.Real{}

	// Хранилище лидов
	var (
		leads leadStore
		txMgr txManager
	)

	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		leads = memory.NewLeadRepository(realClock)
		txMgr = txmanager.Noop{}
		log.Warn("Using in-memory lead storage, leads are lost on restart")
	default:
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

		leads = leadRepo.NewRepository(db)
		txMgr = txmanager.NewTransactionManager(db)
	}

	// Тарифная таблица
	rates, err := ratesource.Load(cfg.Rates.File, cfg.Rates.Persist)
	if err != nil {
		log.Fatal("Failed to load rates: %v", err)
	}
	log.Info("Rate table loaded from %s (persist=%t)", cfg.Rates.File, cfg.Rates.Persist)

	// Очередь напоминаний
	var (
		dispatcher   reminderDispatcher = reminders.NoopDispatcher{}
		workerServer *asynq.Server
		queueClient  *asynq.Client
	)

	if cfg.Reminders.Enabled {
		queueCfg := reminders.ServerConfig{
			RedisAddr:     cfg.Reminders.RedisAddr,
			RedisPassword: cfg.Reminders.RedisPassword,
			RedisDB:       cfg.Reminders.RedisDB,
			Concurrency:   cfg.Reminders.Concurrency,
			Queue:         cfg.Reminders.Queue,
		}

		rdb := redis.NewClient(&redis.Options{
			Addr:     queueCfg.RedisAddr,
			Password: queueCfg.RedisPassword,
			DB:       queueCfg.RedisDB,
		})
		pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
		err := rdb.Ping(pingCtx).Err()
		cancelPing()
		_ = rdb.Close()
		if err != nil {
			log.Fatal("Failed to ping redis at %s: %v", queueCfg.RedisAddr, err)
		}

		queueClient = asynq.NewClient(queueCfg.RedisOpt())
		defer queueClient.Close()

		dispatcher = reminders.NewDispatcher(queueClient, queueCfg.Queue, metricsCollector, log)
		workerServer = reminders.NewServer(queueCfg, log)
		workerHandler := reminders.NewHandler(leads, metricsCollector, log)

		if err := workerServer.Start(reminders.NewServeMux(workerHandler)); err != nil {
			log.Fatal("Failed to start reminders worker: %v", err)
		}
		log.Info("Reminders queue enabled (redis=%s, queue=%s, concurrency=%d)",
			queueCfg.RedisAddr, queueCfg.Queue, queueCfg.Concurrency)
	} else {
		log.Info("Reminders queue disabled, due reminders are served from storage only")
	}

	template := pricing.Template{
		PropertyName:   cfg.Property.Name,
		ContactPhone:   cfg.Property.ContactPhone,
		QuoteValidDays: cfg.Property.QuoteValidDays,
	}
	scheduler := reminder.NewScheduler(realClock)

	// Инициализируем сервисы
	ratesSvc := ratesService.NewService(rates, log)
	leadsSvc := leadsService.NewService(
		leads,
		txMgr,
		scheduler,
		dispatcher,
		template,
		metricsCollector,
		realClock,
		log,
	)

	// Инициализируем use cases
	generateQuoteUseCase := generateQuoteUC.NewUseCase(
		rates,
		template,
		metricsCollector,
		realClock,
		log,
	)

	saveQuoteAsLeadUseCase := saveQuoteAsLeadUC.NewUseCase(
		leads,
		generateQuoteUseCase,
		txMgr,
		scheduler,
		dispatcher,
		metricsCollector,
		realClock,
		cfg.Property.DefaultMobile,
		log,
	)

	// Инициализируем handlers
	generateQuote := generateQuoteHandler.NewHandler(generateQuoteUseCase, log)
	previewQuote := previewQuoteHandler.NewHandler(generateQuoteUseCase, log)
	parseInquiry := parseInquiryHandler.NewHandler(inquiry.NewParser(realClock), log)
	getRates := getRatesHandler.NewHandler(ratesSvc, log)
	updateRates := updateRatesHandler.NewHandler(ratesSvc, log)
	getSeason := getSeasonHandler.NewHandler(ratesSvc, log)
	lookupRate := lookupRateHandler.NewHandler(ratesSvc, log)
	listLeads := listLeadsHandler.NewHandler(leadsSvc, log)
	saveLead := saveLeadHandler.NewHandler(saveQuoteAsLeadUseCase, log)
	getLead := getLeadHandler.NewHandler(leadsSvc, log)
	updateLeadStatus := updateLeadStatusHandler.NewHandler(leadsSvc, log)
	updateLeadNotes := updateLeadNotesHandler.NewHandler(leadsSvc, log)
	deleteLead := deleteLeadHandler.NewHandler(leadsSvc, log)
	getDueReminders := getDueRemindersHandler.NewHandler(leadsSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(leadsSvc, log)
	getConfirmedBookings := getConfirmedBookingsHandler.NewHandler(leadsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestID(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.BodyLimit(cfg.RateLimit.MaxBodyBytes))

	// --- Предложения ---
	api.HandleFunc("/quotes", generateQuote.Handle).Methods(http.MethodPost)
	api.HandleFunc("/quotes/preview", previewQuote.Handle).Methods(http.MethodPost)

	// Разбор текста запроса клиента (ограничение частоты по клиенту)
	limiter, err := middleware.NewRateLimiter(
		cfg.RateLimit.RequestsPerSecond,
		cfg.RateLimit.Burst,
		cfg.RateLimit.TrustedProxies,
		log,
	)
	if err != nil {
		log.Fatal("Failed to configure rate limiter: %v", err)
	}
	limiterCtx, stopLimiter := context.WithCancel(context.Background())
	defer stopLimiter()
	go limiter.Run(limiterCtx)
	api.Handle("/inquiries/parse", limiter.Limit(http.HandlerFunc(parseInquiry.Handle))).Methods(http.MethodPost)

	// --- Тарифы ---
	api.HandleFunc("/rates", getRates.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rates", updateRates.Handle).Methods(http.MethodPut)
	api.HandleFunc("/rates/season", getSeason.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rates/lookup", lookupRate.Handle).Methods(http.MethodGet)

	// --- Лиды ---
	api.HandleFunc("/leads", listLeads.Handle).Methods(http.MethodGet)
	api.HandleFunc("/leads", saveLead.Handle).Methods(http.MethodPost)
	api.HandleFunc("/leads/reminders/due", getDueReminders.Handle).Methods(http.MethodGet)
	api.HandleFunc("/leads/{leadId}", getLead.Handle).Methods(http.MethodGet)
	api.HandleFunc("/leads/{leadId}", deleteLead.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/leads/{leadId}/status", updateLeadStatus.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/leads/{leadId}/notes", updateLeadNotes.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/leads/{leadId}/confirmation", confirmBooking.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	api.HandleFunc("/bookings/confirmed", getConfirmedBookings.Handle).Methods(http.MethodGet)

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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	stopLimiter()

	if workerServer != nil {
		workerServer.Shutdown()
		log.Info("Reminders worker stopped")
	}

	log.Info("Server stopped gracefully")
}
