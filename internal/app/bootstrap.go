package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Gunvolt24/sku_upload/config"
	cachemem "github.com/Gunvolt24/sku_upload/internal/cache/memory"
	cartredis "github.com/Gunvolt24/sku_upload/internal/cache/redis"
	"github.com/Gunvolt24/sku_upload/internal/clients"
	"github.com/Gunvolt24/sku_upload/internal/kafka"
	"github.com/Gunvolt24/sku_upload/internal/ports"
	"github.com/Gunvolt24/sku_upload/internal/repo/postgres"
	rest "github.com/Gunvolt24/sku_upload/internal/transport/http"
	"github.com/Gunvolt24/sku_upload/internal/usecase"
	"github.com/Gunvolt24/sku_upload/pkg/logger"
	"github.com/Gunvolt24/sku_upload/pkg/metrics"
	"github.com/Gunvolt24/sku_upload/pkg/telemetry"
	"github.com/Gunvolt24/sku_upload/pkg/validate"
	"github.com/gin-gonic/gin"
)

// App — собранное приложение и его внешние интерфейсы (HTTP, consumer контекста корзины).
type App struct {
	Logger          ports.Logger          // логгер
	HTTPServer      *http.Server          // HTTP-сервер
	KafkaConsumer   ports.MessageConsumer // консьюмер сообщений
	gracefulTimeout time.Duration         // время ожидания завершения HTTP-сервера
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Откат уже созданных ресурсов при ошибке сборки (в обратном порядке).
	var closers []func()
	fail := func(err error) (*App, Cleanup, error) {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
		return nil, func() {}, err
	}

	// Миграции goose до открытия пула.
	if cfg.Postgres.Migrate {
		if err := postgres.Migrate(ctx, cfg.Postgres.DSN); err != nil {
			return fail(err)
		}
		logg.Infof(ctx, "postgres migrations applied")
	}

	// Пул подключений Postgres
	pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, postgres.PoolOptions{
		MaxConns:        cfg.Postgres.MaxConns,
		MaxConnLifetime: cfg.Postgres.ConnLifetime,
		MaxConnIdleTime: cfg.Postgres.ConnIdle,
	})
	if err != nil {
		return fail(err)
	}
	closers = append(closers, pool.Close)

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	shutdownTrace := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	}

	// Хранилище контекста корзины: Redis, если задан адрес, иначе in-memory LRU.
	var cartStore ports.CartStore
	if addr := strings.TrimSpace(cfg.Redis.Addr); addr != "" {
		rdb, rErr := cartredis.NewClient(ctx, addr, cfg.Redis.Password, cfg.Redis.DB)
		if rErr != nil {
			return fail(rErr)
		}
		closers = append(closers, func() {
			if cErr := rdb.Close(); cErr != nil {
				logg.Warnf(ctx, "redis close: %v", cErr)
			}
		})
		cartStore = cartredis.NewCartStore(rdb, cfg.Redis.KeyTTL, logg)
		logg.Infof(ctx, "cart store: redis addr=%s", addr)
	} else {
		cartStore = cachemem.NewCartCache(cfg.Cache.Capacity, cfg.Cache.TTL)
		logg.Infof(ctx, "cart store: in-memory capacity=%d ttl=%s", cfg.Cache.Capacity, cfg.Cache.TTL)
	}

	// Уведомления о завершении прогонов (Kafka producer).
	notifier := kafka.NewNotifier(&kafka.ProducerConfig{
		Brokers:      cfg.Kafka.Brokers,
		Topic:        cfg.Kafka.CompletionTopic,
		WriteTimeout: cfg.Kafka.WriteTimeout,
	}, logg)

	// Сборка зависимостей доменного слоя.
	httpClient := clients.NewHTTPClient(cfg.Remote.Timeout)
	uploadService := usecase.NewUploadService(
		validate.NewCSVValidator(),
		clients.NewValidationClient(cfg.Remote.ValidationURL, httpClient),
		clients.NewCartClient(cfg.Remote.CartURL, httpClient),
		cartStore,
		postgres.NewRunRepository(pool),
		notifier,
		logg,
	)
	cartService := usecase.NewCartContextService(cartStore, logg)

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	// Роутер и HTTP-сервер.
	httpHandler := rest.NewHandler(uploadService, cartService, logg, cfg.HTTP.HandlerTimeout, cfg.HTTP.MaxUploadBytes)
	router := rest.NewRouter(httpHandler, otelServiceName)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	// Конфигурация и создание консьюмера Kafka (события CartSummary).
	kafkaCfg := kafka.ConsumerConfig{
		Brokers:        cfg.Kafka.Brokers,
		GroupID:        cfg.Kafka.GroupID,
		Topic:          cfg.Kafka.CartTopic,
		StartOffset:    cfg.Kafka.StartOffset,
		ProcessTimeout: cfg.Kafka.ProcessTimeout,
		RetryInitial:   cfg.Kafka.RetryInitial,
		RetryMax:       cfg.Kafka.RetryMax,
	}
	consumer := kafka.NewConsumer(&kafkaCfg, cartService, logg)

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		KafkaConsumer:   consumer,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if err := consumer.Close(); err != nil {
			logg.Warnf(ctx, "kafka consumer close error: %v", err)
		}
		if err := notifier.Close(); err != nil {
			logg.Warnf(ctx, "kafka notifier close error: %v", err)
		}
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}

// Run — запускает HTTP-сервер и консьюмера; ждёт отмены контекста или ошибки и останавливает их.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 2)

	// Запуск консьюмера.
	go func() {
		a.Logger.Infof(ctx, "kafka consumer starting")
		if err := a.KafkaConsumer.Run(ctx); err != nil {
			errCh <- err
		}
	}()

	// Запуск HTTP-сервера.
	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Ожидание сигнала остановки или фоновой ошибки.
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			a.Logger.Infof(ctx, "background component stopped: %v", err)
		} else {
			a.Logger.Warnf(ctx, "background error: %v", err)
		}
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	// Корректная остановка HTTP-сервера.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}

	// Остановка Kafka-консьюмера (повторный Close в cleanup безопасен)
	if err := a.KafkaConsumer.Close(); err != nil {
		a.Logger.Warnf(ctx, "kafka consumer close error: %v", err)
	}

	a.Logger.Infof(ctx, "service stopped")
	return nil
}
