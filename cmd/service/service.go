package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"workbook_service/config"
	"workbook_service/internal/cache"
	"workbook_service/internal/data"
	"workbook_service/internal/events"
	"workbook_service/internal/handler"
	"workbook_service/internal/health"
	"workbook_service/internal/metrics"
	"workbook_service/internal/service"
	"workbook_service/pkg/db"
	"workbook_service/pkg/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	zapLogger, err := newZapLogger(cfg.Env)
	if err != nil {
		panic(err)
	}
	logger := logging.New(zapLogger)
	defer logger.Sync()

	if cfg.DB.AutoMigrate {
		if err := db.Migrate(cfg.DB.URL, cfg.DB.MigrationsPath); err != nil {
			logger.Fatal(ctx, "failed to apply migrations", zap.Error(err))
		}
	}

	pool, err := db.NewPool(ctx, db.Config{
		URL:            cfg.DB.URL,
		MaxConn:        cfg.DB.MaxConn,
		MinConn:        cfg.DB.MinConn,
		ConnectRetries: cfg.DB.ConnectRetries,
		ConnectBackoff: cfg.DB.ConnectBackoff,
	})
	if err != nil {
		logger.Fatal(ctx, "cannot create db", zap.Error(err))
	}
	defer pool.Close()

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()
	redisCache := cache.NewRedisCache(rdb)

	producer := events.NewProducer(events.Config{
		Brokers:         cfg.Kafka.Brokers,
		BreakerFailures: cfg.Kafka.BreakerFails,
	})
	defer producer.Close()
	publisher := newTopicPublisher(producer, map[string]string{
		service.TopicWorkbookEvents: cfg.Kafka.EventsTopic,
	})

	recorder := metrics.NewPrometheus(prometheus.DefaultRegisterer, "workbook")

	store := data.NewStore(pool)
	owner := service.NewWorkbookOwnership(store)

	workbookService := service.NewWorkbookService(store, owner, publisher, recorder)
	pageService := service.NewPageService(store, owner, publisher, recorder)
	assignmentService := service.NewAssignmentService(store, owner, publisher, recorder)
	taskService := service.NewTaskService(store, recorder)

	router := handler.NewRouter(handler.RouterConfig{
		Logger:       logger,
		Assignments:  assignmentService,
		Workbooks:    workbookService,
		Pages:        pageService,
		Tasks:        taskService,
		Cache:        redisCache,
		CacheTTL:     cfg.Redis.TTL,
		MaxBodyBytes: cfg.HTTP.MaxBodyBytes,
		Metrics:      promhttp.Handler(),
	})

	httpServer := &http.Server{
		Addr:         cfg.HTTP.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	checker := health.NewChecker(logger, 2*time.Second)
	checker.AddProbe("postgres", pool.Ping)
	checker.AddProbe("redis", redisCache.Ping)
	grpcServer := health.NewServer(logger, checker)

	listener, err := net.Listen("tcp", cfg.GRPC.Address)
	if err != nil {
		logger.Fatal(ctx, "cannot create listener", zap.Error(err))
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info(gCtx, "Starting HTTP server...", zap.String("address", cfg.HTTP.Address))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		logger.Info(gCtx, "Starting gRPC health server...", zap.String("address", cfg.GRPC.Address))
		return grpcServer.Serve(listener)
	})

	g.Go(func() error {
		checker.Run(gCtx, 15*time.Second)
		return nil
	})

	if cfg.Kafka.ConsumeEnabled {
		consumer := events.NewConsumer(events.ConsumerConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.ProgressTopic,
			GroupID: cfg.Kafka.GroupID,
		}, pageService, redisCache, logger)
		defer consumer.Close()

		g.Go(func() error {
			return consumer.Run(gCtx)
		})
	}

	if cfg.Reminder.Enabled {
		worker := NewReminderWorker(
			assignmentService,
			producer,
			logger,
			cfg.Kafka.ReminderTopic,
			cfg.Reminder.Interval,
			cfg.Reminder.Window,
		)
		g.Go(func() error {
			worker.Start(gCtx)
			return nil
		})
	}

	g.Go(func() error {
		<-gCtx.Done()
		logger.Info(gCtx, "Shutting down servers...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()

		grpcServer.GracefulStop()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error(ctx, "service stopped with error", zap.Error(err))
		return
	}
	logger.Info(ctx, "Server Stopped")
}

func newZapLogger(env string) (*zap.Logger, error) {
	if env == "prod" || env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// topicPublisher rewrites built-in topic names to the configured ones.
type topicPublisher struct {
	next   service.EventPublisher
	topics map[string]string
}

func newTopicPublisher(next service.EventPublisher, topics map[string]string) *topicPublisher {
	return &topicPublisher{next: next, topics: topics}
}

func (p *topicPublisher) Publish(ctx context.Context, topic string, key string, event any) error {
	if mapped, ok := p.topics[topic]; ok && mapped != "" {
		topic = mapped
	}
	return p.next.Publish(ctx, topic, key, event)
}
