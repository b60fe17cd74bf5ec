package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shenikar/incident_dispatch/internal/config"
	v1 "github.com/shenikar/incident_dispatch/internal/handler/http/v1"
	"github.com/shenikar/incident_dispatch/internal/models"
	"github.com/shenikar/incident_dispatch/internal/remote"
	"github.com/shenikar/incident_dispatch/internal/repository"
	"github.com/shenikar/incident_dispatch/internal/service"
	"github.com/shenikar/incident_dispatch/internal/store"
	"github.com/shenikar/incident_dispatch/internal/webhook"
	"github.com/shenikar/incident_dispatch/pkg/logger"
	"github.com/shenikar/incident_dispatch/pkg/postgres"
	redisclient "github.com/shenikar/incident_dispatch/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/incident_dispatch/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Incident Dispatch API
// @version 1.0
// @description Citizen incident reporting and responder dispatch API.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	if err := run(cfg, log); err != nil {
		log.Fatalf("Service stopped with error: %v", err)
	}
	log.Info("Server gracefully stopped")
}

func run(cfg *config.Config, log *logrus.Logger) error {
	// Контекст для graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st := store.New()

	// Издатель уведомлений для диспетчеров
	var publisher webhook.DispatchPublisher = webhook.NopPublisher{}
	if cfg.RedisAddr != "" {
		redisClient, err := redisclient.NewRedisClient(ctx, cfg)
		if err != nil {
			return err
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")

		publisher = webhook.NewRedisDispatchPublisher(redisClient)
		worker := webhook.NewDispatchWorker(redisClient, log, cfg)
		worker.Start(ctx)
		defer func() {
			stop()
			<-worker.Done()
		}()
	} else {
		log.Warn("REDIS_ADDR is not set, dispatch notifications are disabled")
	}

	var syncer service.RemoteSync
	if cfg.IsRemote() {
		adapter, closeRemote, err := connectRemote(ctx, cfg, st, log)
		if err != nil {
			return err
		}
		defer closeRemote()
		syncer = adapter
	} else {
		st.SeedDemo(cfg.DemoIncidents, rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)))
		log.WithField("count", st.Len()).Info("Local mode: demo incidents seeded")
	}

	// Инициализация сервисов
	incidentService := service.NewIncidentService(st, syncer, publisher, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(incidentService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: router,
	}

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	select {
	case err := <-serveErr:
		return fmt.Errorf("error starting HTTP server: %w", err)
	case <-ctx.Done():
	}
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}

// initialLoadTimeout ограничивает ожидание первой загрузки коллекции
const initialLoadTimeout = 30 * time.Second

// connectRemote применяет миграции, подключается к PostgreSQL, подписывается на ленту
// изменений и ждет первой загрузки коллекции. close освобождает подписку и пул.
func connectRemote(ctx context.Context, cfg *config.Config, st *store.Store, log *logrus.Logger) (*remote.Adapter, func(), error) {
	log.Info("Running database migrations...")
	if err := postgres.RunMigrations("file://migrations", cfg.DatabaseURL); err != nil {
		return nil, nil, err
	}
	log.Info("Database migrations applied successfully")

	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация репозиториев
	incidentRepo := repository.NewIncidentRepository(dbpool)
	upvoteRepo := repository.NewUpvoteRepository(dbpool)
	feed := repository.NewChangeFeed(dbpool, incidentRepo, log)

	// Сначала LISTEN, затем загрузка: изменения между ними не теряются
	adapter := remote.NewAdapter(incidentRepo, upvoteRepo, feed, st, log)
	sub, err := adapter.Subscribe(ctx, func(change models.IncidentChange) {
		log.WithFields(logrus.Fields{
			"kind":        change.Kind,
			"incident_id": change.ID,
		}).Info("Incident change received")
	})
	if err != nil {
		dbpool.Close()
		return nil, nil, err
	}

	select {
	case <-sub.Ready():
		log.WithField("count", st.Len()).Info("Incidents loaded from remote store")
	case <-time.After(initialLoadTimeout):
		err := sub.Err()
		if err == nil {
			err = errors.New("change feed is not ready")
		}
		sub.Close()
		dbpool.Close()
		return nil, nil, fmt.Errorf("initial incident load timed out: %w", err)
	case <-ctx.Done():
		sub.Close()
		dbpool.Close()
		return nil, nil, ctx.Err()
	}

	closeRemote := func() {
		sub.Close()
		if err := sub.Err(); err != nil {
			log.WithError(err).Warn("Change feed ended with error")
		}
		dbpool.Close()
	}
	return adapter, closeRemote, nil
}
