package main

import (
	"Endpoint_Monitoring_Service/internal/monitoring-service/api/handler"
	"Endpoint_Monitoring_Service/internal/monitoring-service/api/routes"
	"Endpoint_Monitoring_Service/internal/monitoring-service/config"
	"Endpoint_Monitoring_Service/internal/monitoring-service/event"
	"Endpoint_Monitoring_Service/internal/monitoring-service/repository"
	"Endpoint_Monitoring_Service/internal/monitoring-service/scheduler"
	"Endpoint_Monitoring_Service/internal/monitoring-service/service"
	"Endpoint_Monitoring_Service/migrations"
	"Endpoint_Monitoring_Service/pkg/infra"
	"Endpoint_Monitoring_Service/pkg/logger"
	"Endpoint_Monitoring_Service/pkg/middleware"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func main() {
	appConfig, err := config.LoadConfig("./.env")
	if err != nil {
		log.Fatal(fmt.Sprintf("load config error: %v", err))
	}

	// set up logger
	fileSyncer, err := logger.NewReopenableWriteSyncer(appConfig.Server.LogFile)
	if err != nil {
		log.Fatal(fmt.Sprintf("open log file error: %v", err))
	}
	zapLogger := logger.NewLogger(appConfig.Server.LogLevel, fileSyncer, "monitoring-service")
	defer zapLogger.Sync()
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGHUP)
	go logger.ReloadOnSignal(zapLogger, fileSyncer, c)

	//set up database
	db, err := infra.NewPostgresConnection(infra.PostgresConfig{
		Host:     appConfig.Postgres.Host,
		Port:     appConfig.Postgres.Port,
		User:     appConfig.Postgres.User,
		Password: appConfig.Postgres.Password,
		DBName:   appConfig.Postgres.DBName,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to postgres", zap.Error(err))
	} else {
		zapLogger.Info("connected to postgres successfully")
	}
	sqlDB, err := db.DB()
	if err != nil {
		zapLogger.Fatal("failed to get sql.DB from gorm:", zap.Error(err))
	}
	defer sqlDB.Close()
	if err = migrations.Apply(db); err != nil {
		zapLogger.Fatal("failed to apply schema", zap.Error(err))
	}

	// set up check claims, shared through redis when several replicas run
	var locker scheduler.CheckLocker
	if appConfig.Redis.Host != "" {
		redisClient, e := infra.NewRedisConnection(infra.RedisConfig{
			Host:     appConfig.Redis.Host,
			Port:     appConfig.Redis.Port,
			Password: appConfig.Redis.Password,
			DB:       appConfig.Redis.DB,
		})
		if e != nil {
			zapLogger.Fatal("failed to connect to redis", zap.Error(e))
		}
		defer redisClient.Close()
		zapLogger.Info("connected to redis successfully")
		locker = scheduler.NewRedisCheckLocker(redisClient, instanceID(), appConfig.Scheduler.ClaimTTL())
	} else {
		locker = scheduler.NewMemoryCheckLocker()
	}

	// set up event publishing
	var publisher event.Publisher
	var kafkaWriter *kafka.Writer
	if len(appConfig.Kafka.Brokers) > 0 {
		kafkaWriter = infra.NewKafkaWriter(appConfig.Kafka.Brokers, appConfig.Kafka.EventTopic)
		publisher = event.NewKafkaPublisher(kafkaWriter)
	} else {
		zapLogger.Info("kafka brokers not configured, monitoring events are not published")
		publisher = event.NewNopPublisher()
	}

	//set up elasticsearch
	var uptimeRepo repository.UptimeRepository
	if len(appConfig.Elasticsearch.Addresses) > 0 {
		esClient, e := infra.NewElasticSearchConnection(infra.ElasticsearchConfig{
			Addresses: appConfig.Elasticsearch.Addresses,
			Username:  appConfig.Elasticsearch.Username,
			Password:  appConfig.Elasticsearch.Password,
		})
		if e != nil {
			zapLogger.Fatal("failed to connect to elasticsearch", zap.Error(e))
		}
		zapLogger.Info("connected to elasticsearch successfully")
		uptimeRepo = repository.NewUptimeRepository(esClient)
	}

	// set up dependencies
	endpointRepo := repository.NewEndpointRepository(db)
	resultRepo := repository.NewResultRepository(db)

	endpointScheduler := scheduler.NewEndpointScheduler(
		zapLogger,
		endpointRepo,
		scheduler.NewHTTPCheckExecutor(appConfig.Scheduler.RequestTimeout, appConfig.Scheduler.MaxBodyBytes),
		scheduler.NewOutcomeRecorder(zapLogger, resultRepo, publisher),
		locker,
		appConfig.Scheduler,
	)
	endpointScheduler.Start()

	endpointService := service.NewEndpointService(zapLogger, endpointRepo, resultRepo, uptimeRepo, publisher, appConfig.Server.ResultsDefaultLimit)
	handlerLogger := handler.NewLogger(zapLogger)
	endpointHandler := handler.NewEndpointHandler(handlerLogger, endpointService)
	healthHandler := handler.NewHealthHandler(handlerLogger, sqlDB)

	m := middleware.NewAuthMiddleware()

	// Set up http server
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	routes.AddEndpointRoutes(r, endpointHandler, m)
	routes.AddHealthRoutes(r, healthHandler)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", appConfig.Server.Port),
		Handler: r,
	}
	go func() {
		zapLogger.Info(fmt.Sprintf("starting server on %s", srv.Addr))
		if e := srv.ListenAndServe(); e != nil && !errors.Is(e, http.ErrServerClosed) {
			zapLogger.Fatal("failed to start server", zap.Error(e))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server forced to shutdown:", zap.Error(err))
	}
	endpointScheduler.Stop()
	if kafkaWriter != nil {
		if err = kafkaWriter.Close(); err != nil {
			zapLogger.Error("failed to flush kafka writer", zap.Error(err))
		}
	}
	zapLogger.Info("server exiting")
}

func instanceID() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "monitoring-service"
	}
	return fmt.Sprintf("%s-%s", host, uuid.NewString())
}
