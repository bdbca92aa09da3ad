package main

import (
	"Endpoint_Monitoring_Service/internal/monitoring-service/repository"
	result_indexer "Endpoint_Monitoring_Service/internal/result-indexer"
	"Endpoint_Monitoring_Service/pkg/infra"
	"Endpoint_Monitoring_Service/pkg/logger"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

func main() {
	appConfig, err := result_indexer.LoadConfig("./.env")
	if err != nil {
		log.Fatal(fmt.Sprintf("load config error: %v", err))
	}

	// set up logger
	fileSyncer, err := logger.NewReopenableWriteSyncer(appConfig.Server.LogFile)
	if err != nil {
		log.Fatal(fmt.Sprintf("open log file error: %v", err))
	}
	zapLogger := logger.NewLogger(appConfig.Server.LogLevel, fileSyncer, "result-indexer")
	defer zapLogger.Sync()
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGHUP)
	go logger.ReloadOnSignal(zapLogger, fileSyncer, c)

	//set up elasticsearch
	esClient, err := infra.NewElasticSearchConnection(infra.ElasticsearchConfig{
		Addresses: appConfig.Elasticsearch.Addresses,
		Username:  appConfig.Elasticsearch.Username,
		Password:  appConfig.Elasticsearch.Password,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to elasticsearch", zap.Error(err))
	} else {
		zapLogger.Info("connected to elasticsearch successfully")
	}

	uptimeRepo := repository.NewUptimeRepository(esClient)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	err = uptimeRepo.EnsureIndex(ctx)
	cancel()
	if err != nil {
		zapLogger.Fatal("failed to prepare results index", zap.Error(err))
	}

	consumers := make([]result_indexer.ResultIndexer, appConfig.Kafka.ConsumerCnt)
	for i := 0; i < appConfig.Kafka.ConsumerCnt; i++ {
		reader := infra.NewKafkaReader(appConfig.Kafka.Brokers, appConfig.Kafka.ConsumerGroupID, appConfig.Kafka.EventTopic)
		consumers[i] = result_indexer.NewResultIndexer(reader, uptimeRepo, zapLogger, appConfig.Indexer)
		consumers[i].Start()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutting down indexer...")
	for i := 0; i < appConfig.Kafka.ConsumerCnt; i++ {
		consumers[i].Stop()
	}
	zapLogger.Info("indexer exiting")
}
