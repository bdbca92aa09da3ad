package result_indexer

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type AppConfig struct {
	Server        ServerConfig
	Kafka         KafkaConfig
	Elasticsearch ElasticsearchConfig
	Indexer       IndexerConfig
}

type ServerConfig struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	LogFile  string `envconfig:"LOG_FILE" default:"./log/result-indexer.log"`
}

type KafkaConfig struct {
	Brokers         []string `envconfig:"KAFKA_BROKERS" required:"true"`
	EventTopic      string   `envconfig:"KAFKA_EVENT_TOPIC" default:"monitoring-events"`
	ConsumerGroupID string   `envconfig:"KAFKA_CONSUMER_GROUP_ID" default:"result-indexer"`
	ConsumerCnt     int      `envconfig:"KAFKA_CONSUMER_CNT" default:"1"`
}

type ElasticsearchConfig struct {
	Addresses []string `envconfig:"ELASTICSEARCH_ADDRESSES" required:"true"`
	Username  string   `envconfig:"ELASTICSEARCH_USERNAME"`
	Password  string   `envconfig:"ELASTICSEARCH_PASSWORD"`
}

type IndexerConfig struct {
	RetryBackoff    time.Duration `envconfig:"INDEXER_RETRY_BACKOFF" default:"1s"`
	MaxRetryBackoff time.Duration `envconfig:"INDEXER_MAX_RETRY_BACKOFF" default:"30s"`
	StoreTimeout    time.Duration `envconfig:"INDEXER_STORE_TIMEOUT" default:"10s"`
}

func LoadConfig(path string) (AppConfig, error) {
	_ = godotenv.Load(path)

	var cfg AppConfig
	err := envconfig.Process("", &cfg)
	return cfg, err
}
