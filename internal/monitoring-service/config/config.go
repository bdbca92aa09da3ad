package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type AppConfig struct {
	Server        ServerConfig
	Scheduler     SchedulerConfig
	Postgres      PostgresConfig
	Redis         RedisConfig
	Kafka         KafkaConfig
	Elasticsearch ElasticsearchConfig
}

type ServerConfig struct {
	Port                string `envconfig:"SERVER_PORT" default:"8080"`
	LogLevel            string `envconfig:"LOG_LEVEL" default:"info"`
	LogFile             string `envconfig:"LOG_FILE" default:"./log/monitoring-service.log"`
	ResultsDefaultLimit int    `envconfig:"RESULTS_DEFAULT_LIMIT" default:"10"`
}

type SchedulerConfig struct {
	TickPeriod     time.Duration `envconfig:"SCHEDULER_TICK_PERIOD" default:"1s"`
	WorkerCount    int           `envconfig:"SCHEDULER_WORKER_COUNT" default:"16"`
	QueueSize      int           `envconfig:"SCHEDULER_QUEUE_SIZE" default:"256"`
	StoreTimeout   time.Duration `envconfig:"SCHEDULER_STORE_TIMEOUT" default:"10s"`
	LockTTL        time.Duration `envconfig:"SCHEDULER_LOCK_TTL" default:"30s"`
	RequestTimeout time.Duration `envconfig:"CHECK_REQUEST_TIMEOUT" default:"5s"`
	MaxBodyBytes   int64         `envconfig:"CHECK_MAX_BODY_BYTES" default:"1048576"`
}

// ClaimTTL is LockTTL raised, when needed, so a claim refreshed right before a
// check outlives the request and the store write that follow it.
func (c SchedulerConfig) ClaimTTL() time.Duration {
	minimum := c.RequestTimeout + c.StoreTimeout + time.Second
	if c.LockTTL < minimum {
		return minimum
	}
	return c.LockTTL
}

type PostgresConfig struct {
	Host     string `envconfig:"POSTGRES_HOST" required:"true"`
	Port     int    `envconfig:"POSTGRES_PORT" required:"true"`
	User     string `envconfig:"POSTGRES_USER" required:"true"`
	Password string `envconfig:"POSTGRES_PASSWORD" required:"true"`
	DBName   string `envconfig:"POSTGRES_DB" required:"true"`
}

// RedisConfig is optional, an empty host keeps check claims in process memory.
type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST"`
	Port     int    `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type KafkaConfig struct {
	Brokers    []string `envconfig:"KAFKA_BROKERS"`
	EventTopic string   `envconfig:"KAFKA_EVENT_TOPIC" default:"monitoring-events"`
}

type ElasticsearchConfig struct {
	Addresses []string `envconfig:"ELASTICSEARCH_ADDRESSES"`
	Username  string   `envconfig:"ELASTICSEARCH_USERNAME"`
	Password  string   `envconfig:"ELASTICSEARCH_PASSWORD"`
}

func LoadConfig(path string) (AppConfig, error) {
	_ = godotenv.Load(path)

	var cfg AppConfig
	err := envconfig.Process("", &cfg)
	return cfg, err
}
