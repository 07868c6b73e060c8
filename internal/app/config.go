package app

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	server "github.com/dhanmoti/vedic-chart-backend-2/internal/adapters/primary/http"
	alerterAdapter "github.com/dhanmoti/vedic-chart-backend-2/internal/adapters/secondary/alerter"
	"github.com/dhanmoti/vedic-chart-backend-2/internal/adapters/secondary/jhora"
	kafkaAdapter "github.com/dhanmoti/vedic-chart-backend-2/internal/adapters/secondary/kafka"
	"github.com/dhanmoti/vedic-chart-backend-2/internal/adapters/secondary/storage/pg"
	redisAdapter "github.com/dhanmoti/vedic-chart-backend-2/internal/adapters/secondary/storage/redis"
	"github.com/dhanmoti/vedic-chart-backend-2/internal/adapters/secondary/storage/s3"
	"github.com/dhanmoti/vedic-chart-backend-2/internal/pkg/logger"
)

type Config struct {
	Postgres *pg.Config             `envconfig:"POSTGRES"`
	Log      *logger.Config         `envconfig:"LOG"`
	Server   *server.Config         `envconfig:"APISERVER"`
	Jhora    *jhora.Config          `envconfig:"JHORA"`
	Redis    *redisAdapter.Config   `envconfig:"REDIS"`
	Kafka    *kafkaAdapter.Config   `envconfig:"KAFKA"`
	S3       *s3.Config             `envconfig:"S3"`
	Alerter  *alerterAdapter.Config `envconfig:"ALERTER"`

	CacheEnabled         bool          `envconfig:"CACHE_ENABLED" default:"false"`
	EngineHealthInterval time.Duration `envconfig:"ENGINE_HEALTH_INTERVAL" default:"5m"`
}

func NewEnvConfig(envPrefix string) (*Config, error) {
	cfg := &Config{}

	_ = godotenv.Load("deployments/local/.env")

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
