package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type (
	Config struct {
		HTTP    HTTP
		Log     Log
		PG      PG
		S3      S3
		Upload  Upload
		Redis   Redis
		Sentry  Sentry
		Swagger Swagger
	}

	HTTP struct {
		Port           string `env:"HTTP_PORT,required"`
		UsePreforkMode bool   `env:"HTTP_USE_PREFORK_MODE" envDefault:"false"`
	}

	Log struct {
		Level string `env:"LOG_LEVEL,required"`
	}

	PG struct {
		PoolMax int    `env:"PG_POOL_MAX,required"`
		URL     string `env:"PG_URL,required"`
	}

	// All S3 settings are required so a misconfigured store fails at
	// startup instead of on the first upload.
	S3 struct {
		Endpoint       string        `env:"S3_ENDPOINT,required"`
		Region         string        `env:"S3_REGION,required"`
		AccessKey      string        `env:"S3_ACCESS_KEY,required"`
		SecretKey      string        `env:"S3_SECRET_KEY,required"`
		Bucket         string        `env:"S3_BUCKET,required"`
		KeyPrefix      string        `env:"S3_KEY_PREFIX" envDefault:"activities"`
		CfgLoadTimeout time.Duration `env:"S3_LOAD_CFG_TIMEOUT" envDefault:"10s"`
	}

	Upload struct {
		MaxSizeMB int `env:"UPLOAD_MAX_SIZE_MB" envDefault:"10"`
	}

	Redis struct {
		Addr     string        `env:"REDIS_ADDR,required"`
		Password string        `env:"REDIS_PASSWORD" envDefault:""`
		StatsTTL time.Duration `env:"REDIS_STATS_TTL" envDefault:"60s"`
	}

	Sentry struct {
		DSN string `env:"SENTRY_DSN" envDefault:""`
	}

	Swagger struct {
		Enabled bool `env:"SWAGGER_ENABLED" envDefault:"false"`
	}
)

func New() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	return cfg, nil
}
