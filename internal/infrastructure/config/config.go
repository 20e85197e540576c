package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	StoreDriverDynamoDB = "dynamodb"
	StoreDriverMemory   = "memory"

	LockDriverMemory = "memory"
	LockDriverRedis  = "redis"
)

type Config struct {
	App    AppConfig
	AWS    AWSConfig
	Tables TablesConfig
	Store  StoreConfig
	Redis  RedisConfig
	JWT    JWTConfig
}

// Load reads the configuration from the environment. Variable names are kept flat
// (AWS_REGION, ORDERS_TABLE, ...) so existing deployments keep working.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.JWT.Secret) == "" {
		return errors.New("JWT_SECRET is required")
	}
	switch c.Store.Driver {
	case StoreDriverDynamoDB, StoreDriverMemory:
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.Store.Driver)
	}
	switch c.Store.LockDriver {
	case LockDriverMemory:
	case LockDriverRedis:
		if strings.TrimSpace(c.Redis.URL) == "" {
			return errors.New("REDIS_URL is required when LOCK_DRIVER=redis")
		}
	default:
		return fmt.Errorf("unsupported LOCK_DRIVER %q", c.Store.LockDriver)
	}
	return nil
}

type AppConfig struct {
	Env          string `envconfig:"APP_ENV" default:"dev"`
	Port         string `envconfig:"APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat    string `envconfig:"LOG_FORMAT" default:"json"`
	LogWarnStack bool   `envconfig:"LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, "prod")
}

// AWSConfig mirrors the variables understood by the local DynamoDB setup.
// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
type AWSConfig struct {
	Region           string `envconfig:"AWS_REGION" default:"us-east-1"`
	AccessKeyID      string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
	SecretAccessKey  string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
	DynamoDBEndpoint string `envconfig:"DYNAMODB_ENDPOINT"`
}

type TablesConfig struct {
	Orders         string `envconfig:"ORDERS_TABLE" default:"orders"`
	PaymentMethods string `envconfig:"PAYMENT_METHODS_TABLE" default:"payment_methods"`
}

type StoreConfig struct {
	Driver     string        `envconfig:"STORE_DRIVER" default:"dynamodb"`
	LockDriver string        `envconfig:"LOCK_DRIVER" default:"memory"`
	LockTTL    time.Duration `envconfig:"LOCK_TTL" default:"10s"`
}

type RedisConfig struct {
	URL string `envconfig:"REDIS_URL"`
}

type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
	Issuer string `envconfig:"JWT_ISSUER"`
}
