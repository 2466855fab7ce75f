package config

import (
	"fmt"
	"time"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the runtime configuration shared by both entrypoints. The
// queue URL is only needed by the API (the worker has events pushed to it),
// so it is validated as a URL when set but not required here.
type Config struct {
	AWSRegion         string        `envconfig:"AWS_REGION" default:"us-east-1"`
	OrdersTable       string        `envconfig:"ORDERS_TABLE" validate:"required"`
	QueueURL          string        `envconfig:"ORDERS_QUEUE_URL" validate:"omitempty,url"`
	SenderEmail       string        `envconfig:"SENDER_EMAIL" default:"orders@yourstore.com" validate:"required,email"`
	DependencyTimeout time.Duration `envconfig:"DEPENDENCY_TIMEOUT" default:"5s" validate:"min=1ms"`
	MetricsNamespace  string        `envconfig:"METRICS_NAMESPACE" default:"OrderPipeline"`
	RunLocal          bool          `envconfig:"RUN_LOCAL" default:"false"`
	HTTPAddr          string        `envconfig:"HTTP_ADDR" default:":8080"`
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, fmt.Errorf("read environment: %w", err)
	}
	if err := validatorv10.New().Struct(cfg); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
