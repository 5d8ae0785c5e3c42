package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	Environment string `envconfig:"ENVIRONMENT" default:"development"`

	DatabaseDSN string `envconfig:"DATABASE_DSN" required:"true"`

	JWTSecret    string `envconfig:"JWT_SECRET" required:"true"`
	JWTExpireMin int    `envconfig:"JWT_EXPIRE_MIN" default:"1440"`

	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`

	SMTPHost  string `envconfig:"SMTP_HOST" default:"smtp.gmail.com"`
	SMTPPort  int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPUser  string `envconfig:"SMTP_USER"`
	SMTPPass  string `envconfig:"SMTP_PASS"`
	FromEmail string `envconfig:"FROM_EMAIL" default:"noreply@courtbook.ge"`

	NotifyQueueSize int `envconfig:"NOTIFY_QUEUE_SIZE" default:"64"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
