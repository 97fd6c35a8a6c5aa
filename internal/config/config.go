package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

const EnvProduction = "production"

type Config struct {
	AppPort     string `env:"APP_PORT" envDefault:"5000"`
	Environment string `env:"APP_ENV" envDefault:"development"`
	ClientURL   string `env:"CLIENT_URL" envDefault:"http://localhost:5000"`

	GoogleClientID     string `env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `env:"GOOGLE_REDIRECT_URL"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"povbackend"`
	DBSSL      bool   `env:"DB_SSL" envDefault:"false"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// DatabaseDSN assembles a lib/pq keyword DSN from the discrete
// connection parameters.
func (c Config) DatabaseDSN() string {
	sslmode := "disable"
	if c.DBSSL {
		sslmode = "require"
	}

	parts := []string{
		"host=" + c.DBHost,
		"user=" + c.DBUser,
		"dbname=" + c.DBName,
		"sslmode=" + sslmode,
	}
	if c.DBPassword != "" {
		parts = append(parts, "password="+c.DBPassword)
	}

	return strings.Join(parts, " ")
}

func (c Config) IsProduction() bool {
	return c.Environment == EnvProduction
}
