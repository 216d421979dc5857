package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

type Config struct {
	Port         int    `env:"PORT" envDefault:"3001"`
	DatabaseURL  string `env:"DATABASE_URL" envDefault:"spins.db"`
	DatabaseType string `env:"DATABASE_TYPE" envDefault:"sqlite"`

	// Empty disables admin key checks
	AdminKey string `env:"ADMIN_KEY"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
	FrontendURL    string   `env:"FRONTEND_URL"`

	SpecialPrizeChance float64 `env:"SPECIAL_PRIZE_CHANCE" envDefault:"0.01"`

	SMTPHost      string        `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	SMTPPort      int           `env:"SMTP_PORT" envDefault:"587"`
	EmailUser     string        `env:"EMAIL_USER"`
	EmailPassword string        `env:"EMAIL_PASSWORD"`
	NotifyTimeout time.Duration `env:"NOTIFY_TIMEOUT" envDefault:"30s"`
}

// EmailEnabled reports whether SMTP credentials are configured
func (c Config) EmailEnabled() bool {
	return c.EmailUser != "" && c.EmailPassword != ""
}

// Origins returns the CORS allow-list with FrontendURL appended
func (c Config) Origins() []string {
	origins := make([]string, 0, len(c.AllowedOrigins)+1)
	for _, o := range c.AllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if c.FrontendURL != "" {
		origins = append(origins, c.FrontendURL)
	}
	return origins
}

// LoadDotEnv loads a .env file into the environment without overriding
// variables that are already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// ParseFlags reads the environment, then lets CLI flags override it
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("fortune-wheel", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", cfg.Port, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", cfg.DatabaseURL, "Database URL or SQLite file")
	fs.StringVar(&cfg.DatabaseType, "t", cfg.DatabaseType, "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.FrontendURL, "frontend-url", cfg.FrontendURL, "Extra allowed CORS origin")

	// Prize tuning
	fs.Float64Var(&cfg.SpecialPrizeChance, "special-chance", cfg.SpecialPrizeChance, "Probability of the special prize while available")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminKey, "admin-key", cfg.AdminKey, "Admin key for protected routes (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid port %d", cfg.Port)
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}
	switch cfg.DatabaseType {
	case DatabaseSQLite, DatabasePostgres:
	default:
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}
	if cfg.SpecialPrizeChance < 0 || cfg.SpecialPrizeChance > 1 {
		return Config{}, fmt.Errorf("special prize chance %v outside [0, 1]", cfg.SpecialPrizeChance)
	}
	if cfg.NotifyTimeout <= 0 {
		return Config{}, errors.New("NOTIFY_TIMEOUT must be positive")
	}

	return cfg, nil
}
