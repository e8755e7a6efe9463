package config

import (
	"fmt"
	"time"

	"wordcards/internal/domain"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	BotToken    string        `envconfig:"BOT_TOKEN" required:"true"`
	PollTimeout time.Duration `envconfig:"POLL_TIMEOUT" default:"10s"`
	SkipPending bool          `envconfig:"SKIP_PENDING" default:"true"`
	Database    DatabaseConfig
	Labels      LabelsConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	Name     string `envconfig:"DB_NAME" default:"wordcards"`
	User     string `envconfig:"DB_USER" default:"wordcards"`
	Password string `envconfig:"DB_PASSWORD"`
	SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
}

// LabelsConfig holds keyboard button labels
type LabelsConfig struct {
	AddWord    string `envconfig:"LABEL_ADD_WORD" default:"Добавить слово ➕"`
	DeleteWord string `envconfig:"LABEL_DELETE_WORD" default:"Удалить слово🔙"`
	Next       string `envconfig:"LABEL_NEXT" default:"Дальше ⏭"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}

	// envconfig accepts a variable that is set but empty
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}

	return &cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// CommandLabels converts the configured labels for command resolution
func (c *Config) CommandLabels() domain.Labels {
	return domain.Labels{
		AddWord:    c.Labels.AddWord,
		DeleteWord: c.Labels.DeleteWord,
		Next:       c.Labels.Next,
	}
}
