package config

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// DefaultZIP is used when no ZIP code argument is supplied.
// Carried over from the original tool as an explicit constant.
const DefaultZIP = "75034"

// Config holds all runtime configuration for the scraper.
// Defaults can be overridden through the environment (or a .env file).
type Config struct {
	ZIP      string `ignored:"true"`
	MaxPages int    `envconfig:"MAX_PAGES" default:"5"`
	OutFile  string `envconfig:"OUT_FILE" default:"output.csv"`

	BaseURL   string `envconfig:"BASE_URL" default:"https://www.realtor.com"`
	Headless  bool   `envconfig:"HEADLESS" default:"true"`
	UserAgent string `envconfig:"USER_AGENT" default:"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"`

	// Timing
	PageDelayMin  time.Duration `envconfig:"PAGE_DELAY_MIN" default:"1500ms"`
	PageDelayMax  time.Duration `envconfig:"PAGE_DELAY_MAX" default:"3500ms"`
	NavTimeout    time.Duration `envconfig:"NAV_TIMEOUT" default:"10s"`
	GlobalTimeout time.Duration `envconfig:"GLOBAL_TIMEOUT" default:"10m"`

	// PostgreSQL (optional sink, off unless -db is passed)
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     int    `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"realtor"`
	DBPassword string `envconfig:"DB_PASSWORD" default:"realtor"`
	DBName     string `envconfig:"DB_NAME" default:"realtor_scraper"`
	DBSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
}

// Load reads a .env file when present, then populates Config from the
// environment on top of the struct defaults.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("process env config: %w", err)
	}
	cfg.ZIP = DefaultZIP
	return cfg, nil
}

// RandomDelay returns a pause between PageDelayMin and PageDelayMax, used to
// pace navigations the way a human session would.
func (c Config) RandomDelay() time.Duration {
	if c.PageDelayMax <= c.PageDelayMin {
		return c.PageDelayMin
	}
	return c.PageDelayMin + time.Duration(rand.Int63n(int64(c.PageDelayMax-c.PageDelayMin)))
}
