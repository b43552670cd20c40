// Package config loads the application configuration.
//
// Values come from a YAML file and can be overridden by environment
// variables. The file path is resolved in priority order:
//  1. the --config flag of the command being run
//  2. the CONFIG_PATH environment variable
//
// Without a file the configuration is read from the environment alone and
// every optional setting takes its env-default.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

const (
	// Storage drivers accepted by storage.driver.
	DriverJSON   = "json"
	DriverSQLite = "sqlite"
)

// Config is the root configuration structure.
type Config struct {
	// Env controls log format and verbosity: "dev", "staging" or "prod".
	Env string `yaml:"env" env:"ENV" env-default:"dev" validate:"oneof=dev staging prod"`

	// FieldsPath optionally replaces the embedded field registry.
	FieldsPath string `yaml:"fields_path" env:"FIELDS_PATH"`

	HTTPServer `yaml:"http_server"`

	Storage Storage `yaml:"storage"`
	Client  Client  `yaml:"client"`
	UI      UI      `yaml:"ui"`
}

// HTTPServer holds settings of the web server.
type HTTPServer struct {
	Addr            string        `yaml:"address"          env:"HTTP_SERVER_ADDR"        env-default:"localhost:8082" validate:"required"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"HTTP_READ_TIMEOUT"       env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"HTTP_WRITE_TIMEOUT"      env-default:"10s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"HTTP_IDLE_TIMEOUT"       env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT"   env-default:"5s"`
}

// Storage selects and configures the record store.
type Storage struct {
	// Driver is "json" (read the records file directly) or "sqlite"
	// (import the records file into a SQLite database and query that).
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"json" validate:"oneof=json sqlite"`

	// RecordsPath is the json-server style customer file.
	RecordsPath string `yaml:"records_path" env:"RECORDS_PATH" env-default:"storage/db.json" validate:"required"`

	// SQLitePath is the database file used by the sqlite driver.
	SQLitePath string `yaml:"sqlite_path" env:"SQLITE_PATH" env-default:"storage/customers.db"`

	// Watch reloads the records file when it changes on disk.
	Watch bool `yaml:"watch" env:"RECORDS_WATCH"`
}

// Client configures the search command's HTTP client.
type Client struct {
	BaseURL string        `yaml:"base_url" env:"CLIENT_BASE_URL" env-default:"http://localhost:8082" validate:"required,url"`
	Timeout time.Duration `yaml:"timeout"  env:"CLIENT_TIMEOUT"  env-default:"10s"`
}

// UI holds the page chrome strings.
type UI struct {
	Title    string `yaml:"title"    env:"UI_TITLE"    env-default:"Customer Management"`
	Subtitle string `yaml:"subtitle" env:"UI_SUBTITLE" env-default:"Search and manage customer records"`

	// EmptyIcon replaces the empty-state SVG. It is sanitized before use.
	EmptyIcon string `yaml:"empty_icon" env:"UI_EMPTY_ICON"`
}

// Load reads the configuration from path, falling back to CONFIG_PATH and
// then to the environment alone.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	} else {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config: file does not exist: %s", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// MustLoad is Load for start-up code: it exits the process on failure.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		log.Fatalf("cannot load config: %s", err.Error())
	}
	return cfg
}
