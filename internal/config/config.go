package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Backends de la tabla clients.
const (
	StorePostgREST = "postgrest"
	StorePostgres  = "postgres"
	StoreSQLite    = "sqlite"
	StoreMemory    = "memory"
)

var ErrInvalidConfig = errors.New("invalid config")

// tableName acepta identificadores SQL simples (sin schema ni comillas).
var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,62}$`)

type Config struct {
	Port string `yaml:"port"`

	// Store vacío = se elige según lo que haya configurado (postgrest > postgres > memory).
	Store string `yaml:"store"`

	// Table es la tabla de clientes en cualquier backend (postgrest, postgres, sqlite).
	Table string `yaml:"table"`

	Supabase SupabaseConfig `yaml:"supabase"`
	Postgres PostgresConfig `yaml:"postgres"`
	SQLite   SQLiteConfig   `yaml:"sqlite"`

	HTTPTimeout time.Duration `yaml:"http_timeout"`
}

type SupabaseConfig struct {
	URL     string `yaml:"url"`
	AnonKey string `yaml:"anon_key"`
}

type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

type SQLiteConfig struct {
	Path string `yaml:"path"`
}

func Default() Config {
	return Config{
		Port:        "8080",
		Table:       "clients",
		SQLite:      SQLiteConfig{Path: "clients.db"},
		HTTPTimeout: 10 * time.Second,
	}
}

// Load arma la config: defaults -> YAML (CLIENTS_CONFIG_PATH, opcional) -> env.
// Se llama una sola vez al arrancar.
func Load() (Config, error) {
	cfg := Default()

	if path := strings.TrimSpace(os.Getenv("CLIENTS_CONFIG_PATH")); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	cfg.Store = cfg.ResolvedStore()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	setString := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}

	setString("PORT", &cfg.Port)
	setString("CLIENTS_STORE", &cfg.Store)
	setString("SUPABASE_URL", &cfg.Supabase.URL)
	setString("SUPABASE_ANON_KEY", &cfg.Supabase.AnonKey)
	setString("CLIENTS_TABLE", &cfg.Table)
	setString("DB_DSN", &cfg.Postgres.DSN)
	setString("SQLITE_PATH", &cfg.SQLite.Path)

	if v := strings.TrimSpace(os.Getenv("HTTP_TIMEOUT")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: HTTP_TIMEOUT: %w", ErrInvalidConfig, err)
		}
		cfg.HTTPTimeout = d
	}
	return nil
}

// ResolvedStore devuelve el backend a usar cuando Store viene vacío.
func (c Config) ResolvedStore() string {
	store := strings.ToLower(strings.TrimSpace(c.Store))
	if store != "" {
		return store
	}
	switch {
	case c.Supabase.URL != "" && c.Supabase.AnonKey != "":
		return StorePostgREST
	case c.Postgres.DSN != "":
		return StorePostgres
	default:
		return StoreMemory
	}
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return fmt.Errorf("%w: port required", ErrInvalidConfig)
	}
	if !tableName.MatchString(c.Table) {
		return fmt.Errorf("%w: invalid table name %q", ErrInvalidConfig, c.Table)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("%w: http_timeout must be positive", ErrInvalidConfig)
	}

	switch c.ResolvedStore() {
	case StorePostgREST:
		if strings.TrimSpace(c.Supabase.URL) == "" || strings.TrimSpace(c.Supabase.AnonKey) == "" {
			return fmt.Errorf("%w: postgrest store requires SUPABASE_URL and SUPABASE_ANON_KEY", ErrInvalidConfig)
		}
	case StorePostgres:
		if strings.TrimSpace(c.Postgres.DSN) == "" {
			return fmt.Errorf("%w: postgres store requires DB_DSN", ErrInvalidConfig)
		}
	case StoreSQLite:
		if strings.TrimSpace(c.SQLite.Path) == "" {
			return fmt.Errorf("%w: sqlite store requires SQLITE_PATH", ErrInvalidConfig)
		}
	case StoreMemory:
	default:
		return fmt.Errorf("%w: unknown store %q", ErrInvalidConfig, c.Store)
	}
	return nil
}

// Addr es la dirección de escucha del server HTTP.
func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}
