package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	PostgresAddress  string `koanf:"postgres_address"`
	PostgresPort     string `koanf:"postgres_port"`
	PostgresDB       string `koanf:"postgres_db"`
	PostgresUsername string `koanf:"postgres_username"`
	PostgresPassword string `koanf:"postgres_password"`

	HTTPPort        string        `koanf:"http_port"`
	JWTSecret       string        `koanf:"jwt_secret"`
	TokenTTL        time.Duration `koanf:"token_ttl"`
	OperatorWorkers int           `koanf:"operator_workers"`
	LogLevel        string        `koanf:"log_level"`
	RunMigrations   bool          `koanf:"run_migrations"`
}

// keys lists every environment variable the server reads. Anything else in
// the environment is ignored.
var keys = []string{
	"postgres_address",
	"postgres_port",
	"postgres_db",
	"postgres_username",
	"postgres_password",
	"http_port",
	"jwt_secret",
	"token_ttl",
	"operator_workers",
	"log_level",
	"run_migrations",
}

func defaults() map[string]interface{} {
	// In all cases the default behavior should be for the docker compose setup
	return map[string]interface{}{
		"postgres_address":  "localhost",
		"postgres_port":     "5433",
		"postgres_db":       "postgres",
		"postgres_username": "postgres",
		"postgres_password": "testpassword",
		"http_port":         "9446",
		"jwt_secret":        "local-development-secret",
		"token_ttl":         "30m",
		"operator_workers":  4,
		"log_level":         "info",
		"run_migrations":    true,
	}
}

// ProcessEnvironmentVariables builds the configuration from defaults, an
// optional YAML file named by CONFIG_FILE and the process environment, in
// that order of precedence (last wins). A .env file in the working directory
// is loaded into the environment first when present.
func ProcessEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	// Empty variables are treated as unset, matching the docker compose setup.
	err := k.Load(env.ProviderWithValue("", ".", func(name string, value string) (string, interface{}) {
		if value == "" {
			return "", nil
		}
		key := strings.ToLower(name)
		for _, known := range keys {
			if key == known {
				return key, value
			}
		}
		return "", nil
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	if port, err := strconv.Atoi(c.HTTPPort); err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Errorf("invalid http_port %q", c.HTTPPort))
	}
	if c.PostgresAddress == "" {
		errs = append(errs, errors.New("postgres_address is required"))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("jwt_secret is required"))
	}
	if c.TokenTTL <= 0 {
		errs = append(errs, fmt.Errorf("token_ttl must be positive, got %s", c.TokenTTL))
	}
	if c.OperatorWorkers < 1 {
		errs = append(errs, fmt.Errorf("operator_workers must be at least 1, got %d", c.OperatorWorkers))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// PostgresURL returns the connection string for the configured database.
func (c *Config) PostgresURL() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}
