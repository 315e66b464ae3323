// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

// package config loads the application configuration from defaults, config
// files, a .env file, RIDEROSTER_* environment variables and command flags,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Roster sources.
const (
	SourceHTTP = "http"
	SourceFile = "file"
	SourceDB   = "db"
)

// Session backends.
const (
	BackendMemory = "memory"
	BackendDB     = "db"
)

// Config is the full application configuration.
type Config struct {
	Endpoints   EndpointsConfig `mapstructure:"endpoints" yaml:"endpoints"`
	LandingPath string          `mapstructure:"landing_path" yaml:"landing_path"`
	Roster      RosterConfig    `mapstructure:"roster" yaml:"roster"`
	Session     SessionConfig   `mapstructure:"session" yaml:"session"`
	Database    DatabaseConfig  `mapstructure:"database" yaml:"database"`
	HTTP        HTTPConfig      `mapstructure:"http" yaml:"http"`
	Language    string          `mapstructure:"language" yaml:"language"`
	Log         LogConfig       `mapstructure:"log" yaml:"log"`
}

type EndpointsConfig struct {
	LoginURI string `mapstructure:"login_uri" yaml:"login_uri"`
	UsersURI string `mapstructure:"users_uri" yaml:"users_uri"`
}

type RosterConfig struct {
	Source      string `mapstructure:"source" yaml:"source"`
	File        string `mapstructure:"file" yaml:"file"`
	PagePolicy  string `mapstructure:"page_policy" yaml:"page_policy"`
	QueryPolicy string `mapstructure:"query_policy" yaml:"query_policy"`
}

type SessionConfig struct {
	Backend string `mapstructure:"backend" yaml:"backend"`
}

type DatabaseConfig struct {
	Type string `mapstructure:"type" yaml:"type"`
	Dsn  string `mapstructure:"dsn" yaml:"dsn"`
}

type HTTPConfig struct {
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	File  string `mapstructure:"file" yaml:"file"`
}

// Defaults returns the default value of every configuration key.
func Defaults() map[string]any {
	return map[string]any{
		"endpoints.login_uri": "http://localhost:3000/login",
		"endpoints.users_uri": "http://localhost:3000/users",
		"landing_path":        "landingPage",
		"roster.source":       SourceHTTP,
		"roster.file":         "",
		"roster.page_policy":  "clamp",
		"roster.query_policy": "reset",
		"session.backend":     BackendMemory,
		"database.type":       "sqlite",
		"database.dsn":        "./rideroster.db",
		"http.timeout":        "15s",
		"language":            "en",
		"log.level":           "info",
		"log.file":            "",
	}
}

// Validate checks the enumerated settings.
func (c Config) Validate() error {
	var errs []error
	switch c.Roster.Source {
	case SourceHTTP, SourceFile, SourceDB:
	default:
		errs = append(errs, fmt.Errorf("roster.source must be http, file or db, got %q", c.Roster.Source))
	}
	if c.Roster.Source == SourceFile && c.Roster.File == "" {
		errs = append(errs, errors.New("roster.file is required when roster.source is file"))
	}
	switch c.Session.Backend {
	case BackendMemory, BackendDB:
	default:
		errs = append(errs, fmt.Errorf("session.backend must be memory or db, got %q", c.Session.Backend))
	}
	switch c.Database.Type {
	case "sqlite", "postgres", "mysql":
	default:
		errs = append(errs, fmt.Errorf("database.type must be sqlite, postgres or mysql, got %q", c.Database.Type))
	}
	return errors.Join(errs...)
}

// UsesDatabase reports whether any component needs the database.
func (c Config) UsesDatabase() bool {
	return c.Roster.Source == SourceDB || c.Session.Backend == BackendDB
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Rideroster")
		default:
			configDir = "/etc/rideroster"
		}
	} else {
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(dir, "rideroster")
	}
	return filepath.Join(configDir, "rideroster.yaml"), nil
}

// LoadConfig builds a T from defaults, the first rideroster.yaml found in the
// user, system or current directory (or explicitPath when set), a .env file
// in the current directory, the environment and cmd's flags.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, explicitPath *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("rideroster")
	v.SetConfigType("yaml")
	if explicitPath != nil && *explicitPath != "" {
		v.SetConfigFile(*explicitPath)
	}
	if p, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(p))
	}
	if p, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(p))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, fmt.Errorf("read config: %w", err)
		}
	}

	// Values already in the environment win over .env.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return c, fmt.Errorf("load .env: %w", err)
	}

	v.SetEnvPrefix("rideroster")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}
	return c, nil
}

// WriteConfigFile writes c as YAML to path, or to the user/system config
// path when path is empty. It returns the path written.
func WriteConfigFile[T any](c *T, path string, system bool) (string, error) {
	if path == "" {
		p, err := GetConfigPath(system)
		if err != nil {
			return "", err
		}
		path = p
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}
	// The file may hold a database DSN with credentials.
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", err
	}
	return path, nil
}
