package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// ErrHelp is returned by Load when -h/--help was requested.
var ErrHelp = pflag.ErrHelp

type Config struct {
	Port        int    `yaml:"port"`
	DBDSN       string `yaml:"db-dsn"`
	AdminAPIKey string `yaml:"admin-api-key"`
	LogLevel    string `yaml:"log-level"`
	LogFormat   string `yaml:"log-format"`
	Color       string `yaml:"color"`
}

func Default() Config {
	return Config{
		Port:      8080,
		LogLevel:  "info",
		LogFormat: "text",
		Color:     "auto",
	}
}

// Load resolves configuration: defaults, then the --config YAML file, then
// environment, then flags.
func Load(args []string, env func(string) string, usage io.Writer) (Config, error) {
	if env == nil {
		env = os.Getenv
	}
	cfg := Default()

	var (
		file  string
		flags Config
	)
	fs := pflag.NewFlagSet(AppName, pflag.ContinueOnError)
	fs.SetOutput(usage)
	fs.StringVar(&file, "config", env("CONFIG_FILE"), "path to a YAML config file")
	fs.IntVar(&flags.Port, "port", 0, "HTTP listen port (PORT)")
	fs.StringVar(&flags.DBDSN, "db-dsn", "", "postgres DSN (DB_DSN)")
	fs.StringVar(&flags.AdminAPIKey, "admin-api-key", "", "API key for /admin routes (ADMIN_API_KEY)")
	fs.StringVar(&flags.LogLevel, "log-level", "", "debug|info|warn|error (LOG_LEVEL)")
	fs.StringVar(&flags.LogFormat, "log-format", "", "text|json (LOG_FORMAT)")
	fs.StringVar(&flags.Color, "color", "", "auto|always|never (COLOR)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if file != "" {
		if err := cfg.mergeFile(file); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.mergeEnv(env); err != nil {
		return Config{}, err
	}

	if fs.Changed("port") {
		cfg.Port = flags.Port
	}
	if fs.Changed("db-dsn") {
		cfg.DBDSN = flags.DBDSN
	}
	if fs.Changed("admin-api-key") {
		cfg.AdminAPIKey = flags.AdminAPIKey
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = flags.LogLevel
	}
	if fs.Changed("log-format") {
		cfg.LogFormat = flags.LogFormat
	}
	if fs.Changed("color") {
		cfg.Color = flags.Color
	}

	cfg.normalize()
	return cfg, cfg.Validate()
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var fc Config
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	if fc.Port != 0 {
		c.Port = fc.Port
	}
	c.DBDSN = pick(fc.DBDSN, c.DBDSN)
	c.AdminAPIKey = pick(fc.AdminAPIKey, c.AdminAPIKey)
	c.LogLevel = pick(fc.LogLevel, c.LogLevel)
	c.LogFormat = pick(fc.LogFormat, c.LogFormat)
	c.Color = pick(fc.Color, c.Color)
	return nil
}

func (c *Config) mergeEnv(env func(string) string) error {
	if v := env("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PORT: %w", err)
		}
		c.Port = p
	}
	c.DBDSN = getenv(env, "DB_DSN", c.DBDSN)
	c.AdminAPIKey = getenv(env, "ADMIN_API_KEY", c.AdminAPIKey)
	c.LogLevel = getenv(env, "LOG_LEVEL", c.LogLevel)
	c.LogFormat = getenv(env, "LOG_FORMAT", c.LogFormat)
	c.Color = getenv(env, "COLOR", c.Color)
	return nil
}

func (c *Config) normalize() {
	c.DBDSN = strings.TrimSpace(c.DBDSN)
	c.AdminAPIKey = strings.TrimSpace(c.AdminAPIKey)
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	c.Color = strings.ToLower(strings.TrimSpace(c.Color))
}

func (c Config) Validate() error {
	var errs []error
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port out of range: %d", c.Port))
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		errs = append(errs, fmt.Errorf("color must be auto|always|never, got %q", c.Color))
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log-format must be text|json, got %q", c.LogFormat))
	}
	return errors.Join(errs...)
}

func (c Config) Addr() string { return ":" + strconv.Itoa(c.Port) }

func getenv(env func(string) string, k, def string) string {
	if v := env(k); v != "" {
		return v
	}
	return def
}

func pick(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
