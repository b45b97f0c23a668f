package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIURL            string `json:"api_url"`
	UserAgent         string `json:"user_agent"`
	PollInterval      string `json:"poll_interval"`
	RequestTimeoutSec int    `json:"request_timeout_sec"`

	DatabaseURL string `json:"database_url"`
	DBName      string `json:"db_name"`
	DBUser      string `json:"db_user"`
	DBPwd       string `json:"db_pwd"`
	DBHost      string `json:"db_host"`
	DBPort      int    `json:"db_port"`

	LogLevel      string `json:"log_level"`
	LogFile       string `json:"log_file"`
	BroadcastAddr string `json:"broadcast_addr"`
}

func Default() Config {
	return Config{
		APIURL:            "https://api.mercadobitcoin.net/api/v4",
		UserAgent:         "mbfeed/1.0",
		PollInterval:      "1s",
		RequestTimeoutSec: 10,
		DBName:            "mbfeed",
		DBUser:            "postgres",
		DBHost:            "127.0.0.1",
		DBPort:            5432,
		LogLevel:          "info",
	}
}

// Load builds the configuration from defaults, then the JSON file at path,
// then the environment. Variables from envFile are added to the environment
// first without replacing ones already set. Missing files are ignored.
func Load(path, envFile string) (Config, error) {
	cfg := Default()
	if path == "" {
		if _, err := os.Stat("config.json"); err == nil {
			path = "config.json"
		}
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err == nil {
			if err := json.Unmarshal(b, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config: %w", err)
			}
		}
	}
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("load env file: %w", err)
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("API_URL"); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv("USER_AGENT"); v != "" {
		cfg.UserAgent = v
	}
	if v := os.Getenv("POLL_INTERVAL"); v != "" {
		cfg.PollInterval = v
	}
	if v := os.Getenv("REQUEST_TIMEOUT_SEC"); v != "" {
		if x, err := strconv.Atoi(v); err == nil && x > 0 {
			cfg.RequestTimeoutSec = x
		}
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		cfg.DBName = v
	}
	if v := os.Getenv("DB_USER"); v != "" {
		cfg.DBUser = v
	}
	if v := os.Getenv("DB_PWD"); v != "" {
		cfg.DBPwd = v
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		cfg.DBHost = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		if x, err := strconv.Atoi(v); err == nil && x > 0 {
			cfg.DBPort = x
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("BROADCAST_ADDR"); v != "" {
		cfg.BroadcastAddr = v
	}
}

// DSN returns DatabaseURL when set, otherwise a URL assembled from the DB_* fields.
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	if c.DBHost == "" || c.DBName == "" {
		return ""
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DBUser, c.DBPwd, c.DBHost, c.DBPort, c.DBName)
}

func (c Config) Interval() (time.Duration, error) {
	d, err := time.ParseDuration(c.PollInterval)
	if err != nil {
		return 0, fmt.Errorf("poll interval: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("poll interval must be positive, got %s", d)
	}
	return d, nil
}

func (c Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSec) * time.Second
}

func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.APIURL) == "" {
		errs = append(errs, errors.New("api url is required"))
	}
	if c.DSN() == "" {
		errs = append(errs, errors.New("database url or db host/name is required"))
	}
	if _, err := c.Interval(); err != nil {
		errs = append(errs, err)
	}
	if c.RequestTimeoutSec <= 0 {
		errs = append(errs, errors.New("request timeout must be positive"))
	}
	return errors.Join(errs...)
}
