package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	APIBaseURL     string        `yaml:"api_url"`
	ListenAddr     string        `yaml:"listen_addr"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	LogDir         string        `yaml:"log_dir"`

	// StubAPI mounts the local reference users API under /api/users.
	StubAPI    bool   `yaml:"stub_api"`
	DBDriver   string `yaml:"db_driver"`
	DBUser     string `yaml:"db_user"`
	DBPassword string `yaml:"db_password"`
	DBHost     string `yaml:"db_host"`
	DBPort     string `yaml:"db_port"`
	DBName     string `yaml:"db_name"`
	SQLitePath string `yaml:"sqlite_path"`
}

func Defaults() Config {
	return Config{
		APIBaseURL: "http://localhost:5000",
		ListenAddr: ":8000",
		LogDir:     "./logs",
		DBDriver:   "postgres",
		DBPort:     "5432",
		SQLitePath: "userbench.db",
	}
}

// LoadConfig layers defaults, the YAML file named by USERBENCH_CONFIG, a .env
// file and finally the process environment.
func LoadConfig() (Config, error) {
	cfg := Defaults()

	if path := os.Getenv("USERBENCH_CONFIG"); path != "" {
		if err := loadYAML(path, &cfg); err != nil {
			return cfg, err
		}
	}

	// godotenv never overrides variables that are already set.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return cfg, fmt.Errorf("load .env: %w", err)
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadYAML(path string, cfg *Config) error {
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
	cfg.APIBaseURL = getEnv("USERBENCH_API_URL", cfg.APIBaseURL)
	cfg.ListenAddr = getEnv("USERBENCH_LISTEN_ADDR", cfg.ListenAddr)
	cfg.LogDir = getEnv("USERBENCH_LOG_DIR", cfg.LogDir)
	cfg.DBDriver = getEnv("DB_DRIVER", cfg.DBDriver)
	cfg.DBUser = getEnv("DB_USER", cfg.DBUser)
	cfg.DBPassword = getEnv("DB_PASSWORD", cfg.DBPassword)
	cfg.DBHost = getEnv("DB_HOST", cfg.DBHost)
	cfg.DBPort = getEnv("DB_PORT", cfg.DBPort)
	cfg.DBName = getEnv("DB_NAME", cfg.DBName)
	cfg.SQLitePath = getEnv("SQLITE_PATH", cfg.SQLitePath)

	if v := os.Getenv("USERBENCH_REQUEST_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("USERBENCH_REQUEST_TIMEOUT: %w", err)
		}
		cfg.RequestTimeout = d
	}
	if v := os.Getenv("USERBENCH_STUB_API"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("USERBENCH_STUB_API: %w", err)
		}
		cfg.StubAPI = b
	}
	return nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return fallback
}
