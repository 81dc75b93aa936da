package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

type Config struct {
	ListenAddr string  `toml:"listen_addr"`
	DBPath     string  `toml:"db_path"`
	APIBaseURL string  `toml:"api_base_url"`
	ImageDir   string  `toml:"image_dir"`
	APIRate    float64 `toml:"api_rate"` // upstream requests per second
	LogLevel   string  `toml:"log_level"`
	LogFile    string  `toml:"log_file"`
	TestMode   bool    `toml:"-"`
}

// Load builds the configuration from GALLERIA_CONFIG (an optional TOML
// file) and environment variables. Environment variables win over file
// values so deployments can override a shared config file per instance.
func Load() (*Config, error) {
	cfg := &Config{
		ListenAddr: ":8080",
		DBPath:     "/data/galleria.db",
		APIBaseURL: "http://localhost:3000",
		ImageDir:   "/data/art-images",
		APIRate:    10,
		LogLevel:   "info",
	}

	if path := os.Getenv("GALLERIA_CONFIG"); path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	cfg.ListenAddr = getEnv("LISTEN_ADDR", cfg.ListenAddr)
	cfg.DBPath = getEnv("DB_PATH", cfg.DBPath)
	cfg.APIBaseURL = getEnv("API_BASE_URL", cfg.APIBaseURL)
	cfg.ImageDir = getEnv("IMAGE_DIR", cfg.ImageDir)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFile = getEnv("LOG_FILE", cfg.LogFile)
	cfg.TestMode = os.Getenv("GALLERIA_TEST_MODE") == "1"

	if v := os.Getenv("API_RATE"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid API_RATE %q: %w", v, err)
		}
		cfg.APIRate = rate
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}
