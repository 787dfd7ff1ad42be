package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/piwi3910/fitness-tracker/internal/model"
)

// Environment variables overlaid onto the loaded config.
const (
	EnvAppID    = "NUTRITIONIX_APP_ID"
	EnvAppKey   = "NUTRITIONIX_APP_KEY"
	EnvEndpoint = "NUTRITIONIX_ENDPOINT"
	EnvTimeout  = "NUTRITIONIX_TIMEOUT_SECONDS"
)

// DefaultConfigDir returns the default directory for application configuration.
// On all platforms this is ~/.fitness-tracker/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".fitness-tracker")
}

// DefaultConfigPath returns the default path for the application config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// SaveAppConfig persists an AppConfig to the given path as JSON.
// It creates any missing parent directories automatically. The app key is
// never written.
func SaveAppConfig(path string, config model.AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// LoadAppConfig reads an AppConfig from the given path.
// If the file does not exist, it returns DefaultAppConfig with no error.
func LoadAppConfig(path string) (model.AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultAppConfig(), nil
		}
		return model.AppConfig{}, err
	}
	config := model.DefaultAppConfig()
	if err := json.Unmarshal(data, &config); err != nil {
		return model.AppConfig{}, err
	}
	if config.NutritionEndpoint == "" {
		config.NutritionEndpoint = model.DefaultNutritionEndpoint
	}
	return config, nil
}

// LoadEnvFiles loads the given .env files into the process environment
// without overriding variables that are already set. Missing files are skipped.
func LoadEnvFiles(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// ApplyEnv overlays nutrition settings from the environment onto config.
// Empty variables leave the config value untouched.
func ApplyEnv(config model.AppConfig) model.AppConfig {
	if v := os.Getenv(EnvAppID); v != "" {
		config.NutritionAppID = v
	}
	if v := os.Getenv(EnvAppKey); v != "" {
		config.NutritionAppKey = v
	}
	if v := os.Getenv(EnvEndpoint); v != "" {
		config.NutritionEndpoint = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			config.NutritionTimeout = secs
		}
	}
	return config
}

// LoadRuntimeConfig loads the config file, the working-directory .env and
// the config-directory .env, then overlays the environment.
//
// The returned config is always usable. A config file that cannot be read
// falls back to defaults, and an unreadable .env still keeps what the config
// file and the process environment provide. Any such failure is returned so
// the caller can log it.
func LoadRuntimeConfig(path string) (model.AppConfig, error) {
	config, loadErr := LoadAppConfig(path)
	if loadErr != nil {
		config = model.DefaultAppConfig()
		loadErr = fmt.Errorf("load config %s: %w", path, loadErr)
	}
	envErr := LoadEnvFiles(".env", filepath.Join(filepath.Dir(path), ".env"))
	if envErr != nil {
		envErr = fmt.Errorf("load .env: %w", envErr)
	}
	return ApplyEnv(config), errors.Join(loadErr, envErr)
}
