package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/piwi3910/fitness-tracker/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadAppConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	cfg := model.DefaultAppConfig()
	cfg.Theme = "dark"
	cfg.NutritionTimeout = 5
	cfg.NutritionAppID = "abc"
	cfg.LastExportDir = "/tmp/reports"

	require.NoError(t, SaveAppConfig(path, cfg))

	loaded, err := LoadAppConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "dark", loaded.Theme)
	assert.Equal(t, 5, loaded.NutritionTimeout)
	assert.Equal(t, "abc", loaded.NutritionAppID)
	assert.Equal(t, "/tmp/reports", loaded.LastExportDir)
}

func TestSaveAppConfigOmitsAppKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := model.DefaultAppConfig()
	cfg.NutritionAppKey = "super-secret"
	require.NoError(t, SaveAppConfig(path, cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(data), "super-secret"), "app key leaked to disk")

	loaded, err := LoadAppConfig(path)
	require.NoError(t, err)
	assert.Empty(t, loaded.NutritionAppKey)
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent", "config.json")

	cfg, err := LoadAppConfig(path)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultAppConfig(), cfg)
}

func TestLoadAppConfigInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("not valid json{{{"), 0644))

	_, err := LoadAppConfig(path)
	assert.Error(t, err)
}

func TestLoadAppConfigPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"theme":"light","nutrition_endpoint":""}`), 0644))

	cfg, err := LoadAppConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.Theme)
	assert.Equal(t, model.DefaultNutritionEndpoint, cfg.NutritionEndpoint)
	assert.Equal(t, 10, cfg.NutritionTimeout)
}

func TestSaveAppConfigCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "dir", "config.json")

	require.NoError(t, SaveAppConfig(path, model.DefaultAppConfig()))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvAppID, "env-id")
	t.Setenv(EnvAppKey, "env-key")
	t.Setenv(EnvEndpoint, "http://localhost:9999/nutrients")
	t.Setenv(EnvTimeout, "7")

	cfg := ApplyEnv(model.DefaultAppConfig())
	assert.Equal(t, "env-id", cfg.NutritionAppID)
	assert.Equal(t, "env-key", cfg.NutritionAppKey)
	assert.Equal(t, "http://localhost:9999/nutrients", cfg.NutritionEndpoint)
	assert.Equal(t, 7, cfg.NutritionTimeout)
}

func TestApplyEnvIgnoresBadTimeout(t *testing.T) {
	t.Setenv(EnvTimeout, "soon")

	cfg := ApplyEnv(model.DefaultAppConfig())
	assert.Equal(t, 10, cfg.NutritionTimeout)
}

func TestLoadRuntimeConfigReadsEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	envFile := "NUTRITIONIX_APP_ID=file-id\nNUTRITIONIX_APP_KEY=file-key\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(envFile), 0600))

	// Registers cleanup so the values loaded from the file do not leak.
	t.Setenv(EnvAppID, "")
	t.Setenv(EnvAppKey, "")
	os.Unsetenv(EnvAppID)
	os.Unsetenv(EnvAppKey)

	cfg, err := LoadRuntimeConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "file-id", cfg.NutritionAppID)
	assert.Equal(t, "file-key", cfg.NutritionAppKey)
	assert.True(t, cfg.HasNutritionCredentials())
}

func TestLoadRuntimeConfigKeepsFileOnBadEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	saved := model.DefaultAppConfig()
	saved.Theme = "dark"
	saved.LastExportDir = "/tmp/reports"
	require.NoError(t, SaveAppConfig(path, saved))

	// A directory named .env cannot be read as an env file.
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".env"), 0755))
	t.Setenv(EnvAppID, "env-id")

	cfg, err := LoadRuntimeConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load .env")
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, "/tmp/reports", cfg.LastExportDir)
	assert.Equal(t, "env-id", cfg.NutritionAppID)
}

func TestLoadRuntimeConfigBadFileFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))
	t.Setenv(EnvTimeout, "4")

	cfg, err := LoadRuntimeConfig(path)
	require.Error(t, err)
	assert.Equal(t, "system", cfg.Theme)
	assert.Equal(t, model.DefaultNutritionEndpoint, cfg.NutritionEndpoint)
	assert.Equal(t, 4, cfg.NutritionTimeout)
}

func TestLoadEnvFilesSkipsMissing(t *testing.T) {
	assert.NoError(t, LoadEnvFiles(filepath.Join(t.TempDir(), "missing.env")))
}
