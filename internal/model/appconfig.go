package model

import "time"

// DefaultNutritionEndpoint is the Nutritionix natural-language nutrients API.
const DefaultNutritionEndpoint = "https://trackapi.nutritionix.com/v2/natural/nutrients"

// AppConfig holds application-wide preferences and the nutrition lookup settings.
type AppConfig struct {
	Theme string `json:"theme"` // "light", "dark", "system"

	// Nutrition lookup
	NutritionEndpoint string `json:"nutrition_endpoint"`
	NutritionTimeout  int    `json:"nutrition_timeout_seconds"`
	NutritionAppID    string `json:"nutrition_app_id,omitempty"`
	NutritionAppKey   string `json:"-"` // environment only, never written to disk

	// Last export directory, used as the starting point of save dialogs
	LastExportDir string `json:"last_export_dir,omitempty"`
}

// DefaultAppConfig returns an AppConfig with no credentials and sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Theme:             "system",
		NutritionEndpoint: DefaultNutritionEndpoint,
		NutritionTimeout:  10,
	}
}

// LookupTimeout returns the nutrition request timeout, falling back to 10s
// when the configured value is not positive.
func (c AppConfig) LookupTimeout() time.Duration {
	if c.NutritionTimeout <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.NutritionTimeout) * time.Second
}

// HasNutritionCredentials reports whether both the app id and key are set.
func (c AppConfig) HasNutritionCredentials() bool {
	return c.NutritionAppID != "" && c.NutritionAppKey != ""
}
