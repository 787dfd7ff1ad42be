package nutrition

import (
	"fmt"
	"strconv"
)

// Facts holds the four macronutrient fields read from a lookup.
// A nil field means the API did not return it.
type Facts struct {
	Query    string   `json:"query"`
	FoodName string   `json:"food_name,omitempty"`
	Calories *float64 `json:"calories,omitempty"` // kcal
	Protein  *float64 `json:"protein,omitempty"`  // g
	Fat      *float64 `json:"fat,omitempty"`      // g
	Carbs    *float64 `json:"carbs,omitempty"`    // g
}

// formatValue renders v without trailing zeros, or "N/A" when absent.
func formatValue(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// Text renders the facts for display.
func (f Facts) Text() string {
	return fmt.Sprintf("Food: %s\nCalories: %s kcal\nProtein: %s g\nFat: %s g\nCarbs: %s g",
		f.Query,
		formatValue(f.Calories),
		formatValue(f.Protein),
		formatValue(f.Fat),
		formatValue(f.Carbs),
	)
}
