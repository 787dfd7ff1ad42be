package model

import "strings"

// Gender selects the BMR formula branch.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ParseGender accepts exactly "male" or "female" after lowercasing.
func ParseGender(s string) (Gender, error) {
	switch g := Gender(strings.ToLower(strings.TrimSpace(s))); g {
	case GenderMale, GenderFemale:
		return g, nil
	default:
		return "", ErrInvalidGender
	}
}

// ActivityLevel is a key into the activity multiplier table.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very active"
)

// activityMultipliers maps each activity level to its TDEE multiplier.
// It is the single source of truth for which activity levels are valid.
var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:  1.2,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityActive:     1.725,
	ActivityVeryActive: 1.9,
}

// ActivityLevels lists the valid levels in ascending order, for UI selectors.
func ActivityLevels() []ActivityLevel {
	return []ActivityLevel{
		ActivitySedentary,
		ActivityLight,
		ActivityModerate,
		ActivityActive,
		ActivityVeryActive,
	}
}

// Multiplier returns the activity factor for the level.
func (a ActivityLevel) Multiplier() (float64, bool) {
	m, ok := activityMultipliers[a]
	return m, ok
}

// ParseActivityLevel lowercases s and checks it against the multiplier table.
// No other normalization is applied, so "very-active" is rejected.
func ParseActivityLevel(s string) (ActivityLevel, error) {
	a := ActivityLevel(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := activityMultipliers[a]; !ok {
		return "", ErrInvalidActivityLevel
	}
	return a, nil
}

// DietPreference selects a diet plan template. Unknown values are kept as-is
// and simply have no matching plan.
type DietPreference string

const (
	DietVegetarian    DietPreference = "veg"
	DietNonVegetarian DietPreference = "nonveg"
)

// NormalizeDietPreference lowercases the preference. It never fails.
func NormalizeDietPreference(s string) DietPreference {
	return DietPreference(strings.ToLower(strings.TrimSpace(s)))
}

// Goal is the weight direction the user is aiming for.
type Goal string

const (
	GoalLoseWeight Goal = "lose weight"
	GoalGainWeight Goal = "gain weight"
)

// ParseGoal accepts "lose weight" or "gain weight" after lowercasing.
func ParseGoal(s string) (Goal, error) {
	switch g := Goal(strings.ToLower(strings.TrimSpace(s))); g {
	case GoalLoseWeight, GoalGainWeight:
		return g, nil
	default:
		return "", ErrInvalidGoal
	}
}

// PlanKind picks the one-line fitness plan.
type PlanKind string

const (
	PlanCardio   PlanKind = "cardio"
	PlanStrength PlanKind = "strength"
	PlanBalanced PlanKind = "balanced"
)

// ParsePlanKind lowercases s and validates it.
func ParsePlanKind(s string) (PlanKind, error) {
	p := PlanKind(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := fitnessPlans[p]; !ok {
		return "", ErrInvalidPlan
	}
	return p, nil
}

// UserProfile holds the biometric and lifestyle inputs for one calculation.
// It is built once per submit and never mutated.
type UserProfile struct {
	CurrentWeightKg float64        `json:"current_weight_kg"`
	TargetWeightKg  float64        `json:"target_weight_kg"` // stored only, not used by any formula
	HeightCm        float64        `json:"height_cm"`
	Age             int            `json:"age"`
	Gender          Gender         `json:"gender"`
	ActivityLevel   ActivityLevel  `json:"activity_level"`
	DietPreference  DietPreference `json:"diet_preference"`
}

// Request is everything a single Submit action needs.
type Request struct {
	Profile          UserProfile `json:"profile"`
	Goal             Goal        `json:"goal"`
	CaloriesConsumed float64     `json:"calories_consumed"`
	PlanKind         PlanKind    `json:"plan_kind"`
}
