package model

import (
	"math"
	"strconv"
	"strings"
)

// Field labels shared by the form and by ParseError messages.
const (
	FieldCurrentWeight    = "Current Weight (kg)"
	FieldTargetWeight     = "Target Weight (kg)"
	FieldHeight           = "Height (cm)"
	FieldAge              = "Age"
	FieldGender           = "Gender"
	FieldActivityLevel    = "Activity Level"
	FieldDietPreference   = "Diet Preference"
	FieldGoal             = "Goal"
	FieldCaloriesConsumed = "Calories Consumed Today"
	FieldFitnessPlan      = "Preferred Fitness Plan"
)

// FormInput is the raw text of every form field for one submit.
type FormInput struct {
	CurrentWeight    string `json:"current_weight"`
	TargetWeight     string `json:"target_weight"`
	Height           string `json:"height"`
	Age              string `json:"age"`
	Gender           string `json:"gender"`
	ActivityLevel    string `json:"activity_level"`
	DietPreference   string `json:"diet_preference"`
	Goal             string `json:"goal"`
	CaloriesConsumed string `json:"calories_consumed"`
	FitnessPlan      string `json:"fitness_plan"`
}

// IsEmpty reports whether every field is blank.
func (f FormInput) IsEmpty() bool {
	return f == FormInput{}
}

// Parse validates the raw fields and builds an immutable Request.
// The first failing field is reported; numeric failures are *ParseError.
func (f FormInput) Parse() (Request, error) {
	weight, err := parsePositiveFloat(FieldCurrentWeight, f.CurrentWeight)
	if err != nil {
		return Request{}, err
	}
	target, err := parsePositiveFloat(FieldTargetWeight, f.TargetWeight)
	if err != nil {
		return Request{}, err
	}
	height, err := parsePositiveFloat(FieldHeight, f.Height)
	if err != nil {
		return Request{}, err
	}
	age, err := parsePositiveInt(FieldAge, f.Age)
	if err != nil {
		return Request{}, err
	}
	gender, err := ParseGender(f.Gender)
	if err != nil {
		return Request{}, err
	}
	activity, err := ParseActivityLevel(f.ActivityLevel)
	if err != nil {
		return Request{}, err
	}
	goal, err := ParseGoal(f.Goal)
	if err != nil {
		return Request{}, err
	}
	consumed, err := parseFloat(FieldCaloriesConsumed, f.CaloriesConsumed)
	if err != nil {
		return Request{}, err
	}
	if consumed < 0 {
		return Request{}, &ParseError{Field: FieldCaloriesConsumed, Value: f.CaloriesConsumed, Reason: "must not be negative"}
	}
	plan, err := ParsePlanKind(f.FitnessPlan)
	if err != nil {
		return Request{}, err
	}

	return Request{
		Profile: UserProfile{
			CurrentWeightKg: weight,
			TargetWeightKg:  target,
			HeightCm:        height,
			Age:             age,
			Gender:          gender,
			ActivityLevel:   activity,
			DietPreference:  NormalizeDietPreference(f.DietPreference),
		},
		Goal:             goal,
		CaloriesConsumed: consumed,
		PlanKind:         plan,
	}, nil
}

func parseFloat(field, raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, &ParseError{Field: field, Reason: "value is required"}
	}
	v, err := strconv.ParseFloat(s, 64)
	// ParseFloat accepts "NaN" and "Inf"; neither is a usable measurement.
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ParseError{Field: field, Value: raw, Reason: "not a number"}
	}
	return v, nil
}

func parsePositiveFloat(field, raw string) (float64, error) {
	v, err := parseFloat(field, raw)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, &ParseError{Field: field, Value: raw, Reason: "must be greater than zero"}
	}
	return v, nil
}

func parsePositiveInt(field, raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, &ParseError{Field: field, Reason: "value is required"}
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, &ParseError{Field: field, Value: raw, Reason: "not a whole number"}
	}
	if v <= 0 {
		return 0, &ParseError{Field: field, Value: raw, Reason: "must be greater than zero"}
	}
	return v, nil
}
