package model

import "fmt"

// goalAdjustment is the daily deficit or surplus applied for a goal (kcal).
const goalAdjustment = 500.0

// CaloricProfile holds the energy figures derived from a UserProfile and Goal.
// It is recomputed for every request and never stored.
type CaloricProfile struct {
	BMR           float64 `json:"bmr"`            // kcal/day at rest
	DailyCalories float64 `json:"daily_calories"` // maintenance, BMR x activity multiplier
	TargetIntake  float64 `json:"target_intake"`  // daily calories adjusted for the goal
	LossIntake    float64 `json:"loss_intake"`    // daily calories - 500
	GainIntake    float64 `json:"gain_intake"`    // daily calories + 500
}

// ComputeBMR returns the basal metabolic rate using the revised
// Harris-Benedict equation. Callers must pass a validated Gender; anything
// other than GenderMale takes the female branch.
func ComputeBMR(p UserProfile) float64 {
	w, h, a := p.CurrentWeightKg, p.HeightCm, float64(p.Age)
	if p.Gender == GenderMale {
		return 88.362 + 13.397*w + 4.799*h - 5.677*a
	}
	return 447.593 + 9.247*w + 3.098*h - 4.330*a
}

// DailyCaloriesFromBMR scales a BMR by the multiplier for level.
func DailyCaloriesFromBMR(bmr float64, level ActivityLevel) (float64, error) {
	m, ok := level.Multiplier()
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidActivityLevel, string(level))
	}
	return bmr * m, nil
}

// ComputeDailyCalories returns the maintenance calories for the profile.
func ComputeDailyCalories(p UserProfile) (float64, error) {
	return DailyCaloriesFromBMR(ComputeBMR(p), p.ActivityLevel)
}

// TargetIntake applies the 500 kcal deficit or surplus for goal.
func TargetIntake(daily float64, goal Goal) (float64, error) {
	switch goal {
	case GoalLoseWeight:
		return daily - goalAdjustment, nil
	case GoalGainWeight:
		return daily + goalAdjustment, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidGoal, string(goal))
	}
}

// ComputeCaloricProfile derives every energy figure for one request.
func ComputeCaloricProfile(p UserProfile, goal Goal) (CaloricProfile, error) {
	bmr := ComputeBMR(p)
	daily, err := DailyCaloriesFromBMR(bmr, p.ActivityLevel)
	if err != nil {
		return CaloricProfile{}, err
	}
	target, err := TargetIntake(daily, goal)
	if err != nil {
		return CaloricProfile{}, err
	}
	return CaloricProfile{
		BMR:           bmr,
		DailyCalories: daily,
		TargetIntake:  target,
		LossIntake:    daily - goalAdjustment,
		GainIntake:    daily + goalAdjustment,
	}, nil
}

// LogProgress compares consumed calories against the target intake.
// Consumption equal to the target is never on track, in either direction.
func LogProgress(target float64, goal Goal, consumed float64) string {
	switch {
	case goal == GoalLoseWeight && consumed < target:
		return fmt.Sprintf("Great! You're on track with a caloric deficit of %.2f kcal.", target-consumed)
	case goal == GoalGainWeight && consumed > target:
		return fmt.Sprintf("Awesome! You're on track with a caloric surplus of %.2f kcal.", consumed-target)
	default:
		return "You need to adjust your intake to meet your goal."
	}
}
