package engine

import "github.com/piwi3910/fitness-tracker/internal/model"

// ActivityComparison holds the energy figures for one activity level.
type ActivityComparison struct {
	Level         model.ActivityLevel
	Multiplier    float64
	DailyCalories float64
	LossIntake    float64
	GainIntake    float64
	Current       bool // true for the level the profile was submitted with
}

// CompareActivityLevels evaluates the profile at every activity level, in
// ascending order, so reports can show what a change of routine would mean.
func CompareActivityLevels(p model.UserProfile) []ActivityComparison {
	levels := model.ActivityLevels()
	results := make([]ActivityComparison, 0, len(levels))

	for _, level := range levels {
		scenario := p
		scenario.ActivityLevel = level
		cp, err := model.ComputeCaloricProfile(scenario, model.GoalLoseWeight)
		if err != nil {
			continue
		}
		mult, _ := level.Multiplier()
		results = append(results, ActivityComparison{
			Level:         level,
			Multiplier:    mult,
			DailyCalories: cp.DailyCalories,
			LossIntake:    cp.LossIntake,
			GainIntake:    cp.GainIntake,
			Current:       level == p.ActivityLevel,
		})
	}
	return results
}
