package engine

import (
	"fmt"
	"strings"
	"testing"

	"github.com/piwi3910/fitness-tracker/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleForm() model.FormInput {
	return model.FormInput{
		CurrentWeight:    "70",
		TargetWeight:     "65",
		Height:           "175",
		Age:              "30",
		Gender:           "male",
		ActivityLevel:    "active",
		DietPreference:   "veg",
		Goal:             "lose weight",
		CaloriesConsumed: "1800",
		FitnessPlan:      "cardio",
	}
}

func TestEvaluateFormEndToEnd(t *testing.T) {
	s, err := EvaluateForm(sampleForm())
	require.NoError(t, err)

	bmr := 88.362 + 13.397*70 + 4.799*175 - 5.677*30
	daily := bmr * 1.725
	assert.InDelta(t, daily, s.Calories.DailyCalories, 1e-6)
	assert.InDelta(t, daily-500, s.Calories.TargetIntake, 1e-6)

	want := fmt.Sprintf("Great! You're on track with a caloric deficit of %.2f kcal.", daily-500-1800)
	assert.Equal(t, want, s.Progress)
	assert.True(t, s.HasDiet)
	assert.True(t, s.HasWorkout)
	assert.Len(t, s.ID, 8)
	assert.NotEmpty(t, s.CreatedAt)
}

func TestSummaryTextOrder(t *testing.T) {
	s, err := EvaluateForm(sampleForm())
	require.NoError(t, err)
	text := s.Text()

	sections := []string{
		s.Progress,
		"Diet Plan:\nSuggested Vegetarian Diet Plan for Weight Loss:",
		"Workout Plan:\n6-Day Workout Plan for Weight Loss:",
		"Fitness Plan:\nCardio-based plan",
		fmt.Sprintf("maintain your current weight is %.2f kcal.", s.Calories.DailyCalories),
		fmt.Sprintf("To lose weight, consume around %.2f kcal/day.", s.Calories.LossIntake),
		fmt.Sprintf("To gain weight, consume around %.2f kcal/day.", s.Calories.GainIntake),
	}
	last := -1
	for _, section := range sections {
		idx := strings.Index(text, section)
		require.GreaterOrEqual(t, idx, 0, "missing section %q", section)
		assert.Greater(t, idx, last, "section %q out of order", section)
		last = idx
	}
	assert.True(t, strings.HasPrefix(text, s.Progress))
}

func TestSummaryTextAbsentDietPlan(t *testing.T) {
	f := sampleForm()
	f.DietPreference = "vegan"
	s, err := EvaluateForm(f)
	require.NoError(t, err)

	assert.False(t, s.HasDiet)
	assert.Equal(t, noPlan, s.DietText())
	assert.Contains(t, s.Text(), "Diet Plan:\n"+noPlan)
}

func TestEvaluateGainOnTrack(t *testing.T) {
	f := sampleForm()
	f.Goal = "gain weight"
	f.CaloriesConsumed = "4000"
	s, err := EvaluateForm(f)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(s.Progress, "Awesome!"))
	assert.InDelta(t, s.Calories.DailyCalories+500, s.Calories.TargetIntake, 1e-9)
}

func TestEvaluateErrors(t *testing.T) {
	f := sampleForm()
	f.FitnessPlan = "yoga"
	_, err := EvaluateForm(f)
	assert.ErrorIs(t, err, model.ErrInvalidPlan)

	f = sampleForm()
	f.Height = "tall"
	_, err = EvaluateForm(f)
	assert.ErrorIs(t, err, model.ErrInputParse)

	req, err := sampleForm().Parse()
	require.NoError(t, err)
	req.Goal = "maintain"
	_, err = Evaluate(req)
	assert.ErrorIs(t, err, model.ErrInvalidGoal)
}

func TestEvaluateFormRejectsNonFinite(t *testing.T) {
	for _, raw := range []string{"NaN", "Inf", "+inf", "-inf", "infinity"} {
		f := sampleForm()
		f.CurrentWeight = raw
		_, err := EvaluateForm(f)
		assert.ErrorIs(t, err, model.ErrInputParse, "weight %q", raw)

		f = sampleForm()
		f.CaloriesConsumed = raw
		_, err = EvaluateForm(f)
		assert.ErrorIs(t, err, model.ErrInputParse, "calories %q", raw)
	}
}

func TestEvaluateUniqueIDs(t *testing.T) {
	a, err := EvaluateForm(sampleForm())
	require.NoError(t, err)
	b, err := EvaluateForm(sampleForm())
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}
