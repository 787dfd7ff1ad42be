// Package engine turns a validated form Request into the fitness summary
// shown to the user and written to exported reports.
package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/piwi3910/fitness-tracker/internal/model"
)

// noPlan is rendered in place of a diet or workout plan that has no template.
const noPlan = "No plan available."

// Summary is the full result of one Submit action.
type Summary struct {
	ID          string               `json:"id"`
	CreatedAt   string               `json:"created_at"`
	Request     model.Request        `json:"request"`
	Calories    model.CaloricProfile `json:"calories"`
	Progress    string               `json:"progress"`
	DietPlan    string               `json:"diet_plan,omitempty"`
	HasDiet     bool                 `json:"has_diet"`
	WorkoutPlan string               `json:"workout_plan,omitempty"`
	HasWorkout  bool                 `json:"has_workout"`
	FitnessPlan string               `json:"fitness_plan"`
}

// Evaluate runs the calculation pipeline for req. Any failure leaves no
// partial summary behind.
func Evaluate(req model.Request) (Summary, error) {
	cp, err := model.ComputeCaloricProfile(req.Profile, req.Goal)
	if err != nil {
		return Summary{}, err
	}

	fitness, err := model.FitnessPlan(req.PlanKind)
	if err != nil {
		return Summary{}, err
	}

	diet, hasDiet := model.SuggestDietPlan(req.Profile.DietPreference, req.Goal)
	workout, hasWorkout := model.GenerateWorkoutPlan(req.Goal)

	return Summary{
		ID:          uuid.New().String()[:8],
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
		Request:     req,
		Calories:    cp,
		Progress:    model.LogProgress(cp.TargetIntake, req.Goal, req.CaloriesConsumed),
		DietPlan:    diet,
		HasDiet:     hasDiet,
		WorkoutPlan: workout,
		HasWorkout:  hasWorkout,
		FitnessPlan: fitness,
	}, nil
}

// EvaluateForm parses raw form text and evaluates it.
func EvaluateForm(in model.FormInput) (Summary, error) {
	req, err := in.Parse()
	if err != nil {
		return Summary{}, err
	}
	return Evaluate(req)
}

// DietText returns the diet plan or the placeholder when none matched.
func (s Summary) DietText() string {
	if !s.HasDiet {
		return noPlan
	}
	return s.DietPlan
}

// WorkoutText returns the workout plan or the placeholder when none matched.
func (s Summary) WorkoutText() string {
	if !s.HasWorkout {
		return noPlan
	}
	return s.WorkoutPlan
}

// CalorieLines returns the three closing lines of the summary.
func (s Summary) CalorieLines() []string {
	return []string{
		fmt.Sprintf("Your estimated daily caloric need to maintain your current weight is %.2f kcal.", s.Calories.DailyCalories),
		fmt.Sprintf("To lose weight, consume around %.2f kcal/day.", s.Calories.LossIntake),
		fmt.Sprintf("To gain weight, consume around %.2f kcal/day.", s.Calories.GainIntake),
	}
}

// Text renders the summary in display order: progress, diet plan, workout
// plan, fitness plan, then the maintenance, loss and gain figures.
func (s Summary) Text() string {
	var b strings.Builder
	b.WriteString(s.Progress)
	b.WriteString("\n\nDiet Plan:\n")
	b.WriteString(s.DietText())
	b.WriteString("\n\nWorkout Plan:\n")
	b.WriteString(s.WorkoutText())
	b.WriteString("\n\nFitness Plan:\n")
	b.WriteString(s.FitnessPlan)
	b.WriteString("\n\n")
	b.WriteString(strings.Join(s.CalorieLines(), "\n"))
	return b.String()
}
