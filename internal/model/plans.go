package model

type dietKey struct {
	pref DietPreference
	goal Goal
}

var dietPlans = map[dietKey]string{
	{DietVegetarian, GoalLoseWeight}: `Suggested Vegetarian Diet Plan for Weight Loss:
- Breakfast: Oatmeal with almonds and fruit
- Lunch: Lentil soup with whole-grain bread
- Snacks: Carrots, hummus, or a small handful of nuts
- Dinner: Quinoa salad with tofu and veggies
- Drinks: Green tea, water`,

	{DietVegetarian, GoalGainWeight}: `Suggested Vegetarian Diet Plan for Weight Gain:
- Breakfast: Smoothie with banana, peanut butter, and almond milk
- Lunch: Brown rice with chickpeas and avocado
- Snacks: Cheese sandwich or protein-rich snacks
- Dinner: Paneer curry with whole-wheat naan and lentils
- Drinks: Milk, protein shakes`,

	{DietNonVegetarian, GoalLoseWeight}: `Suggested Non-Vegetarian Diet Plan for Weight Loss:
- Breakfast: Scrambled eggs with spinach and avocado
- Lunch: Grilled chicken salad with olive oil and quinoa
- Snacks: Greek yogurt or boiled eggs
- Dinner: Grilled fish with steamed vegetables
- Drinks: Water, green tea`,

	{DietNonVegetarian, GoalGainWeight}: `Suggested Non-Vegetarian Diet Plan for Weight Gain:
- Breakfast: Omelette with whole grain toast and avocado
- Lunch: Chicken breast with brown rice and veggies
- Snacks: Peanut butter on whole-grain bread, or a protein shake
- Dinner: Steak or salmon with sweet potatoes and veggies
- Drinks: Whole milk, smoothies with protein powder`,
}

var workoutPlans = map[Goal]string{
	GoalLoseWeight: `6-Day Workout Plan for Weight Loss:
Day 1: Cardio (Running or Cycling for 30 minutes)
Day 2: Full Body Strength Training (Squats, Deadlifts, Push-ups)
Day 3: Cardio (HIIT - 20 minutes)
Day 4: Lower Body Strength Training (Leg Press, Lunges, Step-ups)
Day 5: Cardio (Swimming or Jogging - 30 minutes)
Day 6: Upper Body Strength Training (Pull-ups, Rows, Bench Press)
Day 7: Rest`,

	GoalGainWeight: `6-Day Workout Plan for Weight Gain:
Day 1: Chest and Triceps (Bench Press, Tricep Dips, Push-ups)
Day 2: Back and Biceps (Deadlifts, Pull-ups, Barbell Rows)
Day 3: Legs (Squats, Leg Press, Lunges)
Day 4: Shoulders (Overhead Press, Lateral Raises, Shrugs)
Day 5: Arms (Bicep Curls, Tricep Extensions, Hammer Curls)
Day 6: Full Body Strength Training (Compound Movements: Squats, Deadlifts, Bench Press)
Day 7: Rest`,
}

var fitnessPlans = map[PlanKind]string{
	PlanCardio:   "Cardio-based plan: 30 minutes of running, 20 minutes of cycling.",
	PlanStrength: "Strength-based plan: 4 sets of squats, 4 sets of deadlifts, and 4 sets of bench press.",
	PlanBalanced: "Balanced plan: 20 minutes of cardio and 30 minutes of strength training.",
}

// SuggestDietPlan returns the diet template for the preference and goal.
// The second result is false when no template matches; that is not an error.
func SuggestDietPlan(pref DietPreference, goal Goal) (string, bool) {
	plan, ok := dietPlans[dietKey{pref, goal}]
	return plan, ok
}

// GenerateWorkoutPlan returns the weekly workout template for goal.
// Diet preference plays no part in the choice.
func GenerateWorkoutPlan(goal Goal) (string, bool) {
	plan, ok := workoutPlans[goal]
	return plan, ok
}

// FitnessPlan returns the one-sentence plan for kind.
func FitnessPlan(kind PlanKind) (string, error) {
	plan, ok := fitnessPlans[kind]
	if !ok {
		return "", ErrInvalidPlan
	}
	return plan, nil
}

// PlanKinds lists the accepted fitness plan kinds, for UI selectors.
func PlanKinds() []PlanKind {
	return []PlanKind{PlanCardio, PlanStrength, PlanBalanced}
}
