package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() FormInput {
	return FormInput{
		CurrentWeight:    "70",
		TargetWeight:     "65",
		Height:           "175",
		Age:              "30",
		Gender:           "Male",
		ActivityLevel:    "Active",
		DietPreference:   "VEG",
		Goal:             "Lose Weight",
		CaloriesConsumed: "1800",
		FitnessPlan:      "Balanced",
	}
}

func TestFormInputParse(t *testing.T) {
	req, err := validForm().Parse()
	require.NoError(t, err)

	assert.Equal(t, 70.0, req.Profile.CurrentWeightKg)
	assert.Equal(t, 65.0, req.Profile.TargetWeightKg)
	assert.Equal(t, 175.0, req.Profile.HeightCm)
	assert.Equal(t, 30, req.Profile.Age)
	assert.Equal(t, GenderMale, req.Profile.Gender)
	assert.Equal(t, ActivityActive, req.Profile.ActivityLevel)
	assert.Equal(t, DietVegetarian, req.Profile.DietPreference)
	assert.Equal(t, GoalLoseWeight, req.Goal)
	assert.Equal(t, 1800.0, req.CaloriesConsumed)
	assert.Equal(t, PlanBalanced, req.PlanKind)
}

func TestFormInputParseNumericErrors(t *testing.T) {
	cases := []struct {
		name  string
		mutFn func(f *FormInput)
		field string
	}{
		{"empty weight", func(f *FormInput) { f.CurrentWeight = "" }, FieldCurrentWeight},
		{"text target", func(f *FormInput) { f.TargetWeight = "sixty" }, FieldTargetWeight},
		{"zero height", func(f *FormInput) { f.Height = "0" }, FieldHeight},
		{"fractional age", func(f *FormInput) { f.Age = "30.5" }, FieldAge},
		{"negative age", func(f *FormInput) { f.Age = "-2" }, FieldAge},
		{"missing calories", func(f *FormInput) { f.CaloriesConsumed = "  " }, FieldCaloriesConsumed},
		{"negative calories", func(f *FormInput) { f.CaloriesConsumed = "-5" }, FieldCaloriesConsumed},
		{"NaN weight", func(f *FormInput) { f.CurrentWeight = "NaN" }, FieldCurrentWeight},
		{"Inf weight", func(f *FormInput) { f.CurrentWeight = "Inf" }, FieldCurrentWeight},
		{"+inf target", func(f *FormInput) { f.TargetWeight = "+inf" }, FieldTargetWeight},
		{"infinity target", func(f *FormInput) { f.TargetWeight = "infinity" }, FieldTargetWeight},
		{"nan height", func(f *FormInput) { f.Height = "nan" }, FieldHeight},
		{"-inf height", func(f *FormInput) { f.Height = "-inf" }, FieldHeight},
		{"nan calories", func(f *FormInput) { f.CaloriesConsumed = "nan" }, FieldCaloriesConsumed},
		{"Inf calories", func(f *FormInput) { f.CaloriesConsumed = "Inf" }, FieldCaloriesConsumed},
		{"-inf calories", func(f *FormInput) { f.CaloriesConsumed = "-inf" }, FieldCaloriesConsumed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := validForm()
			tc.mutFn(&f)
			_, err := f.Parse()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInputParse)

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tc.field, pe.Field)
		})
	}
}

func TestFormInputParseEnumErrors(t *testing.T) {
	cases := []struct {
		name  string
		mutFn func(f *FormInput)
		want  error
	}{
		{"gender", func(f *FormInput) { f.Gender = "other" }, ErrInvalidGender},
		{"activity", func(f *FormInput) { f.ActivityLevel = "very-active" }, ErrInvalidActivityLevel},
		{"goal", func(f *FormInput) { f.Goal = "maintain" }, ErrInvalidGoal},
		{"plan", func(f *FormInput) { f.FitnessPlan = "yoga" }, ErrInvalidPlan},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := validForm()
			tc.mutFn(&f)
			_, err := f.Parse()
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestFormInputParseUnknownDietIsAccepted(t *testing.T) {
	f := validForm()
	f.DietPreference = "Pescatarian"
	req, err := f.Parse()
	require.NoError(t, err)
	assert.Equal(t, DietPreference("pescatarian"), req.Profile.DietPreference)
}

func TestFormInputVeryActive(t *testing.T) {
	f := validForm()
	f.ActivityLevel = "Very Active"
	req, err := f.Parse()
	require.NoError(t, err)
	assert.Equal(t, ActivityVeryActive, req.Profile.ActivityLevel)
}

func TestFormInputIsEmpty(t *testing.T) {
	assert.True(t, FormInput{}.IsEmpty())
	assert.False(t, validForm().IsEmpty())
}

func TestParseErrorMessage(t *testing.T) {
	err := &ParseError{Field: FieldAge, Value: "abc", Reason: "not a whole number"}
	assert.Equal(t, `Age: not a whole number (got "abc")`, err.Error())

	err = &ParseError{Field: FieldAge, Reason: "value is required"}
	assert.Equal(t, "Age: value is required", err.Error())
}
