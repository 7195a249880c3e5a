// Package dietplan computes daily caloric needs with the Harris-Benedict
// equation and maps the result onto a tiered diet plan.
package dietplan

import (
	"errors"
	"math"
	"strings"
)

var (
	ErrInvalidGender        = errors.New("invalid gender: use 'male' or 'female'")
	ErrInvalidActivityLevel = errors.New("invalid activity level: choose from 'sedentary', 'light', 'moderate', 'active', or 'very_active'")
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

type Input struct {
	Gender string `json:"gender"`
	// Weight in kilograms, Height in centimeters.
	Weight        float64 `json:"weight"`
	Height        float64 `json:"height"`
	Age           int     `json:"age"`
	ActivityLevel string  `json:"activityLevel"`
}

type MaintenancePlan struct {
	Maintain   int `json:"maintain"`
	GainWeight int `json:"gain_weight"`
	LoseWeight int `json:"lose_weight"`
}

type Result struct {
	BMR              float64         `json:"bmr"`
	DailyCalories    float64         `json:"daily_calories"`
	MaintenancePlan  MaintenancePlan `json:"maintenance_plan"`
	WeightGoal       string          `json:"weight_goal"`
	SelectedDietPlan DietPlan        `json:"selected_diet_plan"`
}

// ageBand clamps the recommended base calories for one age range. A zero max
// means no upper cap.
type ageBand struct {
	minAge, maxAge int
	min, max       float64
}

// Dietary-guideline calorie ranges by sex, activity tier and age. Sedentary
// and moderate tiers keep the raw Harris-Benedict estimate.
var calorieBands = map[string]map[string][]ageBand{
	GenderFemale: {
		"light": {
			{2, 6, 1000, 1400},
			{7, 18, 1200, 1800},
			{19, 60, 1600, 2000},
			{61, 0, 1600, 0},
		},
		"active": {
			{2, 6, 1000, 1600},
			{7, 18, 1600, 2400},
			{19, 60, 1800, 2400},
			{61, 0, 1800, 2000},
		},
	},
	GenderMale: {
		"light": {
			{2, 6, 1000, 1400},
			{7, 18, 1400, 2400},
			{19, 60, 2200, 2600},
			{61, 0, 2000, 0},
		},
		"active": {
			{2, 6, 1000, 1800},
			{7, 18, 1600, 3200},
			{19, 60, 2400, 3000},
			{61, 0, 2200, 2600},
		},
	},
}

// Calculate returns the BMR, activity-adjusted daily calories, a maintenance
// plan and the diet plan tier matching the estimated needs.
func Calculate(in Input) (*Result, error) {
	gender := strings.ToLower(strings.TrimSpace(in.Gender))

	var bmr float64
	switch gender {
	case GenderMale:
		bmr = 88.362 + 13.397*in.Weight + 4.799*in.Height - 5.677*float64(in.Age)
	case GenderFemale:
		bmr = 447.593 + 9.247*in.Weight + 3.098*in.Height - 4.330*float64(in.Age)
	default:
		return nil, ErrInvalidGender
	}

	multiplier, ok := activityMultipliers[in.ActivityLevel]
	if !ok {
		return nil, ErrInvalidActivityLevel
	}

	dailyCalories := bmr * multiplier
	baseCalories := clampBaseCalories(gender, in.ActivityLevel, in.Age, dailyCalories)

	var weightGoal string
	switch {
	case dailyCalories < baseCalories:
		weightGoal = "You should increase your calorie intake to gain weight."
	case dailyCalories > baseCalories:
		weightGoal = "You should decrease your calorie intake to lose weight."
	default:
		weightGoal = "Your calorie intake is appropriate for maintaining your current weight."
	}

	return &Result{
		BMR:           round2(bmr),
		DailyCalories: round2(dailyCalories),
		MaintenancePlan: MaintenancePlan{
			Maintain:   int(math.Round(dailyCalories)),
			GainWeight: int(math.Round(dailyCalories + 500)),
			LoseWeight: int(math.Round(dailyCalories - 500)),
		},
		WeightGoal:       weightGoal,
		SelectedDietPlan: selectDietPlan(dailyCalories),
	}, nil
}

func clampBaseCalories(gender, activityLevel string, age int, dailyCalories float64) float64 {
	bands, ok := calorieBands[gender][activityLevel]
	if !ok {
		return dailyCalories
	}

	for _, b := range bands {
		if age < b.minAge || (b.maxAge != 0 && age > b.maxAge) {
			continue
		}
		clamped := math.Max(b.min, dailyCalories)
		if b.max != 0 {
			clamped = math.Min(clamped, b.max)
		}
		return clamped
	}

	return dailyCalories
}

func selectDietPlan(dailyCalories float64) DietPlan {
	switch {
	case dailyCalories <= 1500:
		return dietPlans[plan1500]
	case dailyCalories <= 1800:
		return dietPlans[plan1800]
	case dailyCalories <= 2000:
		return dietPlans[plan2000]
	case dailyCalories <= 2200:
		return dietPlans[plan2200]
	default:
		return dietPlans[plan2500]
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
