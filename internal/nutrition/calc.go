package nutrition

import (
	"math"
	"time"

	"github.com/treinapp/treinapp/internal/training"
)

const (
	// defaultAge is assumed when no birth date was collected.
	defaultAge = 25
	// yearSeconds is the average Gregorian year, 365.25 days.
	yearSeconds = 31557600

	// calorieDelta produces roughly half a kilogram per week of change.
	calorieDelta = 500

	caloriesPerGramProtein = 4
	caloriesPerGramCarbs   = 4
	caloriesPerGramFat     = 9

	// waterBasePerKg is the base hydration in milliliters per kilogram.
	waterBasePerKg = 35
)

// macroSplit is a protein/fat/carb split in percent of total calories.
type macroSplit struct {
	protein int
	fat     int
	carbs   int
}

var macroSplits = map[MacroDistribution]macroSplit{
	MacroModerate: {protein: 30, fat: 35, carbs: 35},
	MacroLower:    {protein: 40, fat: 40, carbs: 20},
	MacroHigher:   {protein: 30, fat: 20, carbs: 50},
}

// ageAt returns the age in whole years at the reference time, or the default
// when no birth date is known.
func ageAt(birthDate *time.Time, now time.Time) int {
	if birthDate == nil {
		return defaultAge
	}
	age := int(now.Sub(*birthDate).Seconds() / yearSeconds)
	if age < 0 {
		return 0
	}
	return age
}

// basalMetabolicRate estimates daily calories at rest. Athletes use the
// Katch-McArdle formula over an estimated lean body mass; everyone else uses
// Mifflin-St Jeor.
func basalMetabolicRate(input Input, now time.Time) float64 {
	if input.Activity == training.ActivityAthlete {
		estimatedBodyFat := 0.25
		if input.Gender == GenderMale {
			estimatedBodyFat = 0.15
		}
		leanMass := input.WeightKg * (1 - estimatedBodyFat)
		return 370 + 21.6*leanMass
	}

	age := ageAt(input.BirthDate, now)
	base := 10*input.WeightKg + 6.25*input.HeightCm - 5*float64(age)
	if input.Gender == GenderMale {
		return base + 5
	}
	return base - 161
}

// activityMultiplier scales the basal rate into total daily expenditure.
func activityMultiplier(activity training.ActivityLevel) float64 {
	switch activity {
	case training.ActivitySedentary:
		return 1.2
	case training.ActivityLight:
		return 1.375
	case training.ActivityModerate:
		return 1.55
	case training.ActivityHeavy:
		return 1.725
	case training.ActivityAthlete:
		return 1.9
	default:
		return 1.2
	}
}

// calorieTarget applies a fixed surplus or deficit to the daily expenditure.
func calorieTarget(tdee float64, goal Goal) float64 {
	switch goal {
	case GoalLose:
		return tdee - calorieDelta
	case GoalGain:
		return tdee + calorieDelta
	default:
		return tdee
	}
}

// macros splits the calorie target into grams of protein, fat, and carbs.
func macros(calories float64, distribution MacroDistribution) Macros {
	split, ok := macroSplits[distribution]
	if !ok {
		split = macroSplits[MacroModerate]
	}
	return Macros{
		Protein: int(math.Round(calories * float64(split.protein) / 100 / caloriesPerGramProtein)),
		Fat:     int(math.Round(calories * float64(split.fat) / 100 / caloriesPerGramFat)),
		Carbs:   int(math.Round(calories * float64(split.carbs) / 100 / caloriesPerGramCarbs)),
	}
}

// waterIntake is the daily hydration target in milliliters.
func waterIntake(weightKg float64, activity training.ActivityLevel) float64 {
	base := weightKg * waterBasePerKg
	switch activity {
	case training.ActivityLight:
		return base * 1.1
	case training.ActivityModerate:
		return base * 1.2
	case training.ActivityHeavy:
		return base * 1.4
	case training.ActivityAthlete:
		return base * 1.6
	default:
		return base
	}
}

// mealFrequency decides how many meals the calorie target is spread over.
func mealFrequency(calories float64, activity training.ActivityLevel) int {
	switch activity {
	case training.ActivitySedentary:
		if calories > 2000 {
			return 4
		}
		return 3
	case training.ActivityLight:
		if calories > 2200 {
			return 5
		}
		return 4
	case training.ActivityModerate:
		if calories > 2500 {
			return 6
		}
		return 5
	case training.ActivityHeavy:
		if calories > 3000 {
			return 7
		}
		return 6
	case training.ActivityAthlete:
		return 8
	default:
		return 5
	}
}

// NewPlan derives a complete nutrition plan from the input. The reference
// time is used for age calculation and the plan's creation timestamp.
func NewPlan(input Input, now time.Time) Plan {
	bmr := basalMetabolicRate(input, now)
	tdee := bmr * activityMultiplier(input.Activity)
	calories := calorieTarget(tdee, input.Goal)

	return Plan{
		Calories:    int(math.Round(calories)),
		Macros:      macros(calories, input.MacroDistribution),
		Meals:       mealFrequency(calories, input.Activity),
		WaterIntake: waterIntake(input.WeightKg, input.Activity),
		DietType:    input.Diet,
		CreatedAt:   now,
	}
}

// GoalDate projects when the weight goal is reached at the chosen weekly
// speed. It returns false when the goal is maintenance or data is missing.
func GoalDate(input Input, now time.Time) (time.Time, bool) {
	if input.WeightGoalKg == 0 || input.WeightKg == 0 ||
		input.WeightSpeedKg == 0 || input.Goal == GoalMaintain {
		return time.Time{}, false
	}

	weightDiff := math.Abs(input.WeightGoalKg - input.WeightKg)
	weeksToGoal := weightDiff / input.WeightSpeedKg
	daysToGoal := int(math.Ceil(weeksToGoal * 7))

	return now.AddDate(0, 0, daysToGoal), true
}
