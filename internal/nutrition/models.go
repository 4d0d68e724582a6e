// Package nutrition derives daily calorie, macro, and hydration targets from
// a user's body metrics and training activity.
package nutrition

import (
	"time"

	"github.com/treinapp/treinapp/internal/training"
)

// Gender of the user as collected during onboarding.
type Gender string

const (
	GenderMale   Gender = "masculino"
	GenderFemale Gender = "feminino"
	GenderOther  Gender = "outro"
)

// Goal is the weight goal, distinct from the training goal.
type Goal string

const (
	GoalLose     Goal = "lose"
	GoalMaintain Goal = "maintain"
	GoalGain     Goal = "gain"
)

// DietType restricts which foods the plan may suggest.
type DietType string

const (
	DietClassic     DietType = "classic"
	DietLowCarb     DietType = "lowcarb"
	DietVegetarian  DietType = "vegetarian"
	DietVegan       DietType = "vegan"
	DietPescatarian DietType = "pescatarian"
)

// MacroDistribution selects the protein/fat/carb split.
type MacroDistribution string

const (
	MacroModerate MacroDistribution = "moderate"
	MacroLower    MacroDistribution = "lower"
	MacroHigher   MacroDistribution = "higher"
)

// Input is the body and goal data a nutrition plan is derived from.
// BirthDate is optional; a default age is assumed when it is missing.
type Input struct {
	Gender            Gender                 `json:"gender"`
	BirthDate         *time.Time             `json:"birthDate,omitempty"`
	HeightCm          float64                `json:"height"`
	WeightKg          float64                `json:"weight"`
	WeightGoalKg      float64                `json:"weightGoal,omitempty"`
	WeightSpeedKg     float64                `json:"weightSpeed,omitempty"`
	Goal              Goal                   `json:"goal"`
	Diet              DietType               `json:"diet"`
	Activity          training.ActivityLevel `json:"activityLevel"`
	MacroDistribution MacroDistribution      `json:"macroDistribution,omitempty"`
}

// Macros is the daily macronutrient targets in grams.
type Macros struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fat     int `json:"fat"`
}

// Plan is the derived daily nutrition plan. WaterIntake is in milliliters.
type Plan struct {
	Calories    int       `json:"calories"`
	Macros      Macros    `json:"macros"`
	Meals       int       `json:"meals"`
	WaterIntake float64   `json:"waterIntake"`
	DietType    DietType  `json:"dietType"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PlanDocument is the persisted form of a plan, together with the input it
// was derived from so the plan can be recomputed when formulas change.
type PlanDocument struct {
	Plan
	UserID    string    `json:"userId"`
	Input     Input     `json:"input"`
	UpdatedAt time.Time `json:"updatedAt"`
}
