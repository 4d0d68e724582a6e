package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/treinapp/treinapp/internal/nutrition"
	"github.com/treinapp/treinapp/internal/training"
)

// sessionKeyOnboarding holds the merged wizard answers until the final step
// commits them.
const sessionKeyOnboarding = "onboardingAnswers"

// onboardingSteps are the wizard pages a client may submit.
var onboardingSteps = map[string]bool{
	"profile":    true,
	"goal":       true,
	"experience": true,
	"schedule":   true,
	"nutrition":  true,
}

// onboardingAnswers is the flattened union of all wizard step payloads.
type onboardingAnswers struct {
	Experience    training.ExperienceLevel `json:"experience"`
	Goal          training.Goal            `json:"goal"`
	Activity      training.ActivityLevel   `json:"activityLevel"`
	Style         training.Style           `json:"preferredStyle,omitempty"`
	TrainingDays  []int                    `json:"trainingDays"`
	SessionLength training.SessionLength   `json:"sessionLength"`

	Gender            nutrition.Gender            `json:"gender,omitempty"`
	BirthDate         *time.Time                  `json:"birthDate,omitempty"`
	HeightCm          float64                     `json:"height,omitempty"`
	WeightKg          float64                     `json:"weight,omitempty"`
	WeightGoalKg      float64                     `json:"weightGoal,omitempty"`
	WeightSpeedKg     float64                     `json:"weightSpeed,omitempty"`
	Objective         nutrition.Goal              `json:"objective,omitempty"`
	Diet              nutrition.DietType          `json:"diet,omitempty"`
	MacroDistribution nutrition.MacroDistribution `json:"macroDistribution,omitempty"`
}

type onboardingResult struct {
	Profile   training.Profile         `json:"profile"`
	Program   training.ProgramDocument `json:"program"`
	Nutrition *nutrition.PlanDocument  `json:"nutrition,omitempty"`
}

// onboardingStepPOST merges one wizard step's answers into the session.
func (app *application) onboardingStepPOST(w http.ResponseWriter, r *http.Request) {
	step := r.PathValue("step")
	if !onboardingSteps[step] {
		http.NotFound(w, r)
		return
	}

	var answers map[string]json.RawMessage
	if err := decodeJSON(r, &answers); err != nil {
		app.badRequest(w, r, "invalid request body")
		return
	}
	if len(answers) == 0 {
		app.badRequest(w, r, "empty step answers")
		return
	}

	merged, err := app.mergeOnboardingAnswers(r, answers)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.sessionManager.Put(r.Context(), sessionKeyOnboarding, merged)

	w.WriteHeader(http.StatusNoContent)
}

// mergeOnboardingAnswers folds the step answers into the ones already
// collected in the session. Later steps win on key conflicts.
func (app *application) mergeOnboardingAnswers(
	r *http.Request,
	answers map[string]json.RawMessage,
) ([]byte, error) {
	collected := map[string]json.RawMessage{}
	if stored := app.sessionManager.GetBytes(r.Context(), sessionKeyOnboarding); len(stored) > 0 {
		if err := json.Unmarshal(stored, &collected); err != nil {
			return nil, fmt.Errorf("unmarshal collected answers: %w", err)
		}
	}
	for key, value := range answers {
		collected[key] = value
	}
	merged, err := json.Marshal(collected)
	if err != nil {
		return nil, fmt.Errorf("marshal collected answers: %w", err)
	}
	return merged, nil
}

// onboardingCompletePOST validates the collected answers, persists the
// profile, generates the training program and derives the nutrition plan.
func (app *application) onboardingCompletePOST(w http.ResponseWriter, r *http.Request) {
	stored := app.sessionManager.GetBytes(r.Context(), sessionKeyOnboarding)
	if len(stored) == 0 {
		app.badRequest(w, r, "onboarding answers missing")
		return
	}
	var answers onboardingAnswers
	if err := json.Unmarshal(stored, &answers); err != nil {
		app.serverError(w, r, fmt.Errorf("unmarshal onboarding answers: %w", err))
		return
	}
	if message, ok := validateAnswers(answers); !ok {
		app.badRequest(w, r, message)
		return
	}

	ctx := r.Context()
	profile, err := app.trainingService.SaveProfile(ctx, training.Profile{
		Experience:    answers.Experience,
		Goal:          answers.Goal,
		Activity:      answers.Activity,
		Style:         answers.Style,
		TrainingDays:  answers.TrainingDays,
		SessionLength: answers.SessionLength,
	})
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}

	program, err := app.trainingService.GenerateProgram(ctx)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}

	result := onboardingResult{Profile: profile, Program: program}
	if input, ok := nutritionInput(answers); ok {
		plan, planErr := app.nutritionService.CreatePlan(ctx, input)
		if planErr != nil {
			app.handleServiceError(w, r, planErr)
			return
		}
		result.Nutrition = &plan
	}

	app.sessionManager.Remove(ctx, sessionKeyOnboarding)
	app.writeJSON(w, r, http.StatusCreated, result)
}

// validateAnswers checks that every answer the generator needs is present.
func validateAnswers(answers onboardingAnswers) (string, bool) {
	switch {
	case answers.Experience == "":
		return "missing answer: experience", false
	case answers.Goal == "":
		return "missing answer: goal", false
	case answers.Activity == "":
		return "missing answer: activityLevel", false
	case len(answers.TrainingDays) == 0:
		return "missing answer: trainingDays", false
	case answers.SessionLength == "":
		return "missing answer: sessionLength", false
	}
	for _, day := range answers.TrainingDays {
		if day < 0 || day > 6 {
			return fmt.Sprintf("invalid training day: %d", day), false
		}
	}
	return "", true
}

// nutritionInput builds the nutrition calculator input when the wizard
// collected the anthropometrics. The plan objective falls back to one
// derived from the training goal.
func nutritionInput(answers onboardingAnswers) (nutrition.Input, bool) {
	if answers.Gender == "" || answers.HeightCm <= 0 || answers.WeightKg <= 0 {
		return nutrition.Input{}, false
	}
	objective := answers.Objective
	if objective == "" {
		switch answers.Goal {
		case training.GoalWeightLoss:
			objective = nutrition.GoalLose
		case training.GoalHypertrophy, training.GoalStrength:
			objective = nutrition.GoalGain
		default:
			objective = nutrition.GoalMaintain
		}
	}
	return nutrition.Input{
		Gender:            answers.Gender,
		BirthDate:         answers.BirthDate,
		HeightCm:          answers.HeightCm,
		WeightKg:          answers.WeightKg,
		WeightGoalKg:      answers.WeightGoalKg,
		WeightSpeedKg:     answers.WeightSpeedKg,
		Goal:              objective,
		Diet:              answers.Diet,
		Activity:          answers.Activity,
		MacroDistribution: answers.MacroDistribution,
	}, true
}
