// Package aiplan generates training programs through an LLM instead of the
// deterministic generator. It is an alternative path and is never used for
// the core program flow.
package aiplan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/treinapp/treinapp/internal/training"
)

// Generator produces training programs from a profile via the OpenAI API.
type Generator struct {
	client openai.Client
	logger *slog.Logger
	newID  func() string
	now    func() time.Time
}

// NewGenerator creates a new LLM-backed program generator.
func NewGenerator(apiKey string, logger *slog.Logger) *Generator {
	return &Generator{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		logger: logger,
		newID:  uuid.NewString,
		now:    time.Now,
	}
}

// planResponse is the JSON document the model is asked to produce.
type planResponse struct {
	Name        string        `json:"name"`
	Style       string        `json:"style"`
	WorkoutDays []dayResponse `json:"workoutDays"`
}

type dayResponse struct {
	Name      string             `json:"name"`
	FocusArea string             `json:"focusArea"`
	Exercises []exerciseResponse `json:"exercises"`
}

type exerciseResponse struct {
	ExerciseID string `json:"exerciseId"`
	Sets       int    `json:"sets"`
	Reps       string `json:"reps"`
	RestTime   int    `json:"restTime"`
}

const systemPrompt = `You are a strength training coach. You design weekly ` +
	`training programs as JSON. Only use exercise ids from the provided ` +
	`catalog. Respond with a single JSON object and nothing else.`

// Generate asks the model for a weekly program matching the profile. The
// response is validated against the exercise catalog and clamped to the same
// bounds the deterministic generator uses.
func (g *Generator) Generate(ctx context.Context, profile training.Profile) (training.Program, error) {
	prompt := buildPrompt(profile)

	completion, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModelGPT4o,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &openai.ResponseFormatJSONObjectParam{},
		},
	})
	if err != nil {
		return training.Program{}, fmt.Errorf("chat completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return training.Program{}, errors.New("chat completion returned no choices")
	}

	g.logger.LogAttrs(ctx, slog.LevelDebug, "received plan completion",
		slog.Int64("totalTokens", completion.Usage.TotalTokens))

	var plan planResponse
	if err = json.Unmarshal([]byte(completion.Choices[0].Message.Content), &plan); err != nil {
		return training.Program{}, fmt.Errorf("parse plan response: %w", err)
	}

	program, err := g.assembleProgram(plan, profile)
	if err != nil {
		return training.Program{}, fmt.Errorf("assemble program: %w", err)
	}
	return program, nil
}

// buildPrompt summarizes the profile and the allowed exercise catalog.
func buildPrompt(profile training.Profile) string {
	var ids []string
	for _, ex := range training.ListExercises() {
		ids = append(ids, ex.ID)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Design a weekly training program for this user:\n")
	fmt.Fprintf(&b, "- experience: %s\n", profile.Experience)
	fmt.Fprintf(&b, "- goal: %s\n", profile.Goal)
	fmt.Fprintf(&b, "- activity level: %s\n", profile.Activity)
	fmt.Fprintf(&b, "- training weekdays (0=Sunday): %v\n", profile.TrainingDays)
	fmt.Fprintf(&b, "- session length: %s\n", profile.SessionLength)
	fmt.Fprintf(&b, "\nProduce one workout day per training weekday.\n")
	fmt.Fprintf(&b, "Allowed exercise ids: %s\n", strings.Join(ids, ", "))
	fmt.Fprintf(&b, `Respond with JSON: {"name": string, "style": string, `+
		`"workoutDays": [{"name": string, "focusArea": string, "exercises": `+
		`[{"exerciseId": string, "sets": number, "reps": "min-max", `+
		`"restTime": seconds}]}]}`)
	return b.String()
}

// assembleProgram validates the model's plan and converts it to a program.
func (g *Generator) assembleProgram(plan planResponse, profile training.Profile) (training.Program, error) {
	if len(plan.WorkoutDays) == 0 {
		return training.Program{}, errors.New("plan has no workout days")
	}

	level := profile.Experience
	if level == "" {
		level = training.ExperienceNone
	}

	days := make([]training.WorkoutDay, 0, len(plan.WorkoutDays))
	for _, day := range plan.WorkoutDays {
		if len(day.Exercises) == 0 {
			return training.Program{}, fmt.Errorf("workout day %q has no exercises", day.Name)
		}

		exercises := make([]training.Exercise, 0, len(day.Exercises))
		for _, ex := range day.Exercises {
			catalogEntry, ok := training.LookupExercise(ex.ExerciseID)
			if !ok {
				return training.Program{}, fmt.Errorf("unknown exercise id %q", ex.ExerciseID)
			}
			exercises = append(exercises, training.Exercise{
				ID:           ex.ExerciseID,
				Name:         catalogEntry.Name,
				TargetMuscle: catalogEntry.TargetMuscle,
				Sets:         clamp(ex.Sets, 2, 6),
				Reps:         ex.Reps,
				RestTime:     clamp(ex.RestTime, 30, 180),
				Compound:     catalogEntry.Compound,
			})
		}

		days = append(days, training.WorkoutDay{
			ID:            g.newID(),
			Name:          day.Name,
			Exercises:     exercises,
			EstimatedTime: estimateTime(exercises),
			FocusArea:     day.FocusArea,
		})
	}

	name := plan.Name
	if name == "" {
		name = fmt.Sprintf("Programa %s - %s", level, plan.Style)
	}

	return training.Program{
		ID:          g.newID(),
		Name:        name,
		Level:       level,
		Style:       training.Style(plan.Style),
		WorkoutDays: days,
		Frequency:   len(profile.TrainingDays),
		RestDays:    restDays(profile.TrainingDays),
		CreatedAt:   g.now(),
	}, nil
}

func estimateTime(exercises []training.Exercise) float64 {
	var total float64
	for _, ex := range exercises {
		if ex.Sets == 0 || ex.RestTime == 0 {
			continue
		}
		total += (float64(ex.Sets*45) + float64((ex.Sets-1)*ex.RestTime)) / 60
	}
	return total
}

func restDays(selected []int) []int {
	rest := make([]int, 0, 7)
	for day := range 7 {
		found := false
		for _, s := range selected {
			if s == day {
				found = true
				break
			}
		}
		if !found {
			rest = append(rest, day)
		}
	}
	return rest
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
