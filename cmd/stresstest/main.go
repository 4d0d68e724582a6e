// Command stresstest drives many concurrent anonymous users through the
// onboarding and program endpoints and fails when the success rate drops.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/treinapp/treinapp/internal/e2etest"
	"github.com/treinapp/treinapp/internal/logging"
	"github.com/treinapp/treinapp/internal/testhelpers"
	"github.com/treinapp/treinapp/internal/training"
	"golang.org/x/sync/errgroup"
)

const (
	scenarioTimeout         = 30 * time.Second
	maxConcurrentOperations = 20
	numUsers                = 50
	successRateThreshold    = 95.0
	expectedArgsCount       = 2
	percentageMultiplier    = 100
)

var (
	experiences = []string{"none", "beginner", "intermediate", "advanced"}
	goals       = []string{"strength", "hypertrophy", "endurance", "weight_loss", "general_fitness"}
	activities  = []string{"sedentary", "light", "moderate", "heavy", "athlete"}
	lengths     = []string{"30_min", "45_min", "60_min", "90_min", "120_min"}
)

// randomAnswers builds a random but valid wizard submission.
func randomAnswers() map[string]any {
	dayCount := 2 + rand.IntN(4) //nolint:mnd // 2 to 5 sessions per week
	days := rand.Perm(7)[:dayCount]
	return map[string]any{
		"gender":        "masculino",
		"height":        160.0 + float64(rand.IntN(30)),
		"weight":        55.0 + float64(rand.IntN(50)),
		"goal":          goals[rand.IntN(len(goals))],
		"experience":    experiences[rand.IntN(len(experiences))],
		"activityLevel": activities[rand.IntN(len(activities))],
		"trainingDays":  days,
		"sessionLength": lengths[rand.IntN(len(lengths))],
	}
}

// UserScenario runs one user's journey: wizard, regeneration, feedback
// and the nutrition plan.
func UserScenario(ctx context.Context, serverURL string) error {
	client, err := e2etest.NewClient(serverURL)
	if err != nil {
		return fmt.Errorf("new client: %w", err)
	}

	status, err := client.PostJSON(ctx, "/api/onboarding/profile", randomAnswers(), nil)
	if err != nil {
		return fmt.Errorf("post onboarding answers: %w", err)
	}
	if status != http.StatusNoContent {
		return fmt.Errorf("unexpected status posting answers: %d", status)
	}
	if status, err = client.PostJSON(ctx, "/api/onboarding/complete", nil, nil); err != nil {
		return fmt.Errorf("complete onboarding: %w", err)
	}
	if status != http.StatusCreated {
		return fmt.Errorf("unexpected status completing onboarding: %d", status)
	}

	var program training.ProgramDocument
	if status, err = client.PostJSON(ctx, "/api/programs", nil, &program); err != nil {
		return fmt.Errorf("regenerate program: %w", err)
	}
	if status != http.StatusCreated {
		return fmt.Errorf("unexpected status regenerating program: %d", status)
	}
	if len(program.WorkoutDays) == 0 {
		return fmt.Errorf("program %s has no workout days", program.ID)
	}

	feedback := map[string]any{
		"dayId": program.WorkoutDays[0].ID,
		"feedback": training.Feedback{
			Difficulty:    1 + rand.IntN(5),
			CompletedSets: 6 + rand.IntN(6),
			FailedSets:    rand.IntN(3),
			EnergyLevel:   1 + rand.IntN(5),
			MuscularPain:  1 + rand.IntN(5),
		},
	}
	if status, err = client.PostJSON(ctx, "/api/programs/current/feedback", feedback, nil); err != nil {
		return fmt.Errorf("post feedback: %w", err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("unexpected status posting feedback: %d", status)
	}

	if status, err = client.GetJSON(ctx, "/api/nutrition", nil); err != nil {
		return fmt.Errorf("get nutrition plan: %w", err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("unexpected status getting nutrition plan: %d", status)
	}
	return nil
}

// RunLoadTest launches the scenarios and reports the success rate.
func RunLoadTest(ctx context.Context, serverURL string, logger *slog.Logger) error {
	logger.LogAttrs(ctx, slog.LevelInfo, "Starting load test", slog.Int("num_users", numUsers))

	var successCount, failureCount int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentOperations)

	for i := range numUsers {
		g.Go(func() error {
			scenarioCtx, cancel := context.WithTimeout(ctx, scenarioTimeout)
			defer cancel()

			if err := UserScenario(scenarioCtx, serverURL); err != nil {
				atomic.AddInt64(&failureCount, 1)
				// Log individual failures but don't stop the entire test
				logger.LogAttrs(scenarioCtx, slog.LevelWarn, "Scenario failed",
					slog.Int("user", i),
					slog.Any("error", err))
				return nil
			}

			atomic.AddInt64(&successCount, 1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("load test failed: %w", err)
	}

	successRate := float64(successCount) / float64(numUsers) * percentageMultiplier

	logger.LogAttrs(ctx, slog.LevelInfo, "Load test completed",
		slog.Int64("successful", successCount),
		slog.Int64("failed", failureCount),
		slog.Float64("success_rate", successRate))

	if successRate < successRateThreshold {
		return fmt.Errorf("load test failed: success rate %.1f%% below threshold", successRate)
	}

	return nil
}

func main() {
	logger := testhelpers.NewLogger(os.Stdout)
	ctx := context.Background()

	if len(os.Args) != expectedArgsCount {
		logger.LogAttrs(ctx, slog.LevelError, "usage: stresstest <hostname>")
		os.Exit(1)
	}

	var (
		hostname = os.Args[1]
		start    = time.Now()
	)

	ctx = logging.WithAttrs(ctx, slog.String("hostname", hostname))

	url := "https://" + hostname
	if strings.Contains(hostname, "localhost") {
		url = "http://" + hostname
	}
	client, err := e2etest.NewClient(url)
	if err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error creating client", slog.Any("error", err))
		os.Exit(1)
	}

	if err = client.WaitForReady(ctx, "/api/healthy"); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server not ready in time", slog.Any("error", err))
		os.Exit(1)
	}

	if err = RunLoadTest(ctx, url, logger); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "load test failed", slog.Any("error", err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Load test completed successfully 🙌",
		slog.Duration("total_duration", time.Since(start)))
}
