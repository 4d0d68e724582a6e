// Command smoketest runs the critical user journey against a deployed
// instance: onboarding wizard, program generation and nutrition plan.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/treinapp/treinapp/internal/e2etest"
	"github.com/treinapp/treinapp/internal/logging"
	"github.com/treinapp/treinapp/internal/testhelpers"
	"github.com/treinapp/treinapp/internal/training"
)

// TestOnboarding walks the wizard and verifies a program comes out.
func TestOnboarding(client *e2etest.Client) error {
	ctx := context.Background()
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second) //nolint:mnd // 10 seconds
	defer cancel()

	answers := map[string]any{
		"gender":        "masculino",
		"height":        178.0,
		"weight":        75.0,
		"goal":          "general_fitness",
		"experience":    "beginner",
		"activityLevel": "light",
		"trainingDays":  []int{1, 3, 5},
		"sessionLength": "45_min",
	}
	status, err := client.PostJSON(ctx, "/api/onboarding/profile", answers, nil)
	if err != nil {
		return fmt.Errorf("post onboarding answers: %w", err)
	}
	if status != http.StatusNoContent {
		return fmt.Errorf("unexpected status posting answers: %d", status)
	}

	var result struct {
		Program training.ProgramDocument `json:"program"`
	}
	if status, err = client.PostJSON(ctx, "/api/onboarding/complete", nil, &result); err != nil {
		return fmt.Errorf("complete onboarding: %w", err)
	}
	if status != http.StatusCreated {
		return fmt.Errorf("unexpected status completing onboarding: %d", status)
	}
	if len(result.Program.WorkoutDays) == 0 {
		return fmt.Errorf("program %s has no workout days", result.Program.ID)
	}

	var current training.ProgramDocument
	if status, err = client.GetJSON(ctx, "/api/programs/current", &current); err != nil {
		return fmt.Errorf("get current program: %w", err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("unexpected status getting current program: %d", status)
	}
	if current.ID != result.Program.ID {
		return fmt.Errorf("current program %s does not match generated %s", current.ID, result.Program.ID)
	}

	if status, err = client.GetJSON(ctx, "/api/nutrition", nil); err != nil {
		return fmt.Errorf("get nutrition plan: %w", err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("unexpected status getting nutrition plan: %d", status)
	}
	return nil
}

func main() {
	logger := testhelpers.NewLogger(os.Stdout)
	ctx := context.Background()

	if len(os.Args) != 2 { //nolint:mnd // we expect only hostname to be passed as argument.
		logger.LogAttrs(ctx, slog.LevelError, "usage: smoketest <hostname>")
		os.Exit(1)
	}

	var (
		hostname = os.Args[1]
		client   *e2etest.Client
		err      error
		start    = time.Now()
	)
	ctx = logging.WithAttrs(ctx, slog.String("hostname", hostname))
	url := "https://" + hostname
	if strings.Contains(hostname, "localhost") {
		url = "http://" + hostname
	}

	if client, err = e2etest.NewClient(url); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error creating client", slog.Any("error", err))
		os.Exit(1)
	}
	if err = client.WaitForReady(ctx, "/api/healthy"); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server not ready in time", slog.Any("error", err))
		os.Exit(1)
	}
	if err = TestOnboarding(client); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error testing onboarding", slog.Any("error", err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Smoke test successful 🙌", slog.Duration("duration", time.Since(start)))
	os.Exit(0)
}
