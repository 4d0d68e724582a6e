package nutrition_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/treinapp/treinapp/internal/contexthelpers"
	"github.com/treinapp/treinapp/internal/nutrition"
	"github.com/treinapp/treinapp/internal/ptr"
	"github.com/treinapp/treinapp/internal/sqlite"
	"github.com/treinapp/treinapp/internal/testhelpers"
	"github.com/treinapp/treinapp/internal/training"
)

func newTestService(t *testing.T) *nutrition.Service {
	t.Helper()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
	db, err := sqlite.NewDatabase(t.Context(), ":memory:", logger)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Failed to close database: %v", err)
		}
	})
	return nutrition.NewService(db, logger)
}

func userContext(userID string) context.Context {
	return context.WithValue(context.Background(), contexthelpers.CurrentUserIDContextKey, userID)
}

func TestService_PlanRoundTrip(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	ctx := userContext("user-1")

	if _, err := svc.Plan(ctx); !errors.Is(err, nutrition.ErrNotFound) {
		t.Errorf("Plan() without stored plan error = %v, want ErrNotFound", err)
	}

	input := nutrition.Input{
		Gender:    nutrition.GenderFemale,
		BirthDate: ptr.Ref(time.Date(1998, 2, 10, 0, 0, 0, 0, time.UTC)),
		HeightCm:  165,
		WeightKg:  60,
		Goal:      nutrition.GoalMaintain,
		Diet:      nutrition.DietVegetarian,
		Activity:  training.ActivityLight,
	}

	created, err := svc.CreatePlan(ctx, input)
	if err != nil {
		t.Fatalf("CreatePlan() error = %v", err)
	}
	if created.Calories <= 0 {
		t.Errorf("calories = %d, want positive", created.Calories)
	}
	if created.DietType != nutrition.DietVegetarian {
		t.Errorf("diet type = %v", created.DietType)
	}

	got, err := svc.Plan(ctx)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	if diff := cmp.Diff(created, got); diff != "" {
		t.Errorf("plan mismatch (-want +got):\n%s", diff)
	}

	// A new plan replaces the old one.
	input.WeightKg = 58
	replaced, err := svc.CreatePlan(ctx, input)
	if err != nil {
		t.Fatalf("CreatePlan() replacement error = %v", err)
	}
	got, err = svc.Plan(ctx)
	if err != nil {
		t.Fatalf("Plan() after replacement error = %v", err)
	}
	if got.Input.WeightKg != 58 || got.Calories != replaced.Calories {
		t.Errorf("stored plan = %+v, want replacement %+v", got, replaced)
	}
}

func TestService_CreatePlanWithoutUser(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	if _, err := svc.CreatePlan(context.Background(), nutrition.Input{}); err == nil {
		t.Error("CreatePlan() without user in context should fail")
	}
}
