package training

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/treinapp/treinapp/internal/sqlite"
	"github.com/treinapp/treinapp/internal/testhelpers"
)

func newTestRepository(t *testing.T) *sqliteRepository {
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
	return newSQLiteRepository(db, logger)
}

func testProfile(userID string) Profile {
	return Profile{
		UserID:        userID,
		Experience:    ExperienceBeginner,
		Goal:          GoalHypertrophy,
		Activity:      ActivityModerate,
		TrainingDays:  []int{1, 3, 5},
		SessionLength: Session60Min,
		CreatedAt:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func testProgram(id, userID string) ProgramDocument {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return ProgramDocument{
		Program: Program{
			ID:    id,
			Name:  "Programa beginner - full_body",
			Level: ExperienceBeginner,
			Style: StyleFullBody,
			WorkoutDays: []WorkoutDay{
				{
					ID:   id + "-day-1",
					Name: "Treino Full Body 1",
					Exercises: []Exercise{
						{
							ID: "bench_press_0_0", Name: "Supino Reto", TargetMuscle: MuscleChest,
							Sets: 3, Reps: "8-12", RestTime: 60, Compound: true,
						},
					},
					EstimatedTime: 4.25,
					FocusArea:     "Full Body",
				},
			},
			Frequency: 4,
			RestDays:  []int{0, 2, 4, 6},
			CreatedAt: now,
		},
		UserID:    userID,
		UpdatedAt: now,
		Active:    true,
		Progression: Progression{
			CurrentWeek:    1,
			LastUpdated:    now,
			VolumeIncrease: 0,
			DeloadWeek:     4,
		},
	}
}

func TestSQLiteRepository_ProfileRoundTrip(t *testing.T) {
	t.Parallel()
	repo := newTestRepository(t)
	ctx := context.Background()

	if _, err := repo.getProfile(ctx, "nobody"); !errors.Is(err, ErrNotFound) {
		t.Errorf("getProfile() for missing user error = %v, want ErrNotFound", err)
	}

	profile := testProfile("user-1")
	if err := repo.saveProfile(ctx, profile); err != nil {
		t.Fatalf("saveProfile() error = %v", err)
	}

	got, err := repo.getProfile(ctx, "user-1")
	if err != nil {
		t.Fatalf("getProfile() error = %v", err)
	}
	if diff := cmp.Diff(profile, got); diff != "" {
		t.Errorf("profile mismatch (-want +got):\n%s", diff)
	}

	// Saving again replaces the document.
	profile.Goal = GoalStrength
	if err = repo.saveProfile(ctx, profile); err != nil {
		t.Fatalf("saveProfile() update error = %v", err)
	}
	got, err = repo.getProfile(ctx, "user-1")
	if err != nil {
		t.Fatalf("getProfile() after update error = %v", err)
	}
	if got.Goal != GoalStrength {
		t.Errorf("goal after update = %v, want %v", got.Goal, GoalStrength)
	}
}

func TestSQLiteRepository_ProgramLifecycle(t *testing.T) {
	t.Parallel()
	repo := newTestRepository(t)
	ctx := context.Background()

	if err := repo.saveProfile(ctx, testProfile("user-1")); err != nil {
		t.Fatalf("saveProfile() error = %v", err)
	}

	if _, err := repo.getActiveProgram(ctx, "user-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("getActiveProgram() without programs error = %v, want ErrNotFound", err)
	}

	first := testProgram("program-1", "user-1")
	if err := repo.saveProgram(ctx, first); err != nil {
		t.Fatalf("saveProgram() error = %v", err)
	}

	got, err := repo.getActiveProgram(ctx, "user-1")
	if err != nil {
		t.Fatalf("getActiveProgram() error = %v", err)
	}
	if diff := cmp.Diff(first, got); diff != "" {
		t.Errorf("program mismatch (-want +got):\n%s", diff)
	}

	// A second program takes over as the active one.
	second := testProgram("program-2", "user-1")
	second.CreatedAt = second.CreatedAt.Add(time.Hour)
	second.UpdatedAt = second.UpdatedAt.Add(time.Hour)
	if err = repo.saveProgram(ctx, second); err != nil {
		t.Fatalf("saveProgram() second error = %v", err)
	}

	got, err = repo.getActiveProgram(ctx, "user-1")
	if err != nil {
		t.Fatalf("getActiveProgram() after second save error = %v", err)
	}
	if got.ID != "program-2" {
		t.Errorf("active program = %s, want program-2", got.ID)
	}
}

func TestSQLiteRepository_UpdateProgram(t *testing.T) {
	t.Parallel()
	repo := newTestRepository(t)
	ctx := context.Background()

	if err := repo.saveProfile(ctx, testProfile("user-1")); err != nil {
		t.Fatalf("saveProfile() error = %v", err)
	}
	doc := testProgram("program-1", "user-1")
	if err := repo.saveProgram(ctx, doc); err != nil {
		t.Fatalf("saveProgram() error = %v", err)
	}

	doc.WorkoutDays[0].Exercises[0].Sets = 5
	doc.Progression.CurrentWeek = 2
	if err := repo.updateProgram(ctx, doc); err != nil {
		t.Fatalf("updateProgram() error = %v", err)
	}

	got, err := repo.getActiveProgram(ctx, "user-1")
	if err != nil {
		t.Fatalf("getActiveProgram() error = %v", err)
	}
	if got.WorkoutDays[0].Exercises[0].Sets != 5 {
		t.Errorf("sets after update = %d, want 5", got.WorkoutDays[0].Exercises[0].Sets)
	}
	if got.Progression.CurrentWeek != 2 {
		t.Errorf("current week after update = %d, want 2", got.Progression.CurrentWeek)
	}

	missing := testProgram("program-404", "user-1")
	if err = repo.updateProgram(ctx, missing); !errors.Is(err, ErrNotFound) {
		t.Errorf("updateProgram() for missing program error = %v, want ErrNotFound", err)
	}
}

func TestSQLiteRepository_ProgramsAreScopedToUser(t *testing.T) {
	t.Parallel()
	repo := newTestRepository(t)
	ctx := context.Background()

	for _, userID := range []string{"user-1", "user-2"} {
		if err := repo.saveProfile(ctx, testProfile(userID)); err != nil {
			t.Fatalf("saveProfile(%s) error = %v", userID, err)
		}
	}
	if err := repo.saveProgram(ctx, testProgram("program-1", "user-1")); err != nil {
		t.Fatalf("saveProgram() error = %v", err)
	}

	if _, err := repo.getActiveProgram(ctx, "user-2"); !errors.Is(err, ErrNotFound) {
		t.Errorf("getActiveProgram() for other user error = %v, want ErrNotFound", err)
	}
}
