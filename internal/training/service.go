package training

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/treinapp/treinapp/internal/contexthelpers"
	"github.com/treinapp/treinapp/internal/sqlite"
)

const (
	initialDeloadWeek = 4
)

// Service handles the business logic for training program management.
type Service struct {
	repo         *sqliteRepository
	logger       *slog.Logger
	cache        *selectionCache
	redistribute RedistributeFunc
	newID        func() string
	now          func() time.Time
}

// NewService creates a new training service.
func NewService(db *sqlite.Database, logger *slog.Logger) *Service {
	return &Service{
		repo:         newSQLiteRepository(db, logger),
		logger:       logger,
		cache:        newSelectionCache(nil),
		redistribute: SinglePassRedistribute,
		newID:        uuid.NewString,
		now:          time.Now,
	}
}

// SaveProfile stores the training profile for the authenticated user.
func (s *Service) SaveProfile(ctx context.Context, profile Profile) (Profile, error) {
	userID := contexthelpers.CurrentUserID(ctx)
	if userID == "" {
		return Profile{}, fmt.Errorf("no user in context: %w", ErrNotFound)
	}
	profile.UserID = userID

	now := s.now()
	existing, err := s.repo.getProfile(ctx, userID)
	switch {
	case err == nil:
		profile.CreatedAt = existing.CreatedAt
	case errors.Is(err, ErrNotFound):
		profile.CreatedAt = now
	default:
		return Profile{}, fmt.Errorf("get existing profile: %w", err)
	}
	profile.UpdatedAt = now

	if err := s.repo.saveProfile(ctx, profile); err != nil {
		return Profile{}, fmt.Errorf("save profile: %w", err)
	}
	return profile, nil
}

// Profile retrieves the training profile for the authenticated user.
func (s *Service) Profile(ctx context.Context) (Profile, error) {
	userID := contexthelpers.CurrentUserID(ctx)
	profile, err := s.repo.getProfile(ctx, userID)
	if err != nil {
		return Profile{}, fmt.Errorf("get profile: %w", err)
	}
	return profile, nil
}

// GenerateProgram creates a new training program from the user's profile and
// stores it as the active one. Any previous program is deactivated.
func (s *Service) GenerateProgram(ctx context.Context) (ProgramDocument, error) {
	userID := contexthelpers.CurrentUserID(ctx)
	profile, err := s.repo.getProfile(ctx, userID)
	if err != nil {
		return ProgramDocument{}, fmt.Errorf("get profile: %w", err)
	}

	gen := newGenerator(profile, s.cache, s.redistribute, s.newID, s.now)
	program, err := gen.Generate()
	if err != nil {
		return ProgramDocument{}, fmt.Errorf("generate program: %w", err)
	}

	now := s.now()
	doc := ProgramDocument{
		Program:   program,
		UserID:    userID,
		UpdatedAt: now,
		Active:    true,
		Progression: Progression{
			CurrentWeek:    1,
			LastUpdated:    now,
			VolumeIncrease: 0,
			DeloadWeek:     initialDeloadWeek,
		},
	}

	if err = s.repo.saveProgram(ctx, doc); err != nil {
		return ProgramDocument{}, fmt.Errorf("save program: %w", err)
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "generated training program",
		slog.String("programID", doc.ID),
		slog.String("style", string(doc.Style)),
		slog.Int("workoutDays", len(doc.WorkoutDays)))

	return doc, nil
}

// AdoptProgram persists a program built outside the generator, for example
// by the LLM planner, and makes it the user's active program.
func (s *Service) AdoptProgram(ctx context.Context, program Program) (ProgramDocument, error) {
	userID := contexthelpers.CurrentUserID(ctx)
	if userID == "" {
		return ProgramDocument{}, fmt.Errorf("no user in context: %w", ErrNotFound)
	}

	now := s.now()
	doc := ProgramDocument{
		Program:   program,
		UserID:    userID,
		UpdatedAt: now,
		Active:    true,
		Progression: Progression{
			CurrentWeek:    1,
			LastUpdated:    now,
			VolumeIncrease: 0,
			DeloadWeek:     initialDeloadWeek,
		},
	}
	if err := s.repo.saveProgram(ctx, doc); err != nil {
		return ProgramDocument{}, fmt.Errorf("save program: %w", err)
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "adopted training program",
		slog.String("programID", doc.ID),
		slog.Int("workoutDays", len(doc.WorkoutDays)))

	return doc, nil
}

// CurrentProgram retrieves the user's active training program.
func (s *Service) CurrentProgram(ctx context.Context) (ProgramDocument, error) {
	userID := contexthelpers.CurrentUserID(ctx)
	doc, err := s.repo.getActiveProgram(ctx, userID)
	if err != nil {
		return ProgramDocument{}, fmt.Errorf("get active program: %w", err)
	}
	return doc, nil
}

// ApplyFeedback adjusts one workout day of the active program based on session
// feedback and persists the updated program.
func (s *Service) ApplyFeedback(ctx context.Context, dayID string, feedback Feedback) (ProgramDocument, error) {
	userID := contexthelpers.CurrentUserID(ctx)
	doc, err := s.repo.getActiveProgram(ctx, userID)
	if err != nil {
		return ProgramDocument{}, fmt.Errorf("get active program: %w", err)
	}

	dayIndex := -1
	for i, day := range doc.WorkoutDays {
		if day.ID == dayID {
			dayIndex = i
			break
		}
	}
	if dayIndex < 0 {
		return ProgramDocument{}, fmt.Errorf("workout day %s: %w", dayID, ErrNotFound)
	}

	doc.WorkoutDays[dayIndex] = AdjustForFeedback(doc.WorkoutDays[dayIndex], feedback)

	now := s.now()
	doc.UpdatedAt = now
	doc.Progression.LastUpdated = now

	if err = s.repo.updateProgram(ctx, doc); err != nil {
		return ProgramDocument{}, fmt.Errorf("update program: %w", err)
	}
	return doc, nil
}

// ExerciseInfo returns the catalog entry for an exercise.
func (s *Service) ExerciseInfo(id string) (CatalogExercise, bool) {
	return LookupExercise(id)
}

// Exercises returns the full exercise catalog.
func (s *Service) Exercises() []CatalogExercise {
	return ListExercises()
}
