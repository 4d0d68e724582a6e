package nutrition

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/treinapp/treinapp/internal/contexthelpers"
	"github.com/treinapp/treinapp/internal/sqlite"
)

// ErrNotFound is returned when a user has no stored nutrition plan.
var ErrNotFound = errors.New("not found")

// Service computes and persists nutrition plans.
type Service struct {
	db     *sqlite.Database
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a new nutrition service.
func NewService(db *sqlite.Database, logger *slog.Logger) *Service {
	return &Service{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// CreatePlan derives a plan from the input and stores it for the
// authenticated user, replacing any previous plan.
func (s *Service) CreatePlan(ctx context.Context, input Input) (PlanDocument, error) {
	userID := contexthelpers.CurrentUserID(ctx)
	if userID == "" {
		return PlanDocument{}, fmt.Errorf("no user in context: %w", ErrNotFound)
	}

	now := s.now()
	doc := PlanDocument{
		Plan:      NewPlan(input, now),
		UserID:    userID,
		Input:     input,
		UpdatedAt: now,
	}

	document, err := json.Marshal(doc)
	if err != nil {
		return PlanDocument{}, fmt.Errorf("marshal nutrition plan: %w", err)
	}

	if _, err = s.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO nutrition_plans (user_id, document, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			document = excluded.document,
			updated_at = excluded.updated_at`,
		userID, string(document), now); err != nil {
		return PlanDocument{}, fmt.Errorf("save nutrition plan: %w", err)
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "created nutrition plan",
		slog.Int("calories", doc.Calories),
		slog.Int("meals", doc.Meals))

	return doc, nil
}

// Plan retrieves the stored nutrition plan for the authenticated user.
func (s *Service) Plan(ctx context.Context) (PlanDocument, error) {
	userID := contexthelpers.CurrentUserID(ctx)

	var document string
	err := s.db.ReadOnly.QueryRowContext(ctx, `
		SELECT document
		FROM nutrition_plans
		WHERE user_id = ?`, userID).Scan(&document)
	if errors.Is(err, sql.ErrNoRows) {
		return PlanDocument{}, fmt.Errorf("nutrition plan for user %s: %w", userID, ErrNotFound)
	}
	if err != nil {
		return PlanDocument{}, fmt.Errorf("query nutrition plan: %w", err)
	}

	var doc PlanDocument
	if err = json.Unmarshal([]byte(document), &doc); err != nil {
		return PlanDocument{}, fmt.Errorf("unmarshal nutrition plan: %w", err)
	}
	return doc, nil
}
