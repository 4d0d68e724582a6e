package training

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/treinapp/treinapp/internal/sqlite"
)

// ErrNotFound is returned when a profile or program does not exist.
var ErrNotFound = errors.New("not found")

// sqliteRepository persists profiles and programs as JSON documents.
type sqliteRepository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

// newSQLiteRepository creates a new SQLite-backed training repository.
func newSQLiteRepository(db *sqlite.Database, logger *slog.Logger) *sqliteRepository {
	return &sqliteRepository{
		db:     db,
		logger: logger,
	}
}

// getProfile retrieves the training profile for a user.
func (r *sqliteRepository) getProfile(ctx context.Context, userID string) (Profile, error) {
	var document string
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT document
		FROM user_profiles
		WHERE user_id = ?`, userID).Scan(&document)
	if errors.Is(err, sql.ErrNoRows) {
		return Profile{}, fmt.Errorf("profile for user %s: %w", userID, ErrNotFound)
	}
	if err != nil {
		return Profile{}, fmt.Errorf("query user profile: %w", err)
	}

	var profile Profile
	if err = json.Unmarshal([]byte(document), &profile); err != nil {
		return Profile{}, fmt.Errorf("unmarshal user profile: %w", err)
	}
	return profile, nil
}

// saveProfile inserts or updates the training profile for a user.
func (r *sqliteRepository) saveProfile(ctx context.Context, profile Profile) error {
	document, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshal user profile: %w", err)
	}

	_, err = r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO user_profiles (user_id, document, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			document = excluded.document,
			updated_at = excluded.updated_at`,
		profile.UserID, string(document), profile.UpdatedAt)
	if err != nil {
		return fmt.Errorf("save user profile: %w", err)
	}
	return nil
}

// saveProgram stores a new program and marks it as the user's active one.
//
// Any previously active program for the same user is deactivated in the same
// transaction so there is at most one active program per user.
func (r *sqliteRepository) saveProgram(ctx context.Context, doc ProgramDocument) error {
	document, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal program: %w", err)
	}

	tx, err := r.db.ReadWrite.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			r.logger.LogAttrs(ctx, slog.LevelError, "failed to rollback transaction",
				slog.Any("error", rollbackErr))
		}
	}()

	if _, err = tx.ExecContext(ctx, `
		UPDATE training_programs SET active = 0, updated_at = ?
		WHERE user_id = ? AND active = 1`,
		doc.UpdatedAt, doc.UserID); err != nil {
		return fmt.Errorf("deactivate previous programs: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `
		INSERT INTO training_programs (id, user_id, active, document, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		doc.ID, doc.UserID, doc.Active, string(document), doc.CreatedAt, doc.UpdatedAt); err != nil {
		return fmt.Errorf("insert program: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// getActiveProgram retrieves the user's currently active program.
func (r *sqliteRepository) getActiveProgram(ctx context.Context, userID string) (ProgramDocument, error) {
	var document string
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT document
		FROM training_programs
		WHERE user_id = ? AND active = 1
		ORDER BY created_at DESC
		LIMIT 1`, userID).Scan(&document)
	if errors.Is(err, sql.ErrNoRows) {
		return ProgramDocument{}, fmt.Errorf("active program for user %s: %w", userID, ErrNotFound)
	}
	if err != nil {
		return ProgramDocument{}, fmt.Errorf("query active program: %w", err)
	}

	var doc ProgramDocument
	if err = json.Unmarshal([]byte(document), &doc); err != nil {
		return ProgramDocument{}, fmt.Errorf("unmarshal program: %w", err)
	}
	return doc, nil
}

// updateProgram overwrites an existing program document.
func (r *sqliteRepository) updateProgram(ctx context.Context, doc ProgramDocument) error {
	document, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal program: %w", err)
	}

	result, err := r.db.ReadWrite.ExecContext(ctx, `
		UPDATE training_programs
		SET document = ?, active = ?, updated_at = ?
		WHERE id = ?`,
		string(document), doc.Active, doc.UpdatedAt, doc.ID)
	if err != nil {
		return fmt.Errorf("update program: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("program %s: %w", doc.ID, ErrNotFound)
	}
	return nil
}
