package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/meikuraledutech/tricklog"
)

// CreateTrick inserts a catalog trick. If t.ID is empty, a UUID is
// auto-generated. Returns the trick ID (generated or provided).
func (s *PGStore) CreateTrick(ctx context.Context, t *tricklog.Trick) (string, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}

	_, err := s.db.Exec(ctx,
		`INSERT INTO tricks (id, name, categories, difficulty) VALUES ($1, $2, $3, $4)`,
		t.ID, t.Name, t.Categories, t.Difficulty,
	)
	if err != nil {
		return "", fmt.Errorf("tricklog: insert trick: %w", err)
	}

	return t.ID, nil
}

// GetTrick fetches a catalog trick by its ID.
// Returns nil, nil if not found.
func (s *PGStore) GetTrick(ctx context.Context, trickID string) (*tricklog.Trick, error) {
	var t tricklog.Trick
	err := s.db.QueryRow(ctx,
		`SELECT id, name, categories, difficulty FROM tricks WHERE id = $1`, trickID,
	).Scan(&t.ID, &t.Name, &t.Categories, &t.Difficulty)

	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("tricklog: get trick: %w", err)
	}

	return &t, nil
}

// UpdateTrick updates an existing catalog trick.
// Returns ErrTrickNotFound if the trick doesn't exist.
func (s *PGStore) UpdateTrick(ctx context.Context, t *tricklog.Trick) error {
	ct, err := s.db.Exec(ctx,
		`UPDATE tricks SET name = $1, categories = $2, difficulty = $3 WHERE id = $4`,
		t.Name, t.Categories, t.Difficulty, t.ID,
	)
	if err != nil {
		return fmt.Errorf("tricklog: update trick: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return tricklog.ErrTrickNotFound
	}
	return nil
}

// DeleteTrick deletes a catalog trick by its ID.
// User trick records referencing it are cascade-deleted by the DB.
// No error if the trick doesn't exist.
func (s *PGStore) DeleteTrick(ctx context.Context, trickID string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM tricks WHERE id = $1`, trickID)
	if err != nil {
		return fmt.Errorf("tricklog: delete trick: %w", err)
	}
	return nil
}

// ListTricks returns the whole trick catalog, ordered by name.
// Returns an empty slice (not nil) if none found.
func (s *PGStore) ListTricks(ctx context.Context) ([]tricklog.Trick, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, name, categories, difficulty FROM tricks ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("tricklog: list tricks: %w", err)
	}
	defer rows.Close()

	tricks := []tricklog.Trick{}
	for rows.Next() {
		var t tricklog.Trick
		if err := rows.Scan(&t.ID, &t.Name, &t.Categories, &t.Difficulty); err != nil {
			return nil, fmt.Errorf("tricklog: scan trick: %w", err)
		}
		tricks = append(tricks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("tricklog: rows tricks: %w", err)
	}

	return tricks, nil
}
