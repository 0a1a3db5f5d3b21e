package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/meikuraledutech/tricklog"
)

// CreateCombo inserts a combo with its graph stored as a JSONB document.
// The graph is validated before anything is written; a malformed graph
// fails with ErrInvalidGraph. If c.ID is empty, a UUID is auto-generated.
func (s *PGStore) CreateCombo(ctx context.Context, c *tricklog.Combo) (string, error) {
	if err := c.Graph.Validate(); err != nil {
		return "", err
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}

	_, err := s.db.Exec(ctx,
		`INSERT INTO combos (id, user_id, name, graph) VALUES ($1, $2, $3, $4)`,
		c.ID, c.UserID, c.Name, c.Graph,
	)
	if err != nil {
		return "", fmt.Errorf("tricklog: insert combo: %w", err)
	}

	return c.ID, nil
}

// GetCombo fetches a combo by its ID. The graph read back from storage is
// validated before being returned, so callers never see a malformed graph.
// Returns nil, nil if not found.
func (s *PGStore) GetCombo(ctx context.Context, comboID string) (*tricklog.Combo, error) {
	var c tricklog.Combo
	err := s.db.QueryRow(ctx,
		`SELECT id, user_id, name, graph FROM combos WHERE id = $1`, comboID,
	).Scan(&c.ID, &c.UserID, &c.Name, &c.Graph)

	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("tricklog: get combo: %w", err)
	}

	if err := c.Graph.Validate(); err != nil {
		return nil, fmt.Errorf("tricklog: stored combo %s: %w", c.ID, err)
	}

	return &c, nil
}

// UpdateCombo updates a combo's name and graph.
// The graph is validated first; returns ErrComboNotFound if the combo
// doesn't exist.
func (s *PGStore) UpdateCombo(ctx context.Context, c *tricklog.Combo) error {
	if err := c.Graph.Validate(); err != nil {
		return err
	}

	ct, err := s.db.Exec(ctx,
		`UPDATE combos SET name = $1, graph = $2 WHERE id = $3`,
		c.Name, c.Graph, c.ID,
	)
	if err != nil {
		return fmt.Errorf("tricklog: update combo: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return tricklog.ErrComboNotFound
	}
	return nil
}

// DeleteCombo deletes a combo by its ID.
// No error if the combo doesn't exist.
func (s *PGStore) DeleteCombo(ctx context.Context, comboID string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM combos WHERE id = $1`, comboID)
	if err != nil {
		return fmt.Errorf("tricklog: delete combo: %w", err)
	}
	return nil
}

// ListCombos returns all combos for a user, ordered by created_at.
// Graphs are validated on the way out. Returns an empty slice (not nil) if
// none found.
func (s *PGStore) ListCombos(ctx context.Context, userID string) ([]tricklog.Combo, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, user_id, name, graph FROM combos WHERE user_id = $1 ORDER BY created_at`, userID)
	if err != nil {
		return nil, fmt.Errorf("tricklog: list combos: %w", err)
	}
	defer rows.Close()

	combos := []tricklog.Combo{}
	for rows.Next() {
		var c tricklog.Combo
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Graph); err != nil {
			return nil, fmt.Errorf("tricklog: scan combo: %w", err)
		}
		if err := c.Graph.Validate(); err != nil {
			return nil, fmt.Errorf("tricklog: stored combo %s: %w", c.ID, err)
		}
		combos = append(combos, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("tricklog: rows combos: %w", err)
	}

	return combos, nil
}
