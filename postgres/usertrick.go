package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/meikuraledutech/tricklog"
)

// CreateUserTrick inserts a user's record for a catalog trick.
// If ut.ID is empty, a UUID is auto-generated.
func (s *PGStore) CreateUserTrick(ctx context.Context, ut *tricklog.UserTrick) (string, error) {
	if ut.ID == "" {
		ut.ID = uuid.NewString()
	}

	_, err := s.db.Exec(ctx,
		`INSERT INTO user_tricks (id, user_id, trick_id, status, stances) VALUES ($1, $2, $3, $4, $5)`,
		ut.ID, ut.UserID, ut.TrickID, ut.Status, ut.Stances,
	)
	if err != nil {
		return "", fmt.Errorf("tricklog: insert user trick: %w", err)
	}

	return ut.ID, nil
}

// GetUserTrick fetches a user trick record by its ID.
// Returns nil, nil if not found.
func (s *PGStore) GetUserTrick(ctx context.Context, userTrickID string) (*tricklog.UserTrick, error) {
	var ut tricklog.UserTrick
	err := s.db.QueryRow(ctx,
		`SELECT id, user_id, trick_id, status, stances FROM user_tricks WHERE id = $1`, userTrickID,
	).Scan(&ut.ID, &ut.UserID, &ut.TrickID, &ut.Status, &ut.Stances)

	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("tricklog: get user trick: %w", err)
	}

	return &ut, nil
}

// UpdateUserTrick updates the status and stances of a user trick record.
// Returns ErrUserTrickNotFound if the record doesn't exist.
func (s *PGStore) UpdateUserTrick(ctx context.Context, ut *tricklog.UserTrick) error {
	ct, err := s.db.Exec(ctx,
		`UPDATE user_tricks SET status = $1, stances = $2 WHERE id = $3`,
		ut.Status, ut.Stances, ut.ID,
	)
	if err != nil {
		return fmt.Errorf("tricklog: update user trick: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return tricklog.ErrUserTrickNotFound
	}
	return nil
}

// DeleteUserTrick deletes a user trick record by its ID.
// No error if the record doesn't exist.
func (s *PGStore) DeleteUserTrick(ctx context.Context, userTrickID string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM user_tricks WHERE id = $1`, userTrickID)
	if err != nil {
		return fmt.Errorf("tricklog: delete user trick: %w", err)
	}
	return nil
}

// ListUserTricks returns all trick records for a user, ordered by created_at.
// Returns an empty slice (not nil) if none found.
func (s *PGStore) ListUserTricks(ctx context.Context, userID string) ([]tricklog.UserTrick, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, user_id, trick_id, status, stances FROM user_tricks WHERE user_id = $1 ORDER BY created_at`, userID)
	if err != nil {
		return nil, fmt.Errorf("tricklog: list user tricks: %w", err)
	}
	defer rows.Close()

	records := []tricklog.UserTrick{}
	for rows.Next() {
		var ut tricklog.UserTrick
		if err := rows.Scan(&ut.ID, &ut.UserID, &ut.TrickID, &ut.Status, &ut.Stances); err != nil {
			return nil, fmt.Errorf("tricklog: scan user trick: %w", err)
		}
		records = append(records, ut)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("tricklog: rows user tricks: %w", err)
	}

	return records, nil
}
