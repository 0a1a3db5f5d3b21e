package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/meikuraledutech/tricklog"
)

// CreateSession inserts a practice session. If s.ID is empty, a UUID is
// auto-generated; a zero StartedAt defaults to now.
func (s *PGStore) CreateSession(ctx context.Context, sess *tricklog.Session) (string, error) {
	if sess.ID == "" {
		sess.ID = uuid.NewString()
	}
	if sess.StartedAt.IsZero() {
		sess.StartedAt = time.Now()
	}

	_, err := s.db.Exec(ctx,
		`INSERT INTO sessions (id, user_id, started_at, location, notes) VALUES ($1, $2, $3, $4, $5)`,
		sess.ID, sess.UserID, sess.StartedAt, sess.Location, sess.Notes,
	)
	if err != nil {
		return "", fmt.Errorf("tricklog: insert session: %w", err)
	}

	return sess.ID, nil
}

// GetSession fetches a session by its ID.
// Returns nil, nil if not found.
func (s *PGStore) GetSession(ctx context.Context, sessionID string) (*tricklog.Session, error) {
	var sess tricklog.Session
	err := s.db.QueryRow(ctx,
		`SELECT id, user_id, started_at, location, notes FROM sessions WHERE id = $1`, sessionID,
	).Scan(&sess.ID, &sess.UserID, &sess.StartedAt, &sess.Location, &sess.Notes)

	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("tricklog: get session: %w", err)
	}

	return &sess, nil
}

// UpdateSession updates a session's started_at, location and notes.
// Returns ErrSessionNotFound if the session doesn't exist.
func (s *PGStore) UpdateSession(ctx context.Context, sess *tricklog.Session) error {
	ct, err := s.db.Exec(ctx,
		`UPDATE sessions SET started_at = $1, location = $2, notes = $3 WHERE id = $4`,
		sess.StartedAt, sess.Location, sess.Notes, sess.ID,
	)
	if err != nil {
		return fmt.Errorf("tricklog: update session: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return tricklog.ErrSessionNotFound
	}
	return nil
}

// DeleteSession deletes a session by its ID.
// No error if the session doesn't exist.
func (s *PGStore) DeleteSession(ctx context.Context, sessionID string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, sessionID)
	if err != nil {
		return fmt.Errorf("tricklog: delete session: %w", err)
	}
	return nil
}

// ListSessions returns all sessions for a user, most recent first.
// Returns an empty slice (not nil) if none found.
func (s *PGStore) ListSessions(ctx context.Context, userID string) ([]tricklog.Session, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, user_id, started_at, location, notes FROM sessions WHERE user_id = $1 ORDER BY started_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("tricklog: list sessions: %w", err)
	}
	defer rows.Close()

	sessions := []tricklog.Session{}
	for rows.Next() {
		var sess tricklog.Session
		if err := rows.Scan(&sess.ID, &sess.UserID, &sess.StartedAt, &sess.Location, &sess.Notes); err != nil {
			return nil, fmt.Errorf("tricklog: scan session: %w", err)
		}
		sessions = append(sessions, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("tricklog: rows sessions: %w", err)
	}

	return sessions, nil
}
