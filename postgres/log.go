package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/meikuraledutech/tricklog"
)

// CreateLog inserts a practice log entry. If l.ID is empty, a UUID is
// auto-generated; a zero LoggedAt defaults to now.
func (s *PGStore) CreateLog(ctx context.Context, l *tricklog.PracticeLog) (string, error) {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.LoggedAt.IsZero() {
		l.LoggedAt = time.Now()
	}

	_, err := s.db.Exec(ctx,
		`INSERT INTO practice_logs (id, user_id, session_id, trick_id, combo_id, attempts, lands, logged_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		l.ID, l.UserID, l.SessionID, l.TrickID, l.ComboID, l.Attempts, l.Lands, l.LoggedAt,
	)
	if err != nil {
		return "", fmt.Errorf("tricklog: insert log: %w", err)
	}

	return l.ID, nil
}

// GetLog fetches a practice log entry by its ID.
// Returns nil, nil if not found.
func (s *PGStore) GetLog(ctx context.Context, logID string) (*tricklog.PracticeLog, error) {
	var l tricklog.PracticeLog
	err := s.db.QueryRow(ctx,
		`SELECT id, user_id, session_id, trick_id, combo_id, attempts, lands, logged_at
		 FROM practice_logs WHERE id = $1`, logID,
	).Scan(&l.ID, &l.UserID, &l.SessionID, &l.TrickID, &l.ComboID, &l.Attempts, &l.Lands, &l.LoggedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("tricklog: get log: %w", err)
	}

	return &l, nil
}

// UpdateLog updates a practice log entry's counts and timestamps.
// Returns ErrLogNotFound if the entry doesn't exist.
func (s *PGStore) UpdateLog(ctx context.Context, l *tricklog.PracticeLog) error {
	ct, err := s.db.Exec(ctx,
		`UPDATE practice_logs SET session_id = $1, trick_id = $2, combo_id = $3, attempts = $4, lands = $5, logged_at = $6
		 WHERE id = $7`,
		l.SessionID, l.TrickID, l.ComboID, l.Attempts, l.Lands, l.LoggedAt, l.ID,
	)
	if err != nil {
		return fmt.Errorf("tricklog: update log: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return tricklog.ErrLogNotFound
	}
	return nil
}

// DeleteLog deletes a practice log entry by its ID.
// No error if the entry doesn't exist.
func (s *PGStore) DeleteLog(ctx context.Context, logID string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM practice_logs WHERE id = $1`, logID)
	if err != nil {
		return fmt.Errorf("tricklog: delete log: %w", err)
	}
	return nil
}

// ListLogs returns all practice log entries for a user, most recent first.
// Returns an empty slice (not nil) if none found.
func (s *PGStore) ListLogs(ctx context.Context, userID string) ([]tricklog.PracticeLog, error) {
	return s.listLogs(ctx, `user_id`, userID)
}

// ListSessionLogs returns all practice log entries within a session, most
// recent first. Returns an empty slice (not nil) if none found.
func (s *PGStore) ListSessionLogs(ctx context.Context, sessionID string) ([]tricklog.PracticeLog, error) {
	return s.listLogs(ctx, `session_id`, sessionID)
}

func (s *PGStore) listLogs(ctx context.Context, column, value string) ([]tricklog.PracticeLog, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, user_id, session_id, trick_id, combo_id, attempts, lands, logged_at
		 FROM practice_logs WHERE `+column+` = $1 ORDER BY logged_at DESC`, value)
	if err != nil {
		return nil, fmt.Errorf("tricklog: list logs: %w", err)
	}
	defer rows.Close()

	logs := []tricklog.PracticeLog{}
	for rows.Next() {
		var l tricklog.PracticeLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.SessionID, &l.TrickID, &l.ComboID, &l.Attempts, &l.Lands, &l.LoggedAt); err != nil {
			return nil, fmt.Errorf("tricklog: scan log: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("tricklog: rows logs: %w", err)
	}

	return logs, nil
}
