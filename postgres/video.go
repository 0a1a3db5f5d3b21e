package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/meikuraledutech/tricklog"
)

// CreateVideo inserts a video metadata record. If v.ID is empty, a UUID is
// auto-generated; a zero UploadedAt defaults to now.
func (s *PGStore) CreateVideo(ctx context.Context, v *tricklog.Video) (string, error) {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	if v.UploadedAt.IsZero() {
		v.UploadedAt = time.Now()
	}

	_, err := s.db.Exec(ctx,
		`INSERT INTO videos (id, user_id, trick_id, combo_id, session_id, url, thumbnail_url, uploaded_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		v.ID, v.UserID, v.TrickID, v.ComboID, v.SessionID, v.URL, v.ThumbnailURL, v.UploadedAt,
	)
	if err != nil {
		return "", fmt.Errorf("tricklog: insert video: %w", err)
	}

	return v.ID, nil
}

// GetVideo fetches a video record by its ID.
// Returns nil, nil if not found.
func (s *PGStore) GetVideo(ctx context.Context, videoID string) (*tricklog.Video, error) {
	var v tricklog.Video
	err := s.db.QueryRow(ctx,
		`SELECT id, user_id, trick_id, combo_id, session_id, url, thumbnail_url, uploaded_at
		 FROM videos WHERE id = $1`, videoID,
	).Scan(&v.ID, &v.UserID, &v.TrickID, &v.ComboID, &v.SessionID, &v.URL, &v.ThumbnailURL, &v.UploadedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("tricklog: get video: %w", err)
	}

	return &v, nil
}

// UpdateVideo updates a video record's associations and URLs.
// Returns ErrVideoNotFound if the record doesn't exist.
func (s *PGStore) UpdateVideo(ctx context.Context, v *tricklog.Video) error {
	ct, err := s.db.Exec(ctx,
		`UPDATE videos SET trick_id = $1, combo_id = $2, session_id = $3, url = $4, thumbnail_url = $5
		 WHERE id = $6`,
		v.TrickID, v.ComboID, v.SessionID, v.URL, v.ThumbnailURL, v.ID,
	)
	if err != nil {
		return fmt.Errorf("tricklog: update video: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return tricklog.ErrVideoNotFound
	}
	return nil
}

// DeleteVideo deletes a video record by its ID.
// No error if the record doesn't exist.
func (s *PGStore) DeleteVideo(ctx context.Context, videoID string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM videos WHERE id = $1`, videoID)
	if err != nil {
		return fmt.Errorf("tricklog: delete video: %w", err)
	}
	return nil
}

// ListVideos returns all video records for a user, most recent first.
// Returns an empty slice (not nil) if none found.
func (s *PGStore) ListVideos(ctx context.Context, userID string) ([]tricklog.Video, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, user_id, trick_id, combo_id, session_id, url, thumbnail_url, uploaded_at
		 FROM videos WHERE user_id = $1 ORDER BY uploaded_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("tricklog: list videos: %w", err)
	}
	defer rows.Close()

	videos := []tricklog.Video{}
	for rows.Next() {
		var v tricklog.Video
		if err := rows.Scan(&v.ID, &v.UserID, &v.TrickID, &v.ComboID, &v.SessionID, &v.URL, &v.ThumbnailURL, &v.UploadedAt); err != nil {
			return nil, fmt.Errorf("tricklog: scan video: %w", err)
		}
		videos = append(videos, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("tricklog: rows videos: %w", err)
	}

	return videos, nil
}
