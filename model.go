package tricklog

import "time"

// Trick is a catalog entry for a single named movement.
type Trick struct {
	ID         string   `json:"id,omitempty"`
	Name       string   `json:"name"`
	Categories []string `json:"categories,omitempty"`
	Difficulty int      `json:"difficulty,omitempty"`
}

// UserTrick is one user's record for a catalog trick: progress status and
// the landing stances they have hit it with.
type UserTrick struct {
	ID      string   `json:"id,omitempty"`
	UserID  string   `json:"user_id"`
	TrickID string   `json:"trick_id"`
	Status  string   `json:"status,omitempty"`
	Stances []string `json:"stances,omitempty"`
}

// Combo is a user-built sequence of tricks, persisted in graph form.
type Combo struct {
	ID     string     `json:"id,omitempty"`
	UserID string     `json:"user_id"`
	Name   string     `json:"name,omitempty"`
	Graph  ComboGraph `json:"graph"`
}

// Session is one practice session.
type Session struct {
	ID        string    `json:"id,omitempty"`
	UserID    string    `json:"user_id"`
	StartedAt time.Time `json:"started_at,omitzero"`
	Location  string    `json:"location,omitempty"`
	Notes     string    `json:"notes,omitempty"`
}

// PracticeLog records attempts and lands for a trick or combo, optionally
// within a session. Exactly one of TrickID/ComboID is normally set.
type PracticeLog struct {
	ID        string    `json:"id,omitempty"`
	UserID    string    `json:"user_id"`
	SessionID string    `json:"session_id,omitempty"`
	TrickID   string    `json:"trick_id,omitempty"`
	ComboID   string    `json:"combo_id,omitempty"`
	Attempts  int       `json:"attempts"`
	Lands     int       `json:"lands"`
	LoggedAt  time.Time `json:"logged_at,omitzero"`
}

// Video is the metadata record for an uploaded clip. Storage and encoding of
// the bytes themselves live elsewhere; this layer only tracks the URLs.
type Video struct {
	ID           string    `json:"id,omitempty"`
	UserID       string    `json:"user_id"`
	TrickID      string    `json:"trick_id,omitempty"`
	ComboID      string    `json:"combo_id,omitempty"`
	SessionID    string    `json:"session_id,omitempty"`
	URL          string    `json:"url"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	UploadedAt   time.Time `json:"uploaded_at,omitzero"`
}
