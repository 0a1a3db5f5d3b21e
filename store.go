package tricklog

import (
	"context"
	"errors"
)

var (
	ErrInvalidGraph      = errors.New("tricklog: invalid combo graph")
	ErrTrickNotFound     = errors.New("tricklog: trick not found")
	ErrUserTrickNotFound = errors.New("tricklog: user trick not found")
	ErrComboNotFound     = errors.New("tricklog: combo not found")
	ErrSessionNotFound   = errors.New("tricklog: session not found")
	ErrLogNotFound       = errors.New("tricklog: practice log not found")
	ErrVideoNotFound     = errors.New("tricklog: video not found")
)

// Store defines the contract for persisting and retrieving practice data.
// Get methods return nil, nil when the record doesn't exist; Update methods
// return the matching not-found sentinel; Delete is idempotent.
type Store interface {
	// Schema
	CreateSchema(ctx context.Context) error
	DropSchema(ctx context.Context) error

	// Trick catalog
	CreateTrick(ctx context.Context, t *Trick) (string, error)
	GetTrick(ctx context.Context, trickID string) (*Trick, error)
	UpdateTrick(ctx context.Context, t *Trick) error
	DeleteTrick(ctx context.Context, trickID string) error
	ListTricks(ctx context.Context) ([]Trick, error)

	// User trick records
	CreateUserTrick(ctx context.Context, ut *UserTrick) (string, error)
	GetUserTrick(ctx context.Context, userTrickID string) (*UserTrick, error)
	UpdateUserTrick(ctx context.Context, ut *UserTrick) error
	DeleteUserTrick(ctx context.Context, userTrickID string) error
	ListUserTricks(ctx context.Context, userID string) ([]UserTrick, error)

	// Combos (graph stored as a JSONB document, validated on both sides)
	CreateCombo(ctx context.Context, c *Combo) (string, error)
	GetCombo(ctx context.Context, comboID string) (*Combo, error)
	UpdateCombo(ctx context.Context, c *Combo) error
	DeleteCombo(ctx context.Context, comboID string) error
	ListCombos(ctx context.Context, userID string) ([]Combo, error)

	// Sessions
	CreateSession(ctx context.Context, s *Session) (string, error)
	GetSession(ctx context.Context, sessionID string) (*Session, error)
	UpdateSession(ctx context.Context, s *Session) error
	DeleteSession(ctx context.Context, sessionID string) error
	ListSessions(ctx context.Context, userID string) ([]Session, error)

	// Practice logs
	CreateLog(ctx context.Context, l *PracticeLog) (string, error)
	GetLog(ctx context.Context, logID string) (*PracticeLog, error)
	UpdateLog(ctx context.Context, l *PracticeLog) error
	DeleteLog(ctx context.Context, logID string) error
	ListLogs(ctx context.Context, userID string) ([]PracticeLog, error)
	ListSessionLogs(ctx context.Context, sessionID string) ([]PracticeLog, error)

	// Videos
	CreateVideo(ctx context.Context, v *Video) (string, error)
	GetVideo(ctx context.Context, videoID string) (*Video, error)
	UpdateVideo(ctx context.Context, v *Video) error
	DeleteVideo(ctx context.Context, videoID string) error
	ListVideos(ctx context.Context, userID string) ([]Video, error)
}
