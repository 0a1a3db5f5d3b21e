package postgres

import "context"

const schemaSQL = `
CREATE TABLE IF NOT EXISTS tricks (
    id         TEXT PRIMARY KEY,
    name       TEXT NOT NULL,
    categories TEXT[] NOT NULL DEFAULT '{}',
    difficulty INT NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS user_tricks (
    id         TEXT PRIMARY KEY,
    user_id    TEXT NOT NULL,
    trick_id   TEXT NOT NULL REFERENCES tricks(id) ON DELETE CASCADE,
    status     TEXT NOT NULL DEFAULT '',
    stances    TEXT[] NOT NULL DEFAULT '{}',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS combos (
    id         TEXT PRIMARY KEY,
    user_id    TEXT NOT NULL,
    name       TEXT NOT NULL DEFAULT '',
    graph      JSONB NOT NULL DEFAULT '{"nodes":[],"edges":[]}',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS sessions (
    id         TEXT PRIMARY KEY,
    user_id    TEXT NOT NULL,
    started_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    location   TEXT NOT NULL DEFAULT '',
    notes      TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS practice_logs (
    id         TEXT PRIMARY KEY,
    user_id    TEXT NOT NULL,
    session_id TEXT NOT NULL DEFAULT '',
    trick_id   TEXT NOT NULL DEFAULT '',
    combo_id   TEXT NOT NULL DEFAULT '',
    attempts   INT NOT NULL DEFAULT 0,
    lands      INT NOT NULL DEFAULT 0,
    logged_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS videos (
    id            TEXT PRIMARY KEY,
    user_id       TEXT NOT NULL,
    trick_id      TEXT NOT NULL DEFAULT '',
    combo_id      TEXT NOT NULL DEFAULT '',
    session_id    TEXT NOT NULL DEFAULT '',
    url           TEXT NOT NULL,
    thumbnail_url TEXT NOT NULL DEFAULT '',
    uploaded_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_user_tricks_user_id   ON user_tricks(user_id);
CREATE INDEX IF NOT EXISTS idx_combos_user_id        ON combos(user_id);
CREATE INDEX IF NOT EXISTS idx_sessions_user_id      ON sessions(user_id);
CREATE INDEX IF NOT EXISTS idx_practice_logs_user_id ON practice_logs(user_id);
CREATE INDEX IF NOT EXISTS idx_practice_logs_session ON practice_logs(session_id);
CREATE INDEX IF NOT EXISTS idx_videos_user_id        ON videos(user_id);
`

// CreateSchema creates all tricklog tables if they don't exist.
func (s *PGStore) CreateSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, schemaSQL)
	return err
}

// DropSchema drops all tricklog tables.
func (s *PGStore) DropSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx,
		`DROP TABLE IF EXISTS videos, practice_logs, sessions, combos, user_tricks, tricks CASCADE;`)
	return err
}
