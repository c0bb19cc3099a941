package store

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
// Each migration's version must be sequential starting from 1.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS sessions (
	id               TEXT PRIMARY KEY,
	session_id       TEXT NOT NULL UNIQUE,
	action_type      TEXT NOT NULL,
	content          TEXT NOT NULL DEFAULT '',
	task_kind        TEXT NOT NULL DEFAULT '',
	deep_link        TEXT NOT NULL DEFAULT '',
	duration_seconds INTEGER NOT NULL,
	outcome          TEXT NOT NULL,
	started_at       DATETIME NOT NULL,
	ended_at         DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sessions_ended_at ON sessions(ended_at);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
	{
		version: 2,
		sql: `
CREATE INDEX IF NOT EXISTS idx_sessions_outcome ON sessions(outcome);
CREATE INDEX IF NOT EXISTS idx_sessions_action_type ON sessions(action_type);

INSERT INTO schema_version (version) VALUES (2);
`,
	},
}
