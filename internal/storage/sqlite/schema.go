package sqlite

// initSchema creates the database schema if it doesn't exist.
func (db *DB) initSchema() error {
	schema := `
	-- Words added by the user on top of the built-in vocabulary
	CREATE TABLE IF NOT EXISTS user_words (
		word TEXT PRIMARY KEY,
		added_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	-- Files opened or saved from the editor
	CREATE TABLE IF NOT EXISTS recent_files (
		path TEXT PRIMARY KEY,
		size_bytes INTEGER NOT NULL DEFAULT 0,
		last_used DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_recent_files_last_used ON recent_files(last_used DESC);
	`

	_, err := db.conn.Exec(schema)
	return err
}
