// ABOUTME: SQLite database schema for script history storage
// ABOUTME: Creates all tables and indexes for local persistence
package sqlite

// Schema contains all SQL statements for database initialization
const Schema = `
-- Script history table (one row per finalized generation request)
CREATE TABLE IF NOT EXISTS script_history (
    id TEXT PRIMARY KEY,
    persona_id TEXT NOT NULL,
    topic TEXT NOT NULL,
    request TEXT NOT NULL,
    text TEXT NOT NULL,
    quality REAL NOT NULL,
    personalization REAL NOT NULL,
    viral REAL NOT NULL,
    viral_grade TEXT,
    scores TEXT NOT NULL,
    polished INTEGER NOT NULL DEFAULT 0,
    attempts INTEGER NOT NULL DEFAULT 0,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Indexes for efficient querying
CREATE INDEX IF NOT EXISTS idx_history_persona ON script_history(persona_id);
CREATE INDEX IF NOT EXISTS idx_history_created ON script_history(created_at);
CREATE INDEX IF NOT EXISTS idx_history_topic ON script_history(topic);
`

// SchemaVersion is the current schema version for migrations
const SchemaVersion = 1
