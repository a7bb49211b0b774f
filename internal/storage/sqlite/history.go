// ABOUTME: Script history persistence for SQLite
// ABOUTME: Stores the winning script and frozen scores per request
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harper/scriptwriter/internal/models"
)

// HistoryStore handles script record persistence
type HistoryStore struct {
	db *DB
}

// NewHistoryStore creates a new HistoryStore
func NewHistoryStore(db *DB) *HistoryStore {
	return &HistoryStore{db: db}
}

// Save persists a script record. Scores are frozen as written and never
// recomputed on read.
func (s *HistoryStore) Save(ctx context.Context, record *models.ScriptRecord) error {
	requestJSON, err := json.Marshal(record.Request)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}
	scoresJSON, err := json.Marshal(record.Scores)
	if err != nil {
		return fmt.Errorf("failed to marshal scores: %w", err)
	}

	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err = s.db.conn.ExecContext(ctx, `
		INSERT INTO script_history (id, persona_id, topic, request, text, quality, personalization, viral, viral_grade, scores, polished, attempts, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			text = excluded.text,
			scores = excluded.scores,
			quality = excluded.quality,
			personalization = excluded.personalization,
			viral = excluded.viral,
			viral_grade = excluded.viral_grade,
			polished = excluded.polished
	`, record.ID, record.PersonaID, record.Request.Topic, string(requestJSON), record.Text,
		record.Scores.Quality, record.Scores.Personalization, record.Scores.Viral,
		record.Scores.ViralGrade, string(scoresJSON), record.Polished, record.Attempts, createdAt)

	return err
}

// GetByID retrieves a script record by its ID, or nil if not found
func (s *HistoryStore) GetByID(ctx context.Context, id string) (*models.ScriptRecord, error) {
	row := s.db.conn.QueryRowContext(ctx, `
		SELECT id, persona_id, request, text, scores, polished, attempts, created_at
		FROM script_history
		WHERE id = ?
	`, id)

	record, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return record, err
}

// List returns records newest first, optionally filtered by persona.
// A limit <= 0 means no limit.
func (s *HistoryStore) List(ctx context.Context, personaID string, limit int) ([]*models.ScriptRecord, error) {
	query := `
		SELECT id, persona_id, request, text, scores, polished, attempts, created_at
		FROM script_history
	`
	var args []interface{}
	if personaID != "" {
		query += " WHERE persona_id = ?"
		args = append(args, personaID)
	}
	query += " ORDER BY created_at DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var records []*models.ScriptRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// Delete removes a record by ID
func (s *HistoryStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.conn.ExecContext(ctx, `DELETE FROM script_history WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("record not found: %s", id)
	}
	return nil
}

// Count returns the number of stored records
func (s *HistoryStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM script_history`).Scan(&count)
	return count, err
}

// scanner abstracts sql.Row and sql.Rows for shared scanning
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(row scanner) (*models.ScriptRecord, error) {
	var (
		record      models.ScriptRecord
		requestJSON string
		scoresJSON  string
	)

	err := row.Scan(&record.ID, &record.PersonaID, &requestJSON, &record.Text,
		&scoresJSON, &record.Polished, &record.Attempts, &record.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(requestJSON), &record.Request); err != nil {
		return nil, fmt.Errorf("failed to parse stored request: %w", err)
	}
	if err := json.Unmarshal([]byte(scoresJSON), &record.Scores); err != nil {
		return nil, fmt.Errorf("failed to parse stored scores: %w", err)
	}

	return &record, nil
}
