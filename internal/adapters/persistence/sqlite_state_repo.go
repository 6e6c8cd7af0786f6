package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// SQLiteStateRepository implementa ports.StateRepository sobre a tabela
// app_state (chave/valor com payload JSON).
type SQLiteStateRepository struct {
	db *sql.DB
}

func NewSQLiteStateRepository(db *sql.DB) *SQLiteStateRepository {
	return &SQLiteStateRepository{db: db}
}

func (r *SQLiteStateRepository) Get(ctx context.Context, key string, dest any) (bool, error) {
	query := `SELECT value FROM app_state WHERE key = ?`
	row := r.db.QueryRowContext(ctx, query, key)

	var raw string
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil // Chave ausente (sem erro)
		}
		return false, err
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, fmt.Errorf("estado corrompido na chave %q: %w", key, err)
	}
	return true, nil
}

func (r *SQLiteStateRepository) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("serializar estado da chave %q: %w", key, err)
	}

	query := `
		INSERT INTO app_state (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	_, err = r.db.ExecContext(ctx, query, key, string(raw), time.Now().UTC().Format(time.RFC3339))
	return err
}
