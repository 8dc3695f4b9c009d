package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/interview/pkg/interview"
)

// StateRepository хранит состояние приложения одним JSONB-документом под ключом.
type StateRepository struct {
	pool *pgxpool.Pool
	key  string
}

func NewStateRepository(pool *pgxpool.Pool, key string) (*StateRepository, error) {
	r := &StateRepository{pool: pool, key: key}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *StateRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS app_state (
	key TEXT PRIMARY KEY,
	state JSONB NOT NULL,
	version BIGINT NOT NULL DEFAULT 1,
	updated_at TIMESTAMPTZ NOT NULL
);
`)
	return err
}

func (r *StateRepository) Load(ctx context.Context) (interview.State, bool, error) {
	var raw []byte
	err := r.pool.QueryRow(ctx, `SELECT state FROM app_state WHERE key = $1`, r.key).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return interview.State{}, false, nil
		}
		return interview.State{}, false, fmt.Errorf("load state: %w", err)
	}
	var s interview.State
	if err := json.Unmarshal(raw, &s); err != nil {
		return interview.State{}, false, fmt.Errorf("decode state: %w", err)
	}
	return s, true, nil
}

func (r *StateRepository) Save(ctx context.Context, s interview.State) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO app_state (key, state, updated_at)
VALUES ($1, $2, $3)
ON CONFLICT (key) DO UPDATE
SET state = EXCLUDED.state, version = app_state.version + 1, updated_at = EXCLUDED.updated_at
`, r.key, raw, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}
