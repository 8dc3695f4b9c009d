package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/artem13815/interview/pkg/interview"
)

// KeyPrefix namespaces state documents in a shared Redis.
const KeyPrefix = "interview:state:"

// StateRepository keeps the application state as one JSON string value.
type StateRepository struct {
	rdb goredis.Cmdable
	key string
}

func NewStateRepository(rdb goredis.Cmdable, key string) *StateRepository {
	return &StateRepository{rdb: rdb, key: KeyPrefix + key}
}

func (r *StateRepository) Load(ctx context.Context) (interview.State, bool, error) {
	raw, err := r.rdb.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
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
	if err := r.rdb.Set(ctx, r.key, raw, 0).Err(); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}
