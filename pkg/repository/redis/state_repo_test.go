package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/interview/pkg/interview"
)

// fakeRedis implements only GET and SET; other commands panic through the nil embed.
type fakeRedis struct {
	goredis.Cmdable
	data   map[string]string
	getErr error
}

func (f *fakeRedis) Get(_ context.Context, key string) *goredis.StringCmd {
	if f.getErr != nil {
		return goredis.NewStringResult("", f.getErr)
	}
	v, ok := f.data[key]
	if !ok {
		return goredis.NewStringResult("", goredis.Nil)
	}
	return goredis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value any, _ time.Duration) *goredis.StatusCmd {
	f.data[key] = string(value.([]byte))
	return goredis.NewStatusResult("OK", nil)
}

func TestStateRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	rdb := &fakeRedis{data: map[string]string{}}
	repo := NewStateRepository(rdb, "root")

	_, ok, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	state := interview.State{
		Candidates:          []interview.Candidate{{ID: "c1", Name: "Jane Doe", InterviewStatus: interview.StatusNotStarted}},
		SelectedCandidateID: "c1",
	}
	require.NoError(t, repo.Save(ctx, state))
	assert.Contains(t, rdb.data, "interview:state:root")

	got, ok, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Jane Doe", got.Candidates[0].Name)
	assert.Equal(t, "c1", got.SelectedCandidateID)
}

func TestStateRepository_Errors(t *testing.T) {
	ctx := context.Background()

	_, _, err := NewStateRepository(&fakeRedis{getErr: errors.New("connection reset")}, "k").Load(ctx)
	assert.ErrorContains(t, err, "load state")

	bad := &fakeRedis{data: map[string]string{KeyPrefix + "k": "{not json"}}
	_, _, err = NewStateRepository(bad, "k").Load(ctx)
	assert.ErrorContains(t, err, "decode state")
}
