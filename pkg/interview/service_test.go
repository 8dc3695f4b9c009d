package interview

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/interview/pkg/evaluation"
)

type fakeEvaluator struct {
	mu        sync.Mutex
	scores    []int
	summary   string
	fallback  bool
	gate      chan struct{}
	evaluated []string
}

func (f *fakeEvaluator) GenerateQuestions(context.Context) evaluation.Result[[]evaluation.Question] {
	return evaluation.Result[[]evaluation.Question]{Value: evaluation.DefaultBank(), Fallback: f.fallback}
}

func (f *fakeEvaluator) EvaluateAnswer(_ context.Context, q evaluation.Question, _ string) evaluation.Result[int] {
	if f.gate != nil {
		<-f.gate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.evaluated = append(f.evaluated, q.ID)
	score := 7
	if len(f.scores) > 0 {
		score, f.scores = f.scores[0], f.scores[1:]
	}
	return evaluation.Result[int]{Value: score}
}

func (f *fakeEvaluator) GenerateFinalSummary(_ context.Context, answers []evaluation.ScoredAnswer) evaluation.Result[string] {
	if f.summary == "" {
		return evaluation.Result[string]{Value: evaluation.FallbackSummary(answers), Fallback: true}
	}
	return evaluation.Result[string]{Value: f.summary}
}

type failingStore struct{ *MemoryStore }

func (failingStore) Save(context.Context, State) error { return errors.New("disk full") }

func newTestService(t *testing.T, eval Evaluator) (*Service, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore()
	n := 0
	svc := NewService(store, eval, nil,
		WithClock(func() time.Time { return t0 }),
		WithIDGenerator(func() string { n++; return fmt.Sprintf("id-%d", n) }),
	)
	return svc, store
}

func profile(name string) Profile {
	return Profile{Name: name, Email: "john@x.com", Phone: "(555) 123-4567"}
}

func mustStart(t *testing.T, svc *Service, name string) Candidate {
	t.Helper()
	c, err := svc.CreateCandidate(context.Background(), profile(name))
	require.NoError(t, err)
	_, err = svc.StartInterview(context.Background(), c.ID)
	require.NoError(t, err)
	return c
}

func tickN(t *testing.T, svc *Service, n int) {
	t.Helper()
	for range n {
		require.NoError(t, svc.Tick(context.Background()))
	}
}

func TestService_CreateCandidateValidation(t *testing.T) {
	svc, _ := newTestService(t, &fakeEvaluator{})
	ctx := context.Background()

	tests := []struct {
		p     Profile
		field string
	}{
		{p: Profile{Name: " ", Email: "a@b.co", Phone: "5551234567"}, field: "name"},
		{p: Profile{Name: "A B", Email: "not-an-email", Phone: "5551234567"}, field: "email"},
		{p: Profile{Name: "A B", Email: "a@b.co", Phone: "12"}, field: "phone"},
	}
	for _, tt := range tests {
		_, err := svc.CreateCandidate(ctx, tt.p)
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, tt.field, ve.Field)
	}
	assert.Empty(t, svc.Snapshot().Candidates)
}

func TestService_FullInterview(t *testing.T) {
	eval := &fakeEvaluator{scores: []int{8, 8, 7, 7, 6, 6}, summary: "Solid fundamentals."}
	svc, store := newTestService(t, eval)
	ctx := context.Background()

	c, err := svc.CreateCandidate(ctx, profile("John Smith"))
	require.NoError(t, err)
	assert.Equal(t, StatusNotStarted, c.InterviewStatus)

	sess, err := svc.StartInterview(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, sess.Questions, 6)
	assert.Equal(t, NewTimer(20), sess.Timer)
	require.Len(t, sess.Messages, 2)
	assert.Contains(t, sess.Messages[0].Content, "John Smith")
	assert.Contains(t, sess.Messages[1].Content, "Question 1 of 6")

	tickN(t, svc, 5)

	var last Submission
	for i, q := range sess.Questions {
		last, err = svc.SubmitAnswer(ctx, q.ID, "my answer to "+q.ID)
		require.NoError(t, err)
		if i < len(sess.Questions)-1 {
			require.NotNil(t, last.NextQuestion)
			assert.Equal(t, sess.Questions[i+1].ID, last.NextQuestion.ID)
			assert.False(t, last.Completed)
		}
	}

	assert.True(t, last.Completed)
	require.NotNil(t, last.Candidate)
	assert.Equal(t, StatusCompleted, last.Candidate.InterviewStatus)
	require.NotNil(t, last.Candidate.FinalScore)
	assert.Equal(t, 7, *last.Candidate.FinalScore)
	assert.Equal(t, "Solid fundamentals.", last.Candidate.FinalSummary)
	require.Len(t, last.Candidate.Answers, 6)
	assert.Equal(t, 5, last.Candidate.Answers[0].TimeSpent)
	assert.Equal(t, 0, last.Candidate.Answers[1].TimeSpent)
	assert.Equal(t, 6, last.Score)
	assert.Equal(t, "Good answer with room for improvement.", last.Feedback)

	snap := svc.Snapshot()
	assert.Nil(t, snap.Session)
	assert.False(t, svc.Busy())

	persisted, ok, err := store.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, snap, persisted)
}

func TestService_FinalScoreRoundsMean(t *testing.T) {
	eval := &fakeEvaluator{scores: []int{9, 8, 10, 7, 6, 5}}
	svc, _ := newTestService(t, eval)
	c := mustStart(t, svc, "Jane Doe")

	for _, q := range evaluation.DefaultBank() {
		_, err := svc.SubmitAnswer(context.Background(), q.ID, "answer")
		require.NoError(t, err)
	}
	got, err := svc.Candidate(c.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, *got.FinalScore)
	assert.Equal(t, "Candidate scored an average of 7.5/10. Strong performance with good technical understanding.", got.FinalSummary)
}

func TestService_TimerExpiryAdvancesOnce(t *testing.T) {
	svc, _ := newTestService(t, &fakeEvaluator{})
	c := mustStart(t, svc, "John Smith")
	ctx := context.Background()

	tickN(t, svc, 19)
	snap := svc.Snapshot()
	assert.Equal(t, 0, snap.Session.CurrentQuestionIndex)
	assert.Equal(t, 1, snap.Session.Timer.Remaining)

	tickN(t, svc, 1)
	snap = svc.Snapshot()
	assert.Equal(t, 1, snap.Session.CurrentQuestionIndex)
	assert.Equal(t, NewTimer(20), snap.Session.Timer)

	got, _ := svc.Candidate(c.ID)
	require.Len(t, got.Answers, 1)
	assert.Equal(t, Answer{
		QuestionID: "q1",
		Question:   evaluation.DefaultBank()[0].Text,
		Difficulty: evaluation.Easy,
		Score:      1,
		TimeSpent:  20,
		TimedOut:   true,
		Timestamp:  t0,
	}, got.Answers[0])

	_, err := svc.SubmitAnswer(ctx, "q1", "late answer")
	assert.ErrorIs(t, err, ErrStaleQuestion)

	got, _ = svc.Candidate(c.ID)
	assert.Len(t, got.Answers, 1)
}

func TestService_SubmissionStopsTimerDuringScoring(t *testing.T) {
	eval := &fakeEvaluator{gate: make(chan struct{})}
	svc, _ := newTestService(t, eval)
	c := mustStart(t, svc, "John Smith")
	ctx := context.Background()

	tickN(t, svc, 19)

	type result struct {
		sub Submission
		err error
	}
	done := make(chan result, 1)
	go func() {
		sub, err := svc.SubmitAnswer(ctx, "q1", "closures capture variables")
		done <- result{sub, err}
	}()
	require.Eventually(t, svc.Busy, time.Second, time.Millisecond)

	// The tick that would have expired q1 lands while scoring is in flight.
	tickN(t, svc, 30)
	assert.Equal(t, 1, svc.Snapshot().Session.Timer.Remaining)

	_, err := svc.SubmitAnswer(ctx, "q1", "double submit")
	assert.ErrorIs(t, err, ErrBusy)
	_, err = svc.Pause(ctx)
	assert.ErrorIs(t, err, ErrBusy)

	close(eval.gate)
	res := <-done
	require.NoError(t, res.err)
	assert.Equal(t, 7, res.sub.Score)
	assert.Equal(t, "q2", res.sub.NextQuestion.ID)

	got, _ := svc.Candidate(c.ID)
	require.Len(t, got.Answers, 1)
	assert.False(t, got.Answers[0].TimedOut)
	assert.Equal(t, 19, got.Answers[0].TimeSpent)
	assert.Equal(t, []string{"q1"}, eval.evaluated)
}

func TestService_LastQuestionTimeoutCompletes(t *testing.T) {
	svc, _ := newTestService(t, &fakeEvaluator{scores: []int{10, 10, 10, 10, 10}})
	c := mustStart(t, svc, "John Smith")
	ctx := context.Background()

	for _, q := range evaluation.DefaultBank()[:5] {
		_, err := svc.SubmitAnswer(ctx, q.ID, "answer")
		require.NoError(t, err)
	}
	tickN(t, svc, 120)

	got, err := svc.Candidate(c.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, got.InterviewStatus)
	assert.True(t, got.Answers[5].TimedOut)
	assert.Equal(t, 9, *got.FinalScore)
	assert.Nil(t, svc.Snapshot().Session)

	tickN(t, svc, 3)
}

func TestService_PauseResume(t *testing.T) {
	svc, _ := newTestService(t, &fakeEvaluator{})
	mustStart(t, svc, "John Smith")
	ctx := context.Background()

	tickN(t, svc, 2)
	tm, err := svc.Pause(ctx)
	require.NoError(t, err)
	assert.Equal(t, TimerPaused, tm.State)
	assert.Equal(t, t0, *tm.PausedAt)

	tickN(t, svc, 50)
	assert.Equal(t, 18, svc.Snapshot().Session.Timer.Remaining)

	_, err = svc.SubmitAnswer(ctx, "q1", "answer")
	assert.ErrorIs(t, err, ErrSessionPaused)

	tm, err = svc.Resume(ctx)
	require.NoError(t, err)
	assert.Equal(t, TimerRunning, tm.State)
	tickN(t, svc, 1)
	assert.Equal(t, 17, svc.Snapshot().Session.Timer.Remaining)
}

func TestService_OneSessionAtATime(t *testing.T) {
	svc, _ := newTestService(t, &fakeEvaluator{})
	ctx := context.Background()
	c1 := mustStart(t, svc, "John Smith")

	c2, err := svc.CreateCandidate(ctx, profile("Jane Doe"))
	require.NoError(t, err)
	_, err = svc.StartInterview(ctx, c2.ID)
	assert.ErrorIs(t, err, ErrSessionActive)

	_, err = svc.StartInterview(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionActive)

	assert.Equal(t, c1.ID, svc.Snapshot().Session.CandidateID)
}

func TestService_StartRequiresNotStarted(t *testing.T) {
	svc, _ := newTestService(t, &fakeEvaluator{})
	ctx := context.Background()

	_, err := svc.StartInterview(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	c := mustStart(t, svc, "John Smith")
	for _, q := range evaluation.DefaultBank() {
		_, err := svc.SubmitAnswer(ctx, q.ID, "answer")
		require.NoError(t, err)
	}
	_, err = svc.StartInterview(ctx, c.ID)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestService_ResetDiscardsInFlightScore(t *testing.T) {
	eval := &fakeEvaluator{gate: make(chan struct{})}
	svc, _ := newTestService(t, eval)
	mustStart(t, svc, "John Smith")
	ctx := context.Background()

	done := make(chan error, 1)
	go func() {
		_, err := svc.SubmitAnswer(ctx, "q1", "answer")
		done <- err
	}()
	require.Eventually(t, svc.Busy, time.Second, time.Millisecond)

	require.NoError(t, svc.Reset(ctx))
	close(eval.gate)

	assert.ErrorIs(t, <-done, ErrDiscarded)
	assert.Equal(t, State{}, svc.Snapshot())
	assert.False(t, svc.Busy())
}

func TestService_LoadRestoresPausedSession(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t, &fakeEvaluator{})
	mustStart(t, svc, "John Smith")
	tickN(t, svc, 4)

	restarted := NewService(store, &fakeEvaluator{}, nil, WithClock(func() time.Time { return t0.Add(time.Hour) }))
	require.NoError(t, restarted.Load(ctx))

	snap := restarted.Snapshot()
	require.NotNil(t, snap.Session)
	assert.Equal(t, TimerPaused, snap.Session.Timer.State)
	assert.Equal(t, 16, snap.Session.Timer.Remaining)
	assert.Equal(t, t0.Add(time.Hour), *snap.Session.Timer.PausedAt)
	lastMsg := snap.Session.Messages[len(snap.Session.Messages)-1]
	assert.Contains(t, lastMsg.Content, "Welcome back")

	_, err := restarted.Resume(ctx)
	require.NoError(t, err)
	tickN(t, restarted, 1)
	assert.Equal(t, 15, restarted.Snapshot().Session.Timer.Remaining)
}

func TestService_LoadEmptyStore(t *testing.T) {
	svc, _ := newTestService(t, &fakeEvaluator{})
	require.NoError(t, svc.Load(context.Background()))
	assert.Equal(t, State{}, svc.Snapshot())
}

func TestService_FailedSaveLeavesStateUntouched(t *testing.T) {
	svc := NewService(failingStore{NewMemoryStore()}, &fakeEvaluator{}, nil)

	_, err := svc.CreateCandidate(context.Background(), profile("John Smith"))
	assert.ErrorContains(t, err, "disk full")
	assert.Empty(t, svc.Snapshot().Candidates)
}

func TestService_UpdateAndSelectCandidate(t *testing.T) {
	svc, _ := newTestService(t, &fakeEvaluator{})
	ctx := context.Background()
	c, err := svc.CreateCandidate(ctx, profile("Jon Smith"))
	require.NoError(t, err)

	name := "  John Smith "
	got, err := svc.UpdateCandidate(ctx, c.ID, CandidateUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "John Smith", got.Name)

	bad := "nope"
	_, err = svc.UpdateCandidate(ctx, c.ID, CandidateUpdate{Email: &bad})
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)

	_, err = svc.SelectCandidate(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, svc.Snapshot().SelectedCandidateID)

	_, err = svc.SelectCandidate(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_EmptyAnswerRejected(t *testing.T) {
	svc, _ := newTestService(t, &fakeEvaluator{})
	mustStart(t, svc, "John Smith")

	_, err := svc.SubmitAnswer(context.Background(), "q1", "   ")
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)

	_, err = svc.SubmitAnswer(context.Background(), "q9", "answer")
	assert.ErrorIs(t, err, ErrStaleQuestion)
}
