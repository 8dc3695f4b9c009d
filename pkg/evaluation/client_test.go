package evaluation

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/interview/pkg/llm"
)

type fakeModel struct {
	reply   string
	err     error
	prompts []string
}

func (f *fakeModel) Ask(_ context.Context, _, userPrompt string) (string, error) {
	f.prompts = append(f.prompts, userPrompt)
	return f.reply, f.err
}

func assertBalanced(t *testing.T, qs []Question) {
	t.Helper()
	require.Len(t, qs, QuestionsPerInterview)
	counts := map[Difficulty]int{}
	for i, q := range qs {
		counts[q.Difficulty]++
		assert.Equal(t, TimeLimit(q.Difficulty), q.TimeLimit)
		assert.NotEmpty(t, q.Text)
		assert.Equal(t, "q"+string(rune('1'+i)), q.ID)
	}
	assert.Equal(t, map[Difficulty]int{Easy: 2, Medium: 2, Hard: 2}, counts)
}

func TestGenerateQuestions_ParsesAndCanonicalizes(t *testing.T) {
	m := &fakeModel{reply: "```json\n" + `[
		{"id":"a","text":"What is JSX?","difficulty":"easy","timeLimit":999,"category":"React"},
		{"id":"b","text":"What is npm?","difficulty":"Easy"},
		{"text":"Explain the event loop.","difficulty":"medium","category":"Node.js"},
		{"text":"Explain indexes.","difficulty":"medium","category":"Database"},
		{"text":"Design a chat system.","difficulty":"hard","category":"System Design"},
		{"text":"Scale a Node API.","difficulty":"hard","category":""}
	]` + "\n```"}
	c := NewClient(m, nil)

	res := c.GenerateQuestions(context.Background())

	assert.False(t, res.Fallback)
	assert.NoError(t, res.Err)
	assertBalanced(t, res.Value)
	assert.Equal(t, "General", res.Value[1].Category)
	assert.Equal(t, "General", res.Value[5].Category)
	assert.Equal(t, 20, res.Value[0].TimeLimit)
	assert.Equal(t, "q1", res.Value[0].ID)
}

func TestGenerateQuestions_Fallbacks(t *testing.T) {
	tests := []struct {
		name  string
		model *fakeModel
	}{
		{name: "auth error", model: &fakeModel{err: llm.ErrAuth}},
		{name: "service error", model: &fakeModel{err: &llm.ServiceError{StatusCode: 500, Body: "boom"}}},
		{name: "not json", model: &fakeModel{reply: "Sure, here are some questions: ..."}},
		{name: "wrong count", model: &fakeModel{reply: `[{"text":"a","difficulty":"easy"}]`}},
		{name: "wrong split", model: &fakeModel{reply: `[
			{"text":"a","difficulty":"easy"},{"text":"b","difficulty":"easy"},{"text":"c","difficulty":"easy"},
			{"text":"d","difficulty":"medium"},{"text":"e","difficulty":"hard"},{"text":"f","difficulty":"hard"}]`}},
		{name: "empty text", model: &fakeModel{reply: `[
			{"text":"","difficulty":"easy"},{"text":"b","difficulty":"easy"},{"text":"c","difficulty":"medium"},
			{"text":"d","difficulty":"medium"},{"text":"e","difficulty":"hard"},{"text":"f","difficulty":"hard"}]`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := NewClient(tt.model, nil).GenerateQuestions(context.Background())
			assert.True(t, res.Fallback)
			assert.Error(t, res.Err)
			assert.Equal(t, DefaultBank(), res.Value)
			assertBalanced(t, res.Value)
		})
	}
}

func TestGenerateQuestions_CustomBank(t *testing.T) {
	bank := DefaultBank()
	bank[0].Text = "What is a goroutine?"
	res := NewClient(&fakeModel{err: llm.ErrAuth}, nil, WithBank(bank)).GenerateQuestions(context.Background())
	assert.Equal(t, "What is a goroutine?", res.Value[0].Text)
}

func TestEvaluateAnswer(t *testing.T) {
	tests := []struct {
		name     string
		reply    string
		err      error
		want     int
		fallback bool
	}{
		{name: "plain", reply: "8", want: 8},
		{name: "with suffix", reply: " 7/10\n", want: 7},
		{name: "too high", reply: "15", want: 10},
		{name: "negative", reply: "-3", want: 1},
		{name: "zero defaults", reply: "0", want: 5, fallback: true},
		{name: "prose", reply: "Score: 9", want: 5, fallback: true},
		{name: "huge", reply: "99999999999999999999999", want: 10},
		{name: "service error", err: errors.New("timeout"), want: 5, fallback: true},
		{name: "auth error", err: llm.ErrAuth, want: 5, fallback: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &fakeModel{reply: tt.reply, err: tt.err}
			res := NewClient(m, nil).EvaluateAnswer(context.Background(), DefaultBank()[0], "React is a UI library")
			assert.Equal(t, tt.want, res.Value)
			assert.Equal(t, tt.fallback, res.Fallback)
			assert.GreaterOrEqual(t, res.Value, MinScore)
			assert.LessOrEqual(t, res.Value, MaxScore)
			require.Len(t, m.prompts, 1)
			assert.Contains(t, m.prompts[0], "React is a UI library")
		})
	}
}

func TestGenerateFinalSummary(t *testing.T) {
	answers := []ScoredAnswer{
		{Question: "Q1", Answer: "A1", Score: 9},
		{Question: "Q2", Answer: "A2", Score: 8},
		{Question: "Q3", Answer: "A3", Score: 10},
	}

	m := &fakeModel{reply: "  Strong candidate.  "}
	res := NewClient(m, nil).GenerateFinalSummary(context.Background(), answers)
	assert.Equal(t, "Strong candidate.", res.Value)
	assert.False(t, res.Fallback)
	assert.Contains(t, m.prompts[0], "3. Q: Q3\n   A: A3\n   Score: 10/10")

	res = NewClient(&fakeModel{err: errors.New("down")}, nil).GenerateFinalSummary(context.Background(), answers)
	assert.True(t, res.Fallback)
	assert.Equal(t, "Candidate scored an average of 9.0/10. Strong performance with good technical understanding.", res.Value)

	res = NewClient(&fakeModel{reply: "   "}, nil).GenerateFinalSummary(context.Background(), answers)
	assert.True(t, res.Fallback)
}

func TestFallbackSummaryBands(t *testing.T) {
	assert.Contains(t, FallbackSummary([]ScoredAnswer{{Score: 5}, {Score: 6}}), "5.5/10. Average performance")
	assert.Contains(t, FallbackSummary([]ScoredAnswer{{Score: 2}, {Score: 4}}), "3.0/10. Below average")
	assert.Equal(t, "Candidate scored an average of 0.0/10. Below average performance requiring significant development.", FallbackSummary(nil))
}

func TestFeedback(t *testing.T) {
	assert.Equal(t, "Excellent answer!", Feedback(8))
	assert.Equal(t, "Good answer with room for improvement.", Feedback(6))
	assert.Equal(t, "Fair answer, consider providing more detail.", Feedback(4))
	assert.Equal(t, "Try to be more specific and detailed in your response.", Feedback(3))
}

func TestLoadBank(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "bank.yaml")
	require.NoError(t, os.WriteFile(good, []byte(`questions:
  - text: What is a goroutine?
    difficulty: easy
    category: Go
  - text: What is a channel?
    difficulty: easy
  - text: Explain context cancellation.
    difficulty: medium
  - text: Explain the Go memory model.
    difficulty: medium
  - text: Design a rate limiter.
    difficulty: hard
  - text: Design a job queue.
    difficulty: hard
`), 0o644))

	qs, err := LoadBank(good)
	require.NoError(t, err)
	assertBalanced(t, qs)
	assert.Equal(t, "Go", qs[0].Category)
	assert.Equal(t, "General", qs[1].Category)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("questions:\n  - text: only one\n    difficulty: easy\n"), 0o644))
	_, err = LoadBank(bad)
	assert.Error(t, err)

	_, err = LoadBank(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
