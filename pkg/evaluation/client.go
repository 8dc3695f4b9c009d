package evaluation

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/artem13815/interview/pkg/llm"
)

const (
	DefaultScore = 5
	MinScore     = 1
	MaxScore     = 10
)

const systemPrompt = "You are a senior technical interviewer hiring a Full Stack Developer (React/Node.js)."

// Client builds prompts for the completion service and turns its replies
// into questions, scores and summaries. Every operation has a local fallback,
// so callers never see a raw service error.
type Client struct {
	model llm.ChatModel
	log   *slog.Logger
	bank  []Question
}

type Option func(*Client)

// WithBank replaces the built-in fallback questions.
func WithBank(bank []Question) Option {
	return func(c *Client) {
		if len(bank) > 0 {
			c.bank = bank
		}
	}
}

func NewClient(model llm.ChatModel, log *slog.Logger, opts ...Option) *Client {
	if log == nil {
		log = slog.Default()
	}
	c := &Client{model: model, log: log.With("component", "evaluation"), bank: DefaultBank()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Bank() []Question {
	return append([]Question(nil), c.bank...)
}

type generatedQuestion struct {
	Text       string `json:"text"`
	Difficulty string `json:"difficulty"`
	Category   string `json:"category"`
}

// GenerateQuestions always yields six questions split 2/2/2 by difficulty.
func (c *Client) GenerateQuestions(ctx context.Context) Result[[]Question] {
	prompt := `Generate 6 interview questions for a Full Stack Developer position (React/Node.js).
Format: 2 Easy, 2 Medium, 2 Hard questions.
Each question should be practical and relevant to full-stack development.

Return only a JSON array with this structure:
[
  {
    "id": "q1",
    "text": "Question text here",
    "difficulty": "easy|medium|hard",
    "timeLimit": 20|60|120,
    "category": "React|Node.js|Database|System Design|General"
  }
]`
	reply, err := c.model.Ask(ctx, systemPrompt, prompt)
	if err == nil {
		var qs []Question
		if qs, err = parseQuestions(reply); err == nil {
			return Result[[]Question]{Value: qs}
		}
	}
	c.log.Warn("question generation failed, using fallback bank", "error", err)
	return Result[[]Question]{Value: c.Bank(), Fallback: true, Err: err}
}

func parseQuestions(reply string) ([]Question, error) {
	var raw []generatedQuestion
	if err := json.Unmarshal([]byte(llm.CleanJSON(reply)), &raw); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}
	in := make([]Question, len(raw))
	for i, r := range raw {
		in[i] = Question{Text: r.Text, Difficulty: Difficulty(r.Difficulty), Category: r.Category}
	}
	return canonicalize(in)
}

// EvaluateAnswer returns a score in [1,10]. Replies that do not start with a
// positive integer and failed calls score DefaultScore.
func (c *Client) EvaluateAnswer(ctx context.Context, q Question, answer string) Result[int] {
	prompt := fmt.Sprintf(`Evaluate this interview answer for a Full Stack Developer position.

Question: %s
Difficulty: %s
Answer: %s

Rate the answer on a scale of 1-10 considering:
- Technical accuracy
- Completeness
- Relevance to the question
- Practical understanding

Return only the numeric score (1-10).`, q.Text, q.Difficulty, answer)

	reply, err := c.model.Ask(ctx, systemPrompt, prompt)
	if err != nil {
		c.log.Warn("answer evaluation failed, using default score", "question", q.ID, "error", err)
		return Result[int]{Value: DefaultScore, Fallback: true, Err: err}
	}
	n, ok := ParseScore(reply)
	if !ok || n == 0 {
		c.log.Debug("unparseable score reply", "question", q.ID, "reply", reply)
		return Result[int]{Value: DefaultScore, Fallback: true}
	}
	return Result[int]{Value: ClampScore(n)}
}

// ParseScore reads the leading integer of a reply, so "8/10" is 8.
func ParseScore(reply string) (int, bool) {
	s := strings.TrimSpace(reply)
	sign := 1
	if s != "" && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
	}
	end := strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' })
	if end < 0 {
		end = len(s)
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// too many digits; any such value clamps to a bound anyway
		return sign * (MaxScore + 1), true
	}
	return sign * n, true
}

func ClampScore(n int) int {
	return max(MinScore, min(MaxScore, n))
}

// GenerateFinalSummary asks for a short qualitative summary and falls back to
// FallbackSummary on failure or an empty reply.
func (c *Client) GenerateFinalSummary(ctx context.Context, answers []ScoredAnswer) Result[string] {
	var b strings.Builder
	for i, a := range answers {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "%d. Q: %s\n   A: %s\n   Score: %d/10", i+1, a.Question, a.Answer, a.Score)
	}
	prompt := fmt.Sprintf(`Based on these interview responses, provide a brief summary of the candidate's performance.

Interview Responses:
%s

Provide a concise 2-3 sentence summary highlighting strengths and areas for improvement.`, b.String())

	reply, err := c.model.Ask(ctx, systemPrompt, prompt)
	if err == nil {
		if summary := strings.TrimSpace(reply); summary != "" {
			return Result[string]{Value: summary}
		}
		err = &llm.ServiceError{StatusCode: 200, Body: "empty summary"}
	}
	c.log.Warn("summary generation failed, using local summary", "error", err)
	return Result[string]{Value: FallbackSummary(answers), Fallback: true, Err: err}
}

// AverageScore is the arithmetic mean, 0 for no answers.
func AverageScore(answers []ScoredAnswer) float64 {
	if len(answers) == 0 {
		return 0
	}
	sum := 0
	for _, a := range answers {
		sum += a.Score
	}
	return float64(sum) / float64(len(answers))
}

func FallbackSummary(answers []ScoredAnswer) string {
	avg := AverageScore(answers)
	var band string
	switch {
	case avg >= 7:
		band = "Strong performance with good technical understanding."
	case avg >= 5:
		band = "Average performance with room for improvement."
	default:
		band = "Below average performance requiring significant development."
	}
	return fmt.Sprintf("Candidate scored an average of %.1f/10. %s", avg, band)
}

// Feedback is the chat reply posted after each scored answer.
func Feedback(score int) string {
	switch {
	case score >= 8:
		return "Excellent answer!"
	case score >= 6:
		return "Good answer with room for improvement."
	case score >= 4:
		return "Fair answer, consider providing more detail."
	default:
		return "Try to be more specific and detailed in your response."
	}
}
