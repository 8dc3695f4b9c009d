package interview

import (
	"time"

	"github.com/artem13815/interview/pkg/evaluation"
	"github.com/artem13815/interview/pkg/resume"
)

type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Answer — ответ кандидата на один вопрос. После записи не меняется.
type Answer struct {
	QuestionID string                `json:"questionId"`
	Question   string                `json:"question"`
	Difficulty evaluation.Difficulty `json:"difficulty"`
	Answer     string                `json:"answer"`
	Score      int                   `json:"score"`
	TimeSpent  int                   `json:"timeSpent"`
	TimedOut   bool                  `json:"timedOut,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// Candidate — агрегат: контакты, статус интервью и история ответов.
// FinalScore задан тогда и только тогда, когда статус completed.
type Candidate struct {
	ID                   string       `json:"id"`
	Name                 string       `json:"name"`
	Email                string       `json:"email"`
	Phone                string       `json:"phone"`
	Resume               *resume.Meta `json:"resume,omitempty"`
	InterviewStatus      Status       `json:"interviewStatus"`
	CurrentQuestionIndex int          `json:"currentQuestionIndex"`
	Answers              []Answer     `json:"answers"`
	FinalScore           *int         `json:"finalScore,omitempty"`
	FinalSummary         string       `json:"finalSummary,omitempty"`
	StartTime            *time.Time   `json:"startTime,omitempty"`
	EndTime              *time.Time   `json:"endTime,omitempty"`
	CreatedAt            time.Time    `json:"createdAt"`
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type ChatMessage struct {
	ID              string    `json:"id"`
	Type            Role      `json:"type"`
	Content         string    `json:"content"`
	Timestamp       time.Time `json:"timestamp"`
	IsSystemMessage bool      `json:"isSystemMessage,omitempty"`
}

// Session is the single in-progress interview. It is discarded on
// completion or reset.
type Session struct {
	CandidateID          string                `json:"candidateId"`
	Questions            []evaluation.Question `json:"questions"`
	CurrentQuestionIndex int                   `json:"currentQuestionIndex"`
	Timer                Timer                 `json:"timer"`
	Messages             []ChatMessage         `json:"messages"`
	StartTime            time.Time             `json:"startTime"`
}

// CurrentQuestion returns the question being answered, false once every
// question has an answer.
func (s *Session) CurrentQuestion() (evaluation.Question, bool) {
	if s == nil || s.CurrentQuestionIndex >= len(s.Questions) {
		return evaluation.Question{}, false
	}
	return s.Questions[s.CurrentQuestionIndex], true
}

// AwaitingCompletion is true when all questions are answered but the
// summary has not been recorded yet.
func (s *Session) AwaitingCompletion() bool {
	return s != nil && len(s.Questions) > 0 && s.CurrentQuestionIndex >= len(s.Questions)
}

// State is the whole application state, persisted as one JSON document.
type State struct {
	Candidates          []Candidate `json:"candidates"`
	Session             *Session    `json:"session,omitempty"`
	SelectedCandidateID string      `json:"selectedCandidateId,omitempty"`
}

func (s State) candidateIndex(id string) int {
	for i := range s.Candidates {
		if s.Candidates[i].ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy; reducers never touch their input.
func (s State) Clone() State {
	out := State{SelectedCandidateID: s.SelectedCandidateID}
	if s.Candidates != nil {
		out.Candidates = make([]Candidate, len(s.Candidates))
		for i, c := range s.Candidates {
			out.Candidates[i] = c.clone()
		}
	}
	if s.Session != nil {
		sess := *s.Session
		sess.Questions = cloneSlice(s.Session.Questions)
		sess.Messages = cloneSlice(s.Session.Messages)
		sess.Timer = s.Session.Timer.clone()
		out.Session = &sess
	}
	return out
}

func (c Candidate) clone() Candidate {
	out := c
	out.Answers = cloneSlice(c.Answers)
	if c.Resume != nil {
		r := *c.Resume
		out.Resume = &r
	}
	if c.FinalScore != nil {
		v := *c.FinalScore
		out.FinalScore = &v
	}
	out.StartTime = cloneTime(c.StartTime)
	out.EndTime = cloneTime(c.EndTime)
	return out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	return append(make([]T, 0, len(in)), in...)
}
