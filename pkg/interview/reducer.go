package interview

import (
	"time"

	"github.com/artem13815/interview/pkg/evaluation"
	"github.com/artem13815/interview/pkg/resume"
)

// Action is one state transition. Reduce is the only place that applies them.
type Action interface {
	apply(s *State, now time.Time) error
}

// Reduce applies a to a deep copy of s. On error the returned state is the
// unchanged input.
func Reduce(s State, a Action, now time.Time) (State, error) {
	next := s.Clone()
	if err := a.apply(&next, now); err != nil {
		return s, err
	}
	return next, nil
}

// ReduceAll applies actions in order and stops at the first error.
func ReduceAll(s State, now time.Time, actions ...Action) (State, error) {
	next := s.Clone()
	for _, a := range actions {
		if err := a.apply(&next, now); err != nil {
			return s, err
		}
	}
	return next, nil
}

type AddCandidate struct {
	Candidate Candidate
}

func (a AddCandidate) apply(s *State, _ time.Time) error {
	s.Candidates = append(s.Candidates, a.Candidate.clone())
	return nil
}

// CandidateUpdate holds the profile fields that may still change before the
// interview starts. Nil fields are left alone.
type CandidateUpdate struct {
	Name   *string      `json:"name,omitempty"`
	Email  *string      `json:"email,omitempty"`
	Phone  *string      `json:"phone,omitempty"`
	Resume *resume.Meta `json:"resume,omitempty"`
}

type UpdateCandidate struct {
	ID     string
	Update CandidateUpdate
}

func (a UpdateCandidate) apply(s *State, _ time.Time) error {
	i := s.candidateIndex(a.ID)
	if i < 0 {
		return ErrNotFound
	}
	c := &s.Candidates[i]
	if c.InterviewStatus != StatusNotStarted {
		return ErrInvalidStatus
	}
	if a.Update.Name != nil {
		c.Name = *a.Update.Name
	}
	if a.Update.Email != nil {
		c.Email = *a.Update.Email
	}
	if a.Update.Phone != nil {
		c.Phone = *a.Update.Phone
	}
	if a.Update.Resume != nil {
		r := *a.Update.Resume
		c.Resume = &r
	}
	return nil
}

type BeginInterview struct {
	CandidateID string
	Questions   []evaluation.Question
}

func (a BeginInterview) apply(s *State, now time.Time) error {
	if s.Session != nil {
		return ErrSessionActive
	}
	if len(a.Questions) == 0 {
		return ErrNoQuestions
	}
	i := s.candidateIndex(a.CandidateID)
	if i < 0 {
		return ErrNotFound
	}
	c := &s.Candidates[i]
	if c.InterviewStatus != StatusNotStarted {
		return ErrInvalidStatus
	}
	c.InterviewStatus = StatusInProgress
	c.CurrentQuestionIndex = 0
	c.StartTime = &now
	s.Session = &Session{
		CandidateID: a.CandidateID,
		Questions:   append([]evaluation.Question(nil), a.Questions...),
		Timer:       NewTimer(a.Questions[0].TimeLimit),
		Messages:    []ChatMessage{},
		StartTime:   now,
	}
	return nil
}

type PauseInterview struct{}

func (PauseInterview) apply(s *State, now time.Time) error {
	if s.Session == nil {
		return ErrNoSession
	}
	s.Session.Timer.Pause(now)
	return nil
}

type ResumeInterview struct{}

func (ResumeInterview) apply(s *State, _ time.Time) error {
	if s.Session == nil {
		return ErrNoSession
	}
	s.Session.Timer.Resume()
	return nil
}

type TickTimer struct{}

func (TickTimer) apply(s *State, _ time.Time) error {
	if s.Session == nil {
		return ErrNoSession
	}
	s.Session.Timer.Tick()
	return nil
}

// RecordAnswer appends the answer to the candidate and moves the session to
// the next question with a fresh timer. After the last question the timer
// stays expired until CompleteInterview.
type RecordAnswer struct {
	Answer Answer
}

func (a RecordAnswer) apply(s *State, _ time.Time) error {
	sess := s.Session
	if sess == nil {
		return ErrNoSession
	}
	q, ok := sess.CurrentQuestion()
	if !ok || q.ID != a.Answer.QuestionID {
		return ErrStaleQuestion
	}
	i := s.candidateIndex(sess.CandidateID)
	if i < 0 {
		return ErrNotFound
	}
	ans := a.Answer
	ans.Score = evaluation.ClampScore(ans.Score)

	c := &s.Candidates[i]
	c.Answers = append(c.Answers, ans)
	c.CurrentQuestionIndex++
	sess.CurrentQuestionIndex++

	if next, ok := sess.CurrentQuestion(); ok {
		sess.Timer = NewTimer(next.TimeLimit)
	} else {
		sess.Timer = Timer{State: TimerExpired}
	}
	return nil
}

type CompleteInterview struct {
	Score   int
	Summary string
}

func (a CompleteInterview) apply(s *State, now time.Time) error {
	sess := s.Session
	if sess == nil {
		return ErrNoSession
	}
	if !sess.AwaitingCompletion() {
		return ErrNotReady
	}
	i := s.candidateIndex(sess.CandidateID)
	if i < 0 {
		return ErrNotFound
	}
	score := evaluation.ClampScore(a.Score)
	c := &s.Candidates[i]
	c.InterviewStatus = StatusCompleted
	c.FinalScore = &score
	c.FinalSummary = a.Summary
	c.EndTime = &now
	s.Session = nil
	return nil
}

type AppendMessage struct {
	Message ChatMessage
}

func (a AppendMessage) apply(s *State, now time.Time) error {
	if s.Session == nil {
		return ErrNoSession
	}
	m := a.Message
	if m.Timestamp.IsZero() {
		m.Timestamp = now
	}
	s.Session.Messages = append(s.Session.Messages, m)
	return nil
}

// SelectCandidate marks the candidate opened on the dashboard; an empty ID
// clears the selection.
type SelectCandidate struct {
	ID string
}

func (a SelectCandidate) apply(s *State, _ time.Time) error {
	if a.ID != "" && s.candidateIndex(a.ID) < 0 {
		return ErrNotFound
	}
	s.SelectedCandidateID = a.ID
	return nil
}

type ResetAll struct{}

func (ResetAll) apply(s *State, _ time.Time) error {
	*s = State{}
	return nil
}
