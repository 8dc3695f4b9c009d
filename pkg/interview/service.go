package interview

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/interview/pkg/evaluation"
	"github.com/artem13815/interview/pkg/resume"
)

// Evaluator is the part of the evaluation client the interview flow needs.
type Evaluator interface {
	GenerateQuestions(ctx context.Context) evaluation.Result[[]evaluation.Question]
	EvaluateAnswer(ctx context.Context, q evaluation.Question, answer string) evaluation.Result[int]
	GenerateFinalSummary(ctx context.Context, answers []evaluation.ScoredAnswer) evaluation.Result[string]
}

// Profile is what the candidate submits before the interview.
type Profile struct {
	Name   string       `json:"name"`
	Email  string       `json:"email"`
	Phone  string       `json:"phone"`
	Resume *resume.Meta `json:"resume,omitempty"`
}

// Submission is the outcome of one answered question.
type Submission struct {
	QuestionID   string               `json:"questionId"`
	Score        int                  `json:"score"`
	Feedback     string               `json:"feedback"`
	NextQuestion *evaluation.Question `json:"nextQuestion,omitempty"`
	Completed    bool                 `json:"completed"`
	Candidate    *Candidate           `json:"candidate,omitempty"`
}

// Service is the single writer of the application state. Every accepted
// change is persisted before it becomes visible. Calls to the evaluation
// service run outside the lock while the session is flagged busy, and the
// countdown does not advance while busy.
type Service struct {
	mu    sync.Mutex
	state State
	busy  bool
	epoch uint64

	store StateStore
	eval  Evaluator
	log   *slog.Logger
	now   func() time.Time
	newID func() string
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(s *Service) { s.newID = newID }
}

func NewService(store StateStore, eval Evaluator, log *slog.Logger, opts ...Option) *Service {
	if log == nil {
		log = slog.Default()
	}
	s := &Service{
		store: store,
		eval:  eval,
		log:   log.With("component", "interview"),
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// commit reduces, persists and publishes. Callers hold s.mu.
func (s *Service) commit(ctx context.Context, actions ...Action) error {
	next, err := ReduceAll(s.state, s.now(), actions...)
	if err != nil {
		return err
	}
	if err := s.store.Save(ctx, next); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	s.state = next
	return nil
}

func (s *Service) message(role Role, content string, system bool) Action {
	return AppendMessage{Message: ChatMessage{ID: s.newID(), Type: role, Content: content, IsSystemMessage: system}}
}

func questionPrompt(idx, total int, q evaluation.Question) string {
	return fmt.Sprintf("Question %d of %d (%s, %ds): %s", idx+1, total, q.Difficulty, q.TimeLimit, q.Text)
}

// Load restores persisted state. An interview that was running when the
// process stopped comes back paused, so the candidate resumes explicitly.
func (s *Service) Load(ctx context.Context) error {
	st, ok, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}
	if !ok {
		return nil
	}

	s.mu.Lock()
	s.state = st
	sess := st.Session
	switch {
	case sess == nil:
		s.mu.Unlock()
		return nil
	case sess.AwaitingCompletion():
		s.busy = true
		epoch := s.epoch
		s.mu.Unlock()
		_, err := s.finish(ctx, epoch)
		return err
	case sess.Timer.State == TimerRunning:
		defer s.mu.Unlock()
		s.log.Info("restored interview in progress, pausing", "candidate", sess.CandidateID, "question", sess.CurrentQuestionIndex+1)
		return s.commit(ctx,
			PauseInterview{},
			s.message(RoleAssistant, "Welcome back! Your interview was paused. Resume when you are ready.", true),
		)
	default:
		s.mu.Unlock()
		return nil
	}
}

var reEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func validateName(v string) error {
	if strings.TrimSpace(v) == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	return nil
}

func validateEmail(v string) error {
	if !reEmail.MatchString(strings.TrimSpace(v)) {
		return &ValidationError{Field: "email", Message: "must be a valid email address"}
	}
	return nil
}

func validatePhone(v string) error {
	digits := 0
	for _, r := range v {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if digits < 7 {
		return &ValidationError{Field: "phone", Message: "must contain at least 7 digits"}
	}
	return nil
}

func (p Profile) validate() error {
	if err := validateName(p.Name); err != nil {
		return err
	}
	if err := validateEmail(p.Email); err != nil {
		return err
	}
	return validatePhone(p.Phone)
}

func (s *Service) CreateCandidate(ctx context.Context, p Profile) (Candidate, error) {
	if err := p.validate(); err != nil {
		return Candidate{}, err
	}
	c := Candidate{
		ID:              s.newID(),
		Name:            strings.TrimSpace(p.Name),
		Email:           strings.TrimSpace(p.Email),
		Phone:           strings.TrimSpace(p.Phone),
		Resume:          p.Resume,
		InterviewStatus: StatusNotStarted,
		Answers:         []Answer{},
		CreatedAt:       s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.commit(ctx, AddCandidate{Candidate: c}); err != nil {
		return Candidate{}, err
	}
	s.log.Info("candidate created", "candidate", c.ID)
	return c, nil
}

// UpdateCandidate edits the profile of a candidate that has not started yet.
func (s *Service) UpdateCandidate(ctx context.Context, id string, u CandidateUpdate) (Candidate, error) {
	if u.Name != nil {
		if err := validateName(*u.Name); err != nil {
			return Candidate{}, err
		}
		v := strings.TrimSpace(*u.Name)
		u.Name = &v
	}
	if u.Email != nil {
		if err := validateEmail(*u.Email); err != nil {
			return Candidate{}, err
		}
		v := strings.TrimSpace(*u.Email)
		u.Email = &v
	}
	if u.Phone != nil {
		if err := validatePhone(*u.Phone); err != nil {
			return Candidate{}, err
		}
		v := strings.TrimSpace(*u.Phone)
		u.Phone = &v
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.commit(ctx, UpdateCandidate{ID: id, Update: u}); err != nil {
		return Candidate{}, err
	}
	return s.state.Candidates[s.state.candidateIndex(id)].clone(), nil
}

// StartInterview generates the questions and opens the session. Generation
// never fails: the fallback bank is used when the service is unavailable.
func (s *Service) StartInterview(ctx context.Context, candidateID string) (Session, error) {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return Session{}, ErrBusy
	}
	if s.state.Session != nil {
		s.mu.Unlock()
		return Session{}, ErrSessionActive
	}
	i := s.state.candidateIndex(candidateID)
	if i < 0 {
		s.mu.Unlock()
		return Session{}, ErrNotFound
	}
	c := s.state.Candidates[i]
	if c.InterviewStatus != StatusNotStarted {
		s.mu.Unlock()
		return Session{}, ErrInvalidStatus
	}
	s.busy = true
	epoch := s.epoch
	s.mu.Unlock()

	res := s.eval.GenerateQuestions(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch != epoch {
		return Session{}, ErrDiscarded
	}
	s.busy = false

	qs := res.Value
	if len(qs) == 0 {
		return Session{}, ErrNoQuestions
	}
	err := s.commit(ctx,
		BeginInterview{CandidateID: candidateID, Questions: qs},
		s.message(RoleAssistant, fmt.Sprintf(
			"Hello %s! Welcome to your Full Stack Developer interview. You will get %d questions: 2 easy, 2 medium and 2 hard. Each question has a time limit.",
			c.Name, len(qs)), true),
		s.message(RoleAssistant, questionPrompt(0, len(qs), qs[0]), false),
	)
	if err != nil {
		return Session{}, err
	}
	s.log.Info("interview started", "candidate", candidateID, "fallbackQuestions", res.Fallback)
	return *s.state.Clone().Session, nil
}

// SubmitAnswer scores the answer to questionID and advances the interview.
// The countdown stops before the scoring call, so an expiry can never
// advance the same question; a questionID that already expired gets
// ErrStaleQuestion.
func (s *Service) SubmitAnswer(ctx context.Context, questionID, text string) (Submission, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Submission{}, &ValidationError{Field: "answer", Message: "must not be empty"}
	}

	s.mu.Lock()
	sess := s.state.Session
	if sess == nil {
		s.mu.Unlock()
		return Submission{}, ErrNoSession
	}
	if s.busy {
		s.mu.Unlock()
		return Submission{}, ErrBusy
	}
	q, ok := sess.CurrentQuestion()
	if !ok || q.ID != questionID || sess.Timer.State == TimerExpired {
		s.mu.Unlock()
		return Submission{}, ErrStaleQuestion
	}
	if sess.Timer.State == TimerPaused {
		s.mu.Unlock()
		return Submission{}, ErrSessionPaused
	}
	timeSpent := sess.Timer.Elapsed()
	if err := s.commit(ctx, s.message(RoleUser, text, false)); err != nil {
		s.mu.Unlock()
		return Submission{}, err
	}
	s.busy = true
	epoch := s.epoch
	s.mu.Unlock()

	score := s.eval.EvaluateAnswer(ctx, q, text)

	s.mu.Lock()
	if s.epoch != epoch {
		s.mu.Unlock()
		return Submission{}, ErrDiscarded
	}
	out := Submission{
		QuestionID: q.ID,
		Score:      score.Value,
		Feedback:   evaluation.Feedback(score.Value),
	}
	actions := []Action{
		RecordAnswer{Answer: Answer{
			QuestionID: q.ID,
			Question:   q.Text,
			Difficulty: q.Difficulty,
			Answer:     text,
			Score:      score.Value,
			TimeSpent:  timeSpent,
			Timestamp:  s.now(),
		}},
		s.message(RoleAssistant, fmt.Sprintf("Your answer scored %d/10. %s", score.Value, out.Feedback), false),
	}
	actions, next := s.withNextQuestion(actions)
	if err := s.commit(ctx, actions...); err != nil {
		s.busy = false
		s.mu.Unlock()
		return Submission{}, err
	}
	if next != nil {
		s.busy = false
		s.mu.Unlock()
		out.NextQuestion = next
		return out, nil
	}
	s.mu.Unlock()

	c, err := s.finish(ctx, epoch)
	if err != nil {
		return out, err
	}
	out.Completed = true
	out.Candidate = &c
	return out, nil
}

// withNextQuestion appends the prompt of the question that follows the
// current one, if any. Callers hold s.mu.
func (s *Service) withNextQuestion(actions []Action) ([]Action, *evaluation.Question) {
	sess := s.state.Session
	idx := sess.CurrentQuestionIndex + 1
	if idx >= len(sess.Questions) {
		return actions, nil
	}
	next := sess.Questions[idx]
	return append(actions, s.message(RoleAssistant, questionPrompt(idx, len(sess.Questions), next), false)), &next
}

// Tick is one second of interview time. On expiry the current question is
// recorded as a timed-out answer with the minimum score and the interview
// moves on.
func (s *Service) Tick(ctx context.Context) error {
	s.mu.Lock()
	sess := s.state.Session
	if sess == nil || s.busy {
		s.mu.Unlock()
		return nil
	}
	if sess.AwaitingCompletion() {
		s.busy = true
		epoch := s.epoch
		s.mu.Unlock()
		_, err := s.finish(ctx, epoch)
		return err
	}
	if sess.Timer.State != TimerRunning {
		s.mu.Unlock()
		return nil
	}

	t := sess.Timer
	if !t.Tick() {
		err := s.commit(ctx, TickTimer{})
		s.mu.Unlock()
		return err
	}

	q, _ := sess.CurrentQuestion()
	actions := []Action{
		TickTimer{},
		s.message(RoleAssistant, "Time's up! No answer was recorded for this question.", true),
		RecordAnswer{Answer: Answer{
			QuestionID: q.ID,
			Question:   q.Text,
			Difficulty: q.Difficulty,
			Score:      evaluation.MinScore,
			TimeSpent:  t.Limit,
			TimedOut:   true,
			Timestamp:  s.now(),
		}},
	}
	actions, next := s.withNextQuestion(actions)
	if err := s.commit(ctx, actions...); err != nil {
		s.mu.Unlock()
		return err
	}
	s.log.Info("question timed out", "candidate", sess.CandidateID, "question", q.ID)
	if next != nil {
		s.mu.Unlock()
		return nil
	}
	s.busy = true
	epoch := s.epoch
	s.mu.Unlock()

	_, err := s.finish(ctx, epoch)
	return err
}

// finish writes the final score and summary. Callers set s.busy and do not
// hold s.mu.
func (s *Service) finish(ctx context.Context, epoch uint64) (Candidate, error) {
	s.mu.Lock()
	if s.epoch != epoch {
		s.mu.Unlock()
		return Candidate{}, ErrDiscarded
	}
	sess := s.state.Session
	if sess == nil {
		s.busy = false
		s.mu.Unlock()
		return Candidate{}, ErrNoSession
	}
	c := s.state.Candidates[s.state.candidateIndex(sess.CandidateID)]
	scored := make([]evaluation.ScoredAnswer, len(c.Answers))
	for i, a := range c.Answers {
		scored[i] = evaluation.ScoredAnswer{Question: a.Question, Answer: a.Answer, Score: a.Score}
	}
	s.mu.Unlock()

	summary := s.eval.GenerateFinalSummary(ctx, scored)
	score := int(math.Round(evaluation.AverageScore(scored)))

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch != epoch {
		return Candidate{}, ErrDiscarded
	}
	s.busy = false
	if err := s.commit(ctx, CompleteInterview{Score: score, Summary: summary.Value}); err != nil {
		return Candidate{}, err
	}
	s.log.Info("interview completed", "candidate", c.ID, "score", score, "fallbackSummary", summary.Fallback)
	return s.state.Candidates[s.state.candidateIndex(c.ID)].clone(), nil
}

func (s *Service) Pause(ctx context.Context) (Timer, error) {
	return s.setPaused(ctx, true)
}

func (s *Service) Resume(ctx context.Context) (Timer, error) {
	return s.setPaused(ctx, false)
}

func (s *Service) setPaused(ctx context.Context, pause bool) (Timer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Session == nil {
		return Timer{}, ErrNoSession
	}
	if s.busy {
		return Timer{}, ErrBusy
	}
	var a Action = ResumeInterview{}
	if pause {
		a = PauseInterview{}
	}
	if err := s.commit(ctx, a); err != nil {
		return Timer{}, err
	}
	return s.state.Session.Timer.clone(), nil
}

// Reset wipes every candidate and the session. Outcomes of evaluation calls
// started before the reset are discarded.
func (s *Service) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.epoch++
	s.busy = false
	if err := s.commit(ctx, ResetAll{}); err != nil {
		return err
	}
	s.log.Warn("application state reset")
	return nil
}

// Snapshot returns a deep copy of the current state.
func (s *Service) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Busy reports whether an evaluation call is in flight.
func (s *Service) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

func (s *Service) Candidate(id string) (Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.state.candidateIndex(id)
	if i < 0 {
		return Candidate{}, ErrNotFound
	}
	return s.state.Candidates[i].clone(), nil
}

// SelectCandidate records which candidate the interviewer has open.
func (s *Service) SelectCandidate(ctx context.Context, id string) (Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.commit(ctx, SelectCandidate{ID: id}); err != nil {
		return Candidate{}, err
	}
	if id == "" {
		return Candidate{}, nil
	}
	return s.state.Candidates[s.state.candidateIndex(id)].clone(), nil
}

func (s *Service) ListCandidates(f Filter) ([]Candidate, int) {
	s.mu.Lock()
	st := s.state.Clone()
	s.mu.Unlock()
	return ListCandidates(st.Candidates, f)
}
