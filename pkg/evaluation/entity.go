package evaluation

type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

func (d Difficulty) Valid() bool {
	switch d {
	case Easy, Medium, Hard:
		return true
	}
	return false
}

// TimeLimit is the answer window in seconds for a difficulty band.
func TimeLimit(d Difficulty) int {
	switch d {
	case Easy:
		return 20
	case Medium:
		return 60
	case Hard:
		return 120
	default:
		return 60
	}
}

// QuestionsPerInterview and the per-band split every question set must satisfy.
const (
	QuestionsPerInterview = 6
	QuestionsPerBand      = 2
)

type Question struct {
	ID         string     `json:"id" yaml:"id,omitempty"`
	Text       string     `json:"text" yaml:"text"`
	Difficulty Difficulty `json:"difficulty" yaml:"difficulty"`
	TimeLimit  int        `json:"timeLimit" yaml:"timeLimit,omitempty"`
	Category   string     `json:"category" yaml:"category,omitempty"`
}

// ScoredAnswer is the input of the final summary.
type ScoredAnswer struct {
	Question string
	Answer   string
	Score    int
}

// Result carries either the service value or a locally computed default.
// Err is the reason a fallback was used and is nil otherwise.
type Result[T any] struct {
	Value    T
	Fallback bool
	Err      error
}
