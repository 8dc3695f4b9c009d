package evaluation

import (
	"fmt"
	"os"
	"strings"

	yaml "go.yaml.in/yaml/v4"
)

// DefaultBank is the built-in question set used when generation fails.
func DefaultBank() []Question {
	return []Question{
		{ID: "q1", Text: "What is React and what are its main advantages?", Difficulty: Easy, TimeLimit: 20, Category: "React"},
		{ID: "q2", Text: "Explain the difference between let, const, and var in JavaScript.", Difficulty: Easy, TimeLimit: 20, Category: "General"},
		{ID: "q3", Text: "How would you handle state management in a large React application?", Difficulty: Medium, TimeLimit: 60, Category: "React"},
		{ID: "q4", Text: "Describe the difference between SQL and NoSQL databases. When would you use each?", Difficulty: Medium, TimeLimit: 60, Category: "Database"},
		{ID: "q5", Text: "How would you design a scalable microservices architecture for an e-commerce platform?", Difficulty: Hard, TimeLimit: 120, Category: "System Design"},
		{ID: "q6", Text: "Explain how you would implement authentication and authorization in a Node.js API.", Difficulty: Hard, TimeLimit: 120, Category: "Node.js"},
	}
}

type bankFile struct {
	Questions []Question `yaml:"questions"`
}

// LoadBank reads a replacement fallback bank from a YAML file:
//
//	questions:
//	  - text: What is a goroutine?
//	    difficulty: easy
//	    category: Go
func LoadBank(path string) ([]Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}
	var f bankFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse question bank %s: %w", path, err)
	}
	qs, err := canonicalize(f.Questions)
	if err != nil {
		return nil, fmt.Errorf("question bank %s: %w", path, err)
	}
	return qs, nil
}

// canonicalize re-numbers ids, derives time limits from difficulty and
// rejects sets that are not exactly two questions per band.
func canonicalize(in []Question) ([]Question, error) {
	if len(in) != QuestionsPerInterview {
		return nil, fmt.Errorf("expected %d questions, got %d", QuestionsPerInterview, len(in))
	}
	counts := map[Difficulty]int{}
	out := make([]Question, len(in))
	for i, q := range in {
		d := Difficulty(strings.ToLower(strings.TrimSpace(string(q.Difficulty))))
		if !d.Valid() {
			return nil, fmt.Errorf("question %d: unknown difficulty %q", i+1, q.Difficulty)
		}
		text := strings.TrimSpace(q.Text)
		if text == "" {
			return nil, fmt.Errorf("question %d: empty text", i+1)
		}
		category := strings.TrimSpace(q.Category)
		if category == "" {
			category = "General"
		}
		counts[d]++
		out[i] = Question{
			ID:         fmt.Sprintf("q%d", i+1),
			Text:       text,
			Difficulty: d,
			TimeLimit:  TimeLimit(d),
			Category:   category,
		}
	}
	for _, d := range []Difficulty{Easy, Medium, Hard} {
		if counts[d] != QuestionsPerBand {
			return nil, fmt.Errorf("expected %d %s questions, got %d", QuestionsPerBand, d, counts[d])
		}
	}
	return out, nil
}
