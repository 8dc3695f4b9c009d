package interview

import (
	"sort"
	"strings"

	"github.com/artem13815/interview/pkg/nlp"
)

// Filter narrows the interviewer dashboard. Status "all" or "" means any.
type Filter struct {
	Search string
	Status string
	Limit  int
	Offset int
}

// ListCandidates filters, orders and pages candidates. Completed candidates
// come first by final score, highest first; the rest keep insertion order.
// The returned total counts matches before paging.
func ListCandidates(all []Candidate, f Filter) ([]Candidate, int) {
	status := strings.ToLower(strings.TrimSpace(f.Status))
	matched := make([]Candidate, 0, len(all))
	for _, c := range all {
		if status != "" && status != "all" && string(c.InterviewStatus) != status {
			continue
		}
		if !nlp.MatchesAny(f.Search, c.Name, c.Email) {
			continue
		}
		matched = append(matched, c)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		ac, bc := a.InterviewStatus == StatusCompleted, b.InterviewStatus == StatusCompleted
		if ac != bc {
			return ac
		}
		if ac && bc {
			return scoreOf(a) > scoreOf(b)
		}
		return false
	})

	total := len(matched)
	if f.Offset > 0 {
		if f.Offset >= len(matched) {
			return []Candidate{}, total
		}
		matched = matched[f.Offset:]
	}
	if f.Limit > 0 && f.Limit < len(matched) {
		matched = matched[:f.Limit]
	}
	return matched, total
}

func scoreOf(c Candidate) int {
	if c.FinalScore == nil {
		return 0
	}
	return *c.FinalScore
}
