package suggest

import (
	"fmt"
	"sort"
)

// DefaultThreshold is the similarity below which Closest finds no match.
const DefaultThreshold = 0.6

// Candidate is a known name scored against a query.
type Candidate struct {
	Name  string
	Score float64
}

// CandidateList is sorted by descending score, then by name.
type CandidateList []Candidate

func (c CandidateList) Len() int { return len(c) }

func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Best returns the highest scoring candidate, or nil for an empty list.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// AboveThreshold returns the candidates scoring at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var out CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			out = append(out, cand)
		}
	}

	return out
}

// Rank scores every known name against query. Duplicate names are scored
// once.
func Rank(query string, known []string) CandidateList {
	seen := make(map[string]struct{}, len(known))
	out := make(CandidateList, 0, len(known))

	for _, name := range known {
		if _, dup := seen[name]; dup {
			continue
		}

		seen[name] = struct{}{}
		out = append(out, Candidate{Name: name, Score: Similarity(query, name)})
	}

	sort.Sort(out)

	return out
}

// Closest returns the known name most similar to query when it scores at
// least threshold. An exact match is never suggested.
func Closest(query string, known []string, threshold float64) (string, bool) {
	for _, cand := range Rank(query, known).AboveThreshold(threshold) {
		if cand.Name == query {
			continue
		}

		return cand.Name, true
	}

	return "", false
}

// Hint returns " (did you mean %q?)" for the closest known name, or "" when
// nothing is close enough.
func Hint(query string, known []string) string {
	name, ok := Closest(query, known, DefaultThreshold)
	if !ok {
		return ""
	}

	return fmt.Sprintf(" (did you mean %q?)", name)
}
