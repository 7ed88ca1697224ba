// Package aggregate groups classified submissions into the by-game and
// by-mapper views that page building consumes.
package aggregate

import (
	"sort"

	"github.com/gbhwdb/sitegen/internal/mapper"
	"github.com/gbhwdb/sitegen/internal/submission"
)

// Warning is one recoverable problem found while processing a submission.
type Warning struct {
	Submission string `yaml:"submission"`
	Message    string `yaml:"message"`
}

// Result holds the two aggregated views of one run. Key order slices record
// first-seen insertion order, so iteration stays deterministic for a fixed
// input sequence.
type Result struct {
	ByGame    map[string][]*submission.Submission
	GameOrder []string

	ByMapper    map[mapper.ID][]*submission.Submission
	MapperOrder []mapper.ID

	Warnings []Warning
}

// Group consumes the hydrated submission sequence and the classifier. Every
// submission lands in exactly one game group; only classified submissions
// land in a mapper group, and mapper entries are created lazily on first use.
// Submissions are never mutated.
func Group(subs []*submission.Submission, classifier *mapper.Classifier) *Result {
	res := &Result{
		ByGame:   make(map[string][]*submission.Submission),
		ByMapper: make(map[mapper.ID][]*submission.Submission),
	}

	for _, sub := range subs {
		if _, ok := res.ByGame[sub.Type]; !ok {
			res.GameOrder = append(res.GameOrder, sub.Type)
		}
		res.ByGame[sub.Type] = append(res.ByGame[sub.Type], sub)

		outcome := classifier.Classify(sub)
		if outcome.Warning != "" {
			res.Warnings = append(res.Warnings, Warning{
				Submission: sub.Ref(),
				Message:    outcome.Warning,
			})
		}
		if !outcome.Classified() {
			continue
		}
		if _, ok := res.ByMapper[outcome.Mapper]; !ok {
			res.MapperOrder = append(res.MapperOrder, outcome.Mapper)
		}
		res.ByMapper[outcome.Mapper] = append(res.ByMapper[outcome.Mapper], sub)
	}

	return res
}

// Mappers returns the populated mapper identifiers in sorted order.
func (r *Result) Mappers() []mapper.ID {
	ids := make([]mapper.ID, len(r.MapperOrder))
	copy(ids, r.MapperOrder)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Submissions returns the total number of grouped submissions.
func (r *Result) Submissions() int {
	n := 0
	for _, subs := range r.ByGame {
		n += len(subs)
	}
	return n
}
