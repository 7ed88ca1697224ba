package mapper

import (
	"fmt"
	"log/slog"

	"github.com/gbhwdb/sitegen/internal/config"
	"github.com/gbhwdb/sitegen/internal/submission"
)

// Outcome is the result of classifying one submission. A zero Mapper means
// the submission is unclassifiable; Warning carries the recoverable problem
// that caused it, if any.
type Outcome struct {
	Mapper  ID
	Warning string
}

// Classified reports whether a canonical identifier (including NoMapper) was
// determined.
func (o Outcome) Classified() bool {
	return o.Mapper != ""
}

// strategy inspects a submission and either returns a definite outcome or
// declines with ok=false, passing the decision to the next strategy.
type strategy func(*submission.Submission) (Outcome, bool)

// Classifier derives a canonical mapper identifier for a submission. It is
// pure over already-hydrated data and safe for concurrent use.
type Classifier struct {
	cfg        *config.Store
	strategies []strategy
}

// NewClassifier creates a classifier backed by the given configuration store.
func NewClassifier(cfg *config.Store) *Classifier {
	c := &Classifier{cfg: cfg}
	// Explicit board metadata always wins over layout inference.
	c.strategies = []strategy{
		c.fromBoardMetadata,
		c.fromLayout,
	}
	return c
}

// Classify runs the strategies in order; the first definite outcome wins.
func (c *Classifier) Classify(sub *submission.Submission) Outcome {
	for _, s := range c.strategies {
		if outcome, ok := s(sub); ok {
			return outcome
		}
	}
	return Outcome{}
}

// fromBoardMetadata classifies by the explicit mapper revision string on the
// board metadata. An unrecognized revision is a warning, not an error: it
// usually means hardware we have not categorized yet.
func (c *Classifier) fromBoardMetadata(sub *submission.Submission) (Outcome, bool) {
	kind := sub.MapperKind()
	if kind == "" {
		return Outcome{}, false
	}
	if id, ok := FromRevision(kind); ok {
		return Outcome{Mapper: id}, true
	}
	slog.Warn("Unrecognized mapper revision", "submission", sub.Ref(), "kind", kind)
	return Outcome{Warning: fmt.Sprintf("unrecognized mapper revision %q", kind)}, true
}

// fromLayout classifies by the game's first configured layout. A layout with
// no mapper role means the hardware has no mapper chip; a layout with one but
// no revision on the submission stays unclassifiable, since the specific
// controller must not be guessed.
func (c *Classifier) fromLayout(sub *submission.Submission) (Outcome, bool) {
	game, ok := c.cfg.Game(sub.Type)
	if !ok || len(game.Layouts) == 0 {
		return Outcome{}, true
	}
	layout, ok := c.cfg.Layout(game.Layouts[0])
	if !ok {
		return Outcome{}, true
	}
	if !layout.HasRole(config.RoleMapper) {
		return Outcome{Mapper: NoMapper}, true
	}
	return Outcome{}, true
}
