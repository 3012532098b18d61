package indicator

import (
	"athena/internal/domain/bars"
	"athena/pkg/errors"
)

// Step is one named derivation over the frame. Reads and Writes declare the
// columns it consumes and produces; construction rejects a step that reads a
// column no earlier step wrote, which is how chained dependencies stay
// honest as steps are reordered.
type Step struct {
	Name   string
	Reads  []string
	Writes []string
	Run    func(f *Frame)
}

// Pipeline is the ordered set of indicator derivations.
type Pipeline struct {
	steps []Step
}

// NewPipeline validates step ordering: every read must be satisfied by the
// raw bar columns or by a strictly earlier step, and no column may be
// written twice.
func NewPipeline(steps []Step) (*Pipeline, error) {
	written := map[string]bool{
		ColOpen:    true,
		ColHigh:    true,
		ColLow:     true,
		ColClose:   true,
		ColVolume:  true,
		ColAmount:  true,
		ColPChange: true,
	}
	for _, s := range steps {
		for _, r := range s.Reads {
			if !written[r] {
				return nil, errors.Wrapf(errors.ErrForwardReference, "step %s reads %s", s.Name, r)
			}
		}
		for _, w := range s.Writes {
			if written[w] {
				return nil, errors.Wrapf(errors.ErrInvalidInput, "step %s rewrites column %s", s.Name, w)
			}
			written[w] = true
		}
	}
	return &Pipeline{steps: steps}, nil
}

// MustNewPipeline is NewPipeline that panics on a mis-declared step set.
func MustNewPipeline(steps []Step) *Pipeline {
	p, err := NewPipeline(steps)
	if err != nil {
		panic(err)
	}
	return p
}

// Default returns the standard daily-bar pipeline.
func Default() *Pipeline {
	return defaultPipeline
}

var defaultPipeline = MustNewPipeline(indicatorSteps())

// Compute windows the series, runs every step in order, and applies the
// output window. A window that leaves zero rows returns ErrEmptyWindow;
// degenerate numeric inputs never error, they sanitize to zero.
func (p *Pipeline) Compute(series []bars.Bar, opts Options) (*Frame, error) {
	windowed := SliceBars(series, opts.EndDate, opts.CalcWindow)
	if len(windowed) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyWindow, "no bars after windowing")
	}

	f := NewFrame(windowed)
	for _, s := range p.steps {
		s.Run(f)
	}

	return f.Tail(opts.OutputWindow), nil
}
