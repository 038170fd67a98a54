package future

import (
	"fmt"

	"github.com/sartorproj/gotimeindex/timeindex"
)

// Make returns the n instants that follow idx, in the class and location of
// idx. The result never overlaps the history: every instant is strictly
// after the last historical one.
//
// It fails with timeindex.ErrInvalidHorizon when n <= 0 and with
// timeindex.ErrEmptyIndex when idx has fewer than two instants or no
// positive gap.
func Make(idx *timeindex.Index, n int, opts ...Option) (*timeindex.Index, error) {
	if err := checkHorizon(n); err != nil {
		return nil, err
	}

	plan, err := NewPlan(idx)
	if err != nil {
		return nil, err
	}
	return plan.Next(n, opts...)
}

// Next is like Make for an already inferred plan.
func (p *Plan) Next(n int, opts ...Option) (*timeindex.Index, error) {
	if err := checkHorizon(n); err != nil {
		return nil, err
	}
	return timeindex.New(p.Class, p.Project(n, opts...))
}

func checkHorizon(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: got %d", timeindex.ErrInvalidHorizon, n)
	}
	return nil
}
