// time_control.go governs how many iterative-deepening depths a Search
// runs. Search is single-threaded and synchronous: the only time check
// happens between completed depths, never inside the recursion itself.

package engine

import "time"

// TimeControl bounds an iterative-deepening search by wall-clock budget
// and/or a maximum depth. Zero values disable the corresponding limit.
type TimeControl struct {
	MaxDepth int
	deadline time.Time
}

// NewTimeControl returns a TimeControl that stops after budget elapses.
// A zero or negative budget means "no time limit".
func NewTimeControl(budget time.Duration) *TimeControl {
	tc := &TimeControl{}
	if budget > 0 {
		tc.deadline = time.Now().Add(budget)
	}
	return tc
}

// NewFixedDepthTimeControl returns a TimeControl with no time budget,
// stopping only once depth maxDepth has been searched. Mainly useful
// for tests, where wall-clock timing would be nondeterministic.
func NewFixedDepthTimeControl(maxDepth int) *TimeControl {
	return &TimeControl{MaxDepth: maxDepth}
}

// NextDepth reports whether the search should begin iterating at depth,
// given whatever budget remains. It is checked once per depth, before
// that depth starts; there is no check between root children or
// mid-recursion.
func (tc *TimeControl) NextDepth(depth int) bool {
	if tc.MaxDepth > 0 && depth > tc.MaxDepth {
		return false
	}
	if !tc.deadline.IsZero() && !time.Now().Before(tc.deadline) {
		return false
	}
	return true
}
