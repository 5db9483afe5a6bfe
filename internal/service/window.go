package service

import "time"

// defaultWindow is the span used when the caller provides no lower bound.
const defaultWindow = 7 * 24 * time.Hour

// ResolveWindow computes the effective [from, to] query window.
//
// Missing bounds default to "now" for to and to-7d for from. Ordering is
// deliberately not validated: an inverted range is passed through and simply
// yields zero rows downstream.
func ResolveWindow(from, to *time.Time) (time.Time, time.Time) {
	end := time.Now().UTC()
	if to != nil {
		end = *to
	}
	start := end.Add(-defaultWindow)
	if from != nil {
		start = *from
	}
	return start, end
}
