// Package models contains shared data structures used across the application.
package models

import (
	"fmt"
	"strconv"
	"time"
)

// SolveRecord is one completed solve: the elapsed time in seconds as a
// decimal string with exactly two fractional digits (e.g. "12.34").
type SolveRecord string

// NewSolveRecord converts an elapsed duration to a SolveRecord.
// Sub-millisecond precision is truncated, then the millisecond count is
// rounded half-up to centiseconds: 12345ms -> "12.35", 12344ms -> "12.34".
func NewSolveRecord(elapsed time.Duration) SolveRecord {
	if elapsed < 0 {
		elapsed = 0
	}
	ms := elapsed.Milliseconds()
	centis := (ms + 5) / 10
	return SolveRecord(fmt.Sprintf("%d.%02d", centis/100, centis%100))
}

// Seconds parses the record back into seconds.
func (r SolveRecord) Seconds() (float64, error) {
	return strconv.ParseFloat(string(r), 64)
}

// String returns the record as displayed in the times list ("12.34s").
func (r SolveRecord) String() string {
	return string(r) + "s"
}

// SessionEntry pairs a record with its 1-based display ordinal.
type SessionEntry struct {
	Ordinal int
	Record  SolveRecord
}
