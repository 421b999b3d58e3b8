// Package metrics exposes operation counters for the workbook service.
package metrics

import "time"

// Recorder receives per-operation measurements from the services.
type Recorder interface {
	// RecordOperation counts one service operation and its latency. Outcome
	// is "ok" or the error kind that ended it.
	RecordOperation(op string, outcome string, duration time.Duration)
	// AddPagesMarked counts page rows written by the completion operation.
	AddPagesMarked(n int)
	// AddRangesMaterialized counts page range rows created by reconciliation.
	AddRangesMaterialized(n int)
}

// Nop discards every measurement.
type Nop struct{}

var _ Recorder = Nop{}

func NewNop() Nop {
	return Nop{}
}

func (Nop) RecordOperation(_ string, _ string, _ time.Duration) {}

func (Nop) AddPagesMarked(_ int) {}

func (Nop) AddRangesMaterialized(_ int) {}
