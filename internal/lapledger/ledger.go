// Package lapledger keeps the ordered list of laps recorded during a
// stopwatch run.
package lapledger

import "clock_tui/internal/timekeeper"

// Record is one lap. Index is 1-based and equal to the lap's position.
type Record struct {
	Index      uint32
	Lap        timekeeper.Breakdown
	Cumulative timekeeper.Breakdown
}

type Ledger struct {
	records []Record
}

func New() *Ledger {
	return &Ledger{}
}

// Record closes the keeper's current lap and appends it. The cumulative time
// is the keeper's total at this moment.
func (l *Ledger) Record(k *timekeeper.TimeKeeper) Record {
	rec := Record{
		Index:      uint32(len(l.records) + 1),
		Cumulative: k.Elapsed(),
		Lap:        timekeeper.FromSeconds(k.CloseLap()),
	}
	l.records = append(l.records, rec)
	return rec
}

func (l *Ledger) Clear() {
	l.records = nil
}

// All returns a copy of the records in index order.
func (l *Ledger) All() []Record {
	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out
}

func (l *Ledger) Len() int {
	return len(l.records)
}
