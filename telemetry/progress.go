package telemetry

// Record is one row of the progress table: the log-likelihood and
// (for CRF training) prior value observed after completing a block, or
// the aggregate for a full scan.
type Record struct {
	Scan          int
	Block         int
	NumBlocks     int
	PairsSeen     int
	LogLikelihood float64
	Prior         float64
}

// StopFunc is a cooperative stop callback: returning true asks the caller
// to terminate training at the next scan boundary. It is never consulted
// mid-block.
type StopFunc func(Record) bool

// Table accumulates progress records and advances a counter of training
// pairs seen so far, forwarding each record to an optional StopFunc. It
// has no algorithmic role; callers may ignore it entirely by passing a nil
// StopFunc.
type Table struct {
	records  []Record
	advance  int
	onRecord StopFunc
}

// NewTable builds a progress table with an optional stop callback.
func NewTable(onRecord StopFunc) *Table {
	return &Table{onRecord: onRecord}
}

// Advance appends a record, advances the pairs-seen counter by n, and
// reports whether the caller asked to stop.
func (t *Table) Advance(n int, rec Record) bool {
	t.advance += n
	t.records = append(t.records, rec)
	if t.onRecord == nil {
		return false
	}
	return t.onRecord(rec)
}

// Records returns the accumulated progress table.
func (t *Table) Records() []Record { return t.records }

// PairsSeen returns the total count advanced so far.
func (t *Table) PairsSeen() int { return t.advance }
