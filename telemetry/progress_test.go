package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableAccumulatesRecordsAndAdvances(t *testing.T) {
	table := NewTable(nil)
	stop := table.Advance(10, Record{Scan: 0, Block: 0, NumBlocks: 2, PairsSeen: 10, LogLikelihood: -1.5})
	assert.False(t, stop)
	stop = table.Advance(5, Record{Scan: 0, Block: 1, NumBlocks: 2, PairsSeen: 5, LogLikelihood: -1.2})
	assert.False(t, stop)

	assert.Equal(t, 15, table.PairsSeen())
	records := table.Records()
	assert.Len(t, records, 2)
	assert.Equal(t, -1.5, records[0].LogLikelihood)
	assert.Equal(t, -1.2, records[1].LogLikelihood)
}

func TestTableStopFuncRequestsStop(t *testing.T) {
	var seen []Record
	table := NewTable(func(r Record) bool {
		seen = append(seen, r)
		return r.Scan >= 1
	})

	stop := table.Advance(1, Record{Scan: 0})
	assert.False(t, stop)
	stop = table.Advance(1, Record{Scan: 1})
	assert.True(t, stop)
	assert.Len(t, seen, 2)
}

func TestNewTableWithNilCallbackNeverStops(t *testing.T) {
	table := NewTable(nil)
	for i := 0; i < 5; i++ {
		assert.False(t, table.Advance(1, Record{Scan: i}))
	}
	assert.Equal(t, 5, table.PairsSeen())
}
