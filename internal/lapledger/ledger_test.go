package lapledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clock_tui/internal/timekeeper"
)

func advance(k *timekeeper.TimeKeeper, seconds int) {
	for i := 0; i < seconds; i++ {
		k.Tick()
	}
}

func TestRecordFirstLap(t *testing.T) {
	k := timekeeper.New()
	l := New()
	advance(k, 65)

	rec := l.Record(k)

	want := timekeeper.Breakdown{Minutes: 1, Seconds: 5}
	assert.Equal(t, Record{Index: 1, Lap: want, Cumulative: want}, rec)
	assert.Zero(t, k.LapElapsedSeconds())
	assert.Equal(t, uint64(65), k.ElapsedSeconds())
}

func TestRecordSequentialLaps(t *testing.T) {
	k := timekeeper.New()
	l := New()

	advance(k, 10)
	l.Record(k)
	advance(k, 20)
	l.Record(k)

	recs := l.All()
	require.Len(t, recs, 2)
	assert.Equal(t, uint32(1), recs[0].Index)
	assert.Equal(t, uint32(2), recs[1].Index)
	assert.Equal(t, "00:00:10", recs[0].Lap.String())
	assert.Equal(t, "00:00:20", recs[1].Lap.String())
	assert.Equal(t, "00:00:10", recs[0].Cumulative.String())
	assert.Equal(t, "00:00:30", recs[1].Cumulative.String())
}

func TestClearRestartsIndices(t *testing.T) {
	k := timekeeper.New()
	l := New()
	for i := 0; i < 5; i++ {
		advance(k, 3)
		l.Record(k)
	}
	require.Equal(t, 5, l.Len())

	l.Clear()
	k.Reset()
	assert.Zero(t, l.Len())
	assert.Empty(t, l.All())

	advance(k, 4)
	rec := l.Record(k)
	assert.Equal(t, uint32(1), rec.Index)
	assert.Equal(t, "00:00:04", rec.Lap.String())
}

func TestAllReturnsCopy(t *testing.T) {
	k := timekeeper.New()
	l := New()
	advance(k, 1)
	l.Record(k)

	recs := l.All()
	recs[0].Index = 42
	assert.Equal(t, uint32(1), l.All()[0].Index)
}
