package timelog

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/alexanderramin/tracker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		log   string
		total uint64
		weeks []domain.Week
	}{
		{"single record", "0|1000,", 1000, []domain.Week{{1000}}},
		{"day then week marker", "0|1000,?2000|5000,\n", 4000, []domain.Week{{1000, 3000}}},
		{"records share a day until a marker", "0|1000,0|500,?0|250,", 1750, []domain.Week{{1500, 250}}},
		{"repeated day markers", "0|1000,???", 1000, []domain.Week{{1000}}},
		{"interior empty week kept", "0|1000,\n\n0|2000,", 3000, []domain.Week{{1000}, {}, {2000}}},
		{"trailing explicit empty week kept", "0|1000,\n\n", 1000, []domain.Week{{1000}, {}}},
		{"leading empty week kept", "\n0|1000,", 1000, []domain.Week{{}, {1000}}},
		{"week marker flushes the open day", "0|1000,\n0|500,?", 1500, []domain.Week{{1000}, {500}}},
		{"zero length records dropped", "5|5,0|1000,?7|7,?", 1000, []domain.Week{{1000}}},
		{"large timestamps", "1700000000000|1700003600000,", 3600000, []domain.Week{{3600000}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg, err := Aggregate(tt.log)
			require.NoError(t, err)
			assert.Equal(t, tt.total, agg.Total)
			assert.Equal(t, tt.weeks, agg.Weeks)
			assert.False(t, agg.NoTimeLogged())
		})
	}
}

func TestAggregate_NoTimeLogged(t *testing.T) {
	for _, log := range []string{"", "?", "\n", "??\n\n?", "0|0,", "3|3,?\n"} {
		agg, err := Aggregate(log)
		require.NoError(t, err, "log %q", log)
		assert.True(t, agg.NoTimeLogged(), "log %q", log)
		assert.Equal(t, domain.Aggregation{}, agg, "log %q", log)
	}
}

func TestAggregate_FailsWholeParse(t *testing.T) {
	tests := []struct {
		name string
		log  string
	}{
		{"unterminated trailing record", "0|1000,?2000|5000"},
		{"garbage after valid data", "0|1000,\nhello"},
		{"backwards record", "0|1000,9|1,"},
		{"carriage return", "0|1000,\r\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg, err := Aggregate(tt.log)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedRecord)
			assert.Equal(t, domain.Aggregation{}, agg, "no partial result")
		})
	}
}

func TestAggregate_Overflow(t *testing.T) {
	_, err := Aggregate("0|18446744073709551615,0|1,")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDurationOverflow)
	assert.NotErrorIs(t, err, ErrMalformedRecord)

	// The day resets at the marker but the grand total still overflows.
	_, err = Aggregate("0|18446744073709551615,?0|1,")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDurationOverflow)
	assert.Contains(t, err.Error(), "total")
}

// TestAggregate_SingleRecordProperty checks that one encoded interval always
// aggregates to exactly its own duration in one day of one week.
func TestAggregate_SingleRecordProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 500; trial++ {
		a := rng.Uint64() >> 2
		b := a + uint64(rng.Int63n(1<<40)) + 1

		agg, err := Aggregate(string(EncodeInterval(a, b)))
		require.NoError(t, err)
		assert.Equal(t, b-a, agg.Total, "trial %d", trial)
		assert.Equal(t, []domain.Week{{b - a}}, agg.Weeks, "trial %d", trial)
	}
}

// TestAggregate_TotalsInvariant property-tests that markers never gain or
// lose time: the grand total equals both the sum of record durations and
// the sum of every day across every week.
func TestAggregate_TotalsInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 300; trial++ {
		buf := &bufferAppender{}
		enc := NewEncoder(buf)
		var recorded uint64

		ops := rng.Intn(40)
		for i := 0; i < ops; i++ {
			switch rng.Intn(4) {
			case 0:
				require.NoError(t, enc.AppendDayMarker())
			case 1:
				require.NoError(t, enc.AppendWeekMarker())
			default:
				start := uint64(rng.Int63n(1 << 42))
				d := uint64(rng.Int63n(8 * 3600 * 1000))
				require.NoError(t, enc.AppendInterval(start, start+d))
				recorded += d
			}
		}

		agg, err := Aggregate(buf.String())
		require.NoError(t, err, "trial %d: %q", trial, buf.String())

		var daySum uint64
		for _, w := range agg.Weeks {
			for _, d := range w {
				assert.NotZero(t, d, "trial %d: zero-length day emitted", trial)
			}
			daySum += w.Total()
		}
		assert.Equal(t, recorded, agg.Total, "trial %d", trial)
		assert.Equal(t, agg.Total, daySum, "trial %d", trial)
		if recorded == 0 {
			assert.True(t, agg.NoTimeLogged(), "trial %d", trial)
		}
	}
}

// TestAggregate_DayMarkerIdempotent checks that doubling every day marker
// leaves the day sequence unchanged.
func TestAggregate_DayMarkerIdempotent(t *testing.T) {
	logs := []string{
		"0|1000,?2000|5000,\n",
		"0|1000,?\n0|10,?0|20,",
		"?0|1,?",
	}
	for _, log := range logs {
		once, err := Aggregate(log)
		require.NoError(t, err)
		twice, err := Aggregate(strings.ReplaceAll(log, "?", "??"))
		require.NoError(t, err)
		assert.Equal(t, once, twice, "log %q", log)
	}
}
