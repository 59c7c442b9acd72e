package formatter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		ms   uint64
		want string
	}{
		{0, ""},
		{999, ""},
		{1000, "1 Second"},
		{1999, "1 Second"},
		{2000, "2 Seconds"},
		{60000, "1 Minute"},
		{61000, "1 Minute 1 Second"},
		{3600000, "1 Hour"},
		{3601000, "1 Hour 1 Second"},
		{3661000, "1 Hour 1 Minute 1 Second"},
		{7200000, "2 Hours"},
		{7322000, "2 Hours 2 Minutes 2 Seconds"},
		{100 * 3600000, "100 Hours"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.ms))
		})
	}
}

func TestFormatDuration_MaxValue(t *testing.T) {
	assert.Equal(t, "5124095576030 Hours 25 Minutes 51 Seconds", FormatDuration(math.MaxUint64))
}

func TestDurationLabel(t *testing.T) {
	assert.Equal(t, "0 Seconds", DurationLabel(0))
	assert.Equal(t, "0 Seconds", DurationLabel(500))
	assert.Equal(t, "1 Second", DurationLabel(1000))
}
