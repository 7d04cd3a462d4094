package metrics

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{999, "999"},
		{1_000, "1.0K"},
		{1_049, "1.0K"},
		{1_050, "1.1K"},
		{850_000, "850.0K"},
		{999_949, "999.9K"},
		{999_950, "1000.0K"},
		{1_000_000, "1.0M"},
		{1_250_000, "1.3M"},
		{1_249_999, "1.2M"},
		{125_000_000, "125.0M"},
		{-5, "0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.in), "FormatNumber(%d)", tt.in)
	}
}

func TestFormatNumber_MillionsShape(t *testing.T) {
	shape := regexp.MustCompile(`^\d+\.\dM$`)
	for _, n := range []int64{1_000_000, 3_333_333, 45_678_901, 9_999_999_999} {
		assert.Regexp(t, shape, FormatNumber(n))
	}
}

func TestParseCount(t *testing.T) {
	assert.Equal(t, int64(125000), ParseCount("125000"))
	assert.Equal(t, int64(42), ParseCount(" 42 "))
	assert.Equal(t, int64(0), ParseCount(""))
	assert.Equal(t, int64(0), ParseCount("abc"))
	assert.Equal(t, int64(0), ParseCount("-10"))
	assert.Equal(t, int64(0), ParseCount("1.5"))
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "8.5M", FormatCount("8500000"))
	assert.Equal(t, "0", FormatCount("not a number"))
}
