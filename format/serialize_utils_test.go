package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloatToFixedWidthString(t *testing.T) {
	type testCase struct {
		Input    float64
		Width    int
		Expected string
	}

	check := func(t *testing.T, tc testCase) {
		t.Helper()
		actual := FloatToFixedWidthString(tc.Input, tc.Width)
		assert.Equal(t, tc.Expected, actual)
		assert.Len(t, actual, tc.Width)
	}

	check(t, testCase{Input: 1.5, Width: 8, Expected: "     1.5"})
	check(t, testCase{Input: 3.552, Width: 8, Expected: "   3.552"})
	check(t, testCase{Input: 63000, Width: 8, Expected: "   63000"})
	check(t, testCase{Input: -0.084, Width: 8, Expected: "  -0.084"})
	check(t, testCase{Input: 1.0 / 3.0, Width: 6, Expected: "0.3333"})
	check(t, testCase{Input: 0, Width: 4, Expected: "   0"})

	t.Run("Overflow", func(t *testing.T) {
		assert.Equal(t, "1.23457e+08", FloatToFixedWidthString(123456789, 8))
	})
}
