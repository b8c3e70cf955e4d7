package memutils

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestAlign(t *testing.T) {
	require.Equal(t, 256, AlignUp(1, 256))
	require.Equal(t, 256, AlignUp(256, 256))
	require.Equal(t, 512, AlignUp(257, 256))
	require.Equal(t, 0, AlignDown(255, 256))
	require.Equal(t, 256, AlignDown(300, 256))
	require.Equal(t, 13, AlignUp(13, 0))
}

func TestCheckPow2(t *testing.T) {
	require.NoError(t, CheckPow2(1, "one"))
	require.NoError(t, CheckPow2(uint(4096), "page"))

	err := CheckPow2(12, "twelve")
	require.Error(t, err)
	require.True(t, errors.Is(err, PowerOfTwoError))
	require.Contains(t, err.Error(), "twelve is 12")

	require.Error(t, CheckPow2(0, "zero"))
}

func TestRangeValidate(t *testing.T) {
	testCases := map[string]struct {
		Range    Range
		Expected error
	}{
		"Whole": {
			Range: Range{Offset: 0, Size: 4096, Capacity: 4096, Alignment: 256},
		},
		"Unaligned parent requirement": {
			Range: Range{Offset: 100, Size: 10, Capacity: 4096},
		},
		"Tail": {
			Range:    Range{Offset: 4096, Size: 1, Capacity: 4096, Alignment: 1},
			Expected: OutOfRangeError,
		},
		"Negative": {
			Range:    Range{Offset: -1, Size: 1, Capacity: 4096},
			Expected: OutOfRangeError,
		},
		"Misaligned": {
			Range:    Range{Offset: 100, Size: 10, Capacity: 4096, Alignment: 64},
			Expected: MisalignedError,
		},
		"Bad alignment": {
			Range:    Range{Offset: 0, Size: 10, Capacity: 4096, Alignment: 48},
			Expected: PowerOfTwoError,
		},
	}

	for name, testCase := range testCases {
		t.Run(name, func(t *testing.T) {
			err := testCase.Range.Validate()
			if testCase.Expected == nil {
				require.NoError(t, err)
			} else {
				require.True(t, errors.Is(err, testCase.Expected), "expected %v, got %v", testCase.Expected, err)
			}
		})
	}
}
