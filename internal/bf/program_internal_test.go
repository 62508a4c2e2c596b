package bf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileStripsComments(t *testing.T) {
	p, err := Compile("add two: ++ then print .")
	require.NoError(t, err)
	assert.Equal(t, []byte("++."), p.code)
	assert.Equal(t, 3, p.Len())
}

func TestCompileJumps(t *testing.T) {
	p, err := Compile("+[-[>]<]")
	require.NoError(t, err)
	assert.Equal(t, []byte("+[-[>]<]"), p.code)
	assert.Equal(t, 7, p.jump[1])
	assert.Equal(t, 1, p.jump[7])
	assert.Equal(t, 5, p.jump[3])
	assert.Equal(t, 3, p.jump[5])
	assert.Equal(t, -1, p.jump[0])
}

func TestCompileErrors(t *testing.T) {
	testCases := []struct {
		name        string
		src         string
		expectedErr error
		expectedMsg string
	}{
		{
			name:        "unmatched open",
			src:         "[[]",
			expectedErr: ErrUnmatchedOpen,
			expectedMsg: "unmatched '['. pos: 0",
		},
		{
			name:        "unmatched close",
			src:         "x+]",
			expectedErr: ErrUnmatchedClose,
			expectedMsg: "unmatched ']'. pos: 2",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Compile(tc.src)
			require.ErrorIs(t, err, tc.expectedErr)
			require.EqualError(t, err, tc.expectedMsg)
		})
	}
}

func TestOptsValidate(t *testing.T) {
	testCases := []struct {
		name        string
		opts        machineOpts
		expectedErr error
	}{
		{
			name:        "zero cells",
			opts:        machineOpts{cells: 0},
			expectedErr: errInvalidCells,
		},
		{
			name:        "negative step limit",
			opts:        machineOpts{cells: 1, stepLimit: -1},
			expectedErr: errInvalidStepLimit,
		},
		{
			name: "valid",
			opts: machineOpts{cells: 1},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.opts.validate()
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
