package puzzle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoves(t *testing.T) {
	tests := []struct {
		in      string
		want    []Move
		wantErr bool
	}{
		{"", nil, false},
		{"0:3:0", []Move{{0, 3, 0}}, false},
		{"0:2:9,16:17:13", []Move{{0, 2, 9}, {16, 17, 13}}, false},
		{"4:5", []Move{{4, 5, 0}}, false},
		{" 1 : 2 : 3 , 4:5:6 ", []Move{{1, 2, 3}, {4, 5, 6}}, false},
		{"1", nil, true},
		{"1:2:3:4", nil, true},
		{"a:b:c", nil, true},
		{"1:-2:0", nil, true},
		{"0:3:0,", nil, true},
	}

	for _, tc := range tests {
		got, err := ParseMoves(tc.in)
		if tc.wantErr {
			require.Error(t, err, "ParseMoves(%q)", tc.in)
			assert.True(t, errors.Is(err, ErrInvalidNotation))
			continue
		}
		require.NoError(t, err, "ParseMoves(%q)", tc.in)
		assert.Equal(t, tc.want, got, "ParseMoves(%q)", tc.in)
	}
}

func TestFormatMoves(t *testing.T) {
	moves := []Move{{0, 2, 9}, {16, 17, 13}, {4, 5, 0}}
	s := FormatMoves(moves)
	assert.Equal(t, "0:2:9,16:17:13,4:5:0", s)

	back, err := ParseMoves(s)
	require.NoError(t, err)
	assert.Equal(t, moves, back)
	assert.Equal(t, "", FormatMoves(nil))
}

func TestParseLayout(t *testing.T) {
	l, err := ParseLayout("001\n1122")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 1, 1, 1, 2, 2}, l)
	assert.Equal(t, "0011122", FormatLayout(l))

	_, err = ParseLayout("00x")
	assert.True(t, errors.Is(err, ErrInvalidNotation))

	_, err = ParseLayout("  ")
	assert.True(t, errors.Is(err, ErrInvalidNotation))
}

func TestParsePack(t *testing.T) {
	for _, p := range Packs() {
		got, err := ParsePack(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	got, err := ParsePack(" Blink ")
	require.NoError(t, err)
	assert.Equal(t, PackBlink, got)

	_, err = ParsePack("twist")
	assert.True(t, errors.Is(err, ErrUnknownPack))
}
