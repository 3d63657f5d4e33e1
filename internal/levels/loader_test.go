package levels

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-hexes/internal/levels/formats"
	"github.com/vovakirdan/tui-hexes/internal/puzzle"
)

func TestEmbeddedLevelsLoad(t *testing.T) {
	c, err := Open("")
	require.NoError(t, err)
	require.Equal(t, 4, c.Len())

	ids := make([]string, 0, c.Len())
	for _, l := range c.All() {
		ids = append(ids, l.ID)
	}
	assert.Equal(t, []string{"01-hatch", "02-bands", "03-columns", "04-wide"}, ids)
}

func TestEmbeddedLevelsArePlayable(t *testing.T) {
	c, err := Open("")
	require.NoError(t, err)

	for _, l := range c.All() {
		for _, pack := range puzzle.Packs() {
			require.True(t, l.Has(pack), "%s lacks %s", l.ID, pack)

			s, err := l.NewSession(pack, 1234, nil)
			require.NoError(t, err, "%s/%s", l.ID, pack)
			assert.False(t, s.IsSolved(), "%s/%s starts solved", l.ID, pack)
			assert.Equal(t, 0, s.MoveCount())
			assert.Greater(t, s.Par(), 0)
		}
	}
}

func TestParOverride(t *testing.T) {
	c, err := Open("")
	require.NoError(t, err)

	l, err := c.ByID("03-columns")
	require.NoError(t, err)

	spin, err := l.NewSession(puzzle.PackSpin, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, spin.Par())

	shift, err := l.NewSession(puzzle.PackShift, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, shift.Par(), "par defaults to the scramble length")
}

func TestCatalogNavigation(t *testing.T) {
	c, err := Open("")
	require.NoError(t, err)

	_, err = c.ByID("99-missing")
	assert.True(t, errors.Is(err, ErrLevelNotFound))

	next, ok := c.Next("01-hatch", puzzle.PackFlip)
	require.True(t, ok)
	assert.Equal(t, "02-bands", next.ID)

	_, ok = c.Next("04-wide", puzzle.PackFlip)
	assert.False(t, ok, "last level has no successor")

	first, ok := c.First(puzzle.PackBlink)
	require.True(t, ok)
	assert.Equal(t, "01-hatch", first.ID)
	assert.Len(t, c.ForPack(puzzle.PackSpin), 4)
}

const shiftOnly = `
id: a-shift
radius: 1
packs:
  shift:
    layout: "0011122"
    scramble: "0:3:0"
`

func TestLoaderSkipsInvalidFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"good.yaml": {Data: []byte(shiftOnly)},
		"nested/bad-pack.yaml": {Data: []byte(`
id: b-bad
radius: 1
packs:
  twist:
    layout: "0011122"
`)},
		"short.yml": {Data: []byte(`
id: c-short
radius: 1
packs:
  flip:
    layout: "00111"
    scramble: "0:6:0"
`)},
		"notes.txt":   {Data: []byte("not a level")},
		"broken.yaml": {Data: []byte("id: [")},
	}

	levels, err := NewLoader(fsys).LoadAll()
	require.NoError(t, err)
	require.Len(t, levels, 1)
	assert.Equal(t, "a-shift", levels[0].ID)
	assert.Equal(t, "a-shift", levels[0].Name, "name defaults to the ID")
	assert.Equal(t, []puzzle.Pack{puzzle.PackShift}, levels[0].Packs())

	_, err = levels[0].SessionConfig(puzzle.PackBlink, 0)
	assert.True(t, errors.Is(err, ErrPackMissing))
}

func TestLoadCatalogEmpty(t *testing.T) {
	_, err := LoadCatalog(NewLoader(fstest.MapFS{}))
	assert.True(t, errors.Is(err, ErrNoLevels))
}

func TestValidateCodes(t *testing.T) {
	tests := []struct {
		name  string
		setup formats.Setup
		code  string
	}{
		{
			name:  "layout length",
			setup: formats.Setup{Layout: []int{0, 0, 1}},
			code:  "LAYOUT_LENGTH",
		},
		{
			name:  "rejected scramble",
			setup: formats.Setup{Layout: []int{0, 0, 1, 1, 1, 2, 2}, Scramble: []puzzle.Move{{I1: 0, I2: 5, I3: 0}}},
			code:  "SCRAMBLE_REJECTED",
		},
		{
			name:  "not scrambled",
			setup: formats.Setup{Layout: []int{0, 0, 1, 1, 1, 2, 2}},
			code:  "ALREADY_SOLVED",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := Level{ID: "t", Radius: 1, Setups: map[puzzle.Pack]formats.Setup{puzzle.PackShift: tc.setup}}
			err := Validate(l)

			var ve ValidationError
			require.True(t, errors.As(err, &ve), "got %v", err)
			assert.Equal(t, tc.code, ve.Code)
		})
	}

	var ve ValidationError
	require.True(t, errors.As(Validate(Level{ID: "empty"}), &ve))
	assert.Equal(t, "NO_PACKS", ve.Code)
}
