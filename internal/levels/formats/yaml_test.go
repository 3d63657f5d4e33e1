package formats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-hexes/internal/puzzle"
)

func TestParseYAML(t *testing.T) {
	data := []byte(`
id: sample
name: Sample
radius: 1
packs:
  Shift:
    layout: "00 111 22"
    scramble: "0:3"
  blink:
    layout: "0000000"
    colours: 2
    scramble: "0:1:3"
    par: 3
metadata:
  author: someone
`)

	l, err := ParseYAML(data)
	require.NoError(t, err)

	assert.Equal(t, "sample", l.ID)
	assert.Equal(t, "Sample", l.Name)
	assert.Equal(t, 1, l.Radius)
	assert.Equal(t, "someone", l.Metadata["author"])
	require.Len(t, l.Setups, 2)

	shift := l.Setups[puzzle.PackShift]
	assert.Equal(t, []int{0, 0, 1, 1, 1, 2, 2}, shift.Layout)
	assert.Equal(t, []puzzle.Move{{I1: 0, I2: 3, I3: 0}}, shift.Scramble)

	blink := l.Setups[puzzle.PackBlink]
	assert.Equal(t, 2, blink.Colours)
	assert.Equal(t, 3, blink.Par)
}

func TestParseYAMLRejects(t *testing.T) {
	tests := map[string]string{
		"missing id": `
radius: 1
packs:
  shift: {layout: "0011122"}
`,
		"no packs": `
id: x
radius: 1
`,
		"unknown pack": `
id: x
radius: 1
packs:
  twist: {layout: "0011122"}
`,
		"bad layout": `
id: x
radius: 1
packs:
  shift: {layout: "00a1122"}
`,
		"bad scramble": `
id: x
radius: 1
packs:
  shift: {layout: "0011122", scramble: "0-3"}
`,
		"radius too large": `
id: x
radius: 9
packs:
  shift: {layout: "0"}
`,
		"too many colours": `
id: x
radius: 0
packs:
  blink: {layout: "0", colours: 11}
`,
		"duplicate pack": `
id: x
radius: 1
packs:
  shift: {layout: "0011122"}
  SHIFT: {layout: "0011122"}
`,
		"not yaml": `id: [`,
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseYAML([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestFormatExtensions(t *testing.T) {
	assert.ElementsMatch(t, []string{".yaml", ".yml"}, FormatExtensions())
}
