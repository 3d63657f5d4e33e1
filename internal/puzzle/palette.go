package puzzle

import "math/rand"

// colourMapping returns the colour relabelling applied at setup.
// Shift, Flip and Spin draw a uniform permutation; Blink rotates colours by a
// random offset so the cyclic order its moves rely on is preserved.
func colourMapping(pack Pack, colours int, rng *rand.Rand) []int {
	if pack == PackBlink {
		offset := rng.Intn(colours)
		mapping := make([]int, colours)
		for c := range mapping {
			mapping[c] = (c + offset) % colours
		}
		return mapping
	}
	return rng.Perm(colours)
}

// identity returns the mapping that leaves every colour alone.
func identity(colours int) []int {
	mapping := make([]int, colours)
	for c := range mapping {
		mapping[c] = c
	}
	return mapping
}
