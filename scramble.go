package nxcube

import (
	"fmt"
	"math/rand"
	"time"
)

// Scramble applies n random legal moves drawn from the cube's full token
// set and returns the sequence that was applied. Pass a seeded rng for a
// reproducible scramble; nil uses a time-based seed.
func (c *Cube) Scramble(n int, rng *rand.Rand) ([]string, error) {
	if n < 0 {
		return nil, fmt.Errorf("scramble length must not be negative, got %d: %w", n, ErrInvalidArgument)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	legal := LegalMoves(c.size)
	tokens := make([]string, 0, n)
	for i := 0; i < n; i++ {
		token := legal[rng.Intn(len(legal))]
		if err := c.Rotate(token); err != nil {
			return tokens, err
		}
		tokens = append(tokens, token)
	}
	return tokens, nil
}
