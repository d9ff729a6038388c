// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService wraps a seeded generator so a run can be replayed.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService creates a generator; seed 0 means "seed from the clock".
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{rng: rand.New(rand.NewSource(seed))}
}

// Chance returns true with probability p. p >= 1 always succeeds and p <= 0
// never does, without consuming a random number.
func (s *PRNGService) Chance(p float64) bool {
	switch {
	case p >= 1:
		return true
	case p <= 0:
		return false
	}
	return s.rng.Float64() < p
}
