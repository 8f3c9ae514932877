package pkg

import (
	"github.com/google/uuid"
)

type randomizer interface {
	Intn(n int) int
}

// GenerateMatchID - generates a unique identifier for the match.
func GenerateMatchID() string {
	return uuid.NewString()
}

// PickName - returns a random name from names, or fallback when names is empty.
func PickName(rnd randomizer, names []string, fallback string) string {
	if len(names) == 0 {
		return fallback
	}

	return names[rnd.Intn(len(names))]
}
