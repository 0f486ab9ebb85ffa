package utils

import "github.com/google/uuid"

// UUIDGenerator issues time-ordered identifiers for request ids, external
// ids, and newly created entities.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, falling back to a random UUIDv4 when the
// system clock source is unavailable.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
