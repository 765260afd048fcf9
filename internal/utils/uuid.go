package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered identifiers for new records.
// UUIDv7 keeps inserts roughly append-ordered in the primary key index.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
