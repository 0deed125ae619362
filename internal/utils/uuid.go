package utils

import "github.com/google/uuid"

// UUIDGenerator issues time-ordered ids for users, saved chats and traces.
type UUIDGenerator struct {
	newV7 func() (uuid.UUID, error)
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{newV7: uuid.NewV7}
}

// Generate returns a UUIDv7. If the v7 source fails a random v4 is used so
// callers never get an empty id.
func (g *UUIDGenerator) Generate() string {
	if id, err := g.newV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
