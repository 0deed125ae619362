package store

import (
	"context"

	"github.com/MKhiriev/go-ai-feedback/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalSessionStore keeps the signed-in user of the terminal client between
// runs. It holds at most one session.
type LocalSessionStore interface {
	// Load returns [ErrLocalSessionNotFound] when nothing usable is stored,
	// including records that cannot be decoded or miss required fields.
	Load(ctx context.Context) (models.LocalSession, error)
	Store(ctx context.Context, session models.LocalSession) error
	Clear(ctx context.Context) error
}
