package conduit

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Resolver is the uniform resolution surface shared by both container modes.
type Resolver[T any] interface {
	// Get resolves the payload, blocking only in deferred mode
	Get(ctx context.Context) (T, error)
	// Mode reports how the payload is carried
	Mode() Mode
}

// Stamped exposes container identity metadata.
type Stamped interface {
	Id() uuid.UUID
	// CreatedAt time of creation (UTC)
	CreatedAt() time.Time
}
