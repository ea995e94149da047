// Package snapshots persists small client-local state that must survive a
// restart: the serialized session and the serialized query state, each under
// its own key.
package snapshots

import "context"

// Well-known snapshot keys.
const (
	KeySession = "session"
	KeyQuery   = "query"
)

// Repository is a durable key/value store for snapshots. Get returns
// (nil, nil) for a missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
