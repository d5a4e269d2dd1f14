// Package storage provides the key-value persistence capability the
// game manager is constructed with. Values are opaque JSON blobs; the
// serialization rules live with the manager, not here.
package storage

import "context"

// Store is a synchronous key-value service. Get returns (nil, nil)
// when the key is absent. There is no transactional guarantee across
// keys; a crash between two Sets can lose the later one.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
