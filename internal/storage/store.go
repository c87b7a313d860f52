// Package storage provides the durable key-value stores the ledger persists
// its snapshot into. A store holds opaque byte payloads under string keys;
// the ledger always reads and writes one complete snapshot per key.
package storage

import "context"

// Store is the persistence contract: read returns the payload and whether
// the key exists, write replaces the payload atomically (a reader never
// observes a partially written snapshot).
type Store interface {
	Read(ctx context.Context, key string) (payload []byte, ok bool, err error)
	Write(ctx context.Context, key string, payload []byte) error
}
