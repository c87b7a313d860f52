// Package backend selects and constructs the snapshot store the ledger
// persists into, based on configuration.
package backend

// Type names a snapshot store implementation.
type Type string

const (
	FileBackend   Type = "file"
	SQLiteBackend Type = "sqlite"
	MemoryBackend Type = "memory"
)

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}

// IsValid reports whether the backend type is one of the known stores.
func (t Type) IsValid() bool {
	switch t {
	case FileBackend, SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}

// Config holds what the factory needs to build a store.
type Config struct {
	Type Type

	// File backend
	DataDirectory string

	// SQLite backend
	SQLiteDBPath string
}

// CleanupFunc releases resources held by a store.
type CleanupFunc func() error
