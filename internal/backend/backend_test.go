package backend

import (
	"context"
	"path/filepath"
	"testing"
)

func TestTypeIsValid(t *testing.T) {
	tests := []struct {
		typ  Type
		want bool
	}{
		{FileBackend, true},
		{SQLiteBackend, true},
		{MemoryBackend, true},
		{Type("redis"), false},
		{Type(""), false},
	}
	for _, tt := range tests {
		if got := tt.typ.IsValid(); got != tt.want {
			t.Errorf("IsValid(%q) = %v, want %v", tt.typ, got, tt.want)
		}
	}
}

func TestCreateStoreInvalidType(t *testing.T) {
	if _, _, err := CreateStore(Config{Type: "redis"}, nil); err == nil {
		t.Fatal("expected error for unknown backend type")
	}
}

func TestCreateStoreMemory(t *testing.T) {
	store, cleanup, err := CreateStore(Config{Type: MemoryBackend}, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer cleanup()

	if err := store.Write(context.Background(), "k", []byte("v")); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, ok, err := store.Read(context.Background(), "k")
	if err != nil || !ok || string(got) != "v" {
		t.Fatalf("read back: %q ok=%v err=%v", got, ok, err)
	}
}

func TestCreateStoreFile(t *testing.T) {
	dir := t.TempDir()
	store, cleanup, err := CreateStore(Config{Type: FileBackend, DataDirectory: dir}, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer cleanup()

	if err := store.Write(context.Background(), "k", []byte("v")); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestCreateStoreSQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, cleanup, err := CreateStore(Config{Type: SQLiteBackend, SQLiteDBPath: dbPath}, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer cleanup()

	ctx := context.Background()
	if err := store.Write(ctx, "dashboard-sales", []byte(`[]`)); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, ok, err := store.Read(ctx, "dashboard-sales")
	if err != nil || !ok || string(got) != `[]` {
		t.Fatalf("read back: %q ok=%v err=%v", got, ok, err)
	}
}
