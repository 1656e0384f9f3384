package session

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
)

// set stores v under id through Update.
func set[T any](t *testing.T, store *MemoryStore[T], id string, v T) {
	t.Helper()
	if _, err := store.Update(context.Background(), id, func(T, bool) (T, error) { return v, nil }); err != nil {
		t.Fatalf("Unexpected error on Update: %v", err)
	}
}

func TestMemoryStore_Get(t *testing.T) {
	store := NewMemoryStore[string]()

	ctx := context.Background()
	id := "test-id"
	value := "test-value"

	set(t, store, id, value)

	// Test Get existing
	got, ok, err := store.Get(ctx, id)
	if err != nil {
		t.Fatalf("Unexpected error on Get: %v", err)
	}
	if !ok {
		t.Error("Expected value to exist")
	}
	if got != value {
		t.Errorf("Expected value '%s', got '%s'", value, got)
	}

	// Test Get non-existing
	_, ok, err = store.Get(ctx, "non-existent")
	if err != nil {
		t.Fatalf("Unexpected error on Get: %v", err)
	}
	if ok {
		t.Error("Expected value to not exist")
	}
}

func TestMemoryStore_Overwrite(t *testing.T) {
	store := NewMemoryStore[int]()

	ctx := context.Background()
	id := "test-id"

	set(t, store, id, 10)
	set(t, store, id, 20)

	// Verify overwrite
	got, ok, err := store.Get(ctx, id)
	if err != nil {
		t.Fatalf("Unexpected error on Get: %v", err)
	}
	if !ok {
		t.Error("Expected value to exist")
	}
	if got != 20 {
		t.Errorf("Expected value 20, got %d", got)
	}
}

func TestMemoryStore_NewID(t *testing.T) {
	store := NewMemoryStore[string]()

	// Generate multiple IDs and ensure they're unique
	ids := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := store.NewID()
		if ids[id] {
			t.Errorf("Duplicate ID generated: %s", id)
		}
		ids[id] = true

		if _, err := uuid.Parse(id); err != nil {
			t.Errorf("Expected a UUID, got %q: %v", id, err)
		}
	}
}

func TestMemoryStore_Concurrent(t *testing.T) {
	store := NewMemoryStore[int]()

	ctx := context.Background()

	// Test concurrent writes
	done := make(chan bool, 10)
	for i := 0; i < 10; i++ {
		go func(id int) {
			_, err := store.Update(ctx, "key", func(int, bool) (int, error) { return id, nil })
			if err != nil {
				t.Errorf("Error in concurrent Update: %v", err)
			}
			done <- true
		}(i)
	}

	// Wait for all goroutines
	for i := 0; i < 10; i++ {
		<-done
	}

	// Verify we can still read
	_, ok, err := store.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Unexpected error on Get: %v", err)
	}
	if !ok {
		t.Error("Expected value to exist after concurrent writes")
	}
}

func TestMemoryStore_Update(t *testing.T) {
	store := NewMemoryStore[int]()
	ctx := context.Background()

	got, err := store.Update(ctx, "k", func(v int, ok bool) (int, error) {
		if ok {
			t.Error("Expected no value before first update")
		}
		return v + 1, nil
	})
	if err != nil {
		t.Fatalf("Unexpected error on Update: %v", err)
	}
	if got != 1 {
		t.Errorf("Expected 1, got %d", got)
	}

	boom := errors.New("boom")
	got, err = store.Update(ctx, "k", func(v int, ok bool) (int, error) {
		return 100, boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("Expected boom, got %v", err)
	}
	if got != 1 {
		t.Errorf("Expected current value 1 returned on failure, got %d", got)
	}
	if v, _, _ := store.Get(ctx, "k"); v != 1 {
		t.Errorf("Expected failed update to leave value 1, got %d", v)
	}
}

func TestMemoryStore_UpdateSerializes(t *testing.T) {
	store := NewMemoryStore[int]()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = store.Update(ctx, "counter", func(v int, _ bool) (int, error) {
				return v + 1, nil
			})
		}()
	}
	wg.Wait()

	if v, _, _ := store.Get(ctx, "counter"); v != 50 {
		t.Errorf("Expected 50 increments, got %d", v)
	}
}

func TestMemoryStore_Delete(t *testing.T) {
	store := NewMemoryStore[string]()
	ctx := context.Background()

	set(t, store, "k", "v")
	if err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("Unexpected error on Delete: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "k"); ok {
		t.Error("Expected value to be gone after Delete")
	}
}
