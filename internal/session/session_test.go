package session

import (
	"fmt"
	"testing"
	"time"

	"github.com/arcturus-labs/property-search/services"
)

func TestLRUStore_PutGet(t *testing.T) {
	store := NewLRUStore(10, time.Minute)

	id := NewSessionID()
	store.Put(id, services.SearchQuery{Title: "victorian"})

	got, ok := store.Get(id)
	if !ok {
		t.Fatal("session not found after Put")
	}
	if got.Title != "victorian" {
		t.Errorf("Title = %q, want %q", got.Title, "victorian")
	}
}

func TestLRUStore_MissingSession(t *testing.T) {
	store := NewLRUStore(10, time.Minute)

	if _, ok := store.Get("no-such-session"); ok {
		t.Error("unknown session id should not resolve")
	}
}

func TestLRUStore_Delete(t *testing.T) {
	store := NewLRUStore(10, time.Minute)

	store.Put("s1", services.SearchQuery{Title: "loft"})
	store.Delete("s1")

	if _, ok := store.Get("s1"); ok {
		t.Error("session survived Delete")
	}
}

func TestLRUStore_CapacityEvictsOldest(t *testing.T) {
	store := NewLRUStore(2, time.Minute)

	for i := 0; i < 3; i++ {
		store.Put(fmt.Sprintf("s%d", i), services.SearchQuery{})
	}

	if store.Len() != 2 {
		t.Errorf("Len = %d, want 2", store.Len())
	}
	if _, ok := store.Get("s0"); ok {
		t.Error("oldest session should have been evicted")
	}
	if _, ok := store.Get("s2"); !ok {
		t.Error("newest session missing")
	}
}

func TestNewSessionID_Unique(t *testing.T) {
	if NewSessionID() == NewSessionID() {
		t.Error("consecutive session ids collide")
	}
}
