package tui

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestConnectionRegistry(t *testing.T) {
	r := NewConnectionRegistry()
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	r.Register(Connection{ID: "b", User: "bob", StartedAt: base.Add(time.Minute)})
	r.Register(Connection{ID: "a", User: "alice", StartedAt: base})

	if r.Count() != 2 {
		t.Fatalf("Count() = %d, expected 2", r.Count())
	}

	list := r.List()
	if list[0].ID != "a" || list[1].ID != "b" {
		t.Errorf("List() order = %v, expected oldest first", list)
	}

	c, ok := r.Get("b")
	if !ok || c.User != "bob" {
		t.Errorf("Get(b) = (%+v, %v)", c, ok)
	}

	if _, ok := r.Unregister("a"); !ok {
		t.Error("Unregister(a) should find the connection")
	}
	if _, ok := r.Unregister("a"); ok {
		t.Error("second Unregister(a) should report missing")
	}
	if r.Count() != 1 {
		t.Errorf("Count() = %d after unregister, expected 1", r.Count())
	}
}

func TestConnectionRegistryConcurrent(t *testing.T) {
	r := NewConnectionRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("conn-%d", i)
			r.Register(Connection{ID: id, StartedAt: time.Now()})
			_ = r.List()
			if i%2 == 0 {
				r.Unregister(id)
			}
		}(i)
	}
	wg.Wait()

	if r.Count() != 25 {
		t.Errorf("Count() = %d, expected 25", r.Count())
	}
}
