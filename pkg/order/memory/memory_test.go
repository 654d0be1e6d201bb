package memory

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/Joy-it-code/ecommerce-platform2/pkg/order"
)

func TestCreateAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	repo := New()

	for want := 1; want <= 5; want++ {
		id, err := repo.Create(ctx, "1", json.RawMessage(`[]`))
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if id != want {
			t.Fatalf("expected id %d, got %d", want, id)
		}
	}
}

func TestCreateGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := New()

	id, err := repo.Create(ctx, "1", json.RawMessage(`[]`))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.OrderID != id || got.UserID != "1" || got.Status != order.StatusPending {
		t.Fatalf("unexpected order: %+v", got)
	}
	if string(got.Items) != `[]` {
		t.Fatalf("items not stored verbatim: %s", got.Items)
	}
}

func TestGetUnknownID(t *testing.T) {
	ctx := context.Background()
	repo := New()

	if _, err := repo.Get(ctx, 1); !errors.Is(err, order.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := repo.Get(ctx, 0); !errors.Is(err, order.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for zero id, got %v", err)
	}
}

func TestConcurrentCreateUniqueIDs(t *testing.T) {
	ctx := context.Background()
	repo := New()

	const n = 100
	ids := make(chan int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := repo.Create(ctx, "u", json.RawMessage(`[]`))
			if err != nil {
				t.Errorf("create: %v", err)
				return
			}
			ids <- id
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool, n)
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate order id %d", id)
		}
		seen[id] = true
		if id < 1 || id > n {
			t.Fatalf("id %d outside expected range 1..%d", id, n)
		}
	}
	if len(seen) != n {
		t.Fatalf("expected %d unique ids, got %d", n, len(seen))
	}
}
