package store

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stokradar/backend/internal/domain"
)

func testProducts(n int) []domain.Product {
	products := make([]domain.Product, n)
	for i := range products {
		products[i] = domain.Product{
			ID:          fmt.Sprintf("id-%d", i),
			Brand:       "Siemens",
			Code:        fmt.Sprintf("SIE-%d", i),
			Description: "Sinyal lambası",
			Price:       "10 TL",
		}
	}
	return products
}

func TestMemoryStore_ReplaceAndSnapshot(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.ReplaceAll(ctx, testProducts(3)); err != nil {
		t.Fatalf("ReplaceAll() error = %v", err)
	}

	snapshot, err := store.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if len(snapshot) != 3 {
		t.Fatalf("Snapshot() returned %d products, want 3", len(snapshot))
	}
	for i, product := range snapshot {
		if product.ID != fmt.Sprintf("id-%d", i) {
			t.Errorf("snapshot[%d].ID = %s, insertion order not preserved", i, product.ID)
		}
	}
}

func TestMemoryStore_ReplaceIsWholesale(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.ReplaceAll(ctx, testProducts(5)); err != nil {
		t.Fatalf("ReplaceAll() error = %v", err)
	}
	replacement := []domain.Product{{ID: "new-0", Brand: "ABB", Code: "ABB-0", Description: "Sensör", Price: "20 TL"}}
	if err := store.ReplaceAll(ctx, replacement); err != nil {
		t.Fatalf("second ReplaceAll() error = %v", err)
	}

	snapshot, err := store.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if len(snapshot) != 1 || snapshot[0].ID != "new-0" {
		t.Errorf("snapshot = %+v, want only the replacement product", snapshot)
	}
}

func TestMemoryStore_CountAndClear(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	count, err := store.Count(ctx)
	if err != nil || count != 0 {
		t.Fatalf("Count() on empty store = %d, %v; want 0, nil", count, err)
	}

	if err := store.ReplaceAll(ctx, testProducts(4)); err != nil {
		t.Fatalf("ReplaceAll() error = %v", err)
	}

	count, err = store.Count(ctx)
	if err != nil || count != 4 {
		t.Fatalf("Count() = %d, %v; want 4, nil", count, err)
	}

	deleted, err := store.Clear(ctx)
	if err != nil || deleted != 4 {
		t.Fatalf("Clear() = %d, %v; want 4, nil", deleted, err)
	}

	count, err = store.Count(ctx)
	if err != nil || count != 0 {
		t.Fatalf("Count() after Clear = %d, %v; want 0, nil", count, err)
	}
}

func TestMemoryStore_SnapshotIsIsolated(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.ReplaceAll(ctx, testProducts(2)); err != nil {
		t.Fatalf("ReplaceAll() error = %v", err)
	}

	snapshot, err := store.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	snapshot[0].Brand = "mutated"

	fresh, err := store.Snapshot(ctx)
	if err != nil {
		t.Fatalf("second Snapshot() error = %v", err)
	}
	if fresh[0].Brand != "Siemens" {
		t.Errorf("store mutated through a snapshot: Brand = %s", fresh[0].Brand)
	}
}

func TestMemoryStore_ConcurrentReplaceAndSnapshot(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	generationA := testProducts(10)
	generationB := make([]domain.Product, 10)
	for i := range generationB {
		generationB[i] = domain.Product{ID: fmt.Sprintf("b-%d", i), Brand: "ABB", Code: fmt.Sprintf("ABB-%d", i), Description: "Sensör", Price: "1"}
	}

	if err := store.ReplaceAll(ctx, generationA); err != nil {
		t.Fatalf("ReplaceAll() error = %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.ReplaceAll(ctx, generationB)
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			snapshot, err := store.Snapshot(ctx)
			if err != nil {
				t.Errorf("Snapshot() error = %v", err)
				return
			}
			// A snapshot must be a single generation, never a mix.
			if len(snapshot) != 10 {
				t.Errorf("snapshot length = %d, want 10", len(snapshot))
				return
			}
			brand := snapshot[0].Brand
			for _, product := range snapshot {
				if product.Brand != brand {
					t.Errorf("mixed-generation snapshot: %s and %s", brand, product.Brand)
					return
				}
			}
		}()
	}
	wg.Wait()
}
