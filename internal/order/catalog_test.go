package order

import (
	"errors"
	"testing"
)

func TestDefaultCatalogLookup(t *testing.T) {
	c := DefaultCatalog()

	it, err := c.Find(1)
	if err != nil {
		t.Fatalf("Find(1): %v", err)
	}
	if it.Name != "🍔 Smash Burger Clássico" || it.PriceCents != 2000 {
		t.Fatalf("unexpected item: %+v", it)
	}

	if _, err := c.Find(99); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("Find(99) err = %v, want ErrItemNotFound", err)
	}
}

func TestDefaultCatalogShape(t *testing.T) {
	c := DefaultCatalog()
	cats := c.Categories()
	if len(cats) != 2 {
		t.Fatalf("categories = %d, want 2", len(cats))
	}
	if cats[0].Name != "Lanches" || len(cats[0].Items) != 6 {
		t.Errorf("first category %q with %d items", cats[0].Name, len(cats[0].Items))
	}
	if cats[1].Name != "Bebidas" || len(cats[1].Items) != 4 {
		t.Errorf("second category %q with %d items", cats[1].Name, len(cats[1].Items))
	}

	seen := make(map[int]bool)
	for _, cat := range cats {
		for _, it := range cat.Items {
			if seen[it.ID] {
				t.Errorf("duplicate item id %d", it.ID)
			}
			seen[it.ID] = true
			if it.PriceCents < 0 {
				t.Errorf("item %d has negative price", it.ID)
			}
		}
	}
}
