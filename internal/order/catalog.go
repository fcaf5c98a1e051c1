package order

import "errors"

// ErrItemNotFound indicates an item id that does not exist in the catalog.
// Callers treat it as user input error, never as a fault.
var ErrItemNotFound = errors.New("order: item not found")

// Item is a single orderable catalog entry. Prices are held in centavos.
type Item struct {
	ID         int
	Name       string
	PriceCents int64
}

// Category groups items under a named section of the menu.
type Category struct {
	Name  string
	Icon  string
	Items []Item
}

// Catalog is the immutable menu built once at startup and injected where needed.
type Catalog struct {
	categories []Category
	byID       map[int]Item
}

// NewCatalog builds a catalog from categories, indexing items by id.
// Definition order of categories and items is the rendering order.
func NewCatalog(categories []Category) *Catalog {
	c := &Catalog{
		categories: categories,
		byID:       make(map[int]Item),
	}
	for _, cat := range categories {
		for _, it := range cat.Items {
			c.byID[it.ID] = it
		}
	}
	return c
}

// Categories returns the menu sections in rendering order.
func (c *Catalog) Categories() []Category {
	return c.categories
}

// Find resolves an item by id or returns ErrItemNotFound.
func (c *Catalog) Find(id int) (Item, error) {
	it, ok := c.byID[id]
	if !ok {
		return Item{}, ErrItemNotFound
	}
	return it, nil
}

// DefaultCatalog returns the Smash Burger menu.
func DefaultCatalog() *Catalog {
	return NewCatalog([]Category{
		{
			Name: "Lanches",
			Icon: "🍔",
			Items: []Item{
				{ID: 1, Name: "🍔 Smash Burger Clássico", PriceCents: 2000},
				{ID: 2, Name: "🥗 Smash! Salada", PriceCents: 2300},
				{ID: 3, Name: "🥓 Salada Bacon", PriceCents: 2700},
				{ID: 4, Name: "🍔🍔🍔 Smash!! Triple", PriceCents: 2800},
				{ID: 5, Name: "🍔🥓 Smash Burger Bacon", PriceCents: 2999},
				{ID: 6, Name: "🍔🍖️ Burger Calabacon", PriceCents: 3299},
			},
		},
		{
			Name: "Bebidas",
			Icon: "🥤",
			Items: []Item{
				{ID: 7, Name: "🥤 Coca-Cola 2L", PriceCents: 1200},
				{ID: 8, Name: "🥤 Poty Guaraná 2L", PriceCents: 1000},
				{ID: 9, Name: "🥤 Coca-Cola Lata", PriceCents: 600},
				{ID: 10, Name: "🥤 Guaraná Lata", PriceCents: 600},
			},
		},
	})
}
