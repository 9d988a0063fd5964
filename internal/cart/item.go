package cart

import (
	"fmt"

	"MiniCart/internal/catalog"
)

// Item is one cart line. Product points into the live catalog, so
// subtotals always reflect current catalog pricing.
type Item struct {
	Product  catalog.Product
	Quantity int
}

// Subtotal is price times quantity, recomputed on every call.
func (it *Item) Subtotal() float64 {
	return it.Product.Base().Price * float64(it.Quantity)
}

func (it *Item) String() string {
	b := it.Product.Base()
	return fmt.Sprintf("Item: %s, Quantity: %d, Price: $%.2f, Subtotal: $%.2f",
		b.Name, it.Quantity, b.Price, it.Subtotal())
}

func (it *Item) Record() ItemRecord {
	return ItemRecord{ProductID: it.Product.Base().ID, Quantity: it.Quantity}
}
