package cart

// ItemRecord is the cart file's per-line shape. Product details are
// not duplicated here; they are re-resolved against the catalog when
// the cart is loaded.
type ItemRecord struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Store persists the cart contents, keyed by product id. Like the
// catalog store, reads and writes are whole-file.
type Store interface {
	Load() (map[string]ItemRecord, error)
	Save(items map[string]ItemRecord) error
}
