package catalog

// Store persists the full catalog. Reads and writes are whole-file:
// the catalog is loaded once at startup and rewritten after every
// stock mutation.
type Store interface {
	Load() (map[string]Product, error)
	Save(products map[string]Product) error
}
