package catalog

// Record is the catalog file's per-product shape. The type field is
// the discriminator used to rebuild the right variant on load.
type Record struct {
	Type         string  `json:"type"`
	ProductID    string  `json:"product_id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Available    int     `json:"quantity_available"`
	Weight       float64 `json:"weight,omitempty"`
	DownloadLink string  `json:"download_link,omitempty"`
}

// FromRecord reconstructs the product variant named by rec.Type.
// Unknown or missing types fall back to the generic variant.
func FromRecord(rec Record) Product {
	g := Generic{
		ID:        rec.ProductID,
		Name:      rec.Name,
		Price:     rec.Price,
		Available: rec.Available,
	}

	switch rec.Type {
	case TypePhysical:
		return &Physical{Generic: g, Weight: rec.Weight}
	case TypeDigital:
		return &Digital{Generic: g, DownloadLink: rec.DownloadLink}
	default:
		return &g
	}
}
