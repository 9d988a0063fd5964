package catalog

// Sample returns the seed catalog written on first run, when no
// catalog file exists yet.
func Sample() map[string]Product {
	return map[string]Product{
		"p1": &Physical{Generic: Generic{ID: "p1", Name: "Wireless Mouse", Price: 25.99, Available: 50}, Weight: 0.2},
		"p2": &Physical{Generic: Generic{ID: "p2", Name: "Bluetooth Keyboard", Price: 45.50, Available: 30}, Weight: 0.5},
		"d1": &Digital{Generic: Generic{ID: "d1", Name: "E-book: Go Basics", Price: 19.99, Available: 1000}, DownloadLink: "https://example.com/download/d1"},
		"d2": &Digital{Generic: Generic{ID: "d2", Name: "Photo Editing Software", Price: 59.99, Available: 500}, DownloadLink: "https://example.com/download/d2"},
		"p3": &Generic{ID: "p3", Name: "USB Flash Drive 64GB", Price: 12.99, Available: 100},
	}
}
