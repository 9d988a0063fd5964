package order

import "time"

// Line is one sold cart line, frozen at checkout time.
type Line struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Qty       int     `json:"qty"`
	Price     float64 `json:"price"`
	Subtotal  float64 `json:"subtotal"`
}

// Receipt records one completed checkout.
type Receipt struct {
	ID       string    `json:"id"`
	Lines    []Line    `json:"lines"`
	Total    float64   `json:"total"`
	PlacedAt time.Time `json:"placed_at"`
}

type Store interface {
	Append(r Receipt) error
	List() ([]Receipt, error)
}
