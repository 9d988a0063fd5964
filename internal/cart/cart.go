package cart

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"MiniCart/internal/catalog"
	"MiniCart/internal/order"
)

var (
	ErrNotFound          = errors.New("product not found")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrEmptyCart         = errors.New("cart is empty")
)

// ShoppingCart tracks the user's selection against live catalog
// stock. Every successful mutation persists both the catalog and the
// cart before returning.
type ShoppingCart struct {
	items    map[string]*Item
	products map[string]catalog.Product

	catalogStore catalog.Store
	cartStore    Store
	receipts     order.Store

	log *zap.Logger
}

// New loads the catalog and cart from their stores. An empty or
// missing catalog is seeded with sample products and persisted. Cart
// entries that no longer resolve against the catalog are dropped.
func New(catalogStore catalog.Store, cartStore Store, receipts order.Store, log *zap.Logger) (*ShoppingCart, error) {
	if log == nil {
		log = zap.NewNop()
	}

	sc := &ShoppingCart{
		items:        map[string]*Item{},
		catalogStore: catalogStore,
		cartStore:    cartStore,
		receipts:     receipts,
		log:          log,
	}

	products, err := catalogStore.Load()
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		products = catalog.Sample()
		if err := catalogStore.Save(products); err != nil {
			return nil, err
		}
		log.Info("catalog empty, seeded sample products", zap.Int("count", len(products)))
	}
	sc.products = products

	if err := sc.loadItems(); err != nil {
		return nil, err
	}
	return sc, nil
}

func (sc *ShoppingCart) loadItems() error {
	recs, err := sc.cartStore.Load()
	if err != nil {
		return err
	}

	for id, rec := range recs {
		p, ok := sc.products[rec.ProductID]
		if !ok || rec.Quantity <= 0 {
			sc.log.Warn("dropping stale cart entry",
				zap.String("product_id", rec.ProductID),
				zap.Int("quantity", rec.Quantity))
			continue
		}
		// The persisted catalog already accounts for reserved stock,
		// so reloading a cart entry must not deduct again.
		sc.items[id] = &Item{Product: p, Quantity: rec.Quantity}
	}
	return nil
}

// Add reserves quantity units of the product and puts them in the
// cart, merging with an existing line for the same product.
func (sc *ShoppingCart) Add(productID string, quantity int) error {
	p, ok := sc.products[productID]
	if !ok {
		return ErrNotFound
	}
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if !p.Decrease(quantity) {
		return ErrInsufficientStock
	}

	if it, ok := sc.items[productID]; ok {
		it.Quantity += quantity
	} else {
		sc.items[productID] = &Item{Product: p, Quantity: quantity}
	}
	return sc.persist()
}

// Remove returns the line's full reserved quantity to stock and
// deletes the line.
func (sc *ShoppingCart) Remove(productID string) error {
	it, ok := sc.items[productID]
	if !ok {
		return ErrNotFound
	}

	it.Product.Increase(it.Quantity)
	delete(sc.items, productID)
	return sc.persist()
}

// Update sets the line to newQuantity, adjusting the stock
// reservation by the difference. A non-positive quantity removes the
// line entirely.
func (sc *ShoppingCart) Update(productID string, newQuantity int) error {
	it, ok := sc.items[productID]
	if !ok {
		return ErrNotFound
	}
	if newQuantity <= 0 {
		return sc.Remove(productID)
	}

	diff := newQuantity - it.Quantity
	switch {
	case diff > 0:
		if !it.Product.Decrease(diff) {
			return ErrInsufficientStock
		}
	case diff < 0:
		it.Product.Increase(-diff)
	}

	it.Quantity = newQuantity
	return sc.persist()
}

// Total sums the subtotals of all lines from live catalog prices.
func (sc *ShoppingCart) Total() float64 {
	var total float64
	for _, it := range sc.items {
		total += it.Subtotal()
	}
	return total
}

// Checkout finalizes the cart: sold stock stays deducted, a receipt
// is recorded and the cart is cleared and persisted empty.
func (sc *ShoppingCart) Checkout() (order.Receipt, error) {
	if len(sc.items) == 0 {
		return order.Receipt{}, ErrEmptyCart
	}

	rcpt := order.Receipt{
		ID:       "r_" + uuid.NewString(),
		Total:    sc.Total(),
		PlacedAt: time.Now().UTC(),
	}
	for _, it := range sc.Items() {
		b := it.Product.Base()
		rcpt.Lines = append(rcpt.Lines, order.Line{
			ProductID: b.ID,
			Name:      b.Name,
			Qty:       it.Quantity,
			Price:     b.Price,
			Subtotal:  it.Subtotal(),
		})
	}

	if err := sc.receipts.Append(rcpt); err != nil {
		return order.Receipt{}, fmt.Errorf("record receipt: %w", err)
	}

	sc.items = map[string]*Item{}
	if err := sc.persist(); err != nil {
		return order.Receipt{}, err
	}

	sc.log.Info("checkout complete",
		zap.String("receipt_id", rcpt.ID),
		zap.Float64("total", rcpt.Total))
	return rcpt, nil
}

// Items returns the cart lines sorted by product id.
func (sc *ShoppingCart) Items() []*Item {
	out := make([]*Item, 0, len(sc.items))
	for _, it := range sc.items {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Product.Base().ID < out[j].Product.Base().ID
	})
	return out
}

// Products returns the catalog sorted by product id.
func (sc *ShoppingCart) Products() []catalog.Product {
	out := make([]catalog.Product, 0, len(sc.products))
	for _, p := range sc.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Base().ID < out[j].Base().ID
	})
	return out
}

func (sc *ShoppingCart) persist() error {
	if err := sc.catalogStore.Save(sc.products); err != nil {
		return fmt.Errorf("persist catalog: %w", err)
	}

	recs := make(map[string]ItemRecord, len(sc.items))
	for id, it := range sc.items {
		recs[id] = it.Record()
	}
	if err := sc.cartStore.Save(recs); err != nil {
		return fmt.Errorf("persist cart: %w", err)
	}
	return nil
}
