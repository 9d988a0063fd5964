package cart_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"MiniCart/internal/cart"
	"MiniCart/internal/catalog"
	"MiniCart/internal/order"
)

func newFileBackedCart(t *testing.T, dir string) *cart.ShoppingCart {
	t.Helper()

	sc, err := cart.New(
		catalog.NewFileStore(filepath.Join(dir, "products.json"), zap.NewNop()),
		cart.NewFileStore(filepath.Join(dir, "cart.json"), zap.NewNop()),
		order.NewFileStore(filepath.Join(dir, "orders.json"), zap.NewNop()),
		zap.NewNop(),
	)
	require.NoError(t, err)
	return sc
}

func TestRestartReconstructsCart(t *testing.T) {
	dir := t.TempDir()

	first := newFileBackedCart(t, dir)
	require.NoError(t, first.Add("p1", 3))
	require.NoError(t, first.Add("d1", 1))
	want := first.Total()

	// A fresh cart over the same files sees the same state.
	second := newFileBackedCart(t, dir)

	assert.InDelta(t, want, second.Total(), 1e-9)
	assert.Len(t, second.Items(), 2)

	for _, p := range second.Products() {
		if p.Base().ID == "p1" {
			assert.Equal(t, 47, p.Base().Available)
		}
	}
}

func TestFirstRunSeedsSampleFile(t *testing.T) {
	dir := t.TempDir()

	sc := newFileBackedCart(t, dir)
	assert.Len(t, sc.Products(), 5)

	raw, err := os.ReadFile(filepath.Join(dir, "products.json"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"type": "physical"`)
	assert.Contains(t, string(raw), `"type": "digital"`)
	assert.Contains(t, string(raw), `"Wireless Mouse"`)
}

func TestCartFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	s := cart.NewFileStore(path, zap.NewNop())

	want := map[string]cart.ItemRecord{
		"p1": {ProductID: "p1", Quantity: 3},
		"d1": {ProductID: "d1", Quantity: 1},
	}
	require.NoError(t, s.Save(want))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCartFileStore_MissingAndCorrupt(t *testing.T) {
	dir := t.TempDir()

	s := cart.NewFileStore(filepath.Join(dir, "cart.json"), zap.NewNop())
	got, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, got)

	badPath := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(badPath, []byte("[oops"), 0o644))

	got, err = cart.NewFileStore(badPath, zap.NewNop()).Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}
