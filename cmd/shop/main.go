package main

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"MiniCart/internal/cart"
	"MiniCart/internal/catalog"
	"MiniCart/internal/cli"
	"MiniCart/internal/order"
	"MiniCart/pkg/kit"
)

func main() {
	_ = godotenv.Load()

	log := kit.NewLogger("shop", getenv("LOG_LEVEL", "warn"))
	defer func() { _ = log.Sync() }()

	catalogStore := catalog.NewFileStore(getenv("CATALOG_FILE", "products.json"), log)
	cartStore := cart.NewFileStore(getenv("CART_FILE", "cart.json"), log)
	receipts := order.NewFileStore(getenv("ORDERS_FILE", "orders.json"), log)

	sc, err := cart.New(catalogStore, cartStore, receipts, log)
	if err != nil {
		log.Fatal("cart init failed", zap.Error(err))
	}

	menu := cli.New(sc, os.Stdin, os.Stdout, log)
	if err := menu.Run(); err != nil {
		log.Fatal("shop stopped", zap.Error(err))
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
