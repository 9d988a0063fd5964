package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"MiniCart/internal/cart"
)

// Menu drives the numbered shop menu over an arbitrary reader/writer
// pair so tests can script a session.
type Menu struct {
	cart *cart.ShoppingCart
	in   *bufio.Scanner
	out  io.Writer
	log  *zap.Logger
}

func New(sc *cart.ShoppingCart, in io.Reader, out io.Writer, log *zap.Logger) *Menu {
	if log == nil {
		log = zap.NewNop()
	}
	return &Menu{
		cart: sc,
		in:   bufio.NewScanner(in),
		out:  out,
		log:  log,
	}
}

// Run loops until the user exits or input ends. Domain errors are
// reported and the menu continues; persistence errors abort.
func (m *Menu) Run() error {
	for {
		m.printMenu()

		choice, ok := m.readLine("Enter your choice (1-7): ")
		if !ok {
			return nil
		}

		var err error
		switch strings.TrimSpace(choice) {
		case "1":
			m.showProducts()
		case "2":
			err = m.addItem()
		case "3":
			m.showCart()
		case "4":
			err = m.updateQuantity()
		case "5":
			err = m.removeItem()
		case "6":
			err = m.checkout()
		case "7":
			fmt.Fprintln(m.out, "Thank you for shopping with us!")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice. Please enter a number between 1 and 7.")
		}

		if err != nil {
			return err
		}
	}
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out, "\n=== Online Shopping Cart ===")
	fmt.Fprintln(m.out, "1. View Products")
	fmt.Fprintln(m.out, "2. Add Item to Cart")
	fmt.Fprintln(m.out, "3. View Cart")
	fmt.Fprintln(m.out, "4. Update Quantity")
	fmt.Fprintln(m.out, "5. Remove Item")
	fmt.Fprintln(m.out, "6. Checkout")
	fmt.Fprintln(m.out, "7. Exit")
}

func (m *Menu) readLine(prompt string) (string, bool) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) showProducts() {
	products := m.cart.Products()
	if len(products) == 0 {
		fmt.Fprintln(m.out, "No products available.")
		return
	}

	fmt.Fprintln(m.out, "\n=== Available Products ===")
	for _, p := range products {
		fmt.Fprintln(m.out, "\n"+p.Details())
	}
	fmt.Fprintln(m.out)
}

func (m *Menu) showCart() {
	items := m.cart.Items()
	if len(items) == 0 {
		fmt.Fprintln(m.out, "Your shopping cart is empty.")
		return
	}

	fmt.Fprintln(m.out, "\n=== Shopping Cart ===")
	for _, it := range items {
		fmt.Fprintln(m.out, it)
	}
	fmt.Fprintf(m.out, "\nGrand Total: $%.2f\n\n", m.cart.Total())
}

func (m *Menu) addItem() error {
	m.showProducts()

	id, ok := m.readLine("Enter product ID to add: ")
	if !ok {
		return nil
	}
	raw, ok := m.readLine("Enter quantity: ")
	if !ok {
		return nil
	}
	qty, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Fprintln(m.out, "Invalid quantity. Please enter a number.")
		return nil
	}

	switch err := m.cart.Add(id, qty); {
	case err == nil:
		fmt.Fprintln(m.out, "Item added to cart successfully!")
	case errors.Is(err, cart.ErrInvalidQuantity):
		fmt.Fprintln(m.out, "Quantity must be positive.")
	case errors.Is(err, cart.ErrNotFound):
		fmt.Fprintln(m.out, "Product not found. Check the product ID.")
	case errors.Is(err, cart.ErrInsufficientStock):
		fmt.Fprintln(m.out, "Not enough stock available.")
	default:
		return err
	}
	return nil
}

func (m *Menu) updateQuantity() error {
	m.showCart()
	if len(m.cart.Items()) == 0 {
		return nil
	}

	id, ok := m.readLine("Enter product ID to update: ")
	if !ok {
		return nil
	}
	raw, ok := m.readLine("Enter new quantity: ")
	if !ok {
		return nil
	}
	qty, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Fprintln(m.out, "Invalid quantity. Please enter a number.")
		return nil
	}

	switch err := m.cart.Update(id, qty); {
	case err == nil && qty <= 0:
		fmt.Fprintln(m.out, "Item removed from cart.")
	case err == nil:
		fmt.Fprintln(m.out, "Quantity updated successfully!")
	case errors.Is(err, cart.ErrNotFound):
		fmt.Fprintln(m.out, "Product not found in cart.")
	case errors.Is(err, cart.ErrInsufficientStock):
		fmt.Fprintln(m.out, "Not enough stock available.")
	default:
		return err
	}
	return nil
}

func (m *Menu) removeItem() error {
	m.showCart()
	if len(m.cart.Items()) == 0 {
		return nil
	}

	id, ok := m.readLine("Enter product ID to remove: ")
	if !ok {
		return nil
	}

	switch err := m.cart.Remove(id); {
	case err == nil:
		fmt.Fprintln(m.out, "Item removed successfully!")
	case errors.Is(err, cart.ErrNotFound):
		fmt.Fprintln(m.out, "Product not found in cart.")
	default:
		return err
	}
	return nil
}

func (m *Menu) checkout() error {
	rcpt, err := m.cart.Checkout()
	if errors.Is(err, cart.ErrEmptyCart) {
		fmt.Fprintln(m.out, "Your cart is empty. Nothing to checkout.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(m.out, "\n=== Checkout ===")
	fmt.Fprintf(m.out, "Receipt: %s\n", rcpt.ID)
	for _, l := range rcpt.Lines {
		fmt.Fprintf(m.out, "%s x%d - $%.2f\n", l.Name, l.Qty, l.Subtotal)
	}
	fmt.Fprintf(m.out, "Total amount: $%.2f\n", rcpt.Total)
	fmt.Fprintln(m.out, "Thank you for your purchase!")
	return nil
}
