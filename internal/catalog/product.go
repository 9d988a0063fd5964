package catalog

import "fmt"

const (
	TypeGeneric  = "product"
	TypePhysical = "physical"
	TypeDigital  = "digital"
)

// Product is one sellable item. Variants share the Generic core and
// differ in their extra attributes and display shape.
type Product interface {
	Base() *Generic
	Decrease(amount int) bool
	Increase(amount int)
	Details() string
	Record() Record
	fmt.Stringer
}

type Generic struct {
	ID        string
	Name      string
	Price     float64
	Available int
}

func (p *Generic) Base() *Generic { return p }

// Decrease reserves amount units of stock. It refuses non-positive
// amounts and amounts above the available stock, so Available never
// goes negative.
func (p *Generic) Decrease(amount int) bool {
	if amount <= 0 || amount > p.Available {
		return false
	}
	p.Available -= amount
	return true
}

// Increase returns amount units to stock. Non-positive amounts are
// ignored. There is no upper bound.
func (p *Generic) Increase(amount int) {
	if amount <= 0 {
		return
	}
	p.Available += amount
}

func (p *Generic) Details() string {
	return fmt.Sprintf("Product ID: %s\nName: %s\nPrice: $%.2f\nAvailable Quantity: %d",
		p.ID, p.Name, p.Price, p.Available)
}

func (p *Generic) Record() Record {
	return Record{
		Type:      TypeGeneric,
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Available: p.Available,
	}
}

func (p *Generic) String() string {
	return fmt.Sprintf("%s (ID: %s) - $%.2f", p.Name, p.ID, p.Price)
}

type Physical struct {
	Generic
	Weight float64
}

func (p *Physical) Details() string {
	return p.Generic.Details() + fmt.Sprintf("\nWeight: %g kg", p.Weight)
}

func (p *Physical) Record() Record {
	rec := p.Generic.Record()
	rec.Type = TypePhysical
	rec.Weight = p.Weight
	return rec
}

func (p *Physical) String() string {
	return fmt.Sprintf("%s (Physical, %gkg)", p.Generic.String(), p.Weight)
}

type Digital struct {
	Generic
	DownloadLink string
}

func (p *Digital) Details() string {
	return p.Generic.Details() + "\nDownload Link: " + p.DownloadLink
}

func (p *Digital) Record() Record {
	rec := p.Generic.Record()
	rec.Type = TypeDigital
	rec.DownloadLink = p.DownloadLink
	return rec
}

func (p *Digital) String() string {
	return p.Generic.String() + " (Digital)"
}
