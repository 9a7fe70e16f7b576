package domain

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// CartItem pairs a product with the quantity accumulated across Add calls.
// Never created with quantity <= 0.
type CartItem struct {
	Product  *Product
	Quantity int
}

// LineTotal returns price multiplied by quantity.
func (i *CartItem) LineTotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Parcel is an aggregated shippable line: one entry per product with the
// full quantity, not one entry per physical unit.
type Parcel struct {
	Name       string
	Quantity   int
	UnitWeight float64 // kg
}

// Cart accumulates line items keyed by product name. Add order is
// preserved so receipts come out in a reproducible order. Adding never
// touches product stock; stock is deducted only at checkout commit.
type Cart struct {
	items []*CartItem
	index map[string]*CartItem
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{
		index: make(map[string]*CartItem),
	}
}

// Add puts qty units of p into the cart, accumulating onto an existing
// line for the same product. Fails with ErrInsufficientStock when the
// requested quantity (alone or combined with the existing line) exceeds
// the product's current stock, and with ErrProductExpired for expired
// products. The existing line is left unchanged on failure.
func (c *Cart) Add(p *Product, qty int) error {
	if qty <= 0 {
		return errors.Wrapf(ErrInvalidQuantity, "%s: got %d", p.Name, qty)
	}
	if p.Stock() < qty {
		return errors.Wrapf(ErrInsufficientStock, "%s: want %d, have %d", p.Name, qty, p.Stock())
	}
	if p.IsExpired() {
		return errors.Wrapf(ErrProductExpired, "%s expired at %s", p.Name, p.ExpiresAt.Format("2006-01-02"))
	}

	if existing, ok := c.index[p.Name]; ok {
		combined := existing.Quantity + qty
		if combined > p.Stock() {
			return errors.Wrapf(ErrInsufficientStock, "%s: want %d total, have %d", p.Name, combined, p.Stock())
		}
		existing.Quantity = combined
		return nil
	}

	item := &CartItem{Product: p, Quantity: qty}
	c.items = append(c.items, item)
	c.index[p.Name] = item
	return nil
}

// Items returns the line items in add order.
func (c *Cart) Items() []*CartItem {
	return c.items
}

// IsEmpty reports whether the cart holds no line items.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Subtotal sums price times quantity over all line items.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// ShippableParcels returns one aggregated parcel per line item whose
// product needs shipping, in add order.
func (c *Cart) ShippableParcels() []Parcel {
	var parcels []Parcel
	for _, item := range c.items {
		if !item.Product.NeedsShipping() {
			continue
		}
		parcels = append(parcels, Parcel{
			Name:       item.Product.Name,
			Quantity:   item.Quantity,
			UnitWeight: item.Product.Weight,
		})
	}
	return parcels
}

// Clear discards all line items without touching product stock.
func (c *Cart) Clear() {
	c.items = nil
	c.index = make(map[string]*CartItem)
}
