package domain

import (
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// ProductKind discriminates product behavior: whether it can expire and
// whether it needs shipping.
type ProductKind string

const (
	KindPerishable ProductKind = "perishable"
	KindPhysical   ProductKind = "physical"
	KindDigital    ProductKind = "digital"
)

// String representation (for logging)
func (k ProductKind) String() string {
	return string(k)
}

// Product is a catalog item available for purchase. Name is the identity
// used as the cart's line-item key. Stock never goes negative; it is
// mutated only by ReduceStock during checkout commit.
//
// Constructors expect a non-negative price and stock and do not validate
// them; the caller owns that precondition.
type Product struct {
	Name      string
	Price     decimal.Decimal
	Kind      ProductKind
	ExpiresAt time.Time // perishable only
	Weight    float64   // kg, shippable kinds only

	stock int
}

// NewPerishable creates a product that expires after the given date and
// requires shipping.
func NewPerishable(name string, price decimal.Decimal, stock int, expiresAt time.Time, weight float64) *Product {
	return &Product{
		Name:      name,
		Price:     price,
		Kind:      KindPerishable,
		ExpiresAt: expiresAt,
		Weight:    weight,
		stock:     stock,
	}
}

// NewPhysical creates a non-expiring product that requires shipping.
func NewPhysical(name string, price decimal.Decimal, stock int, weight float64) *Product {
	return &Product{
		Name:   name,
		Price:  price,
		Kind:   KindPhysical,
		Weight: weight,
		stock:  stock,
	}
}

// NewDigital creates a non-expiring product that needs no shipping and
// has no weight.
func NewDigital(name string, price decimal.Decimal, stock int) *Product {
	return &Product{
		Name:  name,
		Price: price,
		Kind:  KindDigital,
		stock: stock,
	}
}

// Stock returns the quantity currently available for sale.
func (p *Product) Stock() int {
	return p.stock
}

// IsExpired reports whether the product can no longer be sold. Only
// perishable products expire, strictly after their expiry date.
func (p *Product) IsExpired() bool {
	if p.Kind != KindPerishable {
		return false
	}
	return time.Now().After(p.ExpiresAt)
}

// NeedsShipping reports whether buying this product produces a parcel.
func (p *Product) NeedsShipping() bool {
	return p.Kind == KindPerishable || p.Kind == KindPhysical
}

// ReduceStock deducts qty from stock during checkout commit. Fails with
// ErrInsufficientStock when qty exceeds the current stock; stock is left
// unchanged on failure.
func (p *Product) ReduceStock(qty int) error {
	if qty > p.stock {
		return errors.Wrapf(ErrInsufficientStock, "%s: want %d, have %d", p.Name, qty, p.stock)
	}
	p.stock -= qty
	return nil
}

// Restock returns previously deducted quantity to stock. Used only to
// roll back a partially applied checkout commit.
func (p *Product) Restock(qty int) {
	p.stock += qty
}
