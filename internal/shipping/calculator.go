package shipping

import (
	"github.com/shopspring/decimal"

	"github.com/fjod/go_shop/internal/domain"
)

// DefaultRatePerKg is the flat shipping rate in currency units per kg.
const DefaultRatePerKg = 12

// ManifestLine is the per-product breakdown of a shipment.
type ManifestLine struct {
	Name       string
	Quantity   int
	UnitWeight float64 // kg
}

// Manifest describes what a shipment contains, for the receipt.
type Manifest struct {
	Lines       []ManifestLine
	TotalWeight float64 // kg
}

// Calculator computes shipping cost from aggregated parcels.
type Calculator struct {
	ratePerKg decimal.Decimal
}

// NewCalculator creates a calculator charging ratePerKg per kg of total
// shipment weight.
func NewCalculator(ratePerKg decimal.Decimal) *Calculator {
	return &Calculator{ratePerKg: ratePerKg}
}

// Cost sums parcel weights and returns the shipping cost, rounded up to
// a whole currency unit, together with the shipment manifest. Empty input
// costs nothing and produces an empty manifest.
func (c *Calculator) Cost(parcels []domain.Parcel) (decimal.Decimal, Manifest) {
	if len(parcels) == 0 {
		return decimal.Zero, Manifest{}
	}

	manifest := Manifest{
		Lines: make([]ManifestLine, 0, len(parcels)),
	}
	for _, p := range parcels {
		manifest.Lines = append(manifest.Lines, ManifestLine{
			Name:       p.Name,
			Quantity:   p.Quantity,
			UnitWeight: p.UnitWeight,
		})
		manifest.TotalWeight += float64(p.Quantity) * p.UnitWeight
	}

	cost := decimal.NewFromFloat(manifest.TotalWeight).Mul(c.ratePerKg).Ceil()
	return cost, manifest
}
