package checkout

import (
	"github.com/shopspring/decimal"

	"github.com/fjod/go_shop/internal/domain"
)

type pricing struct {
	subtotal     decimal.Decimal
	shippingCost decimal.Decimal
	total        decimal.Decimal
}

// price computes subtotal, shipping and total. The shipment manifest is
// reported here, before the funds check; it mutates nothing.
func (s *Service) price(cart *domain.Cart, status *Status) (pricing, error) {
	if !status.CanTransitionTo(StatusPriced) {
		return pricing{}, ErrIllegalTransition
	}

	subtotal := cart.Subtotal()

	parcels := cart.ShippableParcels()
	shippingCost, manifest := s.calc.Cost(parcels)
	if len(manifest.Lines) > 0 {
		s.reporter.ShipmentManifest(manifest)
	}

	*status = StatusPriced
	return pricing{
		subtotal:     subtotal,
		shippingCost: shippingCost,
		total:        subtotal.Add(shippingCost),
	}, nil
}
