package checkout

import "github.com/fjod/go_shop/internal/shipping"

// Reporter receives the observable output of a checkout run. Injected so
// the core stays testable without capturing console text.
type Reporter interface {
	// ShipmentManifest is called during pricing when the order contains
	// anything to ship
	ShipmentManifest(m shipping.Manifest)

	// Receipt is called once after a successful commit
	Receipt(r Receipt)
}

// NopReporter discards all reports.
type NopReporter struct{}

func (NopReporter) ShipmentManifest(shipping.Manifest) {}
func (NopReporter) Receipt(Receipt)                    {}
