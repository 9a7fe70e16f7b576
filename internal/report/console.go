package report

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/fjod/go_shop/internal/checkout"
	"github.com/fjod/go_shop/internal/shipping"
)

// ConsoleReporter writes shipment manifests and receipts through a
// zerolog logger, one event per line.
type ConsoleReporter struct {
	log zerolog.Logger
}

// NewConsoleReporter creates a reporter writing to log.
func NewConsoleReporter(log zerolog.Logger) *ConsoleReporter {
	return &ConsoleReporter{log: log}
}

func (r *ConsoleReporter) ShipmentManifest(m shipping.Manifest) {
	r.log.Info().Msg("== Items to ship ==")
	for _, line := range m.Lines {
		// unit weight shown in whole grams
		r.log.Info().Msgf("%dx %s %dg", line.Quantity, line.Name, int(line.UnitWeight*1000))
	}
	r.log.Info().Msgf("Total weight to ship: %vkg", m.TotalWeight)
}

func (r *ConsoleReporter) Receipt(rcpt checkout.Receipt) {
	r.log.Info().Str("receipt_id", rcpt.ID.String()).Msg("== Receipt ==")
	for _, line := range rcpt.Lines {
		r.log.Info().Msg(formatLine(line))
	}
	r.log.Info().Msgf("Subtotal: %s", rcpt.Subtotal)
	r.log.Info().Msgf("Shipping: %s", rcpt.ShippingCost)
	r.log.Info().Msgf("Total Paid: %s", rcpt.Total)
	r.log.Info().Msgf("Wallet Left: %s", rcpt.BalanceLeft)
}

func formatLine(line checkout.ReceiptLine) string {
	return fmt.Sprintf("%dx %s %s", line.Quantity, line.Name, line.LineTotal)
}
