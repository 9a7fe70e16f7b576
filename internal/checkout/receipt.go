package checkout

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReceiptLine is a single purchased line on the receipt.
type ReceiptLine struct {
	Quantity  int
	Name      string
	LineTotal decimal.Decimal
}

// Receipt records what a successful checkout charged.
type Receipt struct {
	ID           uuid.UUID
	CustomerName string
	Lines        []ReceiptLine
	Subtotal     decimal.Decimal
	ShippingCost decimal.Decimal
	Total        decimal.Decimal
	BalanceLeft  decimal.Decimal
	CreatedAt    time.Time
}
