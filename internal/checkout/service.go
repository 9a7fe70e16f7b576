package checkout

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/fjod/go_shop/internal/domain"
	"github.com/fjod/go_shop/internal/shipping"
)

// Service orchestrates checkout: validate, price, commit, report, reset.
type Service struct {
	calc     *shipping.Calculator
	reporter Reporter
}

// NewService creates a checkout service using calc for shipping cost and
// reporter for manifests and receipts.
func NewService(calc *shipping.Calculator, reporter Reporter) *Service {
	return &Service{
		calc:     calc,
		reporter: reporter,
	}
}

// Checkout charges customer for the contents of cart. On success the
// purchased stock is deducted, the wallet is debited by subtotal plus
// shipping, a receipt is reported and returned, and the cart is emptied.
// Any failure before commit leaves cart, stock and wallet untouched and
// returns one of the domain sentinel errors.
func (s *Service) Checkout(customer *domain.Customer, cart *domain.Cart) (*Receipt, error) {
	status := StatusStarted

	if err := s.validate(cart, &status); err != nil {
		return nil, s.fail(customer, &status, err)
	}

	pricing, err := s.price(cart, &status)
	if err != nil {
		return nil, s.fail(customer, &status, err)
	}

	if err := s.commit(customer, cart, pricing.total, &status); err != nil {
		return nil, s.fail(customer, &status, err)
	}

	receipt := s.buildReceipt(customer, cart, pricing)
	s.reporter.Receipt(receipt)

	cart.Clear()
	status = StatusCompleted

	log.Debug().
		Str("receipt_id", receipt.ID.String()).
		Str("customer", customer.Name).
		Str("total", receipt.Total.String()).
		Str("status", status.String()).
		Msg("checkout completed")

	return &receipt, nil
}

func (s *Service) fail(customer *domain.Customer, status *Status, err error) error {
	*status = StatusFailed
	log.Debug().
		Str("customer", customer.Name).
		Str("status", status.String()).
		Err(err).
		Msg("checkout failed")
	return err
}

func (s *Service) buildReceipt(customer *domain.Customer, cart *domain.Cart, p pricing) Receipt {
	receipt := Receipt{
		ID:           uuid.New(),
		CustomerName: customer.Name,
		Subtotal:     p.subtotal,
		ShippingCost: p.shippingCost,
		Total:        p.total,
		BalanceLeft:  customer.Balance(),
		CreatedAt:    time.Now(),
	}
	for _, item := range cart.Items() {
		receipt.Lines = append(receipt.Lines, ReceiptLine{
			Quantity:  item.Quantity,
			Name:      item.Product.Name,
			LineTotal: item.LineTotal(),
		})
	}
	return receipt
}
