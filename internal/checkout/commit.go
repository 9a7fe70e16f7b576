package checkout

import (
	"github.com/go-faster/errors"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/fjod/go_shop/internal/domain"
)

// commit checks affordability, then deducts stock for every line and
// debits the wallet. Validation already guaranteed the preconditions, so
// a mid-commit failure means something mutated underneath us; in that
// case every deduction applied so far is rolled back before returning,
// so callers never observe a partial commit.
func (s *Service) commit(customer *domain.Customer, cart *domain.Cart, total decimal.Decimal, status *Status) error {
	if !status.CanTransitionTo(StatusCommitted) {
		return ErrIllegalTransition
	}

	if customer.Balance().LessThan(total) {
		return errors.Wrapf(domain.ErrInsufficientFunds, "%s: balance %s, need %s", customer.Name, customer.Balance(), total)
	}

	applied := make([]*domain.CartItem, 0, len(cart.Items()))
	for _, item := range cart.Items() {
		if err := item.Product.ReduceStock(item.Quantity); err != nil {
			s.rollback(applied)
			return err
		}
		applied = append(applied, item)
	}

	if err := customer.Debit(total); err != nil {
		s.rollback(applied)
		return err
	}

	*status = StatusCommitted
	return nil
}

func (s *Service) rollback(applied []*domain.CartItem) {
	for _, item := range applied {
		item.Product.Restock(item.Quantity)
	}
	if len(applied) > 0 {
		log.Warn().Int("lines", len(applied)).Msg("rolled back partial stock deduction")
	}
}
