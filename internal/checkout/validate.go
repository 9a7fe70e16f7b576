package checkout

import (
	"github.com/go-faster/errors"

	"github.com/fjod/go_shop/internal/domain"
)

// validate re-checks every line against current expiry and stock. Stock
// and expiry may have moved since add-time, so this is re-run here even
// though add already checked both.
func (s *Service) validate(cart *domain.Cart, status *Status) error {
	if !status.CanTransitionTo(StatusValidated) {
		return ErrIllegalTransition
	}

	if cart.IsEmpty() {
		return domain.ErrEmptyCart
	}

	for _, item := range cart.Items() {
		p := item.Product
		if p.IsExpired() {
			return errors.Wrap(domain.ErrProductExpired, p.Name)
		}
		if p.Stock() < item.Quantity {
			return errors.Wrapf(domain.ErrInsufficientStock, "%s: want %d, have %d", p.Name, item.Quantity, p.Stock())
		}
	}

	*status = StatusValidated
	return nil
}
