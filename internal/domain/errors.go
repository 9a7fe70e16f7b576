package domain

import "github.com/go-faster/errors"

// Common errors returned by cart and product operations
var (
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrProductExpired    = errors.New("product has expired")
	ErrEmptyCart         = errors.New("cart is empty, nothing to checkout")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
)
