package domain

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// Customer holds a wallet balance debited at successful checkout.
type Customer struct {
	Name string

	balance decimal.Decimal
}

// NewCustomer creates a customer with an opening wallet balance.
func NewCustomer(name string, balance decimal.Decimal) *Customer {
	return &Customer{
		Name:    name,
		balance: balance,
	}
}

// Balance returns the current wallet balance.
func (c *Customer) Balance() decimal.Decimal {
	return c.balance
}

// Debit withdraws amount from the wallet. Fails with ErrInsufficientFunds
// when the balance is short; the balance is left unchanged on failure.
func (c *Customer) Debit(amount decimal.Decimal) error {
	if c.balance.LessThan(amount) {
		return errors.Wrapf(ErrInsufficientFunds, "%s: balance %s, need %s", c.Name, c.balance, amount)
	}
	c.balance = c.balance.Sub(amount)
	return nil
}
