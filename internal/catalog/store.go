package catalog

import (
	"github.com/go-faster/errors"

	"github.com/fjod/go_shop/internal/domain"
)

// Common errors returned by the store
var (
	ErrProductNotFound = errors.New("product not found")
	ErrProductExists   = errors.New("product already registered")
)

// Store defines the interface for product catalog storage operations
type Store interface {
	// Add registers a product under its name
	Add(p *domain.Product) error

	// Get returns the product registered under name
	Get(name string) (*domain.Product, error)

	// List returns all products in registration order
	List() []*domain.Product
}
