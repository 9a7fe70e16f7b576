package catalog

import (
	"sync"

	"github.com/go-faster/errors"

	"github.com/fjod/go_shop/internal/domain"
)

// MemoryStore implements Store with in-memory storage
type MemoryStore struct {
	mu       sync.RWMutex
	products map[string]*domain.Product // product name -> product
	order    []string                   // registration order
}

// NewMemoryStore creates a new in-memory product catalog
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		products: make(map[string]*domain.Product),
	}
}

// Add registers a product under its name
func (s *MemoryStore) Add(p *domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.products[p.Name]; exists {
		return errors.Wrap(ErrProductExists, p.Name)
	}
	s.products[p.Name] = p
	s.order = append(s.order, p.Name)
	return nil
}

// Get returns the product registered under name
func (s *MemoryStore) Get(name string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, exists := s.products[name]
	if !exists {
		return nil, errors.Wrap(ErrProductNotFound, name)
	}
	return p, nil
}

// List returns all products in registration order
func (s *MemoryStore) List() []*domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Product, 0, len(s.order))
	for _, name := range s.order {
		result = append(result, s.products[name])
	}
	return result
}
