package catalog

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fjod/go_shop/internal/domain"
)

func TestMemoryStore_Add_And_Get(t *testing.T) {
	store := NewMemoryStore()
	p := domain.NewPhysical("TV", decimal.NewFromInt(5000), 3, 10)

	require.NoError(t, store.Add(p))

	got, err := store.Get("TV")
	require.NoError(t, err)
	assert.Same(t, p, got)
}

func TestMemoryStore_Add_Duplicate(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Add(domain.NewDigital("Mobile Card", decimal.NewFromInt(50), 20)))

	err := store.Add(domain.NewDigital("Mobile Card", decimal.NewFromInt(60), 5))
	assert.ErrorIs(t, err, ErrProductExists)
}

func TestMemoryStore_Get_NotFound(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get("nonexistent")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestMemoryStore_List_RegistrationOrder(t *testing.T) {
	store := NewMemoryStore()
	names := []string{"Cheese", "TV", "Mobile Card"}
	require.NoError(t, store.Add(domain.NewPerishable("Cheese", decimal.NewFromInt(100), 5, time.Now().AddDate(0, 0, 3), 0.2)))
	require.NoError(t, store.Add(domain.NewPhysical("TV", decimal.NewFromInt(5000), 3, 10)))
	require.NoError(t, store.Add(domain.NewDigital("Mobile Card", decimal.NewFromInt(50), 20)))

	listed := store.List()
	require.Len(t, listed, 3)
	for i, p := range listed {
		assert.Equal(t, names[i], p.Name)
	}
}
