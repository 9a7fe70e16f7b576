package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProduct_ReduceStock_Success(t *testing.T) {
	p := NewPhysical("TV", decimal.NewFromInt(5000), 3, 10)

	require.NoError(t, p.ReduceStock(2))
	assert.Equal(t, 1, p.Stock())
}

func TestProduct_ReduceStock_InsufficientStock(t *testing.T) {
	p := NewPhysical("TV", decimal.NewFromInt(5000), 3, 10)

	err := p.ReduceStock(4)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	// Stock should be unchanged
	assert.Equal(t, 3, p.Stock())
}

func TestProduct_ReduceStock_ExactStock(t *testing.T) {
	p := NewDigital("Mobile Card", decimal.NewFromInt(50), 20)

	require.NoError(t, p.ReduceStock(20))
	assert.Equal(t, 0, p.Stock())

	err := p.ReduceStock(1)
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 0, p.Stock())
}

func TestProduct_Restock(t *testing.T) {
	p := NewPhysical("TV", decimal.NewFromInt(5000), 3, 10)

	require.NoError(t, p.ReduceStock(3))
	p.Restock(3)
	assert.Equal(t, 3, p.Stock())
}

func TestProduct_IsExpired(t *testing.T) {
	tests := []struct {
		name    string
		product *Product
		expired bool
	}{
		{
			name:    "perishable past expiry",
			product: NewPerishable("Old Yogurt", decimal.NewFromInt(30), 1, time.Now().AddDate(0, 0, -2), 0.2),
			expired: true,
		},
		{
			name:    "perishable before expiry",
			product: NewPerishable("Cheese", decimal.NewFromInt(100), 5, time.Now().AddDate(0, 0, 3), 0.2),
			expired: false,
		},
		{
			name:    "physical never expires",
			product: NewPhysical("TV", decimal.NewFromInt(5000), 3, 10),
			expired: false,
		},
		{
			name:    "digital never expires",
			product: NewDigital("Mobile Card", decimal.NewFromInt(50), 20),
			expired: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expired, tt.product.IsExpired())
		})
	}
}

func TestProduct_NeedsShipping(t *testing.T) {
	assert.True(t, NewPerishable("Cheese", decimal.NewFromInt(100), 5, time.Now().AddDate(0, 0, 3), 0.2).NeedsShipping())
	assert.True(t, NewPhysical("TV", decimal.NewFromInt(5000), 3, 10).NeedsShipping())
	assert.False(t, NewDigital("Mobile Card", decimal.NewFromInt(50), 20).NeedsShipping())
}
