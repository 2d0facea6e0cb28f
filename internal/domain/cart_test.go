package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_AddItem(t *testing.T) {
	p := NewProduct("Cheese", decimal.NewFromInt(100), 3)
	c := NewCart()

	require.NoError(t, c.AddItem(p, 1))
	require.NoError(t, c.AddItem(p, 3))
	require.Len(t, c.Items, 2)
	// adding does not reserve stock
	assert.Equal(t, int64(3), p.Stock)
	assert.True(t, c.Items[1].Total().Equal(decimal.NewFromInt(300)))
}

func TestCart_AddItem_Unavailable(t *testing.T) {
	p := NewProduct("Cheese", decimal.NewFromInt(100), 3)
	c := NewCart()
	require.NoError(t, c.AddItem(p, 2))

	for _, qty := range []int64{4, 0, -1} {
		err := c.AddItem(p, qty)
		require.Error(t, err, "qty %d", qty)
		assert.True(t, errors.Is(err, ErrUnavailable))

		var ue *UnavailableError
		require.True(t, errors.As(err, &ue))
		assert.Equal(t, "Cheese", ue.Product)
		assert.Equal(t, qty, ue.Requested)
	}
	// failed adds leave the cart unchanged
	require.Len(t, c.Items, 1)
	assert.Equal(t, int64(2), c.Items[0].Quantity)
}

func TestCart_AddItem_CheckedOut(t *testing.T) {
	c := NewCart()
	c.CheckedOut = true
	err := c.AddItem(NewProduct("A", decimal.NewFromInt(1), 1), 1)
	assert.ErrorIs(t, err, ErrCartCheckedOut)
	assert.True(t, c.IsEmpty())
}

func TestCart_Snapshot(t *testing.T) {
	p := NewProduct("A", decimal.NewFromInt(1), 5)
	c := NewCart()
	c.ID = "cart-1"
	require.NoError(t, c.AddItem(p, 2))

	snap := c.Snapshot()
	snap.Items[0].Product.Stock = 0

	assert.Equal(t, "cart-1", snap.ID)
	assert.Equal(t, int64(5), p.Stock)
	assert.Same(t, p, c.Items[0].Product)
}

func TestCustomer_Charge(t *testing.T) {
	c := NewCustomer("Shorouk", decimal.NewFromInt(1000))
	assert.True(t, c.CanAfford(decimal.NewFromInt(1000)))
	assert.False(t, c.CanAfford(decimal.NewFromInt(1001)))

	c.Charge(decimal.NewFromInt(260))
	assert.True(t, c.Balance.Equal(decimal.NewFromInt(740)))
}

func TestErrors_Messages(t *testing.T) {
	err := &ExpiredProductError{Product: "Biscuits"}
	assert.Equal(t, "product is expired: Biscuits", err.Error())
	assert.ErrorIs(t, err, ErrExpiredProduct)
	assert.NotErrorIs(t, err, ErrUnavailable)

	funds := &InsufficientFundsError{Balance: decimal.NewFromInt(10), Total: decimal.NewFromInt(260)}
	assert.Equal(t, "insufficient balance: balance 10, total 260", funds.Error())
	assert.ErrorIs(t, funds, ErrInsufficientFunds)
}
