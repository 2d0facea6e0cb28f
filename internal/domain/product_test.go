package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProduct_IsExpired(t *testing.T) {
	expiry := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	p := NewProduct("Cheese", decimal.NewFromInt(100), 5, WithExpiry(expiry))

	assert.False(t, p.IsExpired(expiry.AddDate(0, 0, -1)), "day before")
	assert.False(t, p.IsExpired(expiry), "expiry date, midnight")
	assert.False(t, p.IsExpired(expiry.Add(23*time.Hour+59*time.Minute)), "expiry date, late evening")
	assert.True(t, p.IsExpired(expiry.AddDate(0, 0, 1)), "day after")
}

func TestProduct_IsExpired_ComparesInExpiryLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	expiry := time.Date(2026, 3, 10, 0, 0, 0, 0, loc)
	p := NewProduct("Milk", decimal.NewFromInt(10), 1, WithExpiry(expiry))

	// 2026-03-10 22:00 UTC is already 2026-03-11 in UTC+3
	assert.True(t, p.IsExpired(time.Date(2026, 3, 10, 22, 0, 0, 0, time.UTC)))
	assert.False(t, p.IsExpired(time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC)))
}

func TestProduct_NoExpiryNeverExpires(t *testing.T) {
	p := NewProduct("TV", decimal.NewFromInt(300), 3)
	assert.False(t, p.IsExpired(time.Date(9999, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestProduct_Capabilities(t *testing.T) {
	now := time.Now()
	plain := NewProduct("ScratchCard", decimal.NewFromInt(50), 10)
	expirable := NewProduct("Voucher", decimal.NewFromInt(20), 1, WithExpiry(now))
	shippable := NewProduct("TV", decimal.NewFromInt(300), 3, WithWeight(decimal.NewFromInt(5000)))
	both := NewProduct("Cheese", decimal.NewFromInt(100), 10, WithExpiry(now), WithWeight(decimal.NewFromInt(200)))

	assert.False(t, plain.NeedsShipping())
	assert.True(t, plain.Weight().IsZero())
	assert.False(t, expirable.NeedsShipping())
	assert.True(t, shippable.NeedsShipping())
	assert.True(t, shippable.Weight().Equal(decimal.NewFromInt(5000)))
	assert.True(t, both.NeedsShipping())
	assert.NotNil(t, both.ExpiresOn)
}

func TestProduct_AvailabilityAndReduce(t *testing.T) {
	p := NewProduct("A", decimal.NewFromInt(1), 5)
	assert.True(t, p.IsAvailable(5))
	assert.False(t, p.IsAvailable(6))

	p.ReduceQuantity(3)
	assert.Equal(t, int64(2), p.Stock)
	assert.False(t, p.IsAvailable(3))
}

func TestProduct_CloneIsIndependent(t *testing.T) {
	p := NewProduct("Cheese", decimal.NewFromInt(100), 10,
		WithExpiry(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)),
		WithWeight(decimal.NewFromInt(200)))
	cp := p.Clone()
	cp.Stock = 1
	*cp.WeightGrams = decimal.NewFromInt(1)

	assert.Equal(t, int64(10), p.Stock)
	assert.True(t, p.Weight().Equal(decimal.NewFromInt(200)))
}
