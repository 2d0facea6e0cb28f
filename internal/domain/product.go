package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product товар каталога. Возможности товара задаются наличием опциональных полей:
// ExpiresOn — срок годности, WeightGrams — вес для доставки.
type Product struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Price       decimal.Decimal  `json:"price"`
	Stock       int64            `json:"stock"`
	ExpiresOn   *time.Time       `json:"expires_on,omitempty"`
	WeightGrams *decimal.Decimal `json:"weight_grams,omitempty"`
}

// ProductOption задаёт опциональную возможность товара
type ProductOption func(*Product)

// WithExpiry makes the product expirable; only the calendar date is significant.
func WithExpiry(date time.Time) ProductOption {
	return func(p *Product) {
		d := date
		p.ExpiresOn = &d
	}
}

// WithWeight makes the product shippable.
func WithWeight(grams decimal.Decimal) ProductOption {
	return func(p *Product) {
		w := grams
		p.WeightGrams = &w
	}
}

func NewProduct(name string, price decimal.Decimal, stock int64, opts ...ProductOption) *Product {
	p := &Product{Name: name, Price: price, Stock: stock}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Product) IsAvailable(qty int64) bool {
	return p.Stock >= qty
}

// IsExpired reports whether now falls on a calendar day strictly after the
// expiry date. The comparison happens in the expiry date's location.
func (p *Product) IsExpired(now time.Time) bool {
	if p.ExpiresOn == nil {
		return false
	}
	exp := *p.ExpiresOn
	return dateOf(now.In(exp.Location())).After(dateOf(exp))
}

func (p *Product) NeedsShipping() bool {
	return p.WeightGrams != nil
}

// Weight returns the unit shipping weight in grams, zero for products that do not ship.
func (p *Product) Weight() decimal.Decimal {
	if p.WeightGrams == nil {
		return decimal.Zero
	}
	return *p.WeightGrams
}

// ReduceQuantity списывает остаток; вызывающий гарантирует amount <= Stock
func (p *Product) ReduceQuantity(amount int64) {
	p.Stock -= amount
}

// Clone returns a copy that shares no memory with p.
func (p *Product) Clone() *Product {
	cp := *p
	if p.ExpiresOn != nil {
		exp := *p.ExpiresOn
		cp.ExpiresOn = &exp
	}
	if p.WeightGrams != nil {
		w := *p.WeightGrams
		cp.WeightGrams = &w
	}
	return &cp
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
