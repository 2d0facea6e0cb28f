package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"storefront/internal/domain"
)

// ErrNotFound возвращается, когда сущность не найдена
var ErrNotFound = errors.New("not found")

// ProductFilter параметры фильтрации каталога
type ProductFilter struct {
	NameSubstring string
	MinPrice      *decimal.Decimal
	MaxPrice      *decimal.Decimal
	Shippable     *bool
}

func (f ProductFilter) match(p *domain.Product) bool {
	if !containsIgnoreCase(p.Name, f.NameSubstring) {
		return false
	}
	if f.MinPrice != nil && p.Price.LessThan(*f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && p.Price.GreaterThan(*f.MaxPrice) {
		return false
	}
	if f.Shippable != nil && p.NeedsShipping() != *f.Shippable {
		return false
	}
	return true
}

// ProductRepository каталог товаров.
// GetByID и List отдают копии; Lookup отдаёт живой объект каталога и
// допустим только внутри TxManager.WithTransaction.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Lookup(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f ProductFilter) ([]domain.Product, error)
}

// CustomerRepository покупатели
type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) error
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	Lookup(ctx context.Context, id string) (*domain.Customer, error)
}

// CartRepository корзины; GetByID отдаёт снимок, Lookup — живую корзину
type CartRepository interface {
	Create(ctx context.Context, c *domain.Cart) error
	GetByID(ctx context.Context, id string) (*domain.Cart, error)
	Lookup(ctx context.Context, id string) (*domain.Cart, error)
}

// TxManager абстракция транзакции. Для in-memory — глобальная блокировка записи.
type TxManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// helper: case-insensitive contains
func containsIgnoreCase(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
