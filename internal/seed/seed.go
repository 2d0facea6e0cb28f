package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"storefront/internal/domain"
	"storefront/internal/service"
)

// Result lists the IDs created by Demo.
type Result struct {
	Products   map[string]string
	CustomerID string
}

// Demo loads the demo catalog and one customer. Expiry dates are relative to now.
func Demo(ctx context.Context, products *service.ProductService, customers *service.CustomerService, now time.Time) (*Result, error) {
	grams := func(g int64) domain.ProductOption { return domain.WithWeight(decimal.NewFromInt(g)) }
	catalog := []*domain.Product{
		domain.NewProduct("Cheese", decimal.NewFromInt(100), 10, domain.WithExpiry(now.AddDate(0, 0, 3)), grams(200)),
		domain.NewProduct("Biscuits", decimal.NewFromInt(150), 5, domain.WithExpiry(now.AddDate(0, 0, 1)), grams(700)),
		domain.NewProduct("TV", decimal.NewFromInt(300), 3, grams(5000)),
		domain.NewProduct("ScratchCard", decimal.NewFromInt(50), 10),
	}

	res := &Result{Products: make(map[string]string, len(catalog))}
	for _, p := range catalog {
		created, err := products.Create(ctx, *p)
		if err != nil {
			return nil, fmt.Errorf("seed product %s: %w", p.Name, err)
		}
		res.Products[created.Name] = created.ID
	}

	c, err := customers.Create(ctx, "Shorouk", decimal.NewFromInt(1000))
	if err != nil {
		return nil, fmt.Errorf("seed customer: %w", err)
	}
	res.CustomerID = c.ID
	return res, nil
}
