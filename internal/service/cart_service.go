package service

import (
	"context"

	"go.uber.org/zap"

	"storefront/internal/checkout"
	"storefront/internal/domain"
	"storefront/internal/repository"
)

// CartService ведёт корзины и оформляет заказ.
// Все изменения живых товаров, покупателей и корзин идут внутри одной
// транзакции: проверка и списание не разделены чужой записью.
type CartService struct {
	carts     repository.CartRepository
	products  repository.ProductRepository
	customers repository.CustomerRepository
	tx        repository.TxManager
	engine    *checkout.Engine
	log       *zap.Logger
}

func NewCartService(
	carts repository.CartRepository,
	products repository.ProductRepository,
	customers repository.CustomerRepository,
	tx repository.TxManager,
	engine *checkout.Engine,
	log *zap.Logger,
) *CartService {
	return &CartService{carts: carts, products: products, customers: customers, tx: tx, engine: engine, log: log}
}

func (s *CartService) Create(ctx context.Context) (*domain.Cart, error) {
	c := domain.NewCart()
	if err := s.carts.Create(ctx, c); err != nil {
		return nil, err
	}
	snap := c.Snapshot()
	return &snap, nil
}

func (s *CartService) Get(ctx context.Context, id string) (*domain.Cart, error) {
	if !validID(id) {
		return nil, ErrInvalidInput
	}
	return s.carts.GetByID(ctx, id)
}

// AddItem кладёт товар в корзину и возвращает её снимок
func (s *CartService) AddItem(ctx context.Context, cartID, productID string, qty int64) (*domain.Cart, error) {
	if !validID(cartID) || !validID(productID) {
		return nil, ErrInvalidInput
	}
	var snap domain.Cart
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		cart, err := s.carts.Lookup(ctx, cartID)
		if err != nil {
			return err
		}
		p, err := s.products.Lookup(ctx, productID)
		if err != nil {
			return err
		}
		if err := cart.AddItem(p, qty); err != nil {
			s.log.Info("add to cart rejected",
				zap.String("cart_id", cartID),
				zap.String("product", p.Name),
				zap.Int64("quantity", qty),
				zap.Error(err))
			return err
		}
		snap = cart.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

func (s *CartService) Quote(ctx context.Context, cartID string) (domain.Totals, error) {
	if !validID(cartID) {
		return domain.Totals{}, ErrInvalidInput
	}
	var totals domain.Totals
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		cart, err := s.carts.Lookup(ctx, cartID)
		if err != nil {
			return err
		}
		totals, err = s.engine.Quote(cart)
		return err
	})
	return totals, err
}

// Checkout оформляет корзину на покупателя. Повторное оформление той же
// корзины отклоняется с domain.ErrCartCheckedOut.
func (s *CartService) Checkout(ctx context.Context, cartID, customerID string) (*domain.CheckoutResult, error) {
	if !validID(cartID) || !validID(customerID) {
		return nil, ErrInvalidInput
	}
	var res *domain.CheckoutResult
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		cart, err := s.carts.Lookup(ctx, cartID)
		if err != nil {
			return err
		}
		acct, err := s.customers.Lookup(ctx, customerID)
		if err != nil {
			return err
		}
		res, err = s.engine.Checkout(cart, acct)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
