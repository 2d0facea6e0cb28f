// Package checkout turns a cart into a charge plus stock reduction.
//
// Checkout runs a read-only validation pass followed by a commit pass. The
// commit pass only touches memory and cannot fail, so a returned error always
// means nothing was mutated. The engine holds no locks; callers sharing
// products or customers between goroutines must serialize checkouts
// themselves (see repository.TxManager).
package checkout

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"storefront/internal/domain"
)

// DefaultShippingFee is charged once per shippable line item, regardless of
// quantity or weight.
var DefaultShippingFee = decimal.NewFromInt(10)

var gramsPerKg = decimal.NewFromInt(1000)

type Engine struct {
	shippingFee decimal.Decimal
	now         func() time.Time
	log         *zap.Logger
}

type Option func(*Engine)

func WithShippingFee(fee decimal.Decimal) Option {
	return func(e *Engine) { e.shippingFee = fee }
}

// WithClock overrides the time source used for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.log = l }
}

func New(opts ...Option) *Engine {
	e := &Engine{
		shippingFee: DefaultShippingFee,
		now:         time.Now,
		log:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) ShippingFee() decimal.Decimal { return e.shippingFee }

// Quote runs the validation pass without the funds check and returns the
// totals checkout would charge. Nothing is mutated.
func (e *Engine) Quote(cart *domain.Cart) (domain.Totals, error) {
	return e.validate(cart)
}

// Checkout validates the cart against the account and, on success, reduces
// stock, charges the account and marks the cart as checked out.
func (e *Engine) Checkout(cart *domain.Cart, account *domain.Customer) (*domain.CheckoutResult, error) {
	totals, err := e.validate(cart)
	if err == nil && !account.CanAfford(totals.Total) {
		err = &domain.InsufficientFundsError{Balance: account.Balance, Total: totals.Total}
	}
	if err != nil {
		e.log.Info("checkout rejected",
			zap.String("cart_id", cart.ID),
			zap.String("customer", account.Name),
			zap.Error(err))
		return nil, err
	}

	res := e.commit(cart, account, totals)
	e.log.Info("checkout completed",
		zap.String("cart_id", cart.ID),
		zap.String("customer", account.Name),
		zap.Int("lines", len(res.Receipt)),
		zap.Stringer("subtotal", res.Subtotal),
		zap.Stringer("shipping", res.ShippingCost),
		zap.Stringer("total", res.Total))
	return res, nil
}

func (e *Engine) validate(cart *domain.Cart) (domain.Totals, error) {
	var t domain.Totals
	if cart.CheckedOut {
		return t, domain.ErrCartCheckedOut
	}
	if cart.IsEmpty() {
		return t, domain.ErrEmptyCart
	}

	now := e.now()
	for _, it := range cart.Items {
		if it.Product.IsExpired(now) {
			return t, &domain.ExpiredProductError{Product: it.Product.Name}
		}
	}

	// stock may have moved since add-time; check summed demand per product.
	// Compare against the remaining stock so the running sum cannot wrap.
	demand := make(map[*domain.Product]int64, len(cart.Items))
	short := make(map[*domain.Product]bool)
	for _, it := range cart.Items {
		p := it.Product
		if demand[p] > p.Stock-it.Quantity {
			short[p] = true
		}
		if demand[p] > math.MaxInt64-it.Quantity {
			demand[p] = math.MaxInt64
		} else {
			demand[p] += it.Quantity
		}
	}
	for _, it := range cart.Items {
		if short[it.Product] {
			return t, &domain.UnavailableError{Product: it.Product.Name, Requested: demand[it.Product], Available: it.Product.Stock}
		}
	}

	t.Subtotal = decimal.Zero
	t.ShippingCost = decimal.Zero
	for _, it := range cart.Items {
		t.Subtotal = t.Subtotal.Add(it.Total())
		if it.Product.NeedsShipping() {
			t.ShippingCost = t.ShippingCost.Add(e.shippingFee)
		}
	}
	t.Total = t.Subtotal.Add(t.ShippingCost)
	return t, nil
}

func (e *Engine) commit(cart *domain.Cart, account *domain.Customer, totals domain.Totals) *domain.CheckoutResult {
	res := &domain.CheckoutResult{
		Totals:   totals,
		Shipment: make([]domain.ShipmentLine, 0),
		Receipt:  make([]domain.ReceiptLine, 0, len(cart.Items)),
	}

	grams := decimal.Zero
	for _, it := range cart.Items {
		if !it.Product.NeedsShipping() {
			continue
		}
		w := it.Product.Weight().Mul(decimal.NewFromInt(it.Quantity))
		res.Shipment = append(res.Shipment, domain.ShipmentLine{Name: it.Product.Name, Quantity: it.Quantity, WeightGrams: w})
		grams = grams.Add(w)
	}
	res.TotalWeightKg = grams.Div(gramsPerKg)

	for _, it := range cart.Items {
		res.Receipt = append(res.Receipt, domain.ReceiptLine{Name: it.Product.Name, Quantity: it.Quantity, LineTotal: it.Total()})
		it.Product.ReduceQuantity(it.Quantity)
	}

	account.Charge(totals.Total)
	res.Balance = account.Balance
	cart.CheckedOut = true
	return res
}
