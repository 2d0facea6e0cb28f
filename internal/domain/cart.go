package domain

import "github.com/shopspring/decimal"

// LineItem позиция корзины. Product разделяется с каталогом, корзина им не владеет.
type LineItem struct {
	Product  *Product `json:"product"`
	Quantity int64    `json:"quantity"`
}

func (li LineItem) Total() decimal.Decimal {
	return li.Product.Price.Mul(decimal.NewFromInt(li.Quantity))
}

// Cart корзина; порядок позиций сохраняется и определяет порядок в чеке
type Cart struct {
	ID         string     `json:"id"`
	Items      []LineItem `json:"items"`
	CheckedOut bool       `json:"checked_out"`
}

func NewCart() *Cart {
	return &Cart{Items: make([]LineItem, 0)}
}

// AddItem appends a line item after checking stock. Stock is not reserved.
func (c *Cart) AddItem(p *Product, qty int64) error {
	if c.CheckedOut {
		return ErrCartCheckedOut
	}
	if qty <= 0 || !p.IsAvailable(qty) {
		return &UnavailableError{Product: p.Name, Requested: qty, Available: p.Stock}
	}
	c.Items = append(c.Items, LineItem{Product: p, Quantity: qty})
	return nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Snapshot returns a deep copy, products included, safe to read without the store lock.
func (c *Cart) Snapshot() Cart {
	cp := Cart{ID: c.ID, CheckedOut: c.CheckedOut, Items: make([]LineItem, 0, len(c.Items))}
	for _, it := range c.Items {
		cp.Items = append(cp.Items, LineItem{Product: it.Product.Clone(), Quantity: it.Quantity})
	}
	return cp
}
