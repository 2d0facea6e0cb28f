package domain

import "github.com/shopspring/decimal"

// Customer покупатель и его баланс
type Customer struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
}

func NewCustomer(name string, balance decimal.Decimal) *Customer {
	return &Customer{Name: name, Balance: balance}
}

func (c *Customer) CanAfford(amount decimal.Decimal) bool {
	return c.Balance.GreaterThanOrEqual(amount)
}

// Charge списывает сумму с баланса без проверки; проверку делает checkout
func (c *Customer) Charge(amount decimal.Decimal) {
	c.Balance = c.Balance.Sub(amount)
}
