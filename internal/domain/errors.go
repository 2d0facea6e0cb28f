package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrUnavailable       = errors.New("requested quantity is not available")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrExpiredProduct    = errors.New("product is expired")
	ErrInsufficientFunds = errors.New("insufficient balance")
	ErrCartCheckedOut    = errors.New("cart is already checked out")
)

// UnavailableError возвращается, когда запрошенного количества нет на складе
type UnavailableError struct {
	Product   string
	Requested int64
	Available int64
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("%s: %s (requested %d, available %d)", ErrUnavailable, e.Product, e.Requested, e.Available)
}

func (e *UnavailableError) Is(target error) bool { return target == ErrUnavailable }

// ExpiredProductError указывает первый просроченный товар в корзине
type ExpiredProductError struct {
	Product string
}

func (e *ExpiredProductError) Error() string {
	return fmt.Sprintf("%s: %s", ErrExpiredProduct, e.Product)
}

func (e *ExpiredProductError) Is(target error) bool { return target == ErrExpiredProduct }

type InsufficientFundsError struct {
	Balance decimal.Decimal
	Total   decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("%s: balance %s, total %s", ErrInsufficientFunds, e.Balance, e.Total)
}

func (e *InsufficientFundsError) Is(target error) bool { return target == ErrInsufficientFunds }
