package domain

import "github.com/shopspring/decimal"

// ShipmentLine строка накладной на отправку
type ShipmentLine struct {
	Name        string          `json:"name"`
	Quantity    int64           `json:"quantity"`
	WeightGrams decimal.Decimal `json:"weight_grams"`
}

// ReceiptLine строка чека
type ReceiptLine struct {
	Name      string          `json:"name"`
	Quantity  int64           `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// Totals суммы корзины до списания
type Totals struct {
	Subtotal     decimal.Decimal `json:"subtotal"`
	ShippingCost decimal.Decimal `json:"shipping_cost"`
	Total        decimal.Decimal `json:"total"`
}

// CheckoutResult результат успешного оформления заказа
type CheckoutResult struct {
	Totals
	TotalWeightKg decimal.Decimal `json:"total_weight_kg"`
	Balance       decimal.Decimal `json:"balance"`
	Shipment      []ShipmentLine  `json:"shipment"`
	Receipt       []ReceiptLine   `json:"receipt"`
}
