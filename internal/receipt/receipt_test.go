package receipt

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"storefront/internal/domain"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestText_WithShipment(t *testing.T) {
	res := &domain.CheckoutResult{
		Totals:        domain.Totals{Subtotal: d("250"), ShippingCost: d("10"), Total: d("260")},
		TotalWeightKg: d("0.4"),
		Balance:       d("740"),
		Shipment:      []domain.ShipmentLine{{Name: "Cheese", Quantity: 2, WeightGrams: d("400")}},
		Receipt: []domain.ReceiptLine{
			{Name: "Cheese", Quantity: 2, LineTotal: d("200")},
			{Name: "ScratchCard", Quantity: 1, LineTotal: d("50")},
		},
	}

	want := "** Shipment notice **\n" +
		"2x Cheese 400g\n" +
		"Total package weight 0.4kg\n" +
		"** Checkout receipt **\n" +
		"2x Cheese 200\n" +
		"1x ScratchCard 50\n" +
		"--------------------\n" +
		"Subtotal: 250\n" +
		"Shipping: 10\n" +
		"Total amount paid: 260\n" +
		"Customer balance after payment: 740\n"
	assert.Equal(t, want, Text(res))
}

func TestText_NothingShips(t *testing.T) {
	res := &domain.CheckoutResult{
		Totals:  domain.Totals{Subtotal: d("50"), ShippingCost: d("0"), Total: d("50")},
		Balance: d("0"),
		Receipt: []domain.ReceiptLine{{Name: "ScratchCard", Quantity: 1, LineTotal: d("50")}},
	}
	out := Text(res)
	assert.NotContains(t, out, "Shipment notice")
	assert.Contains(t, out, "1x ScratchCard 50\n")
	assert.Contains(t, out, "Shipping: 0\n")
}

func TestText_WeightRounding(t *testing.T) {
	res := &domain.CheckoutResult{
		TotalWeightKg: d("1.45"),
		Shipment:      []domain.ShipmentLine{{Name: "Biscuits", Quantity: 1, WeightGrams: d("1450")}},
	}
	assert.Contains(t, Text(res), "Total package weight 1.5kg\n")
}
