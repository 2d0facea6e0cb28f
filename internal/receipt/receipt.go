// Package receipt renders a checkout result as the plain-text shipment
// notice and receipt handed to the customer.
package receipt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"storefront/internal/domain"
)

const separator = "--------------------"

// Render writes the shipment notice (only when something ships) followed by
// the receipt.
func Render(w io.Writer, res *domain.CheckoutResult) error {
	bw := bufio.NewWriter(w)
	if len(res.Shipment) > 0 {
		fmt.Fprintln(bw, "** Shipment notice **")
		for _, s := range res.Shipment {
			fmt.Fprintf(bw, "%dx %s %sg\n", s.Quantity, s.Name, s.WeightGrams)
		}
		fmt.Fprintf(bw, "Total package weight %skg\n", res.TotalWeightKg.StringFixed(1))
	}

	fmt.Fprintln(bw, "** Checkout receipt **")
	for _, r := range res.Receipt {
		fmt.Fprintf(bw, "%dx %s %s\n", r.Quantity, r.Name, r.LineTotal)
	}
	fmt.Fprintln(bw, separator)
	fmt.Fprintf(bw, "Subtotal: %s\n", res.Subtotal)
	fmt.Fprintf(bw, "Shipping: %s\n", res.ShippingCost)
	fmt.Fprintf(bw, "Total amount paid: %s\n", res.Total)
	fmt.Fprintf(bw, "Customer balance after payment: %s\n", res.Balance)
	return bw.Flush()
}

func Text(res *domain.CheckoutResult) string {
	var sb strings.Builder
	_ = Render(&sb, res)
	return sb.String()
}
