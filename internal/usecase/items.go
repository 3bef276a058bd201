package usecase

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/foodorder/internal/domain/model"
)

// SummarizeItems renders line items as "2x Burger (No onions) - $17.00; 1x Cola - $1.50"
// and returns the order total.
func SummarizeItems(items []model.LineItem) (string, decimal.Decimal) {
	parts := make([]string, 0, len(items))
	total := decimal.Zero
	for _, item := range items {
		lineTotal := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(lineTotal)

		var b strings.Builder
		fmt.Fprintf(&b, "%dx %s", item.Quantity, item.Name)
		if len(item.Customizations) > 0 {
			fmt.Fprintf(&b, " (%s)", strings.Join(item.Customizations, ", "))
		}
		fmt.Fprintf(&b, " - $%s", lineTotal.StringFixed(2))
		parts = append(parts, b.String())
	}
	return strings.Join(parts, "; "), total
}
