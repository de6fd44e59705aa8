package service

import (
	"fmt"
	"math"

	"coffee-backend/internal/features/orders/domain"
	shopsdomain "coffee-backend/internal/features/shops/domain"
)

// taxRate is applied to the order subtotal, rounded to whole cents.
const taxRate = 0.1

// Totals holds the computed price components of an order in cents.
type Totals struct {
	Subtotal int
	Tax      int
	Total    int
}

// computeTotals validates and prices the requested line items against the
// shop menu. It returns the normalized items (quantities clamped to at
// least 1) and the price components. Any invalid item, choice or selection
// count fails the whole computation, so no partially priced order can exist.
func computeTotals(menu []shopsdomain.MenuItem, items []domain.LineItem) ([]domain.LineItem, Totals, error) {
	byID := make(map[string]shopsdomain.MenuItem, len(menu))
	for _, item := range menu {
		byID[item.ID] = item
	}

	normalized := make([]domain.LineItem, 0, len(items))
	subtotal := 0
	for _, raw := range items {
		menuItem, ok := byID[raw.ItemID]
		if !ok {
			return nil, Totals{}, fmt.Errorf("%w: unknown item %s", domain.ErrValidation, raw.ItemID)
		}

		qty := raw.Quantity
		if qty < 1 {
			qty = 1
		}

		line, err := itemTotalCents(menuItem, raw.Selected, qty)
		if err != nil {
			return nil, Totals{}, err
		}
		subtotal += line

		normalized = append(normalized, domain.LineItem{
			ItemID:   menuItem.ID,
			Quantity: qty,
			Selected: raw.Selected,
		})
	}

	tax := int(math.Round(float64(subtotal) * taxRate))
	return normalized, Totals{Subtotal: subtotal, Tax: tax, Total: subtotal + tax}, nil
}

// itemTotalCents prices one line item: base price plus every selected
// choice, times quantity. Selection counts must fall within each option
// group's [min, max].
func itemTotalCents(item shopsdomain.MenuItem, selected map[string][]string, qty int) (int, error) {
	extras := 0
	for _, group := range item.OptionGroups {
		choices := selected[group.ID]
		if len(choices) < group.Min || len(choices) > group.Max {
			return 0, fmt.Errorf("%w: group %s: select %d-%d", domain.ErrValidation, group.Name, group.Min, group.Max)
		}
		for _, choiceID := range choices {
			price, ok := group.ChoicePriceCents(choiceID)
			if !ok {
				return 0, fmt.Errorf("%w: invalid choice %s for group %s", domain.ErrValidation, choiceID, group.Name)
			}
			extras += price
		}
	}
	return (item.BasePriceCents + extras) * qty, nil
}
