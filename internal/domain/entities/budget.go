package entities

import "time"

// Budget (orçamento) is the computed total of an order at a point in time.
// It is never edited; regenerating produces a new value.
type Budget struct {
	CreatedAt time.Time
	Price     Price
}

// CalculateBudget sums every service price plus unit price times quantity of
// every item.
func CalculateBudget(services []IncludedService, items []IncludedItem, now time.Time) Budget {
	total := ZeroPrice
	for _, s := range services {
		total = total.Add(s.Price)
	}
	for _, i := range items {
		total = total.Add(i.Subtotal())
	}
	return Budget{CreatedAt: now.UTC(), Price: total}
}
