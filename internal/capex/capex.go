// Package capex models the one-time capital expenditure table: itemized
// line items grouped by category, with contingency and totals.
package capex

import "fmt"

// LineItem is a single capital expenditure entry. The field order consumed
// by renderers is category, subcategory, capacity/units, unit cost, total
// cost, notes.
type LineItem struct {
	Category      string
	Subcategory   string
	CapacityUnits string
	UnitCost      float64
	TotalCost     float64
	Notes         string
}

// CategoryTotal aggregates line items under one category.
type CategoryTotal struct {
	Category string
	Total    float64
}

// Table is the full capital expenditure breakdown for a facility build.
// TargetTotal, when non-zero, is the budget-scaled figure reported alongside
// the computed grand total.
type Table struct {
	Items           []LineItem
	ContingencyRate float64
	TargetTotal     float64
}

// Validate rejects malformed tables before rendering.
func (t *Table) Validate() error {
	if len(t.Items) == 0 {
		return fmt.Errorf("capex table has no line items")
	}
	if t.ContingencyRate < 0 {
		return fmt.Errorf("contingency rate must be non-negative, got %v", t.ContingencyRate)
	}
	for _, item := range t.Items {
		if item.Category == "" || item.Subcategory == "" {
			return fmt.Errorf("capex line item missing category or subcategory: %+v", item)
		}
		if item.TotalCost < 0 {
			return fmt.Errorf("capex line item %q has negative total cost %v", item.Subcategory, item.TotalCost)
		}
	}
	return nil
}

// BaseCost sums all line items before contingency.
func (t *Table) BaseCost() float64 {
	total := 0.0
	for _, item := range t.Items {
		total += item.TotalCost
	}
	return total
}

// Contingency returns the buffer applied on top of the base cost.
func (t *Table) Contingency() float64 {
	return t.BaseCost() * t.ContingencyRate
}

// GrandTotal returns base cost plus contingency.
func (t *Table) GrandTotal() float64 {
	return t.BaseCost() + t.Contingency()
}

// Subtotals aggregates line items by category, preserving the order in which
// categories first appear in the table.
func (t *Table) Subtotals() []CategoryTotal {
	index := make(map[string]int)
	var totals []CategoryTotal
	for _, item := range t.Items {
		if i, ok := index[item.Category]; ok {
			totals[i].Total += item.TotalCost
		} else {
			index[item.Category] = len(totals)
			totals = append(totals, CategoryTotal{Category: item.Category, Total: item.TotalCost})
		}
	}
	return totals
}
