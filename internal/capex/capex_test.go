package capex

import (
	"math"
	"testing"
)

func testTable() Table {
	return Table{
		Items: []LineItem{
			{Category: "Equipment", Subcategory: "ASIC Miners", CapacityUnits: "2 MW", UnitCost: 1500, TotalCost: 3000000},
			{Category: "Equipment", Subcategory: "GPU Clusters", CapacityUnits: "1 MW", UnitCost: 2500, TotalCost: 2500000},
			{Category: "Facility", Subcategory: "Modular Construction", CapacityUnits: "5000 sq ft", UnitCost: 400, TotalCost: 2000000},
			{Category: "Power & Cooling", Subcategory: "HVAC Systems", CapacityUnits: "5 MW", UnitCost: 800, TotalCost: 4000000},
			{Category: "Power & Cooling", Subcategory: "Solar Array", CapacityUnits: "2 MW", UnitCost: 1500, TotalCost: 3000000},
		},
		ContingencyRate: 0.15,
		TargetTotal:     12000000,
	}
}

func TestTableTotals(t *testing.T) {
	table := testTable()

	base := table.BaseCost()
	if math.Abs(base-14500000) > 1e-9 {
		t.Errorf("BaseCost() = %v, expected 14500000", base)
	}

	contingency := table.Contingency()
	if math.Abs(contingency-2175000) > 1e-9 {
		t.Errorf("Contingency() = %v, expected 2175000", contingency)
	}

	grand := table.GrandTotal()
	if math.Abs(grand-16675000) > 1e-9 {
		t.Errorf("GrandTotal() = %v, expected 16675000", grand)
	}
}

func TestTableSubtotalsPreserveOrder(t *testing.T) {
	table := testTable()
	subtotals := table.Subtotals()

	expected := []CategoryTotal{
		{Category: "Equipment", Total: 5500000},
		{Category: "Facility", Total: 2000000},
		{Category: "Power & Cooling", Total: 7000000},
	}

	if len(subtotals) != len(expected) {
		t.Fatalf("Subtotals() returned %d categories, expected %d", len(subtotals), len(expected))
	}
	for i, want := range expected {
		if subtotals[i].Category != want.Category {
			t.Errorf("subtotal %d category = %s, expected %s", i, subtotals[i].Category, want.Category)
		}
		if math.Abs(subtotals[i].Total-want.Total) > 1e-9 {
			t.Errorf("subtotal %d total = %v, expected %v", i, subtotals[i].Total, want.Total)
		}
	}
}

func TestTableValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Table)
		expectErr bool
	}{
		{"Valid table", func(tb *Table) {}, false},
		{"No items", func(tb *Table) { tb.Items = nil }, true},
		{"Negative contingency", func(tb *Table) { tb.ContingencyRate = -0.1 }, true},
		{"Missing category", func(tb *Table) { tb.Items[0].Category = "" }, true},
		{"Negative cost", func(tb *Table) { tb.Items[1].TotalCost = -1 }, true},
		{"Zero contingency allowed", func(tb *Table) { tb.ContingencyRate = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := testTable()
			tt.mutate(&table)
			err := table.Validate()
			if tt.expectErr && err == nil {
				t.Error("Validate() expected error, got none")
			}
			if !tt.expectErr && err != nil {
				t.Errorf("Validate() unexpected error = %v", err)
			}
		})
	}
}
