package costing

import (
	"math"
	"testing"

	"signestimate/internal/domain/entities"
)

func TestRoundCents(t *testing.T) {
	tests := []struct {
		name   string
		in     float64
		expect float64
	}{
		{"exact", 50.00, 50.00},
		{"half rounds up", 10.005, 10.01},
		{"below half rounds down", 10.004, 10.00},
		{"binary drift", 2 * 127.33, 254.66},
		{"zero", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoundCents(tt.in); got != tt.expect {
				t.Errorf("RoundCents(%v) = %v, want %v", tt.in, got, tt.expect)
			}
		})
	}
}

func TestDepartmentSubtotal(t *testing.T) {
	lines := []entities.DepartmentLine{
		{TaskName: "design", Hours: 2, Rate: 127.33},
		{TaskName: "cad", Hours: 0, Rate: 127.33},
		{TaskName: "router", Hours: 1.5, Rate: 75.40},
	}

	got := DepartmentSubtotal(lines)
	want := 2*127.33 + 1.5*75.40
	if got != want {
		t.Fatalf("DepartmentSubtotal = %v, want %v", got, want)
	}

	// The displayed subtotal must equal the sum of the displayed line totals
	// within cent rounding.
	var lineSum float64
	for _, l := range lines {
		lineSum += LineTotal(l.Hours, l.Rate)
	}
	if math.Abs(RoundCents(lineSum)-RoundCents(got)) > 0 {
		t.Fatalf("line total sum %v drifts from subtotal %v", lineSum, got)
	}
}

func TestDepartmentSubtotalIncludesZeroHourLines(t *testing.T) {
	// Zero-hour rows are excluded from persistence but still count (as 0)
	// in the in-memory subtotal.
	withZeros := []entities.DepartmentLine{
		{TaskName: "design", Hours: 3, Rate: 100},
		{TaskName: "cad", Hours: 0, Rate: 127.33},
		{TaskName: "vinyl", Hours: 0, Rate: 75.40},
	}
	withoutZeros := []entities.DepartmentLine{
		{TaskName: "design", Hours: 3, Rate: 100},
	}
	if DepartmentSubtotal(withZeros) != DepartmentSubtotal(withoutZeros) {
		t.Fatalf("zero-hour lines must not change the subtotal")
	}
}

func TestMaterialMarkup(t *testing.T) {
	lines := []entities.MaterialLine{
		{Name: "aluminum sheet", Quantity: 10, UnitCost: 5.00},
	}

	if got := MaterialCost(lines); got != 50.00 {
		t.Fatalf("MaterialCost = %v, want 50.00", got)
	}
	if got := RoundCents(MaterialCostMarkedUp(lines, DefaultMaterialMarkup)); got != 60.00 {
		t.Fatalf("MaterialCostMarkedUp = %v, want 60.00", got)
	}
}

func TestMaterialMarkupPerLineOverride(t *testing.T) {
	lines := []entities.MaterialLine{
		{Name: "acrylic", Quantity: 1, UnitCost: 100, MarkupPercentage: 50},
		{Name: "vinyl", Quantity: 1, UnitCost: 100},
	}
	got := RoundCents(MaterialCostMarkedUp(lines, DefaultMaterialMarkup))
	if got != 270.00 {
		t.Fatalf("MaterialCostMarkedUp = %v, want 270.00", got)
	}
}

func TestComputeSignTotalsSingleArtTask(t *testing.T) {
	s := entities.NewDefaultSign()
	s.ArtDepartment[0].Hours = 2 // design @ 127.33

	totals := ComputeSignTotals(s)

	if totals.ArtSubtotal != 254.66 {
		t.Errorf("ArtSubtotal = %v, want 254.66", totals.ArtSubtotal)
	}
	if totals.FabricationSubtotal != 0 || totals.InstallationSubtotal != 0 {
		t.Errorf("expected zero fabrication/installation subtotals, got %v / %v",
			totals.FabricationSubtotal, totals.InstallationSubtotal)
	}
	if totals.TotalProposalPerItem != 254.66 {
		t.Errorf("TotalProposalPerItem = %v, want 254.66", totals.TotalProposalPerItem)
	}
	if totals.TotalBillableForQuantity != 254.66 {
		t.Errorf("TotalBillableForQuantity = %v, want 254.66", totals.TotalBillableForQuantity)
	}
	if totals.EstimatedGrossProfit != 0 {
		t.Errorf("EstimatedGrossProfit = %v, want 0 (labor only, no markup)", totals.EstimatedGrossProfit)
	}
}

func TestComputeSignTotalsWithMaterialsAndQuantity(t *testing.T) {
	s := entities.Sign{
		Quantity: 2,
		Materials: []entities.MaterialLine{
			{Name: "aluminum", Quantity: 10, UnitCost: 5.00},
		},
	}

	totals := ComputeSignTotals(s)

	if totals.MaterialCost != 50.00 {
		t.Errorf("MaterialCost = %v, want 50.00", totals.MaterialCost)
	}
	if totals.MaterialCostMarkedUp != 60.00 {
		t.Errorf("MaterialCostMarkedUp = %v, want 60.00", totals.MaterialCostMarkedUp)
	}
	if totals.TotalProposalPerItem != 60.00 {
		t.Errorf("TotalProposalPerItem = %v, want 60.00", totals.TotalProposalPerItem)
	}
	if totals.TotalBillableForQuantity != 120.00 {
		t.Errorf("TotalBillableForQuantity = %v, want 120.00", totals.TotalBillableForQuantity)
	}
	if totals.EstimatedCost != 100.00 {
		t.Errorf("EstimatedCost = %v, want 100.00", totals.EstimatedCost)
	}
	if totals.EstimatedGrossProfit != 20.00 {
		t.Errorf("EstimatedGrossProfit = %v, want 20.00", totals.EstimatedGrossProfit)
	}
	// 20 / 120 = 16.666...% -> 16.67 after cent rounding of the percentage.
	if totals.EstimatedGrossMargin != 16.67 {
		t.Errorf("EstimatedGrossMargin = %v, want 16.67", totals.EstimatedGrossMargin)
	}
}

func TestComputeSignTotalsEmptySheetHasZeroMargin(t *testing.T) {
	totals := ComputeSignTotals(entities.Sign{Quantity: 1})
	if totals.TotalBillableForQuantity != 0 {
		t.Fatalf("TotalBillableForQuantity = %v, want 0", totals.TotalBillableForQuantity)
	}
	if totals.EstimatedGrossMargin != 0 {
		t.Fatalf("EstimatedGrossMargin = %v, want 0 (no division by zero)", totals.EstimatedGrossMargin)
	}
}

func TestCratingSubtotal(t *testing.T) {
	lines := []entities.CratingLine{
		{ItemName: "cratingLabor", Quantity: 2, UnitCost: 81.81},
		{ItemName: "hotel", Quantity: 0, UnitCost: 225.00},
	}
	if got := RoundCents(CratingSubtotal(lines)); got != 163.62 {
		t.Fatalf("CratingSubtotal = %v, want 163.62", got)
	}
}
