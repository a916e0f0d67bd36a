// Package costing provides the pure cost-rollup calculations for a sign
// estimate: task line totals, department subtotals, material markup, crating
// fees and the final sign totals. No I/O.
package costing

import (
	"math"

	"signestimate/internal/domain/entities"
)

// DefaultMaterialMarkup is the sign-level markup applied to material lines
// that carry no per-line markup percentage.
const DefaultMaterialMarkup = 0.20

// RoundCents rounds half-up to two decimal places. Every persisted or
// displayed monetary value goes through this.
func RoundCents(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}

// LineTotal is the billable amount of one department task row.
func LineTotal(hours, rate float64) float64 {
	return hours * rate
}

// DepartmentSubtotal sums task line totals over a department's fixed task
// set. Zero-hour rows contribute 0 but are still part of the sum.
func DepartmentSubtotal(lines []entities.DepartmentLine) float64 {
	var sum float64
	for _, l := range lines {
		sum += LineTotal(l.Hours, l.Rate)
	}
	return sum
}

// SubcontractorTotal sums subcontractor and permit costs.
func SubcontractorTotal(lines []entities.SubcontractorLine) float64 {
	var sum float64
	for _, l := range lines {
		sum += l.Cost
	}
	return sum
}

// MaterialCost is the raw material cost before markup.
func MaterialCost(lines []entities.MaterialLine) float64 {
	var sum float64
	for _, l := range lines {
		sum += l.Quantity * l.UnitCost
	}
	return sum
}

// MaterialCostMarkedUp applies each line's markup percentage, falling back to
// defaultMarkup for lines without one.
func MaterialCostMarkedUp(lines []entities.MaterialLine, defaultMarkup float64) float64 {
	var sum float64
	for _, l := range lines {
		markup := defaultMarkup
		if l.MarkupPercentage > 0 {
			markup = l.MarkupPercentage / 100
		}
		sum += l.Quantity * l.UnitCost * (1 + markup)
	}
	return sum
}

// CratingSubtotal sums crating and other-fee line totals.
func CratingSubtotal(lines []entities.CratingLine) float64 {
	var sum float64
	for _, l := range lines {
		sum += float64(l.Quantity) * l.UnitCost
	}
	return sum
}

// SignTotals is the rollup block at the bottom of a sign estimate sheet.
// Department billable equals the department subtotal; there is no separate
// labor markup step. EstimatedGrossMargin is a percentage.
type SignTotals struct {
	ArtSubtotal              float64 `json:"art_subtotal"`
	FabricationSubtotal      float64 `json:"fabrication_subtotal"`
	InstallationSubtotal     float64 `json:"installation_subtotal"`
	SubcontractorTotal       float64 `json:"subcontractor_total"`
	MaterialCost             float64 `json:"material_cost"`
	MaterialCostMarkedUp     float64 `json:"material_cost_marked_up"`
	CratingSubtotal          float64 `json:"crating_subtotal"`
	TotalProposalPerItem     float64 `json:"total_proposal_per_item"`
	TotalBillableForQuantity float64 `json:"total_billable_for_quantity"`
	EstimatedCost            float64 `json:"estimated_cost"`
	EstimatedGrossProfit     float64 `json:"estimated_gross_profit"`
	EstimatedGrossMargin     float64 `json:"estimated_gross_margin"`
}

// ComputeSignTotals rolls up a sign's in-memory cost sheet.
func ComputeSignTotals(s entities.Sign) SignTotals {
	qty := s.Quantity
	if qty < 1 {
		qty = 1
	}

	art := DepartmentSubtotal(s.ArtDepartment)
	fab := DepartmentSubtotal(s.FabricationDepartment)
	install := DepartmentSubtotal(s.InstallationDepartment)
	subs := SubcontractorTotal(s.Subcontractors)
	matCost := MaterialCost(s.Materials)
	matMarked := MaterialCostMarkedUp(s.Materials, DefaultMaterialMarkup)
	crating := CratingSubtotal(s.CratingFees)

	proposal := art + fab + install + matMarked + subs + crating
	billable := proposal * float64(qty)
	cost := (art + fab + install + matCost + subs + crating) * float64(qty)
	profit := billable - cost

	var margin float64
	if billable != 0 {
		margin = (profit / billable) * 100
	}

	return SignTotals{
		ArtSubtotal:              RoundCents(art),
		FabricationSubtotal:      RoundCents(fab),
		InstallationSubtotal:     RoundCents(install),
		SubcontractorTotal:       RoundCents(subs),
		MaterialCost:             RoundCents(matCost),
		MaterialCostMarkedUp:     RoundCents(matMarked),
		CratingSubtotal:          RoundCents(crating),
		TotalProposalPerItem:     RoundCents(proposal),
		TotalBillableForQuantity: RoundCents(billable),
		EstimatedCost:            RoundCents(cost),
		EstimatedGrossProfit:     RoundCents(profit),
		EstimatedGrossMargin:     RoundCents(margin),
	}
}
