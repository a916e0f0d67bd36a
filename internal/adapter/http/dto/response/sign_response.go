package response

import (
	"time"

	"signestimate/internal/domain/costing"
	"signestimate/internal/domain/entities"
)

type SignTotalsResponse struct {
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

func FromSignTotals(t costing.SignTotals) SignTotalsResponse {
	return SignTotalsResponse(t)
}

type SignResponse struct {
	ID                     string                       `json:"id"`
	JobID                  string                       `json:"job_id"`
	SignNumber             int                          `json:"sign_number"`
	SignType               string                       `json:"sign_type"`
	Description            string                       `json:"description"`
	Quantity               int                          `json:"quantity"`
	ArtDepartment          []entities.DepartmentLine    `json:"art_department"`
	FabricationDepartment  []entities.DepartmentLine    `json:"fabrication_department"`
	InstallationDepartment []entities.DepartmentLine    `json:"installation_department"`
	Subcontractors         []entities.SubcontractorLine `json:"subcontractors"`
	Materials              []entities.MaterialLine      `json:"materials"`
	CratingFees            []entities.CratingLine       `json:"crating_fees"`
	Totals                 *SignTotalsResponse          `json:"totals,omitempty"`
	CreatedAt              time.Time                    `json:"created_at"`
}

func FromSign(s entities.Sign) SignResponse {
	return SignResponse{
		ID:                     s.ID,
		JobID:                  s.JobID,
		SignNumber:             s.SignNumber,
		SignType:               s.SignType,
		Description:            s.Description,
		Quantity:               s.Quantity,
		ArtDepartment:          s.ArtDepartment,
		FabricationDepartment:  s.FabricationDepartment,
		InstallationDepartment: s.InstallationDepartment,
		Subcontractors:         s.Subcontractors,
		Materials:              s.Materials,
		CratingFees:            s.CratingFees,
		CreatedAt:              s.CreatedAt,
	}
}

func FromSignWithTotals(s entities.Sign, t costing.SignTotals) SignResponse {
	out := FromSign(s)
	totals := FromSignTotals(t)
	out.Totals = &totals
	return out
}

func FromSigns(signs []entities.Sign) []SignResponse {
	out := make([]SignResponse, 0, len(signs))
	for _, s := range signs {
		out = append(out, FromSign(s))
	}
	return out
}
