package request

import "signestimate/internal/domain/entities"

type DepartmentLineRequest struct {
	TaskName string  `json:"task_name"`
	Hours    float64 `json:"hours"`
	Rate     float64 `json:"rate"`
}

type SubcontractorLineRequest struct {
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
}

type MaterialLineRequest struct {
	Name             string  `json:"material_name"`
	Type             string  `json:"material_type"`
	Quantity         float64 `json:"quantity"`
	UnitCost         float64 `json:"unit_cost"`
	MarkupPercentage float64 `json:"markup_percentage"`
}

type CratingLineRequest struct {
	ItemName string  `json:"item_name"`
	Quantity int     `json:"quantity"`
	UnitCost float64 `json:"unit_cost"`
}

// SignRequest is the full editable cost sheet submitted by the sign entry
// form. Blank and zero rows are accepted; the usecase decides what persists.
type SignRequest struct {
	SignType               string                     `json:"sign_type"`
	Description            string                     `json:"description"`
	Quantity               int                        `json:"quantity"`
	ArtDepartment          []DepartmentLineRequest    `json:"art_department"`
	FabricationDepartment  []DepartmentLineRequest    `json:"fabrication_department"`
	InstallationDepartment []DepartmentLineRequest    `json:"installation_department"`
	Subcontractors         []SubcontractorLineRequest `json:"subcontractors"`
	Materials              []MaterialLineRequest      `json:"materials"`
	CratingFees            []CratingLineRequest       `json:"crating_fees"`
}

func (r SignRequest) ToSign() entities.Sign {
	s := entities.Sign{
		SignType:    r.SignType,
		Description: r.Description,
		Quantity:    r.Quantity,
	}
	for _, l := range r.ArtDepartment {
		s.ArtDepartment = append(s.ArtDepartment, entities.DepartmentLine(l))
	}
	for _, l := range r.FabricationDepartment {
		s.FabricationDepartment = append(s.FabricationDepartment, entities.DepartmentLine(l))
	}
	for _, l := range r.InstallationDepartment {
		s.InstallationDepartment = append(s.InstallationDepartment, entities.DepartmentLine(l))
	}
	for _, l := range r.Subcontractors {
		s.Subcontractors = append(s.Subcontractors, entities.SubcontractorLine(l))
	}
	for _, l := range r.Materials {
		s.Materials = append(s.Materials, entities.MaterialLine(l))
	}
	for _, l := range r.CratingFees {
		s.CratingFees = append(s.CratingFees, entities.CratingLine(l))
	}
	return s
}
