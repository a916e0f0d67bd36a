package entities

import "time"

// DepartmentLine is one hours-times-rate task row inside a department section.
type DepartmentLine struct {
	TaskName string  `json:"task_name"`
	Hours    float64 `json:"hours"`
	Rate     float64 `json:"rate"`
}

// SubcontractorLine is one outsourced cost row (subcontractors and permits).
type SubcontractorLine struct {
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
}

// MaterialLine is one material row. MarkupPercentage is per-line; 0 means the
// sign-level default markup applies.
type MaterialLine struct {
	Name             string  `json:"material_name"`
	Type             string  `json:"material_type"`
	Quantity         float64 `json:"quantity"`
	UnitCost         float64 `json:"unit_cost"`
	MarkupPercentage float64 `json:"markup_percentage"`
}

// CratingLine is one crating/other-fees row.
type CratingLine struct {
	ItemName string  `json:"item_name"`
	Quantity int     `json:"quantity"`
	UnitCost float64 `json:"unit_cost"`
}

// Sign is one billable line of fabrication work within a Job, carrying its
// own department cost breakdown.
//
// Storage model (DynamoDB):
//   - PK: id
//   - signs are listed per job via the job_id attribute
//
// Line rows are persisted only when non-zero (see the sign usecase); the full
// editable sheet still participates in totals while in memory.
type Sign struct {
	ID                     string              `json:"id"`
	JobID                  string              `json:"job_id"`
	SignNumber             int                 `json:"sign_number"`
	SignType               string              `json:"sign_type"`
	Description            string              `json:"description"`
	Quantity               int                 `json:"quantity"`
	ArtDepartment          []DepartmentLine    `json:"art_department"`
	FabricationDepartment  []DepartmentLine    `json:"fabrication_department"`
	InstallationDepartment []DepartmentLine    `json:"installation_department"`
	Subcontractors         []SubcontractorLine `json:"subcontractors"`
	Materials              []MaterialLine      `json:"materials"`
	CratingFees            []CratingLine       `json:"crating_fees"`
	CreatedAt              time.Time           `json:"created_at"`
}

// StandardRate is one row of the read-only department/task reference table.
type StandardRate struct {
	ID           string  `json:"id"`
	Department   string  `json:"department"`
	TaskName     string  `json:"task_name"`
	StandardRate float64 `json:"standard_rate"`
}

// NewDefaultSign returns a blank cost sheet seeded with the shop's standard
// task sets and default rates, matching what an estimator sees on a fresh
// sign entry form.
func NewDefaultSign() Sign {
	return Sign{
		Quantity: 1,
		ArtDepartment: []DepartmentLine{
			{TaskName: "design", Rate: 127.33},
			{TaskName: "cad", Rate: 127.33},
			{TaskName: "router", Rate: 75.40},
			{TaskName: "vinyl", Rate: 75.40},
			{TaskName: "printing", Rate: 75.40},
			{TaskName: "cutting", Rate: 75.40},
			{TaskName: "drill", Rate: 75.40},
			{TaskName: "misc", Rate: 75.40},
		},
		FabricationDepartment: []DepartmentLine{
			{TaskName: "channelLetters", Rate: 100.55},
			{TaskName: "trimcap", Rate: 49.02},
			{TaskName: "aluminum", Rate: 97.83},
			{TaskName: "wiring", Rate: 100.55},
			{TaskName: "prep", Rate: 53.13},
			{TaskName: "paint", Rate: 97.96},
			{TaskName: "assembly", Rate: 100.55},
			{TaskName: "packing", Rate: 94.36},
			{TaskName: "receive", Rate: 94.36},
			{TaskName: "steel", Rate: 97.83},
			{TaskName: "misc1", Rate: 97.83},
			{TaskName: "misc2", Rate: 97.83},
		},
		InstallationDepartment: []DepartmentLine{
			{TaskName: "serviceTruck", Rate: 173.00},
			{TaskName: "bucketVan", Rate: 233.55},
			{TaskName: "elliot60", Rate: 259.50},
			{TaskName: "elliot75", Rate: 324.37},
			{TaskName: "install3", Rate: 389.25},
			{TaskName: "install4", Rate: 519.00},
		},
		Subcontractors: []SubcontractorLine{{}},
		Materials:      []MaterialLine{{}},
		CratingFees: []CratingLine{
			{ItemName: "cratingLabor", UnitCost: 81.81},
			{ItemName: "packingMaterials", Quantity: 1},
			{ItemName: "perDiem"},
			{ItemName: "hotel", UnitCost: 225.00},
		},
	}
}
