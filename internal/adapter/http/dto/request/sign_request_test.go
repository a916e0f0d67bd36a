package request

import "testing"

func TestSignRequest_ToSign(t *testing.T) {
	r := SignRequest{
		SignType:    "channel letters",
		Description: "front elevation",
		Quantity:    2,
		ArtDepartment: []DepartmentLineRequest{
			{TaskName: "design", Hours: 2, Rate: 127.33},
		},
		Subcontractors: []SubcontractorLineRequest{
			{Description: "crane", Cost: 500},
		},
		Materials: []MaterialLineRequest{
			{Name: "Aluminum", Type: "sheet", Quantity: 3, UnitCost: 42.50, MarkupPercentage: 25},
		},
		CratingFees: []CratingLineRequest{
			{ItemName: "hotel", Quantity: 2, UnitCost: 225},
		},
	}

	s := r.ToSign()
	if s.SignType != "channel letters" || s.Quantity != 2 {
		t.Fatalf("unexpected sign header: %+v", s)
	}
	if len(s.ArtDepartment) != 1 || s.ArtDepartment[0].Rate != 127.33 {
		t.Fatalf("unexpected art lines: %+v", s.ArtDepartment)
	}
	if len(s.Materials) != 1 || s.Materials[0].MarkupPercentage != 25 {
		t.Fatalf("unexpected material lines: %+v", s.Materials)
	}
	if len(s.CratingFees) != 1 || s.CratingFees[0].UnitCost != 225 {
		t.Fatalf("unexpected crating lines: %+v", s.CratingFees)
	}
}

func TestConvertRequest_ResolveRequestID(t *testing.T) {
	if got := (ConvertRequest{RequestID: "  1001  "}).ResolveRequestID(); got != "1001" {
		t.Fatalf("expected trimmed id, got %q", got)
	}
	if got := (ConvertRequest{}).ResolveRequestID(); got != "" {
		t.Fatalf("expected empty id, got %q", got)
	}
}
