package netsuite

// MockEstimateRequests is the deterministic batch served in mock mode and
// used by read paths as a last-resort fallback when the upstream is down.
func MockEstimateRequests() Batch {
	items := []Record{
		{
			ID:              "1001",
			BidDueDate:      "2025-08-25",
			PriorityID:      "1",
			PriorityName:    "High",
			StatusID:        "1",
			StatusName:      "Pending Review",
			AssignedToID:    "101",
			AssignedToName:  "John Smith",
			EstimateDueDate: "2025-08-22",
			DateSubmitted:   "2025-08-19",
			JobID:           "5001",
			JobName:         "ABC Corp Storefront Signs",
			RequestedByID:   "102",
			RequestedByName: "Sarah Wilson",
			EstimatorNote:   "Customer needs channel letters and monument sign. Rush job - high priority client.",
		},
		{
			ID:              "1002",
			BidDueDate:      "2025-08-28",
			PriorityID:      "2",
			PriorityName:    "Medium",
			StatusID:        "1",
			StatusName:      "Pending Review",
			AssignedToID:    "103",
			AssignedToName:  "Mike Johnson",
			EstimateDueDate: "2025-08-26",
			DateSubmitted:   "2025-08-18",
			JobID:           "5002",
			JobName:         "XYZ Restaurant Signage",
			RequestedByID:   "104",
			RequestedByName: "Tom Anderson",
			EstimatorNote:   "Interior and exterior signage package. Need to coordinate with architect.",
		},
		{
			ID:              "1003",
			BidDueDate:      "2025-09-01",
			PriorityID:      "3",
			PriorityName:    "Low",
			StatusID:        "2",
			StatusName:      "In Progress",
			AssignedToID:    "101",
			AssignedToName:  "John Smith",
			EstimateDueDate: "2025-08-30",
			DateSubmitted:   "2025-08-17",
			JobID:           "5003",
			JobName:         "Medical Center Wayfinding",
			RequestedByID:   "102",
			RequestedByName: "Sarah Wilson",
			EstimatorNote:   "Complex wayfinding system with ADA compliance requirements.",
		},
		{
			ID:              "1004",
			BidDueDate:      "2025-08-24",
			PriorityID:      "1",
			PriorityName:    "High",
			StatusID:        "1",
			StatusName:      "Pending Review",
			AssignedToID:    "105",
			AssignedToName:  "Lisa Chen",
			EstimateDueDate: "2025-08-23",
			DateSubmitted:   "2025-08-19",
			JobID:           "5004",
			JobName:         "Retail Chain Store Package",
			RequestedByID:   "106",
			RequestedByName: "David Brown",
			EstimatorNote:   "Multi-location rollout. Need consistent pricing across 15 stores.",
		},
		{
			ID:              "1005",
			BidDueDate:      "2025-09-05",
			PriorityID:      "2",
			PriorityName:    "Medium",
			StatusID:        "1",
			StatusName:      "Pending Review",
			AssignedToID:    "103",
			AssignedToName:  "Mike Johnson",
			EstimateDueDate: "2025-09-02",
			DateSubmitted:   "2025-08-16",
			JobID:           "5005",
			JobName:         "Office Building Lobby Signs",
			RequestedByID:   "107",
			RequestedByName: "Jennifer Lee",
			EstimatorNote:   "Premium materials required. Client budget is flexible for quality work.",
		},
	}

	return Batch{Items: items, TotalCount: len(items), HasMore: false}
}
