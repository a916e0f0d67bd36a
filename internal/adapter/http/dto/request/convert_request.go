package request

import "strings"

// ConvertRequest asks for an estimate request to be turned into a job
// estimate. requestId is the NetSuite record id of the synced request.
type ConvertRequest struct {
	RequestID string `json:"requestId" binding:"required"`
}

func (r ConvertRequest) ResolveRequestID() string {
	return strings.TrimSpace(r.RequestID)
}
