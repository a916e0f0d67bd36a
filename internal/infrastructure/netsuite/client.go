package netsuite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"
)

const requestTimeout = 30 * time.Second

// suiteQLQuery fetches pending estimate requests (estimate_completed IS NULL)
// with employee/job reference joins to resolve display names.
const suiteQLQuery = `
SELECT
  er.id,
  er.custrecord12                 AS bid_due_date,
  er.custrecord17                 AS priority_id,
  er.custrecord18                 AS status_id,
  er.custrecord19                 AS assigned_to_id,
  emp.firstname || ' ' || emp.lastname AS assigned_to_name,
  er.custrecord20                 AS estimate_due_date,
  er.custrecord21                 AS estimate_completed,
  er.custrecord_er_date_submitted AS date_submitted,
  er.custrecord_er_job            AS job_id,
  job.entityid                    AS job_name,
  er.custrecord_er_req_by         AS requested_by_id,
  rby.firstname || ' ' || rby.lastname AS requested_by_name,
  er.custrecord43                 AS estimator_note
FROM customrecord417 er
LEFT JOIN employee emp ON emp.id = er.custrecord19
LEFT JOIN job      job ON job.id = er.custrecord_er_job
LEFT JOIN employee rby ON rby.id = er.custrecord_er_req_by
WHERE er.custrecord21 IS NULL
ORDER BY er.id DESC`

// Record is one normalized estimate request row as returned by NetSuite.
type Record struct {
	ID                string `json:"id"`
	BidDueDate        string `json:"bid_due_date"`
	PriorityID        string `json:"priority_id"`
	PriorityName      string `json:"priority_name"`
	StatusID          string `json:"status_id"`
	StatusName        string `json:"status_name"`
	AssignedToID      string `json:"assigned_to_id"`
	AssignedToName    string `json:"assigned_to_name"`
	EstimateDueDate   string `json:"estimate_due_date"`
	EstimateCompleted string `json:"estimate_completed"`
	DateSubmitted     string `json:"date_submitted"`
	JobID             string `json:"job_id"`
	JobName           string `json:"job_name"`
	RequestedByID     string `json:"requested_by_id"`
	RequestedByName   string `json:"requested_by_name"`
	EstimatorNote     string `json:"estimator_note"`
}

// Batch is a page of estimate request records.
type Batch struct {
	Items      []Record `json:"items"`
	TotalCount int      `json:"totalCount"`
	HasMore    bool     `json:"hasMore"`
}

// ConversionResult is the upstream acknowledgement for converting an
// estimate request into a job estimate.
type ConversionResult struct {
	Success       bool   `json:"success"`
	JobEstimateID string `json:"jobEstimateId,omitempty"`
	Message       string `json:"message,omitempty"`
	Error         string `json:"error,omitempty"`
}

// UpstreamError is a non-2xx SuiteQL response.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("netsuite api error: %d - %s", e.Status, e.Body)
}

// suiteQLResponse is the raw SuiteQL envelope.
type suiteQLResponse struct {
	Items   []Record `json:"items"`
	Count   int      `json:"count"`
	HasMore bool     `json:"hasMore"`
}

// Client issues SuiteQL queries against NetSuite, or serves deterministic
// mock data when the account is unconfigured or mock mode is forced. Errors
// are always propagated; falling back to mock data is the caller's decision
// at the outermost read boundary.
type Client struct {
	cfg        Config
	signer     *Signer
	httpClient *http.Client

	// baseURL overrides the account-derived SuiteQL URL in tests.
	baseURL string
}

func NewClient(cfg Config) *Client {
	return &Client{
		cfg:        cfg,
		signer:     NewSigner(cfg),
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// Configured reports whether real credentials are present.
func (c *Client) Configured() bool { return c.cfg.Configured() }

// MockMode reports whether the client serves mock data instead of calling
// the network.
func (c *Client) MockMode() bool {
	return c.cfg.ForceMock || !c.cfg.Configured()
}

// FetchPendingEstimateRequests returns the pending estimate request batch.
func (c *Client) FetchPendingEstimateRequests(ctx context.Context) (Batch, error) {
	if c.MockMode() {
		log.Printf("[netsuite][client] mock mode enabled, serving mock estimate requests")
		return MockEstimateRequests(), nil
	}

	url := c.suiteQLURL()
	log.Printf("[netsuite][client] fetch start account_id=%s", c.cfg.AccountID)

	body, err := json.Marshal(map[string]string{"q": suiteQLQuery})
	if err != nil {
		return Batch{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Batch{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "transient")
	req.Header.Set("Authorization", c.signer.AuthorizationHeader(http.MethodPost, url))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[netsuite][client] fetch transport failure err=%v", err)
		return Batch{}, err
	}
	defer resp.Body.Close()

	log.Printf("[netsuite][client] fetch response status=%d", resp.StatusCode)
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Batch{}, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Batch{}, &UpstreamError{Status: resp.StatusCode, Body: string(respBody)}
	}

	var raw suiteQLResponse
	if err := json.Unmarshal(respBody, &raw); err != nil {
		log.Printf("[netsuite][client] fetch parse failure err=%v", err)
		return Batch{}, err
	}

	items := make([]Record, 0, len(raw.Items))
	for _, r := range raw.Items {
		items = append(items, normalizeRecord(r))
	}

	total := raw.Count
	if total == 0 {
		total = len(items)
	}

	log.Printf("[netsuite][client] fetch success items=%d has_more=%t", len(items), raw.HasMore)
	return Batch{Items: items, TotalCount: total, HasMore: raw.HasMore}, nil
}

// ConvertToJobEstimate acknowledges a conversion upstream. NetSuite state is
// not mutated here; the returned id is usable as a job_number seed when the
// request has no job reference of its own.
func (c *Client) ConvertToJobEstimate(ctx context.Context, requestID string) (ConversionResult, error) {
	if requestID == "" {
		return ConversionResult{Success: false, Error: "missing request id"}, nil
	}
	log.Printf("[netsuite][client] convert request_id=%s", requestID)
	return ConversionResult{
		Success:       true,
		JobEstimateID: "JOB-" + strconv.FormatInt(time.Now().UTC().UnixMilli(), 10),
		Message:       "Estimate request successfully converted to job estimate",
	}, nil
}

func (c *Client) suiteQLURL() string {
	if c.baseURL != "" {
		return c.baseURL
	}
	return c.cfg.SuiteQLURL()
}

// normalizeRecord maps the reference ids returned by SuiteQL to display
// names and fills the defaults used when a join produced no name.
func normalizeRecord(r Record) Record {
	r.PriorityName = priorityName(r.PriorityID)
	r.StatusName = statusName(r.StatusID)
	if r.AssignedToName == "" {
		r.AssignedToName = "Unassigned"
	}
	if r.RequestedByName == "" {
		r.RequestedByName = "Unknown"
	}
	if r.JobName == "" {
		r.JobName = "Job " + r.JobID
	}
	return r
}

func priorityName(id string) string {
	switch id {
	case "1":
		return "High"
	case "2":
		return "Medium"
	case "3":
		return "Low"
	default:
		return "Unknown"
	}
}

func statusName(id string) string {
	switch id {
	case "1":
		return "Pending Review"
	case "2":
		return "In Progress"
	case "3":
		return "On Hold"
	case "4":
		return "Completed"
	default:
		return "Unknown"
	}
}
