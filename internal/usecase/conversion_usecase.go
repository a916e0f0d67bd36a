package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"signestimate/internal/domain/entities"
	"signestimate/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrRequestNotFound  = errors.New("estimate request not found")
	ErrInvalidRequestID = errors.New("invalid request id")
)

// ConversionOutcome is the result of converting an estimate request.
// AlreadyConverted is an expected state, not an error: the request was
// claimed earlier (possibly by a concurrent caller) and JobID points at the
// existing job estimate.
type ConversionOutcome struct {
	Job              entities.Job
	JobID            string
	AlreadyConverted bool
	Message          string
}

// IConversionUseCase turns an estimate request into a new job estimate,
// guaranteeing at most one job per request.
type IConversionUseCase interface {
	ConvertRequestToJob(ctx context.Context, requestID string) (ConversionOutcome, error)
}

type ConversionUseCase struct {
	requests interfaces.IEstimateRequestRepository
	jobs     interfaces.IJobRepository
	gateway  interfaces.INetSuiteGateway
	now      func() time.Time
}

var _ IConversionUseCase = (*ConversionUseCase)(nil)

func NewConversionUseCase(requests interfaces.IEstimateRequestRepository, jobs interfaces.IJobRepository, gateway interfaces.INetSuiteGateway) *ConversionUseCase {
	return &ConversionUseCase{requests: requests, jobs: jobs, gateway: gateway, now: time.Now}
}

func (u *ConversionUseCase) ConvertRequestToJob(ctx context.Context, requestID string) (ConversionOutcome, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return ConversionOutcome{}, ErrInvalidRequestID
	}

	log.Printf("[conversion][usecase] convert start request_id=%s", requestID)

	req, err := u.requests.GetByID(ctx, requestID)
	if err != nil {
		return ConversionOutcome{}, err
	}
	if req.NetSuiteID == "" {
		log.Printf("[conversion][usecase] request not found request_id=%s", requestID)
		return ConversionOutcome{}, ErrRequestNotFound
	}

	if req.Converted() {
		log.Printf("[conversion][usecase] already converted request_id=%s job_id=%s", requestID, req.ConvertedJobID)
		return ConversionOutcome{
			JobID:            req.ConvertedJobID,
			AlreadyConverted: true,
			Message:          "Estimate request was already converted",
		}, nil
	}

	job := u.buildJob(ctx, req)

	created, err := u.jobs.Create(ctx, job)
	if err != nil {
		log.Printf("[conversion][usecase] job create failed request_id=%s err=%v", requestID, err)
		return ConversionOutcome{}, err
	}

	// The job create and the converted mark are logically one transaction:
	// if the guarded mark fails or loses the race, the job must not survive.
	ok, err := u.requests.MarkConverted(ctx, requestID, created.ID, u.now().UTC())
	if err != nil {
		log.Printf("[conversion][usecase] mark converted failed request_id=%s job_id=%s err=%v", requestID, created.ID, err)
		if delErr := u.jobs.Delete(ctx, created.ID); delErr != nil {
			log.Printf("[conversion][usecase] compensation delete failed job_id=%s err=%v", created.ID, delErr)
		}
		return ConversionOutcome{}, err
	}
	if !ok {
		// A concurrent conversion claimed the request first.
		if delErr := u.jobs.Delete(ctx, created.ID); delErr != nil {
			log.Printf("[conversion][usecase] compensation delete failed job_id=%s err=%v", created.ID, delErr)
		}
		winner, err := u.requests.GetByID(ctx, requestID)
		if err != nil {
			return ConversionOutcome{}, err
		}
		log.Printf("[conversion][usecase] lost conversion race request_id=%s winner_job_id=%s", requestID, winner.ConvertedJobID)
		return ConversionOutcome{
			JobID:            winner.ConvertedJobID,
			AlreadyConverted: true,
			Message:          "Estimate request was already converted",
		}, nil
	}

	log.Printf("[conversion][usecase] convert success request_id=%s job_id=%s", requestID, created.ID)
	return ConversionOutcome{
		Job:     created,
		JobID:   created.ID,
		Message: "Estimate request converted successfully",
	}, nil
}

func (u *ConversionUseCase) buildJob(ctx context.Context, req entities.EstimateRequest) entities.Job {
	jobNumber := "EST-" + req.NetSuiteJobID
	if req.NetSuiteJobID == "" {
		// No job reference on the request; fall back to the upstream
		// conversion acknowledgement id.
		if ack, err := u.gateway.ConvertToJobEstimate(ctx, req.NetSuiteID); err == nil && ack.Success {
			jobNumber = ack.JobEstimateID
		} else {
			jobNumber = "EST-" + req.NetSuiteID
		}
	}

	jobName := req.JobName
	if jobName == "" {
		jobName = "Estimate Request Job"
	}

	now := u.now().UTC()
	return entities.Job{
		ID:                  uuid.NewString(),
		JobNumber:           jobNumber,
		JobName:             jobName,
		ContactName:         req.RequestedByName,
		EstimateCompletedBy: req.AssignedToName,
		ProjectManager:      req.AssignedToName,
		EstimateDate:        now.Format("2006-01-02"),
		Status:              entities.JobStatusDraft,
		SourceRequestID:     req.NetSuiteID,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}
