package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"signestimate/internal/domain/entities"
	"signestimate/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEstimateRequestsTableName = "estimate_requests"

type estimateRequestItem struct {
	NetSuiteID            string `dynamodbav:"netsuite_id"`
	NetSuiteJobID         string `dynamodbav:"netsuite_job_id"`
	JobName               string `dynamodbav:"job_name"`
	AssignedToID          string `dynamodbav:"assigned_to_id"`
	AssignedToName        string `dynamodbav:"assigned_to_name"`
	RequestedByID         string `dynamodbav:"requested_by_id"`
	RequestedByName       string `dynamodbav:"requested_by_name"`
	BidDueDate            string `dynamodbav:"bid_due_date"`
	Priority              string `dynamodbav:"priority"`
	Status                string `dynamodbav:"status"`
	EstimateDueDate       string `dynamodbav:"estimate_due_date"`
	EstimateCompletedDate string `dynamodbav:"estimate_completed_date,omitempty"`
	DateSubmitted         string `dynamodbav:"date_submitted"`
	EstimatorNote         string `dynamodbav:"estimator_note"`
	ConvertedJobID        string `dynamodbav:"converted_job_id,omitempty"`
	ConvertedAt           string `dynamodbav:"converted_at,omitempty"`
	UpdatedAt             string `dynamodbav:"updated_at"`
}

// EstimateRequestDynamoRepository persists synced NetSuite estimate requests
// in DynamoDB.
//
// Table requirements:
//   - PK: netsuite_id (string)
//
// The NetSuite record id is the PK so repeated syncs can never duplicate a
// request; the conversion columns are written exclusively by MarkConverted.

type EstimateRequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateRequestRepository = (*EstimateRequestDynamoRepository)(nil)

func NewEstimateRequestDynamoRepository(ddb *dynamodb.Client) *EstimateRequestDynamoRepository {
	return &EstimateRequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATE_REQUESTS_TABLE", defaultEstimateRequestsTableName),
	}
}

// UpsertBatch writes each record with an UpdateItem keyed by netsuite_id:
// existing rows have their sync-owned fields overwritten, absent rows are
// created. converted_job_id and converted_at never appear in the update
// expression, so a re-synced row keeps its conversion state.
func (r *EstimateRequestDynamoRepository) UpsertBatch(ctx context.Context, requests []entities.EstimateRequest) (int, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	count := 0
	for _, req := range requests {
		if req.NetSuiteID == "" {
			continue
		}

		expr := "SET #netsuite_job_id = :netsuite_job_id, #job_name = :job_name, " +
			"#assigned_to_id = :assigned_to_id, #assigned_to_name = :assigned_to_name, " +
			"#requested_by_id = :requested_by_id, #requested_by_name = :requested_by_name, " +
			"#bid_due_date = :bid_due_date, #priority = :priority, #status = :status, " +
			"#estimate_due_date = :estimate_due_date, #estimate_completed_date = :estimate_completed_date, " +
			"#date_submitted = :date_submitted, #estimator_note = :estimator_note, " +
			"#updated_at = :updated_at"

		_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"netsuite_id": &types.AttributeValueMemberS{Value: req.NetSuiteID},
			},
			UpdateExpression: aws.String(expr),
			ExpressionAttributeNames: map[string]string{
				"#netsuite_job_id":         "netsuite_job_id",
				"#job_name":                "job_name",
				"#assigned_to_id":          "assigned_to_id",
				"#assigned_to_name":        "assigned_to_name",
				"#requested_by_id":         "requested_by_id",
				"#requested_by_name":       "requested_by_name",
				"#bid_due_date":            "bid_due_date",
				"#priority":                "priority",
				"#status":                  "status",
				"#estimate_due_date":       "estimate_due_date",
				"#estimate_completed_date": "estimate_completed_date",
				"#date_submitted":          "date_submitted",
				"#estimator_note":          "estimator_note",
				"#updated_at":              "updated_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":netsuite_job_id":         &types.AttributeValueMemberS{Value: req.NetSuiteJobID},
				":job_name":                &types.AttributeValueMemberS{Value: req.JobName},
				":assigned_to_id":          &types.AttributeValueMemberS{Value: req.AssignedToID},
				":assigned_to_name":        &types.AttributeValueMemberS{Value: req.AssignedToName},
				":requested_by_id":         &types.AttributeValueMemberS{Value: req.RequestedByID},
				":requested_by_name":       &types.AttributeValueMemberS{Value: req.RequestedByName},
				":bid_due_date":            &types.AttributeValueMemberS{Value: req.BidDueDate},
				":priority":                &types.AttributeValueMemberS{Value: string(req.Priority)},
				":status":                  &types.AttributeValueMemberS{Value: string(req.Status)},
				":estimate_due_date":       &types.AttributeValueMemberS{Value: req.EstimateDueDate},
				":estimate_completed_date": &types.AttributeValueMemberS{Value: req.EstimateCompletedDate},
				":date_submitted":          &types.AttributeValueMemberS{Value: req.DateSubmitted},
				":estimator_note":          &types.AttributeValueMemberS{Value: req.EstimatorNote},
				":updated_at":              &types.AttributeValueMemberS{Value: now},
			},
		})
		if err != nil {
			log.Printf("[estimate_request][repository] upsert failed netsuite_id=%s err=%v", req.NetSuiteID, err)
			return count, err
		}
		count++
	}
	return count, nil
}

func (r *EstimateRequestDynamoRepository) List(ctx context.Context) ([]entities.EstimateRequest, error) {
	out := make([]entities.EstimateRequest, 0)

	var startKey map[string]types.AttributeValue
	for {
		page, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it estimateRequestItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			out = append(out, fromEstimateRequestItem(it))
		}
		if len(page.LastEvaluatedKey) == 0 {
			break
		}
		startKey = page.LastEvaluatedKey
	}
	return out, nil
}

func (r *EstimateRequestDynamoRepository) GetByID(ctx context.Context, netsuiteID string) (entities.EstimateRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"netsuite_id": &types.AttributeValueMemberS{Value: netsuiteID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.EstimateRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.EstimateRequest{}, nil
	}

	var it estimateRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.EstimateRequest{}, err
	}
	return fromEstimateRequestItem(it), nil
}

// MarkConverted claims a request for a job estimate. The condition makes the
// claim single-shot: the first caller wins, later callers get (false, nil).
func (r *EstimateRequestDynamoRepository) MarkConverted(ctx context.Context, netsuiteID, jobID string, at time.Time) (bool, error) {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"netsuite_id": &types.AttributeValueMemberS{Value: netsuiteID},
		},
		ConditionExpression: aws.String("attribute_exists(#netsuite_id) AND attribute_not_exists(#converted_job_id)"),
		UpdateExpression:    aws.String("SET #converted_job_id = :job_id, #converted_at = :at, #updated_at = :at"),
		ExpressionAttributeNames: map[string]string{
			"#netsuite_id":      "netsuite_id",
			"#converted_job_id": "converted_job_id",
			"#converted_at":     "converted_at",
			"#updated_at":       "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":job_id": &types.AttributeValueMemberS{Value: jobID},
			":at":     &types.AttributeValueMemberS{Value: at.UTC().Format(time.RFC3339Nano)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func fromEstimateRequestItem(it estimateRequestItem) entities.EstimateRequest {
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	var convertedAt *time.Time
	if it.ConvertedAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.ConvertedAt); err == nil {
			convertedAt = &t
		}
	}

	return entities.EstimateRequest{
		NetSuiteID:            it.NetSuiteID,
		NetSuiteJobID:         it.NetSuiteJobID,
		JobName:               it.JobName,
		AssignedToID:          it.AssignedToID,
		AssignedToName:        it.AssignedToName,
		RequestedByID:         it.RequestedByID,
		RequestedByName:       it.RequestedByName,
		BidDueDate:            it.BidDueDate,
		Priority:              entities.Priority(it.Priority),
		Status:                entities.RequestStatus(it.Status),
		EstimateDueDate:       it.EstimateDueDate,
		EstimateCompletedDate: it.EstimateCompletedDate,
		DateSubmitted:         it.DateSubmitted,
		EstimatorNote:         it.EstimatorNote,
		ConvertedJobID:        it.ConvertedJobID,
		ConvertedAt:           convertedAt,
		UpdatedAt:             updatedAt,
	}
}
