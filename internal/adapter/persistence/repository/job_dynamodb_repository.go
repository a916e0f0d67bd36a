package repository

import (
	"context"
	"errors"
	"time"

	"signestimate/internal/domain/entities"
	"signestimate/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultJobsTableName = "jobs"

type jobItem struct {
	ID                  string `dynamodbav:"id"`
	JobNumber           string `dynamodbav:"job_number"`
	JobName             string `dynamodbav:"job_name"`
	JobAddress          string `dynamodbav:"job_address"`
	ContactName         string `dynamodbav:"contact_name"`
	ContactEmail        string `dynamodbav:"contact_email"`
	ContactPhone        string `dynamodbav:"contact_phone"`
	EstimateCompletedBy string `dynamodbav:"estimate_completed_by"`
	ProjectManager      string `dynamodbav:"project_manager"`
	EstimateDate        string `dynamodbav:"estimate_date"`
	Status              string `dynamodbav:"status"`
	SourceRequestID     string `dynamodbav:"source_request_id,omitempty"`
	CreatedAt           string `dynamodbav:"created_at"`
	UpdatedAt           string `dynamodbav:"updated_at"`
}

// JobDynamoRepository persists Job entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type JobDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IJobRepository = (*JobDynamoRepository)(nil)

func NewJobDynamoRepository(ddb *dynamodb.Client) *JobDynamoRepository {
	return &JobDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("JOBS_TABLE", defaultJobsTableName),
	}
}

func (r *JobDynamoRepository) Create(ctx context.Context, j entities.Job) (entities.Job, error) {
	it := toJobItem(j)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Job{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Job{}, err
	}
	return j, nil
}

func (r *JobDynamoRepository) GetByID(ctx context.Context, id string) (entities.Job, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Job{}, err
	}
	if len(out.Item) == 0 {
		return entities.Job{}, nil
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

func (r *JobDynamoRepository) List(ctx context.Context) ([]entities.Job, error) {
	out := make([]entities.Job, 0)

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
			var it jobItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			out = append(out, fromJobItem(it))
		}
		if len(page.LastEvaluatedKey) == 0 {
			break
		}
		startKey = page.LastEvaluatedKey
	}
	return out, nil
}

func (r *JobDynamoRepository) Update(ctx context.Context, j entities.Job) (entities.Job, error) {
	expr := "SET #job_number = :job_number, #job_name = :job_name, #job_address = :job_address, " +
		"#contact_name = :contact_name, #contact_email = :contact_email, #contact_phone = :contact_phone, " +
		"#estimate_completed_by = :estimate_completed_by, #project_manager = :project_manager, " +
		"#estimate_date = :estimate_date, #status = :status, #updated_at = :updated_at"

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: j.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String(expr),
		ExpressionAttributeNames: map[string]string{
			"#id":                    "id",
			"#job_number":            "job_number",
			"#job_name":              "job_name",
			"#job_address":           "job_address",
			"#contact_name":          "contact_name",
			"#contact_email":         "contact_email",
			"#contact_phone":         "contact_phone",
			"#estimate_completed_by": "estimate_completed_by",
			"#project_manager":       "project_manager",
			"#estimate_date":         "estimate_date",
			"#status":                "status",
			"#updated_at":            "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":job_number":            &types.AttributeValueMemberS{Value: j.JobNumber},
			":job_name":              &types.AttributeValueMemberS{Value: j.JobName},
			":job_address":           &types.AttributeValueMemberS{Value: j.JobAddress},
			":contact_name":          &types.AttributeValueMemberS{Value: j.ContactName},
			":contact_email":         &types.AttributeValueMemberS{Value: j.ContactEmail},
			":contact_phone":         &types.AttributeValueMemberS{Value: j.ContactPhone},
			":estimate_completed_by": &types.AttributeValueMemberS{Value: j.EstimateCompletedBy},
			":project_manager":       &types.AttributeValueMemberS{Value: j.ProjectManager},
			":estimate_date":         &types.AttributeValueMemberS{Value: j.EstimateDate},
			":status":                &types.AttributeValueMemberS{Value: string(j.Status)},
			":updated_at":            &types.AttributeValueMemberS{Value: j.UpdatedAt.UTC().Format(time.RFC3339Nano)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Job{}, nil
		}
		return entities.Job{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Job{}, nil
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

func (r *JobDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toJobItem(j entities.Job) jobItem {
	return jobItem{
		ID:                  j.ID,
		JobNumber:           j.JobNumber,
		JobName:             j.JobName,
		JobAddress:          j.JobAddress,
		ContactName:         j.ContactName,
		ContactEmail:        j.ContactEmail,
		ContactPhone:        j.ContactPhone,
		EstimateCompletedBy: j.EstimateCompletedBy,
		ProjectManager:      j.ProjectManager,
		EstimateDate:        j.EstimateDate,
		Status:              string(j.Status),
		SourceRequestID:     j.SourceRequestID,
		CreatedAt:           j.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:           j.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromJobItem(it jobItem) entities.Job {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Job{
		ID:                  it.ID,
		JobNumber:           it.JobNumber,
		JobName:             it.JobName,
		JobAddress:          it.JobAddress,
		ContactName:         it.ContactName,
		ContactEmail:        it.ContactEmail,
		ContactPhone:        it.ContactPhone,
		EstimateCompletedBy: it.EstimateCompletedBy,
		ProjectManager:      it.ProjectManager,
		EstimateDate:        it.EstimateDate,
		Status:              entities.JobStatus(it.Status),
		SourceRequestID:     it.SourceRequestID,
		CreatedAt:           createdAt,
		UpdatedAt:           updatedAt,
	}
}
