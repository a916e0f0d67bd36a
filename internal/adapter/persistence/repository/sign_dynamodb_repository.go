package repository

import (
	"context"
	"sort"
	"time"

	"signestimate/internal/domain/entities"
	"signestimate/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSignsTableName = "signs"

type departmentLineItem struct {
	TaskName string  `dynamodbav:"task_name"`
	Hours    float64 `dynamodbav:"hours"`
	Rate     float64 `dynamodbav:"rate"`
}

type subcontractorLineItem struct {
	Description string  `dynamodbav:"description"`
	Cost        float64 `dynamodbav:"cost"`
}

type materialLineItem struct {
	Name             string  `dynamodbav:"material_name"`
	Type             string  `dynamodbav:"material_type"`
	Quantity         float64 `dynamodbav:"quantity"`
	UnitCost         float64 `dynamodbav:"unit_cost"`
	MarkupPercentage float64 `dynamodbav:"markup_percentage"`
}

type cratingLineItem struct {
	ItemName string  `dynamodbav:"item_name"`
	Quantity int     `dynamodbav:"quantity"`
	UnitCost float64 `dynamodbav:"unit_cost"`
}

type signItem struct {
	ID                     string                  `dynamodbav:"id"`
	JobID                  string                  `dynamodbav:"job_id"`
	SignNumber             int                     `dynamodbav:"sign_number"`
	SignType               string                  `dynamodbav:"sign_type"`
	Description            string                  `dynamodbav:"description"`
	Quantity               int                     `dynamodbav:"quantity"`
	ArtDepartment          []departmentLineItem    `dynamodbav:"art_department"`
	FabricationDepartment  []departmentLineItem    `dynamodbav:"fabrication_department"`
	InstallationDepartment []departmentLineItem    `dynamodbav:"installation_department"`
	Subcontractors         []subcontractorLineItem `dynamodbav:"subcontractors"`
	Materials              []materialLineItem      `dynamodbav:"materials"`
	CratingFees            []cratingLineItem       `dynamodbav:"crating_fees"`
	CreatedAt              string                  `dynamodbav:"created_at"`
}

// SignDynamoRepository persists Sign entities in DynamoDB. Line sections are
// stored as nested lists on the sign item itself; a sign is small enough that
// a single-item document beats child tables here.
//
// Table requirements:
//   - PK: id (string)
//   - signs of a job are found via the job_id attribute (scan + filter;
//     per-job sign counts are in the single digits)

type SignDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISignRepository = (*SignDynamoRepository)(nil)

func NewSignDynamoRepository(ddb *dynamodb.Client) *SignDynamoRepository {
	return &SignDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SIGNS_TABLE", defaultSignsTableName),
	}
}

func (r *SignDynamoRepository) Create(ctx context.Context, s entities.Sign) (entities.Sign, error) {
	it := toSignItem(s)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Sign{}, err
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
		return entities.Sign{}, err
	}
	return s, nil
}

func (r *SignDynamoRepository) GetByID(ctx context.Context, id string) (entities.Sign, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Sign{}, err
	}
	if len(out.Item) == 0 {
		return entities.Sign{}, nil
	}

	var it signItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Sign{}, err
	}
	return fromSignItem(it), nil
}

func (r *SignDynamoRepository) ListByJobID(ctx context.Context, jobID string) ([]entities.Sign, error) {
	out := make([]entities.Sign, 0)

	var startKey map[string]types.AttributeValue
	for {
		page, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("#job_id = :job_id"),
			ExpressionAttributeNames: map[string]string{
				"#job_id": "job_id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":job_id": &types.AttributeValueMemberS{Value: jobID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it signItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			out = append(out, fromSignItem(it))
		}
		if len(page.LastEvaluatedKey) == 0 {
			break
		}
		startKey = page.LastEvaluatedKey
	}

	sort.Slice(out, func(i, j int) bool { return out[i].SignNumber < out[j].SignNumber })
	return out, nil
}

func (r *SignDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *SignDynamoRepository) DeleteByJobID(ctx context.Context, jobID string) error {
	signs, err := r.ListByJobID(ctx, jobID)
	if err != nil {
		return err
	}
	for _, s := range signs {
		if err := r.Delete(ctx, s.ID); err != nil {
			return err
		}
	}
	return nil
}

func toSignItem(s entities.Sign) signItem {
	it := signItem{
		ID:          s.ID,
		JobID:       s.JobID,
		SignNumber:  s.SignNumber,
		SignType:    s.SignType,
		Description: s.Description,
		Quantity:    s.Quantity,
		CreatedAt:   s.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	for _, l := range s.ArtDepartment {
		it.ArtDepartment = append(it.ArtDepartment, departmentLineItem(l))
	}
	for _, l := range s.FabricationDepartment {
		it.FabricationDepartment = append(it.FabricationDepartment, departmentLineItem(l))
	}
	for _, l := range s.InstallationDepartment {
		it.InstallationDepartment = append(it.InstallationDepartment, departmentLineItem(l))
	}
	for _, l := range s.Subcontractors {
		it.Subcontractors = append(it.Subcontractors, subcontractorLineItem(l))
	}
	for _, l := range s.Materials {
		it.Materials = append(it.Materials, materialLineItem(l))
	}
	for _, l := range s.CratingFees {
		it.CratingFees = append(it.CratingFees, cratingLineItem(l))
	}
	return it
}

func fromSignItem(it signItem) entities.Sign {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	s := entities.Sign{
		ID:          it.ID,
		JobID:       it.JobID,
		SignNumber:  it.SignNumber,
		SignType:    it.SignType,
		Description: it.Description,
		Quantity:    it.Quantity,
		CreatedAt:   createdAt,
	}
	for _, l := range it.ArtDepartment {
		s.ArtDepartment = append(s.ArtDepartment, entities.DepartmentLine(l))
	}
	for _, l := range it.FabricationDepartment {
		s.FabricationDepartment = append(s.FabricationDepartment, entities.DepartmentLine(l))
	}
	for _, l := range it.InstallationDepartment {
		s.InstallationDepartment = append(s.InstallationDepartment, entities.DepartmentLine(l))
	}
	for _, l := range it.Subcontractors {
		s.Subcontractors = append(s.Subcontractors, entities.SubcontractorLine(l))
	}
	for _, l := range it.Materials {
		s.Materials = append(s.Materials, entities.MaterialLine(l))
	}
	for _, l := range it.CratingFees {
		s.CratingFees = append(s.CratingFees, entities.CratingLine(l))
	}
	return s
}
