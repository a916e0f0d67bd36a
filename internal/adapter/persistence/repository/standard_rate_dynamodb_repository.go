package repository

import (
	"context"

	"signestimate/internal/domain/entities"
	"signestimate/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultStandardRatesTableName = "standard_rates"

type standardRateItem struct {
	ID           string  `dynamodbav:"id"`
	Department   string  `dynamodbav:"department"`
	TaskName     string  `dynamodbav:"task_name"`
	StandardRate float64 `dynamodbav:"standard_rate"`
}

// StandardRateDynamoRepository reads the standard-rate reference table.
// Rates are seeded out of band; this service never writes them.
//
// Table requirements:
//   - PK: id (string)

type StandardRateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IStandardRateRepository = (*StandardRateDynamoRepository)(nil)

func NewStandardRateDynamoRepository(ddb *dynamodb.Client) *StandardRateDynamoRepository {
	return &StandardRateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("STANDARD_RATES_TABLE", defaultStandardRatesTableName),
	}
}

func (r *StandardRateDynamoRepository) List(ctx context.Context) ([]entities.StandardRate, error) {
	out := make([]entities.StandardRate, 0)

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
			var it standardRateItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			out = append(out, entities.StandardRate(it))
		}
		if len(page.LastEvaluatedKey) == 0 {
			break
		}
		startKey = page.LastEvaluatedKey
	}
	return out, nil
}
