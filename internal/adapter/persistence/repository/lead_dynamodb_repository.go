package repository

import (
	"context"
	"time"

	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/domain/entities"
	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultLeadsTableName = "leads"

type leadItem struct {
	ID         string `dynamodbav:"id"`
	Name       string `dynamodbav:"name"`
	Email      string `dynamodbav:"email,omitempty"`
	Phone      string `dynamodbav:"phone,omitempty"`
	Date       string `dynamodbav:"date"`
	Origin     string `dynamodbav:"origin,omitempty"`
	DeviceInfo string `dynamodbav:"device_info,omitempty"`
	SearchType string `dynamodbav:"search_type,omitempty"`
}

// LeadDynamoRepository persists Lead entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type LeadDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILeadRepository = (*LeadDynamoRepository)(nil)

func NewLeadDynamoRepository(ddb *dynamodb.Client) *LeadDynamoRepository {
	return &LeadDynamoRepository{
		ddb:       ddb,
		tableName: tableNameFromEnv("LEADS_TABLE", defaultLeadsTableName),
	}
}

func (r *LeadDynamoRepository) Create(ctx context.Context, l entities.Lead) error {
	av, err := attributevalue.MarshalMap(toLeadItem(l))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func (r *LeadDynamoRepository) List(ctx context.Context) ([]entities.Lead, error) {
	leads := make([]entities.Lead, 0)
	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it leadItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			leads = append(leads, fromLeadItem(it))
		}
	}
	return leads, nil
}

func toLeadItem(l entities.Lead) leadItem {
	return leadItem{
		ID:         l.ID,
		Name:       l.Name,
		Email:      l.Email,
		Phone:      l.Phone,
		Date:       l.Date.UTC().Format(time.RFC3339Nano),
		Origin:     l.Origin,
		DeviceInfo: l.DeviceInfo,
		SearchType: string(l.SearchType),
	}
}

func fromLeadItem(it leadItem) entities.Lead {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	return entities.Lead{
		ID:         it.ID,
		Name:       it.Name,
		Email:      it.Email,
		Phone:      it.Phone,
		Date:       dt,
		Origin:     it.Origin,
		DeviceInfo: it.DeviceInfo,
		SearchType: entities.SearchType(it.SearchType),
	}
}
