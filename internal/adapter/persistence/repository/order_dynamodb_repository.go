package repository

import (
	"context"
	"errors"
	"time"

	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/domain/entities"
	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "orders"
	ordersPaymentIDIndex   = "payment_id-index"
)

type orderExtraItem struct {
	Name  string  `dynamodbav:"name"`
	Price float64 `dynamodbav:"price"`
}

type orderItem struct {
	ID           string           `dynamodbav:"id"`
	CustomerName string           `dynamodbav:"customer_name"`
	CustomerCpf  string           `dynamodbav:"customer_cpf"`
	Email        string           `dynamodbav:"email,omitempty"`
	Plan         string           `dynamodbav:"plan"`
	Amount       float64          `dynamodbav:"amount"`
	Status       string           `dynamodbav:"status"`
	Date         string           `dynamodbav:"date"`
	PaymentID    string           `dynamodbav:"payment_id,omitempty"`
	Gateway      string           `dynamodbav:"gateway,omitempty"`
	SearchType   string           `dynamodbav:"search_type,omitempty"`
	Extras       []orderExtraItem `dynamodbav:"selected_extras,omitempty"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: payment_id-index (PK: payment_id)

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: tableNameFromEnv("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	it := toOrderItem(o)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) GetByPaymentID(ctx context.Context, paymentID string) (entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersPaymentIDIndex),
		KeyConditionExpression: aws.String("payment_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: paymentID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Items) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return nil
		}
		return err
	}
	return nil
}

func (r *OrderDynamoRepository) List(ctx context.Context, filter interfaces.OrderFilter) ([]entities.Order, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}

	expr := ""
	values := map[string]types.AttributeValue{}
	names := map[string]string{}
	if filter.Status != "" {
		expr = "#status = :status"
		values[":status"] = &types.AttributeValueMemberS{Value: string(filter.Status)}
		names["#status"] = "status"
	}
	if filter.Plan != "" {
		if expr != "" {
			expr += " AND "
		}
		expr += "#plan = :plan"
		values[":plan"] = &types.AttributeValueMemberS{Value: string(filter.Plan)}
		names["#plan"] = "plan"
	}
	if expr != "" {
		input.FilterExpression = aws.String(expr)
		input.ExpressionAttributeValues = values
		input.ExpressionAttributeNames = names
	}

	orders := make([]entities.Order, 0)
	paginator := dynamodb.NewScanPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it orderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			orders = append(orders, fromOrderItem(it))
		}
	}
	return orders, nil
}

func toOrderItem(o entities.Order) orderItem {
	extras := make([]orderExtraItem, 0, len(o.SelectedExtras))
	for _, e := range o.SelectedExtras {
		extras = append(extras, orderExtraItem{Name: e.Name, Price: e.Price})
	}
	return orderItem{
		ID:           o.ID,
		CustomerName: o.CustomerName,
		CustomerCpf:  o.CustomerCpf,
		Email:        o.Email,
		Plan:         string(o.Plan),
		Amount:       o.Amount,
		Status:       string(o.Status),
		Date:         o.Date.UTC().Format(time.RFC3339Nano),
		PaymentID:    o.PaymentID,
		Gateway:      string(o.Gateway),
		SearchType:   string(o.SearchType),
		Extras:       extras,
	}
}

func fromOrderItem(it orderItem) entities.Order {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	extras := make([]entities.PlanExtra, 0, len(it.Extras))
	for _, e := range it.Extras {
		extras = append(extras, entities.PlanExtra{Name: e.Name, Price: e.Price})
	}
	return entities.Order{
		ID:             it.ID,
		CustomerName:   it.CustomerName,
		CustomerCpf:    it.CustomerCpf,
		Email:          it.Email,
		Plan:           entities.Plan(it.Plan),
		Amount:         it.Amount,
		Status:         entities.OrderStatus(it.Status),
		Date:           dt,
		PaymentID:      it.PaymentID,
		Gateway:        entities.GatewayName(it.Gateway),
		SearchType:     entities.SearchType(it.SearchType),
		SelectedExtras: extras,
	}
}
