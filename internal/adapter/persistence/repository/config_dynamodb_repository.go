package repository

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/domain/entities"
	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultConfigTableName = "app_config"

const (
	paymentConfigKey = "payment_config"
	efiConfigKey     = "efi_config"
	planCatalogKey   = "plan_catalog"
)

type configItem struct {
	ID        string `dynamodbav:"id"`
	Payload   string `dynamodbav:"payload"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ConfigDynamoRepository stores configuration singletons as JSON payloads in
// a single DynamoDB table keyed by record name. A missing or unparseable
// record resolves to the built-in defaults; a first boot needs no seeding.
//
// Table requirements:
//   - PK: id (string)

type ConfigDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IConfigRepository = (*ConfigDynamoRepository)(nil)

func NewConfigDynamoRepository(ddb *dynamodb.Client) *ConfigDynamoRepository {
	return &ConfigDynamoRepository{
		ddb:       ddb,
		tableName: tableNameFromEnv("CONFIG_TABLE", defaultConfigTableName),
	}
}

func (r *ConfigDynamoRepository) LoadPaymentConfig(ctx context.Context) (entities.PaymentConfig, error) {
	cfg := entities.DefaultPaymentConfig()
	if err := r.load(ctx, paymentConfigKey, &cfg); err != nil {
		return entities.PaymentConfig{}, err
	}
	return cfg, nil
}

func (r *ConfigDynamoRepository) SavePaymentConfig(ctx context.Context, cfg entities.PaymentConfig) error {
	return r.save(ctx, paymentConfigKey, cfg)
}

func (r *ConfigDynamoRepository) LoadEfiConfig(ctx context.Context) (entities.EfiConfig, error) {
	cfg := entities.DefaultEfiConfig()
	if err := r.load(ctx, efiConfigKey, &cfg); err != nil {
		return entities.EfiConfig{}, err
	}
	return cfg, nil
}

func (r *ConfigDynamoRepository) SaveEfiConfig(ctx context.Context, cfg entities.EfiConfig) error {
	return r.save(ctx, efiConfigKey, cfg)
}

func (r *ConfigDynamoRepository) LoadPlanCatalog(ctx context.Context) (entities.PlanCatalog, error) {
	catalog := entities.DefaultPlanCatalog()
	if err := r.load(ctx, planCatalogKey, &catalog); err != nil {
		return entities.PlanCatalog{}, err
	}
	return catalog, nil
}

func (r *ConfigDynamoRepository) SavePlanCatalog(ctx context.Context, catalog entities.PlanCatalog) error {
	return r.save(ctx, planCatalogKey, catalog)
}

// load overwrites dest with the stored payload when one exists and parses.
// dest keeps its prior (default) value on a missing or corrupt record.
func (r *ConfigDynamoRepository) load(ctx context.Context, key string, dest any) error {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return err
	}
	if len(out.Item) == 0 {
		return nil
	}

	var it configItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(it.Payload), dest); err != nil {
		log.Printf("[config][repository] corrupt payload id=%s err=%v", key, err)
		return nil
	}
	return nil
}

func (r *ConfigDynamoRepository) save(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}

	av, err := attributevalue.MarshalMap(configItem{
		ID:        key,
		Payload:   string(payload),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
