package repository

import (
	"context"
	"strings"
	"time"

	"mecanica_jobs/internal/domain/entities"
	"mecanica_jobs/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

type catalogServiceItem struct {
	ID            string `dynamodbav:"id"`
	Name          string `dynamodbav:"name"`
	Description   string `dynamodbav:"description,omitempty"`
	DurationHours string `dynamodbav:"duration_hours"`
	FixedPrice    string `dynamodbav:"fixed_price,omitempty"`
	PricePerHour  string `dynamodbav:"price_per_hour"`
	Active        bool   `dynamodbav:"active"`
	CreatedBy     string `dynamodbav:"created_by,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
}

type catalogPartItem struct {
	ID            string `dynamodbav:"id"`
	PartNumber    string `dynamodbav:"part_number,omitempty"`
	Name          string `dynamodbav:"name"`
	CategoryID    string `dynamodbav:"category_id,omitempty"`
	UnitPrice     string `dynamodbav:"unit_price"`
	StockQuantity int    `dynamodbav:"stock_quantity"`
	Active        bool   `dynamodbav:"active"`
	CreatedBy     string `dynamodbav:"created_by,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// CatalogDynamoRepository persists the service and part price lists.
//
// Table requirements:
//   - services table PK: id (string)
//   - parts table PK: id (string); stock_quantity is a number attribute
type CatalogDynamoRepository struct {
	ddb           *dynamodb.Client
	servicesTable string
	partsTable    string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client, servicesTable, partsTable string) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{ddb: ddb, servicesTable: servicesTable, partsTable: partsTable}
}

func (r *CatalogDynamoRepository) ListActiveServices(ctx context.Context) ([]entities.CatalogService, error) {
	var out []entities.CatalogService
	err := r.scanActive(ctx, r.servicesTable, func(av map[string]types.AttributeValue) error {
		var it catalogServiceItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return err
		}
		out = append(out, fromCatalogServiceItem(it))
		return nil
	})
	return out, err
}

func (r *CatalogDynamoRepository) ListActiveParts(ctx context.Context) ([]entities.CatalogPart, error) {
	var out []entities.CatalogPart
	err := r.scanActive(ctx, r.partsTable, func(av map[string]types.AttributeValue) error {
		var it catalogPartItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return err
		}
		out = append(out, fromCatalogPartItem(it))
		return nil
	})
	return out, err
}

func (r *CatalogDynamoRepository) GetServiceByID(ctx context.Context, id string) (entities.CatalogService, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.servicesTable),
		Key:       stringKey(id),
	})
	if err != nil {
		return entities.CatalogService{}, err
	}
	if len(out.Item) == 0 {
		return entities.CatalogService{}, nil
	}
	var it catalogServiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CatalogService{}, err
	}
	return fromCatalogServiceItem(it), nil
}

func (r *CatalogDynamoRepository) GetPartByID(ctx context.Context, id string) (entities.CatalogPart, error) {
	return getPart(ctx, r.ddb, r.partsTable, id)
}

func (r *CatalogDynamoRepository) AddService(ctx context.Context, draft entities.CatalogService, actorID string) (entities.CatalogService, error) {
	if draft.ID == "" {
		draft.ID = uuid.NewString()
	}
	if draft.CreatedAt.IsZero() {
		draft.CreatedAt = time.Now().UTC()
	}
	draft.CreatedBy = actorID
	draft.Name = strings.TrimSpace(draft.Name)

	av, err := attributevalue.MarshalMap(toCatalogServiceItem(draft))
	if err != nil {
		return entities.CatalogService{}, err
	}
	if err := r.putNew(ctx, r.servicesTable, av); err != nil {
		return entities.CatalogService{}, err
	}
	return draft, nil
}

func (r *CatalogDynamoRepository) AddPart(ctx context.Context, draft entities.CatalogPart, actorID string) (entities.CatalogPart, error) {
	if draft.ID == "" {
		draft.ID = uuid.NewString()
	}
	if draft.CreatedAt.IsZero() {
		draft.CreatedAt = time.Now().UTC()
	}
	draft.CreatedBy = actorID
	draft.Name = strings.TrimSpace(draft.Name)

	av, err := attributevalue.MarshalMap(toCatalogPartItem(draft))
	if err != nil {
		return entities.CatalogPart{}, err
	}
	if err := r.putNew(ctx, r.partsTable, av); err != nil {
		return entities.CatalogPart{}, err
	}
	return draft, nil
}

func (r *CatalogDynamoRepository) putNew(ctx context.Context, table string, av map[string]types.AttributeValue) error {
	_, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func (r *CatalogDynamoRepository) scanActive(ctx context.Context, table string, each func(map[string]types.AttributeValue) error) error {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:                aws.String(table),
		FilterExpression:         aws.String("#active = :active"),
		ExpressionAttributeNames: map[string]string{"#active": "active"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":active": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return err
		}
		for _, av := range page.Items {
			if err := each(av); err != nil {
				return err
			}
		}
	}
	return nil
}

func getPart(ctx context.Context, ddb *dynamodb.Client, table, id string) (entities.CatalogPart, error) {
	out, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(table),
		Key:            stringKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CatalogPart{}, err
	}
	if len(out.Item) == 0 {
		return entities.CatalogPart{}, nil
	}
	var it catalogPartItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CatalogPart{}, err
	}
	return fromCatalogPartItem(it), nil
}

func toCatalogServiceItem(s entities.CatalogService) catalogServiceItem {
	it := catalogServiceItem{
		ID:            s.ID,
		Name:          s.Name,
		Description:   s.Description,
		DurationHours: floatToString(s.DurationHours),
		PricePerHour:  floatToString(s.PricePerHour),
		Active:        s.Active,
		CreatedBy:     s.CreatedBy,
		CreatedAt:     formatTime(s.CreatedAt),
	}
	if s.FixedPrice != nil {
		it.FixedPrice = floatToString(*s.FixedPrice)
	}
	return it
}

func fromCatalogServiceItem(it catalogServiceItem) entities.CatalogService {
	s := entities.CatalogService{
		ID:            it.ID,
		Name:          it.Name,
		Description:   it.Description,
		DurationHours: parseFloat(it.DurationHours),
		PricePerHour:  parseFloat(it.PricePerHour),
		Active:        it.Active,
		CreatedBy:     it.CreatedBy,
		CreatedAt:     parseTime(it.CreatedAt),
	}
	if it.FixedPrice != "" {
		fp := parseFloat(it.FixedPrice)
		s.FixedPrice = &fp
	}
	return s
}

func toCatalogPartItem(p entities.CatalogPart) catalogPartItem {
	return catalogPartItem{
		ID:            p.ID,
		PartNumber:    p.PartNumber,
		Name:          p.Name,
		CategoryID:    p.CategoryID,
		UnitPrice:     floatToString(p.UnitPrice),
		StockQuantity: p.StockQuantity,
		Active:        p.Active,
		CreatedBy:     p.CreatedBy,
		CreatedAt:     formatTime(p.CreatedAt),
	}
}

func fromCatalogPartItem(it catalogPartItem) entities.CatalogPart {
	return entities.CatalogPart{
		ID:            it.ID,
		PartNumber:    it.PartNumber,
		Name:          it.Name,
		CategoryID:    it.CategoryID,
		UnitPrice:     parseFloat(it.UnitPrice),
		StockQuantity: it.StockQuantity,
		Active:        it.Active,
		CreatedBy:     it.CreatedBy,
		CreatedAt:     parseTime(it.CreatedAt),
	}
}
