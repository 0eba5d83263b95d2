package repository

import (
	"context"
	"time"

	"mecanica_jobs/internal/domain/entities"
	"mecanica_jobs/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type quoteItem struct {
	ID              string `dynamodbav:"id"`
	JobID           string `dynamodbav:"job_id"`
	LaborSubtotal   string `dynamodbav:"labor_subtotal"`
	PartsSubtotal   string `dynamodbav:"parts_subtotal"`
	DiscountPercent string `dynamodbav:"discount_percent"`
	Price           string `dynamodbav:"price"`
	Status          string `dynamodbav:"status"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The job id is used as PK to guarantee one quote per job, so every
// "by job id" operation resolves by key.
type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client, tableName string) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByJobID(ctx context.Context, jobID string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey(jobID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) UpdateStatusByJobID(ctx context.Context, jobID string, status entities.QuoteStatus) (entities.Quote, error) {
	return r.update(ctx, jobID, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *QuoteDynamoRepository) UpdatePricingByJobID(ctx context.Context, jobID string, q entities.Quote) (entities.Quote, error) {
	return r.update(ctx, jobID, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #labor = :labor, #parts = :parts, #discount = :discount, #price = :price, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":labor":      &types.AttributeValueMemberS{Value: floatToString(q.LaborSubtotal)},
			":parts":      &types.AttributeValueMemberS{Value: floatToString(q.PartsSubtotal)},
			":discount":   &types.AttributeValueMemberS{Value: floatToString(q.DiscountPercent)},
			":price":      &types.AttributeValueMemberS{Value: floatToString(q.Price)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#labor":      "labor_subtotal",
			"#parts":      "parts_subtotal",
			"#discount":   "discount_percent",
			"#price":      "price",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *QuoteDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Quote, error) {
	now := formatTime(time.Now())
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       stringKey(id),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}
	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	return quoteItem{
		ID:              q.ID,
		JobID:           q.JobID,
		LaborSubtotal:   floatToString(q.LaborSubtotal),
		PartsSubtotal:   floatToString(q.PartsSubtotal),
		DiscountPercent: floatToString(q.DiscountPercent),
		Price:           floatToString(q.Price),
		Status:          string(q.Status),
		CreatedAt:       formatTime(q.CreatedAt),
		UpdatedAt:       formatTime(q.UpdatedAt),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	return entities.Quote{
		ID:              it.ID,
		JobID:           it.JobID,
		LaborSubtotal:   parseFloat(it.LaborSubtotal),
		PartsSubtotal:   parseFloat(it.PartsSubtotal),
		DiscountPercent: parseFloat(it.DiscountPercent),
		Price:           parseFloat(it.Price),
		Status:          entities.QuoteStatus(it.Status),
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}
