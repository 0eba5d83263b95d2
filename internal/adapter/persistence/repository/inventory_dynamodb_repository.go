package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"mecanica_jobs/internal/domain/entities"
	"mecanica_jobs/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
)

const (
	partNumberIndex      = "part_number-index"
	reasonJobConsumption = "job_consumption"
)

type stockMovementItem struct {
	ID        string            `dynamodbav:"id"`
	PartID    string            `dynamodbav:"part_id"`
	Delta     int               `dynamodbav:"delta"`
	Reason    string            `dynamodbav:"reason"`
	JobID     string            `dynamodbav:"job_id,omitempty"`
	ActorID   string            `dynamodbav:"actor_id"`
	Meta      map[string]string `dynamodbav:"meta,omitempty"`
	CreatedAt string            `dynamodbav:"created_at"`
}

// InventoryDynamoRepository moves stock counters on the parts table and keeps a
// movement log.
//
// Table requirements:
//   - parts table: GSI part_number-index on part_number (string)
//   - stock movements table PK: id (string)
//
// The counter change and its movement record are written in one transaction.
type InventoryDynamoRepository struct {
	ddb            *dynamodb.Client
	partsTable     string
	movementsTable string
}

var _ interfaces.IInventoryAdjuster = (*InventoryDynamoRepository)(nil)

func NewInventoryDynamoRepository(ddb *dynamodb.Client, partsTable, movementsTable string) *InventoryDynamoRepository {
	return &InventoryDynamoRepository{ddb: ddb, partsTable: partsTable, movementsTable: movementsTable}
}

// DeductStockForJob takes each part out of stock in its own transaction. One
// failing part does not stop the others.
func (r *InventoryDynamoRepository) DeductStockForJob(ctx context.Context, parts []entities.StockDeduction, jobID, actorID string) error {
	var result *multierror.Error
	for _, p := range parts {
		if p.Quantity <= 0 {
			continue
		}
		err := r.adjust(ctx, p.PartID, -p.Quantity, reasonJobConsumption, jobID, actorID, nil)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("part %s: %w", p.PartID, err))
		}
	}
	return result.ErrorOrNil()
}

func (r *InventoryDynamoRepository) AdjustStock(ctx context.Context, partID string, delta int, reason, actorID string, meta map[string]string) error {
	return r.adjust(ctx, partID, delta, reason, meta["job_id"], actorID, meta)
}

func (r *InventoryDynamoRepository) LookupPartByNumber(ctx context.Context, number string) (entities.CatalogPart, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return entities.CatalogPart{}, nil
	}
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:                aws.String(r.partsTable),
		IndexName:                aws.String(partNumberIndex),
		KeyConditionExpression:   aws.String("#part_number = :part_number"),
		ExpressionAttributeNames: map[string]string{"#part_number": "part_number"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":part_number": &types.AttributeValueMemberS{Value: number},
		},
	})
	if err != nil {
		return entities.CatalogPart{}, err
	}
	for _, av := range out.Items {
		var it catalogPartItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return entities.CatalogPart{}, err
		}
		if it.Active {
			return fromCatalogPartItem(it), nil
		}
	}
	return entities.CatalogPart{}, nil
}

func (r *InventoryDynamoRepository) adjust(ctx context.Context, partID string, delta int, reason, jobID, actorID string, meta map[string]string) error {
	if strings.TrimSpace(partID) == "" {
		return errors.New("part id is required")
	}
	mv, err := attributevalue.MarshalMap(toStockMovementItem(entities.StockMovement{
		ID:        uuid.NewString(),
		PartID:    partID,
		Delta:     delta,
		Reason:    reason,
		JobID:     jobID,
		ActorID:   actorID,
		Meta:      meta,
		CreatedAt: time.Now(),
	}))
	if err != nil {
		return err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName:           aws.String(r.partsTable),
					Key:                 stringKey(partID),
					ConditionExpression: aws.String("attribute_exists(#id)"),
					UpdateExpression:    aws.String("ADD #stock :delta"),
					ExpressionAttributeNames: map[string]string{
						"#id":    "id",
						"#stock": "stock_quantity",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":delta": &types.AttributeValueMemberN{Value: strconv.Itoa(delta)},
					},
				},
			},
			{
				Put: &types.Put{
					TableName: aws.String(r.movementsTable),
					Item:      mv,
				},
			},
		},
	})
	return err
}

func toStockMovementItem(m entities.StockMovement) stockMovementItem {
	return stockMovementItem{
		ID:        m.ID,
		PartID:    m.PartID,
		Delta:     m.Delta,
		Reason:    m.Reason,
		JobID:     m.JobID,
		ActorID:   m.ActorID,
		Meta:      m.Meta,
		CreatedAt: formatTime(m.CreatedAt),
	}
}
