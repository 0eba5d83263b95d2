package repository

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"mecanica_jobs/internal/domain/entities"
	"mecanica_jobs/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

type partCategoryItem struct {
	ID   string `dynamodbav:"id"`
	Name string `dynamodbav:"name"`
}

type jobItem struct {
	ID                   string             `dynamodbav:"id"`
	JobNumber            string             `dynamodbav:"job_number"`
	Status               string             `dynamodbav:"status"`
	Priority             string             `dynamodbav:"priority"`
	ServiceType          string             `dynamodbav:"service_type"`
	Description          string             `dynamodbav:"description,omitempty"`
	CreatedAt            string             `dynamodbav:"created_at"`
	UpdatedAt            string             `dynamodbav:"updated_at"`
	AssignedAt           string             `dynamodbav:"assigned_at,omitempty"`
	CompletedAt          string             `dynamodbav:"completed_at,omitempty"`
	ScheduledDate        string             `dynamodbav:"scheduled_date,omitempty"`
	EstimatedDuration    *int               `dynamodbav:"estimated_duration,omitempty"`
	VehicleID            string             `dynamodbav:"vehicle_id"`
	VehiclePlate         string             `dynamodbav:"vehicle_plate,omitempty"`
	CustomerID           string             `dynamodbav:"customer_id,omitempty"`
	CustomerName         string             `dynamodbav:"customer_name,omitempty"`
	AssignedMechanicID   string             `dynamodbav:"assigned_mechanic_id,omitempty"`
	AssignedMechanicName string             `dynamodbav:"assigned_mechanic_name,omitempty"`
	CreatedBy            string             `dynamodbav:"created_by"`
	UpdatedBy            string             `dynamodbav:"updated_by,omitempty"`
	WorkOrderData        string             `dynamodbav:"work_order_data,omitempty"`
	WorkOrderStage       int                `dynamodbav:"work_order_stage"`
	PartsNeeded          []partCategoryItem `dynamodbav:"parts_needed,omitempty"`
	PartsNeededNotes     string             `dynamodbav:"parts_needed_notes,omitempty"`
	CompletionNotes      string             `dynamodbav:"completion_notes,omitempty"`
	Version              int64              `dynamodbav:"version"`
}

// JobDynamoRepository persists Job entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// version is a number attribute. Every update is conditioned on it and bumps it,
// so two writers that loaded the same version cannot both succeed.
// The work order document is stored as a JSON string.
type JobDynamoRepository struct {
	ddb          *dynamodb.Client
	tableName    string
	pollInterval time.Duration
	log          *zap.Logger
}

var _ interfaces.IJobRepository = (*JobDynamoRepository)(nil)

func NewJobDynamoRepository(ddb *dynamodb.Client, tableName string, pollInterval time.Duration, log *zap.Logger) *JobDynamoRepository {
	return &JobDynamoRepository{
		ddb:          ddb,
		tableName:    tableName,
		pollInterval: pollInterval,
		log:          log,
	}
}

func (r *JobDynamoRepository) Create(ctx context.Context, job entities.Job, actorID string) (entities.Job, error) {
	it, err := toJobItem(job)
	if err != nil {
		return entities.Job{}, err
	}
	it.UpdatedBy = actorID
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
	return job, nil
}

func (r *JobDynamoRepository) GetByID(ctx context.Context, id string) (entities.Job, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Job{}, err
	}
	if len(out.Item) == 0 {
		return entities.Job{}, nil
	}
	return unmarshalJob(out.Item)
}

func (r *JobDynamoRepository) List(ctx context.Context) ([]entities.Job, error) {
	var jobs []entities.Job
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, av := range page.Items {
			job, err := unmarshalJob(av)
			if err != nil {
				return nil, err
			}
			jobs = append(jobs, job)
		}
	}
	return jobs, nil
}

// Update writes upd when the stored version equals expectedVersion. A failed
// condition is told apart by re-reading: a missing job yields a zero value,
// anything else is a version conflict.
func (r *JobDynamoRepository) Update(ctx context.Context, id string, upd entities.JobUpdate, expectedVersion int64, actorID string) (entities.Job, error) {
	expr, values, names, err := buildJobUpdate(upd, expectedVersion, time.Now(), actorID)
	if err != nil {
		return entities.Job{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       stringKey(id),
		ConditionExpression:       aws.String("attribute_exists(#id) AND #version = :expected_version"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if !isConditionFailed(err) {
			return entities.Job{}, err
		}
		current, gerr := r.GetByID(ctx, id)
		if gerr != nil {
			return entities.Job{}, gerr
		}
		if current.ID == "" {
			return entities.Job{}, nil
		}
		return entities.Job{}, interfaces.ErrVersionConflict
	}
	if len(out.Attributes) == 0 {
		return entities.Job{}, nil
	}
	return unmarshalJob(out.Attributes)
}

// Subscribe polls the job and reports each version it has not reported yet,
// starting with the current one.
func (r *JobDynamoRepository) Subscribe(ctx context.Context, id string, onChange func(entities.Job)) (func(), error) {
	first, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if first.ID != "" {
		onChange(first)
	}

	ctx, cancel := context.WithCancel(ctx)
	go func() {
		ticker := time.NewTicker(r.pollInterval)
		defer ticker.Stop()
		lastVersion := first.Version
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				job, err := r.GetByID(ctx, id)
				if err != nil {
					if ctx.Err() == nil {
						r.log.Warn("[job][repository] watch poll failed", zap.String("job_id", id), zap.Error(err))
					}
					continue
				}
				if job.ID == "" || job.Version == lastVersion {
					continue
				}
				lastVersion = job.Version
				onChange(job)
			}
		}
	}()
	return cancel, nil
}

func buildJobUpdate(upd entities.JobUpdate, expectedVersion int64, now time.Time, actorID string) (string, map[string]types.AttributeValue, map[string]string, error) {
	sets := []string{"#updated_at = :updated_at", "#updated_by = :updated_by", "#version = #version + :one"}
	values := map[string]types.AttributeValue{
		":updated_at":       &types.AttributeValueMemberS{Value: formatTime(now)},
		":updated_by":       &types.AttributeValueMemberS{Value: actorID},
		":one":              &types.AttributeValueMemberN{Value: "1"},
		":expected_version": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
	}
	names := map[string]string{
		"#id":         "id",
		"#updated_at": "updated_at",
		"#updated_by": "updated_by",
		"#version":    "version",
	}
	set := func(attr string, v types.AttributeValue) {
		sets = append(sets, "#"+attr+" = :"+attr)
		names["#"+attr] = attr
		values[":"+attr] = v
	}
	str := func(s string) types.AttributeValue { return &types.AttributeValueMemberS{Value: s} }

	if upd.Status != nil {
		set("status", str(string(*upd.Status)))
	}
	if upd.AssignedMechanicID != nil {
		set("assigned_mechanic_id", str(*upd.AssignedMechanicID))
	}
	if upd.AssignedMechanicName != nil {
		set("assigned_mechanic_name", str(*upd.AssignedMechanicName))
	}
	if upd.AssignedAt != nil {
		set("assigned_at", str(formatTime(*upd.AssignedAt)))
	}
	if upd.CompletedAt != nil {
		set("completed_at", str(formatTime(*upd.CompletedAt)))
	}
	if upd.WorkOrderData != nil {
		raw, err := json.Marshal(upd.WorkOrderData)
		if err != nil {
			return "", nil, nil, err
		}
		set("work_order_data", str(string(raw)))
	}
	if upd.WorkOrderStage != nil {
		set("work_order_stage", &types.AttributeValueMemberN{Value: strconv.Itoa(*upd.WorkOrderStage)})
	}
	if upd.PartsNeeded != nil {
		av, err := attributevalue.Marshal(toPartCategoryItems(upd.PartsNeeded))
		if err != nil {
			return "", nil, nil, err
		}
		set("parts_needed", av)
	}
	if upd.PartsNeededNotes != nil {
		set("parts_needed_notes", str(*upd.PartsNeededNotes))
	}
	if upd.CompletionNotes != nil {
		set("completion_notes", str(*upd.CompletionNotes))
	}

	expr := "SET " + sets[0]
	for _, s := range sets[1:] {
		expr += ", " + s
	}
	return expr, values, names, nil
}

func unmarshalJob(av map[string]types.AttributeValue) (entities.Job, error) {
	var it jobItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it)
}

func toJobItem(j entities.Job) (jobItem, error) {
	it := jobItem{
		ID:                   j.ID,
		JobNumber:            j.JobNumber,
		Status:               string(j.Status),
		Priority:             string(j.Priority),
		ServiceType:          j.ServiceType,
		Description:          j.Description,
		CreatedAt:            formatTime(j.CreatedAt),
		UpdatedAt:            formatTime(j.UpdatedAt),
		AssignedAt:           formatTimePtr(j.AssignedAt),
		CompletedAt:          formatTimePtr(j.CompletedAt),
		ScheduledDate:        formatTimePtr(j.ScheduledDate),
		EstimatedDuration:    j.EstimatedDuration,
		VehicleID:            j.VehicleID,
		VehiclePlate:         j.VehiclePlate,
		CustomerID:           j.CustomerID,
		CustomerName:         j.CustomerName,
		AssignedMechanicID:   j.AssignedMechanicID,
		AssignedMechanicName: j.AssignedMechanicName,
		CreatedBy:            j.CreatedBy,
		WorkOrderStage:       j.WorkOrderStage,
		PartsNeeded:          toPartCategoryItems(j.PartsNeeded),
		PartsNeededNotes:     j.PartsNeededNotes,
		CompletionNotes:      j.CompletionNotes,
		Version:              j.Version,
	}
	if j.WorkOrderData != nil {
		raw, err := json.Marshal(j.WorkOrderData)
		if err != nil {
			return jobItem{}, err
		}
		it.WorkOrderData = string(raw)
	}
	return it, nil
}

func fromJobItem(it jobItem) (entities.Job, error) {
	j := entities.Job{
		ID:                   it.ID,
		JobNumber:            it.JobNumber,
		Status:               entities.JobStatus(it.Status),
		Priority:             entities.JobPriority(it.Priority),
		ServiceType:          it.ServiceType,
		Description:          it.Description,
		CreatedAt:            parseTime(it.CreatedAt),
		UpdatedAt:            parseTime(it.UpdatedAt),
		AssignedAt:           parseTimePtr(it.AssignedAt),
		CompletedAt:          parseTimePtr(it.CompletedAt),
		ScheduledDate:        parseTimePtr(it.ScheduledDate),
		EstimatedDuration:    it.EstimatedDuration,
		VehicleID:            it.VehicleID,
		VehiclePlate:         it.VehiclePlate,
		CustomerID:           it.CustomerID,
		CustomerName:         it.CustomerName,
		AssignedMechanicID:   it.AssignedMechanicID,
		AssignedMechanicName: it.AssignedMechanicName,
		CreatedBy:            it.CreatedBy,
		WorkOrderStage:       it.WorkOrderStage,
		PartsNeededNotes:     it.PartsNeededNotes,
		CompletionNotes:      it.CompletionNotes,
		Version:              it.Version,
	}
	for _, c := range it.PartsNeeded {
		j.PartsNeeded = append(j.PartsNeeded, entities.PartCategory{ID: c.ID, Name: c.Name})
	}
	if it.WorkOrderData != "" {
		var doc entities.WorkOrderDocument
		if err := json.Unmarshal([]byte(it.WorkOrderData), &doc); err != nil {
			return entities.Job{}, err
		}
		j.WorkOrderData = &doc
	}
	return j, nil
}

func toPartCategoryItems(cats []entities.PartCategory) []partCategoryItem {
	if cats == nil {
		return nil
	}
	out := make([]partCategoryItem, len(cats))
	for i, c := range cats {
		out[i] = partCategoryItem{ID: c.ID, Name: c.Name}
	}
	return out
}
