package entities

import "time"

// JobStatus is the lifecycle state of a repair job.
//
// Legal transitions live in internal/domain/lifecycle; nothing else decides them.
type JobStatus string

const (
	JobStatusNotStarted      JobStatus = "not_started"
	JobStatusInProgress      JobStatus = "in_progress"
	JobStatusWaitingForParts JobStatus = "waiting_for_parts"
	JobStatusReadyForPickup  JobStatus = "ready_for_pickup"
	JobStatusCompleted       JobStatus = "completed"
)

// AllJobStatuses lists every known status in workflow order.
var AllJobStatuses = []JobStatus{
	JobStatusNotStarted,
	JobStatusInProgress,
	JobStatusWaitingForParts,
	JobStatusReadyForPickup,
	JobStatusCompleted,
}

type JobPriority string

const (
	JobPriorityLow    JobPriority = "low"
	JobPriorityNormal JobPriority = "normal"
	JobPriorityUrgent JobPriority = "urgent"
)

func (p JobPriority) Valid() bool {
	switch p {
	case JobPriorityLow, JobPriorityNormal, JobPriorityUrgent:
		return true
	}
	return false
}

// PartCategory is a category of parts a job is waiting for (e.g. brakes, electrical).
type PartCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Job is the repair ticket tracked from intake to completion.
//
// Storage model (DynamoDB):
//   - PK: id
//   - version is the optimistic-concurrency token; every write bumps it.
//
// Relations (vehicle, customer, mechanic, creator) are weak references: id plus
// denormalized display fields.
type Job struct {
	ID          string      `json:"id"`
	JobNumber   string      `json:"job_number"`
	Status      JobStatus   `json:"status"`
	Priority    JobPriority `json:"priority"`
	ServiceType string      `json:"service_type"`
	Description string      `json:"description,omitempty"`

	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
	AssignedAt        *time.Time `json:"assigned_at,omitempty"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
	ScheduledDate     *time.Time `json:"scheduled_date,omitempty"`
	EstimatedDuration *int       `json:"estimated_duration,omitempty"` // minutes

	VehicleID            string `json:"vehicle_id"`
	VehiclePlate         string `json:"vehicle_plate,omitempty"`
	CustomerID           string `json:"customer_id,omitempty"`
	CustomerName         string `json:"customer_name,omitempty"`
	AssignedMechanicID   string `json:"assigned_mechanic_id,omitempty"`
	AssignedMechanicName string `json:"assigned_mechanic_name,omitempty"`
	CreatedBy            string `json:"created_by"`

	WorkOrderData  *WorkOrderDocument `json:"work_order_data,omitempty"`
	WorkOrderStage int                `json:"work_order_stage,omitempty"`

	PartsNeeded      []PartCategory `json:"parts_needed,omitempty"`
	PartsNeededNotes string         `json:"parts_needed_notes,omitempty"`
	CompletionNotes  string         `json:"completion_notes,omitempty"`

	Version int64 `json:"version"`
}

// JobUpdate is a partial write against a Job record. Nil fields are left untouched.
type JobUpdate struct {
	Status               *JobStatus
	AssignedMechanicID   *string
	AssignedMechanicName *string
	AssignedAt           *time.Time
	CompletedAt          *time.Time
	WorkOrderData        *WorkOrderDocument
	WorkOrderStage       *int
	PartsNeeded          []PartCategory
	PartsNeededNotes     *string
	CompletionNotes      *string
}

// CompletionConfirmation is what the operator confirms when closing a job.
//
// Findings not listed in CheckedFindingIDs and parts confirmed with quantity 0
// are struck out of the work order during reconciliation.
type CompletionConfirmation struct {
	CheckedFindingIDs []string       `json:"checked_finding_ids"`
	PartQuantities    map[string]int `json:"part_quantities"`
	Notes             string         `json:"notes"`
}

// PartsNeededRequest carries the part categories required when a job moves to
// waiting_for_parts.
type PartsNeededRequest struct {
	Categories []PartCategory `json:"categories"`
	Notes      string         `json:"notes"`
}
