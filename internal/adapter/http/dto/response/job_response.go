package response

import (
	"time"

	"mecanica_jobs/internal/domain/entities"
	"mecanica_jobs/internal/domain/health"
	"mecanica_jobs/internal/usecase"
)

type PartCategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type HealthResponse struct {
	Health      string    `json:"health"`
	Reason      string    `json:"reason"`
	DaysOld     int       `json:"days_old"`
	DaysOverdue int       `json:"days_overdue"`
	IsInactive  bool      `json:"is_inactive"`
	LastUpdate  time.Time `json:"last_update"`
}

// JobResponse is a job summary. The work order is served on its own endpoint.
type JobResponse struct {
	ID                   string                 `json:"id"`
	JobNumber            string                 `json:"job_number"`
	Status               string                 `json:"status"`
	Priority             string                 `json:"priority"`
	ServiceType          string                 `json:"service_type"`
	Description          string                 `json:"description,omitempty"`
	VehicleID            string                 `json:"vehicle_id"`
	VehiclePlate         string                 `json:"vehicle_plate,omitempty"`
	CustomerID           string                 `json:"customer_id,omitempty"`
	CustomerName         string                 `json:"customer_name,omitempty"`
	AssignedMechanicID   string                 `json:"assigned_mechanic_id,omitempty"`
	AssignedMechanicName string                 `json:"assigned_mechanic_name,omitempty"`
	CreatedBy            string                 `json:"created_by"`
	CreatedAt            time.Time              `json:"created_at"`
	UpdatedAt            time.Time              `json:"updated_at"`
	AssignedAt           *time.Time             `json:"assigned_at,omitempty"`
	CompletedAt          *time.Time             `json:"completed_at,omitempty"`
	ScheduledDate        *time.Time             `json:"scheduled_date,omitempty"`
	EstimatedDuration    *int                   `json:"estimated_duration,omitempty"`
	WorkOrderStage       int                    `json:"work_order_stage"`
	HasWorkOrder         bool                   `json:"has_work_order"`
	PartsNeeded          []PartCategoryResponse `json:"parts_needed,omitempty"`
	PartsNeededNotes     string                 `json:"parts_needed_notes,omitempty"`
	CompletionNotes      string                 `json:"completion_notes,omitempty"`
	Version              int64                  `json:"version"`
	Health               *HealthResponse        `json:"health,omitempty"`
}

type TransitionsResponse struct {
	JobID   string   `json:"job_id"`
	Current string   `json:"current"`
	Allowed []string `json:"allowed"`
}

func FromJob(j entities.Job) JobResponse {
	res := JobResponse{
		ID:                   j.ID,
		JobNumber:            j.JobNumber,
		Status:               string(j.Status),
		Priority:             string(j.Priority),
		ServiceType:          j.ServiceType,
		Description:          j.Description,
		VehicleID:            j.VehicleID,
		VehiclePlate:         j.VehiclePlate,
		CustomerID:           j.CustomerID,
		CustomerName:         j.CustomerName,
		AssignedMechanicID:   j.AssignedMechanicID,
		AssignedMechanicName: j.AssignedMechanicName,
		CreatedBy:            j.CreatedBy,
		CreatedAt:            j.CreatedAt,
		UpdatedAt:            j.UpdatedAt,
		AssignedAt:           j.AssignedAt,
		CompletedAt:          j.CompletedAt,
		ScheduledDate:        j.ScheduledDate,
		EstimatedDuration:    j.EstimatedDuration,
		WorkOrderStage:       j.WorkOrderStage,
		HasWorkOrder:         j.WorkOrderData != nil,
		PartsNeededNotes:     j.PartsNeededNotes,
		CompletionNotes:      j.CompletionNotes,
		Version:              j.Version,
	}
	for _, c := range j.PartsNeeded {
		res.PartsNeeded = append(res.PartsNeeded, PartCategoryResponse{ID: c.ID, Name: c.Name})
	}
	return res
}

func FromJobWithHealth(j usecase.JobWithHealth) JobResponse {
	res := FromJob(j.Job)
	h := FromHealth(j.Health)
	res.Health = &h
	return res
}

func FromJobsWithHealth(jobs []usecase.JobWithHealth) []JobResponse {
	out := make([]JobResponse, len(jobs))
	for i, j := range jobs {
		out[i] = FromJobWithHealth(j)
	}
	return out
}

func FromHealth(r health.Report) HealthResponse {
	return HealthResponse{
		Health:      string(r.Health),
		Reason:      r.Reason,
		DaysOld:     r.DaysOld,
		DaysOverdue: r.DaysOverdue,
		IsInactive:  r.IsInactive,
		LastUpdate:  r.LastUpdate,
	}
}

func FromTransitions(jobID string, current entities.JobStatus, allowed []entities.JobStatus) TransitionsResponse {
	res := TransitionsResponse{JobID: jobID, Current: string(current), Allowed: make([]string, len(allowed))}
	for i, s := range allowed {
		res.Allowed[i] = string(s)
	}
	return res
}
