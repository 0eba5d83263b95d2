package request

import (
	"strings"
	"time"

	"mecanica_jobs/internal/domain/entities"
	"mecanica_jobs/internal/usecase"
)

type CreateJobRequest struct {
	VehicleID         string     `json:"vehicle_id" binding:"required"`
	VehiclePlate      string     `json:"vehicle_plate"`
	CustomerID        string     `json:"customer_id"`
	CustomerName      string     `json:"customer_name"`
	ServiceType       string     `json:"service_type" binding:"required"`
	Description       string     `json:"description"`
	Priority          string     `json:"priority"`
	ScheduledDate     *time.Time `json:"scheduled_date"`
	EstimatedDuration *int       `json:"estimated_duration"` // minutes
}

func (r CreateJobRequest) ToInput(submissionKey string) usecase.CreateJobInput {
	return usecase.CreateJobInput{
		SubmissionKey:     strings.TrimSpace(submissionKey),
		VehicleID:         r.VehicleID,
		VehiclePlate:      r.VehiclePlate,
		CustomerID:        r.CustomerID,
		CustomerName:      r.CustomerName,
		ServiceType:       r.ServiceType,
		Description:       r.Description,
		Priority:          entities.JobPriority(strings.ToLower(strings.TrimSpace(r.Priority))),
		ScheduledDate:     r.ScheduledDate,
		EstimatedDuration: r.EstimatedDuration,
	}
}

type PartCategoryRequest struct {
	ID   string `json:"id" binding:"required"`
	Name string `json:"name"`
}

type PartsNeededRequest struct {
	Categories []PartCategoryRequest `json:"categories"`
	Notes      string                `json:"notes"`
}

type CompletionRequest struct {
	CheckedFindingIDs []string       `json:"checked_finding_ids"`
	PartQuantities    map[string]int `json:"part_quantities"`
	Notes             string         `json:"notes"`
}

// StatusChangeRequest asks for a lifecycle move. Version is the job version the
// client last saw; 0 skips the concurrency check.
type StatusChangeRequest struct {
	Status      string              `json:"status" binding:"required"`
	Version     int64               `json:"version"`
	PartsNeeded *PartsNeededRequest `json:"parts_needed"`
	Completion  *CompletionRequest  `json:"completion"`
}

func (r StatusChangeRequest) ToInput(jobID string) usecase.StatusChangeInput {
	in := usecase.StatusChangeInput{
		JobID:   jobID,
		Status:  entities.JobStatus(strings.TrimSpace(r.Status)),
		Version: r.Version,
	}
	if r.PartsNeeded != nil {
		pn := &entities.PartsNeededRequest{Notes: r.PartsNeeded.Notes}
		for _, c := range r.PartsNeeded.Categories {
			pn.Categories = append(pn.Categories, entities.PartCategory{ID: c.ID, Name: c.Name})
		}
		in.PartsNeeded = pn
	}
	if r.Completion != nil {
		in.Completion = &entities.CompletionConfirmation{
			CheckedFindingIDs: r.Completion.CheckedFindingIDs,
			PartQuantities:    r.Completion.PartQuantities,
			Notes:             r.Completion.Notes,
		}
	}
	return in
}

type AssignMechanicRequest struct {
	MechanicID   string `json:"mechanic_id" binding:"required"`
	MechanicName string `json:"mechanic_name"`
	Version      int64  `json:"version"`
}
