package api

import (
	"github.com/phrazzld/taskhub/internal/domain"
	"github.com/phrazzld/taskhub/internal/service"
)

// CreateTaskRequest defines the payload for creating a task.
type CreateTaskRequest struct {
	Title       string  `json:"title"       validate:"required"`
	Description *string `json:"description"`
	Completed   bool    `json:"completed"`
}

// ToParams converts the request to service parameters.
func (r CreateTaskRequest) ToParams() service.CreateTaskParams {
	return service.CreateTaskParams{
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
	}
}

// UpdateTaskRequest defines the payload for a partial task update.
// Absent fields are left unchanged; description may be null to clear it.
type UpdateTaskRequest struct {
	Title       domain.Optional[string]  `json:"title"`
	Description domain.Optional[*string] `json:"description"`
	Completed   domain.Optional[bool]    `json:"completed"`
}

// ToPatch converts the request to a domain patch.
func (r UpdateTaskRequest) ToPatch() domain.TaskPatch {
	return domain.TaskPatch{
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
	}
}

// Validate implements request validation for partial updates.
func (r UpdateTaskRequest) Validate() error {
	return r.ToPatch().Validate()
}

// MessageResponse is a body carrying only a human-readable message.
type MessageResponse struct {
	Message string `json:"message"`
}

// Health status values.
const (
	HealthStatusHealthy   = "healthy"
	HealthStatusUnhealthy = "unhealthy"
)

// HealthResponse reports backing service reachability.
type HealthResponse struct {
	Status   string `json:"status"`
	Database bool   `json:"database"`
	Redis    bool   `json:"redis"`
}
