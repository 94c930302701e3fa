package handler

import (
	"github.com/taskquest/task-manager/internal/core/domain"
	"github.com/taskquest/task-manager/internal/core/ports"
)

// --- Request types ---

type createTaskRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
	Status      string `json:"status"      validate:"omitempty,oneof=pending in-progress completed"`
}

// updateTaskRequest is a partial update: absent fields keep their stored
// value. Pointer fields distinguish "not sent" from "sent empty".
type updateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status" validate:"omitempty,oneof=pending in-progress completed"`
}

func (r updateTaskRequest) toFields() ports.UpdateTaskFields {
	fields := ports.UpdateTaskFields{
		Title:       r.Title,
		Description: r.Description,
	}
	if r.Status != nil {
		s := domain.TaskStatus(*r.Status)
		fields.Status = &s
	}
	return fields
}

// --- Response types ---

type messageResponse struct {
	Message string `json:"message"`
}
