package models

import (
	"fmt"
	"strings"
	"time"
)

type TaskStatus string

const (
	TaskStatusToDo       TaskStatus = "ToDo"
	TaskStatusInProgress TaskStatus = "InProgress"
	TaskStatusDone       TaskStatus = "Done"
)

// TaskStatuses lists the statuses in workflow order.
var TaskStatuses = []TaskStatus{TaskStatusToDo, TaskStatusInProgress, TaskStatusDone}

// ParseTaskStatus accepts a status name case-insensitively.
func ParseTaskStatus(s string) (TaskStatus, error) {
	for _, st := range TaskStatuses {
		if strings.EqualFold(string(st), strings.TrimSpace(s)) {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown task status %q (expected ToDo, InProgress or Done)", s)
}

type Task struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Deadline    time.Time  `json:"deadline"`
	Status      TaskStatus `json:"status"`
	UserID      int        `json:"userId"`
	CategoryID  *int       `json:"categoryId,omitempty"`
	Category    *Category  `json:"category,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// TaskSummary is returned by GET /tasks/summary.
type TaskSummary struct {
	Completed    int `json:"completed"`
	Pending      int `json:"pending"`
	NearDeadline int `json:"nearDeadline"`
}

// TaskInput is the body of POST /tasks and PUT /tasks/{id}. On update, nil
// pointers are omitted and keep their current value.
type TaskInput struct {
	Title       *string     `json:"title,omitempty"`
	Description *string     `json:"description,omitempty"`
	Deadline    *time.Time  `json:"deadline,omitempty"`
	Status      *TaskStatus `json:"status,omitempty"`
	CategoryID  *int        `json:"categoryId,omitempty"`
}

// Sort fields and orders accepted by GET /tasks.
const (
	SortByCreatedAt = "createdAt"
	SortByDeadline  = "deadline"
	SortOrderAsc    = "asc"
	SortOrderDesc   = "desc"
)

// TaskQuery filters GET /tasks. Zero values are not sent.
type TaskQuery struct {
	Status    TaskStatus
	Search    string
	SortBy    string
	SortOrder string
}
