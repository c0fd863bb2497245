package models

import "time"

// Note is a free-form text attached to a task.
type Note struct {
	ID        int       `json:"id"`
	Content   string    `json:"content"`
	TaskID    int       `json:"taskId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NoteInput is the body of POST /tasks/{id}/notes and PUT /notes/{id}.
type NoteInput struct {
	Content string `json:"content"`
}
