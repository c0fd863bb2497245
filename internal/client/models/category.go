package models

import "time"

type Category struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	UserID    int       `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CategoryInput is the body of POST /categories and PUT /categories/{id}.
type CategoryInput struct {
	Name string `json:"name"`
}
