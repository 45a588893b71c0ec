package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ContactMessage is a submission from the contact form. Reference is the
// public id handed back to the sender.
type ContactMessage struct {
	bun.BaseModel `bun:"table:contact_messages,alias:cms"`

	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	Reference uuid.UUID `bun:"reference,notnull,type:uuid" json:"reference"`
	Name      string    `bun:"name,notnull" json:"name"`
	Email     string    `bun:"email,notnull" json:"email"`
	Subject   string    `bun:"subject" json:"subject"`
	Message   string    `bun:"message,notnull" json:"message"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp" json:"createdAt"`
}

// ContactRequest is the contact form payload.
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}
