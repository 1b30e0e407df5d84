package model

import (
	"strings"
	"time"

	"hotel/shared/model"
)

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID         = "id"
	FieldFirstName  = "first_name"
	FieldLastName   = "last_name"
	FieldUsername   = "username"
	FieldEmail      = "email"
	FieldPhone      = "phone"
	FieldIsStaff    = "is_staff"
	FieldDateJoined = "date_joined"
)

type Guest struct {
	ID         string    `db:"id"`
	FirstName  string    `db:"first_name"`
	LastName   string    `db:"last_name"`
	Username   string    `db:"username"`
	Email      string    `db:"email"`
	Phone      *string   `db:"phone"`
	IsStaff    bool      `db:"is_staff"`
	DateJoined time.Time `db:"date_joined"`
	model.Metadata
}

// FullName joins first and last name, skipping empty parts.
func (g *Guest) FullName() string {
	parts := []string{}

	if g.FirstName != "" {
		parts = append(parts, g.FirstName)
	}

	if g.LastName != "" {
		parts = append(parts, g.LastName)
	}

	return strings.Join(parts, " ")
}
