package model

import "atlas/shared/model"

const (
	TableName  = "profiles"
	EntityName = "profile"

	FieldID        = "id"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldIsAdmin   = "is_admin"
	FieldActive    = "active"
)

type Profile struct {
	ID        string `db:"id"`
	Email     string `db:"email"`
	Password  string `db:"password"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	IsAdmin   bool   `db:"is_admin"`
	Active    bool   `db:"active"`
	model.Metadata
}
