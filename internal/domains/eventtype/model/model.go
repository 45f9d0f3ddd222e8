package model

import "atlas/shared/model"

const (
	TableName  = "event_types"
	EntityName = "event_type"

	FieldID          = "id"
	FieldName        = "name"
	FieldSlug        = "slug"
	FieldDescription = "description"
	FieldIcon        = "icon"
)

type EventType struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Slug        string `db:"slug"`
	Description string `db:"description"`
	Icon        string `db:"icon"`
	model.Metadata
}
