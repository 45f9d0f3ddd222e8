package model

import (
	"time"

	"atlas/shared/model"
)

const (
	TableName  = "events"
	EntityName = "event"

	FieldID          = "id"
	FieldTitle       = "title"
	FieldSlug        = "slug"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldEventTypeID = "event_type_id"
	FieldMinCapacity = "min_capacity"
	FieldMaxCapacity = "max_capacity"
	FieldFeatured    = "featured"
	FieldRating      = "rating"
	FieldImage       = "image"
	FieldStartDate   = "start_date"
	FieldEndDate     = "end_date"
)

type Event struct {
	ID          string    `db:"id"`
	Title       string    `db:"title"`
	Slug        string    `db:"slug"`
	Description string    `db:"description"`
	Price       float64   `db:"price"`
	EventTypeID string    `db:"event_type_id"`
	MinCapacity int       `db:"min_capacity"`
	MaxCapacity int       `db:"max_capacity"`
	Featured    bool      `db:"featured"`
	Rating      float64   `db:"rating"`
	Image       string    `db:"image"`
	StartDate   time.Time `db:"start_date"`
	EndDate     time.Time `db:"end_date"`
	model.Metadata
}
