package model

import "atlas/shared/model"

const (
	TableName  = "tours"
	EntityName = "tour"

	FieldID          = "id"
	FieldTitle       = "title"
	FieldSlug        = "slug"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldCategoryID  = "category_id"
	FieldMinCapacity = "min_capacity"
	FieldMaxCapacity = "max_capacity"
	FieldFeatured    = "featured"
	FieldRating      = "rating"
	FieldImage       = "image"
)

type Tour struct {
	ID          string  `db:"id"`
	Title       string  `db:"title"`
	Slug        string  `db:"slug"`
	Description string  `db:"description"`
	Price       float64 `db:"price"`
	CategoryID  string  `db:"category_id"`
	MinCapacity int     `db:"min_capacity"`
	MaxCapacity int     `db:"max_capacity"`
	Featured    bool    `db:"featured"`
	Rating      float64 `db:"rating"`
	Image       string  `db:"image"`
	model.Metadata
}
