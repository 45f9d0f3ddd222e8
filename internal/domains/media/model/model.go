package model

import "atlas/shared/model"

const (
	TableName  = "gallery_images"
	EntityName = "media"

	FieldID       = "id"
	FieldTitle    = "title"
	FieldAltText  = "alt_text"
	FieldImageURL = "image_url"
)

type Media struct {
	ID       string `db:"id"`
	Title    string `db:"title"`
	AltText  string `db:"alt_text"`
	ImageURL string `db:"image_url"`
	model.Metadata
}
