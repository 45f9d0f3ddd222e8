package dto

import (
	"github.com/google/uuid"

	"atlas/internal/domains/tour/model"
	"atlas/shared"
	gDto "atlas/shared/dto"
	gModel "atlas/shared/model"
	"atlas/shared/slug"
	"atlas/shared/timezone"
)

type CreateTourRequest struct {
	Title       string  `json:"title"        validate:"required,max=200"`
	Slug        string  `json:"slug"         validate:"omitempty,slug,max=200"`
	Description string  `json:"description"  validate:"omitempty"`
	Price       float64 `json:"price"        validate:"required,min=0"`
	CategoryID  string  `json:"category_id"  validate:"required,max=100"`
	MinCapacity int     `json:"min_capacity" validate:"omitempty,min=0"`
	MaxCapacity int     `json:"max_capacity" validate:"omitempty,min=0,gtefield=MinCapacity"`
	Featured    *bool   `json:"featured"     validate:"omitempty"`
	Image       string  `json:"image"        validate:"omitempty,url"`
}

func (c *CreateTourRequest) ToModel(user string) model.Tour {
	tourSlug := c.Slug
	if tourSlug == "" {
		tourSlug = slug.Make(c.Title)
	}

	featured := false
	if c.Featured != nil {
		featured = *c.Featured
	}

	return model.Tour{
		ID:          uuid.NewString(),
		Title:       c.Title,
		Slug:        tourSlug,
		Description: c.Description,
		Price:       c.Price,
		CategoryID:  c.CategoryID,
		MinCapacity: c.MinCapacity,
		MaxCapacity: c.MaxCapacity,
		Featured:    featured,
		Image:       c.Image,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateTourRequest struct {
	Title       string   `db:"title"        json:"title"        validate:"omitempty,max=200"`
	Slug        string   `db:"slug"         json:"slug"         validate:"omitempty,slug,max=200"`
	Description string   `db:"description"  json:"description"  validate:"omitempty"`
	Price       *float64 `db:"price"        json:"price"        validate:"omitempty,min=0"`
	CategoryID  string   `db:"category_id"  json:"category_id"  validate:"omitempty,max=100"`
	MinCapacity *int     `db:"min_capacity" json:"min_capacity" validate:"omitempty,min=0"`
	MaxCapacity *int     `db:"max_capacity" json:"max_capacity" validate:"omitempty,min=0"`
	Featured    *bool    `db:"featured"     json:"featured"     validate:"omitempty"`
	Rating      *float64 `db:"rating"       json:"rating"       validate:"omitempty,min=0,max=5"`
	Image       string   `db:"image"        json:"image"        validate:"omitempty,url"`
}

type TourResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Slug        string  `json:"slug"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	CategoryID  string  `json:"category_id"`
	MinCapacity int     `json:"min_capacity"`
	MaxCapacity int     `json:"max_capacity"`
	Featured    bool    `json:"featured"`
	Rating      float64 `json:"rating"`
	Image       string  `json:"image"`
	gDto.Metadata
}

func (r *TourResponse) FromModel(model model.Tour) {
	r.ID = model.ID
	r.Title = model.Title
	r.Slug = model.Slug
	r.Description = model.Description
	r.Price = model.Price
	r.CategoryID = model.CategoryID
	r.MinCapacity = model.MinCapacity
	r.MaxCapacity = model.MaxCapacity
	r.Featured = model.Featured
	r.Rating = model.Rating
	r.Image = model.Image
	r.Metadata.FromModel(model.Metadata)
}

type GetToursResponse struct {
	Tours     []TourResponse `json:"tours"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetToursResponse) FromModels(models []model.Tour, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Tours = make([]TourResponse, len(models))
	for i, mod := range models {
		r.Tours[i].FromModel(mod)
	}
}
