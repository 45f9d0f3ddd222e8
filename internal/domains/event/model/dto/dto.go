package dto

import (
	"time"

	"github.com/google/uuid"

	"atlas/internal/domains/event/model"
	"atlas/shared"
	"atlas/shared/constant"
	gDto "atlas/shared/dto"
	gModel "atlas/shared/model"
	"atlas/shared/slug"
	"atlas/shared/timezone"
)

type CreateEventRequest struct {
	Title       string    `json:"title"         validate:"required,max=200"`
	Slug        string    `json:"slug"          validate:"omitempty,slug,max=200"`
	Description string    `json:"description"   validate:"omitempty"`
	Price       float64   `json:"price"         validate:"required,min=0"`
	EventTypeID string    `json:"event_type_id" validate:"required,max=100"`
	MinCapacity int       `json:"min_capacity"  validate:"omitempty,min=0"`
	MaxCapacity int       `json:"max_capacity"  validate:"omitempty,min=0,gtefield=MinCapacity"`
	Featured    *bool     `json:"featured"      validate:"omitempty"`
	Image       string    `json:"image"         validate:"omitempty,url"`
	StartDate   time.Time `json:"start_date"    validate:"required"`
	EndDate     time.Time `json:"end_date"      validate:"required,gtefield=StartDate"`
}

func (c *CreateEventRequest) ToModel(user string) model.Event {
	eventSlug := c.Slug
	if eventSlug == "" {
		eventSlug = slug.Make(c.Title)
	}

	featured := false
	if c.Featured != nil {
		featured = *c.Featured
	}

	return model.Event{
		ID:          uuid.NewString(),
		Title:       c.Title,
		Slug:        eventSlug,
		Description: c.Description,
		Price:       c.Price,
		EventTypeID: c.EventTypeID,
		MinCapacity: c.MinCapacity,
		MaxCapacity: c.MaxCapacity,
		Featured:    featured,
		Image:       c.Image,
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateEventRequest struct {
	Title       string     `db:"title"         json:"title"         validate:"omitempty,max=200"`
	Slug        string     `db:"slug"          json:"slug"          validate:"omitempty,slug,max=200"`
	Description string     `db:"description"   json:"description"   validate:"omitempty"`
	Price       *float64   `db:"price"         json:"price"         validate:"omitempty,min=0"`
	EventTypeID string     `db:"event_type_id" json:"event_type_id" validate:"omitempty,max=100"`
	MinCapacity *int       `db:"min_capacity"  json:"min_capacity"  validate:"omitempty,min=0"`
	MaxCapacity *int       `db:"max_capacity"  json:"max_capacity"  validate:"omitempty,min=0"`
	Featured    *bool      `db:"featured"      json:"featured"      validate:"omitempty"`
	Rating      *float64   `db:"rating"        json:"rating"        validate:"omitempty,min=0,max=5"`
	Image       string     `db:"image"         json:"image"         validate:"omitempty,url"`
	StartDate   *time.Time `db:"start_date"    json:"start_date"    validate:"omitempty"`
	EndDate     *time.Time `db:"end_date"      json:"end_date"      validate:"omitempty"`
}

type EventResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Slug        string  `json:"slug"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	EventTypeID string  `json:"event_type_id"`
	MinCapacity int     `json:"min_capacity"`
	MaxCapacity int     `json:"max_capacity"`
	Featured    bool    `json:"featured"`
	Rating      float64 `json:"rating"`
	Image       string  `json:"image"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	gDto.Metadata
}

func (r *EventResponse) FromModel(model model.Event) {
	r.ID = model.ID
	r.Title = model.Title
	r.Slug = model.Slug
	r.Description = model.Description
	r.Price = model.Price
	r.EventTypeID = model.EventTypeID
	r.MinCapacity = model.MinCapacity
	r.MaxCapacity = model.MaxCapacity
	r.Featured = model.Featured
	r.Rating = model.Rating
	r.Image = model.Image
	r.StartDate = timezone.Format(model.StartDate, constant.DateFormat)
	r.EndDate = timezone.Format(model.EndDate, constant.DateFormat)
	r.Metadata.FromModel(model.Metadata)
}

type GetEventsResponse struct {
	Events    []EventResponse `json:"events"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetEventsResponse) FromModels(models []model.Event, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Events = make([]EventResponse, len(models))
	for i, mod := range models {
		r.Events[i].FromModel(mod)
	}
}
