package dto

import (
	"atlas/internal/domains/eventtype/model"
	"atlas/shared"
	gDto "atlas/shared/dto"
	gModel "atlas/shared/model"
	"atlas/shared/slug"
	"atlas/shared/timezone"
)

type CreateEventTypeRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Slug        string `json:"slug"        validate:"omitempty,slug,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Icon        string `json:"icon"        validate:"omitempty,max=50"`
}

func (c *CreateEventTypeRequest) ToModel(user string) model.EventType {
	typeSlug := c.Slug
	if typeSlug == "" {
		typeSlug = slug.Make(c.Name)
	}

	return model.EventType{
		ID:          typeSlug,
		Name:        c.Name,
		Slug:        typeSlug,
		Description: c.Description,
		Icon:        c.Icon,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateEventTypeRequest struct {
	Name        string `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Description string `db:"description" json:"description" validate:"omitempty,max=500"`
	Icon        string `db:"icon"        json:"icon"        validate:"omitempty,max=50"`
}

type EventTypeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	gDto.Metadata
}

func (r *EventTypeResponse) FromModel(model model.EventType) {
	r.ID = model.ID
	r.Name = model.Name
	r.Slug = model.Slug
	r.Description = model.Description
	r.Icon = model.Icon
	r.Metadata.FromModel(model.Metadata)
}

type GetEventTypesResponse struct {
	EventTypes []EventTypeResponse `json:"event_types"`
	TotalPage  int                 `json:"total_page"`
	TotalData  int                 `json:"total_data"`
}

func (r *GetEventTypesResponse) FromModels(models []model.EventType, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.EventTypes = make([]EventTypeResponse, len(models))
	for i, mod := range models {
		r.EventTypes[i].FromModel(mod)
	}
}
