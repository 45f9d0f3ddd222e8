package dto

import (
	"atlas/internal/domains/category/model"
	"atlas/shared"
	gDto "atlas/shared/dto"
	gModel "atlas/shared/model"
	"atlas/shared/slug"
	"atlas/shared/timezone"
)

type CreateCategoryRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Slug        string `json:"slug"        validate:"omitempty,slug,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Icon        string `json:"icon"        validate:"omitempty,max=50"`
}

// ToModel derives the slug from the name when not provided and uses it as the
// identifier.
func (c *CreateCategoryRequest) ToModel(user string) model.Category {
	categorySlug := c.Slug
	if categorySlug == "" {
		categorySlug = slug.Make(c.Name)
	}

	return model.Category{
		ID:          categorySlug,
		Name:        c.Name,
		Slug:        categorySlug,
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

type UpdateCategoryRequest struct {
	Name        string `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Description string `db:"description" json:"description" validate:"omitempty,max=500"`
	Icon        string `db:"icon"        json:"icon"        validate:"omitempty,max=50"`
}

type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	gDto.Metadata
}

func (r *CategoryResponse) FromModel(model model.Category) {
	r.ID = model.ID
	r.Name = model.Name
	r.Slug = model.Slug
	r.Description = model.Description
	r.Icon = model.Icon
	r.Metadata.FromModel(model.Metadata)
}

type GetCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
	TotalPage  int                `json:"total_page"`
	TotalData  int                `json:"total_data"`
}

func (r *GetCategoriesResponse) FromModels(models []model.Category, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Categories = make([]CategoryResponse, len(models))
	for i, mod := range models {
		r.Categories[i].FromModel(mod)
	}
}
