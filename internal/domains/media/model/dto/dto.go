package dto

import (
	"mime/multipart"

	"github.com/google/uuid"

	"atlas/internal/domains/media/model"
	"atlas/shared"
	gDto "atlas/shared/dto"
	gModel "atlas/shared/model"
	"atlas/shared/timezone"
)

type UploadImageRequest struct {
	Title     string                `json:"title"   validate:"omitempty,max=200"`
	AltText   string                `json:"alt_text" validate:"omitempty,max=200"`
	Image     *multipart.FileHeader `json:"image"   swaggerignore:"true" validate:"required,mimetypes=image/png image/jpg image/jpeg image/webp"`
	ImageFile multipart.File        `json:"-"`
}

func (u *UploadImageRequest) ToModel(url, user string) model.Media {
	title := u.Title
	if title == "" && u.Image != nil {
		title = u.Image.Filename
	}

	return model.Media{
		ID:       uuid.NewString(),
		Title:    title,
		AltText:  u.AltText,
		ImageURL: url,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UploadImagesRequest struct {
	Images []UploadImageRequest `json:"images" validate:"required,min=1,dive"`
}

type UploadImageResponse struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	FileName string `json:"file_name"`
}

func (r *UploadImageResponse) FromModel(media model.Media, fileName string) {
	r.ID = media.ID
	r.URL = media.ImageURL
	r.FileName = fileName
}

// UploadImagesResponse keeps only the uploads that succeeded, in the order
// they were submitted. Failed counts the ones that were dropped.
type UploadImagesResponse struct {
	Images []UploadImageResponse `json:"images"`
	Failed int                   `json:"failed"`
}

type DeleteImagesRequest struct {
	ImageURLs []string `json:"image_urls" validate:"required,min=1,dive,url"`
}

type MediaResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	AltText  string `json:"alt_text"`
	ImageURL string `json:"image_url"`
	gDto.Metadata
}

func (r *MediaResponse) FromModel(model model.Media) {
	r.ID = model.ID
	r.Title = model.Title
	r.AltText = model.AltText
	r.ImageURL = model.ImageURL
	r.Metadata.FromModel(model.Metadata)
}

type GetMediaResponse struct {
	Media     []MediaResponse `json:"media"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetMediaResponse) FromModels(models []model.Media, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Media = make([]MediaResponse, len(models))
	for i, m := range models {
		r.Media[i].FromModel(m)
	}
}
