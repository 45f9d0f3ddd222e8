package media

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"atlas/infras/otel"
	"atlas/internal/domains/media/model"
	"atlas/internal/domains/media/model/dto"
	"atlas/internal/domains/media/service"
	"atlas/shared/constant"
	gDto "atlas/shared/dto"
	"atlas/shared/validator"
	"atlas/transport/http/response"
)

type Handler struct {
	service service.Media
	otel    otel.Otel
}

func New(service service.Media, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/media", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetMedia)
		routerGroup.Get("/{id}", handler.GetMediaByID)
		routerGroup.Post("/upload", handler.UploadImage)
		routerGroup.Post("/uploads", handler.UploadImages)
		routerGroup.Delete("/images", handler.DeleteImages)
		routerGroup.Delete("/{id}", handler.DeleteMedia)
	})
}

// GetMedia retrieves all media entries based on query parameters.
// @Summary Get all media
// @Description Retrieve all media entries with optional filtering and pagination.
// @Tags Media
// @Accept json
// @Produce json
// @Param title query string false "Filter by title"
// @Success 200 {object} dto.GetMediaResponse "List of media entries"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/media [get]
func (handler *Handler) GetMedia(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMedia")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	title := r.URL.Query().Get(model.FieldTitle)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if title != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldTitle,
			Operator: gDto.FilterOperatorLike,
			Value:    title,
			Table:    model.TableName,
		})
	}

	media, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get media")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Media retrieved successfully")

	response.WithJSON(w, http.StatusOK, media)
}

// GetMediaByID retrieves a media entry by its ID.
// @Summary Get a media entry by ID
// @Description Retrieve a media entry by its unique identifier.
// @Tags Media
// @Accept json
// @Produce json
// @Param id path string true "Media ID"
// @Success 200 {object} dto.MediaResponse "Media details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/media/{id} [get]
func (handler *Handler) GetMediaByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMediaByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	media, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get media by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Media retrieved successfully")

	response.WithJSON(w, http.StatusOK, media)
}

// UploadImage handles a single image upload to S3.
// @Summary Upload an image to S3
// @Description Upload an image file to S3 and register it as a media entry.
// @Tags Media
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file to upload"
// @Param title formData string false "Title of the image"
// @Param alt_text formData string false "Alternative text of the image"
// @Success 200 {object} dto.UploadImageResponse "Image uploaded successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/media/upload [post]
// @Security BearerAuth
func (handler *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadImage")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, err)

		return
	}
	defer file.Close()

	req := dto.UploadImageRequest{
		Title:     r.FormValue(model.FieldTitle),
		AltText:   r.FormValue(model.FieldAltText),
		Image:     fileHeader,
		ImageFile: file,
	}

	res, err := handler.service.UploadImage(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload file")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Image uploaded successfully by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}

// UploadImages handles a batch image upload to S3. Files that fail to
// upload are dropped from the response and counted in the failed field.
// @Summary Upload multiple images to S3
// @Description Upload several image files in one request. Successful uploads keep their submission order.
// @Tags Media
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Image files to upload"
// @Success 200 {object} dto.UploadImagesResponse "Upload results"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/media/uploads [post]
// @Security BearerAuth
func (handler *Handler) UploadImages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadImages")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	fileHeaders := r.MultipartForm.File[constant.FormFiles]

	req := dto.UploadImagesRequest{
		Images: make([]dto.UploadImageRequest, 0, len(fileHeaders)),
	}

	for _, fileHeader := range fileHeaders {
		file, err := fileHeader.Open()
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to open file from form")

			response.WithError(w, err)

			return
		}
		defer file.Close()

		req.Images = append(req.Images, dto.UploadImageRequest{
			Image:     fileHeader,
			ImageFile: file,
		})
	}

	res, err := handler.service.UploadImages(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload files")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Images uploaded successfully by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteImages handles deletion of multiple images from S3.
// @Summary Delete images from S3
// @Description Delete multiple images from S3 by providing their URLs.
// @Tags Media
// @Accept json
// @Produce json
// @Param request body dto.DeleteImagesRequest true "Delete Images Request"
// @Success 200 {object} response.Message "Images deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/media/images [delete]
// @Security BearerAuth
func (handler *Handler) DeleteImages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteImages")
	defer scope.End()

	req := dto.DeleteImagesRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.DeleteImages(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete images from S3")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Images deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Images deleted successfully")
}

// DeleteMedia deletes a media entry by its ID.
// @Summary Delete a media entry by ID
// @Description Delete a media entry and its backing S3 object.
// @Tags Media
// @Accept json
// @Produce json
// @Param id path string true "Media ID"
// @Success 200 {object} response.Message "Media deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/media/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteMedia(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteMedia")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete media")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Media deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Media deleted successfully")
}
