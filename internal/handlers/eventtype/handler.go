package eventtype

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"atlas/infras/otel"
	"atlas/internal/domains/eventtype/model"
	"atlas/internal/domains/eventtype/model/dto"
	"atlas/internal/domains/eventtype/service"
	"atlas/shared/constant"
	gDto "atlas/shared/dto"
	"atlas/shared/validator"
	"atlas/transport/http/response"
)

type Handler struct {
	service service.EventType
	otel    otel.Otel
}

func New(service service.EventType, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/event-types", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateEventType)
		routerGroup.Get("/", handler.GetEventTypes)
		routerGroup.Get("/{id}", handler.GetEventTypeByID)
		routerGroup.Patch("/{id}", handler.UpdateEventType)
		routerGroup.Delete("/{id}", handler.DeleteEventType)
	})
}

// CreateEventType handles the creation of a new event type.
// @Summary Create a new event type
// @Description Create a new event type with the provided details.
// @Tags EventType
// @Accept json
// @Produce json
// @Param request body dto.CreateEventTypeRequest true "Create Event Type Request"
// @Success 201 {object} response.Message "Event type created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/categories [post]
// @Security BearerAuth
func (handler *Handler) CreateEventType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateEventType")
	defer scope.End()

	req := dto.CreateEventTypeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create event type")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Event type created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Event type created successfully")
}

// GetEventTypes retrieves all event types based on query parameters.
// @Summary Get all event types
// @Description Retrieve all event types with optional filtering and pagination.
// @Tags EventType
// @Accept json
// @Produce json
// @Param name query string false "Filter by name"
// @Success 200 {object} dto.GetEventTypesResponse "List of event types"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/categories [get]
func (handler *Handler) GetEventTypes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEventTypes")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	name := r.URL.Query().Get(model.FieldName)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	categories, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get event types")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Event types retrieved successfully")

	response.WithJSON(w, http.StatusOK, categories)
}

// GetEventTypeByID retrieves an event type by its ID.
// @Summary Get an event type by ID
// @Description Retrieve an event type by its unique identifier.
// @Tags EventType
// @Accept json
// @Produce json
// @Param id path string true "Event Type ID"
// @Success 200 {object} dto.EventTypeResponse "Event type details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/categories/{id} [get]
func (handler *Handler) GetEventTypeByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEventTypeByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	eventType, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get event type by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Event type retrieved successfully")

	response.WithJSON(w, http.StatusOK, eventType)
}

// UpdateEventType updates an existing event type by its ID.
// @Summary Update an event type by ID
// @Description Update the details of an existing event type.
// @Tags EventType
// @Accept json
// @Produce json
// @Param id path string true "Event Type ID"
// @Param request body dto.UpdateEventTypeRequest true "Update Event Type Request"
// @Success 200 {object} response.Message "Event type updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/categories/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateEventType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateEventType")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateEventTypeRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update event type")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Event type updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Event type updated successfully")
}

// DeleteEventType deletes an event type by its ID.
// @Summary Delete an event type by ID
// @Description Delete an event type that is not referenced by any event.
// @Tags EventType
// @Accept json
// @Produce json
// @Param id path string true "Event Type ID"
// @Success 200 {object} response.Message "Event type deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/categories/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteEventType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteEventType")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete event type")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Event type deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Event type deleted successfully")
}
