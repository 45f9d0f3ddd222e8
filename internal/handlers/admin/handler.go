package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"atlas/infras/otel"
	"atlas/internal/domains/admin/service"
	auditModel "atlas/internal/domains/audit/model"
	auditService "atlas/internal/domains/audit/service"
	eventDto "atlas/internal/domains/event/model/dto"
	tourDto "atlas/internal/domains/tour/model/dto"
	"atlas/shared/constant"
	gDto "atlas/shared/dto"
	"atlas/shared/validator"
	"atlas/transport/http/response"
)

// Handler exposes the audited mutation surface used by the admin
// dashboard, next to the public resource routes.
type Handler struct {
	service service.Admin
	audit   auditService.Audit
	otel    otel.Otel
}

func New(service service.Admin, audit auditService.Audit, otel otel.Otel) Handler {
	return Handler{
		service: service,
		audit:   audit,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/admin", func(routerGroup chi.Router) {
		routerGroup.Post("/tours", handler.CreateTour)
		routerGroup.Patch("/tours/{id}", handler.UpdateTour)
		routerGroup.Delete("/tours/{id}", handler.DeleteTour)
		routerGroup.Post("/events", handler.CreateEvent)
		routerGroup.Patch("/events/{id}", handler.UpdateEvent)
		routerGroup.Delete("/events/{id}", handler.DeleteEvent)
		routerGroup.Get("/stats", handler.GetStats)
		routerGroup.Get("/database-stats", handler.GetDatabaseStats)
		routerGroup.Get("/verify-sample-data", handler.VerifySampleData)
		routerGroup.Get("/logs", handler.GetLogs)
	})
}

// CreateTour creates a tour through the audited admin surface.
// @Summary Create a tour as admin
// @Description Create a tour, record an audit entry and refresh dashboard stats.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body tourDto.CreateTourRequest true "Create Tour Request"
// @Success 201 {object} tourDto.TourResponse "Tour created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/tours [post]
// @Security BearerAuth
func (handler *Handler) CreateTour(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTour")
	defer scope.End()

	req := tourDto.CreateTourRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CreateTour(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create tour")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Tour created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// UpdateTour updates a tour through the audited admin surface.
// @Summary Update a tour as admin
// @Description Update a tour, record an audit entry and refresh dashboard stats.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Tour ID"
// @Param request body tourDto.UpdateTourRequest true "Update Tour Request"
// @Success 200 {object} response.Message "Tour updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/tours/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateTour(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTour")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := tourDto.UpdateTourRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateTour(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update tour")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Tour updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Tour updated successfully")
}

// DeleteTour deletes a tour through the audited admin surface.
// @Summary Delete a tour as admin
// @Description Delete a tour, record an audit entry and refresh dashboard stats.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Tour ID"
// @Success 200 {object} response.Message "Tour deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/tours/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteTour(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTour")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteTour(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete tour")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Tour deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Tour deleted successfully")
}

// CreateEvent creates an event through the audited admin surface.
// @Summary Create an event as admin
// @Description Create an event, record an audit entry and refresh dashboard stats.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body eventDto.CreateEventRequest true "Create Event Request"
// @Success 201 {object} eventDto.EventResponse "Event created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/events [post]
// @Security BearerAuth
func (handler *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateEvent")
	defer scope.End()

	req := eventDto.CreateEventRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CreateEvent(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create event")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Event created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// UpdateEvent updates an event through the audited admin surface.
// @Summary Update an event as admin
// @Description Update an event, record an audit entry and refresh dashboard stats.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body eventDto.UpdateEventRequest true "Update Event Request"
// @Success 200 {object} response.Message "Event updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/events/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateEvent")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := eventDto.UpdateEventRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateEvent(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update event")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Event updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Event updated successfully")
}

// DeleteEvent deletes an event through the audited admin surface.
// @Summary Delete an event as admin
// @Description Delete an event, record an audit entry and refresh dashboard stats.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} response.Message "Event deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/events/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteEvent")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteEvent(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete event")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Event deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Event deleted successfully")
}

// GetStats returns the aggregated dashboard counters.
// @Summary Get dashboard stats
// @Description Retrieve row counts per resource and the total booking revenue.
// @Tags Admin
// @Accept json
// @Produce json
// @Success 200 {object} dto.StatsResponse "Dashboard stats"
// @Failure 500 {object} response.Error
// @Router /v1/admin/stats [get]
// @Security BearerAuth
func (handler *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStats")
	defer scope.End()

	res, err := handler.service.Stats(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get stats")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Stats retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetDatabaseStats reports database connectivity and per-table counts.
// @Summary Get database stats
// @Description Report database health and row counts per table. A failed ping yields an unhealthy report, not an error.
// @Tags Admin
// @Accept json
// @Produce json
// @Success 200 {object} dto.DatabaseStatsResponse "Database stats"
// @Failure 500 {object} response.Error
// @Router /v1/admin/database-stats [get]
// @Security BearerAuth
func (handler *Handler) GetDatabaseStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDatabaseStats")
	defer scope.End()

	res, err := handler.service.DatabaseStats(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get database stats")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Database stats retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// VerifySampleData checks that every content table holds data.
// @Summary Verify sample data
// @Description Check that every content table contains at least one row.
// @Tags Admin
// @Accept json
// @Produce json
// @Success 200 {object} dto.VerifySampleDataResponse "Verification report"
// @Failure 500 {object} response.Error
// @Router /v1/admin/verify-sample-data [get]
// @Security BearerAuth
func (handler *Handler) VerifySampleData(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".VerifySampleData")
	defer scope.End()

	res, err := handler.service.VerifySampleData(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to verify sample data")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Sample data verified successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetLogs lists recorded audit entries.
// @Summary Get audit logs
// @Description Retrieve audit log entries with optional filtering and pagination.
// @Tags Admin
// @Accept json
// @Produce json
// @Param action_type query string false "Filter by action type"
// @Param table_name query string false "Filter by table name"
// @Param record_id query string false "Filter by record ID"
// @Success 200 {object} dto.GetAuditLogsResponse "List of audit logs"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/logs [get]
// @Security BearerAuth
func (handler *Handler) GetLogs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLogs")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	actionType := r.URL.Query().Get(auditModel.FieldActionType)
	tableName := r.URL.Query().Get(auditModel.FieldTableName)
	recordID := r.URL.Query().Get(auditModel.FieldRecordID)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if actionType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    auditModel.FieldActionType,
			Operator: gDto.FilterOperatorEq,
			Value:    actionType,
			Table:    auditModel.TableName,
		})
	}

	if tableName != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    auditModel.FieldTableName,
			Operator: gDto.FilterOperatorEq,
			Value:    tableName,
			Table:    auditModel.TableName,
		})
	}

	if recordID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    auditModel.FieldRecordID,
			Operator: gDto.FilterOperatorEq,
			Value:    recordID,
			Table:    auditModel.TableName,
		})
	}

	logs, err := handler.audit.List(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get audit logs")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Audit logs retrieved successfully")

	response.WithJSON(w, http.StatusOK, logs)
}
