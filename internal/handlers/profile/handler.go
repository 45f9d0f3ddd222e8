package profile

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"atlas/infras/otel"
	"atlas/internal/domains/profile/model"
	"atlas/internal/domains/profile/model/dto"
	"atlas/internal/domains/profile/service"
	"atlas/shared"
	"atlas/shared/constant"
	gDto "atlas/shared/dto"
	"atlas/shared/validator"
	"atlas/transport/http/response"
)

type Handler struct {
	service service.Profile
	otel    otel.Otel
}

func New(service service.Profile, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/profiles", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetProfiles)
		routerGroup.Get("/{id}", handler.GetProfileByID)
		routerGroup.Patch("/{id}", handler.UpdateProfile)
		routerGroup.Delete("/{id}", handler.DeleteProfile)
	})
}

// GetProfiles retrieves all profiles based on query parameters.
// @Summary Get all profiles
// @Description Retrieve all user profiles with optional filtering and pagination.
// @Tags Profile
// @Accept json
// @Produce json
// @Param email query string false "Filter by email"
// @Param active query bool false "Filter by active flag"
// @Success 200 {object} dto.GetProfilesResponse "List of profiles"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/profiles [get]
// @Security BearerAuth
func (handler *Handler) GetProfiles(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProfiles")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	email := r.URL.Query().Get(model.FieldEmail)
	active := r.URL.Query().Get(model.FieldActive)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if email != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldEmail,
			Operator: gDto.FilterOperatorLike,
			Value:    email,
			Table:    model.TableName,
		})
	}

	if active != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    shared.ConvertStringToBool(active),
			Table:    model.TableName,
		})
	}

	profiles, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get profiles")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Profiles retrieved successfully")

	response.WithJSON(w, http.StatusOK, profiles)
}

// GetProfileByID retrieves a profile by its ID.
// @Summary Get a profile by ID
// @Description Retrieve a user profile by its unique identifier.
// @Tags Profile
// @Accept json
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} dto.ProfileResponse "Profile details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/profiles/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetProfileByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProfileByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	profile, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get profile by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Profile retrieved successfully")

	response.WithJSON(w, http.StatusOK, profile)
}

// UpdateProfile updates an existing profile by its ID.
// @Summary Update a profile by ID
// @Description Update the details of an existing user profile.
// @Tags Profile
// @Accept json
// @Produce json
// @Param id path string true "Profile ID"
// @Param request body dto.UpdateProfileRequest true "Update Profile Request"
// @Success 200 {object} response.Message "Profile updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/profiles/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateProfile")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateProfileRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update profile")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Profile updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Profile updated successfully")
}

// DeleteProfile deletes a profile by its ID.
// @Summary Delete a profile by ID
// @Description Delete a user profile using its unique identifier.
// @Tags Profile
// @Accept json
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} response.Message "Profile deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/profiles/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteProfile")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete profile")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Profile deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Profile deleted successfully")
}
