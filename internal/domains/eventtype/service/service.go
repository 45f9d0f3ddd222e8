package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"atlas/config"
	"atlas/infras/otel"
	eventModel "atlas/internal/domains/event/model"
	eventRepository "atlas/internal/domains/event/repository"
	"atlas/internal/domains/eventtype/model"
	"atlas/internal/domains/eventtype/model/dto"
	"atlas/internal/domains/eventtype/repository"
	"atlas/shared"
	"atlas/shared/cache"
	"atlas/shared/constant"
	gDto "atlas/shared/dto"
	"atlas/shared/failure"
)

const (
	cacheGetEventType    = "event_type:get"
	cacheGetAllEventType = "event_type:gets"
	cacheCountEventType  = "event_type:count"
)

type EventType interface {
	Create(ctx context.Context, req dto.CreateEventTypeRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetEventTypesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.EventTypeResponse, error)
	Update(ctx context.Context, req dto.UpdateEventTypeRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.EventType
	eventRepo eventRepository.Event
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(repo repository.EventType, eventRepo eventRepository.Event, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) EventType {
	return &serviceImpl{
		repo:      repo,
		eventRepo: eventRepo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateEventTypeRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	eventType := req.ToModel(user)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(eventType.Slug, model.FieldSlug, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check event type slug")

		return fmt.Errorf("failed to check event type slug: %w", err)
	}

	if exist {
		return failure.Conflict("event type slug already exists") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, eventType); err != nil {
		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllEventType)
		shared.InvalidateCaches(c, s.cache, cacheCountEventType)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetEventTypesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllEventType, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count event types")

		return res, fmt.Errorf("failed to count event types: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get event types")

		return res, fmt.Errorf("failed to get event types: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save event types to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountEventType, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count event types")

		return res, fmt.Errorf("failed to count event types: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save event type count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.EventTypeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetEventType, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	eventType, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get event type")

		return res, fmt.Errorf("failed to get event type: %w", err)
	}

	if eventType.ID == constant.Empty {
		return res, failure.NotFound("event type not found") // nolint:wrapcheck
	}

	res.FromModel(eventType)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save event type to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateEventTypeRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check event type existence")

		return fmt.Errorf("failed to check event type existence: %w", err)
	}

	if !exist {
		return failure.NotFound("event type not found") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update event type")

		return fmt.Errorf("failed to update event type: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetEventType, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete event type cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllEventType)
		shared.InvalidateCaches(c, s.cache, cacheCountEventType)
	}()

	return nil
}

// Delete removes an event type unless an event still references it.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if event type exists")

		return fmt.Errorf("failed to check if event type exists: %w", err)
	}

	if !exist {
		return failure.NotFound("event type not found") // nolint:wrapcheck
	}

	referenced, err := s.eventRepo.Exist(ctx, shared.FilterByID(id, eventModel.FieldEventTypeID, eventModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check event type references")

		return fmt.Errorf("failed to check event type references: %w", err)
	}

	if referenced {
		return failure.Conflict("event type is still referenced by one or more events") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete event type")

		return fmt.Errorf("failed to delete event type: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetEventType, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete event type from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllEventType)
		shared.InvalidateCaches(c, s.cache, cacheCountEventType)
	}()

	return nil
}
