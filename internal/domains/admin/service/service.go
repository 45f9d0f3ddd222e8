package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"atlas/config"
	"atlas/infras/otel"
	"atlas/infras/postgres"
	"atlas/internal/domains/admin/model/dto"
	auditModel "atlas/internal/domains/audit/model"
	auditDto "atlas/internal/domains/audit/model/dto"
	auditService "atlas/internal/domains/audit/service"
	bookingModel "atlas/internal/domains/booking/model"
	bookingService "atlas/internal/domains/booking/service"
	eventModel "atlas/internal/domains/event/model"
	eventDto "atlas/internal/domains/event/model/dto"
	eventService "atlas/internal/domains/event/service"
	profileModel "atlas/internal/domains/profile/model"
	profileService "atlas/internal/domains/profile/service"
	tourModel "atlas/internal/domains/tour/model"
	tourDto "atlas/internal/domains/tour/model/dto"
	tourService "atlas/internal/domains/tour/service"
	"atlas/shared"
	"atlas/shared/cache"
	"atlas/shared/constant"
	gDto "atlas/shared/dto"
)

const cacheStats = "admin:stats"

// Admin is the mutation facade for the back office. Every write delegates
// to the owning domain service, then audits and refreshes the dashboard
// counters. Audit failures never fail the mutation.
type Admin interface {
	CreateTour(ctx context.Context, req tourDto.CreateTourRequest) (tourDto.TourResponse, error)
	UpdateTour(ctx context.Context, req tourDto.UpdateTourRequest, id string) error
	DeleteTour(ctx context.Context, id string) error
	CreateEvent(ctx context.Context, req eventDto.CreateEventRequest) (eventDto.EventResponse, error)
	UpdateEvent(ctx context.Context, req eventDto.UpdateEventRequest, id string) error
	DeleteEvent(ctx context.Context, id string) error
	Stats(ctx context.Context) (dto.StatsResponse, error)
	DatabaseStats(ctx context.Context) (dto.DatabaseStatsResponse, error)
	VerifySampleData(ctx context.Context) (dto.VerifySampleDataResponse, error)
}

type serviceImpl struct {
	tours    tourService.Tour
	events   eventService.Event
	bookings bookingService.Booking
	profiles profileService.Profile
	audit    auditService.Audit
	db       *postgres.Connection
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(
	tours tourService.Tour,
	events eventService.Event,
	bookings bookingService.Booking,
	profiles profileService.Profile,
	audit auditService.Audit,
	db *postgres.Connection,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Admin {
	return &serviceImpl{
		tours:    tours,
		events:   events,
		bookings: bookings,
		profiles: profiles,
		audit:    audit,
		db:       db,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) CreateTour(ctx context.Context, req tourDto.CreateTourRequest) (res tourDto.TourResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateTour")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.tours.Create(ctx, req)
	if err != nil {
		return res, err
	}

	s.afterMutation(ctx, auditModel.ActionCreate, tourModel.TableName, res.ID, "tour created: "+res.Title)

	return res, nil
}

func (s *serviceImpl) UpdateTour(ctx context.Context, req tourDto.UpdateTourRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateTour")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.tours.Update(ctx, req, id); err != nil {
		return err
	}

	s.afterMutation(ctx, auditModel.ActionUpdate, tourModel.TableName, id, "tour updated")

	return nil
}

func (s *serviceImpl) DeleteTour(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteTour")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.tours.Delete(ctx, id); err != nil {
		return err
	}

	s.afterMutation(ctx, auditModel.ActionDelete, tourModel.TableName, id, "tour deleted")

	return nil
}

func (s *serviceImpl) CreateEvent(ctx context.Context, req eventDto.CreateEventRequest) (res eventDto.EventResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateEvent")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.events.Create(ctx, req)
	if err != nil {
		return res, err
	}

	s.afterMutation(ctx, auditModel.ActionCreate, eventModel.TableName, res.ID, "event created: "+res.Title)

	return res, nil
}

func (s *serviceImpl) UpdateEvent(ctx context.Context, req eventDto.UpdateEventRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateEvent")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.events.Update(ctx, req, id); err != nil {
		return err
	}

	s.afterMutation(ctx, auditModel.ActionUpdate, eventModel.TableName, id, "event updated")

	return nil
}

func (s *serviceImpl) DeleteEvent(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteEvent")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.events.Delete(ctx, id); err != nil {
		return err
	}

	s.afterMutation(ctx, auditModel.ActionDelete, eventModel.TableName, id, "event deleted")

	return nil
}

// afterMutation audits the change, notifies, and refreshes the dashboard
// counters. None of this can fail the mutation that already happened.
func (s *serviceImpl) afterMutation(ctx context.Context, action, table, recordID, details string) {
	s.audit.Log(ctx, auditDto.LogRequest{
		ActionType: action,
		TableName:  table,
		RecordID:   recordID,
		Details:    details,
	})

	log.Info().
		Str("action", action).
		Str("table", table).
		Str("record", recordID).
		Msg("admin mutation applied")

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheStats)

		if _, err := s.Stats(c); err != nil {
			log.Warn().Err(err).Msg("failed to refresh admin stats")
		}
	}()
}

func (s *serviceImpl) Stats(ctx context.Context) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Stats")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheStats, "aggregate")

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	if res.Tours, err = s.tours.Count(ctx, gDto.QueryParams{}, gDto.FilterGroup{}); err != nil {
		return res, fmt.Errorf("failed to count tours: %w", err)
	}

	if res.Events, err = s.events.Count(ctx, gDto.QueryParams{}, gDto.FilterGroup{}); err != nil {
		return res, fmt.Errorf("failed to count events: %w", err)
	}

	if res.Bookings, err = s.bookings.Count(ctx, gDto.QueryParams{}, gDto.FilterGroup{}); err != nil {
		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	if res.Profiles, err = s.profiles.Count(ctx, gDto.QueryParams{}, gDto.FilterGroup{}); err != nil {
		return res, fmt.Errorf("failed to count profiles: %w", err)
	}

	if res.TotalRevenue, err = s.bookings.TotalRevenue(ctx); err != nil {
		return res, fmt.Errorf("failed to calculate total revenue: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save admin stats to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) tableStats(ctx context.Context) ([]dto.TableStat, error) {
	counts := []struct {
		table string
		count func(context.Context) (int, error)
	}{
		{tourModel.TableName, func(c context.Context) (int, error) {
			return s.tours.Count(c, gDto.QueryParams{}, gDto.FilterGroup{})
		}},
		{eventModel.TableName, func(c context.Context) (int, error) {
			return s.events.Count(c, gDto.QueryParams{}, gDto.FilterGroup{})
		}},
		{bookingModel.TableName, func(c context.Context) (int, error) {
			return s.bookings.Count(c, gDto.QueryParams{}, gDto.FilterGroup{})
		}},
		{profileModel.TableName, func(c context.Context) (int, error) {
			return s.profiles.Count(c, gDto.QueryParams{}, gDto.FilterGroup{})
		}},
	}

	stats := make([]dto.TableStat, 0, len(counts))

	for _, entry := range counts {
		count, err := entry.count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", entry.table, err)
		}

		stats = append(stats, dto.TableStat{
			Table:   entry.table,
			Count:   count,
			HasData: count > 0,
		})
	}

	return stats, nil
}

func (s *serviceImpl) DatabaseStats(ctx context.Context) (res dto.DatabaseStatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DatabaseStats")
	defer scope.End()
	defer scope.TraceIfError(err)

	if pingErr := s.db.Ping(ctx); pingErr != nil {
		log.Error().Err(pingErr).Msg("database ping failed")

		return res, nil
	}

	res.Healthy = true

	if res.Tables, err = s.tableStats(ctx); err != nil {
		return res, err
	}

	return res, nil
}

func (s *serviceImpl) VerifySampleData(ctx context.Context) (res dto.VerifySampleDataResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".VerifySampleData")
	defer scope.End()
	defer scope.TraceIfError(err)

	if res.Tables, err = s.tableStats(ctx); err != nil {
		return res, err
	}

	res.Complete = true

	for _, stat := range res.Tables {
		if !stat.HasData {
			res.Complete = false

			break
		}
	}

	return res, nil
}
