package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"atlas/config"
	"atlas/infras/otel/mocks"
	"atlas/infras/postgres"
	"atlas/internal/domains/admin/service"
	auditMocks "atlas/internal/domains/audit/service/mocks"
	bookingMocks "atlas/internal/domains/booking/service/mocks"
	eventMocks "atlas/internal/domains/event/service/mocks"
	profileMocks "atlas/internal/domains/profile/service/mocks"
	tourDto "atlas/internal/domains/tour/model/dto"
	tourMocks "atlas/internal/domains/tour/service/mocks"
	cacheMocks "atlas/shared/cache/mocks"
)

type adminMockSet struct {
	tours    *tourMocks.MockTour
	events   *eventMocks.MockEvent
	bookings *bookingMocks.MockBooking
	profiles *profileMocks.MockProfile
	audit    *auditMocks.MockAudit
	cache    *cacheMocks.MockRedisCache
}

func newAdminService(t *testing.T) (service.Admin, adminMockSet) {
	t.Helper()

	ctrl := gomock.NewController(t)

	set := adminMockSet{
		tours:    tourMocks.NewMockTour(ctrl),
		events:   eventMocks.NewMockEvent(ctrl),
		bookings: bookingMocks.NewMockBooking(ctrl),
		profiles: profileMocks.NewMockProfile(ctrl),
		audit:    auditMocks.NewMockAudit(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(
		set.tours,
		set.events,
		set.bookings,
		set.profiles,
		set.audit,
		&postgres.Connection{},
		cfg,
		set.cache,
		mocks.NewOtel(),
	)

	return svc, set
}

// allowStatsRefresh tolerates the detached counter refresh that follows a
// successful mutation.
func allowStatsRefresh(set adminMockSet) {
	set.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	set.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis: nil")).AnyTimes()
	set.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	set.tours.EXPECT().Count(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()
	set.events.EXPECT().Count(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()
	set.bookings.EXPECT().Count(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()
	set.profiles.EXPECT().Count(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()
	set.bookings.EXPECT().TotalRevenue(gomock.Any()).Return(0.0, nil).AnyTimes()
}

func TestAdminService_CreateTour(t *testing.T) {
	t.Run("delegates, audits and succeeds", func(t *testing.T) {
		svc, set := newAdminService(t)

		req := tourDto.CreateTourRequest{
			Title:       "Volcano Trek",
			Price:       250,
			CategoryID:  "adventure",
			MinCapacity: 2,
			MaxCapacity: 12,
		}

		set.tours.EXPECT().
			Create(gomock.Any(), req).
			Return(tourDto.TourResponse{ID: "tour-id", Title: "Volcano Trek"}, nil)

		set.audit.EXPECT().
			Log(gomock.Any(), gomock.Any())

		allowStatsRefresh(set)

		res, err := svc.CreateTour(context.Background(), req)

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, "tour-id", res.ID)
	})

	t.Run("delegate failure skips auditing", func(t *testing.T) {
		svc, set := newAdminService(t)

		set.tours.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(tourDto.TourResponse{}, errors.New("category does not exist"))

		_, err := svc.CreateTour(context.Background(), tourDto.CreateTourRequest{Title: "Broken"})

		assert.Error(t, err)
	})
}

func TestAdminService_DeleteTour(t *testing.T) {
	t.Run("mutation survives stats refresh failure", func(t *testing.T) {
		svc, set := newAdminService(t)

		set.tours.EXPECT().
			Delete(gomock.Any(), "tour-id").
			Return(nil)

		set.audit.EXPECT().
			Log(gomock.Any(), gomock.Any())

		set.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		set.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis: nil")).AnyTimes()
		set.tours.EXPECT().
			Count(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(0, errors.New("database error")).
			AnyTimes()

		err := svc.DeleteTour(context.Background(), "tour-id")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})
}

func TestAdminService_Stats(t *testing.T) {
	t.Run("aggregates counters and revenue", func(t *testing.T) {
		svc, set := newAdminService(t)

		set.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("redis: nil"))

		set.tours.EXPECT().Count(gomock.Any(), gomock.Any(), gomock.Any()).Return(12, nil)
		set.events.EXPECT().Count(gomock.Any(), gomock.Any(), gomock.Any()).Return(4, nil)
		set.bookings.EXPECT().Count(gomock.Any(), gomock.Any(), gomock.Any()).Return(87, nil)
		set.profiles.EXPECT().Count(gomock.Any(), gomock.Any(), gomock.Any()).Return(31, nil)
		set.bookings.EXPECT().TotalRevenue(gomock.Any()).Return(15250.5, nil)

		set.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Stats(context.Background())

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, 12, res.Tours)
		assert.Equal(t, 4, res.Events)
		assert.Equal(t, 87, res.Bookings)
		assert.Equal(t, 31, res.Profiles)
		assert.Equal(t, 15250.5, res.TotalRevenue)
	})

	t.Run("count failure bubbles up", func(t *testing.T) {
		svc, set := newAdminService(t)

		set.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("redis: nil"))

		set.tours.EXPECT().
			Count(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(0, errors.New("database error"))

		_, err := svc.Stats(context.Background())

		assert.Error(t, err)
	})
}

func TestAdminService_VerifySampleData(t *testing.T) {
	t.Run("empty table marks the check incomplete", func(t *testing.T) {
		svc, set := newAdminService(t)

		set.tours.EXPECT().Count(gomock.Any(), gomock.Any(), gomock.Any()).Return(5, nil)
		set.events.EXPECT().Count(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil)
		set.bookings.EXPECT().Count(gomock.Any(), gomock.Any(), gomock.Any()).Return(3, nil)
		set.profiles.EXPECT().Count(gomock.Any(), gomock.Any(), gomock.Any()).Return(2, nil)

		res, err := svc.VerifySampleData(context.Background())

		assert.NoError(t, err)
		assert.False(t, res.Complete)
		assert.Len(t, res.Tables, 4)
		assert.False(t, res.Tables[1].HasData)
	})
}

func TestAdminService_DatabaseStats(t *testing.T) {
	t.Run("unreachable database reports unhealthy", func(t *testing.T) {
		svc, _ := newAdminService(t)

		res, err := svc.DatabaseStats(context.Background())

		assert.NoError(t, err)
		assert.False(t, res.Healthy)
		assert.Empty(t, res.Tables)
	})
}
