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
	eventMocks "atlas/internal/domains/event/mocks"
	"atlas/internal/domains/event/model"
	"atlas/internal/domains/event/model/dto"
	"atlas/internal/domains/event/service"
	eventtypeMocks "atlas/internal/domains/eventtype/mocks"
	cacheMocks "atlas/shared/cache/mocks"
	"atlas/shared/constant"
	"atlas/shared/failure"
)

func newEventService(t *testing.T) (service.Event, *eventMocks.MockEvent, *eventtypeMocks.MockEventType, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := eventMocks.NewMockEvent(ctrl)
	mockEventTypeRepo := eventtypeMocks.NewMockEventType(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockEventTypeRepo, cfg, mockCache, mocks.NewOtel())

	return svc, mockRepo, mockEventTypeRepo, mockCache
}

func TestEventService_Create(t *testing.T) {
	start := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 2)

	tests := []struct {
		name      string
		req       dto.CreateEventRequest
		setupMock func(repo *eventMocks.MockEvent, eventTypeRepo *eventtypeMocks.MockEventType, cache *cacheMocks.MockRedisCache)
		wantErr   bool
		wantCode  int
		wantSlug  string
	}{
		{
			name: "successful creation generates slug from title",
			req: dto.CreateEventRequest{
				Title:       "Lantern Festival Night",
				Price:       75,
				EventTypeID: "festival",
				StartDate:   start,
				EndDate:     end,
			},
			setupMock: func(repo *eventMocks.MockEvent, eventTypeRepo *eventtypeMocks.MockEventType, cache *cacheMocks.MockRedisCache) {
				eventTypeRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, event model.Event) error {
						assert.Equal(t, "lantern-festival-night", event.Slug)

						return nil
					})

				cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:  false,
			wantSlug: "lantern-festival-night",
		},
		{
			name: "unknown event type rejected",
			req: dto.CreateEventRequest{
				Title:       "Lantern Festival Night",
				Price:       75,
				EventTypeID: "nonexistent",
				StartDate:   start,
				EndDate:     end,
			},
			setupMock: func(repo *eventMocks.MockEvent, eventTypeRepo *eventtypeMocks.MockEventType, cache *cacheMocks.MockRedisCache) {
				eventTypeRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "duplicate slug rejected",
			req: dto.CreateEventRequest{
				Title:       "Lantern Festival Night",
				Price:       75,
				EventTypeID: "festival",
				StartDate:   start,
				EndDate:     end,
			},
			setupMock: func(repo *eventMocks.MockEvent, eventTypeRepo *eventtypeMocks.MockEventType, cache *cacheMocks.MockRedisCache) {
				eventTypeRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "repository error is wrapped",
			req: dto.CreateEventRequest{
				Title:       "Lantern Festival Night",
				Price:       75,
				EventTypeID: "festival",
				StartDate:   start,
				EndDate:     end,
			},
			setupMock: func(repo *eventMocks.MockEvent, eventTypeRepo *eventtypeMocks.MockEventType, cache *cacheMocks.MockRedisCache) {
				eventTypeRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockEventTypeRepo, mockCache := newEventService(t)
			tt.setupMock(mockRepo, mockEventTypeRepo, mockCache)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.Create(ctx, tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantSlug, res.Slug)
				assert.NotEmpty(t, res.ID)
			}
		})
	}
}

func TestEventService_Update(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.UpdateEventRequest
		id        string
		setupMock func(repo *eventMocks.MockEvent, eventTypeRepo *eventtypeMocks.MockEventType, cache *cacheMocks.MockRedisCache)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful update",
			req: dto.UpdateEventRequest{
				Title: "Updated Title",
			},
			id: "event-id",
			setupMock: func(repo *eventMocks.MockEvent, eventTypeRepo *eventtypeMocks.MockEventType, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Event{ID: "event-id", Slug: "old-slug"}, nil)

				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "slug conflict",
			req: dto.UpdateEventRequest{
				Slug: "taken-slug",
			},
			id: "event-id",
			setupMock: func(repo *eventMocks.MockEvent, eventTypeRepo *eventtypeMocks.MockEventType, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Event{ID: "event-id", Slug: "old-slug"}, nil)

				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "unknown event type rejected",
			req: dto.UpdateEventRequest{
				EventTypeID: "nonexistent",
			},
			id: "event-id",
			setupMock: func(repo *eventMocks.MockEvent, eventTypeRepo *eventtypeMocks.MockEventType, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Event{ID: "event-id", Slug: "old-slug"}, nil)

				eventTypeRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "event not found",
			req: dto.UpdateEventRequest{
				Title: "Updated Title",
			},
			id: "nonexistent",
			setupMock: func(repo *eventMocks.MockEvent, eventTypeRepo *eventtypeMocks.MockEventType, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Event{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockEventTypeRepo, mockCache := newEventService(t)
			tt.setupMock(mockRepo, mockEventTypeRepo, mockCache)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Update(ctx, tt.req, tt.id)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
