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
	categoryMocks "atlas/internal/domains/category/mocks"
	tourMocks "atlas/internal/domains/tour/mocks"
	"atlas/internal/domains/tour/model"
	"atlas/internal/domains/tour/model/dto"
	"atlas/internal/domains/tour/service"
	cacheMocks "atlas/shared/cache/mocks"
	"atlas/shared/constant"
	"atlas/shared/failure"
)

func newTourService(t *testing.T) (service.Tour, *tourMocks.MockTour, *categoryMocks.MockCategory, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := tourMocks.NewMockTour(ctrl)
	mockCategoryRepo := categoryMocks.NewMockCategory(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockCategoryRepo, cfg, mockCache, mocks.NewOtel())

	return svc, mockRepo, mockCategoryRepo, mockCache
}

func TestTourService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateTourRequest
		setupMock func(repo *tourMocks.MockTour, categoryRepo *categoryMocks.MockCategory, cache *cacheMocks.MockRedisCache)
		wantErr   bool
		wantCode  int
		wantSlug  string
	}{
		{
			name: "successful creation generates slug from title",
			req: dto.CreateTourRequest{
				Title:      "Sunrise Volcano Trek",
				Price:      150,
				CategoryID: "hiking",
			},
			setupMock: func(repo *tourMocks.MockTour, categoryRepo *categoryMocks.MockCategory, cache *cacheMocks.MockRedisCache) {
				categoryRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tour model.Tour) error {
						assert.Equal(t, "sunrise-volcano-trek", tour.Slug)

						return nil
					})

				cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:  false,
			wantSlug: "sunrise-volcano-trek",
		},
		{
			name: "unknown category rejected",
			req: dto.CreateTourRequest{
				Title:      "Sunrise Volcano Trek",
				Price:      150,
				CategoryID: "nonexistent",
			},
			setupMock: func(repo *tourMocks.MockTour, categoryRepo *categoryMocks.MockCategory, cache *cacheMocks.MockRedisCache) {
				categoryRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "duplicate slug rejected",
			req: dto.CreateTourRequest{
				Title:      "Sunrise Volcano Trek",
				Price:      150,
				CategoryID: "hiking",
			},
			setupMock: func(repo *tourMocks.MockTour, categoryRepo *categoryMocks.MockCategory, cache *cacheMocks.MockRedisCache) {
				categoryRepo.EXPECT().
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
			name: "repository error",
			req: dto.CreateTourRequest{
				Title:      "Sunrise Volcano Trek",
				Price:      150,
				CategoryID: "hiking",
			},
			setupMock: func(repo *tourMocks.MockTour, categoryRepo *categoryMocks.MockCategory, cache *cacheMocks.MockRedisCache) {
				categoryRepo.EXPECT().
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
			svc, mockRepo, mockCategoryRepo, mockCache := newTourService(t)
			tt.setupMock(mockRepo, mockCategoryRepo, mockCache)

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

func TestTourService_Update(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.UpdateTourRequest
		id        string
		setupMock func(repo *tourMocks.MockTour, categoryRepo *categoryMocks.MockCategory, cache *cacheMocks.MockRedisCache)
		wantErr   bool
	}{
		{
			name: "successful update",
			req: dto.UpdateTourRequest{
				Title: "Updated Title",
			},
			id: "tour-id",
			setupMock: func(repo *tourMocks.MockTour, categoryRepo *categoryMocks.MockCategory, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Tour{ID: "tour-id", Slug: "old-slug"}, nil)

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
			req: dto.UpdateTourRequest{
				Slug: "taken-slug",
			},
			id: "tour-id",
			setupMock: func(repo *tourMocks.MockTour, categoryRepo *categoryMocks.MockCategory, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Tour{ID: "tour-id", Slug: "old-slug"}, nil)

				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "tour not found",
			req: dto.UpdateTourRequest{
				Title: "Updated Title",
			},
			id: "nonexistent",
			setupMock: func(repo *tourMocks.MockTour, categoryRepo *categoryMocks.MockCategory, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Tour{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCategoryRepo, mockCache := newTourService(t)
			tt.setupMock(mockRepo, mockCategoryRepo, mockCache)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Update(ctx, tt.req, tt.id)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
