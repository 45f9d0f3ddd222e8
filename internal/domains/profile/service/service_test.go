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
	profileMocks "atlas/internal/domains/profile/mocks"
	"atlas/internal/domains/profile/model"
	"atlas/internal/domains/profile/model/dto"
	"atlas/internal/domains/profile/service"
	cacheMocks "atlas/shared/cache/mocks"
	"atlas/shared/constant"
	"atlas/shared/failure"
)

func newProfileService(t *testing.T) (service.Profile, *profileMocks.MockProfile, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := profileMocks.NewMockProfile(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

func TestProfileService_IsAdmin(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *profileMocks.MockProfile, cache *cacheMocks.MockRedisCache)
		want      bool
		wantErr   bool
	}{
		{
			name: "admin flag set on stored profile",
			setupMock: func(repo *profileMocks.MockProfile, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any(), model.FieldID, model.FieldIsAdmin).
					Return(model.Profile{ID: "user-1", IsAdmin: true}, nil)
				cache.EXPECT().Save(gomock.Any(), gomock.Any(), true, 3600).Return(nil).AnyTimes()
			},
			want: true,
		},
		{
			name: "regular profile is not admin",
			setupMock: func(repo *profileMocks.MockProfile, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any(), model.FieldID, model.FieldIsAdmin).
					Return(model.Profile{ID: "user-2", IsAdmin: false}, nil)
				cache.EXPECT().Save(gomock.Any(), gomock.Any(), false, 3600).Return(nil).AnyTimes()
			},
			want: false,
		},
		{
			name: "unknown profile is not admin and not an error",
			setupMock: func(repo *profileMocks.MockProfile, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any(), model.FieldID, model.FieldIsAdmin).
					Return(model.Profile{}, nil)
				cache.EXPECT().Save(gomock.Any(), gomock.Any(), false, 3600).Return(nil).AnyTimes()
			},
			want: false,
		},
		{
			name: "repository error propagates",
			setupMock: func(repo *profileMocks.MockProfile, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any(), model.FieldID, model.FieldIsAdmin).
					Return(model.Profile{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newProfileService(t)
			tt.setupMock(mockRepo, mockCache)

			got, err := svc.IsAdmin(context.Background(), "user-1")

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProfileService_IsAdmin_CacheHit(t *testing.T) {
	svc, _, mockCache := newProfileService(t)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			*value.(*bool) = true

			return nil
		})

	got, err := svc.IsAdmin(context.Background(), "user-1")

	assert.NoError(t, err)
	assert.True(t, got)
}

func TestProfileService_Get(t *testing.T) {
	t.Run("missing profile returns not found", func(t *testing.T) {
		svc, mockRepo, mockCache := newProfileService(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Profile{}, nil)

		_, err := svc.Get(context.Background(), "ghost")

		var f *failure.Failure
		assert.ErrorAs(t, err, &f)
		assert.Equal(t, 404, f.Code)
	})

	t.Run("found profile never exposes the password", func(t *testing.T) {
		svc, mockRepo, mockCache := newProfileService(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Profile{ID: "user-1", Email: "admin@example.com", IsAdmin: true, Active: true}, nil)
		mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 3600).Return(nil).AnyTimes()

		res, err := svc.Get(context.Background(), "user-1")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, "admin@example.com", res.Email)
		assert.True(t, res.IsAdmin)
	})
}

func TestProfileService_Update(t *testing.T) {
	t.Run("empty request rejected", func(t *testing.T) {
		svc, _, _ := newProfileService(t)

		err := svc.Update(context.Background(), dto.UpdateProfileRequest{}, "user-1")

		var f *failure.Failure
		assert.ErrorAs(t, err, &f)
		assert.Equal(t, 400, f.Code)
	})

	t.Run("stamps the acting user", func(t *testing.T) {
		svc, mockRepo, mockCache := newProfileService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, "First", fields[model.FieldFirstName])
				assert.Equal(t, "admin-1", fields[constant.FieldModifiedBy])

				return nil
			})
		mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
		err := svc.Update(ctx, dto.UpdateProfileRequest{FirstName: "First"}, "user-1")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})
}
