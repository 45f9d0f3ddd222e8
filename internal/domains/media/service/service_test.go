package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"atlas/config"
	"atlas/infras/otel/mocks"
	s3Mocks "atlas/infras/s3/mocks"
	mediaMocks "atlas/internal/domains/media/mocks"
	"atlas/internal/domains/media/model"
	"atlas/internal/domains/media/model/dto"
	"atlas/internal/domains/media/service"
	cacheMocks "atlas/shared/cache/mocks"
	"atlas/shared/failure"
)

type mediaMockSet struct {
	repo  *mediaMocks.MockMedia
	cache *cacheMocks.MockRedisCache
	s3    *s3Mocks.MockS3
}

func newMediaService(t *testing.T) (service.Media, mediaMockSet) {
	t.Helper()

	ctrl := gomock.NewController(t)

	set := mediaMockSet{
		repo:  mediaMocks.NewMockMedia(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
		s3:    s3Mocks.NewMockS3(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "test-bucket"

	svc := service.New(set.repo, cfg, set.cache, mocks.NewOtel(), set.s3)

	return svc, set
}

func imageRequest(filename string) dto.UploadImageRequest {
	return dto.UploadImageRequest{
		Image: &multipart.FileHeader{Filename: filename},
	}
}

func TestMediaService_UploadImage(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(set mediaMockSet)
		wantErr   bool
	}{
		{
			name: "upload and persist succeed",
			setupMock: func(set mediaMockSet) {
				set.s3.EXPECT().
					UploadFile(gomock.Any(), "test-bucket", gomock.Any(), gomock.Any(), gomock.Any(), "photo.png").
					Return("https://cdn.example.com/media/photo.png", nil)

				set.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				set.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name: "storage rejects the upload",
			setupMock: func(set mediaMockSet) {
				set.s3.EXPECT().
					UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errors.New("access denied"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, set := newMediaService(t)
			tt.setupMock(set)

			res, err := svc.UploadImage(context.Background(), imageRequest("photo.png"))

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "https://cdn.example.com/media/photo.png", res.URL)
			assert.Equal(t, "photo.png", res.FileName)
			assert.NotEmpty(t, res.ID)
		})
	}
}

func TestMediaService_UploadImages(t *testing.T) {
	t.Run("partial failure drops failed uploads and keeps order", func(t *testing.T) {
		svc, set := newMediaService(t)

		req := dto.UploadImagesRequest{
			Images: []dto.UploadImageRequest{
				imageRequest("first.png"),
				imageRequest("second.png"),
				imageRequest("third.png"),
			},
		}

		set.s3.EXPECT().
			UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), "first.png").
			Return("https://cdn.example.com/media/first.png", nil)

		set.s3.EXPECT().
			UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), "second.png").
			Return("", errors.New("timeout"))

		set.s3.EXPECT().
			UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), "third.png").
			Return("https://cdn.example.com/media/third.png", nil)

		set.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil).
			Times(2)

		set.cache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.UploadImages(context.Background(), req)

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, 1, res.Failed)
		assert.Len(t, res.Images, 2)
		assert.Equal(t, "first.png", res.Images[0].FileName)
		assert.Equal(t, "third.png", res.Images[1].FileName)
	})

	t.Run("empty batch is rejected", func(t *testing.T) {
		svc, _ := newMediaService(t)

		_, err := svc.UploadImages(context.Background(), dto.UploadImagesRequest{})

		assert.Error(t, err)
	})
}

func TestMediaService_DeleteImages(t *testing.T) {
	tests := []struct {
		name      string
		urls      []string
		setupMock func(set mediaMockSet)
		wantErr   bool
	}{
		{
			name: "deletes object and row",
			urls: []string{"https://cdn.example.com/media/photo.png"},
			setupMock: func(set mediaMockSet) {
				set.s3.EXPECT().
					GetObjectNameFromURL("test-bucket", "https://cdn.example.com/media/photo.png").
					Return("media/photo.png")

				// The resolved name already carries the media/ directory; a
				// non-empty directory here would double the prefix.
				set.s3.EXPECT().
					DeleteFile(gomock.Any(), "test-bucket", "", "media/photo.png").
					Return(nil)

				set.repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				set.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name: "storage deletion failure is reported",
			urls: []string{"https://cdn.example.com/media/photo.png"},
			setupMock: func(set mediaMockSet) {
				set.s3.EXPECT().
					GetObjectNameFromURL(gomock.Any(), gomock.Any()).
					Return("media/photo.png")

				set.s3.EXPECT().
					DeleteFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("access denied"))

				set.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, set := newMediaService(t)
			tt.setupMock(set)

			err := svc.DeleteImages(context.Background(), dto.DeleteImagesRequest{ImageURLs: tt.urls})

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.ErrorIs(t, err, service.ErrDeleteImagesFromS3)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMediaService_Delete(t *testing.T) {
	t.Run("removes the row and the stored object", func(t *testing.T) {
		svc, set := newMediaService(t)

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Media{ID: "media-1", ImageURL: "https://cdn.example.com/media/photo.png"}, nil)

		set.repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil).
			Times(2)

		set.s3.EXPECT().
			GetObjectNameFromURL("test-bucket", "https://cdn.example.com/media/photo.png").
			Return("media/photo.png")

		set.s3.EXPECT().
			DeleteFile(gomock.Any(), "test-bucket", "", "media/photo.png").
			Return(nil)

		set.cache.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		set.cache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		err := svc.Delete(context.Background(), "media-1")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("missing entry is not found", func(t *testing.T) {
		svc, set := newMediaService(t)

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Media{}, nil)

		err := svc.Delete(context.Background(), "ghost")

		var f *failure.Failure
		assert.ErrorAs(t, err, &f)
		assert.Equal(t, 404, f.Code)
	})
}
