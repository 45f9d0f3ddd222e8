package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"atlas/config"
	"atlas/infras/otel"
	"atlas/infras/s3"
	"atlas/internal/domains/media/model"
	"atlas/internal/domains/media/model/dto"
	"atlas/internal/domains/media/repository"
	"atlas/shared"
	"atlas/shared/cache"
	"atlas/shared/constant"
	gDto "atlas/shared/dto"
	"atlas/shared/failure"
)

const (
	cacheGetMedia    = "media:get"
	cacheGetAllMedia = "media:gets"
	cacheCountMedia  = "media:count"
)

var ErrDeleteImagesFromS3 = errors.New("failed to delete images from storage")

type Media interface {
	UploadImage(ctx context.Context, req dto.UploadImageRequest) (dto.UploadImageResponse, error)
	UploadImages(ctx context.Context, req dto.UploadImagesRequest) (dto.UploadImagesResponse, error)
	DeleteImages(ctx context.Context, req dto.DeleteImagesRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetMediaResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.MediaResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Media
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Media, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Media {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) UploadImage(ctx context.Context, req dto.UploadImageRequest) (res dto.UploadImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	bucketName := s.cfg.External.S3.BucketName

	url, err := s.s3.UploadFile(ctx, bucketName, model.EntityName, req.ImageFile, req.Image, req.Image.Filename)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload file to S3")

		return res, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	media := req.ToModel(url, user)

	if err = s.repo.Insert(ctx, media); err != nil {
		log.Error().Err(err).Str("url", url).Msg("failed to persist uploaded image")

		return res, fmt.Errorf("failed to persist uploaded image: %w", err)
	}

	s.invalidateListCaches(ctx)

	res.FromModel(media, req.Image.Filename)

	return res, nil
}

// UploadImages fans the files out concurrently. Successful uploads keep
// their submission order in the response; failed ones are logged, counted
// and dropped.
func (s *serviceImpl) UploadImages(ctx context.Context, req dto.UploadImagesRequest) (res dto.UploadImagesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadImages")
	defer scope.End()
	defer scope.TraceIfError(err)

	if len(req.Images) == 0 {
		return res, failure.BadRequestFromString("no images to upload") // nolint:wrapcheck
	}

	results := make([]*dto.UploadImageResponse, len(req.Images))

	var wg sync.WaitGroup

	for i := range req.Images {
		wg.Add(1)

		go func(idx int) {
			defer wg.Done()

			uploaded, uploadErr := s.UploadImage(ctx, req.Images[idx])
			if uploadErr != nil {
				log.Error().Err(uploadErr).Int("index", idx).Msg("failed to upload image in batch")

				return
			}

			results[idx] = &uploaded
		}(i)
	}

	wg.Wait()

	res.Images = make([]dto.UploadImageResponse, 0, len(results))

	for _, result := range results {
		if result == nil {
			res.Failed++

			continue
		}

		res.Images = append(res.Images, *result)
	}

	return res, nil
}

func (s *serviceImpl) DeleteImages(ctx context.Context, req dto.DeleteImagesRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteImages")
	defer scope.End()
	defer scope.TraceIfError(err)

	bucketName := s.cfg.External.S3.BucketName

	var deleteErrors []error

	for _, imageURL := range req.ImageURLs {
		objectName := s.s3.GetObjectNameFromURL(bucketName, imageURL)
		if objectName == constant.Empty {
			log.Warn().Str("url", imageURL).Msg("failed to extract object name from URL")

			continue
		}

		// The resolved object name is the full key, directory included.
		if err := s.s3.DeleteFile(ctx, bucketName, constant.Empty, objectName); err != nil {
			log.Error().Err(err).Str("objectName", objectName).Msg("failed to delete file from S3")
			deleteErrors = append(deleteErrors, err)

			continue
		}

		filter := gDto.FilterGroup{
			Filters: []any{
				gDto.Filter{
					Field:    model.FieldImageURL,
					Operator: gDto.FilterOperatorEq,
					Value:    imageURL,
					Table:    model.TableName,
				},
			},
		}

		if err := s.repo.Delete(ctx, filter); err != nil {
			log.Error().Err(err).Str("url", imageURL).Msg("failed to delete image row")
		}
	}

	s.invalidateListCaches(ctx)

	if len(deleteErrors) > 0 {
		return fmt.Errorf("%w: %d images", ErrDeleteImagesFromS3, len(deleteErrors))
	}

	return nil
}

func (s *serviceImpl) invalidateListCaches(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllMedia)
		shared.InvalidateCaches(c, s.cache, cacheCountMedia)
	}()
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetMediaResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllMedia, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count media")

		return res, fmt.Errorf("failed to count media: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get media")

		return res, fmt.Errorf("failed to get media: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save media to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountMedia, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count media")

		return res, fmt.Errorf("failed to count media: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save media count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.MediaResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetMedia, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	media, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get media")

		return res, fmt.Errorf("failed to get media: %w", err)
	}

	if media.ID == constant.Empty {
		return res, failure.NotFound("media not found") // nolint:wrapcheck
	}

	res.FromModel(media)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save media to cache")
		}
	}()

	return res, nil
}

// Delete removes the row and then the object in storage. Storage cleanup is
// best effort and runs detached.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	media, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get media for deletion")

		return fmt.Errorf("failed to get media: %w", err)
	}

	if media.ID == constant.Empty {
		return failure.NotFound("media not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete media")

		return fmt.Errorf("failed to delete media: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetMedia, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete media cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllMedia)
		shared.InvalidateCaches(c, s.cache, cacheCountMedia)

		if media.ImageURL != constant.Empty {
			deleteReq := dto.DeleteImagesRequest{ImageURLs: []string{media.ImageURL}}
			if err := s.DeleteImages(c, deleteReq); err != nil {
				log.Error().Err(err).Msg("failed to delete image from storage")
			}
		}
	}()

	return nil
}
