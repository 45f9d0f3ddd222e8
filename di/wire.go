//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"atlas/config"
	"atlas/infras/jwt"
	"atlas/infras/kafka"
	"atlas/infras/otel"
	"atlas/infras/postgres"
	"atlas/infras/redis"
	"atlas/infras/s3"
	"atlas/permissions"
	"atlas/shared/cache"
	"atlas/transport/http"
	"atlas/transport/http/middleware"
	"atlas/transport/http/router"

	adminService "atlas/internal/domains/admin/service"
	auditRepository "atlas/internal/domains/audit/repository"
	auditService "atlas/internal/domains/audit/service"
	authService "atlas/internal/domains/auth/service"
	bookingRepository "atlas/internal/domains/booking/repository"
	bookingService "atlas/internal/domains/booking/service"
	categoryRepository "atlas/internal/domains/category/repository"
	categoryService "atlas/internal/domains/category/service"
	eventRepository "atlas/internal/domains/event/repository"
	eventService "atlas/internal/domains/event/service"
	eventtypeRepository "atlas/internal/domains/eventtype/repository"
	eventtypeService "atlas/internal/domains/eventtype/service"
	mediaRepository "atlas/internal/domains/media/repository"
	mediaService "atlas/internal/domains/media/service"
	profileRepository "atlas/internal/domains/profile/repository"
	profileService "atlas/internal/domains/profile/service"
	tourRepository "atlas/internal/domains/tour/repository"
	tourService "atlas/internal/domains/tour/service"

	adminHandler "atlas/internal/handlers/admin"
	authHandler "atlas/internal/handlers/auth"
	bookingHandler "atlas/internal/handlers/booking"
	categoryHandler "atlas/internal/handlers/category"
	eventHandler "atlas/internal/handlers/event"
	eventtypeHandler "atlas/internal/handlers/eventtype"
	healthHandler "atlas/internal/handlers/health"
	mediaHandler "atlas/internal/handlers/media"
	profileHandler "atlas/internal/handlers/profile"
	tourHandler "atlas/internal/handlers/tour"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	s3.New,
	kafka.New,
	jwt.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var categoryDomain = wire.NewSet(
	categoryRepository.New,
	categoryService.New,
)

var eventtypeDomain = wire.NewSet(
	eventtypeRepository.New,
	eventtypeService.New,
)

var tourDomain = wire.NewSet(
	tourRepository.New,
	tourService.New,
)

var eventDomain = wire.NewSet(
	eventRepository.New,
	eventService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var profileDomain = wire.NewSet(
	profileRepository.New,
	profileService.New,
)

var mediaDomain = wire.NewSet(
	mediaRepository.New,
	mediaService.New,
)

var auditDomain = wire.NewSet(
	auditRepository.New,
	auditService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var adminDomain = wire.NewSet(
	adminService.New,
)

var domains = wire.NewSet(
	categoryDomain,
	eventtypeDomain,
	tourDomain,
	eventDomain,
	bookingDomain,
	profileDomain,
	mediaDomain,
	auditDomain,
	authDomain,
	adminDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	authHandler.New,
	categoryHandler.New,
	eventtypeHandler.New,
	tourHandler.New,
	eventHandler.New,
	bookingHandler.New,
	profileHandler.New,
	mediaHandler.New,
	adminHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
