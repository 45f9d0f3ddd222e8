package router

import (
	"github.com/go-chi/chi/v5"

	"atlas/internal/handlers/admin"
	"atlas/internal/handlers/auth"
	"atlas/internal/handlers/booking"
	"atlas/internal/handlers/category"
	"atlas/internal/handlers/event"
	"atlas/internal/handlers/eventtype"
	"atlas/internal/handlers/health"
	"atlas/internal/handlers/media"
	"atlas/internal/handlers/profile"
	"atlas/internal/handlers/tour"
)

type DomainHandlers struct {
	Health    health.Handler
	Auth      auth.Handler
	Category  category.Handler
	EventType eventtype.Handler
	Tour      tour.Handler
	Event     event.Handler
	Booking   booking.Handler
	Profile   profile.Handler
	Media     media.Handler
	Admin     admin.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Health.Router(routerGroup)
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Category.Router(routerGroup)
		r.DomainHandlers.EventType.Router(routerGroup)
		r.DomainHandlers.Tour.Router(routerGroup)
		r.DomainHandlers.Event.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Profile.Router(routerGroup)
		r.DomainHandlers.Media.Router(routerGroup)
		r.DomainHandlers.Admin.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
