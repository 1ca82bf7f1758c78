//go:build wireinject
// +build wireinject

package di

import (
	"huddle/config"
	"huddle/infras/jwt"
	"huddle/infras/kafka"
	"huddle/infras/otel"
	"huddle/infras/postgres"
	"huddle/infras/redis"
	"huddle/internal/events"
	"huddle/permissions"
	"huddle/shared/cache"
	"huddle/transport/http"
	"huddle/transport/http/middleware"
	"huddle/transport/http/router"

	"github.com/google/wire"

	authService "huddle/internal/domains/auth/service"
	bookingRepository "huddle/internal/domains/booking/repository"
	bookingService "huddle/internal/domains/booking/service"
	roomRepository "huddle/internal/domains/room/repository"
	roomService "huddle/internal/domains/room/service"
	userRepository "huddle/internal/domains/user/repository"
	userService "huddle/internal/domains/user/service"
	authHandler "huddle/internal/handlers/auth"
	bookingHandler "huddle/internal/handlers/booking"
	healthHandler "huddle/internal/handlers/health"
	roomHandler "huddle/internal/handlers/room"
	userHandler "huddle/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
	permissions.Get,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var eventing = wire.NewSet(
	events.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var userDomain = wire.NewSet(
	userService.New,
)

var domains = wire.NewSet(
	authDomain,
	roomDomain,
	bookingDomain,
	userDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	roomHandler.New,
	bookingHandler.New,
	userHandler.New,
	healthHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		eventing,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
