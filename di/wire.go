//go:build wireinject
// +build wireinject

package di

import (
	"classbook/config"
	"classbook/infras/jwt"
	"classbook/infras/kafka"
	"classbook/infras/otel"
	"classbook/infras/postgres"
	"classbook/infras/redis"
	"classbook/internal/events"
	"classbook/internal/notifier"
	"classbook/permissions"
	"classbook/shared/cache"
	"classbook/transport/http"
	"classbook/transport/http/middleware"
	"classbook/transport/http/router"

	"github.com/google/wire"

	authService "classbook/internal/domains/auth/service"
	bookingRepository "classbook/internal/domains/booking/repository"
	bookingService "classbook/internal/domains/booking/service"
	roomRepository "classbook/internal/domains/room/repository"
	roomService "classbook/internal/domains/room/service"
	timeslotRepository "classbook/internal/domains/timeslot/repository"
	timeslotService "classbook/internal/domains/timeslot/service"
	userRepository "classbook/internal/domains/user/repository"
	userService "classbook/internal/domains/user/service"

	authHandler "classbook/internal/handlers/auth"
	bookingHandler "classbook/internal/handlers/booking"
	roomHandler "classbook/internal/handlers/room"
	timeslotHandler "classbook/internal/handlers/timeslot"
	userHandler "classbook/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
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
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	events.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var timeslotDomain = wire.NewSet(
	timeslotRepository.New,
	timeslotService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	authDomain,
	userDomain,
	roomDomain,
	timeslotDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	roomHandler.New,
	timeslotHandler.New,
	bookingHandler.New,
	router.New,
)

var notifications = wire.NewSet(
	notifier.NewSender,
	notifier.NewMailer,
	notifier.NewConsumer,
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

func InitializeNotifier() *notifier.Consumer {
	wire.Build(
		config.Get,
		kafka.New,
		notifications,
	)

	return &notifier.Consumer{}
}
