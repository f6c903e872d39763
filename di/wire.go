//go:build wireinject
// +build wireinject

package di

import (
	"hoteladmin/config"
	"hoteladmin/infras/database"
	"hoteladmin/internal/app"

	authService "hoteladmin/internal/domains/auth/service"
	authlogRepository "hoteladmin/internal/domains/authlog/repository"
	authlogService "hoteladmin/internal/domains/authlog/service"
	customerRepository "hoteladmin/internal/domains/customer/repository"
	customerService "hoteladmin/internal/domains/customer/service"
	occupancyRepository "hoteladmin/internal/domains/occupancy/repository"
	occupancyService "hoteladmin/internal/domains/occupancy/service"
	reportRepository "hoteladmin/internal/domains/report/repository"
	reportService "hoteladmin/internal/domains/report/service"
	reservationRepository "hoteladmin/internal/domains/reservation/repository"
	reservationService "hoteladmin/internal/domains/reservation/service"
	sessionRepository "hoteladmin/internal/domains/session/repository"
	staffRepository "hoteladmin/internal/domains/staff/repository"
	staffService "hoteladmin/internal/domains/staff/service"
	transactionRepository "hoteladmin/internal/domains/transaction/repository"
	transactionService "hoteladmin/internal/domains/transaction/service"
	userRepository "hoteladmin/internal/domains/user/repository"
	userService "hoteladmin/internal/domains/user/service"

	"github.com/google/wire"
)

var infrastructures = wire.NewSet(
	provideDatabase,
	provideOtel,
	provideCache,
	wire.Bind(new(database.Transactor), new(*database.Connection)),
	provideSchema,
)

var authDomain = wire.NewSet(
	userRepository.New,
	userService.New,
	sessionRepository.New,
	authlogRepository.New,
	authlogService.New,
	authService.New,
)

var customerDomain = wire.NewSet(
	customerRepository.New,
	customerService.New,
)

var staffDomain = wire.NewSet(
	staffRepository.New,
	staffService.New,
)

var bookingDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
	transactionRepository.New,
	transactionService.New,
	occupancyRepository.New,
	occupancyService.New,
)

var reportDomain = wire.NewSet(
	reportRepository.New,
	reportService.New,
)

var domains = wire.NewSet(
	authDomain,
	customerDomain,
	staffDomain,
	bookingDomain,
	reportDomain,
)

// InitializeApp connects every infrastructure dependency and builds the
// services. cleanup releases them in reverse order.
func InitializeApp(cfg *config.Config) (*app.App, func(), error) {
	wire.Build(
		infrastructures,
		domains,
		wire.Struct(new(app.App), "*"),
	)

	return nil, nil, nil
}
