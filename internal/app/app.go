// Package app holds every service of the admin data layer, built once at
// startup and handed to the presentation layer.
package app

import (
	"context"
	"fmt"
	"hoteladmin/config"
	"hoteladmin/internal/schema"
	"os"

	authService "hoteladmin/internal/domains/auth/service"
	authlogService "hoteladmin/internal/domains/authlog/service"
	customerService "hoteladmin/internal/domains/customer/service"
	occupancyService "hoteladmin/internal/domains/occupancy/service"
	reportService "hoteladmin/internal/domains/report/service"
	reservationService "hoteladmin/internal/domains/reservation/service"
	staffService "hoteladmin/internal/domains/staff/service"
	transactionService "hoteladmin/internal/domains/transaction/service"
	userService "hoteladmin/internal/domains/user/service"

	"github.com/rs/zerolog/log"
)

type App struct {
	Config *config.Config
	Schema *schema.Manager

	Auth        authService.Auth
	AuthLog     authlogService.Logger
	User        userService.User
	Customer    customerService.Customer
	Staff       staffService.Staff
	Reservation reservationService.Reservation
	Transaction transactionService.Transaction
	Occupancy   occupancyService.Occupancy
	Report      reportService.Report
}

// Init creates any missing table. It is safe to call repeatedly.
func (a *App) Init(ctx context.Context) error {
	if err := a.Schema.Initialize(ctx); err != nil {
		return fmt.Errorf("initialize schema: %w", err)
	}

	log.Info().Str("driver", a.Config.DB.Driver).Msg("Schema is ready")

	return nil
}

// ExportReport writes the report workbook covering months to path.
func (a *App) ExportReport(ctx context.Context, path string, months int) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, closeErr)
		}
	}()

	if err = a.Report.ExportXLSX(ctx, months, file); err != nil {
		return err //nolint:wrapcheck
	}

	log.Info().Str("path", path).Int("months", months).Msg("Report exported")

	return nil
}

// PurgeSessions deletes every expired session.
func (a *App) PurgeSessions(ctx context.Context) error {
	removed, err := a.Auth.PurgeExpiredSessions(ctx)
	if err != nil {
		return err //nolint:wrapcheck
	}

	log.Info().Int64("removed", removed).Msg("Expired sessions purged")

	return nil
}
