package service

import (
	"context"
	"fmt"
	"hoteladmin/config"
	"hoteladmin/infras/otel"
	"hoteladmin/internal/domains/report/model"
	"hoteladmin/internal/domains/report/model/dto"
	"hoteladmin/internal/domains/report/repository"
	"hoteladmin/shared"
	"hoteladmin/shared/cache"
	"hoteladmin/shared/constant"
	"hoteladmin/shared/failure"
	"hoteladmin/shared/timezone"
	"io"
	"math"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	cacheDashboard      = "report:dashboard"
	cacheCustomerGrowth = "report:customer-growth"
	cacheTotalCustomers = "report:total-customers"
	cacheRevenue        = "report:revenue"
	cacheBookings       = "report:bookings"
	cacheOccupancy      = "report:occupancy"
	cacheNewCustomers   = "report:new-customers"

	DefaultMonths       = 6
	MaxMonths           = 36
	DefaultNewCustomers = 5
	MaxNewCustomers     = 100
)

var (
	ErrInvalidMonths = failure.BadRequestFromString(fmt.Sprintf("months must be between 1 and %d", MaxMonths))
	ErrInvalidLimit  = failure.BadRequestFromString(fmt.Sprintf("limit must be between 1 and %d", MaxNewCustomers))
)

// Report serves the dashboard scalars and the monthly trend series. Every
// series covers the months ending with the current one and carries an entry,
// zero when empty, for each of them. months 0 means DefaultMonths.
type Report interface {
	Dashboard(ctx context.Context) (dto.DashboardResponse, error)
	CustomerGrowthByMonth(ctx context.Context, months int) (dto.MonthlySeries, error)
	TotalCustomersByMonth(ctx context.Context, months int) (dto.MonthlySeries, error)
	RevenueByMonth(ctx context.Context, months int) (dto.MonthlySeries, error)
	BookingCountByMonth(ctx context.Context, months int) (dto.MonthlySeries, error)
	OccupancyByMonth(ctx context.Context, months int) (dto.MonthlySeries, error)
	NewCustomers(ctx context.Context, limit int) ([]dto.NewCustomerResponse, error)
	Summary(ctx context.Context, months int) (dto.SummaryResponse, error)
	ExportXLSX(ctx context.Context, months int, w io.Writer) error
}

type serviceImpl struct {
	repo  repository.Report
	cfg   *config.Config
	cache cache.Cache
	otel  otel.Otel
}

func New(repo repository.Report, cfg *config.Config, cache cache.Cache, otel otel.Otel) Report {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Dashboard(ctx context.Context) (res dto.DashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dashboard")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.cache.Get(ctx, cacheDashboard, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheDashboard).Msg("cache hit for dashboard")

		return res, nil
	}

	totals, err := s.repo.Totals(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load dashboard totals")

		return res, fmt.Errorf("failed to load dashboard totals: %w", err)
	}

	res.FromModel(totals)
	s.save(ctx, cacheDashboard, res)

	return res, nil
}

// CustomerGrowthByMonth counts customers created in each month.
func (s *serviceImpl) CustomerGrowthByMonth(ctx context.Context, months int) (dto.MonthlySeries, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CustomerGrowthByMonth")
	defer scope.End()

	return s.series(ctx, cacheCustomerGrowth, months, func(start time.Time) (map[string]float64, error) {
		rows, err := s.repo.CustomerSignups(ctx, start)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		return sumByMonth(rows, timestampMonth), nil
	})
}

// TotalCustomersByMonth is the running customer count at the end of each
// month.
func (s *serviceImpl) TotalCustomersByMonth(ctx context.Context, months int) (dto.MonthlySeries, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".TotalCustomersByMonth")
	defer scope.End()

	growth, err := s.CustomerGrowthByMonth(ctx, months)
	if err != nil {
		return nil, err
	}

	return s.series(ctx, cacheTotalCustomers, months, func(start time.Time) (map[string]float64, error) {
		before, err := s.repo.CustomersBefore(ctx, start)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		running := float64(before)
		values := make(map[string]float64, len(growth))

		for _, month := range growth {
			running += month.Value
			values[month.Month] = running
		}

		return values, nil
	})
}

func (s *serviceImpl) RevenueByMonth(ctx context.Context, months int) (dto.MonthlySeries, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RevenueByMonth")
	defer scope.End()

	return s.series(ctx, cacheRevenue, months, func(start time.Time) (map[string]float64, error) {
		rows, err := s.repo.TransactionAmounts(ctx, start)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		return sumByMonth(rows, timestampMonth), nil
	})
}

// BookingCountByMonth counts reservations by checkin month.
func (s *serviceImpl) BookingCountByMonth(ctx context.Context, months int) (dto.MonthlySeries, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BookingCountByMonth")
	defer scope.End()

	return s.series(ctx, cacheBookings, months, func(start time.Time) (map[string]float64, error) {
		rows, err := s.repo.BookingCheckins(ctx, calendarDate(start))
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		return sumByMonth(rows, dateMonth), nil
	})
}

// OccupancyByMonth averages the daily occupancy rate, in percent, over the
// recorded days of each month.
func (s *serviceImpl) OccupancyByMonth(ctx context.Context, months int) (dto.MonthlySeries, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".OccupancyByMonth")
	defer scope.End()

	return s.series(ctx, cacheOccupancy, months, func(start time.Time) (map[string]float64, error) {
		rows, err := s.repo.Occupancy(ctx, calendarDate(start))
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		sums := map[string]float64{}
		days := map[string]int{}

		for _, row := range rows {
			if row.TotalRooms == 0 {
				continue
			}

			month := dateMonth(row.Date)
			sums[month] += float64(row.OccupiedRooms) * 100 / float64(row.TotalRooms)
			days[month]++
		}

		values := make(map[string]float64, len(sums))
		for month, sum := range sums {
			values[month] = math.Round(sum/float64(days[month])*100) / 100
		}

		return values, nil
	})
}

// NewCustomers lists the most recent sign-ups, newest first. limit 0 means
// DefaultNewCustomers.
func (s *serviceImpl) NewCustomers(ctx context.Context, limit int) (res []dto.NewCustomerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".NewCustomers")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if limit == 0 {
		limit = DefaultNewCustomers
	}

	if limit < 0 || limit > MaxNewCustomers {
		return nil, ErrInvalidLimit
	}

	cacheKey := shared.BuildCacheKey(cacheNewCustomers, limit)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for new customers")

		return res, nil
	}

	rows, err := s.repo.RecentCustomers(ctx, limit)
	if err != nil {
		log.Error().Err(err).Msg("failed to list new customers")

		return nil, fmt.Errorf("failed to list new customers: %w", err)
	}

	res = dto.FromNewCustomers(rows)
	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Summary(ctx context.Context, months int) (res dto.SummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Summary")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	months, err = normalizeMonths(months)
	if err != nil {
		return res, err
	}

	res.Months = months
	res.GeneratedAt = timezone.Format(timezone.Now(), constant.DateFormat)

	if res.Dashboard, err = s.Dashboard(ctx); err != nil {
		return res, err
	}

	if res.CustomerGrowth, err = s.CustomerGrowthByMonth(ctx, months); err != nil {
		return res, err
	}

	if res.TotalCustomers, err = s.TotalCustomersByMonth(ctx, months); err != nil {
		return res, err
	}

	if res.Revenue, err = s.RevenueByMonth(ctx, months); err != nil {
		return res, err
	}

	if res.Bookings, err = s.BookingCountByMonth(ctx, months); err != nil {
		return res, err
	}

	if res.Occupancy, err = s.OccupancyByMonth(ctx, months); err != nil {
		return res, err
	}

	if res.NewCustomers, err = s.NewCustomers(ctx, DefaultNewCustomers); err != nil {
		return res, err
	}

	return res, nil
}

// series loads a zero-filled monthly series through the cache. load receives
// the start of the window in the application timezone.
func (s *serviceImpl) series(
	ctx context.Context,
	prefix string,
	months int,
	load func(start time.Time) (map[string]float64, error),
) (res dto.MonthlySeries, err error) {
	months, err = normalizeMonths(months)
	if err != nil {
		return nil, err
	}

	end := timezone.Now()
	cacheKey := shared.BuildCacheKey(prefix, timezone.Format(end, dto.MonthKeyFormat), months)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for report series")

		return res, nil
	}

	values, err := load(WindowStart(end, months))
	if err != nil {
		log.Error().Err(err).Str("series", prefix).Msg("failed to load report series")

		return nil, fmt.Errorf("failed to load %s: %w", prefix, err)
	}

	res = FillMonths(end, months, values)
	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) save(ctx context.Context, key string, value any) {
	if err := s.cache.Save(context.WithoutCancel(ctx), key, value, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Str("cacheKey", key).Msg("failed to save report to cache")
	}
}

// WindowStart is the first instant of the oldest month in a window of months
// ending with end's month.
func WindowStart(end time.Time, months int) time.Time {
	return timezone.StartOfMonth(end).AddDate(0, -(months - 1), 0)
}

// FillMonths returns one entry per month of the window ending with end's
// month, oldest first, taking values by month key and 0 where absent. Keys
// outside the window are ignored.
func FillMonths(end time.Time, months int, values map[string]float64) dto.MonthlySeries {
	start := WindowStart(end, months)
	res := make(dto.MonthlySeries, months)

	for i := range months {
		month := start.AddDate(0, i, 0).Format(dto.MonthKeyFormat)
		res[i] = dto.MonthlyValue{Month: month, Value: values[month]}
	}

	return res
}

func normalizeMonths(months int) (int, error) {
	if months == 0 {
		return DefaultMonths, nil
	}

	if months < 0 || months > MaxMonths {
		return 0, ErrInvalidMonths
	}

	return months, nil
}

func sumByMonth(rows []model.DatedValue, month func(time.Time) string) map[string]float64 {
	values := map[string]float64{}
	for _, row := range rows {
		values[month(row.Date)] += row.Value
	}

	return values
}

// timestampMonth buckets an instant by its month in the application timezone.
func timestampMonth(t time.Time) string {
	return timezone.Format(t, dto.MonthKeyFormat)
}

// dateMonth buckets a calendar date stored as UTC midnight.
func dateMonth(t time.Time) string {
	return t.UTC().Format(dto.MonthKeyFormat)
}

func calendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
