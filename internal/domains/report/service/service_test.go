package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hoteladmin/config"
	"hoteladmin/infras/otel/mocks"
	reportMocks "hoteladmin/internal/domains/report/mocks"
	"hoteladmin/internal/domains/report/model"
	"hoteladmin/internal/domains/report/model/dto"
	"hoteladmin/internal/domains/report/service"
	"hoteladmin/shared/cache"
	"hoteladmin/shared/timezone"
)

func newService(t *testing.T) (service.Report, *reportMocks.MockReport) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := reportMocks.NewMockReport(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	return service.New(mockRepo, cfg, cache.NewNoopCache(), mocks.NewOtel()), mockRepo
}

// monthsAgo is the tenth of the month k months before now, at noon.
func monthsAgo(k int) time.Time {
	return timezone.StartOfMonth(timezone.Now()).AddDate(0, -k, 9).Add(12 * time.Hour)
}

func monthKey(k int) string {
	return timezone.Format(monthsAgo(k), dto.MonthKeyFormat)
}

func TestFillMonths(t *testing.T) {
	end := time.Date(2025, time.February, 14, 8, 0, 0, 0, timezone.GetLocation())

	tests := []struct {
		name   string
		months int
		values map[string]float64
		want   dto.MonthlySeries
	}{
		{
			name:   "crosses a year boundary",
			months: 4,
			values: map[string]float64{"2024-12": 3, "2025-02": 1},
			want: dto.MonthlySeries{
				{Month: "2024-11", Value: 0},
				{Month: "2024-12", Value: 3},
				{Month: "2025-01", Value: 0},
				{Month: "2025-02", Value: 1},
			},
		},
		{
			name:   "ignores months outside the window",
			months: 1,
			values: map[string]float64{"2024-12": 3, "2025-03": 9},
			want:   dto.MonthlySeries{{Month: "2025-02", Value: 0}},
		},
		{
			name:   "nil values",
			months: 2,
			values: nil,
			want:   dto.MonthlySeries{{Month: "2025-01", Value: 0}, {Month: "2025-02", Value: 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.FillMonths(end, tt.months, tt.values))
		})
	}
}

func TestReportService_RevenueByMonthFillsGaps(t *testing.T) {
	svc, mockRepo := newService(t)

	mockRepo.EXPECT().
		TransactionAmounts(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, since time.Time) ([]model.DatedValue, error) {
			assert.True(t, timezone.StartOfMonth(monthsAgo(5)).Equal(since))

			return []model.DatedValue{
				{Date: monthsAgo(0), Value: 100},
				{Date: monthsAgo(0), Value: 50},
				{Date: monthsAgo(1), Value: 20},
				{Date: monthsAgo(3), Value: 70},
				{Date: monthsAgo(5), Value: 10},
			}, nil
		})

	res, err := svc.RevenueByMonth(context.Background(), 6)
	require.NoError(t, err)

	values := res.ToMap()
	require.Len(t, values, 6)
	assert.Equal(t, monthKey(5), res[0].Month)
	assert.Equal(t, monthKey(0), res[5].Month)
	assert.InDelta(t, 150.0, values[monthKey(0)], 0.001)
	assert.Zero(t, values[monthKey(2)])
	assert.Zero(t, values[monthKey(4)])

	zeros := 0
	for _, v := range values {
		if v == 0 {
			zeros++
		}
	}

	assert.Equal(t, 2, zeros)
}

func TestReportService_TotalCustomersByMonth(t *testing.T) {
	svc, mockRepo := newService(t)

	mockRepo.EXPECT().CustomerSignups(gomock.Any(), gomock.Any()).Return([]model.DatedValue{
		{Date: monthsAgo(2), Value: 1},
		{Date: monthsAgo(2), Value: 1},
		{Date: monthsAgo(0), Value: 1},
	}, nil)
	mockRepo.EXPECT().CustomersBefore(gomock.Any(), gomock.Any()).Return(10, nil)

	res, err := svc.TotalCustomersByMonth(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, dto.MonthlySeries{
		{Month: monthKey(2), Value: 12},
		{Month: monthKey(1), Value: 12},
		{Month: monthKey(0), Value: 13},
	}, res)
}

func TestReportService_OccupancyByMonth(t *testing.T) {
	svc, mockRepo := newService(t)

	day := func(k int) time.Time { return timezone.Date(monthsAgo(k)) }

	mockRepo.EXPECT().Occupancy(gomock.Any(), gomock.Any()).Return([]model.DailyOccupancy{
		{Date: day(1), OccupiedRooms: 20, TotalRooms: 40},
		{Date: day(1).AddDate(0, 0, 1), OccupiedRooms: 30, TotalRooms: 40},
		{Date: day(0), OccupiedRooms: 40, TotalRooms: 40},
	}, nil)

	res, err := svc.OccupancyByMonth(context.Background(), 3)
	require.NoError(t, err)

	values := res.ToMap()
	assert.Zero(t, values[monthKey(2)])
	assert.InDelta(t, 62.5, values[monthKey(1)], 0.001)
	assert.InDelta(t, 100.0, values[monthKey(0)], 0.001)
}

func TestReportService_Validation(t *testing.T) {
	svc, mockRepo := newService(t)
	ctx := context.Background()

	_, err := svc.BookingCountByMonth(ctx, -1)
	assert.ErrorIs(t, err, service.ErrInvalidMonths)

	_, err = svc.CustomerGrowthByMonth(ctx, service.MaxMonths+1)
	assert.ErrorIs(t, err, service.ErrInvalidMonths)

	_, err = svc.NewCustomers(ctx, service.MaxNewCustomers+1)
	assert.ErrorIs(t, err, service.ErrInvalidLimit)

	mockRepo.EXPECT().BookingCheckins(gomock.Any(), gomock.Any()).Return(nil, nil)

	res, err := svc.BookingCountByMonth(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, res, service.DefaultMonths)
}

func TestReportService_Dashboard(t *testing.T) {
	svc, mockRepo := newService(t)

	mockRepo.EXPECT().Totals(gomock.Any()).Return(model.Totals{
		TotalBookingsCost:   900,
		TotalReservations:   4,
		TotalRevenue:        450,
		ActiveCustomerCount: 3,
	}, nil)

	res, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dto.DashboardResponse{
		TotalBookingsCost:   900,
		TotalReservations:   4,
		TotalRevenue:        450,
		ActiveCustomerCount: 3,
	}, res)

	mockRepo.EXPECT().Totals(gomock.Any()).Return(model.Totals{}, errors.New("no route to host"))

	_, err = svc.Dashboard(context.Background())
	assert.Error(t, err)
}
