package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hoteladmin/infras/database"
	"hoteladmin/infras/otel"
	customerModel "hoteladmin/internal/domains/customer/model"
	"hoteladmin/internal/domains/report/model"
	reservationModel "hoteladmin/internal/domains/reservation/model"
	"hoteladmin/shared/constant"
	"hoteladmin/shared/dberr"
	"hoteladmin/shared/logger"
	"hoteladmin/shared/timezone"
	"time"
)

const (
	queryTotals = `SELECT
	(SELECT COALESCE(SUM(booking_amount), 0) FROM reservations WHERE payment_status != :cancelled) AS total_bookings_cost,
	(SELECT COUNT(*) FROM reservations) AS total_reservations,
	(SELECT COALESCE(SUM(amount), 0) FROM transactions) AS total_revenue,
	(SELECT COUNT(*) FROM customers WHERE status = :active) AS active_customer_count`

	queryCustomerSignups   = `SELECT created_at AS date, 1 AS value FROM customers WHERE created_at >= :since`
	queryCustomersBefore   = `SELECT COUNT(*) FROM customers WHERE created_at < :since`
	queryTransactionAmount = `SELECT transaction_date AS date, amount AS value FROM transactions WHERE transaction_date >= :since`
	queryBookingCheckins   = `SELECT checkin_date AS date, 1 AS value FROM reservations WHERE checkin_date >= :since`
	queryOccupancy         = `SELECT occupancy_date, occupied_rooms, total_rooms FROM room_occupancy WHERE occupancy_date >= :since`
	queryRecentCustomers   = `SELECT customer_id, full_name, email, phone, created_at FROM customers
	ORDER BY created_at DESC, customer_id DESC LIMIT :limit`
)

// Report runs the read-only aggregate queries. Time filters are inclusive
// lower bounds; bucketing into months is done by the caller.
type Report interface {
	Totals(ctx context.Context) (model.Totals, error)
	CustomerSignups(ctx context.Context, since time.Time) ([]model.DatedValue, error)
	CustomersBefore(ctx context.Context, before time.Time) (int, error)
	TransactionAmounts(ctx context.Context, since time.Time) ([]model.DatedValue, error)
	BookingCheckins(ctx context.Context, since time.Time) ([]model.DatedValue, error)
	Occupancy(ctx context.Context, since time.Time) ([]model.DailyOccupancy, error)
	RecentCustomers(ctx context.Context, limit int) ([]model.NewCustomer, error)
}

type repositoryImpl struct {
	db   *database.Connection
	otel otel.Otel
}

func New(db *database.Connection, otel otel.Otel) Report {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (r *repositoryImpl) Totals(ctx context.Context) (model.Totals, error) {
	var totals model.Totals

	err := r.get(ctx, "Totals", queryTotals, map[string]any{
		"cancelled": reservationModel.PaymentCancelled,
		"active":    customerModel.StatusActive,
	}, &totals)

	return totals, err
}

func (r *repositoryImpl) CustomerSignups(ctx context.Context, since time.Time) ([]model.DatedValue, error) {
	rows := []model.DatedValue{}
	err := r.selectAll(ctx, "CustomerSignups", queryCustomerSignups, map[string]any{"since": since}, &rows)

	return rows, err
}

func (r *repositoryImpl) CustomersBefore(ctx context.Context, before time.Time) (int, error) {
	var count int
	err := r.get(ctx, "CustomersBefore", queryCustomersBefore, map[string]any{"since": before}, &count)

	return count, err
}

func (r *repositoryImpl) TransactionAmounts(ctx context.Context, since time.Time) ([]model.DatedValue, error) {
	rows := []model.DatedValue{}
	err := r.selectAll(ctx, "TransactionAmounts", queryTransactionAmount, map[string]any{"since": since}, &rows)

	return rows, err
}

// BookingCheckins expects since as a calendar date at UTC midnight.
func (r *repositoryImpl) BookingCheckins(ctx context.Context, since time.Time) ([]model.DatedValue, error) {
	rows := []model.DatedValue{}
	err := r.selectAll(ctx, "BookingCheckins", queryBookingCheckins, map[string]any{"since": since}, &rows)

	return rows, err
}

// Occupancy expects since as a calendar date at UTC midnight.
func (r *repositoryImpl) Occupancy(ctx context.Context, since time.Time) ([]model.DailyOccupancy, error) {
	rows := []model.DailyOccupancy{}
	err := r.selectAll(ctx, "Occupancy", queryOccupancy, map[string]any{"since": since}, &rows)

	return rows, err
}

func (r *repositoryImpl) RecentCustomers(ctx context.Context, limit int) ([]model.NewCustomer, error) {
	rows := []model.NewCustomer{}
	err := r.selectAll(ctx, "RecentCustomers", queryRecentCustomers, map[string]any{"limit": limit}, &rows)

	return rows, err
}

func (r *repositoryImpl) get(ctx context.Context, method, query string, args map[string]any, dest any) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+"."+method)
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	db, err := r.db.Handle(ctx)
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to acquire connection (%s): %w", model.EntityName, err)
	}

	prepare, err := db.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, dberr.Map(err))
	}
	defer prepare.Close()

	if err = prepare.GetContext(ctx, dest, timezone.StorableArgs(args)); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to get %s (%s): %w", method, model.EntityName, dberr.Map(err))
	}

	return nil
}

func (r *repositoryImpl) selectAll(ctx context.Context, method, query string, args map[string]any, dest any) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+"."+method)
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	db, err := r.db.Handle(ctx)
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to acquire connection (%s): %w", model.EntityName, err)
	}

	prepare, err := db.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, dberr.Map(err))
	}
	defer prepare.Close()

	if err = prepare.SelectContext(ctx, dest, timezone.StorableArgs(args)); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to select %s (%s): %w", method, model.EntityName, dberr.Map(err))
	}

	return nil
}
