package service

import (
	"context"
	"database/sql"
	"fmt"
	"hoteladmin/config"
	"hoteladmin/infras/database"
	"hoteladmin/infras/otel"
	"hoteladmin/internal/domains/reservation/model"
	"hoteladmin/internal/domains/reservation/model/dto"
	"hoteladmin/internal/domains/reservation/repository"
	transactionModel "hoteladmin/internal/domains/transaction/model"
	transactionRepo "hoteladmin/internal/domains/transaction/repository"
	"hoteladmin/shared"
	"hoteladmin/shared/cache"
	"hoteladmin/shared/constant"
	"hoteladmin/shared/dberr"
	gDto "hoteladmin/shared/dto"
	"hoteladmin/shared/failure"
	"hoteladmin/shared/timezone"
	"hoteladmin/shared/validator"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cachePrefix             = "reservation"
	cacheGetReservation     = "reservation:get"
	cacheListReservations   = "reservation:list"
	cacheSearchReservations = "reservation:search"
	cacheReportPrefix       = "report"

	FilterAll = "all"

	monthFormat = "2006-01"
)

var (
	ErrReservationNotFound   = failure.NotFound("reservation not found")
	ErrReservationExists     = failure.Conflict("reservation id already exists")
	ErrCheckinInPast         = failure.BadRequestFromString("checkin date cannot be in the past")
	ErrCheckoutBeforeCheckin = failure.BadRequestFromString("checkout date cannot be before checkin date")
	ErrInvalidFulfillment    = failure.BadRequestFromString("invalid fulfillment status filter")
	ErrUnknownReference      = failure.NotFound("user or customer not found")
)

var listOrder = gDto.QueryParams{
	SortBy:  model.FieldCheckinDate + " " + gDto.SortDirDesc + ", " + model.FieldID,
	SortDir: gDto.SortDirDesc,
}

var fulfillmentFilters = map[string]string{
	"confirmed": model.FulfillmentConfirmed,
	"pending":   model.FulfillmentPending,
	"cancelled": model.FulfillmentCancelled,
}

// Reservation manages the bookings owned by one user. Every operation is
// scoped by userID so one user never sees or changes another user's rows.
type Reservation interface {
	List(ctx context.Context, userID int64, fulfillment string) ([]dto.ReservationResponse, error)
	Search(ctx context.Context, userID int64, query string) ([]dto.ReservationResponse, error)
	Get(ctx context.Context, userID int64, id string) (dto.ReservationResponse, error)
	Create(ctx context.Context, userID int64, req dto.CreateReservationRequest) error
	Update(ctx context.Context, userID int64, id string, req dto.UpdateReservationRequest) error
	Delete(ctx context.Context, userID int64, id string) error
}

type serviceImpl struct {
	repo       repository.Reservation
	txRepo     transactionRepo.Transaction
	transactor database.Transactor
	cfg        *config.Config
	cache      cache.Cache
	otel       otel.Otel
}

func New(
	repo repository.Reservation,
	txRepo transactionRepo.Transaction,
	transactor database.Transactor,
	cfg *config.Config,
	cache cache.Cache,
	otel otel.Otel,
) Reservation {
	return &serviceImpl{
		repo:       repo,
		txRepo:     txRepo,
		transactor: transactor,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

// List returns the user's reservations, newest checkin first. fulfillment is
// "all" (or empty), confirmed, pending or cancelled, in any case.
func (s *serviceImpl) List(ctx context.Context, userID int64, fulfillment string) (res []dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	fulfillment = strings.ToLower(strings.TrimSpace(fulfillment))
	if fulfillment == constant.Empty {
		fulfillment = FilterAll
	}

	status, ok := fulfillmentFilters[fulfillment]
	if !ok && fulfillment != FilterAll {
		return nil, ErrInvalidFulfillment
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheListReservations, userScope(userID, fulfillment))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservations")

		return res, nil
	}

	filter := ownerFilter(userID)
	if ok {
		filter.Add(gDto.Filter{
			Field:    model.FieldFulfillmentStatus,
			Value:    status,
			Operator: gDto.FilterOperatorEqFold,
			Table:    model.TableName,
		})
	}

	models, err := s.repo.GetAll(ctx, listOrder, filter)
	if err != nil {
		log.Error().Err(err).Int64("user_id", userID).Msg("failed to list reservations")

		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}

	res = dto.FromModels(models)
	s.save(ctx, cacheKey, res)

	return res, nil
}

// Search matches query against the id and guest name. A query shaped like
// YYYY-MM-DD or YYYY-MM also matches that check-in day or month. A blank
// query lists every reservation of the user.
func (s *serviceImpl) Search(ctx context.Context, userID int64, query string) (res []dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Search")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query = strings.TrimSpace(query)
	if query == constant.Empty {
		return s.List(ctx, userID, FilterAll)
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheSearchReservations, userScope(userID, strings.ToLower(query)))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation search")

		return res, nil
	}

	search := shared.SearchFilter(query, model.SearchFields...)
	if checkin, ok := checkinFilter(query); ok {
		search.Add(checkin)
	}

	filter := ownerFilter(userID)
	filter.Add(search)

	models, err := s.repo.GetAll(ctx, listOrder, filter)
	if err != nil {
		log.Error().Err(err).Int64("user_id", userID).Msg("failed to search reservations")

		return nil, fmt.Errorf("failed to search reservations: %w", err)
	}

	res = dto.FromModels(models)
	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, userID int64, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetReservation, userScope(userID, id))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation")

		return res, nil
	}

	reservation, err := s.get(ctx, userID, id)
	if err != nil {
		return res, err
	}

	res.FromModel(reservation)
	s.save(ctx, cacheKey, res)

	return res, nil
}

// Create books a reservation for userID. When req.Payment is set the
// payment transaction is written in the same database transaction.
func (s *serviceImpl) Create(ctx context.Context, userID int64, req dto.CreateReservationRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return err //nolint:wrapcheck
	}

	reservation, err := req.ToModel(userID)
	if err != nil {
		return failure.BadRequest(err)
	}

	if err = checkCheckin(reservation.CheckinDate); err != nil {
		return err
	}

	if err = checkCheckout(reservation); err != nil {
		return err
	}

	if req.Payment == nil {
		err = s.repo.Insert(ctx, reservation)
	} else {
		err = s.transactor.WithTx(ctx, func(tx *sqlx.Tx) error {
			if txErr := s.repo.InsertTx(ctx, tx, reservation); txErr != nil {
				return txErr //nolint:wrapcheck
			}

			return s.txRepo.InsertTx(ctx, tx, paymentModel(reservation, req.Payment)) //nolint:wrapcheck
		})
	}

	if err != nil {
		switch {
		case dberr.IsDuplicateKey(err):
			return ErrReservationExists
		case dberr.IsForeignKey(err):
			return ErrUnknownReference
		}

		log.Error().Err(err).Str("reservation_id", reservation.ReservationID).Msg("failed to create reservation")

		return fmt.Errorf("failed to create reservation: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

// Update changes the set fields of a reservation owned by userID. Date
// changes are checked against the stored dates.
func (s *serviceImpl) Update(ctx context.Context, userID int64, id string, req dto.UpdateReservationRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return failure.EmptyUpdate
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return err //nolint:wrapcheck
	}

	fields, err := req.ToFields()
	if err != nil {
		return failure.BadRequest(err)
	}

	if req.CheckinDate != nil || req.CheckoutDate != nil {
		current, getErr := s.get(ctx, userID, id)
		if getErr != nil {
			return getErr
		}

		updated := merged(current, fields)

		if req.CheckinDate != nil {
			if err = checkCheckin(updated.CheckinDate); err != nil {
				return err
			}
		}

		if err = checkCheckout(updated); err != nil {
			return err
		}
	}

	affected, err := s.repo.Update(ctx, fields, scopedFilter(userID, id))
	if err != nil {
		log.Error().Err(err).Str("reservation_id", id).Msg("failed to update reservation")

		return fmt.Errorf("failed to update reservation: %w", err)
	}

	if affected == 0 {
		return ErrReservationNotFound
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, userID int64, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	affected, err := s.repo.Delete(ctx, scopedFilter(userID, id))
	if err != nil {
		log.Error().Err(err).Str("reservation_id", id).Msg("failed to delete reservation")

		return fmt.Errorf("failed to delete reservation: %w", err)
	}

	if affected == 0 {
		return ErrReservationNotFound
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) get(ctx context.Context, userID int64, id string) (model.Reservation, error) {
	reservation, err := s.repo.Get(ctx, scopedFilter(userID, id))
	if err != nil {
		log.Error().Err(err).Str("reservation_id", id).Msg("failed to get reservation")

		return reservation, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ReservationID == constant.Empty {
		return reservation, ErrReservationNotFound
	}

	return reservation, nil
}

func (s *serviceImpl) save(ctx context.Context, key string, value any) {
	if err := s.cache.Save(context.WithoutCancel(ctx), key, value, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Str("cacheKey", key).Msg("failed to save reservations to cache")
	}
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cachePrefix, cacheReportPrefix)
}

func ownerFilter(userID int64) gDto.FilterGroup {
	return shared.FilterByID(userID, model.FieldUserID, model.TableName)
}

func scopedFilter(userID int64, id string) gDto.FilterGroup {
	filter := ownerFilter(userID)
	filter.Add(gDto.Filter{
		Field:    model.FieldID,
		Value:    id,
		Operator: gDto.FilterOperatorEq,
		Table:    model.TableName,
	})

	return filter
}

// checkinFilter matches the check-in day for "2006-01-02" and the check-in
// month for "2006-01".
func checkinFilter(query string) (gDto.FilterGroup, bool) {
	var from, to time.Time

	if day, err := timezone.ParseDate(query); err == nil {
		from, to = day, day.AddDate(0, 0, 1)
	} else if month, err := time.ParseInLocation(monthFormat, query, time.UTC); err == nil {
		from, to = month, month.AddDate(0, 1, 0)
	} else {
		return gDto.FilterGroup{}, false
	}

	return gDto.FilterGroup{Filters: []any{
		gDto.Filter{ArgName: "q_checkin_from", Field: model.FieldCheckinDate, Value: from, Operator: gDto.FilterOperatorGreaterEq},
		gDto.Filter{ArgName: "q_checkin_to", Field: model.FieldCheckinDate, Value: to, Operator: gDto.FilterOperatorLess},
	}}, true
}

func userScope(userID int64, value string) string {
	return fmt.Sprintf("%d:%s", userID, value)
}

func checkCheckin(checkin time.Time) error {
	if checkin.Before(timezone.Date(timezone.Now())) {
		return ErrCheckinInPast
	}

	return nil
}

func checkCheckout(reservation model.Reservation) error {
	if reservation.CheckoutDate.Valid && reservation.CheckoutDate.Time.Before(reservation.CheckinDate) {
		return ErrCheckoutBeforeCheckin
	}

	return nil
}

func merged(current model.Reservation, fields map[string]any) model.Reservation {
	if checkin, ok := fields[model.FieldCheckinDate].(time.Time); ok {
		current.CheckinDate = checkin
	}

	if checkout, ok := fields[model.FieldCheckoutDate].(sql.NullTime); ok {
		current.CheckoutDate = checkout
	}

	return current
}

func paymentModel(reservation model.Reservation, payment *dto.PaymentRequest) transactionModel.Transaction {
	tx := transactionModel.Transaction{
		ReservationID:   sql.NullString{String: reservation.ReservationID, Valid: true},
		Amount:          payment.Amount,
		TransactionDate: timezone.Now(),
	}

	if customerID := strings.TrimSpace(payment.CustomerID); customerID != constant.Empty {
		tx.CustomerID = sql.NullString{String: customerID, Valid: true}
	}

	return tx
}
