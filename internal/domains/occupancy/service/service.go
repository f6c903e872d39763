package service

import (
	"context"
	"fmt"
	"hoteladmin/infras/database"
	"hoteladmin/infras/otel"
	"hoteladmin/internal/domains/occupancy/model"
	"hoteladmin/internal/domains/occupancy/model/dto"
	"hoteladmin/internal/domains/occupancy/repository"
	"hoteladmin/shared"
	"hoteladmin/shared/cache"
	"hoteladmin/shared/constant"
	gDto "hoteladmin/shared/dto"
	"hoteladmin/shared/failure"
	"hoteladmin/shared/timezone"
	"hoteladmin/shared/validator"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const cacheReportPrefix = "report"

var (
	ErrOccupancyNotFound = failure.NotFound("no occupancy recorded for date")
	ErrInvalidRange      = failure.BadRequestFromString("range end is before range start")
)

var listOrder = gDto.QueryParams{
	SortBy:  model.FieldDate,
	SortDir: gDto.SortDirAsc,
}

type Occupancy interface {
	Upsert(ctx context.Context, req dto.UpsertOccupancyRequest) error
	Get(ctx context.Context, date string) (dto.OccupancyResponse, error)
	List(ctx context.Context, req dto.ListOccupancyRequest) ([]dto.OccupancyResponse, error)
}

type serviceImpl struct {
	repo       repository.Occupancy
	transactor database.Transactor
	cache      cache.Cache
	otel       otel.Otel
}

func New(repo repository.Occupancy, transactor database.Transactor, cache cache.Cache, otel otel.Otel) Occupancy {
	return &serviceImpl{
		repo:       repo,
		transactor: transactor,
		cache:      cache,
		otel:       otel,
	}
}

// Upsert replaces the snapshot for req.Date, inserting it when the date has
// none yet.
func (s *serviceImpl) Upsert(ctx context.Context, req dto.UpsertOccupancyRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Upsert")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return err //nolint:wrapcheck
	}

	occupancy, err := req.ToModel()
	if err != nil {
		return failure.BadRequest(err)
	}

	err = s.transactor.WithTx(ctx, func(tx *sqlx.Tx) error {
		fields := map[string]any{
			model.FieldOccupiedRooms: occupancy.OccupiedRooms,
			model.FieldTotalRooms:    occupancy.TotalRooms,
		}

		affected, txErr := s.repo.UpdateTx(ctx, tx, fields, dateFilter(occupancy.Date))
		if txErr != nil || affected > 0 {
			return txErr //nolint:wrapcheck
		}

		return s.repo.InsertTx(ctx, tx, occupancy) //nolint:wrapcheck
	})
	if err != nil {
		log.Error().Err(err).Str("date", req.Date).Msg("failed to upsert occupancy")

		return fmt.Errorf("failed to upsert occupancy: %w", err)
	}

	shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheReportPrefix)

	return nil
}

func (s *serviceImpl) Get(ctx context.Context, date string) (res dto.OccupancyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateVar(date, "required,datetime=2006-01-02"); err != nil {
		return res, err //nolint:wrapcheck
	}

	day, err := timezone.ParseDate(date)
	if err != nil {
		return res, failure.BadRequest(err)
	}

	occupancy, err := s.repo.Get(ctx, dateFilter(day))
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("failed to get occupancy")

		return res, fmt.Errorf("failed to get occupancy: %w", err)
	}

	if occupancy.ID == 0 {
		return res, ErrOccupancyNotFound
	}

	res.FromModel(occupancy)

	return res, nil
}

// List returns the snapshots within the inclusive range, oldest first.
func (s *serviceImpl) List(ctx context.Context, req dto.ListOccupancyRequest) (res []dto.OccupancyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return nil, err //nolint:wrapcheck
	}

	from, err := timezone.ParseDate(req.From)
	if err != nil {
		return nil, failure.BadRequest(err)
	}

	to, err := timezone.ParseDate(req.To)
	if err != nil {
		return nil, failure.BadRequest(err)
	}

	if to.Before(from) {
		return nil, ErrInvalidRange
	}

	filter := gDto.FilterGroup{}
	filter.Add(
		gDto.Filter{
			ArgName:  "date_from",
			Field:    model.FieldDate,
			Value:    from,
			Operator: gDto.FilterOperatorGreaterEq,
			Table:    model.TableName,
		},
		gDto.Filter{
			ArgName:  "date_to",
			Field:    model.FieldDate,
			Value:    to,
			Operator: gDto.FilterOperatorLessEq,
			Table:    model.TableName,
		},
	)

	models, err := s.repo.GetAll(ctx, listOrder, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to list occupancy")

		return nil, fmt.Errorf("failed to list occupancy: %w", err)
	}

	return dto.FromModels(models), nil
}

func dateFilter(date time.Time) gDto.FilterGroup {
	return shared.FilterByID(date, model.FieldDate, model.TableName)
}
