package service

import (
	"context"
	"fmt"
	"hoteladmin/infras/otel"
	"hoteladmin/internal/domains/transaction/model"
	"hoteladmin/internal/domains/transaction/model/dto"
	"hoteladmin/internal/domains/transaction/repository"
	"hoteladmin/shared"
	"hoteladmin/shared/cache"
	"hoteladmin/shared/constant"
	"hoteladmin/shared/dberr"
	gDto "hoteladmin/shared/dto"
	"hoteladmin/shared/failure"
	"hoteladmin/shared/validator"

	"github.com/rs/zerolog/log"
)

const cacheReportPrefix = "report"

var ErrUnknownReference = failure.NotFound("customer or reservation not found")

var listOrder = gDto.QueryParams{
	SortBy:  model.FieldTransactionDate + " " + gDto.SortDirDesc + ", " + model.FieldID,
	SortDir: gDto.SortDirDesc,
}

type Transaction interface {
	Record(ctx context.Context, req dto.RecordTransactionRequest) error
	ListByReservation(ctx context.Context, reservationID string) ([]dto.TransactionResponse, error)
	ListByCustomer(ctx context.Context, customerID string) ([]dto.TransactionResponse, error)
}

type serviceImpl struct {
	repo  repository.Transaction
	cache cache.Cache
	otel  otel.Otel
}

func New(repo repository.Transaction, cache cache.Cache, otel otel.Otel) Transaction {
	return &serviceImpl{
		repo:  repo,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Record(ctx context.Context, req dto.RecordTransactionRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Record")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return err //nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel()); err != nil {
		if dberr.IsForeignKey(err) {
			return ErrUnknownReference
		}

		log.Error().Err(err).Msg("failed to record transaction")

		return fmt.Errorf("failed to record transaction: %w", err)
	}

	shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheReportPrefix)

	return nil
}

func (s *serviceImpl) ListByReservation(ctx context.Context, reservationID string) ([]dto.TransactionResponse, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListByReservation")
	defer scope.End()

	return s.list(ctx, model.FieldReservationID, reservationID)
}

func (s *serviceImpl) ListByCustomer(ctx context.Context, customerID string) ([]dto.TransactionResponse, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListByCustomer")
	defer scope.End()

	return s.list(ctx, model.FieldCustomerID, customerID)
}

func (s *serviceImpl) list(ctx context.Context, field, id string) ([]dto.TransactionResponse, error) {
	models, err := s.repo.GetAll(ctx, listOrder, shared.FilterByID(id, field, model.TableName))
	if err != nil {
		log.Error().Err(err).Str(field, id).Msg("failed to list transactions")

		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return dto.FromModels(models), nil
}
