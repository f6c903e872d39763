package service

import (
	"context"
	"fmt"
	"hoteladmin/infras/otel"
	"hoteladmin/internal/domains/authlog/model"
	"hoteladmin/internal/domains/authlog/model/dto"
	"hoteladmin/internal/domains/authlog/repository"
	"hoteladmin/shared/constant"
	gDto "hoteladmin/shared/dto"
	"hoteladmin/shared/validator"

	"github.com/rs/zerolog/log"
)

// Logger writes the authentication audit trail.
type Logger interface {
	// Log appends one entry. Failures are reported to the operational log
	// only and never reach the caller.
	Log(ctx context.Context, req dto.LogRequest)
	List(ctx context.Context, req dto.ListRequest) ([]dto.AuthLogResponse, error)
	Count(ctx context.Context, action string) (int, error)
}

type serviceImpl struct {
	repo repository.AuthLog
	otel otel.Otel
}

func New(repo repository.AuthLog, otel otel.Otel) Logger {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Log(ctx context.Context, req dto.LogRequest) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Log")
	defer scope.End()

	if err := s.repo.Insert(ctx, req.ToModel()); err != nil {
		scope.TraceError(err)
		log.Error().
			Err(err).
			Str("action", req.Action).
			Str("email", req.Email).
			Msg("failed to write auth log")
	}
}

func (s *serviceImpl) List(ctx context.Context, req dto.ListRequest) (res []dto.AuthLogResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return nil, err //nolint:wrapcheck
	}

	limit := req.Limit
	if limit == 0 {
		limit = constant.DefaultValueLimit
	}

	params := gDto.QueryParams{
		Limit:   limit,
		SortBy:  model.FieldCreatedAt + " " + gDto.SortDirDesc + ", " + model.FieldID,
		SortDir: gDto.SortDirDesc,
	}

	models, err := s.repo.GetAll(ctx, params, filterFor(req.Email, req.Action))
	if err != nil {
		log.Error().Err(err).Msg("failed to list auth logs")

		return nil, fmt.Errorf("failed to list auth logs: %w", err)
	}

	return dto.FromModels(models), nil
}

func (s *serviceImpl) Count(ctx context.Context, action string) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err = s.repo.Count(ctx, filterFor(constant.Empty, action))
	if err != nil {
		log.Error().Err(err).Msg("failed to count auth logs")

		return 0, fmt.Errorf("failed to count auth logs: %w", err)
	}

	return total, nil
}

func filterFor(email, action string) gDto.FilterGroup {
	filter := gDto.FilterGroup{}

	if email != constant.Empty {
		filter.Add(gDto.Filter{
			Field:    model.FieldEmail,
			Value:    email,
			Operator: gDto.FilterOperatorEqFold,
			Table:    model.TableName,
		})
	}

	if action != constant.Empty {
		filter.Add(gDto.Filter{
			Field:    model.FieldAction,
			Value:    action,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	return filter
}
