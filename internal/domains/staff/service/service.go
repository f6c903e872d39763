package service

import (
	"context"
	"fmt"
	"hoteladmin/config"
	"hoteladmin/infras/otel"
	"hoteladmin/internal/domains/staff/model"
	"hoteladmin/internal/domains/staff/model/dto"
	"hoteladmin/internal/domains/staff/repository"
	"hoteladmin/shared"
	"hoteladmin/shared/cache"
	"hoteladmin/shared/constant"
	"hoteladmin/shared/dberr"
	gDto "hoteladmin/shared/dto"
	"hoteladmin/shared/failure"
	"hoteladmin/shared/password"
	"hoteladmin/shared/validator"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	cachePrefix       = "staff"
	cacheListStaff    = "staff:list"
	cacheSearchStaff  = "staff:search"
	cacheReportPrefix = "report"
)

var (
	ErrStaffNotFound = failure.NotFound("staff member not found")
	ErrStaffExists   = failure.Conflict("staff id or email already exists")
)

var listOrder = gDto.QueryParams{
	SortBy:  model.FieldFullName + " " + gDto.SortDirAsc + ", " + model.FieldID,
	SortDir: gDto.SortDirAsc,
}

type Staff interface {
	List(ctx context.Context, status gDto.StatusFilter) ([]dto.StaffResponse, error)
	Search(ctx context.Context, query string) ([]dto.StaffResponse, error)
	Get(ctx context.Context, id string) (dto.StaffResponse, error)
	Add(ctx context.Context, req dto.CreateStaffRequest) error
	Update(ctx context.Context, req dto.UpdateStaffRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Staff
	cfg   *config.Config
	cache cache.Cache
	otel  otel.Otel
}

func New(repo repository.Staff, cfg *config.Config, cache cache.Cache, otel otel.Otel) Staff {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) List(ctx context.Context, status gDto.StatusFilter) (res []dto.StaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !status.Valid() {
		return nil, failure.InvalidStatusFilter
	}

	status = status.Normalize()
	cacheKey := shared.BuildCacheKeyWithQuery(cacheListStaff, status)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for staff")

		return res, nil
	}

	filter := gDto.FilterGroup{}
	if value := status.Status(); value != constant.Empty {
		filter.Add(gDto.Filter{
			Field:    model.FieldStatus,
			Value:    value,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	models, err := s.repo.GetAll(ctx, listOrder, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to list staff")

		return nil, fmt.Errorf("failed to list staff: %w", err)
	}

	res = dto.FromModels(models)

	if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save staff to cache")
	}

	return res, nil
}

func (s *serviceImpl) Search(ctx context.Context, query string) (res []dto.StaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Search")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query = strings.TrimSpace(query)
	if query == constant.Empty {
		return s.List(ctx, constant.StatusFilterAll)
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheSearchStaff, strings.ToLower(query))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for staff search")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, listOrder, shared.SearchFilter(query, model.SearchFields...))
	if err != nil {
		log.Error().Err(err).Msg("failed to search staff")

		return nil, fmt.Errorf("failed to search staff: %w", err)
	}

	res = dto.FromModels(models)

	if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save staff search to cache")
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.StaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	staff, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("staff_id", id).Msg("failed to get staff member")

		return res, fmt.Errorf("failed to get staff member: %w", err)
	}

	if staff.StaffID == constant.Empty {
		return res, ErrStaffNotFound
	}

	res.FromModel(staff)

	return res, nil
}

func (s *serviceImpl) Add(ctx context.Context, req dto.CreateStaffRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Add")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return err //nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash staff password")

		return fmt.Errorf("failed to hash staff password: %w", err)
	}

	if err = s.repo.Insert(ctx, req.ToModel(hashedPassword)); err != nil {
		if dberr.IsDuplicateKey(err) {
			return ErrStaffExists
		}

		log.Error().Err(err).Msg("failed to add staff member")

		return fmt.Errorf("failed to add staff member: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

// Update changes only the columns set in req. A new password is hashed
// before it is stored.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateStaffRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return failure.EmptyUpdate
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return err //nolint:wrapcheck
	}

	req.Normalize()
	mod := shared.TransformFields(req)

	if req.Password != nil {
		hashedPassword, err := password.Hash(*req.Password)
		if err != nil {
			log.Error().Err(err).Msg("failed to hash staff password")

			return fmt.Errorf("failed to hash staff password: %w", err)
		}

		mod[model.FieldPasswordHash] = hashedPassword
	}

	affected, err := s.repo.Update(ctx, mod, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		if dberr.IsDuplicateKey(err) {
			return ErrStaffExists
		}

		log.Error().Err(err).Str("staff_id", id).Msg("failed to update staff member")

		return fmt.Errorf("failed to update staff member: %w", err)
	}

	if affected == 0 {
		return ErrStaffNotFound
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	affected, err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("staff_id", id).Msg("failed to delete staff member")

		return fmt.Errorf("failed to delete staff member: %w", err)
	}

	if affected == 0 {
		return ErrStaffNotFound
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cachePrefix, cacheReportPrefix)
}
