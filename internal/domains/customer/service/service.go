package service

import (
	"context"
	"fmt"
	"hoteladmin/config"
	"hoteladmin/infras/otel"
	"hoteladmin/internal/domains/customer/model"
	"hoteladmin/internal/domains/customer/model/dto"
	"hoteladmin/internal/domains/customer/repository"
	"hoteladmin/shared"
	"hoteladmin/shared/cache"
	"hoteladmin/shared/constant"
	"hoteladmin/shared/dberr"
	gDto "hoteladmin/shared/dto"
	"hoteladmin/shared/failure"
	"hoteladmin/shared/validator"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	cachePrefix          = "customer"
	cacheGetCustomer     = "customer:get"
	cacheListCustomers   = "customer:list"
	cacheSearchCustomers = "customer:search"
	cacheReportPrefix    = "report"
)

var (
	ErrCustomerNotFound = failure.NotFound("customer not found")
	ErrCustomerExists   = failure.Conflict("customer id or email already exists")
)

var listOrder = gDto.QueryParams{
	SortBy:  model.FieldFullName + " " + gDto.SortDirAsc + ", " + model.FieldID,
	SortDir: gDto.SortDirAsc,
}

type Customer interface {
	List(ctx context.Context, status gDto.StatusFilter) ([]dto.CustomerResponse, error)
	Search(ctx context.Context, query string) ([]dto.CustomerResponse, error)
	Get(ctx context.Context, id string) (dto.CustomerResponse, error)
	Add(ctx context.Context, req dto.CreateCustomerRequest) error
	Update(ctx context.Context, req dto.UpdateCustomerRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Customer
	cfg   *config.Config
	cache cache.Cache
	otel  otel.Otel
}

func New(repo repository.Customer, cfg *config.Config, cache cache.Cache, otel otel.Otel) Customer {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// List returns customers ordered by name. "all" (or empty) skips the status
// predicate.
func (s *serviceImpl) List(ctx context.Context, status gDto.StatusFilter) (res []dto.CustomerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !status.Valid() {
		return nil, failure.InvalidStatusFilter
	}

	status = status.Normalize()
	cacheKey := shared.BuildCacheKeyWithQuery(cacheListCustomers, status)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for customers")

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
		log.Error().Err(err).Msg("failed to list customers")

		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	res = dto.FromModels(models)
	s.save(ctx, cacheKey, res)

	return res, nil
}

// Search matches query as a case-insensitive substring of any searchable
// column. A blank query lists every customer.
func (s *serviceImpl) Search(ctx context.Context, query string) (res []dto.CustomerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Search")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query = strings.TrimSpace(query)
	if query == constant.Empty {
		return s.List(ctx, constant.StatusFilterAll)
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheSearchCustomers, strings.ToLower(query))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for customer search")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, listOrder, shared.SearchFilter(query, model.SearchFields...))
	if err != nil {
		log.Error().Err(err).Msg("failed to search customers")

		return nil, fmt.Errorf("failed to search customers: %w", err)
	}

	res = dto.FromModels(models)
	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.CustomerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetCustomer, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for customer")

		return res, nil
	}

	customer, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("customer_id", id).Msg("failed to get customer")

		return res, fmt.Errorf("failed to get customer: %w", err)
	}

	if customer.CustomerID == constant.Empty {
		return res, ErrCustomerNotFound
	}

	res.FromModel(customer)
	s.save(ctx, cacheKey, res)

	return res, nil
}

// Add inserts a customer under the caller supplied id. An existing id or
// email is rejected and the stored row is left unchanged.
func (s *serviceImpl) Add(ctx context.Context, req dto.CreateCustomerRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Add")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return err //nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel()); err != nil {
		if dberr.IsDuplicateKey(err) {
			return ErrCustomerExists
		}

		log.Error().Err(err).Msg("failed to add customer")

		return fmt.Errorf("failed to add customer: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

// Update changes only the columns set in req.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateCustomerRequest, id string) (err error) {
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

	affected, err := s.repo.Update(ctx, shared.TransformFields(req), shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		if dberr.IsDuplicateKey(err) {
			return ErrCustomerExists
		}

		log.Error().Err(err).Str("customer_id", id).Msg("failed to update customer")

		return fmt.Errorf("failed to update customer: %w", err)
	}

	if affected == 0 {
		return ErrCustomerNotFound
	}

	s.invalidate(ctx)

	return nil
}

// Delete removes the customer. ErrCustomerNotFound reports a no-op delete.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	affected, err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("customer_id", id).Msg("failed to delete customer")

		return fmt.Errorf("failed to delete customer: %w", err)
	}

	if affected == 0 {
		return ErrCustomerNotFound
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) save(ctx context.Context, key string, value any) {
	if err := s.cache.Save(context.WithoutCancel(ctx), key, value, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Str("cacheKey", key).Msg("failed to save customers to cache")
	}
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cachePrefix, cacheReportPrefix)
}
