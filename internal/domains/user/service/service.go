package service

import (
	"context"
	"fmt"
	"hoteladmin/infras/otel"
	"hoteladmin/internal/domains/user/model"
	"hoteladmin/internal/domains/user/model/dto"
	"hoteladmin/internal/domains/user/repository"
	"hoteladmin/shared"
	"hoteladmin/shared/constant"
	"hoteladmin/shared/failure"
	"hoteladmin/shared/timezone"
	"hoteladmin/shared/validator"

	"github.com/rs/zerolog/log"
)

var ErrUserNotFound = failure.NotFound("user not found")

type User interface {
	Get(ctx context.Context, id int64) (dto.UserResponse, error)
	Update(ctx context.Context, req dto.UpdateUserRequest, id int64) error
	Activate(ctx context.Context, id int64) error
	Deactivate(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo repository.User
	otel otel.Otel
}

func New(repo repository.User, otel otel.Otel) User {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("user_id", id).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if !user.Exists() {
		return res, ErrUserNotFound
	}

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateUserRequest, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return err //nolint:wrapcheck
	}

	if req.FullName == nil && req.Gender == nil {
		return failure.EmptyUpdate
	}

	affected, err := s.repo.Update(ctx, shared.TransformFields(req), shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("user_id", id).Msg("failed to update user")

		return fmt.Errorf("failed to update user: %w", err)
	}

	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// Activate re-enables a soft-disabled account.
func (s *serviceImpl) Activate(ctx context.Context, id int64) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Activate")
	defer scope.End()

	return s.setActive(ctx, id, true)
}

// Deactivate soft-disables an account. Its sessions stop verifying at once.
func (s *serviceImpl) Deactivate(ctx context.Context, id int64) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Deactivate")
	defer scope.End()

	return s.setActive(ctx, id, false)
}

func (s *serviceImpl) setActive(ctx context.Context, id int64, active bool) error {
	mod := map[string]any{
		model.FieldIsActive:     active,
		constant.FieldUpdatedAt: timezone.Now(),
	}

	affected, err := s.repo.Update(ctx, mod, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("user_id", id).Bool("active", active).Msg("failed to change user status")

		return fmt.Errorf("failed to change user status: %w", err)
	}

	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}
