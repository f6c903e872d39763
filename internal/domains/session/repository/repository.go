package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hoteladmin/infras/database"
	"hoteladmin/infras/otel"
	"hoteladmin/internal/domains/session/model"
	userModel "hoteladmin/internal/domains/user/model"
	"hoteladmin/shared/constant"
	gDto "hoteladmin/shared/dto"
	gRepo "hoteladmin/shared/repository"
	"time"
)

type Session interface {
	Insert(ctx context.Context, model model.Session) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Session, error)
	GetActive(ctx context.Context, sessionID string, now time.Time) (model.ActiveSession, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Session]
	active gRepo.Repository[model.ActiveSession]
	db     *database.Connection
	otel   otel.Otel
}

func New(db *database.Connection, otel otel.Otel) Session {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Session](model.EntityName, model.TableName, model.FieldID, db, otel),
		active:     gRepo.NewRepository[model.ActiveSession](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetActive returns the session joined with its owner when the session has
// not expired at now and the owner is active. Otherwise the zero value.
func (r *repositoryImpl) GetActive(ctx context.Context, sessionID string, now time.Time) (model.ActiveSession, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".session.GetActive")
	defer scope.End()

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Value:    sessionID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldExpiresAt,
				Value:    now,
				Operator: gDto.FilterOperatorGreater,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    userModel.FieldIsActive,
				Value:    true,
				Operator: gDto.FilterOperatorEq,
				Table:    userModel.TableName,
			},
		},
	}

	res, err := r.active.Get(ctx, filter)
	if err != nil {
		scope.TraceError(err)

		return res, fmt.Errorf("failed to get active session: %w", err)
	}

	return res, nil
}
