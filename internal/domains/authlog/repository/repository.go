package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hoteladmin/infras/database"
	"hoteladmin/infras/otel"
	"hoteladmin/internal/domains/authlog/model"
	gDto "hoteladmin/shared/dto"
	gRepo "hoteladmin/shared/repository"
)

// AuthLog is append-only. It exposes no update or delete.
type AuthLog interface {
	Insert(ctx context.Context, model model.AuthLog) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.AuthLog, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.AuthLog]
	db   *database.Connection
	otel otel.Otel
}

func New(db *database.Connection, otel otel.Otel) AuthLog {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.AuthLog](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
