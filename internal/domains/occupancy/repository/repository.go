package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hoteladmin/infras/database"
	"hoteladmin/infras/otel"
	"hoteladmin/internal/domains/occupancy/model"
	gDto "hoteladmin/shared/dto"
	gRepo "hoteladmin/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Occupancy interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Occupancy, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Occupancy, error)
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Occupancy) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Occupancy]
	db   *database.Connection
	otel otel.Otel
}

func New(db *database.Connection, otel otel.Otel) Occupancy {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Occupancy](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
