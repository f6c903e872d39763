package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoteladmin/infras/otel/mocks"
	"hoteladmin/internal/domains/occupancy/model/dto"
	"hoteladmin/internal/domains/occupancy/repository"
	"hoteladmin/internal/domains/occupancy/service"
	"hoteladmin/internal/testutil"
	"hoteladmin/shared/cache"
)

func TestStore_UpsertKeepsOneRowPerDate(t *testing.T) {
	conn := testutil.NewDatabase(t)
	svc := service.New(repository.New(conn, mocks.NewOtel()), conn, cache.NewNoopCache(), mocks.NewOtel())
	ctx := context.Background()

	_, err := svc.Get(ctx, "2030-03-14")
	assert.ErrorIs(t, err, service.ErrOccupancyNotFound)

	require.NoError(t, svc.Upsert(ctx, dto.UpsertOccupancyRequest{Date: "2030-03-14", OccupiedRooms: 10, TotalRooms: 40}))
	require.NoError(t, svc.Upsert(ctx, dto.UpsertOccupancyRequest{Date: "2030-03-14", OccupiedRooms: 30, TotalRooms: 40}))
	require.NoError(t, svc.Upsert(ctx, dto.UpsertOccupancyRequest{Date: "2030-03-15", OccupiedRooms: 20, TotalRooms: 40}))

	day, err := svc.Get(ctx, "2030-03-14")
	require.NoError(t, err)
	assert.Equal(t, 30, day.OccupiedRooms)
	assert.InDelta(t, 75.0, day.Rate, 0.001)

	res, err := svc.List(ctx, dto.ListOccupancyRequest{From: "2030-03-01", To: "2030-03-31"})
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "2030-03-14", res[0].Date)
	assert.Equal(t, "2030-03-15", res[1].Date)
}
