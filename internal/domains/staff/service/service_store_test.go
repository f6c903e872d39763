package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoteladmin/infras/otel/mocks"
	"hoteladmin/internal/domains/staff/model"
	"hoteladmin/internal/domains/staff/model/dto"
	"hoteladmin/internal/domains/staff/repository"
	"hoteladmin/internal/domains/staff/service"
	"hoteladmin/internal/testutil"
	"hoteladmin/shared"
	"hoteladmin/shared/cache"
	"hoteladmin/shared/password"
)

func TestStore_StaffLifecycle(t *testing.T) {
	conn := testutil.NewDatabase(t)
	repo := repository.New(conn, mocks.NewOtel())
	svc := service.New(repo, testutil.Config(), cache.NewNoopCache(), mocks.NewOtel())
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, dto.CreateStaffRequest{StaffID: "S1", FullName: "Kai Moss", Email: "kai@ex.com", Password: "first"}))
	require.NoError(t, svc.Add(ctx, dto.CreateStaffRequest{StaffID: "S2", FullName: "Ada Ray", Email: "ada@ex.com", Password: "first", Status: "Inactive"}))

	err := svc.Add(ctx, dto.CreateStaffRequest{StaffID: "S3", FullName: "Kai Twin", Email: "KAI@ex.com", Password: "x"})
	assert.ErrorIs(t, err, service.ErrStaffExists)

	all, err := svc.List(ctx, "all")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Ada Ray", all[0].FullName)

	active, err := svc.List(ctx, "active")
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "S1", active[0].StaffID)

	second := "second"
	require.NoError(t, svc.Update(ctx, dto.UpdateStaffRequest{Password: &second}, "S1"))

	stored, err := repo.Get(ctx, shared.FilterByID("S1", model.FieldID, model.TableName))
	require.NoError(t, err)
	assert.NoError(t, password.Verify("second", stored.PasswordHash))
	assert.Equal(t, "Kai Moss", stored.FullName)

	found, err := svc.Search(ctx, "ADA")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "S2", found[0].StaffID)

	require.NoError(t, svc.Delete(ctx, "S2"))
	assert.ErrorIs(t, svc.Delete(ctx, "S2"), service.ErrStaffNotFound)
}
