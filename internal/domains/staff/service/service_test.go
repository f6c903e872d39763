package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hoteladmin/config"
	"hoteladmin/infras/otel/mocks"
	staffMocks "hoteladmin/internal/domains/staff/mocks"
	"hoteladmin/internal/domains/staff/model"
	"hoteladmin/internal/domains/staff/model/dto"
	"hoteladmin/internal/domains/staff/service"
	"hoteladmin/shared/cache"
	"hoteladmin/shared/dberr"
	gDto "hoteladmin/shared/dto"
	"hoteladmin/shared/failure"
	"hoteladmin/shared/password"
)

func stringPtr(s string) *string {
	return &s
}

func newService(ctrl *gomock.Controller) (*staffMocks.MockStaff, service.Staff) {
	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockRepo := staffMocks.NewMockStaff(ctrl)

	return mockRepo, service.New(mockRepo, cfg, cache.NewNoopCache(), mocks.NewOtel())
}

func TestStaffService_Add(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo, svc := newService(ctrl)

	tests := []struct {
		name      string
		req       dto.CreateStaffRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "password is hashed",
			req:  dto.CreateStaffRequest{StaffID: "S1", FullName: "Kai Moss", Email: "kai@ex.com", Password: "desk-pass"},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, staff model.Staff) error {
						assert.NotEqual(t, "desk-pass", staff.PasswordHash)
						assert.NoError(t, password.Verify("desk-pass", staff.PasswordHash))
						assert.Equal(t, model.StatusActive, staff.Status)

						return nil
					})
			},
		},
		{
			name:      "password required",
			req:       dto.CreateStaffRequest{StaffID: "S1", FullName: "Kai Moss", Email: "kai@ex.com"},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "duplicate",
			req:  dto.CreateStaffRequest{StaffID: "S1", FullName: "Kai Moss", Email: "kai@ex.com", Password: "desk-pass"},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(&dberr.Error{Sentinel: dberr.ErrDuplicateKey, Cause: errors.New("unique")})
			},
			wantErr:  true,
			wantCode: 409,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Add(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStaffService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo, svc := newService(ctrl)

	tests := []struct {
		name      string
		req       dto.UpdateStaffRequest
		setupMock func()
		wantErr   error
		wantCode  int
	}{
		{
			name: "password change",
			req:  dto.UpdateStaffRequest{Password: stringPtr("new-pass")},
			setupMock: func() {
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, mod map[string]any, _ any) (int64, error) {
						hash, _ := mod[model.FieldPasswordHash].(string)
						assert.NoError(t, password.Verify("new-pass", hash))
						assert.NotContains(t, mod, "password")

						return 1, nil
					})
			},
		},
		{
			name: "password kept when absent",
			req:  dto.UpdateStaffRequest{Phone: stringPtr("555-0199")},
			setupMock: func() {
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, mod map[string]any, _ any) (int64, error) {
						assert.NotContains(t, mod, model.FieldPasswordHash)

						return 1, nil
					})
			},
		},
		{
			name:      "blank password",
			req:       dto.UpdateStaffRequest{Password: stringPtr("  ")},
			setupMock: func() {},
			wantCode:  400,
		},
		{
			name: "missing",
			req:  dto.UpdateStaffRequest{Status: stringPtr("Inactive")},
			setupMock: func() {
				mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
			},
			wantErr:  service.ErrStaffNotFound,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Update(context.Background(), tt.req, "S1")

			if tt.wantCode == 0 {
				assert.NoError(t, err)

				return
			}

			assert.Equal(t, tt.wantCode, failure.GetCode(err))

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestStaffService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo, svc := newService(ctrl)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Staff, error) {
			_, args := filter.GetWhereClause()
			assert.Equal(t, "Inactive", args["status"])

			return []model.Staff{{StaffID: "S2", FullName: "Lu Chen", PasswordHash: "secret"}}, nil
		})

	res, err := svc.List(context.Background(), "inactive")
	assert.NoError(t, err)
	assert.Len(t, res, 1)

	_, err = svc.List(context.Background(), "former")
	assert.ErrorIs(t, err, failure.InvalidStatusFilter)
}
