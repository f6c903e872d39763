package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hoteladmin/infras/otel/mocks"
	userMocks "hoteladmin/internal/domains/user/mocks"
	"hoteladmin/internal/domains/user/model"
	"hoteladmin/internal/domains/user/model/dto"
	"hoteladmin/internal/domains/user/service"
	"hoteladmin/shared/failure"
)

func stringPtr(s string) *string {
	return &s
}

func TestUserService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	tests := []struct {
		name      string
		setupMock func()
		wantErr   error
		wantEmail string
	}{
		{
			name: "found",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.User{ID: 7, Email: "jane@ex.com", FullName: "Jane Doe", IsActive: true}, nil)
			},
			wantEmail: "jane@ex.com",
		},
		{
			name: "not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.User{}, nil)
			},
			wantErr: service.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Get(context.Background(), 7)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantEmail, res.Email)
			assert.True(t, res.IsActive)
		})
	}
}

func TestUserService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	tests := []struct {
		name      string
		req       dto.UpdateUserRequest
		setupMock func()
		wantCode  int
		wantErr   bool
	}{
		{
			name: "updates name",
			req:  dto.UpdateUserRequest{FullName: stringPtr("Jane D.")},
			setupMock: func() {
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, mod map[string]any, _ any) (int64, error) {
						assert.Equal(t, "Jane D.", mod[model.FieldFullName])
						assert.NotContains(t, mod, model.FieldGender)

						return 1, nil
					})
			},
		},
		{
			name:      "empty request",
			req:       dto.UpdateUserRequest{},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name:      "invalid gender",
			req:       dto.UpdateUserRequest{Gender: stringPtr("Unknown")},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "missing user",
			req:  dto.UpdateUserRequest{Gender: stringPtr("Other")},
			setupMock: func() {
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(0), nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "repository error",
			req:  dto.UpdateUserRequest{Gender: stringPtr("Other")},
			setupMock: func() {
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("database error"))
			},
			wantErr:  true,
			wantCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Update(context.Background(), tt.req, 7)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserService_Deactivate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, mod map[string]any, _ any) (int64, error) {
			assert.Equal(t, false, mod[model.FieldIsActive])

			return 1, nil
		})

	assert.NoError(t, svc.Deactivate(context.Background(), 7))

	mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(int64(0), nil)

	assert.ErrorIs(t, svc.Activate(context.Background(), 8), service.ErrUserNotFound)
}
