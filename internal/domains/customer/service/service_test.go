package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hoteladmin/config"
	"hoteladmin/infras/otel/mocks"
	customerMocks "hoteladmin/internal/domains/customer/mocks"
	"hoteladmin/internal/domains/customer/model"
	"hoteladmin/internal/domains/customer/model/dto"
	"hoteladmin/internal/domains/customer/service"
	"hoteladmin/shared/cache"
	cacheMocks "hoteladmin/shared/cache/mocks"
	"hoteladmin/shared/dberr"
	gDto "hoteladmin/shared/dto"
	"hoteladmin/shared/failure"
)

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return cfg
}

func stringPtr(s string) *string {
	return &s
}

func TestCustomerService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := customerMocks.NewMockCustomer(ctrl)
	svc := service.New(mockRepo, newConfig(), cache.NewNoopCache(), mocks.NewOtel())

	tests := []struct {
		name        string
		status      gDto.StatusFilter
		setupMock   func()
		wantFilters int
		wantErr     error
	}{
		{
			name:   "all omits the predicate",
			status: "all",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Customer, error) {
						assert.Empty(t, filter.Filters)
						assert.Equal(t, "full_name ASC, customer_id", params.SortBy)

						return []model.Customer{{CustomerID: "C1"}}, nil
					})
			},
		},
		{
			name:   "status is case normalized",
			status: " Active ",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Customer, error) {
						assert.Len(t, filter.Filters, 1)

						where, args := filter.GetWhereClause()
						assert.Equal(t, "(customers.status = :status)", where)
						assert.Equal(t, "Active", args["status"])

						return []model.Customer{}, nil
					})
			},
		},
		{
			name:      "unknown status",
			status:    "archived",
			setupMock: func() {},
			wantErr:   failure.InvalidStatusFilter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := svc.List(context.Background(), tt.status)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCustomerService_ListCacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := customerMocks.NewMockCustomer(ctrl)
	mockCache := cacheMocks.NewMockCache(ctrl)
	svc := service.New(mockRepo, newConfig(), mockCache, mocks.NewOtel())

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			res, _ := value.(*[]dto.CustomerResponse)
			*res = []dto.CustomerResponse{{CustomerID: "C9"}}

			return nil
		})

	res, err := svc.List(context.Background(), "")

	assert.NoError(t, err)
	assert.Equal(t, "C9", res[0].CustomerID)
}

func TestCustomerService_Add(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := customerMocks.NewMockCustomer(ctrl)
	svc := service.New(mockRepo, newConfig(), cache.NewNoopCache(), mocks.NewOtel())

	valid := dto.CreateCustomerRequest{CustomerID: "CUST1001", FullName: "Ann Lee", Email: "Ann@Ex.com"}

	tests := []struct {
		name      string
		req       dto.CreateCustomerRequest
		setupMock func()
		wantCode  int
		wantErr   bool
	}{
		{
			name: "defaults to active",
			req:  valid,
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, customer model.Customer) error {
						assert.Equal(t, model.StatusActive, customer.Status)
						assert.Equal(t, "ann@ex.com", customer.Email)

						return nil
					})
			},
		},
		{
			name: "duplicate id",
			req:  valid,
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(&dberr.Error{Sentinel: dberr.ErrDuplicateKey, Cause: errors.New("unique")})
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name:      "bad email",
			req:       dto.CreateCustomerRequest{CustomerID: "C2", FullName: "Bo", Email: "bo-at-ex"},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name:      "missing id",
			req:       dto.CreateCustomerRequest{FullName: "Bo", Email: "bo@ex.com"},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "store failure",
			req:  valid,
			setupMock: func() {
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
			},
			wantErr:  true,
			wantCode: 500,
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

func TestCustomerService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := customerMocks.NewMockCustomer(ctrl)
	svc := service.New(mockRepo, newConfig(), cache.NewNoopCache(), mocks.NewOtel())

	tests := []struct {
		name      string
		req       dto.UpdateCustomerRequest
		setupMock func()
		wantErr   error
	}{
		{
			name: "only set columns change",
			req:  dto.UpdateCustomerRequest{Phone: stringPtr("555-0101"), Email: stringPtr(" NEW@ex.com")},
			setupMock: func() {
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, mod map[string]any, _ any) (int64, error) {
						assert.Equal(t, "555-0101", mod[model.FieldPhone])
						assert.Equal(t, "new@ex.com", mod[model.FieldEmail])
						assert.NotContains(t, mod, model.FieldID)
						assert.NotContains(t, mod, model.FieldFullName)

						return 1, nil
					})
			},
		},
		{
			name:      "empty update",
			req:       dto.UpdateCustomerRequest{},
			setupMock: func() {},
			wantErr:   failure.EmptyUpdate,
		},
		{
			name: "missing customer",
			req:  dto.UpdateCustomerRequest{Status: stringPtr("Inactive")},
			setupMock: func() {
				mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
			},
			wantErr: service.ErrCustomerNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Update(context.Background(), tt.req, "CUST1001")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCustomerService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := customerMocks.NewMockCustomer(ctrl)
	svc := service.New(mockRepo, newConfig(), cache.NewNoopCache(), mocks.NewOtel())

	mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(1), nil)
	assert.NoError(t, svc.Delete(context.Background(), "CUST1001"))

	mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(0), nil)
	assert.ErrorIs(t, svc.Delete(context.Background(), "CUST1001"), service.ErrCustomerNotFound)
}

func TestCustomerService_AddTracesFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := customerMocks.NewMockCustomer(ctrl)
	recorder := mocks.NewOtel()
	svc := service.New(mockRepo, newConfig(), cache.NewNoopCache(), recorder)

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(&dberr.Error{Sentinel: dberr.ErrDuplicateKey, Cause: errors.New("unique")})

	err := svc.Add(context.Background(), dto.CreateCustomerRequest{CustomerID: "C9", FullName: "Cy", Email: "cy@ex.com"})

	assert.ErrorIs(t, err, service.ErrCustomerExists)
	assert.Equal(t, []string{"service.Add"}, recorder.Spans())
	assert.Len(t, recorder.Errors(), 1)
	assert.ErrorIs(t, recorder.Errors()[0], service.ErrCustomerExists)
}

func TestCustomerService_CacheUpdatedBeforeReturn(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := customerMocks.NewMockCustomer(ctrl)
	mockCache := cacheMocks.NewMockCache(ctrl)
	svc := service.New(mockRepo, newConfig(), mockCache, mocks.NewOtel())

	ctx := context.Background()

	gomock.InOrder(
		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil),
		mockCache.EXPECT().Clear(gomock.Any(), "customer:*").Return(nil),
		mockCache.EXPECT().Clear(gomock.Any(), "report:*").Return(nil),
	)

	assert.NoError(t, svc.Add(ctx, dto.CreateCustomerRequest{CustomerID: "C1", FullName: "Ann Lee", Email: "ann@ex.com"}))
	assert.True(t, ctrl.Satisfied())

	gomock.InOrder(
		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")),
		mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Customer{{CustomerID: "C1"}}, nil),
		mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 3600).Return(nil),
	)

	res, err := svc.List(ctx, "all")
	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.True(t, ctrl.Satisfied())
}
