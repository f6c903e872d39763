package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hoteladmin/config"
	"hoteladmin/infras/otel/mocks"
	"hoteladmin/internal/domains/auth/model/dto"
	"hoteladmin/internal/domains/auth/service"
	authlogMocks "hoteladmin/internal/domains/authlog/mocks"
	authlogModel "hoteladmin/internal/domains/authlog/model"
	authlogService "hoteladmin/internal/domains/authlog/service"
	sessionMocks "hoteladmin/internal/domains/session/mocks"
	sessionModel "hoteladmin/internal/domains/session/model"
	userMocks "hoteladmin/internal/domains/user/mocks"
	userModel "hoteladmin/internal/domains/user/model"
	"hoteladmin/shared/dberr"
	"hoteladmin/shared/password"
	"hoteladmin/shared/timezone"
)

type fixture struct {
	userRepo    *userMocks.MockUser
	sessionRepo *sessionMocks.MockSession
	logRepo     *authlogMocks.MockAuthLog
	svc         service.Auth
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	cfg := &config.Config{}
	cfg.App.Name = "hoteladmin"
	cfg.App.DefaultIPAddress = "127.0.0.1"
	cfg.App.SessionTTLMinutes = 30

	f := fixture{
		userRepo:    userMocks.NewMockUser(ctrl),
		sessionRepo: sessionMocks.NewMockSession(ctrl),
		logRepo:     authlogMocks.NewMockAuthLog(ctrl),
	}

	audit := authlogService.New(f.logRepo, mocks.NewOtel())
	f.svc = service.New(f.userRepo, f.sessionRepo, audit, cfg, mocks.NewOtel())

	return f
}

func TestAuthService_Register(t *testing.T) {
	valid := dto.RegisterRequest{
		FullName: "Jane Doe",
		Email:    "JANE@EX.com",
		Password: "Secur3!pass",
		Gender:   "Female",
	}

	tests := []struct {
		name      string
		req       func() dto.RegisterRequest
		setupMock func(f fixture)
		wantErr   error
	}{
		{
			name: "successful registration",
			req:  func() dto.RegisterRequest { return valid },
			setupMock: func(f fixture) {
				f.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.userRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user userModel.User) error {
						assert.Equal(t, "jane@ex.com", user.Email)
						assert.NotEqual(t, "Secur3!pass", user.PasswordHash)
						assert.NoError(t, password.Verify("Secur3!pass", user.PasswordHash))

						return nil
					})
				f.userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{ID: 1, Email: "jane@ex.com", FullName: "Jane Doe", IsActive: true}, nil)
				f.logRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, entry authlogModel.AuthLog) error {
						assert.Equal(t, authlogModel.ActionRegister, entry.Action)
						assert.Equal(t, int64(1), entry.UserID.Int64)
						assert.Equal(t, "127.0.0.1", entry.IPAddress)
						assert.Equal(t, "hoteladmin", entry.UserAgent)

						return nil
					})
			},
		},
		{
			name: "empty field",
			req: func() dto.RegisterRequest {
				req := valid
				req.FullName = "   "

				return req
			},
			setupMock: func(fixture) {},
			wantErr:   service.ErrEmptyField,
		},
		{
			name: "invalid email",
			req: func() dto.RegisterRequest {
				req := valid
				req.Email = "jane.ex.com"

				return req
			},
			setupMock: func(fixture) {},
			wantErr:   service.ErrInvalidEmailFormat,
		},
		{
			name: "invalid gender",
			req: func() dto.RegisterRequest {
				req := valid
				req.Gender = "female"

				return req
			},
			setupMock: func(fixture) {},
			wantErr:   service.ErrInvalidGender,
		},
		{
			name: "email taken",
			req:  func() dto.RegisterRequest { return valid },
			setupMock: func(f fixture) {
				f.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr: service.ErrEmailAlreadyRegistered,
		},
		{
			name: "email taken concurrently",
			req:  func() dto.RegisterRequest { return valid },
			setupMock: func(f fixture) {
				f.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.userRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(&dberr.Error{Sentinel: dberr.ErrDuplicateKey, Cause: errors.New("unique")})
			},
			wantErr: service.ErrEmailAlreadyRegistered,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Register(context.Background(), tt.req())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "jane@ex.com", res.Email)
		})
	}
}

func TestAuthService_Register_StoreFailure(t *testing.T) {
	f := newFixture(t)

	f.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("connection refused"))

	_, err := f.svc.Register(context.Background(), dto.RegisterRequest{
		FullName: "Jane Doe",
		Email:    "jane@ex.com",
		Password: "Secur3!pass",
		Gender:   "Female",
	})

	assert.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrEmailAlreadyRegistered)
}

func TestAuthService_Authenticate(t *testing.T) {
	hashed, err := password.Hash("Secur3!pass")
	assert.NoError(t, err)

	active := userModel.User{ID: 1, Email: "jane@ex.com", FullName: "Jane Doe", PasswordHash: hashed, IsActive: true}

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func(f fixture)
		wantErr   error
	}{
		{
			name: "match",
			req:  dto.LoginRequest{Email: " Jane@Ex.com", Password: "Secur3!pass"},
			setupMock: func(f fixture) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(active, nil)
				f.logRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, entry authlogModel.AuthLog) error {
						assert.Equal(t, authlogModel.ActionLogin, entry.Action)
						assert.True(t, entry.UserID.Valid)

						return nil
					})
			},
		},
		{
			name: "audit failure does not fail the login",
			req:  dto.LoginRequest{Email: "jane@ex.com", Password: "Secur3!pass"},
			setupMock: func(f fixture) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(active, nil)
				f.logRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
			},
		},
		{
			name: "wrong password logs fail without user",
			req:  dto.LoginRequest{Email: "jane@ex.com", Password: "wrong"},
			setupMock: func(f fixture) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(active, nil)
				f.logRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, entry authlogModel.AuthLog) error {
						assert.Equal(t, authlogModel.ActionFail, entry.Action)
						assert.False(t, entry.UserID.Valid)

						return nil
					})
			},
			wantErr: service.ErrInvalidCredentials,
		},
		{
			name: "unknown or inactive account",
			req:  dto.LoginRequest{Email: "ghost@ex.com", Password: "Secur3!pass"},
			setupMock: func(f fixture) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
				f.logRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantErr: service.ErrInvalidCredentials,
		},
		{
			name: "legacy hash is upgraded",
			req:  dto.LoginRequest{Email: "old@ex.com", Password: "legacy-pass"},
			setupMock: func(f fixture) {
				legacy := userModel.User{ID: 2, Email: "old@ex.com", PasswordHash: password.LegacyHash("legacy-pass"), IsActive: true}

				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(legacy, nil)
				f.userRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, mod map[string]any, _ any) (int64, error) {
						hash, _ := mod[userModel.FieldPasswordHash].(string)
						assert.False(t, password.IsLegacy(hash))
						assert.NoError(t, password.Verify("legacy-pass", hash))

						return 1, nil
					})
				f.logRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:      "blank credentials",
			req:       dto.LoginRequest{Email: "jane@ex.com"},
			setupMock: func(fixture) {},
			wantErr:   service.ErrEmptyField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			_, err := f.svc.Authenticate(context.Background(), tt.req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_CreateSession(t *testing.T) {
	tests := []struct {
		name      string
		expiresAt time.Time
		setupMock func(f fixture)
		wantErr   error
	}{
		{
			name:      "future expiry",
			expiresAt: timezone.Now().Add(time.Hour),
			setupMock: func(f fixture) {
				f.sessionRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, session sessionModel.Session) error {
						assert.Equal(t, "127.0.0.1", session.IPAddress)
						assert.True(t, session.ExpiresAt.After(session.CreatedAt))

						return nil
					})
			},
		},
		{
			name:      "past expiry writes nothing",
			expiresAt: timezone.Now().Add(-time.Minute),
			setupMock: func(fixture) {},
			wantErr:   service.ErrSessionExpiryInPast,
		},
		{
			name:      "unknown user",
			expiresAt: timezone.Now().Add(time.Hour),
			setupMock: func(f fixture) {
				f.sessionRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(&dberr.Error{Sentinel: dberr.ErrForeignKey, Cause: errors.New("fk")})
			},
			wantErr: service.ErrUnknownUser,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			err := f.svc.CreateSession(context.Background(), dto.CreateSessionRequest{
				UserID:    1,
				SessionID: "token",
				ExpiresAt: tt.expiresAt,
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_VerifySession(t *testing.T) {
	f := newFixture(t)

	f.sessionRepo.EXPECT().
		GetActive(gomock.Any(), "token", gomock.Any()).
		Return(sessionModel.ActiveSession{SessionID: "token", UserID: 1, Email: "jane@ex.com", IsActive: true}, nil)

	res, err := f.svc.VerifySession(context.Background(), "token")
	assert.NoError(t, err)
	assert.Equal(t, "jane@ex.com", res.User.Email)

	f.sessionRepo.EXPECT().
		GetActive(gomock.Any(), "stale", gomock.Any()).
		Return(sessionModel.ActiveSession{}, nil)

	_, err = f.svc.VerifySession(context.Background(), "stale")
	assert.ErrorIs(t, err, service.ErrSessionNotFound)
}

func TestAuthService_Logout(t *testing.T) {
	f := newFixture(t)

	f.sessionRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(sessionModel.Session{SessionID: "token", UserID: 1}, nil)
	f.sessionRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(1), nil)
	f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{ID: 1, Email: "jane@ex.com"}, nil)
	f.logRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry authlogModel.AuthLog) error {
			assert.Equal(t, authlogModel.ActionLogout, entry.Action)
			assert.Equal(t, "jane@ex.com", entry.Email)

			return nil
		})

	assert.NoError(t, f.svc.Logout(context.Background(), "token", dto.Client{}))

	f.sessionRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(sessionModel.Session{}, nil)

	assert.ErrorIs(t, f.svc.Logout(context.Background(), "token", dto.Client{}), service.ErrSessionNotFound)
}
