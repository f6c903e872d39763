package service

import (
	"context"
	"fmt"
	"hoteladmin/config"
	"hoteladmin/infras/otel"
	"hoteladmin/internal/domains/auth/model/dto"
	authlogModel "hoteladmin/internal/domains/authlog/model"
	authlogDto "hoteladmin/internal/domains/authlog/model/dto"
	authlogService "hoteladmin/internal/domains/authlog/service"
	sessionModel "hoteladmin/internal/domains/session/model"
	sessionRepo "hoteladmin/internal/domains/session/repository"
	userModel "hoteladmin/internal/domains/user/model"
	userDto "hoteladmin/internal/domains/user/model/dto"
	userRepo "hoteladmin/internal/domains/user/repository"
	"hoteladmin/shared"
	"hoteladmin/shared/constant"
	"hoteladmin/shared/dberr"
	gDto "hoteladmin/shared/dto"
	"hoteladmin/shared/failure"
	"hoteladmin/shared/password"
	"hoteladmin/shared/timezone"
	"hoteladmin/shared/validator"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrEmptyField             = failure.BadRequestFromString("all fields are required")
	ErrInvalidEmailFormat     = failure.BadRequestFromString("invalid email format")
	ErrInvalidGender          = failure.BadRequestFromString("gender must be Male, Female or Other")
	ErrEmailAlreadyRegistered = failure.Conflict("email already registered")
	ErrInvalidCredentials     = failure.Unauthorized("invalid email or password")
	ErrSessionExpiryInPast    = failure.BadRequestFromString("session expiry must be in the future")
	ErrSessionExists          = failure.Conflict("session already exists")
	ErrSessionNotFound        = failure.NotFound("session not found")
	ErrUnknownUser            = failure.NotFound("user not found")
)

// Auth registers accounts and manages their sessions. Business outcomes are
// returned as failure errors, store errors are wrapped.
type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) (userDto.UserResponse, error)
	Authenticate(ctx context.Context, req dto.LoginRequest) (userDto.UserResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	CreateSession(ctx context.Context, req dto.CreateSessionRequest) error
	VerifySession(ctx context.Context, sessionID string) (dto.SessionResponse, error)
	Logout(ctx context.Context, sessionID string, client dto.Client) error
	PurgeExpiredSessions(ctx context.Context) (int64, error)
}

type serviceImpl struct {
	userRepo    userRepo.User
	sessionRepo sessionRepo.Session
	audit       authlogService.Logger
	cfg         *config.Config
	otel        otel.Otel
}

func New(userRepo userRepo.User, sessionRepo sessionRepo.Session, audit authlogService.Logger, cfg *config.Config, otel otel.Otel) Auth {
	return &serviceImpl{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		audit:       audit,
		cfg:         cfg,
		otel:        otel,
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res userDto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, ErrEmptyField
	}

	req.Normalize()

	if err = validator.ValidateVar(req.Email, "emailshape"); err != nil {
		return res, ErrInvalidEmailFormat
	}

	if err = validator.ValidateVar(req.Gender, "oneof=Male Female Other"); err != nil {
		return res, ErrInvalidGender
	}

	exists, err := s.userRepo.Exist(ctx, emailFilter(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return res, fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return res, ErrEmailAlreadyRegistered
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	if err = s.userRepo.Insert(ctx, req.ToUserModel(hashedPassword)); err != nil {
		if dberr.IsDuplicateKey(err) {
			return res, ErrEmailAlreadyRegistered
		}

		log.Error().Err(err).Msg("failed to create user")

		return res, fmt.Errorf("failed to create user: %w", err)
	}

	user, err := s.userRepo.Get(ctx, emailFilter(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to read registered user")

		return res, fmt.Errorf("failed to read registered user: %w", err)
	}

	s.audit.Log(ctx, s.logRequest(user.ID, req.Email, authlogModel.ActionRegister, req.Client))

	res.FromModel(user)

	return res, nil
}

// Authenticate matches the normalized email exactly against active accounts.
// A mismatch is recorded as a fail event without a user and returned as
// ErrInvalidCredentials.
func (s *serviceImpl) Authenticate(ctx context.Context, req dto.LoginRequest) (res userDto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Authenticate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, ErrEmptyField
	}

	email := dto.NormalizeEmail(req.Email)

	filter := emailFilter(email)
	filter.Add(gDto.Filter{
		Field:    userModel.FieldIsActive,
		Value:    true,
		Operator: gDto.FilterOperatorEq,
		Table:    userModel.TableName,
	})

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if !user.Exists() || password.Verify(req.Password, user.PasswordHash) != nil {
		s.audit.Log(ctx, s.logRequest(0, email, authlogModel.ActionFail, req.Client))

		return res, ErrInvalidCredentials
	}

	if password.IsLegacy(user.PasswordHash) {
		s.upgradeHash(ctx, user.ID, req.Password)
	}

	s.audit.Log(ctx, s.logRequest(user.ID, email, authlogModel.ActionLogin, req.Client))

	res.FromModel(user)

	return res, nil
}

// upgradeHash replaces a legacy digest with bcrypt. Failures leave the legacy
// hash in place.
func (s *serviceImpl) upgradeHash(ctx context.Context, userID int64, plain string) {
	hashed, err := password.Hash(plain)
	if err != nil {
		log.Error().Err(err).Int64("user_id", userID).Msg("failed to rehash legacy password")

		return
	}

	mod := map[string]any{
		userModel.FieldPasswordHash: hashed,
		constant.FieldUpdatedAt:     timezone.Now(),
	}

	if _, err = s.userRepo.Update(ctx, mod, shared.FilterByID(userID, userModel.FieldID, userModel.TableName)); err != nil {
		log.Error().Err(err).Int64("user_id", userID).Msg("failed to store upgraded password hash")
	}
}

// Login authenticates and opens a session lasting the configured TTL.
func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.Authenticate(ctx, req)
	if err != nil {
		return res, err
	}

	expiresAt := timezone.Now().Add(time.Duration(s.cfg.App.SessionTTLMinutes) * time.Minute)

	sessionReq := dto.CreateSessionRequest{
		UserID:    user.ID,
		SessionID: uuid.NewString(),
		ExpiresAt: expiresAt,
		Client:    req.Client,
	}

	if err = s.CreateSession(ctx, sessionReq); err != nil {
		return res, err
	}

	res.SessionID = sessionReq.SessionID
	res.ExpiresAt = timezone.Format(expiresAt, constant.DateFormat)
	res.User = user

	return res, nil
}

// CreateSession stores a session. An expiry that is not strictly in the
// future is rejected before anything is written.
func (s *serviceImpl) CreateSession(ctx context.Context, req dto.CreateSessionRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateSession")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	now := timezone.Now()

	if !req.ExpiresAt.After(now) {
		return ErrSessionExpiryInPast
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return ErrEmptyField
	}

	client := s.client(req.Client)

	session := sessionModel.Session{
		SessionID: req.SessionID,
		UserID:    req.UserID,
		IPAddress: client.IPAddress,
		UserAgent: client.UserAgent,
		CreatedAt: now,
		ExpiresAt: req.ExpiresAt.Truncate(time.Microsecond),
	}

	if err = s.sessionRepo.Insert(ctx, session); err != nil {
		switch {
		case dberr.IsForeignKey(err):
			return ErrUnknownUser
		case dberr.IsDuplicateKey(err):
			return ErrSessionExists
		}

		log.Error().Err(err).Int64("user_id", req.UserID).Msg("failed to create session")

		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}

// VerifySession returns the session owner while the session is unexpired and
// the owner is active.
func (s *serviceImpl) VerifySession(ctx context.Context, sessionID string) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".VerifySession")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if sessionID == constant.Empty {
		return res, ErrSessionNotFound
	}

	session, err := s.sessionRepo.GetActive(ctx, sessionID, timezone.Now())
	if err != nil {
		log.Error().Err(err).Msg("failed to verify session")

		return res, fmt.Errorf("failed to verify session: %w", err)
	}

	if !session.Exists() {
		return res, ErrSessionNotFound
	}

	res.FromModel(session)

	return res, nil
}

// Logout deletes the session row and records the event.
func (s *serviceImpl) Logout(ctx context.Context, sessionID string, client dto.Client) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logout")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(sessionID, sessionModel.FieldID, sessionModel.TableName)

	session, err := s.sessionRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get session")

		return fmt.Errorf("failed to get session: %w", err)
	}

	if session.SessionID == constant.Empty {
		return ErrSessionNotFound
	}

	affected, err := s.sessionRepo.Delete(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete session")

		return fmt.Errorf("failed to delete session: %w", err)
	}

	if affected == 0 {
		return ErrSessionNotFound
	}

	user, err := s.userRepo.Get(ctx, shared.FilterByID(session.UserID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Int64("user_id", session.UserID).Msg("failed to get session owner for auth log")
	}

	s.audit.Log(ctx, s.logRequest(session.UserID, user.Email, authlogModel.ActionLogout, client))

	return nil
}

// PurgeExpiredSessions deletes every session whose expiry has passed.
func (s *serviceImpl) PurgeExpiredSessions(ctx context.Context) (purged int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PurgeExpiredSessions")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    sessionModel.FieldExpiresAt,
				Value:    timezone.Now(),
				Operator: gDto.FilterOperatorLessEq,
				Table:    sessionModel.TableName,
			},
		},
	}

	purged, err = s.sessionRepo.Delete(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to purge expired sessions")

		return 0, fmt.Errorf("failed to purge expired sessions: %w", err)
	}

	log.Info().Int64("purged", purged).Msg("expired sessions purged")

	return purged, nil
}

func (s *serviceImpl) client(client dto.Client) dto.Client {
	if client.IPAddress == constant.Empty {
		client.IPAddress = s.cfg.App.DefaultIPAddress
	}

	if client.UserAgent == constant.Empty {
		client.UserAgent = s.cfg.App.Name
	}

	return client
}

func (s *serviceImpl) logRequest(userID int64, email, action string, client dto.Client) authlogDto.LogRequest {
	client = s.client(client)

	return authlogDto.LogRequest{
		UserID:    userID,
		Email:     email,
		Action:    action,
		IPAddress: client.IPAddress,
		UserAgent: client.UserAgent,
	}
}

func emailFilter(email string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldEmail,
				Value:    email,
				Operator: gDto.FilterOperatorEq,
				Table:    userModel.TableName,
			},
		},
	}
}
