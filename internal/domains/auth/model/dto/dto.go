package dto

import (
	sessionModel "hoteladmin/internal/domains/session/model"
	userModel "hoteladmin/internal/domains/user/model"
	userDto "hoteladmin/internal/domains/user/model/dto"
	"hoteladmin/shared/constant"
	"hoteladmin/shared/timezone"
	"strings"
	"time"
)

// Client identifies where a request came from. Empty values fall back to the
// configured defaults.
type Client struct {
	IPAddress string `json:"ip_address"`
	UserAgent string `json:"user_agent"`
}

type RegisterRequest struct {
	FullName string `json:"full_name" validate:"notblank"`
	Email    string `json:"email"     validate:"notblank"`
	Password string `json:"password"  validate:"notblank"`
	Gender   string `json:"gender"    validate:"notblank"`
	Client
}

// Normalize trims every field and lowercases the email.
func (r *RegisterRequest) Normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = NormalizeEmail(r.Email)
	r.Gender = strings.TrimSpace(r.Gender)
}

func (r *RegisterRequest) ToUserModel(passwordHash string) userModel.User {
	user := userModel.User{
		FullName:     r.FullName,
		Email:        r.Email,
		PasswordHash: passwordHash,
		Gender:       r.Gender,
		IsActive:     true,
	}
	user.Stamp(timezone.Now())

	return user
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"notblank"`
	Password string `json:"password" validate:"notblank"`
	Client
}

type CreateSessionRequest struct {
	UserID    int64     `json:"user_id"    validate:"required"`
	SessionID string    `json:"session_id" validate:"notblank"`
	ExpiresAt time.Time `json:"expires_at" validate:"required"`
	Client
}

type LoginResponse struct {
	SessionID string               `json:"session_id"`
	ExpiresAt string               `json:"expires_at"`
	User      userDto.UserResponse `json:"user"`
}

type SessionResponse struct {
	SessionID string               `json:"session_id"`
	IPAddress string               `json:"ip_address"`
	UserAgent string               `json:"user_agent"`
	CreatedAt string               `json:"created_at"`
	ExpiresAt string               `json:"expires_at"`
	User      userDto.UserResponse `json:"user"`
}

func (r *SessionResponse) FromModel(model sessionModel.ActiveSession) {
	r.SessionID = model.SessionID
	r.IPAddress = model.IPAddress
	r.UserAgent = model.UserAgent
	r.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
	r.ExpiresAt = timezone.Format(model.ExpiresAt, constant.DateFormat)
	r.User.FromModel(model.User())
}

// NormalizeEmail trims and lowercases an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
