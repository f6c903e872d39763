package model

import (
	"time"

	userModel "hoteladmin/internal/domains/user/model"
)

const (
	TableName  = "user_sessions"
	EntityName = "session"

	FieldID        = "session_id"
	FieldUserID    = "user_id"
	FieldIPAddress = "ip_address"
	FieldUserAgent = "user_agent"
	FieldCreatedAt = "created_at"
	FieldExpiresAt = "expires_at"
)

type Session struct {
	SessionID string    `db:"session_id"`
	UserID    int64     `db:"user_id"`
	IPAddress string    `db:"ip_address"`
	UserAgent string    `db:"user_agent"`
	CreatedAt time.Time `db:"created_at"`
	ExpiresAt time.Time `db:"expires_at"`
}

// ActiveSession is a session joined with its owner.
type ActiveSession struct {
	SessionID string    `db:"session_id"`
	UserID    int64     `db:"user_id"`
	IPAddress string    `db:"ip_address"`
	UserAgent string    `db:"user_agent"`
	CreatedAt time.Time `db:"created_at"`
	ExpiresAt time.Time `db:"expires_at"`
	FullName  string    `db:"full_name"  table:"users"`
	Email     string    `db:"email"      table:"users"`
	Gender    string    `db:"gender"     table:"users"`
	IsActive  bool      `db:"is_active"  table:"users"`
}

func (ActiveSession) GetJoinQuery() string {
	return "JOIN " + userModel.TableName + " ON " + userModel.TableName + "." + userModel.FieldID + " = " + TableName + "." + FieldUserID
}

// Exists reports whether the row was found.
func (s ActiveSession) Exists() bool {
	return s.SessionID != ""
}

func (s ActiveSession) User() userModel.User {
	return userModel.User{
		ID:       s.UserID,
		FullName: s.FullName,
		Email:    s.Email,
		Gender:   s.Gender,
		IsActive: s.IsActive,
	}
}
