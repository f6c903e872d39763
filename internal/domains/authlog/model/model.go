package model

import (
	"database/sql"
	"time"
)

const (
	TableName  = "auth_logs"
	EntityName = "authlog"

	FieldID        = "log_id"
	FieldUserID    = "user_id"
	FieldEmail     = "email"
	FieldAction    = "action"
	FieldCreatedAt = "created_at"
)

const (
	ActionRegister = "register"
	ActionLogin    = "login"
	ActionLogout   = "logout"
	ActionFail     = "fail"
)

// AuthLog is one append-only audit record. UserID is null when the attempt
// could not be tied to an account.
type AuthLog struct {
	ID        int64         `db:"log_id"     generated:"true"`
	UserID    sql.NullInt64 `db:"user_id"`
	Email     string        `db:"email"`
	Action    string        `db:"action"`
	IPAddress string        `db:"ip_address"`
	UserAgent string        `db:"user_agent"`
	CreatedAt time.Time     `db:"created_at"`
}
