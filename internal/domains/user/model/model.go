package model

import "hoteladmin/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID           = "user_id"
	FieldFullName     = "full_name"
	FieldEmail        = "email"
	FieldPasswordHash = "password_hash"
	FieldGender       = "gender"
	FieldIsActive     = "is_active"
)

const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// User is an admin account. Accounts are soft-disabled through IsActive and
// never deleted by the application.
type User struct {
	ID           int64  `db:"user_id"       generated:"true"`
	FullName     string `db:"full_name"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	Gender       string `db:"gender"`
	IsActive     bool   `db:"is_active"`
	model.Metadata
}

// Exists reports whether the row was found.
func (u User) Exists() bool {
	return u.ID != 0
}
