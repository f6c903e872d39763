package model

import "hoteladmin/shared/model"

const (
	TableName  = "staff"
	EntityName = "staff"

	FieldID           = "staff_id"
	FieldFullName     = "full_name"
	FieldEmail        = "email"
	FieldPhone        = "phone"
	FieldAddress      = "address"
	FieldStatus       = "status"
	FieldPasswordHash = "password_hash"
)

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

var SearchFields = []string{FieldFullName, FieldEmail, FieldAddress, FieldPhone}

// Staff is an employee record with its own login credential.
type Staff struct {
	StaffID      string `db:"staff_id"`
	FullName     string `db:"full_name"`
	Email        string `db:"email"`
	Phone        string `db:"phone"`
	Address      string `db:"address"`
	Status       string `db:"status"`
	PasswordHash string `db:"password_hash"`
	model.Metadata
}
