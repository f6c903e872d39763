package model

import "hoteladmin/shared/model"

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldID       = "customer_id"
	FieldFullName = "full_name"
	FieldEmail    = "email"
	FieldAddress  = "address"
	FieldPhone    = "phone"
	FieldStatus   = "status"
)

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// SearchFields are matched by Search.
var SearchFields = []string{FieldFullName, FieldEmail, FieldAddress, FieldPhone}

// Customer is a guest profile. CustomerID is chosen by the caller.
type Customer struct {
	CustomerID string `db:"customer_id"`
	FullName   string `db:"full_name"`
	Email      string `db:"email"`
	Address    string `db:"address"`
	Phone      string `db:"phone"`
	Status     string `db:"status"`
	model.Metadata
}
