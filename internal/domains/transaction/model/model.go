package model

import (
	"database/sql"
	"time"
)

const (
	TableName  = "transactions"
	EntityName = "transaction"

	FieldID              = "transaction_id"
	FieldCustomerID      = "customer_id"
	FieldReservationID   = "reservation_id"
	FieldAmount          = "amount"
	FieldTransactionDate = "transaction_date"
)

// Transaction is a payment event. Its references are nulled, not cascaded,
// when the customer or reservation is deleted.
type Transaction struct {
	ID              int64          `db:"transaction_id"   generated:"true"`
	CustomerID      sql.NullString `db:"customer_id"`
	ReservationID   sql.NullString `db:"reservation_id"`
	Amount          float64        `db:"amount"`
	TransactionDate time.Time      `db:"transaction_date"`
}
