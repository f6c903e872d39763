package dto

import (
	"database/sql"
	"hoteladmin/internal/domains/transaction/model"
	"hoteladmin/shared/constant"
	"hoteladmin/shared/timezone"
	"strings"
	"time"
)

// RecordTransactionRequest needs at least one of CustomerID or ReservationID.
// A zero TransactionDate means now.
type RecordTransactionRequest struct {
	CustomerID      string    `json:"customer_id"      validate:"required_without=ReservationID,max=50"`
	ReservationID   string    `json:"reservation_id"   validate:"required_without=CustomerID,max=50"`
	Amount          float64   `json:"amount"           validate:"gt=0"`
	TransactionDate time.Time `json:"transaction_date"`
}

func (r *RecordTransactionRequest) ToModel() model.Transaction {
	date := r.TransactionDate
	if date.IsZero() {
		date = timezone.Now()
	}

	return model.Transaction{
		CustomerID:      nullString(r.CustomerID),
		ReservationID:   nullString(r.ReservationID),
		Amount:          r.Amount,
		TransactionDate: date.Truncate(time.Microsecond),
	}
}

type TransactionResponse struct {
	ID              int64   `json:"transaction_id"`
	CustomerID      string  `json:"customer_id,omitempty"`
	ReservationID   string  `json:"reservation_id,omitempty"`
	Amount          float64 `json:"amount"`
	TransactionDate string  `json:"transaction_date"`
}

func (r *TransactionResponse) FromModel(model model.Transaction) {
	r.ID = model.ID
	r.CustomerID = model.CustomerID.String
	r.ReservationID = model.ReservationID.String
	r.Amount = model.Amount
	r.TransactionDate = timezone.Format(model.TransactionDate, constant.DateFormat)
}

func FromModels(models []model.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

func nullString(value string) sql.NullString {
	value = strings.TrimSpace(value)

	return sql.NullString{String: value, Valid: value != constant.Empty}
}
