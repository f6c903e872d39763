package model

import (
	"database/sql"
	"hoteladmin/shared/model"
	"time"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID                = "reservation_id"
	FieldUserID            = "user_id"
	FieldGuestName         = "guest_name"
	FieldCheckinDate       = "checkin_date"
	FieldCheckoutDate      = "checkout_date"
	FieldBookingAmount     = "booking_amount"
	FieldPaymentStatus     = "payment_status"
	FieldFulfillmentStatus = "fulfillment_status"
)

const (
	PaymentPaid      = "Paid"
	PaymentPending   = "Pending"
	PaymentCancelled = "Cancelled"

	FulfillmentConfirmed = "Confirmed"
	FulfillmentPending   = "Pending"
	FulfillmentCancelled = "Cancelled"
)

// SearchFields are matched as substrings by Search. The check-in date is
// matched separately since DATE columns cannot be LIKE-compared everywhere.
var SearchFields = []string{FieldID, FieldGuestName}

// Reservation belongs to the user that booked it. Dates are calendar days
// held as UTC midnight.
type Reservation struct {
	ReservationID     string       `db:"reservation_id"`
	UserID            int64        `db:"user_id"`
	GuestName         string       `db:"guest_name"`
	CheckinDate       time.Time    `db:"checkin_date"`
	CheckoutDate      sql.NullTime `db:"checkout_date"`
	BookingAmount     float64      `db:"booking_amount"`
	PaymentStatus     string       `db:"payment_status"`
	FulfillmentStatus string       `db:"fulfillment_status"`
	model.Metadata
}
