package dto

import (
	"database/sql"
	"fmt"
	"hoteladmin/internal/domains/reservation/model"
	"hoteladmin/shared"
	"hoteladmin/shared/constant"
	gDto "hoteladmin/shared/dto"
	"hoteladmin/shared/timezone"
	"strings"
)

// PaymentRequest records a transaction together with a new reservation.
type PaymentRequest struct {
	Amount     float64 `json:"amount"      validate:"gt=0"`
	CustomerID string  `json:"customer_id" validate:"max=50"`
}

type CreateReservationRequest struct {
	ReservationID     string          `json:"reservation_id"     validate:"notblank,max=50"`
	GuestName         string          `json:"guest_name"         validate:"notblank,max=100"`
	CheckinDate       string          `json:"checkin_date"       validate:"required,datetime=2006-01-02"`
	CheckoutDate      string          `json:"checkout_date"      validate:"omitempty,datetime=2006-01-02"`
	BookingAmount     float64         `json:"booking_amount"     validate:"gte=0"`
	PaymentStatus     string          `json:"payment_status"     validate:"omitempty,oneof=Paid Pending Cancelled"`
	FulfillmentStatus string          `json:"fulfillment_status" validate:"omitempty,oneof=Confirmed Pending Cancelled"`
	Payment           *PaymentRequest `json:"payment,omitempty"  validate:"omitnil"`
}

func (r *CreateReservationRequest) ToModel(userID int64) (model.Reservation, error) {
	checkin, err := timezone.ParseDate(r.CheckinDate)
	if err != nil {
		return model.Reservation{}, fmt.Errorf("invalid checkin_date: %w", err)
	}

	checkout, err := parseOptionalDate(r.CheckoutDate)
	if err != nil {
		return model.Reservation{}, fmt.Errorf("invalid checkout_date: %w", err)
	}

	paymentStatus := r.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = model.PaymentPending

		if r.Payment != nil {
			paymentStatus = model.PaymentPaid
		}
	}

	fulfillmentStatus := r.FulfillmentStatus
	if fulfillmentStatus == "" {
		fulfillmentStatus = model.FulfillmentPending
	}

	reservation := model.Reservation{
		ReservationID:     strings.TrimSpace(r.ReservationID),
		UserID:            userID,
		GuestName:         strings.TrimSpace(r.GuestName),
		CheckinDate:       checkin,
		CheckoutDate:      checkout,
		BookingAmount:     r.BookingAmount,
		PaymentStatus:     paymentStatus,
		FulfillmentStatus: fulfillmentStatus,
	}
	reservation.Stamp(timezone.Now())

	return reservation, nil
}

// UpdateReservationRequest holds the editable columns. The reservation id and
// owner are immutable. An empty CheckoutDate clears it.
type UpdateReservationRequest struct {
	GuestName         *string  `db:"guest_name"         json:"guest_name,omitempty"         validate:"omitnil,notblank,max=100"`
	CheckinDate       *string  `db:"-"                  json:"checkin_date,omitempty"       validate:"omitnil,datetime=2006-01-02"`
	CheckoutDate      *string  `db:"-"                  json:"checkout_date,omitempty"      validate:"omitnil,omitempty,datetime=2006-01-02"`
	BookingAmount     *float64 `db:"booking_amount"     json:"booking_amount,omitempty"     validate:"omitnil,gte=0"`
	PaymentStatus     *string  `db:"payment_status"     json:"payment_status,omitempty"     validate:"omitnil,oneof=Paid Pending Cancelled"`
	FulfillmentStatus *string  `db:"fulfillment_status" json:"fulfillment_status,omitempty" validate:"omitnil,oneof=Confirmed Pending Cancelled"`
}

func (r *UpdateReservationRequest) IsEmpty() bool {
	return r.GuestName == nil && r.CheckinDate == nil && r.CheckoutDate == nil &&
		r.BookingAmount == nil && r.PaymentStatus == nil && r.FulfillmentStatus == nil
}

// ToFields returns the columns to update, with dates parsed.
func (r *UpdateReservationRequest) ToFields() (map[string]any, error) {
	fields := shared.TransformFields(r)

	if r.GuestName != nil {
		fields[model.FieldGuestName] = strings.TrimSpace(*r.GuestName)
	}

	if r.CheckinDate != nil {
		checkin, err := timezone.ParseDate(*r.CheckinDate)
		if err != nil {
			return nil, fmt.Errorf("invalid checkin_date: %w", err)
		}

		fields[model.FieldCheckinDate] = checkin
	}

	if r.CheckoutDate != nil {
		checkout, err := parseOptionalDate(*r.CheckoutDate)
		if err != nil {
			return nil, fmt.Errorf("invalid checkout_date: %w", err)
		}

		fields[model.FieldCheckoutDate] = checkout
	}

	return fields, nil
}

type ReservationResponse struct {
	ReservationID     string  `json:"reservation_id"`
	UserID            int64   `json:"user_id"`
	GuestName         string  `json:"guest_name"`
	CheckinDate       string  `json:"checkin_date"`
	CheckoutDate      string  `json:"checkout_date,omitempty"`
	BookingAmount     float64 `json:"booking_amount"`
	PaymentStatus     string  `json:"payment_status"`
	FulfillmentStatus string  `json:"fulfillment_status"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ReservationID = model.ReservationID
	r.UserID = model.UserID
	r.GuestName = model.GuestName
	r.CheckinDate = model.CheckinDate.UTC().Format(constant.DayFormat)
	r.CheckoutDate = ""

	if model.CheckoutDate.Valid {
		r.CheckoutDate = model.CheckoutDate.Time.UTC().Format(constant.DayFormat)
	}

	r.BookingAmount = model.BookingAmount
	r.PaymentStatus = model.PaymentStatus
	r.FulfillmentStatus = model.FulfillmentStatus
	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.Reservation) []ReservationResponse {
	res := make([]ReservationResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

func parseOptionalDate(value string) (sql.NullTime, error) {
	if strings.TrimSpace(value) == constant.Empty {
		return sql.NullTime{}, nil
	}

	date, err := timezone.ParseDate(strings.TrimSpace(value))
	if err != nil {
		return sql.NullTime{}, err //nolint:wrapcheck
	}

	return sql.NullTime{Time: date, Valid: true}, nil
}
