package dto

import (
	"hoteladmin/internal/domains/customer/model"
	gDto "hoteladmin/shared/dto"
	"hoteladmin/shared/timezone"
	"strings"
)

type CreateCustomerRequest struct {
	CustomerID string `json:"customer_id" validate:"notblank,max=50"`
	FullName   string `json:"full_name"   validate:"notblank,max=100"`
	Email      string `json:"email"       validate:"notblank,emailshape,max=100"`
	Address    string `json:"address"     validate:"max=255"`
	Phone      string `json:"phone"       validate:"max=30"`
	Status     string `json:"status"      validate:"omitempty,oneof=Active Inactive"`
}

func (r *CreateCustomerRequest) ToModel() model.Customer {
	status := r.Status
	if status == "" {
		status = model.StatusActive
	}

	customer := model.Customer{
		CustomerID: strings.TrimSpace(r.CustomerID),
		FullName:   strings.TrimSpace(r.FullName),
		Email:      strings.ToLower(strings.TrimSpace(r.Email)),
		Address:    strings.TrimSpace(r.Address),
		Phone:      strings.TrimSpace(r.Phone),
		Status:     status,
	}
	customer.Stamp(timezone.Now())

	return customer
}

// UpdateCustomerRequest holds the editable columns. CustomerID is immutable.
type UpdateCustomerRequest struct {
	FullName *string `db:"full_name" json:"full_name,omitempty" validate:"omitnil,notblank,max=100"`
	Email    *string `db:"email"     json:"email,omitempty"     validate:"omitnil,emailshape,max=100"`
	Address  *string `db:"address"   json:"address,omitempty"   validate:"omitnil,max=255"`
	Phone    *string `db:"phone"     json:"phone,omitempty"     validate:"omitnil,max=30"`
	Status   *string `db:"status"    json:"status,omitempty"    validate:"omitnil,oneof=Active Inactive"`
}

func (r *UpdateCustomerRequest) IsEmpty() bool {
	return r.FullName == nil && r.Email == nil && r.Address == nil && r.Phone == nil && r.Status == nil
}

// Normalize lowercases the email the same way ToModel does.
func (r *UpdateCustomerRequest) Normalize() {
	if r.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*r.Email))
		r.Email = &email
	}
}

type CustomerResponse struct {
	CustomerID string `json:"customer_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	Status     string `json:"status"`
	gDto.Metadata
}

func (r *CustomerResponse) FromModel(model model.Customer) {
	r.CustomerID = model.CustomerID
	r.FullName = model.FullName
	r.Email = model.Email
	r.Address = model.Address
	r.Phone = model.Phone
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.Customer) []CustomerResponse {
	res := make([]CustomerResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
