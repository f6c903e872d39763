package dto

import (
	"hoteladmin/internal/domains/staff/model"
	gDto "hoteladmin/shared/dto"
	"hoteladmin/shared/timezone"
	"strings"
)

type CreateStaffRequest struct {
	StaffID  string `json:"staff_id"  validate:"notblank,max=50"`
	FullName string `json:"full_name" validate:"notblank,max=100"`
	Email    string `json:"email"     validate:"notblank,emailshape,max=100"`
	Phone    string `json:"phone"     validate:"max=30"`
	Address  string `json:"address"   validate:"max=255"`
	Status   string `json:"status"    validate:"omitempty,oneof=Active Inactive"`
	Password string `json:"password"  validate:"notblank"`
}

func (r *CreateStaffRequest) ToModel(passwordHash string) model.Staff {
	status := r.Status
	if status == "" {
		status = model.StatusActive
	}

	staff := model.Staff{
		StaffID:      strings.TrimSpace(r.StaffID),
		FullName:     strings.TrimSpace(r.FullName),
		Email:        strings.ToLower(strings.TrimSpace(r.Email)),
		Phone:        strings.TrimSpace(r.Phone),
		Address:      strings.TrimSpace(r.Address),
		Status:       status,
		PasswordHash: passwordHash,
	}
	staff.Stamp(timezone.Now())

	return staff
}

// UpdateStaffRequest holds the editable columns. A nil Password keeps the
// current credential.
type UpdateStaffRequest struct {
	FullName *string `db:"full_name" json:"full_name,omitempty" validate:"omitnil,notblank,max=100"`
	Email    *string `db:"email"     json:"email,omitempty"     validate:"omitnil,emailshape,max=100"`
	Phone    *string `db:"phone"     json:"phone,omitempty"     validate:"omitnil,max=30"`
	Address  *string `db:"address"   json:"address,omitempty"   validate:"omitnil,max=255"`
	Status   *string `db:"status"    json:"status,omitempty"    validate:"omitnil,oneof=Active Inactive"`
	Password *string `db:"-"         json:"password,omitempty"  validate:"omitnil,notblank"`
}

func (r *UpdateStaffRequest) IsEmpty() bool {
	return r.FullName == nil && r.Email == nil && r.Phone == nil && r.Address == nil && r.Status == nil && r.Password == nil
}

func (r *UpdateStaffRequest) Normalize() {
	if r.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*r.Email))
		r.Email = &email
	}
}

type StaffResponse struct {
	StaffID  string `json:"staff_id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Status   string `json:"status"`
	gDto.Metadata
}

func (r *StaffResponse) FromModel(model model.Staff) {
	r.StaffID = model.StaffID
	r.FullName = model.FullName
	r.Email = model.Email
	r.Phone = model.Phone
	r.Address = model.Address
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.Staff) []StaffResponse {
	res := make([]StaffResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
