package dto

import (
	"hoteladmin/internal/domains/user/model"
	gDto "hoteladmin/shared/dto"
)

type UserResponse struct {
	ID       int64  `json:"user_id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Gender   string `json:"gender"`
	IsActive bool   `json:"is_active"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.FullName = model.FullName
	r.Email = model.Email
	r.Gender = model.Gender
	r.IsActive = model.IsActive
	r.Metadata.FromModel(model.Metadata)
}

type UpdateUserRequest struct {
	FullName *string `db:"full_name" json:"full_name,omitempty" validate:"omitnil,notblank,max=100"`
	Gender   *string `db:"gender"    json:"gender,omitempty"    validate:"omitnil,oneof=Male Female Other"`
}
