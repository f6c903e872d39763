package dto

import (
	"database/sql"
	"hoteladmin/internal/domains/authlog/model"
	"hoteladmin/shared/constant"
	"hoteladmin/shared/timezone"
	"strings"
)

// LogRequest describes one authentication event. A zero UserID is stored as
// null.
type LogRequest struct {
	UserID    int64
	Email     string
	Action    string
	IPAddress string
	UserAgent string
}

func (r *LogRequest) ToModel() model.AuthLog {
	return model.AuthLog{
		UserID:    sql.NullInt64{Int64: r.UserID, Valid: r.UserID != 0},
		Email:     strings.ToLower(strings.TrimSpace(r.Email)),
		Action:    r.Action,
		IPAddress: r.IPAddress,
		UserAgent: r.UserAgent,
		CreatedAt: timezone.Now(),
	}
}

type ListRequest struct {
	Email  string `json:"email"  validate:"omitempty"`
	Action string `json:"action" validate:"omitempty,oneof=register login logout fail"`
	Limit  int    `json:"limit"  validate:"omitempty,gte=0"`
}

type AuthLogResponse struct {
	ID        int64  `json:"log_id"`
	UserID    *int64 `json:"user_id"`
	Email     string `json:"email"`
	Action    string `json:"action"`
	IPAddress string `json:"ip_address"`
	UserAgent string `json:"user_agent"`
	CreatedAt string `json:"created_at"`
}

func (r *AuthLogResponse) FromModel(model model.AuthLog) {
	r.ID = model.ID
	r.UserID = nil

	if model.UserID.Valid {
		id := model.UserID.Int64
		r.UserID = &id
	}

	r.Email = model.Email
	r.Action = model.Action
	r.IPAddress = model.IPAddress
	r.UserAgent = model.UserAgent
	r.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
}

func FromModels(models []model.AuthLog) []AuthLogResponse {
	res := make([]AuthLogResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
