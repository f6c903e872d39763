package dto

import (
	"fmt"
	"hoteladmin/internal/domains/occupancy/model"
	"hoteladmin/shared/constant"
	"hoteladmin/shared/timezone"
	"math"
)

type UpsertOccupancyRequest struct {
	Date          string `json:"date"           validate:"required,datetime=2006-01-02"`
	OccupiedRooms int    `json:"occupied_rooms" validate:"gte=0,ltefield=TotalRooms"`
	TotalRooms    int    `json:"total_rooms"    validate:"gt=0"`
}

func (r *UpsertOccupancyRequest) ToModel() (model.Occupancy, error) {
	date, err := timezone.ParseDate(r.Date)
	if err != nil {
		return model.Occupancy{}, fmt.Errorf("invalid date: %w", err)
	}

	return model.Occupancy{
		Date:          date,
		OccupiedRooms: r.OccupiedRooms,
		TotalRooms:    r.TotalRooms,
	}, nil
}

// ListOccupancyRequest is an inclusive date range.
type ListOccupancyRequest struct {
	From string `json:"from" validate:"required,datetime=2006-01-02"`
	To   string `json:"to"   validate:"required,datetime=2006-01-02"`
}

type OccupancyResponse struct {
	Date          string  `json:"date"`
	OccupiedRooms int     `json:"occupied_rooms"`
	TotalRooms    int     `json:"total_rooms"`
	Rate          float64 `json:"rate"`
}

func (r *OccupancyResponse) FromModel(model model.Occupancy) {
	r.Date = model.Date.UTC().Format(constant.DayFormat)
	r.OccupiedRooms = model.OccupiedRooms
	r.TotalRooms = model.TotalRooms
	r.Rate = math.Round(model.Rate()*100) / 100
}

func FromModels(models []model.Occupancy) []OccupancyResponse {
	res := make([]OccupancyResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
