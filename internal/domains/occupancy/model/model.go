package model

import "time"

const (
	TableName  = "room_occupancy"
	EntityName = "occupancy"

	FieldID            = "occupancy_id"
	FieldDate          = "occupancy_date"
	FieldOccupiedRooms = "occupied_rooms"
	FieldTotalRooms    = "total_rooms"
)

// Occupancy is the daily snapshot for one calendar date, held as UTC
// midnight. At most one row exists per date.
type Occupancy struct {
	ID            int64     `db:"occupancy_id"   generated:"true"`
	Date          time.Time `db:"occupancy_date"`
	OccupiedRooms int       `db:"occupied_rooms"`
	TotalRooms    int       `db:"total_rooms"`
}

// Rate is the occupied share of rooms in percent.
func (o Occupancy) Rate() float64 {
	if o.TotalRooms == 0 {
		return 0
	}

	return float64(o.OccupiedRooms) * 100 / float64(o.TotalRooms)
}
