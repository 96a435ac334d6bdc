package entity

import "time"

// Location is one GPS sample for a pet. Rows are append-only: created_at is
// assigned once at insert and never changes, updated_at tracks the last write.
type Location struct {
	ID        int64      `json:"id"`
	MascotaID int64      `json:"mascota"`
	Latitude  Coordinate `json:"latitude"`
	Longitude Coordinate `json:"longitude"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	IsActive  bool       `json:"is_active"`
}

// NormalizedLocation is the canonical form of an inbound telemetry event after
// validation, before it is persisted or forwarded.
type NormalizedLocation struct {
	MascotaID int64
	Latitude  Coordinate
	Longitude Coordinate
}
