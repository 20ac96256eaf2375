package models

import "time"

type DoorStatus string

const (
	DoorStatusOpen    DoorStatus = "open"
	DoorStatusClosed  DoorStatus = "closed"
	DoorStatusUnknown DoorStatus = "unknown"
)

type AlertType string

const (
	AlertTypeTemperature AlertType = "temperature"
	AlertTypeDoor        AlertType = "door"
)

// Reading is one normalized sensor observation. Rows are append-only: the
// pipeline never updates or deletes them, and overlapping feed windows are
// allowed to produce duplicates.
type Reading struct {
	ID          uint       `gorm:"primaryKey" json:"-"`
	Temperature float64    `json:"temperature"`
	DoorStatus  DoorStatus `gorm:"type:varchar(10);check:door_status IN ('open','closed','unknown')" json:"doorStatus"`
	Timestamp   time.Time  `gorm:"index" json:"timestamp"`
}

type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `gorm:"uniqueIndex" json:"email"`
	Phone     string    `json:"phone"`
	Password  string    `json:"-"` // bcrypt hash, never serialized
	CreatedAt time.Time `json:"-"`
}

// Thresholds is the single-row alert rule set for the cold room.
type Thresholds struct {
	ID              uint    `gorm:"primaryKey" json:"-"`
	MaxTemperature  float64 `json:"maxTemperature"`
	AlertOnDoorOpen bool    `json:"alertOnDoorOpen"`
}

type Alert struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Timestamp time.Time `json:"timestamp"`
	Type      AlertType `gorm:"type:varchar(20);check:type IN ('temperature','door')" json:"type"`
	Message   string    `json:"message"`
}

// Analysis is the analysis response payload: the full chronological reading
// history plus the predicted next temperature.
type Analysis struct {
	Readings             []Reading `json:"sensorData"`
	PredictedTemperature float64   `json:"predicted_temp"`
}
