package models

import "time"

// LocationEvent stores one location ping reported by a crew device.
type LocationEvent struct {
	ID         uint      `gorm:"primaryKey"`
	DeviceID   string    `gorm:"column:telefono;size:64;index:idx_device_time,priority:1;not null"`
	Username   string    `gorm:"column:usuario;size:64"`
	Technician string    `gorm:"column:tecnico;size:128"`
	Crew       string    `gorm:"column:brigada;size:64"`
	Contractor string    `gorm:"column:contrata;size:128"`
	Latitude   float64   `gorm:"column:latitud;not null"`
	Longitude  float64   `gorm:"column:longitud;not null"`
	RecordedAt time.Time `gorm:"column:timestamp;index:idx_device_time,priority:2;not null"`
}

func (LocationEvent) TableName() string {
	return "ubicaciones_brigadas"
}

// TechnicianProfile maps a Telegram user id to crew attribution.
// Zero or one row per device; a missing row means an unregistered
// device, which is an expected state.
type TechnicianProfile struct {
	ID         uint   `gorm:"primaryKey"`
	TelegramID string `gorm:"column:telegram_id;size:64;uniqueIndex;not null"`
	Technician string `gorm:"column:tecnico;size:128"`
	Crew       string `gorm:"column:brigada;size:64"`
	Contractor string `gorm:"column:contrata;size:128"`
}

func (TechnicianProfile) TableName() string {
	return "tecnicos_telegram"
}

// FreshnessView is the per-device projection served by the polling
// endpoint. Computed on every read, never persisted.
type FreshnessView struct {
	DeviceID       string    `json:"telefono"`
	Username       string    `json:"usuario"`
	Technician     string    `json:"tecnico"`
	Crew           string    `json:"brigada"`
	Contractor     string    `json:"contrata"`
	Latitude       float64   `json:"latitud"`
	Longitude      float64   `json:"longitud"`
	RecordedAt     time.Time `json:"timestamp"`
	MinutesElapsed int       `json:"minutos_transcurridos"`
	Status         string    `json:"estado"`
}
