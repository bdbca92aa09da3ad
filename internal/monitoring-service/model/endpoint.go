package model

import "time"

type MonitoredEndpoint struct {
	ID                 string `gorm:"default:(-)"`
	Name               string
	URL                string
	OwnerID            string
	MonitoringInterval int        // seconds
	LastCheckDate      *time.Time // nil until the first check is recorded
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (MonitoredEndpoint) TableName() string {
	return "monitored_endpoints"
}
