package model

import "time"

type MonitoringResult struct {
	ID         string `gorm:"default:(-)"`
	EndpointID string
	CheckDate  time.Time
	StatusCode *int // nil when the request never got a response
	Payload    string
}

func (MonitoringResult) TableName() string {
	return "monitoring_results"
}

func (r MonitoringResult) Failed() bool {
	return r.StatusCode == nil
}
