package event

import (
	"Endpoint_Monitoring_Service/internal/monitoring-service/model"
	"time"
)

const (
	TypeResultRecorded  = "result_recorded"
	TypeEndpointDeleted = "endpoint_deleted"
)

type MonitoringEvent struct {
	Type       string     `json:"type"`
	EndpointID string     `json:"endpoint_id"`
	ResultID   string     `json:"result_id,omitempty"`
	URL        string     `json:"url,omitempty"`
	CheckDate  *time.Time `json:"check_date,omitempty"`
	StatusCode *int       `json:"status_code,omitempty"`
	Up         int        `json:"up"` // 1 for a 2xx response, 0 otherwise
}

func NewResultRecordedEvent(endpoint model.MonitoredEndpoint, result model.MonitoringResult) MonitoringEvent {
	checkDate := result.CheckDate
	e := MonitoringEvent{
		Type:       TypeResultRecorded,
		EndpointID: endpoint.ID,
		ResultID:   result.ID,
		URL:        endpoint.URL,
		CheckDate:  &checkDate,
		StatusCode: result.StatusCode,
	}
	if result.StatusCode != nil && *result.StatusCode >= 200 && *result.StatusCode < 300 {
		e.Up = 1
	}
	return e
}

func NewEndpointDeletedEvent(endpointID string) MonitoringEvent {
	return MonitoringEvent{
		Type:       TypeEndpointDeleted,
		EndpointID: endpointID,
	}
}
