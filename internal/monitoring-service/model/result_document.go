package model

import "time"

// ResultDocument is the analytics copy of a MonitoringResult kept in Elasticsearch.
type ResultDocument struct {
	ResultID   string    `json:"result_id"`
	EndpointID string    `json:"endpoint_id"`
	URL        string    `json:"url"`
	CheckDate  time.Time `json:"check_date"`
	StatusCode *int      `json:"status_code"`
	Up         int       `json:"up"` // 1 for healthy, 0 for error status and unreachable
}
