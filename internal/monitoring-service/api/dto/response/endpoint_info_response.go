package response

import "time"

type EndpointInfoResponse struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	URL                string     `json:"url"`
	MonitoringInterval int        `json:"monitoring_interval"`
	LastCheckDate      *time.Time `json:"last_check_date"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}
