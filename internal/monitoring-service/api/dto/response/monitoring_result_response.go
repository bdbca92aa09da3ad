package response

import "time"

type MonitoringResultResponse struct {
	ID         string    `json:"id"`
	EndpointID string    `json:"endpoint_id"`
	CheckDate  time.Time `json:"check_date"`
	StatusCode *int      `json:"status_code"`
	Payload    string    `json:"payload"`
	Failed     bool      `json:"failed"`
}
