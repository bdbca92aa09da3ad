package request

type EndpointRequest struct {
	Name               string `json:"name" binding:"required"`
	URL                string `json:"url" binding:"required,url"`
	MonitoringInterval *int   `json:"monitoring_interval" binding:"required,gte=1"`
}
