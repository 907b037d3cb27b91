package dto

// Health statuses
const (
	HealthStatusUp   = "UP"
	HealthStatusDown = "DOWN"
)

// HealthResponse represents the service health
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Error    string `json:"error,omitempty"`
}
