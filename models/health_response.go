package models

type HealthResponse struct {
	Status           string `json:"status"`
	Timestamp        int64  `json:"timestamp"`
	APIKeyConfigured bool   `json:"api_key_configured"`
}
