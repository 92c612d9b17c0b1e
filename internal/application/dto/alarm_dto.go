package dto

import "time"

// AlarmResponse alarma para respuestas HTTP.
type AlarmResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	ActionLog   string    `json:"action_log,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
