package types

import "time"

// HealthState classifies a collaborator's availability.
type HealthState string

const (
	HealthStateHealthy   HealthState = "healthy"
	HealthStateDegraded  HealthState = "degraded"
	HealthStateUnhealthy HealthState = "unhealthy"
)

// HealthStatus is one health probe result for a collaborator (graph
// database, text-generation provider).
type HealthStatus struct {
	State     HealthState `json:"state"`
	Message   string      `json:"message,omitempty"`
	CheckedAt time.Time   `json:"checked_at"`
}

// NewHealthStatus stamps a status with the probe time.
func NewHealthStatus(state HealthState, message string) HealthStatus {
	return HealthStatus{
		State:     state,
		Message:   message,
		CheckedAt: time.Now(),
	}
}

// Healthy reports a fully operational collaborator.
func Healthy(message string) HealthStatus {
	return NewHealthStatus(HealthStateHealthy, message)
}

// Degraded reports a collaborator that responds but below contract.
func Degraded(message string) HealthStatus {
	return NewHealthStatus(HealthStateDegraded, message)
}

// Unhealthy reports an unreachable or failing collaborator.
func Unhealthy(message string) HealthStatus {
	return NewHealthStatus(HealthStateUnhealthy, message)
}

// IsHealthy reports whether the probe found the collaborator operational.
func (h HealthStatus) IsHealthy() bool {
	return h.State == HealthStateHealthy
}
