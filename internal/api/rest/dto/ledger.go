package dto

import (
	"github.com/feral-file/carbon-engine/internal/domain"
)

// TrackerStatusRequest sets the status of a holder's tracker
type TrackerStatusRequest struct {
	Status    domain.TrackerStatus `json:"status" binding:"required"`
	Reference string               `json:"reference,omitempty"`
}

// HealthResponse is the body of the health check
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
