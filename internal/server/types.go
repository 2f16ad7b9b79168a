package server

import "github.com/agbru/digitcalc/pkg/models"

// EvaluateRequest is the JSON body accepted by POST /evaluate.
type EvaluateRequest struct {
	Op   string   `json:"op"`
	Args []string `json:"args"`
}

// OperationsResponse is the body of GET /operations.
type OperationsResponse struct {
	Operations []models.OperationInfo `json:"operations"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status     string `json:"status"`
	Timestamp  int64  `json:"timestamp"`
	Operations int    `json:"operations"`
}

// requestError is a malformed request, reported before any evaluation.
type requestError struct {
	Message    string
	StatusCode int
}

func (e requestError) Error() string {
	return e.Message
}
