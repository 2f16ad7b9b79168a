/*
Package models defines the JSON records shared by the command line, the
batch runner and the HTTP API.

These models are used for:
- **Single evaluations**: the `-json` output and the `/evaluate` response.
- **Batch reports**: one Evaluation per job plus a BatchSummary.
*/
package models

// Status values carried by Evaluation.
const (
	StatusOK       = "ok"
	StatusError    = "error"
	StatusCanceled = "canceled"
)

// Evaluation is the outcome of one operation on its operands.
type Evaluation struct {
	Operation  string   `json:"operation"`            // Registered operation name, e.g. "int.div".
	Args       []string `json:"args"`                 // Operands as given.
	Result     string   `json:"result,omitempty"`     // Canonical text of the result.
	Status     string   `json:"status"`               // One of ok, error, canceled.
	Error      string   `json:"error,omitempty"`      // Error message when Status is not ok.
	ErrorKind  string   `json:"error_kind,omitempty"` // Taxonomy kind such as "DivisionByZero".
	DurationMS float64  `json:"duration_ms"`          // Wall time in milliseconds.
}

// BatchSummary aggregates a batch run.
type BatchSummary struct {
	Total       int          `json:"total"`
	Succeeded   int          `json:"succeeded"`
	Failed      int          `json:"failed"`
	Canceled    int          `json:"canceled"`
	DurationMS  float64      `json:"duration_ms"`
	Evaluations []Evaluation `json:"evaluations"`
}

// OperationInfo describes one registered operation for listings.
type OperationInfo struct {
	Name        string `json:"name"`
	Domain      string `json:"domain"`
	Operands    string `json:"operands"`
	Arity       int    `json:"arity"`
	Description string `json:"description"`
}

// ErrorResponse is the body of every failed HTTP request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message"`
}
