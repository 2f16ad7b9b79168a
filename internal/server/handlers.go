package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/agbru/digitcalc/internal/calculator"
	apperrors "github.com/agbru/digitcalc/internal/errors"
	"github.com/agbru/digitcalc/internal/logging"
	"github.com/agbru/digitcalc/pkg/models"
)

// handleHealth reports the service as healthy along with the number of
// registered operations.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "", "Method not allowed")
		return
	}

	s.writeJSONResponse(w, http.StatusOK, HealthResponse{
		Status:     "healthy",
		Timestamp:  time.Now().Unix(),
		Operations: len(s.evaluator.Registry().List()),
	})
}

// handleOperations lists the registered operations with their signatures.
func (s *Server) handleOperations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "", "Method not allowed")
		return
	}

	s.writeJSONResponse(w, http.StatusOK, OperationsResponse{
		Operations: calculator.Infos(s.evaluator.Operations()),
	})
}

// handleEvaluate runs one operation. GET reads the query parameters op and
// arg (repeated in operand order); POST reads an EvaluateRequest body.
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var (
		req EvaluateRequest
		err error
	)
	switch r.Method {
	case http.MethodGet:
		req, err = parseEvaluateQuery(r)
	case http.MethodPost:
		req, err = s.decodeEvaluateBody(w, r)
	default:
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "", "Method not allowed")
		return
	}
	if err != nil {
		var reqErr requestError
		if errors.As(err, &reqErr) {
			s.writeErrorResponse(w, reqErr.StatusCode, "", reqErr.Message)
		} else {
			s.writeErrorResponse(w, http.StatusBadRequest, "", err.Error())
		}
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeouts.RequestTimeout)
	defer cancel()

	res, err := s.evaluator.Evaluate(ctx, req.Op, req.Args)
	if err != nil {
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			s.logger.Error("evaluation failed", err, logging.String("operation", req.Op))
		}
		kind := ""
		if k, ok := apperrors.KindOf(err); ok {
			kind = k.String()
		}
		s.writeErrorResponse(w, status, kind, err.Error())
		return
	}

	s.writeJSONResponse(w, http.StatusOK, calculator.Record(res, nil))
}

func parseEvaluateQuery(r *http.Request) (EvaluateRequest, error) {
	q := r.URL.Query()
	req := EvaluateRequest{
		Op:   strings.ToLower(strings.TrimSpace(q.Get("op"))),
		Args: q["arg"],
	}
	if req.Op == "" {
		return req, requestError{Message: "Missing 'op' parameter", StatusCode: http.StatusBadRequest}
	}
	if req.Args == nil {
		req.Args = []string{}
	}
	return req, nil
}

func (s *Server) decodeEvaluateBody(w http.ResponseWriter, r *http.Request) (EvaluateRequest, error) {
	var req EvaluateRequest
	body := http.MaxBytesReader(w, r.Body, s.securityConfig.MaxBodyBytes)
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return req, requestError{Message: "Request body too large", StatusCode: http.StatusRequestEntityTooLarge}
		}
		return req, requestError{Message: "Invalid JSON body: " + err.Error(), StatusCode: http.StatusBadRequest}
	}
	req.Op = strings.ToLower(strings.TrimSpace(req.Op))
	if req.Op == "" {
		return req, requestError{Message: "Missing 'op' field", StatusCode: http.StatusBadRequest}
	}
	if req.Args == nil {
		req.Args = []string{}
	}
	return req, nil
}

// statusFor maps an evaluation failure to its HTTP status: 404 for unknown
// operations, 400 for malformed operands, 413 for oversized operands, 422
// for arithmetic failures and 504/503 for deadline and cancellation.
func statusFor(err error) int {
	var validation apperrors.ValidationError
	switch {
	case errors.Is(err, calculator.ErrUnknownOperation):
		return http.StatusNotFound
	case errors.Is(err, calculator.ErrOperandTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	}
	if kind, ok := apperrors.KindOf(err); ok {
		if kind.IsParse() {
			return http.StatusBadRequest
		}
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func (s *Server) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Printf("Error encoding JSON response: %v", err)
	}
}

func (s *Server) writeErrorResponse(w http.ResponseWriter, statusCode int, kind, message string) {
	s.writeJSONResponse(w, statusCode, models.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Kind:    kind,
		Message: message,
	})
}
