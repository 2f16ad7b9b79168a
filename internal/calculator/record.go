package calculator

import (
	"time"

	apperrors "github.com/agbru/digitcalc/internal/errors"
	"github.com/agbru/digitcalc/pkg/models"
)

// Record converts an evaluation outcome into its JSON form.
func Record(res Result, err error) models.Evaluation {
	rec := models.Evaluation{
		Operation:  res.Operation,
		Args:       res.Args,
		Status:     models.StatusOK,
		DurationMS: float64(res.Duration) / float64(time.Millisecond),
	}
	if rec.Args == nil {
		rec.Args = []string{}
	}
	switch {
	case err == nil:
		rec.Result = res.Value
	case apperrors.IsContextError(err):
		rec.Status = models.StatusCanceled
		rec.Error = err.Error()
	default:
		rec.Status = models.StatusError
		rec.Error = err.Error()
		if kind, ok := apperrors.KindOf(err); ok {
			rec.ErrorKind = kind.String()
		}
	}
	return rec
}

// Infos converts operations to their JSON listing form.
func Infos(ops []Operation) []models.OperationInfo {
	infos := make([]models.OperationInfo, 0, len(ops))
	for _, op := range ops {
		infos = append(infos, models.OperationInfo{
			Name:        op.Name,
			Domain:      string(op.Domain),
			Operands:    op.Operands,
			Arity:       op.Arity(),
			Description: op.Description,
		})
	}
	return infos
}
