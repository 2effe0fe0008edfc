package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Livinu/swift-tools/internal/application/dto"
	"github.com/Livinu/swift-tools/internal/domain/registry"
)

// BatchValidate runs many independent BIC or IBAN validations and
// summarizes the outcome. Each call is stateless over the read-only
// registry, so callers may fan lines out concurrently if they wish;
// this use case keeps the report ordered by input position.
type BatchValidate struct {
	validateBIC  *ValidateBIC
	validateIBAN *ValidateIBAN
	logger       *slog.Logger
}

// NewBatchValidate creates a BatchValidate use case.
func NewBatchValidate(reg *registry.Registry, logger *slog.Logger) *BatchValidate {
	return &BatchValidate{
		validateBIC:  NewValidateBIC(reg, logger),
		validateIBAN: NewValidateIBAN(reg, logger),
		logger:       logger,
	}
}

// Execute validates every code in the request and returns the report.
// Blank lines are skipped.
func (uc *BatchValidate) Execute(ctx context.Context, req dto.BatchValidateRequest) (dto.BatchReport, error) {
	kind := strings.ToLower(req.Type)
	if kind != "bic" && kind != "iban" {
		return dto.BatchReport{}, fmt.Errorf("unsupported validation type %q: want \"bic\" or \"iban\"", req.Type)
	}

	report := dto.BatchReport{Type: kind}
	for _, code := range req.Codes {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}

		var line dto.LineResult
		if kind == "bic" {
			res := uc.validateBIC.Execute(ctx, dto.ValidateBICRequest{BIC: code})
			line = dto.LineResult{Input: code, Valid: res.Valid, Message: res.Message}
		} else {
			res := uc.validateIBAN.Execute(ctx, dto.ValidateIBANRequest{IBAN: code})
			line = dto.LineResult{Input: code, Valid: res.Valid, Message: res.Message}
		}

		report.Results = append(report.Results, line)
		report.Total++
		if line.Valid {
			report.Valid++
		} else {
			report.Invalid++
		}
	}

	uc.logger.Info("batch validation finished",
		"type", kind,
		"total", report.Total,
		"valid", report.Valid,
		"invalid", report.Invalid,
	)
	return report, nil
}
