// Package usecase wires the domain validators and generators into the
// operations the CLI exposes.
package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Livinu/swift-tools/internal/application/dto"
	"github.com/Livinu/swift-tools/internal/domain/registry"
	"github.com/Livinu/swift-tools/internal/domain/validation"
	"github.com/Livinu/swift-tools/internal/domain/valueobject"
)

// ValidateBIC validates a single BIC/SWIFT code.
type ValidateBIC struct {
	registry *registry.Registry
	logger   *slog.Logger
}

// NewValidateBIC creates a ValidateBIC use case.
func NewValidateBIC(reg *registry.Registry, logger *slog.Logger) *ValidateBIC {
	return &ValidateBIC{registry: reg, logger: logger}
}

// Execute parses the code and returns the structured result. A failed
// validation is a normal outcome carried in the result, not an error.
func (uc *ValidateBIC) Execute(ctx context.Context, req dto.ValidateBICRequest) dto.BICValidationResult {
	bic, err := valueobject.ParseBIC(req.BIC, uc.registry)
	if err != nil {
		uc.logger.Debug("BIC validation failed", "input", req.BIC, "error", err)
		return dto.BICValidationResult{
			Input:     req.BIC,
			Valid:     false,
			Message:   err.Error(),
			ErrorKind: validation.Kind(err),
		}
	}

	countryName, _ := uc.registry.CountryName(bic.CountryCode())
	uc.logger.Debug("BIC validated", "bic", bic.FullCode(), "country", countryName)
	return dto.BICValidationResult{
		Input:           req.BIC,
		Valid:           true,
		Message:         fmt.Sprintf("valid BIC: %s (%s)", bic.FullCode(), countryName),
		BankCode:        bic.BankCode(),
		CountryCode:     bic.CountryCode(),
		CountryName:     countryName,
		LocationCode:    bic.LocationCode(),
		BranchCode:      bic.BranchCode(),
		IsPrimaryOffice: bic.IsPrimaryOffice(),
	}
}
