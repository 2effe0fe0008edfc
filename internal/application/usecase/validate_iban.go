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

// ValidateIBAN validates a single IBAN in any spacing or casing.
type ValidateIBAN struct {
	registry *registry.Registry
	logger   *slog.Logger
}

// NewValidateIBAN creates a ValidateIBAN use case.
func NewValidateIBAN(reg *registry.Registry, logger *slog.Logger) *ValidateIBAN {
	return &ValidateIBAN{registry: reg, logger: logger}
}

// Execute parses the IBAN and returns the structured result. A failed
// validation is a normal outcome carried in the result, not an error.
func (uc *ValidateIBAN) Execute(ctx context.Context, req dto.ValidateIBANRequest) dto.IBANValidationResult {
	iban, err := valueobject.ParseIBAN(req.IBAN, uc.registry)
	if err != nil {
		uc.logger.Debug("IBAN validation failed", "input", req.IBAN, "error", err)
		return dto.IBANValidationResult{
			Input:     req.IBAN,
			Valid:     false,
			Message:   err.Error(),
			ErrorKind: validation.Kind(err),
		}
	}

	countryName, _ := uc.registry.CountryName(iban.CountryCode())
	uc.logger.Debug("IBAN validated", "iban", iban.Formatted(), "country", countryName)
	return dto.IBANValidationResult{
		Input:       req.IBAN,
		Valid:       true,
		Message:     fmt.Sprintf("valid IBAN (%s)", countryName),
		Formatted:   iban.Formatted(),
		CountryCode: iban.CountryCode(),
		CountryName: countryName,
		CheckDigits: iban.CheckDigits(),
		BBAN:        iban.BBAN(),
	}
}
