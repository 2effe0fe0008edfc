package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Livinu/swift-tools/internal/application/dto"
	"github.com/Livinu/swift-tools/internal/domain/model"
	"github.com/Livinu/swift-tools/internal/domain/registry"
	"github.com/Livinu/swift-tools/internal/domain/service"
	"github.com/Livinu/swift-tools/internal/domain/valueobject"
)

// defaultOperationCode is the :23B: code for an ordinary credit
// transfer.
const defaultOperationCode = "CRED"

// GenerateMT103 turns a single payment into an MT103 message.
type GenerateMT103 struct {
	generator *service.MT103Generator
	registry  *registry.Registry
	logger    *slog.Logger
}

// NewGenerateMT103 creates a GenerateMT103 use case.
func NewGenerateMT103(generator *service.MT103Generator, reg *registry.Registry, logger *slog.Logger) *GenerateMT103 {
	return &GenerateMT103{generator: generator, registry: reg, logger: logger}
}

// Execute maps the request onto the MT103 field set and renders the
// message.
func (uc *GenerateMT103) Execute(ctx context.Context, req dto.GenerateMT103Request) (dto.GeneratedDocument, error) {
	charges, err := valueobject.NewChargesCode(req.Charges)
	if err != nil {
		return dto.GeneratedDocument{}, err
	}
	debtor, err := model.NewPaymentParty(req.Debtor.Name, req.Debtor.IBAN, req.Debtor.BIC, req.Debtor.AddressLines...)
	if err != nil {
		return dto.GeneratedDocument{}, fmt.Errorf("ordering customer: %w", err)
	}
	creditor, err := model.NewPaymentParty(req.Creditor.Name, req.Creditor.IBAN, req.Creditor.BIC, req.Creditor.AddressLines...)
	if err != nil {
		return dto.GeneratedDocument{}, fmt.Errorf("beneficiary customer: %w", err)
	}

	if req.Precheck {
		for _, party := range []model.PaymentParty{debtor, creditor} {
			if _, pErr := valueobject.ParseIBAN(party.IBAN(), uc.registry); pErr != nil {
				return dto.GeneratedDocument{}, fmt.Errorf("IBAN of %q: %w", party.Name(), pErr)
			}
			if _, pErr := valueobject.ParseBIC(party.BIC(), uc.registry); pErr != nil {
				return dto.GeneratedDocument{}, fmt.Errorf("BIC of %q: %w", party.Name(), pErr)
			}
		}
	}

	operationCode := req.BankOperationCode
	if operationCode == "" {
		operationCode = defaultOperationCode
	}
	valueDate := req.ValueDate
	if valueDate.IsZero() {
		valueDate = time.Now().UTC()
	}

	content, err := uc.generator.Generate(service.MT103{
		SenderReference:        req.SenderReference,
		BankOperationCode:      operationCode,
		InstructionCode:        req.InstructionCode,
		ValueDate:              valueDate,
		Currency:               req.Currency,
		Amount:                 req.Amount,
		OrderingCustomer:       debtor,
		OrderingInstitution:    req.Debtor.BIC,
		BeneficiaryInstitution: req.Creditor.BIC,
		BeneficiaryCustomer:    creditor,
		RemittanceInfo:         req.RemittanceInfo,
		Charges:                charges,
		SenderToReceiverInfo:   req.SenderToReceiverInfo,
	})
	if err != nil {
		return dto.GeneratedDocument{}, fmt.Errorf("generate MT103: %w", err)
	}

	uc.logger.Info("MT103 message generated",
		"reference", req.SenderReference,
		"currency", req.Currency,
	)
	return dto.GeneratedDocument{Reference: req.SenderReference, Content: content}, nil
}
