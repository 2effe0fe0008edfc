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

// GeneratePain001 turns a payment request into a pain.001 document.
type GeneratePain001 struct {
	generator *service.Pain001Generator
	registry  *registry.Registry
	logger    *slog.Logger
}

// NewGeneratePain001 creates a GeneratePain001 use case.
func NewGeneratePain001(generator *service.Pain001Generator, reg *registry.Registry, logger *slog.Logger) *GeneratePain001 {
	return &GeneratePain001{generator: generator, registry: reg, logger: logger}
}

// Execute maps the request onto the payment aggregates, optionally
// pre-checks every BIC and IBAN against the registry, and renders the
// XML document.
func (uc *GeneratePain001) Execute(ctx context.Context, req dto.GeneratePain001Request) (dto.GeneratedDocument, error) {
	createdAt := req.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	batches := make([]model.PaymentBatch, 0, len(req.Batches))
	for _, batchInput := range req.Batches {
		batch, err := buildBatch(batchInput)
		if err != nil {
			return dto.GeneratedDocument{}, err
		}
		if req.Precheck {
			if err := uc.precheckBatch(batch); err != nil {
				return dto.GeneratedDocument{}, err
			}
		}
		batches = append(batches, batch)
	}

	content, err := uc.generator.Generate(req.MessageID, req.InitiatingParty, batches, createdAt, service.Pain001Options{
		InitiatingPartyID: req.InitiatingPartyID,
	})
	if err != nil {
		return dto.GeneratedDocument{}, fmt.Errorf("generate pain.001: %w", err)
	}

	uc.logger.Info("pain.001 document generated",
		"message_id", req.MessageID,
		"batches", len(batches),
	)
	return dto.GeneratedDocument{Reference: req.MessageID, Content: content}, nil
}

func buildBatch(in dto.BatchInput) (model.PaymentBatch, error) {
	instructions := make([]model.PaymentInstruction, 0, len(in.Instructions))
	for _, instrInput := range in.Instructions {
		instr, err := buildInstruction(instrInput)
		if err != nil {
			return model.PaymentBatch{}, fmt.Errorf("batch %q: %w", in.PaymentInfoID, err)
		}
		instructions = append(instructions, instr)
	}
	batch, err := model.NewPaymentBatch(in.PaymentInfoID, in.RequestedExecutionDate, instructions)
	if err != nil {
		return model.PaymentBatch{}, err
	}
	return batch, nil
}

func buildInstruction(in dto.InstructionInput) (model.PaymentInstruction, error) {
	debtor, err := model.NewPaymentParty(in.Debtor.Name, in.Debtor.IBAN, in.Debtor.BIC, in.Debtor.AddressLines...)
	if err != nil {
		return model.PaymentInstruction{}, fmt.Errorf("debtor: %w", err)
	}
	creditor, err := model.NewPaymentParty(in.Creditor.Name, in.Creditor.IBAN, in.Creditor.BIC, in.Creditor.AddressLines...)
	if err != nil {
		return model.PaymentInstruction{}, fmt.Errorf("creditor: %w", err)
	}
	return model.NewPaymentInstruction(
		in.InstructionID,
		in.EndToEndID,
		in.Amount,
		in.Currency,
		debtor,
		creditor,
		in.RemittanceInfo,
	)
}

func (uc *GeneratePain001) precheckBatch(batch model.PaymentBatch) error {
	for _, instr := range batch.Instructions() {
		for _, party := range []model.PaymentParty{instr.Debtor(), instr.Creditor()} {
			if _, err := valueobject.ParseIBAN(party.IBAN(), uc.registry); err != nil {
				return fmt.Errorf("instruction %q: IBAN of %q: %w", instr.InstructionID(), party.Name(), err)
			}
			if party.BIC() != "" {
				if _, err := valueobject.ParseBIC(party.BIC(), uc.registry); err != nil {
					return fmt.Errorf("instruction %q: BIC of %q: %w", instr.InstructionID(), party.Name(), err)
				}
			}
		}
	}
	return nil
}
