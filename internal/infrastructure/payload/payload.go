// Package payload decodes the JSON payment files accepted by the
// generator subcommands.
package payload

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Livinu/swift-tools/internal/application/dto"
)

// PaymentFile is the on-disk payment request. The pain.001 path reads
// the batch fields (message_id, batch_id, payments); the MT103 path
// reads the single-payment fields (reference, amount, debtor,
// creditor). Shared fields apply to both.
type PaymentFile struct {
	MessageID   string `json:"message_id,omitempty"`
	BatchID     string `json:"batch_id,omitempty"`
	Initiator   string `json:"initiator,omitempty"`
	InitiatorID string `json:"initiator_id,omitempty"`

	Reference string          `json:"reference,omitempty"`
	Amount    decimal.Decimal `json:"amount,omitempty"`
	Currency  string          `json:"currency,omitempty"`
	Charges   string          `json:"charges,omitempty"`

	Debtor         dto.PartyInput `json:"debtor,omitempty"`
	Creditor       dto.PartyInput `json:"creditor,omitempty"`
	RemittanceInfo string         `json:"remittance_info,omitempty"`

	ExecutionDate time.Time              `json:"execution_date,omitempty"`
	Payments      []dto.InstructionInput `json:"payments,omitempty"`
}

// Decode reads a payment file from r.
func Decode(r io.Reader) (PaymentFile, error) {
	var file PaymentFile
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return PaymentFile{}, fmt.Errorf("decode payment file: %w", err)
	}
	return file, nil
}

// Load reads a payment file from disk.
func Load(path string) (PaymentFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return PaymentFile{}, fmt.Errorf("open payment file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Pain001Request maps the file onto a pain.001 generation request. The
// single-payment fields act as a fallback when no payments array is
// present, so one file format serves both generators.
func (p PaymentFile) Pain001Request(defaultCurrency, defaultInitiator string) dto.GeneratePain001Request {
	instructions := p.Payments
	if len(instructions) == 0 && !p.Amount.IsZero() {
		instructions = []dto.InstructionInput{p.singleInstruction(defaultCurrency)}
	}
	for i := range instructions {
		if instructions[i].InstructionID == "" {
			instructions[i].InstructionID = fmt.Sprintf("INSTR-%04d", i+1)
		}
		if instructions[i].Currency == "" {
			instructions[i].Currency = defaultCurrency
		}
	}

	initiator := p.Initiator
	if initiator == "" {
		initiator = defaultInitiator
	}
	messageID := p.MessageID
	if messageID == "" {
		messageID = "MSG-" + uuid.NewString()
	}
	batchID := p.BatchID
	if batchID == "" {
		batchID = "BATCH-" + time.Now().UTC().Format("20060102150405")
	}

	return dto.GeneratePain001Request{
		MessageID:         messageID,
		InitiatingParty:   initiator,
		InitiatingPartyID: p.InitiatorID,
		Batches: []dto.BatchInput{{
			PaymentInfoID:          batchID,
			RequestedExecutionDate: p.ExecutionDate,
			Instructions:           instructions,
		}},
	}
}

// MT103Request maps the file onto an MT103 generation request.
func (p PaymentFile) MT103Request(defaultCurrency string) dto.GenerateMT103Request {
	currency := p.Currency
	if currency == "" {
		currency = defaultCurrency
	}
	charges := p.Charges
	if charges == "" {
		charges = "SHA"
	}
	return dto.GenerateMT103Request{
		SenderReference: p.Reference,
		Currency:        currency,
		Amount:          p.Amount,
		Debtor:          p.Debtor,
		Creditor:        p.Creditor,
		RemittanceInfo:  p.RemittanceInfo,
		Charges:         charges,
	}
}

func (p PaymentFile) singleInstruction(defaultCurrency string) dto.InstructionInput {
	currency := p.Currency
	if currency == "" {
		currency = defaultCurrency
	}
	return dto.InstructionInput{
		Amount:         p.Amount,
		Currency:       currency,
		Debtor:         p.Debtor,
		Creditor:       p.Creditor,
		RemittanceInfo: p.RemittanceInfo,
	}
}
