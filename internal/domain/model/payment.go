// Package model holds the payment aggregates consumed by the message
// generators. Instructions and batches are immutable once constructed;
// batch totals are always derived from the instruction list so the
// declared counts can never drift from the contents.
package model

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Livinu/swift-tools/internal/domain/validation"
)

var currencyCodeRe = regexp.MustCompile(`^[A-Z]{3}$`)

const maxEndToEndIDLength = 35

// PaymentParty identifies one side of a payment: a name, an account
// (IBAN string), an optional BIC and optional address lines.
type PaymentParty struct {
	name         string
	iban         string
	bic          string
	addressLines []string
}

// NewPaymentParty creates a PaymentParty. The name is mandatory;
// account, BIC and address lines are carried as given and validated by
// the consumer that needs them.
func NewPaymentParty(name, iban, bic string, addressLines ...string) (PaymentParty, error) {
	if name == "" {
		return PaymentParty{}, fmt.Errorf("%w: party name must not be empty", validation.ErrFormat)
	}
	return PaymentParty{
		name:         name,
		iban:         iban,
		bic:          bic,
		addressLines: append([]string(nil), addressLines...),
	}, nil
}

// Name returns the party name.
func (p PaymentParty) Name() string { return p.name }

// IBAN returns the account identifier.
func (p PaymentParty) IBAN() string { return p.iban }

// BIC returns the party's institution BIC, possibly empty.
func (p PaymentParty) BIC() string { return p.bic }

// AddressLines returns a copy of the optional address lines.
func (p PaymentParty) AddressLines() []string {
	return append([]string(nil), p.addressLines...)
}

// IsZero returns true for an uninitialized party.
func (p PaymentParty) IsZero() bool { return p.name == "" }

// PaymentInstruction is a single credit transfer: amount, currency,
// debtor, creditor and remittance text. Constructed once, never
// mutated.
type PaymentInstruction struct {
	instructionID  string
	endToEndID     string
	amount         decimal.Decimal
	currency       string
	debtor         PaymentParty
	creditor       PaymentParty
	remittanceInfo string
}

// NewPaymentInstruction validates and creates a PaymentInstruction.
// When endToEndID is empty a random one is generated, matching the
// 35-character SWIFT field bound.
func NewPaymentInstruction(
	instructionID string,
	endToEndID string,
	amount decimal.Decimal,
	currency string,
	debtor PaymentParty,
	creditor PaymentParty,
	remittanceInfo string,
) (PaymentInstruction, error) {
	if instructionID == "" {
		return PaymentInstruction{}, fmt.Errorf("%w: instruction ID must not be empty", validation.ErrInvalidInstruction)
	}
	if !amount.IsPositive() {
		return PaymentInstruction{}, fmt.Errorf("%w: amount must be positive, got %s", validation.ErrInvalidInstruction, amount)
	}
	if !currencyCodeRe.MatchString(currency) {
		return PaymentInstruction{}, fmt.Errorf("%w: currency %q must be exactly 3 uppercase letters", validation.ErrInvalidInstruction, currency)
	}
	if debtor.IsZero() {
		return PaymentInstruction{}, fmt.Errorf("%w: debtor is required", validation.ErrInvalidInstruction)
	}
	if creditor.IsZero() {
		return PaymentInstruction{}, fmt.Errorf("%w: creditor is required", validation.ErrInvalidInstruction)
	}
	if endToEndID == "" {
		endToEndID = uuid.NewString()[:maxEndToEndIDLength]
	}
	if len(endToEndID) > maxEndToEndIDLength {
		return PaymentInstruction{}, fmt.Errorf("%w: end-to-end ID exceeds %d characters", validation.ErrInvalidInstruction, maxEndToEndIDLength)
	}

	return PaymentInstruction{
		instructionID:  instructionID,
		endToEndID:     endToEndID,
		amount:         amount,
		currency:       currency,
		debtor:         debtor,
		creditor:       creditor,
		remittanceInfo: remittanceInfo,
	}, nil
}

func (pi PaymentInstruction) InstructionID() string   { return pi.instructionID }
func (pi PaymentInstruction) EndToEndID() string      { return pi.endToEndID }
func (pi PaymentInstruction) Amount() decimal.Decimal { return pi.amount }
func (pi PaymentInstruction) Currency() string        { return pi.currency }
func (pi PaymentInstruction) Debtor() PaymentParty    { return pi.debtor }
func (pi PaymentInstruction) Creditor() PaymentParty  { return pi.creditor }
func (pi PaymentInstruction) RemittanceInfo() string  { return pi.remittanceInfo }

// IsZero returns true for an uninitialized instruction.
func (pi PaymentInstruction) IsZero() bool { return pi.instructionID == "" }

// PaymentBatch is an ordered sequence of instructions under one
// payment-information block. The transfer method is fixed to "TRF".
type PaymentBatch struct {
	paymentInfoID          string
	requestedExecutionDate time.Time
	instructions           []PaymentInstruction
}

// NewPaymentBatch creates a batch of at least one instruction. A zero
// execution date defaults to the current UTC day; generators only use
// the date component.
func NewPaymentBatch(paymentInfoID string, requestedExecutionDate time.Time, instructions []PaymentInstruction) (PaymentBatch, error) {
	if paymentInfoID == "" {
		return PaymentBatch{}, fmt.Errorf("%w: payment info ID must not be empty", validation.ErrFormat)
	}
	if len(instructions) == 0 {
		return PaymentBatch{}, fmt.Errorf("%w: batch %q has no instructions", validation.ErrEmptyBatch, paymentInfoID)
	}
	for _, pi := range instructions {
		if pi.IsZero() {
			return PaymentBatch{}, fmt.Errorf("%w: batch %q contains an uninitialized instruction", validation.ErrInvalidInstruction, paymentInfoID)
		}
	}
	if requestedExecutionDate.IsZero() {
		requestedExecutionDate = time.Now().UTC()
	}
	return PaymentBatch{
		paymentInfoID:          paymentInfoID,
		requestedExecutionDate: requestedExecutionDate,
		instructions:           append([]PaymentInstruction(nil), instructions...),
	}, nil
}

// PaymentInfoID returns the batch identifier.
func (b PaymentBatch) PaymentInfoID() string { return b.paymentInfoID }

// RequestedExecutionDate returns the requested execution date.
func (b PaymentBatch) RequestedExecutionDate() time.Time { return b.requestedExecutionDate }

// Instructions returns a copy of the ordered instruction list.
func (b PaymentBatch) Instructions() []PaymentInstruction {
	return append([]PaymentInstruction(nil), b.instructions...)
}

// TransactionCount is the derived number of transactions.
func (b PaymentBatch) TransactionCount() int { return len(b.instructions) }

// ControlSum is the derived arithmetic sum of all instruction amounts.
func (b PaymentBatch) ControlSum() decimal.Decimal {
	sum := decimal.Zero
	for _, pi := range b.instructions {
		sum = sum.Add(pi.amount)
	}
	return sum
}
