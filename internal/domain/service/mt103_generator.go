package service

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Livinu/swift-tools/internal/domain/model"
	"github.com/Livinu/swift-tools/internal/domain/validation"
	"github.com/Livinu/swift-tools/internal/domain/valueobject"
)

const (
	// SWIFT text fields are at most 35 characters per line; party and
	// remittance blocks allow at most 4 lines.
	mt103LineWidth = 35
	mt103MaxLines  = 4

	maxSenderReferenceLength = 16

	// swiftLineEnding is the FIN block line separator.
	swiftLineEnding = "\r\n"
)

var (
	operationCodeRe = regexp.MustCompile(`^[A-Z]{4}$`)
	mt103CurrencyRe = regexp.MustCompile(`^[A-Z]{3}$`)
	bicRe           = regexp.MustCompile(`^[A-Z]{4}[A-Z]{2}[A-Z0-9]{2}([A-Z0-9]{3})?$`)
)

// MT103 is the field set of a Single Customer Credit Transfer message.
type MT103 struct {
	SenderReference   string // :20:, at most 16 characters
	BankOperationCode string // :23B:, e.g. "CRED"
	InstructionCode   string // :23E:, optional

	ValueDate time.Time       // :32A: date component, rendered YYMMDD
	Currency  string          // :32A: ISO 4217 code
	Amount    decimal.Decimal // :32A: amount

	OrderingCustomer       model.PaymentParty // :50K:
	OrderingInstitution    string             // :52A: BIC
	BeneficiaryInstitution string             // :57A: BIC
	BeneficiaryCustomer    model.PaymentParty // :59:

	RemittanceInfo string                  // :70:, word-wrapped to 4x35
	Charges        valueobject.ChargesCode // :71A:

	InstructedAmount     *decimal.Decimal // :33B:, optional
	SenderToReceiverInfo string           // :72:, optional

	// Header BICs for blocks 1 and 2. When empty they fall back to the
	// ordering and beneficiary institution BICs.
	SenderBIC   string
	ReceiverBIC string
}

// MT103Generator renders an MT103 field set as a SWIFT FIN message:
// basic header, application header, user header, the colon-tagged text
// block terminated by "-}", and the trailer. Lines are separated by
// CRLF per SWIFT convention.
type MT103Generator struct{}

// NewMT103Generator creates an MT103Generator.
func NewMT103Generator() *MT103Generator {
	return &MT103Generator{}
}

// Generate validates the field set and renders the message. All errors
// carry a taxonomy kind and name the offending field.
func (g *MT103Generator) Generate(msg MT103) (string, error) {
	if err := g.validate(msg); err != nil {
		return "", err
	}

	orderingLines, err := partyLines(msg.OrderingCustomer)
	if err != nil {
		return "", fmt.Errorf(":50K: %w", err)
	}
	beneficiaryLines, err := partyLines(msg.BeneficiaryCustomer)
	if err != nil {
		return "", fmt.Errorf(":59: %w", err)
	}
	remittanceLines, err := wrapText(msg.RemittanceInfo, mt103LineWidth, mt103MaxLines)
	if err != nil {
		return "", fmt.Errorf(":70: %w", err)
	}

	var lines []string
	lines = append(lines, ":20:"+msg.SenderReference)
	lines = append(lines, ":23B:"+msg.BankOperationCode)
	if msg.InstructionCode != "" {
		lines = append(lines, ":23E:"+msg.InstructionCode)
	}
	lines = append(lines, ":32A:"+msg.ValueDate.Format("060102")+msg.Currency+swiftAmount(msg.Amount))
	if msg.InstructedAmount != nil {
		lines = append(lines, ":33B:"+msg.Currency+swiftAmount(*msg.InstructedAmount))
	}
	lines = append(lines, ":50K:"+strings.Join(orderingLines, swiftLineEnding))
	lines = append(lines, ":52A:"+msg.OrderingInstitution)
	lines = append(lines, ":57A:"+msg.BeneficiaryInstitution)
	lines = append(lines, ":59:"+strings.Join(beneficiaryLines, swiftLineEnding))
	if len(remittanceLines) > 0 {
		lines = append(lines, ":70:"+strings.Join(remittanceLines, swiftLineEnding))
	}
	lines = append(lines, ":71A:"+msg.Charges.String())
	if msg.SenderToReceiverInfo != "" {
		s2rLines, wrapErr := wrapText(msg.SenderToReceiverInfo, mt103LineWidth, 6)
		if wrapErr != nil {
			return "", fmt.Errorf(":72: %w", wrapErr)
		}
		lines = append(lines, ":72:"+strings.Join(s2rLines, swiftLineEnding))
	}

	senderBIC := msg.SenderBIC
	if senderBIC == "" {
		senderBIC = msg.OrderingInstitution
	}
	receiverBIC := msg.ReceiverBIC
	if receiverBIC == "" {
		receiverBIC = msg.BeneficiaryInstitution
	}

	blocks := []string{
		"{1:F01" + padBIC(senderBIC) + "0000000000}",
		"{2:I103" + padBIC(receiverBIC) + "N}",
		"{3:{108:MT103}}",
		"{4:" + swiftLineEnding + strings.Join(lines, swiftLineEnding) + swiftLineEnding + "-}",
		// The CHK value is computed by the FIN interface on submission.
		"{5:{CHK:000000000000}}",
	}
	return strings.Join(blocks, swiftLineEnding), nil
}

func (g *MT103Generator) validate(msg MT103) error {
	if msg.SenderReference == "" {
		return fmt.Errorf("%w: :20: sender reference is required", validation.ErrFormat)
	}
	if len(msg.SenderReference) > maxSenderReferenceLength {
		return fmt.Errorf("%w: :20: sender reference %q exceeds %d characters",
			validation.ErrFieldTooLong, msg.SenderReference, maxSenderReferenceLength)
	}
	if !operationCodeRe.MatchString(msg.BankOperationCode) {
		return fmt.Errorf("%w: :23B: bank operation code %q must be 4 letters (e.g. CRED)",
			validation.ErrFormat, msg.BankOperationCode)
	}
	if msg.ValueDate.IsZero() {
		return fmt.Errorf("%w: :32A: value date is required", validation.ErrFormat)
	}
	if !mt103CurrencyRe.MatchString(msg.Currency) {
		return fmt.Errorf("%w: :32A: currency %q must be a 3-letter ISO code",
			validation.ErrInvalidInstruction, msg.Currency)
	}
	if !msg.Amount.IsPositive() {
		return fmt.Errorf("%w: :32A: amount must be positive, got %s",
			validation.ErrInvalidInstruction, msg.Amount)
	}
	if msg.InstructedAmount != nil && !msg.InstructedAmount.IsPositive() {
		return fmt.Errorf("%w: :33B: instructed amount must be positive, got %s",
			validation.ErrInvalidInstruction, msg.InstructedAmount)
	}
	if msg.OrderingCustomer.IsZero() {
		return fmt.Errorf("%w: :50K: ordering customer is required", validation.ErrFormat)
	}
	if msg.BeneficiaryCustomer.IsZero() {
		return fmt.Errorf("%w: :59: beneficiary customer is required", validation.ErrFormat)
	}
	if !bicRe.MatchString(msg.OrderingInstitution) {
		return fmt.Errorf("%w: :52A: ordering institution BIC %q is malformed",
			validation.ErrFormat, msg.OrderingInstitution)
	}
	if !bicRe.MatchString(msg.BeneficiaryInstitution) {
		return fmt.Errorf("%w: :57A: beneficiary institution BIC %q is malformed",
			validation.ErrFormat, msg.BeneficiaryInstitution)
	}
	if _, err := valueobject.NewChargesCode(msg.Charges.String()); err != nil {
		return fmt.Errorf(":71A: %w", err)
	}
	return nil
}

// partyLines renders a party block: an account line when the party has
// one, followed by the word-wrapped name and address lines. The name
// and address portion is bounded to 4 lines of 35 characters; anything
// that cannot fit without truncation is an error.
func partyLines(p model.PaymentParty) ([]string, error) {
	nameLines, err := wrapText(p.Name(), mt103LineWidth, mt103MaxLines)
	if err != nil {
		return nil, err
	}
	lines := nameLines
	for _, addr := range p.AddressLines() {
		addrLines, wrapErr := wrapText(addr, mt103LineWidth, mt103MaxLines)
		if wrapErr != nil {
			return nil, wrapErr
		}
		lines = append(lines, addrLines...)
	}
	if len(lines) > mt103MaxLines {
		return nil, fmt.Errorf("%w: party block needs %d lines, at most %d of %d characters allowed",
			validation.ErrFieldTooLong, len(lines), mt103MaxLines, mt103LineWidth)
	}
	if p.IBAN() != "" {
		lines = append([]string{"/" + p.IBAN()}, lines...)
	}
	return lines, nil
}

// wrapText word-wraps s into at most maxLines lines of width
// characters. A single token longer than width cannot be wrapped
// without truncation and is rejected.
func wrapText(s string, width, maxLines int) ([]string, error) {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil, nil
	}

	var lines []string
	current := ""
	for _, word := range words {
		if len(word) > width {
			return nil, fmt.Errorf("%w: token %q exceeds %d characters and cannot be wrapped",
				validation.ErrFieldTooLong, word, width)
		}
		switch {
		case current == "":
			current = word
		case len(current)+1+len(word) <= width:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	lines = append(lines, current)

	if len(lines) > maxLines {
		return nil, fmt.Errorf("%w: text needs %d lines, at most %d of %d characters allowed",
			validation.ErrFieldTooLong, len(lines), maxLines, width)
	}
	return lines, nil
}

// swiftAmount renders an amount in SWIFT :32A: form: comma as decimal
// separator, trailing zeros trimmed but at least one fractional digit
// kept ("350,5", "1500,0").
func swiftAmount(d decimal.Decimal) string {
	s := d.StringFixed(2)
	for strings.HasSuffix(s, "0") && !strings.HasSuffix(s, ".0") {
		s = s[:len(s)-1]
	}
	return strings.Replace(s, ".", ",", 1)
}

// padBIC widens an 8-character BIC to the 11-character form used in
// the header blocks.
func padBIC(bic string) string {
	if len(bic) == 8 {
		return bic + "XXX"
	}
	return bic
}
