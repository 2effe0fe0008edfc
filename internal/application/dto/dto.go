// Package dto defines the request and result shapes exchanged between
// the CLI front end and the use cases. JSON tags match the tool's
// machine-readable output format.
package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ValidateBICRequest asks for validation of one BIC/SWIFT code.
type ValidateBICRequest struct {
	BIC string
}

// BICValidationResult is the structured outcome of a BIC validation.
type BICValidationResult struct {
	Input           string `json:"input"`
	Valid           bool   `json:"valid"`
	Message         string `json:"message"`
	ErrorKind       string `json:"error_kind,omitempty"`
	BankCode        string `json:"bank_code,omitempty"`
	CountryCode     string `json:"country_code,omitempty"`
	CountryName     string `json:"country_name,omitempty"`
	LocationCode    string `json:"location_code,omitempty"`
	BranchCode      string `json:"branch_code,omitempty"`
	IsPrimaryOffice bool   `json:"is_primary_office"`
}

// ValidateIBANRequest asks for validation of one IBAN.
type ValidateIBANRequest struct {
	IBAN string
}

// IBANValidationResult is the structured outcome of an IBAN validation.
type IBANValidationResult struct {
	Input       string `json:"input"`
	Valid       bool   `json:"valid"`
	Message     string `json:"message"`
	ErrorKind   string `json:"error_kind,omitempty"`
	Formatted   string `json:"formatted,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
	CountryName string `json:"country_name,omitempty"`
	CheckDigits string `json:"check_digits,omitempty"`
	BBAN        string `json:"bban,omitempty"`
}

// PartyInput identifies one side of a payment.
type PartyInput struct {
	Name         string   `json:"name"`
	IBAN         string   `json:"iban"`
	BIC          string   `json:"bic"`
	AddressLines []string `json:"address_lines,omitempty"`
}

// InstructionInput is one credit transfer in a generation request.
type InstructionInput struct {
	InstructionID  string          `json:"instruction_id"`
	EndToEndID     string          `json:"end_to_end_id,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
	Debtor         PartyInput      `json:"debtor"`
	Creditor       PartyInput      `json:"creditor"`
	RemittanceInfo string          `json:"remittance_info,omitempty"`
}

// BatchInput groups instructions under one payment-information block.
type BatchInput struct {
	PaymentInfoID          string             `json:"payment_info_id"`
	RequestedExecutionDate time.Time          `json:"requested_execution_date,omitempty"`
	Instructions           []InstructionInput `json:"payments"`
}

// GeneratePain001Request carries everything needed to produce a
// pain.001 document.
type GeneratePain001Request struct {
	MessageID         string
	InitiatingParty   string
	InitiatingPartyID string
	Batches           []BatchInput
	CreatedAt         time.Time
	// Precheck validates every debtor/creditor BIC and IBAN against the
	// country registry before generating.
	Precheck bool
}

// GenerateMT103Request carries the MT103 field set.
type GenerateMT103Request struct {
	SenderReference      string
	BankOperationCode    string
	InstructionCode      string
	ValueDate            time.Time
	Currency             string
	Amount               decimal.Decimal
	Debtor               PartyInput
	Creditor             PartyInput
	RemittanceInfo       string
	Charges              string
	SenderToReceiverInfo string
	Precheck             bool
}

// GeneratedDocument is a write-once serialized message plus the
// reference it was produced under.
type GeneratedDocument struct {
	Reference string `json:"reference"`
	Content   string `json:"content"`
}

// BatchValidateRequest asks for validation of a list of codes of one
// kind ("bic" or "iban").
type BatchValidateRequest struct {
	Type  string
	Codes []string
}

// LineResult is the outcome for one code of a batch validation.
type LineResult struct {
	Input   string `json:"input"`
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

// BatchReport summarizes a batch validation run.
type BatchReport struct {
	Type    string       `json:"type"`
	Total   int          `json:"total"`
	Valid   int          `json:"valid"`
	Invalid int          `json:"invalid"`
	Results []LineResult `json:"results"`
}
