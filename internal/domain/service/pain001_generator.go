// Package service contains the domain services that render payment
// data into wire formats: ISO 20022 pain.001 XML and SWIFT MT103 text.
// Both generators are pure: same input and timestamp, same output.
package service

import (
	"encoding/xml"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Livinu/swift-tools/internal/domain/model"
	"github.com/Livinu/swift-tools/internal/domain/validation"
)

// Pain001Namespace is the ISO 20022 message definition this generator
// targets: CustomerCreditTransferInitiation V09.
const Pain001Namespace = "urn:iso:std:iso:20022:tech:xsd:pain.001.001.09"

// paymentMethodTransfer is the fixed PmtMtd for credit transfers.
const paymentMethodTransfer = "TRF"

var pain001CurrencyRe = regexp.MustCompile(`^[A-Z]{3}$`)

// Pain001Generator renders payment batches as a pain.001 document.
type Pain001Generator struct{}

// NewPain001Generator creates a Pain001Generator.
func NewPain001Generator() *Pain001Generator {
	return &Pain001Generator{}
}

// Pain001Options carries the optional message content the caller may
// supply beyond the mandatory header fields.
type Pain001Options struct {
	// InitiatingPartyID is emitted as InitgPty/Id/OrgId/Othr/Id when set.
	InitiatingPartyID string
	// ServiceLevel is the PmtTpInf/SvcLvl/Cd for every batch. Defaults
	// to "SEPA".
	ServiceLevel string
}

// Generate renders the batches as a pain.001.001.09 document and
// returns the XML as a string. Group-level and batch-level NbOfTxs and
// CtrlSum are always derived from the instruction lists. createdAt is
// normalized to UTC so the output is stable for a given input.
func (g *Pain001Generator) Generate(
	messageID string,
	initiatingParty string,
	batches []model.PaymentBatch,
	createdAt time.Time,
	opts Pain001Options,
) (string, error) {
	if messageID == "" {
		return "", fmt.Errorf("%w: message ID must not be empty", validation.ErrFormat)
	}
	if initiatingParty == "" {
		return "", fmt.Errorf("%w: initiating party name must not be empty", validation.ErrFormat)
	}
	if len(batches) == 0 {
		return "", fmt.Errorf("%w: at least one payment batch is required", validation.ErrEmptyBatch)
	}
	for _, batch := range batches {
		if batch.TransactionCount() == 0 {
			return "", fmt.Errorf("%w: batch %q has no instructions", validation.ErrEmptyBatch, batch.PaymentInfoID())
		}
		for _, pi := range batch.Instructions() {
			if err := validateInstruction(pi); err != nil {
				return "", err
			}
		}
	}

	serviceLevel := opts.ServiceLevel
	if serviceLevel == "" {
		serviceLevel = "SEPA"
	}

	totalCount := 0
	totalSum := decimal.Zero
	for _, batch := range batches {
		totalCount += batch.TransactionCount()
		totalSum = totalSum.Add(batch.ControlSum())
	}

	doc := pain001Document{
		Xmlns: Pain001Namespace,
		CstmrCdtTrfInitn: pain001Initiation{
			GrpHdr: pain001GroupHeader{
				MsgID:   messageID,
				CreDtTm: createdAt.UTC().Format("2006-01-02T15:04:05"),
				NbOfTxs: strconv.Itoa(totalCount),
				CtrlSum: totalSum.StringFixed(2),
				InitgPty: pain001InitiatingParty{
					Nm: initiatingParty,
					ID: orgIdentification(opts.InitiatingPartyID),
				},
			},
		},
	}

	for _, batch := range batches {
		doc.CstmrCdtTrfInitn.PmtInf = append(doc.CstmrCdtTrfInitn.PmtInf, buildPaymentInfo(batch, serviceLevel))
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal pain.001 document: %w", err)
	}
	return xml.Header + string(out) + "\n", nil
}

func validateInstruction(pi model.PaymentInstruction) error {
	if pi.IsZero() {
		return fmt.Errorf("%w: uninitialized instruction", validation.ErrInvalidInstruction)
	}
	if !pi.Amount().IsPositive() {
		return fmt.Errorf("%w: instruction %q has non-positive amount %s",
			validation.ErrInvalidInstruction, pi.InstructionID(), pi.Amount())
	}
	if !pain001CurrencyRe.MatchString(pi.Currency()) {
		return fmt.Errorf("%w: instruction %q has malformed currency %q",
			validation.ErrInvalidInstruction, pi.InstructionID(), pi.Currency())
	}
	return nil
}

func buildPaymentInfo(batch model.PaymentBatch, serviceLevel string) pain001PaymentInfo {
	instructions := batch.Instructions()
	// Batch-level debtor comes from the first instruction, as in the
	// single-debtor batch model.
	debtor := instructions[0].Debtor()

	info := pain001PaymentInfo{
		PmtInfID:  batch.PaymentInfoID(),
		PmtMtd:    paymentMethodTransfer,
		BtchBookg: "true",
		NbOfTxs:   strconv.Itoa(batch.TransactionCount()),
		CtrlSum:   batch.ControlSum().StringFixed(2),
		PmtTpInf:  pain001PaymentType{SvcLvl: pain001ServiceLevel{Cd: serviceLevel}},
		ReqdExctnDt: pain001ExecutionDate{
			Dt: batch.RequestedExecutionDate().UTC().Format("2006-01-02"),
		},
		Dbtr:     pain001Party{Nm: debtor.Name(), PstlAdr: postalAddress(debtor.AddressLines())},
		DbtrAcct: pain001Account{ID: pain001AccountID{IBAN: debtor.IBAN()}},
		DbtrAgt:  pain001Agent{FinInstnID: pain001FinInstitution{BIC: debtor.BIC()}},
	}

	for _, pi := range instructions {
		creditor := pi.Creditor()
		info.CdtTrfTxInf = append(info.CdtTrfTxInf, pain001Transaction{
			PmtID: pain001PaymentID{
				InstrID:    pi.InstructionID(),
				EndToEndID: pi.EndToEndID(),
			},
			Amt: pain001Amount{
				InstdAmt: pain001InstructedAmount{
					Ccy:   pi.Currency(),
					Value: pi.Amount().StringFixed(2),
				},
			},
			CdtrAgt:  pain001Agent{FinInstnID: pain001FinInstitution{BIC: creditor.BIC()}},
			Cdtr:     pain001Party{Nm: creditor.Name(), PstlAdr: postalAddress(creditor.AddressLines())},
			CdtrAcct: pain001Account{ID: pain001AccountID{IBAN: creditor.IBAN()}},
			RmtInf:   pain001Remittance{Ustrd: pi.RemittanceInfo()},
		})
	}
	return info
}

func orgIdentification(id string) *pain001OrgIdentification {
	if id == "" {
		return nil
	}
	return &pain001OrgIdentification{OrgID: pain001OtherID{Othr: pain001ID{ID: id}}}
}

func postalAddress(lines []string) *pain001PostalAddress {
	if len(lines) == 0 {
		return nil
	}
	return &pain001PostalAddress{AdrLine: lines}
}

// XML marshalling structs. Element order matches the pain.001.001.09
// schema sequence; free text is escaped by encoding/xml.

type pain001Document struct {
	XMLName          xml.Name          `xml:"Document"`
	Xmlns            string            `xml:"xmlns,attr"`
	CstmrCdtTrfInitn pain001Initiation `xml:"CstmrCdtTrfInitn"`
}

type pain001Initiation struct {
	GrpHdr pain001GroupHeader   `xml:"GrpHdr"`
	PmtInf []pain001PaymentInfo `xml:"PmtInf"`
}

type pain001GroupHeader struct {
	MsgID    string                 `xml:"MsgId"`
	CreDtTm  string                 `xml:"CreDtTm"`
	NbOfTxs  string                 `xml:"NbOfTxs"`
	CtrlSum  string                 `xml:"CtrlSum"`
	InitgPty pain001InitiatingParty `xml:"InitgPty"`
}

type pain001InitiatingParty struct {
	Nm string                    `xml:"Nm"`
	ID *pain001OrgIdentification `xml:"Id,omitempty"`
}

type pain001OrgIdentification struct {
	OrgID pain001OtherID `xml:"OrgId"`
}

type pain001OtherID struct {
	Othr pain001ID `xml:"Othr"`
}

type pain001ID struct {
	ID string `xml:"Id"`
}

type pain001PaymentInfo struct {
	PmtInfID    string               `xml:"PmtInfId"`
	PmtMtd      string               `xml:"PmtMtd"`
	BtchBookg   string               `xml:"BtchBookg"`
	NbOfTxs     string               `xml:"NbOfTxs"`
	CtrlSum     string               `xml:"CtrlSum"`
	PmtTpInf    pain001PaymentType   `xml:"PmtTpInf"`
	ReqdExctnDt pain001ExecutionDate `xml:"ReqdExctnDt"`
	Dbtr        pain001Party         `xml:"Dbtr"`
	DbtrAcct    pain001Account       `xml:"DbtrAcct"`
	DbtrAgt     pain001Agent         `xml:"DbtrAgt"`
	CdtTrfTxInf []pain001Transaction `xml:"CdtTrfTxInf"`
}

type pain001PaymentType struct {
	SvcLvl pain001ServiceLevel `xml:"SvcLvl"`
}

type pain001ServiceLevel struct {
	Cd string `xml:"Cd"`
}

type pain001ExecutionDate struct {
	Dt string `xml:"Dt"`
}

type pain001Party struct {
	Nm      string                `xml:"Nm"`
	PstlAdr *pain001PostalAddress `xml:"PstlAdr,omitempty"`
}

type pain001PostalAddress struct {
	AdrLine []string `xml:"AdrLine"`
}

type pain001Account struct {
	ID pain001AccountID `xml:"Id"`
}

type pain001AccountID struct {
	IBAN string `xml:"IBAN"`
}

type pain001Agent struct {
	FinInstnID pain001FinInstitution `xml:"FinInstnId"`
}

type pain001FinInstitution struct {
	BIC string `xml:"BIC"`
}

type pain001Transaction struct {
	PmtID    pain001PaymentID  `xml:"PmtId"`
	Amt      pain001Amount     `xml:"Amt"`
	CdtrAgt  pain001Agent      `xml:"CdtrAgt"`
	Cdtr     pain001Party      `xml:"Cdtr"`
	CdtrAcct pain001Account    `xml:"CdtrAcct"`
	RmtInf   pain001Remittance `xml:"RmtInf"`
}

type pain001PaymentID struct {
	InstrID    string `xml:"InstrId"`
	EndToEndID string `xml:"EndToEndId"`
}

type pain001Amount struct {
	InstdAmt pain001InstructedAmount `xml:"InstdAmt"`
}

type pain001InstructedAmount struct {
	Ccy   string `xml:"Ccy,attr"`
	Value string `xml:",chardata"`
}

type pain001Remittance struct {
	Ustrd string `xml:"Ustrd"`
}
