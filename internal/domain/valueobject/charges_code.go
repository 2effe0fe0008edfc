package valueobject

import (
	"fmt"

	"github.com/Livinu/swift-tools/internal/domain/validation"
)

// ChargesCode is the MT103 :71A: details-of-charges code.
type ChargesCode struct {
	value string
}

var (
	ChargesShared      = ChargesCode{"SHA"}
	ChargesOur         = ChargesCode{"OUR"}
	ChargesBeneficiary = ChargesCode{"BEN"}
)

var validChargesCodes = map[string]ChargesCode{
	"SHA": ChargesShared,
	"OUR": ChargesOur,
	"BEN": ChargesBeneficiary,
}

// NewChargesCode validates and creates a ChargesCode from a string.
func NewChargesCode(s string) (ChargesCode, error) {
	if code, ok := validChargesCodes[s]; ok {
		return code, nil
	}
	return ChargesCode{}, fmt.Errorf("%w: charges code %q must be one of SHA, BEN, OUR", validation.ErrInvalidCharges, s)
}

// String returns the three-letter code.
func (c ChargesCode) String() string { return c.value }

// IsZero returns true if the charges code is uninitialized.
func (c ChargesCode) IsZero() bool { return c.value == "" }
