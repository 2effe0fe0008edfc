package valueobject

import (
	"fmt"
	"strings"

	"github.com/Livinu/swift-tools/internal/domain/registry"
	"github.com/Livinu/swift-tools/internal/domain/validation"
)

// primaryOfficeBranch is the ISO 9362 branch code of a head office.
const primaryOfficeBranch = "XXX"

// BIC is an immutable ISO 9362 Business Identifier Code, constructed
// only through ParseBIC.
type BIC struct {
	bankCode     string // 4 letters
	countryCode  string // 2 letters, ISO 3166
	locationCode string // 2 alphanumeric
	branchCode   string // 3 alphanumeric, empty for 8-character codes
}

// ParseBIC validates raw as an 8- or 11-character BIC against the
// country registry and returns the parsed code. Input is trimmed and
// upper-cased before validation.
func ParseBIC(raw string, reg *registry.Registry) (BIC, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return BIC{}, fmt.Errorf("%w: BIC must not be empty", validation.ErrFormat)
	}
	if len(s) != 8 && len(s) != 11 {
		return BIC{}, fmt.Errorf("%w: BIC must be 8 or 11 characters, got %d", validation.ErrLength, len(s))
	}
	if !isLetters(s[0:4]) {
		return BIC{}, fmt.Errorf("%w: bank code %q must be 4 letters", validation.ErrFormat, s[0:4])
	}
	countryCode := s[4:6]
	if !isLetters(countryCode) {
		return BIC{}, fmt.Errorf("%w: country code %q must be 2 letters", validation.ErrFormat, countryCode)
	}
	if _, ok := reg.Lookup(countryCode); !ok {
		return BIC{}, fmt.Errorf("%w: country code %q is not a supported country", validation.ErrUnknownCountry, countryCode)
	}
	if !isAlphanumeric(s[6:8]) {
		return BIC{}, fmt.Errorf("%w: location code %q must be alphanumeric", validation.ErrFormat, s[6:8])
	}
	branchCode := ""
	if len(s) == 11 {
		branchCode = s[8:11]
		if !isAlphanumeric(branchCode) {
			return BIC{}, fmt.Errorf("%w: branch code %q must be alphanumeric", validation.ErrFormat, branchCode)
		}
	}

	return BIC{
		bankCode:     s[0:4],
		countryCode:  countryCode,
		locationCode: s[6:8],
		branchCode:   branchCode,
	}, nil
}

// BankCode returns the 4-letter institution code.
func (b BIC) BankCode() string { return b.bankCode }

// CountryCode returns the ISO 3166 country code.
func (b BIC) CountryCode() string { return b.countryCode }

// LocationCode returns the 2-character location code.
func (b BIC) LocationCode() string { return b.locationCode }

// BranchCode returns the branch code, empty for 8-character codes.
func (b BIC) BranchCode() string { return b.branchCode }

// BranchOrDefault returns the branch code, substituting "XXX" when the
// code was given in its 8-character form, for consumers that always
// expect 11 characters.
func (b BIC) BranchOrDefault() string {
	if b.branchCode == "" {
		return primaryOfficeBranch
	}
	return b.branchCode
}

// IsPrimaryOffice reports whether the code designates the head office:
// an absent branch code and the explicit "XXX" branch are equivalent.
func (b BIC) IsPrimaryOffice() bool {
	return b.branchCode == "" || b.branchCode == primaryOfficeBranch
}

// FullCode reconstructs the BIC exactly as parsed: 8 characters when no
// branch code was present, 11 otherwise.
func (b BIC) FullCode() string {
	return b.bankCode + b.countryCode + b.locationCode + b.branchCode
}

// String returns the full code.
func (b BIC) String() string { return b.FullCode() }

// IsZero returns true for an uninitialized BIC.
func (b BIC) IsZero() bool { return b.bankCode == "" }

func isLetters(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

func isAlphanumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}
