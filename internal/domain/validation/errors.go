// Package validation defines the error taxonomy shared by the
// identifier validators and the message generators. Every failure is
// tagged with one of these sentinel kinds and wrapped with a
// human-readable explanation, so callers can branch with errors.Is and
// still surface the detail to a user.
package validation

import "errors"

var (
	// ErrFormat reports a malformed input shape.
	ErrFormat = errors.New("FORMAT_ERROR")
	// ErrLength reports a BIC that is neither 8 nor 11 characters.
	ErrLength = errors.New("LENGTH_ERROR")
	// ErrLengthMismatch reports an IBAN whose length does not match the
	// registered length for its country.
	ErrLengthMismatch = errors.New("LENGTH_MISMATCH")
	// ErrUnknownCountry reports a country code absent from the registry.
	ErrUnknownCountry = errors.New("UNKNOWN_COUNTRY")
	// ErrChecksumFailed reports an IBAN that failed the mod-97 check.
	ErrChecksumFailed = errors.New("CHECKSUM_FAILED")
	// ErrInvalidInstruction reports a payment with a non-positive amount
	// or a malformed currency code.
	ErrInvalidInstruction = errors.New("INVALID_INSTRUCTION")
	// ErrFieldTooLong reports content that cannot fit a fixed-width
	// SWIFT field without truncation.
	ErrFieldTooLong = errors.New("FIELD_TOO_LONG")
	// ErrEmptyBatch reports a generation request with no payments.
	ErrEmptyBatch = errors.New("EMPTY_BATCH_ERROR")
	// ErrInvalidCharges reports a charges code outside SHA/BEN/OUR.
	ErrInvalidCharges = errors.New("INVALID_CHARGES_CODE")
)

var kinds = []error{
	ErrFormat,
	ErrLength,
	ErrLengthMismatch,
	ErrUnknownCountry,
	ErrChecksumFailed,
	ErrInvalidInstruction,
	ErrFieldTooLong,
	ErrEmptyBatch,
	ErrInvalidCharges,
}

// Kind returns the taxonomy name of err, or an empty string when err
// does not carry one of the sentinel kinds.
func Kind(err error) string {
	for _, k := range kinds {
		if errors.Is(err, k) {
			return k.Error()
		}
	}
	return ""
}
