package valueobject_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Livinu/swift-tools/internal/domain/registry"
	"github.com/Livinu/swift-tools/internal/domain/validation"
	"github.com/Livinu/swift-tools/internal/domain/valueobject"
)

func TestParseIBAN_Valid(t *testing.T) {
	iban, err := valueobject.ParseIBAN("FR7630006000011234567890189", registry.Default())

	require.NoError(t, err)
	assert.Equal(t, "FR", iban.CountryCode())
	assert.Equal(t, "76", iban.CheckDigits())
	assert.Equal(t, "30006000011234567890189", iban.BBAN())
	assert.Equal(t, "FR7630006000011234567890189", iban.Normalized())
}

func TestParseIBAN_ValidAcrossCountries(t *testing.T) {
	for _, input := range []string{
		"DE89370400440532013000",
		"GB29NWBK60161331926819",
		"BE68539007547034",
	} {
		_, err := valueobject.ParseIBAN(input, registry.Default())

		assert.NoError(t, err, "input %q", input)
	}
}

func TestParseIBAN_SpacesAndCaseDoNotMatter(t *testing.T) {
	canonical, err := valueobject.ParseIBAN("FR7630006000011234567890189", registry.Default())
	require.NoError(t, err)

	spaced, err := valueobject.ParseIBAN("fr76 3000 6000 0112 3456 7890 189", registry.Default())
	require.NoError(t, err)

	assert.Equal(t, canonical.Normalized(), spaced.Normalized())
}

func TestParseIBAN_FormattedRoundTrip(t *testing.T) {
	iban, err := valueobject.ParseIBAN("FR7630006000011234567890189", registry.Default())
	require.NoError(t, err)

	formatted := iban.Formatted()
	assert.Equal(t, "FR76 3000 6000 0112 3456 7890 189", formatted)

	// The paper format parses back to the same value.
	again, err := valueobject.ParseIBAN(formatted, registry.Default())
	require.NoError(t, err)
	assert.Equal(t, iban.Normalized(), again.Normalized())
}

func TestParseIBAN_TooShort(t *testing.T) {
	_, err := valueobject.ParseIBAN("FR7", registry.Default())

	require.Error(t, err)
	assert.True(t, errors.Is(err, validation.ErrFormat))
}

func TestParseIBAN_NonAlphanumeric(t *testing.T) {
	_, err := valueobject.ParseIBAN("FR76-3000-6000-0112-3456-7890-189", registry.Default())

	require.Error(t, err)
	assert.True(t, errors.Is(err, validation.ErrFormat))
}

func TestParseIBAN_UnknownCountry(t *testing.T) {
	_, err := valueobject.ParseIBAN("ZZ6830006000011234567890189", registry.Default())

	require.Error(t, err)
	assert.True(t, errors.Is(err, validation.ErrUnknownCountry))
}

func TestParseIBAN_BICOnlyCountry(t *testing.T) {
	// The US is in the country table for BIC validation but has no
	// registered IBAN format.
	_, err := valueobject.ParseIBAN("US7630006000011234567890189", registry.Default())

	require.Error(t, err)
	assert.True(t, errors.Is(err, validation.ErrUnknownCountry))
}

func TestParseIBAN_LengthMismatch(t *testing.T) {
	// 25 characters where France registers 27.
	_, err := valueobject.ParseIBAN("FR76300060000112345678901", registry.Default())

	require.Error(t, err)
	assert.True(t, errors.Is(err, validation.ErrLengthMismatch))
	assert.Contains(t, err.Error(), "expected 27 characters for FR")
}

func TestParseIBAN_WrongCountryFailsOnLengthNotChecksum(t *testing.T) {
	// A French-length body under a German country code fails the length
	// check, which is more actionable than a checksum failure.
	_, err := valueobject.ParseIBAN("DE7630006000011234567890189", registry.Default())

	require.Error(t, err)
	assert.True(t, errors.Is(err, validation.ErrLengthMismatch))
	assert.False(t, errors.Is(err, validation.ErrChecksumFailed))
}

func TestParseIBAN_NonNumericCheckDigits(t *testing.T) {
	_, err := valueobject.ParseIBAN("FRA630006000011234567890189", registry.Default())

	require.Error(t, err)
	assert.True(t, errors.Is(err, validation.ErrFormat))
}

func TestParseIBAN_ChecksumFailed(t *testing.T) {
	// Last digit flipped.
	_, err := valueobject.ParseIBAN("FR7630006000011234567890188", registry.Default())

	require.Error(t, err)
	assert.True(t, errors.Is(err, validation.ErrChecksumFailed))
	assert.Equal(t, "CHECKSUM_FAILED", validation.Kind(err))
}

func TestGenerateCheckDigits(t *testing.T) {
	check, err := valueobject.GenerateCheckDigits("FR", "30006000011234567890189")

	require.NoError(t, err)
	assert.Equal(t, "76", check)
}

func TestGenerateCheckDigits_InvalidInput(t *testing.T) {
	_, err := valueobject.GenerateCheckDigits("F", "30006000011234567890189")
	assert.True(t, errors.Is(err, validation.ErrFormat))

	_, err = valueobject.GenerateCheckDigits("FR", "")
	assert.True(t, errors.Is(err, validation.ErrFormat))
}

func TestNewIBAN_RoundTrip(t *testing.T) {
	iban, err := valueobject.NewIBAN("DE", "370400440532013000", registry.Default())

	require.NoError(t, err)
	assert.Equal(t, "DE89370400440532013000", iban.Normalized())

	// A generated IBAN always passes its own validation.
	_, err = valueobject.ParseIBAN(iban.Normalized(), registry.Default())
	assert.NoError(t, err)
}

func TestIBAN_IsZero(t *testing.T) {
	var zero valueobject.IBAN

	assert.True(t, zero.IsZero())
}
