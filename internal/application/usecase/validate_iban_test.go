package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Livinu/swift-tools/internal/application/dto"
	"github.com/Livinu/swift-tools/internal/application/usecase"
	"github.com/Livinu/swift-tools/internal/domain/registry"
)

func TestValidateIBAN_Valid(t *testing.T) {
	uc := usecase.NewValidateIBAN(registry.Default(), testLogger())

	res := uc.Execute(context.Background(), dto.ValidateIBANRequest{IBAN: "fr76 3000 6000 0112 3456 7890 189"})

	require.True(t, res.Valid)
	assert.Equal(t, "FR76 3000 6000 0112 3456 7890 189", res.Formatted)
	assert.Equal(t, "FR", res.CountryCode)
	assert.Equal(t, "France", res.CountryName)
	assert.Equal(t, "76", res.CheckDigits)
	assert.Equal(t, "30006000011234567890189", res.BBAN)
	assert.Empty(t, res.ErrorKind)
}

func TestValidateIBAN_Invalid(t *testing.T) {
	uc := usecase.NewValidateIBAN(registry.Default(), testLogger())

	tests := []struct {
		input string
		kind  string
	}{
		{"FR7630006000011234567890188", "CHECKSUM_FAILED"},
		{"FR76300060000112345678901", "LENGTH_MISMATCH"},
		{"ZZ6830006000011234567890189", "UNKNOWN_COUNTRY"},
		{"FR", "FORMAT_ERROR"},
	}

	for _, tt := range tests {
		res := uc.Execute(context.Background(), dto.ValidateIBANRequest{IBAN: tt.input})

		require.False(t, res.Valid, "input %q", tt.input)
		assert.Equal(t, tt.kind, res.ErrorKind, "input %q", tt.input)
	}
}
