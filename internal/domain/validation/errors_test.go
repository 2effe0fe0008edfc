package validation_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Livinu/swift-tools/internal/domain/validation"
)

func TestKind_WrappedSentinel(t *testing.T) {
	err := fmt.Errorf("%w: check digits must be numeric", validation.ErrFormat)

	assert.Equal(t, "FORMAT_ERROR", validation.Kind(err))
	assert.True(t, errors.Is(err, validation.ErrFormat))
}

func TestKind_DeeplyWrapped(t *testing.T) {
	inner := fmt.Errorf("%w: batch X has no instructions", validation.ErrEmptyBatch)
	outer := fmt.Errorf("generate pain.001: %w", inner)

	assert.Equal(t, "EMPTY_BATCH_ERROR", validation.Kind(outer))
}

func TestKind_AllSentinels(t *testing.T) {
	tests := []struct {
		err  error
		kind string
	}{
		{validation.ErrFormat, "FORMAT_ERROR"},
		{validation.ErrLength, "LENGTH_ERROR"},
		{validation.ErrLengthMismatch, "LENGTH_MISMATCH"},
		{validation.ErrUnknownCountry, "UNKNOWN_COUNTRY"},
		{validation.ErrChecksumFailed, "CHECKSUM_FAILED"},
		{validation.ErrInvalidInstruction, "INVALID_INSTRUCTION"},
		{validation.ErrFieldTooLong, "FIELD_TOO_LONG"},
		{validation.ErrEmptyBatch, "EMPTY_BATCH_ERROR"},
		{validation.ErrInvalidCharges, "INVALID_CHARGES_CODE"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.kind, validation.Kind(tt.err))
	}
}

func TestKind_UnrelatedError(t *testing.T) {
	assert.Empty(t, validation.Kind(errors.New("boom")))
	assert.Empty(t, validation.Kind(nil))
}
