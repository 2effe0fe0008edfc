package valueobject_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Livinu/swift-tools/internal/domain/validation"
	"github.com/Livinu/swift-tools/internal/domain/valueobject"
)

func TestNewChargesCode_Valid(t *testing.T) {
	tests := []struct {
		input string
		want  valueobject.ChargesCode
	}{
		{"SHA", valueobject.ChargesShared},
		{"OUR", valueobject.ChargesOur},
		{"BEN", valueobject.ChargesBeneficiary},
	}

	for _, tt := range tests {
		code, err := valueobject.NewChargesCode(tt.input)

		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, code)
		assert.Equal(t, tt.input, code.String())
	}
}

func TestNewChargesCode_Invalid(t *testing.T) {
	for _, input := range []string{"", "sha", "ALL", "SHARED"} {
		_, err := valueobject.NewChargesCode(input)

		require.Error(t, err, "input %q", input)
		assert.True(t, errors.Is(err, validation.ErrInvalidCharges), "input %q", input)
	}
}

func TestChargesCode_IsZero(t *testing.T) {
	var zero valueobject.ChargesCode

	assert.True(t, zero.IsZero())
	assert.False(t, valueobject.ChargesShared.IsZero())
}
