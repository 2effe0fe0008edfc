package usecase_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Livinu/swift-tools/internal/application/dto"
	"github.com/Livinu/swift-tools/internal/application/usecase"
	"github.com/Livinu/swift-tools/internal/domain/registry"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestValidateBIC_Valid(t *testing.T) {
	uc := usecase.NewValidateBIC(registry.Default(), testLogger())

	res := uc.Execute(context.Background(), dto.ValidateBICRequest{BIC: "BNPAFRPPXXX"})

	require.True(t, res.Valid)
	assert.Equal(t, "BNPAFRPPXXX", res.Input)
	assert.Equal(t, "BNPA", res.BankCode)
	assert.Equal(t, "FR", res.CountryCode)
	assert.Equal(t, "France", res.CountryName)
	assert.Equal(t, "PP", res.LocationCode)
	assert.Equal(t, "XXX", res.BranchCode)
	assert.True(t, res.IsPrimaryOffice)
	assert.Empty(t, res.ErrorKind)
	assert.Contains(t, res.Message, "BNPAFRPPXXX")
}

func TestValidateBIC_BranchOfficeJSONKeepsPrimaryOfficeKey(t *testing.T) {
	uc := usecase.NewValidateBIC(registry.Default(), testLogger())

	res := uc.Execute(context.Background(), dto.ValidateBICRequest{BIC: "BNPAFRPP001"})
	require.True(t, res.Valid)
	require.False(t, res.IsPrimaryOffice)

	// The branch-office case serializes the flag explicitly as false
	// instead of dropping the key.
	out, err := json.Marshal(res)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"is_primary_office":false`)
}

func TestValidateBIC_Invalid(t *testing.T) {
	uc := usecase.NewValidateBIC(registry.Default(), testLogger())

	tests := []struct {
		input string
		kind  string
	}{
		{"BNPAFRP", "LENGTH_ERROR"},
		{"BN1AFRPP", "FORMAT_ERROR"},
		{"BNPAZZPP", "UNKNOWN_COUNTRY"},
	}

	for _, tt := range tests {
		res := uc.Execute(context.Background(), dto.ValidateBICRequest{BIC: tt.input})

		require.False(t, res.Valid, "input %q", tt.input)
		assert.Equal(t, tt.kind, res.ErrorKind, "input %q", tt.input)
		assert.NotEmpty(t, res.Message, "input %q", tt.input)
	}
}
