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

func TestBatchValidate_IBANs(t *testing.T) {
	uc := usecase.NewBatchValidate(registry.Default(), testLogger())

	report, err := uc.Execute(context.Background(), dto.BatchValidateRequest{
		Type: "iban",
		Codes: []string{
			"FR7630006000011234567890189",
			"DE89370400440532013000",
			"FR7630006000011234567890188",
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "iban", report.Type)
	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 2, report.Valid)
	assert.Equal(t, 1, report.Invalid)
	require.Len(t, report.Results, 3)
	assert.True(t, report.Results[0].Valid)
	assert.True(t, report.Results[1].Valid)
	assert.False(t, report.Results[2].Valid)
}

func TestBatchValidate_BICs(t *testing.T) {
	uc := usecase.NewBatchValidate(registry.Default(), testLogger())

	report, err := uc.Execute(context.Background(), dto.BatchValidateRequest{
		Type:  "BIC",
		Codes: []string{"BNPAFRPP", "DEUTDEFF500", "BNPAFRP"},
	})

	require.NoError(t, err)
	assert.Equal(t, "bic", report.Type)
	assert.Equal(t, 2, report.Valid)
	assert.Equal(t, 1, report.Invalid)
}

func TestBatchValidate_SkipsBlankLines(t *testing.T) {
	uc := usecase.NewBatchValidate(registry.Default(), testLogger())

	report, err := uc.Execute(context.Background(), dto.BatchValidateRequest{
		Type:  "iban",
		Codes: []string{"", "  ", "FR7630006000011234567890189"},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, report.Total)
	assert.Equal(t, 1, report.Valid)
}

func TestBatchValidate_PreservesInputOrder(t *testing.T) {
	uc := usecase.NewBatchValidate(registry.Default(), testLogger())
	codes := []string{"BNPAFRPP", "DEUTDEFF", "NDEANOKK"}

	report, err := uc.Execute(context.Background(), dto.BatchValidateRequest{Type: "bic", Codes: codes})

	require.NoError(t, err)
	require.Len(t, report.Results, 3)
	for i, code := range codes {
		assert.Equal(t, code, report.Results[i].Input)
	}
}

func TestBatchValidate_UnknownType(t *testing.T) {
	uc := usecase.NewBatchValidate(registry.Default(), testLogger())

	_, err := uc.Execute(context.Background(), dto.BatchValidateRequest{Type: "swift", Codes: []string{"x"}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported validation type")
}
