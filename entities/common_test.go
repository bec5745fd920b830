package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalysisStatusValid(t *testing.T) {
	t.Parallel()

	for _, status := range []AnalysisStatus{
		AnalysisStatusPending, AnalysisStatusProcessing, AnalysisStatusCompleted, AnalysisStatusFailed,
	} {
		assert.True(t, status.Valid(), "status %q should be valid", status)
	}

	assert.False(t, AnalysisStatus("").Valid())
	assert.False(t, AnalysisStatus("done").Valid())
	assert.False(t, AnalysisStatus("PENDING").Valid())
}

func TestAllergenSeverityValid(t *testing.T) {
	t.Parallel()

	for _, severity := range []AllergenSeverity{
		SeverityLow, SeverityMedium, SeverityHigh, SeveritySevere,
	} {
		assert.True(t, severity.Valid(), "severity %q should be valid", severity)
	}

	assert.False(t, AllergenSeverity("").Valid())
	assert.False(t, AllergenSeverity("critical").Valid())
}
