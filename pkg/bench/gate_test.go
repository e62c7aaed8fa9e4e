//go:build unit

package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	target := 5.0

	tests := []struct {
		name     string
		mean     float64
		target   *float64
		expected Verdict
	}{
		{"under target passes", 4.0, &target, VerdictPass},
		{"at target passes", 5.0, &target, VerdictPass},
		{"over target fails", 6.0, &target, VerdictFail},
		{"no target skips", 6.0, nil, VerdictSkipped},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Evaluate(Summary{Mean: tt.mean}, tt.target)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestVerdictString(t *testing.T) {
	assert.Equal(t, "pass", VerdictPass.String())
	assert.Equal(t, "fail", VerdictFail.String())
	assert.Equal(t, "skipped", VerdictSkipped.String())
}
