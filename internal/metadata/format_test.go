package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApertureString(t *testing.T) {
	assert.Equal(t, "2.8", ApertureString(2.8))
	assert.Equal(t, "11.0", ApertureString(11))
	assert.Equal(t, "1.4", ApertureString(1.41))
}

func TestShutterString(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		{"fast fraction", 1.0 / 250, "1/250"},
		{"just below threshold", 0.5, "1/2"},
		{"at threshold", 0.9, "0.9"},
		{"long exposure", 2, "2.0"},
		{"zero", 0, "0.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShutterString(tt.seconds))
		})
	}
}

func TestExpCompString(t *testing.T) {
	assert.Equal(t, "-0.67", ExpCompString(-2.0/3, false))
	assert.Equal(t, "1.00", ExpCompString(1, true))
	assert.Equal(t, "0.00", ExpCompString(0, false))
	assert.Equal(t, "", ExpCompString(0, true), "zero is masked when requested")
}
