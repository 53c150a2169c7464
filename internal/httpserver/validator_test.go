package httpserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidCPF(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"52998224725", true},
		{"529.982.247-25", true},
		{"11144477735", true},
		{"39053344705", true},
		{"52998224724", false},
		{"11111111111", false},
		{"1234567890", false},
		{"5299822472a", false},
		{"", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ValidCPF(tt.in))
		})
	}
}
