package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCPF(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"529.982.247-25", "52998224725"},
		{"52998224725", "52998224725"},
		{" 111.444.777-35 ", "11144477735"},
		{"", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NormalizeCPF(tt.in))
		})
	}
}
