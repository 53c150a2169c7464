package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePaymentType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    PaymentType
		wantErr bool
	}{
		{name: "upper", in: "PIX", want: PaymentTypePix},
		{name: "lower", in: "boleto", want: PaymentTypeBoleto},
		{name: "mixed with spaces", in: " Credit_Card ", want: PaymentTypeCreditCard},
		{name: "debit", in: "DEBIT_CARD", want: PaymentTypeDebitCard},
		{name: "unknown", in: "CASH", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParsePaymentType(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
