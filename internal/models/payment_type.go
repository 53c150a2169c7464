package models

import (
	"fmt"
	"strings"
)

type PaymentType string

const (
	PaymentTypePix        PaymentType = "PIX"
	PaymentTypeCreditCard PaymentType = "CREDIT_CARD"
	PaymentTypeDebitCard  PaymentType = "DEBIT_CARD"
	PaymentTypeBoleto     PaymentType = "BOLETO"
)

var paymentTypes = map[PaymentType]struct{}{
	PaymentTypePix:        {},
	PaymentTypeCreditCard: {},
	PaymentTypeDebitCard:  {},
	PaymentTypeBoleto:     {},
}

// ParsePaymentType accepts any letter case, e.g. "pix" or "Credit_Card".
func ParsePaymentType(s string) (PaymentType, error) {
	t := PaymentType(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := paymentTypes[t]; !ok {
		return "", fmt.Errorf("unknown payment type %q", s)
	}
	return t, nil
}
