package models

import "strings"

var cpfPunctuation = strings.NewReplacer(".", "", "-", "")

// NormalizeCPF drops the dots and dashes of a formatted CPF, so
// "529.982.247-25" and "52998224725" store and compare as the same value.
func NormalizeCPF(cpf string) string {
	return cpfPunctuation.Replace(strings.TrimSpace(cpf))
}
