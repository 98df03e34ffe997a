package clauses

import (
	"strconv"
	"strings"
)

var (
	numUnits    = []string{"", "UN", "DOS", "TRES", "CUATRO", "CINCO", "SEIS", "SIETE", "OCHO", "NUEVE"}
	numTens     = []string{"", "", "VEINTE", "TREINTA", "CUARENTA", "CINCUENTA", "SESENTA", "SETENTA", "OCHENTA", "NOVENTA"}
	numHundreds = []string{"", "CIENTO", "DOSCIENTOS", "TRESCIENTOS", "CUATROCIENTOS", "QUINIENTOS", "SEISCIENTOS", "SETECIENTOS", "OCHOCIENTOS", "NOVECIENTOS"}
)

// AmountToWords convierte el monto del finiquito a letras en mayúsculas.
// Cubre montos menores a mil; arriba de eso cae al monto en dígitos, que
// sigue siendo legalmente legible en la carta.
func AmountToWords(amount string) string {
	f, err := strconv.ParseFloat(strings.TrimSpace(amount), 64)
	if err != nil {
		return "CANTIDAD NO VÁLIDA"
	}
	n := int(f)
	switch {
	case n == 0:
		return "CERO PESOS"
	case n < 10:
		return numUnits[n] + " PESOS"
	case n < 100:
		return joinWords(numTens[n/10], numUnits[n%10]) + " PESOS"
	case n < 1000:
		return joinWords(numHundreds[n/100], numTens[(n%100)/10], numUnits[n%10]) + " PESOS"
	default:
		return amount + " PESOS"
	}
}

func joinWords(parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
