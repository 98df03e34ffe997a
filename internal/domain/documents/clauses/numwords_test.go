package clauses

import "testing"

func TestAmountToWords(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "CERO PESOS"},
		{"7", "SIETE PESOS"},
		{"20", "VEINTE PESOS"},
		{"45", "CUARENTA CINCO PESOS"},
		{"100", "CIENTO PESOS"},
		{"850", "OCHOCIENTOS CINCUENTA PESOS"},
		{"999", "NOVECIENTOS NOVENTA NUEVE PESOS"},
		{"1500", "1500 PESOS"},
		{"350.75", "TRESCIENTOS CINCUENTA PESOS"},
		{"abc", "CANTIDAD NO VÁLIDA"},
	}
	for _, c := range cases {
		if got := AmountToWords(c.in); got != c.want {
			t.Fatalf("AmountToWords(%q) = %q, esperaba %q", c.in, got, c.want)
		}
	}
}
