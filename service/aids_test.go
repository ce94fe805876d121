package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAllowedAids(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty", "", []string{}},
		{"blank", "   ", []string{}},
		{"empty braces", "{}", []string{}},
		{"single quoted with repeats", "'A','A','B'", []string{"A", "B"}},
		{"double quoted", `"Taschenrechner","Formelsammlung"`, []string{"Taschenrechner", "Formelsammlung"}},
		{"enclosing braces stripped", `{"Skript","Skript","Wörterbuch"}`, []string{"Skript", "Wörterbuch"}},
		{"numbers", "3, 1, 3", []string{"3", "1"}},
		{"bare words", "Taschenrechner, Skript , Taschenrechner", []string{"Taschenrechner", "Skript"}},
		{"mixed quoting", `"A", 'B', C`, []string{"A", "B", "C"}},
		{"escaped quote", `'it\'s allowed'`, []string{"it's allowed"}},
		{"comma inside quotes", `"A, B","C"`, []string{"A, B", "C"}},
		{"first occurrence order kept", "'B','A','B','C','A'", []string{"B", "A", "C"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := parseAllowedAids(test.raw)
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestParseAllowedAids_Malformed(t *testing.T) {
	for _, raw := range []string{
		`'unterminated`,
		`"A",`,
		`,"A"`,
		`"A" "B"`,
		`{"nested": 1}`,
		`["A"], ["B"]`,
	} {
		_, err := parseAllowedAids(raw)
		assert.Error(t, err, "raw %q", raw)
	}
}
