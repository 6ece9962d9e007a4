package normalize_test

import (
	"strings"
	"testing"

	"github.com/Yrvking/dashboard-s10/internal/normalize"
	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"ACME S.A.C.", "ACME S.A.C."},
		{"  ACME   S.A.C.  ", "ACME S.A.C."},
		{"O.S. 0012\t-\nInstalación", "O.S. 0012 - Instalación"},
	}

	for _, tc := range cases {
		got := normalize.Text(tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)

		// Normalized text never keeps leading/trailing whitespace nor
		// internal runs longer than one space.
		assert.Equal(t, strings.TrimSpace(got), got)
		assert.NotContains(t, got, "  ")
	}
}

func TestNumber(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"   ", 0},
		{"118000", 118000},
		{"1,250.50", 1250.50},
		{"1,234,567.89", 1234567.89},
		{"-500", -500},
		{"50", 50},
		{"N/A", 0},
		{"---", 0},
		{"12abc", 0},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, normalize.Number(tc.in), "input %q", tc.in)
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "59.00%", normalize.Percent(59))
	assert.Equal(t, "53.33%", normalize.Percent(53.333))
	assert.Equal(t, "0.00%", normalize.Percent(0))
}
