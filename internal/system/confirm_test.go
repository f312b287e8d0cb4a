package system

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalConfirmer(t *testing.T) {
	cases := []struct {
		answer string
		want   bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"no\n", false},
		{"\n", false},
		{"whatever\n", false},
		{"", false}, // EOF counts as declined
	}
	for _, tc := range cases {
		var out bytes.Buffer
		c := &TerminalConfirmer{In: strings.NewReader(tc.answer), Out: &out}
		got, err := c.Confirm("Restart the machine now?")
		require.NoError(t, err, tc.answer)
		assert.Equal(t, tc.want, got, "answer %q", tc.answer)
		assert.Contains(t, out.String(), "[y/N]")
	}
}
