package qa

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeQuestion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"How do I reset my password?", "how do i reset my password"},
		{"  How   do I reset\tmy password ?? ", "how do i reset my password"},
		{"HELLO!!", "hello"},
		{"", ""},
	}

	for _, tc := range tests {
		require.Equal(t, tc.want, normalizeQuestion(tc.in), "input %q", tc.in)
	}
}
