package htmlutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		// nbsp separates words, it must not glue them together
		{"Long\u00a0Island, New\u00a0York, USA", "Long Island, New York, USA"},
		{"  Worlds End 2025  ", "Worlds End 2025"},
		{"Jon\n\tMoxley", "Jon Moxley"},
		{"A   B", "A B"},
		{"plain", "plain"},
		{"", ""},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, CleanText(test.input), "%q", test.input)
	}
}
