package events

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		name     string
		periodic bool
	}{
		// exceptions win even when the name contains a broadcast pattern
		{"Saturday Night's Main Event", false},
		{"WWE Saturday Night's Main Event XL", false},
		{"NXT TakeOver: Brooklyn", false},
		{"TNA Bound For Glory 2026", false},

		{"AEW Dynamite #327", true},
		{"WWE Monday Night RAW", true},
		{"WWE Friday Night SmackDown", true},
		{"WWE Main Event", true},
		{"NXT", true},
		{"AEW Collision", true},
		{"ROH Television Taping", true},
		{"NJPW Road To Wrestling Dontaku - Day 3 #1542", true},

		{"Worlds End 2025", false},
		{"AEW All In: Texas", false},
		{"Wrestle Kingdom 20", false},
	}

	for _, test := range testCases {
		require.Equal(t, test.periodic, Classify(test.name), test.name)
	}
}
