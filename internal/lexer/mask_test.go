package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNameChar(t *testing.T) {
	testCases := []struct {
		Input    byte
		Expected bool
	}{
		{'a', true},
		{'Z', true},
		{'9', true},
		{'.', true},
		{'-', true},
		{'_', true},
		{':', false},
		{' ', false},
		{'>', false},
		{'/', false},
	}
	for _, tc := range testCases {
		t.Run(string(tc.Input), func(t *testing.T) {
			assert.Equal(t, tc.Expected, isNameChar(tc.Input))
		})
	}
}

func TestNameEnd(t *testing.T) {
	testCases := []struct {
		Input    string
		Start    int
		Expected int
	}{
		{"foo bar", 0, 3},
		{"foo:bar ", 0, 3},
		{"foo>", 0, 3},
		{"foo", 0, 3},
		{"", 0, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.Input, func(t *testing.T) {
			assert.Equal(t, tc.Expected, nameEnd([]byte(tc.Input), tc.Start))
		})
	}
}
