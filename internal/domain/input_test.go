package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "number", input: "42", want: "42"},
		{name: "string", input: `"oops"`, want: `"oops"`},
		{name: "object with whitespace", input: "  { \"id\" : 1 }\n", want: `{"id":1}`},
		{name: "null", input: "null", want: "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInput([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestParseInput_Invalid(t *testing.T) {
	for _, input := range []string{"", "   \n", "{", "{invalid}", "1 2", `{"a":1}}`, "undefined"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseInput([]byte(input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInput), "expected ErrInput, got %v", err)
			assert.Contains(t, err.Error(), "JSON syntax error")
		})
	}
}

func TestReadInput(t *testing.T) {
	got, err := ReadInput(strings.NewReader("[1, 2]\n"))
	require.NoError(t, err)
	assert.Equal(t, "[1,2]", string(got))

	_, err = ReadInput(nil)
	assert.ErrorIs(t, err, ErrInput)
}
