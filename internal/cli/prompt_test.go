package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "yes", input: "y\n", want: true},
		{name: "yes uppercase", input: "Y\n", want: true},
		{name: "no", input: "n\n", want: false},
		{name: "anything else is no", input: "sure\n", want: false},
		{name: "empty input", input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got := confirm(&out, strings.NewReader(tt.input), "Proceed? (y/n): ")
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Proceed? (y/n): ")
		})
	}
}

func TestPromptInt_RetriesOnGarbage(t *testing.T) {
	var out bytes.Buffer
	scanner := bufio.NewScanner(strings.NewReader("abc\n\n42\n"))

	v, ok := promptInt(&out, scanner, "Enter your age: ")
	assert.True(t, ok)
	assert.Equal(t, 42, v)
	assert.Contains(t, out.String(), "Invalid input! Please enter a number.")
}

func TestPromptInt_InputEnds(t *testing.T) {
	var out bytes.Buffer
	scanner := bufio.NewScanner(strings.NewReader("nope\n"))

	_, ok := promptInt(&out, scanner, "Enter: ")
	assert.False(t, ok)
}

func TestPromptFloat(t *testing.T) {
	var out bytes.Buffer
	scanner := bufio.NewScanner(strings.NewReader("82.5\n"))

	v, ok := promptFloat(&out, scanner, "Enter your weight in kg: ")
	assert.True(t, ok)
	assert.InDelta(t, 82.5, v, 0.001)
}

func TestPromptChoice(t *testing.T) {
	options := []string{"Male", "Female"}

	t.Run("valid selection", func(t *testing.T) {
		var out bytes.Buffer
		scanner := bufio.NewScanner(strings.NewReader("2\n"))

		got, ok := promptChoice(&out, scanner, "SELECT GENDER", options)
		assert.True(t, ok)
		assert.Equal(t, "Female", got)
		assert.Contains(t, out.String(), "1. Male")
		assert.Contains(t, out.String(), "2. Female")
	})

	t.Run("out of range then valid", func(t *testing.T) {
		var out bytes.Buffer
		scanner := bufio.NewScanner(strings.NewReader("9\n1\n"))

		got, ok := promptChoice(&out, scanner, "SELECT GENDER", options)
		assert.True(t, ok)
		assert.Equal(t, "Male", got)
		assert.Contains(t, out.String(), "Please choose a correct option.")
	})
}

func TestPromptYesNo(t *testing.T) {
	var out bytes.Buffer
	scanner := bufio.NewScanner(strings.NewReader("maybe\ny\n"))

	v, ok := promptYesNo(&out, scanner, "Set goal? (y/n): ")
	assert.True(t, ok)
	assert.True(t, v)
	assert.Contains(t, out.String(), "Invalid input. Please enter 'y' or 'n'.")
}
