package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator(t *testing.T) {
	v := NewValidator()
	assert.True(t, v.Valid())

	v.Check(true, "title", "must be provided")
	assert.True(t, v.Valid())

	v.Check(false, "title", "must be provided")
	v.Check(false, "title", "second message is ignored")
	v.Check(false, "content", "must be provided")

	assert.False(t, v.Valid())
	assert.Equal(t, ValidationError{Errors: map[string]string{
		"title":   "must be provided",
		"content": "must be provided",
	}}, v.ValidationError())
}

func TestCheckStringLength(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		min   int
		max   int
		want  bool
	}{
		{name: "within", input: "abc", min: 1, max: 5, want: true},
		{name: "too short", input: "", min: 1, max: 5, want: false},
		{name: "too long", input: "abcdef", min: 1, max: 5, want: false},
		{name: "multibyte counts runes", input: "héllo", min: 5, max: 5, want: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := NewValidator()
			assert.Equal(t, tc.want, v.CheckStringLength(tc.input, tc.min, tc.max))
		})
	}
}

func TestNotBlank(t *testing.T) {
	assert.True(t, NotBlank("x"))
	assert.False(t, NotBlank(""))
	assert.False(t, NotBlank(" \t\n"))
}

func TestPermittedValue(t *testing.T) {
	assert.True(t, PermittedValue("b", "a", "b"))
	assert.False(t, PermittedValue("c", "a", "b"))
	assert.False(t, PermittedValue(1))
}
