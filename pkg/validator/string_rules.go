package validator

import (
	"fmt"
	"unicode/utf8"

	"github.com/ecotech/contactform/pkg/sanitizer"
)

// RequiredString fails when value is empty or only whitespace, as sanitizer.Trim
// defines it.
func RequiredString(field, value string) Rule {
	return newRule(field, "validation.required", "field is required",
		func() bool { return sanitizer.Trim(value) != "" })
}

// MinLenString fails when value has fewer than min characters. Characters are
// runes, so "ação" has length four.
func MinLenString(field, value string, min int) Rule {
	return newRule(field, "validation.min_length", fmt.Sprintf("must be at least %d characters long", min),
		func() bool { return utf8.RuneCountInString(value) >= min },
		"min", min)
}

// MaxLenString fails when value has more than max characters.
func MaxLenString(field, value string, max int) Rule {
	return newRule(field, "validation.max_length", fmt.Sprintf("must be at most %d characters long", max),
		func() bool { return utf8.RuneCountInString(value) <= max },
		"max", max)
}

func Required(field, value string) Rule { return RequiredString(field, value) }

func MinLen(field, value string, min int) Rule { return MinLenString(field, value, min) }

func MaxLen(field, value string, max int) Rule { return MaxLenString(field, value, max) }
