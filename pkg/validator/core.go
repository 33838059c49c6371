package validator

import (
	"errors"
	"slices"
	"strings"
)

// ValidationError represents a single failed rule.
// TranslationKey is a stable machine-readable code for the failure; Message is
// the text shown to the user.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors collects failures in the order the rules ran.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var b strings.Builder
	b.WriteString("validation failed: ")
	for i, err := range ve {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(err.Field)
		b.WriteString(": ")
		b.WriteString(err.Message)
	}
	return b.String()
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	return slices.ContainsFunc(ve, byField(field))
}

// Get returns every message for field, nil when it has none.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve.GetErrors(field) {
		messages = append(messages, err.Message)
	}
	return messages
}

// First returns the first message recorded for field, or "".
func (ve ValidationErrors) First(field string) string {
	if i := slices.IndexFunc(ve, byField(field)); i >= 0 {
		return ve[i].Message
	}
	return ""
}

func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var errs []ValidationError
	for _, err := range ve {
		if err.Field == field {
			errs = append(errs, err)
		}
	}
	return errs
}

// Fields lists the failing fields once each, in first-failure order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	for _, err := range ve {
		if !slices.Contains(fields, err.Field) {
			fields = append(fields, err.Field)
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

func byField(field string) func(ValidationError) bool {
	return func(err ValidationError) bool { return err.Field == field }
}

// Rule pairs a check with the error reported when it fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// newRule builds a rule whose TranslationValues hold the field name plus the
// given key/value pairs.
func newRule(field, key, message string, check func() bool, kv ...any) Rule {
	values := map[string]any{"field": field}
	for i := 0; i+1 < len(kv); i += 2 {
		if k, ok := kv[i].(string); ok {
			values[k] = kv[i+1]
		}
	}
	return Rule{
		Check: check,
		Error: ValidationError{
			Field:             field,
			Message:           message,
			TranslationKey:    key,
			TranslationValues: values,
		},
	}
}

// WithMessage returns a copy of the rule reporting message instead of the default text.
func (r Rule) WithMessage(message string) Rule {
	r.Error.Message = message
	return r
}

// Apply runs every rule and returns the failures as ValidationErrors, or nil.
// A failing rule never short-circuits the ones after it.
func Apply(rules ...Rule) error {
	var errs ValidationErrors
	for _, rule := range rules {
		if !rule.Check() {
			errs.Add(rule.Error)
		}
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// ExtractValidationErrors returns the ValidationErrors in err's chain, or nil.
func ExtractValidationErrors(err error) ValidationErrors {
	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return verrs
	}
	return nil
}

func IsValidationError(err error) bool {
	return ExtractValidationErrors(err) != nil
}
