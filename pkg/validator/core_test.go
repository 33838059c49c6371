package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecotech/contactform/pkg/validator"
)

func failing(field, message string) validator.Rule {
	return validator.Rule{
		Check: func() bool { return false },
		Error: validator.ValidationError{Field: field, Message: message},
	}
}

func passing(field string) validator.Rule {
	return validator.Rule{
		Check: func() bool { return true },
		Error: validator.ValidationError{Field: field, Message: "unused"},
	}
}

func TestValidationErrors_Error(t *testing.T) {
	t.Parallel()

	t.Run("default message when empty", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("joins field messages in order", func(t *testing.T) {
		errs := validator.ValidationErrors{
			{Field: "nome", Message: "Informe seu nome."},
			{Field: "email", Message: "Informe um e-mail válido."},
		}
		assert.Equal(t, "validation failed: nome: Informe seu nome.; email: Informe um e-mail válido.", errs.Error())
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	t.Parallel()

	var errs validator.ValidationErrors
	assert.True(t, errs.IsEmpty())

	errs.Add(validator.ValidationError{Field: "message", Message: "too short", TranslationKey: "validation.min_length"})
	errs.Add(validator.ValidationError{Field: "email", Message: "bad shape", TranslationKey: "validation.email"})
	errs.Add(validator.ValidationError{Field: "message", Message: "too long", TranslationKey: "validation.max_length"})

	assert.False(t, errs.IsEmpty())
	assert.True(t, errs.Has("message"))
	assert.True(t, errs.Has("email"))
	assert.False(t, errs.Has("name"))

	assert.Equal(t, []string{"too short", "too long"}, errs.Get("message"))
	assert.Nil(t, errs.Get("name"))

	assert.Equal(t, "too short", errs.First("message"))
	assert.Equal(t, "", errs.First("name"))

	got := errs.GetErrors("message")
	require.Len(t, got, 2)
	assert.Equal(t, "validation.min_length", got[0].TranslationKey)
	assert.Equal(t, "validation.max_length", got[1].TranslationKey)

	assert.Equal(t, []string{"message", "email"}, errs.Fields())
}

func TestRule_WithMessage(t *testing.T) {
	t.Parallel()

	base := validator.Required("name", "")
	custom := base.WithMessage("Informe seu nome.")

	assert.Equal(t, "Informe seu nome.", custom.Error.Message)
	assert.Equal(t, "field is required", base.Error.Message, "original rule must stay untouched")
	assert.Equal(t, base.Error.TranslationKey, custom.Error.TranslationKey)
	assert.Equal(t, base.Error.Field, custom.Error.Field)
}

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("nil when all rules pass", func(t *testing.T) {
		assert.NoError(t, validator.Apply(passing("name"), passing("email")))
	})

	t.Run("nil with no rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})

	t.Run("runs every rule without short-circuit", func(t *testing.T) {
		calls := 0
		counted := func(ok bool, field string) validator.Rule {
			return validator.Rule{
				Check: func() bool { calls++; return ok },
				Error: validator.ValidationError{Field: field, Message: field + " failed"},
			}
		}

		err := validator.Apply(counted(false, "name"), counted(true, "email"), counted(false, "subject"))
		require.Error(t, err)
		assert.Equal(t, 3, calls)

		verrs := validator.ExtractValidationErrors(err)
		require.NotNil(t, verrs)
		assert.Equal(t, []string{"name", "subject"}, verrs.Fields())
	})

	t.Run("keeps several failures for one field", func(t *testing.T) {
		err := validator.Apply(failing("message", "first"), failing("message", "second"))
		verrs := validator.ExtractValidationErrors(err)
		require.NotNil(t, verrs)
		assert.Equal(t, []string{"first", "second"}, verrs.Get("message"))
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		wantNil bool
	}{
		{name: "nil error", err: nil, wantNil: true},
		{name: "plain error", err: errors.New("boom"), wantNil: true},
		{name: "direct", err: validator.ValidationErrors{{Field: "email"}}},
		{name: "wrapped", err: fmt.Errorf("submit: %w", validator.ValidationErrors{{Field: "email"}})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := validator.ExtractValidationErrors(tt.err)
			if tt.wantNil {
				assert.Nil(t, got)
				assert.False(t, validator.IsValidationError(tt.err))
				return
			}
			require.NotNil(t, got)
			assert.True(t, got.Has("email"))
			assert.True(t, validator.IsValidationError(tt.err))
		})
	}
}
