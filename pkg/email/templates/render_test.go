package templates_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecotech/contactform/pkg/email/templates"
)

func TestRender(t *testing.T) {
	t.Parallel()

	t.Run("returns markup", func(t *testing.T) {
		c := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			_, err := io.WriteString(w, "<p>Olá</p>")
			return err
		})
		got, err := templates.Render(context.Background(), c)
		require.NoError(t, err)
		assert.Equal(t, "<p>Olá</p>", got)
	})

	t.Run("propagates render error", func(t *testing.T) {
		boom := errors.New("boom")
		c := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error { return boom })
		got, err := templates.Render(context.Background(), c)
		assert.ErrorIs(t, err, boom)
		assert.Empty(t, got)
	})
}
