package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ecotech/contactform/modules/contact"
	"github.com/ecotech/contactform/pkg/config"
	"github.com/ecotech/contactform/pkg/environment"
	"github.com/ecotech/contactform/pkg/logger"
	"github.com/ecotech/contactform/pkg/ratelimiter"
)

func runCheck(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(append([]string{"check"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestCheck_ValidJSON(t *testing.T) {
	t.Parallel()

	out, err := runCheck(t,
		"--name", "  Ana <b> ",
		"--email", "ana@x.io",
		"--subject", "Oi & tchau",
		"--message", "Gostaria de um orçamento.",
		"--consent",
	)
	require.NoError(t, err)

	var result contact.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
	assert.Equal(t, "Ana &lt;b&gt;", result.Submission.Name)
	assert.Contains(t, out, `"assunto": "Oi &amp; tchau"`)
}

func TestCheck_InvalidYAML(t *testing.T) {
	t.Parallel()

	out, err := runCheck(t, "--email", "ana@", "--message", "curta", "-o", "yaml")
	require.ErrorIs(t, err, errInvalidSubmission)

	var result contact.Result
	require.NoError(t, yaml.Unmarshal([]byte(out), &result))
	assert.False(t, result.Valid)
	assert.Equal(t, map[contact.Field]string{
		contact.FieldName:    contact.MsgNameRequired,
		contact.FieldEmail:   contact.MsgEmailInvalid,
		contact.FieldSubject: contact.MsgSubjectRequired,
		contact.FieldMessage: contact.MsgMessageTooShort,
		contact.FieldConsent: contact.MsgConsentRequired,
	}, result.Errors)
}

func TestCheck_UnknownOutput(t *testing.T) {
	t.Parallel()

	_, err := runCheck(t, "--output", "xml")
	assert.ErrorIs(t, err, errUnknownOutput)
}

func TestMountPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/", mountPath(""))
	assert.Equal(t, "/", mountPath("/"))
	assert.Equal(t, "/contato", mountPath("contato/"))
	assert.Equal(t, "/site/contato", mountPath("/site/contato"))
}

func testRouter(t *testing.T, vars map[string]string) http.Handler {
	t.Helper()
	var cfg appConfig
	require.NoError(t, config.ParseFrom(&cfg, vars))

	store := ratelimiter.NewMemoryStore()
	t.Cleanup(store.Close)

	h, err := newRouter(cfg, environment.Production, logger.New(logger.WithOutput(io.Discard)), store)
	require.NoError(t, err)
	return h
}

func TestRouter(t *testing.T) {
	t.Parallel()

	h := testRouter(t, map[string]string{"CONTACT_SUBMIT_DELAY": "1ms"})

	tests := []struct {
		path string
		code int
		body string
	}{
		{path: "/health/live", code: http.StatusOK, body: "ALIVE"},
		{path: "/health/ready", code: http.StatusOK, body: "READY"},
		{path: "/", code: http.StatusOK, body: `id="form-contato"`},
		{path: "/contato.html", code: http.StatusOK, body: `href="contato.html" aria-current="page"`},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.code, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.body)
			assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
		})
	}
}

func TestRouter_BasePathAndRateLimit(t *testing.T) {
	t.Parallel()

	h := testRouter(t, map[string]string{
		"CONTACT_BASE_PATH":     "/contato",
		"CONTACT_SUBMIT_DELAY":  "1ms",
		"CONTACT_RATE_CAPACITY": "1",
	})

	page := httptest.NewRecorder()
	h.ServeHTTP(page, httptest.NewRequest(http.MethodGet, "/contato/", nil))
	require.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), `action="/contato/"`)

	post := func() int {
		form := "nome=Ana&email=ana%40x.io&assunto=Oi&mensagem=0123456789&consent=on"
		req := httptest.NewRequest(http.MethodPost, "/contato/", strings.NewReader(form))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("X-Real-IP", "203.0.113.10")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}
	assert.Equal(t, http.StatusOK, post())
	assert.Equal(t, http.StatusTooManyRequests, post())
}
