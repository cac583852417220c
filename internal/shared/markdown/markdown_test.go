package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTMLSanitized(t *testing.T) {
	r := NewRenderer()

	out, err := r.ToHTMLSanitized("**importante** aggiornamento")
	require.NoError(t, err)
	assert.Contains(t, out, "<strong>importante</strong>")
}

func TestToHTMLSanitized_StripsScripts(t *testing.T) {
	r := NewRenderer()

	out, err := r.ToHTMLSanitized("ciao <script>alert(1)</script> mondo")
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, "alert(1)")
	assert.Contains(t, out, "ciao")
}

func TestSanitize_StripsEventHandlers(t *testing.T) {
	r := NewRenderer()

	out := r.Sanitize(`<a href="https://example.com" onclick="evil()">link</a>`)
	assert.Contains(t, out, "example.com")
	assert.NotContains(t, out, "onclick")
}
