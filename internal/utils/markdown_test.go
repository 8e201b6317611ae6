package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderMarkdownBasics(t *testing.T) {
	out := string(RenderMarkdown("**bold** and [a link](https://example.com)"))
	assert.Contains(t, out, "<strong>bold</strong>")
	assert.Contains(t, out, `href="https://example.com"`)
}

func TestRenderMarkdownStripsScripts(t *testing.T) {
	out := string(RenderMarkdown(`hello <script>alert("xss")</script>`))
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "hello")
}

func TestRenderMarkdownExternalLinksOpenInNewTab(t *testing.T) {
	out := string(RenderMarkdown("[docs](https://example.com/docs)"))
	assert.True(t, strings.Contains(out, `target="_blank"`), out)
}
