package dashboard

import (
	"bytes"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Markdown converts untrusted model output into HTML that is safe to embed
// in the page. Raw HTML in the input is dropped by goldmark and the result is
// sanitized again before it is marked as trusted.
type Markdown struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func NewMarkdown() *Markdown {
	return &Markdown{
		md: goldmark.New(
			goldmark.WithExtensions(extension.Strikethrough, extension.Table),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
		policy: bluemonday.UGCPolicy(),
	}
}

func (m *Markdown) Render(src string) (template.HTML, error) {
	var buf bytes.Buffer

	if err := m.md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}

	return template.HTML(m.policy.SanitizeBytes(buf.Bytes())), nil
}
