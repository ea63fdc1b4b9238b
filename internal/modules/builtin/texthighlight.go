package builtin

import (
	"bytes"
	"context"
	"html/template"

	"github.com/hijamacare/site-engine/internal/modules"
)

// TypeTextHighlight is the type tag for the text highlight module.
const TypeTextHighlight = "text-highlight-module"

type textHighlightProps struct {
	Pretitle  string `json:"pretitle"`
	Text      string `json:"text"`
	Alignment string `json:"alignment"`
}

var textHighlightTmpl = template.Must(template.New("text-highlight").Parse(`<section class="text-highlight align-{{.Alignment}}">
{{- if .Pretitle}}
<p class="pretitle">{{.Pretitle}}</p>
{{- end}}
<blockquote>&ldquo;{{.Text}}&rdquo;</blockquote>
</section>`))

// TextHighlight renders a pull-quote style highlighted text block.
func TextHighlight() modules.HandlerFunc {
	return func(_ context.Context, key string, fields map[string]any) (modules.Rendered, error) {
		var props textHighlightProps
		if err := decodeFields(fields, &props); err != nil {
			return modules.Rendered{}, err
		}
		if props.Alignment == "" {
			props.Alignment = "center"
		}

		var buf bytes.Buffer
		if err := textHighlightTmpl.Execute(&buf, props); err != nil {
			return modules.Rendered{}, err
		}
		return modules.Rendered{Key: key, Type: TypeTextHighlight, HTML: buf.String()}, nil
	}
}
