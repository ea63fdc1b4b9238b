package builtin

import (
	"bytes"
	"context"
	"html/template"

	"github.com/hijamacare/site-engine/internal/modules"
)

// TypeContactForm is the type tag for the contact form module.
const TypeContactForm = "contact-form-module"

type contactFormProps struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	ReasonOptions []string `json:"reasonOptions"`
}

// fallbackReasons is used when authored content supplies no reason options.
var fallbackReasons = []string{"contact", "feedback", "referral"}

var contactFormTmpl = template.Must(template.New("contact-form").Parse(`<section class="contact-form">
{{- if .Title}}
<h2>{{.Title}}</h2>
{{- end}}
{{- if .Description}}
<p>{{.Description}}</p>
{{- end}}
<form method="post" action="/contact/submit">
<input name="name" placeholder="Full name" required>
<input name="email" type="email" placeholder="Email address" required>
<select name="reason">
{{- range .ReasonOptions}}
<option value="{{.}}">{{.}}</option>
{{- end}}
</select>
<textarea name="message" placeholder="Your message" required></textarea>
<button type="submit">Send Message</button>
</form>
</section>`))

// ContactForm renders the contact form with its configured reason options.
func ContactForm() modules.HandlerFunc {
	return func(_ context.Context, key string, fields map[string]any) (modules.Rendered, error) {
		var props contactFormProps
		if err := decodeFields(fields, &props); err != nil {
			return modules.Rendered{}, err
		}
		if len(props.ReasonOptions) == 0 {
			props.ReasonOptions = fallbackReasons
		}

		var buf bytes.Buffer
		if err := contactFormTmpl.Execute(&buf, props); err != nil {
			return modules.Rendered{}, err
		}
		return modules.Rendered{Key: key, Type: TypeContactForm, HTML: buf.String()}, nil
	}
}
