// Package builtin holds the module handlers shipped with the site: the
// content-authored catalogue may reference other kinds, which the registry
// skips by omission.
package builtin

import (
	"time"

	"github.com/hijamacare/site-engine/internal/modules"
)

// RegisterAll registers every built-in module handler on the registry.
func RegisterAll(r *modules.Registry, now func() time.Time) {
	r.RegisterFunc(TypeTextHighlight, TextHighlight())
	r.RegisterFunc(TypeContactForm, ContactForm())
	r.RegisterFunc(TypeAppointmentForm, AppointmentForm(now))
}
