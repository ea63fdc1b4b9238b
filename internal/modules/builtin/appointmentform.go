package builtin

import (
	"bytes"
	"context"
	"html/template"
	"time"

	"github.com/hijamacare/site-engine/internal/booking"
	"github.com/hijamacare/site-engine/internal/hijri"
	"github.com/hijamacare/site-engine/internal/modules"
)

// TypeAppointmentForm is the type tag for the appointment form module.
const TypeAppointmentForm = "appointment-form-module"

// Authored defaults, matching the CMS schema's initial values.
const (
	defaultAppointmentTitle       = "Book Your Hijama Appointment"
	defaultAppointmentDescription = "Schedule your Hijama session with our experienced practitioner"
)

type appointmentFormProps struct {
	Title        string                `json:"title"`
	Description  string                `json:"description"`
	ServiceTypes []booking.ServiceType `json:"serviceTypes"`
	TimeSlots    []string              `json:"timeSlots"`
	LocationInfo *struct {
		Address string `json:"address"`
		MapURL  string `json:"mapUrl"`
	} `json:"locationInfo"`
	PaymentInfo *struct {
		DepositRequired bool   `json:"depositRequired"`
		DepositAmount   string `json:"depositAmount"`
		PaymentMethods  []struct {
			Method    string `json:"method"`
			Recipient string `json:"recipient"`
			Details   string `json:"details"`
		} `json:"paymentMethods"`
	} `json:"paymentInfo"`
	PrepInstructions *struct {
		Title         string   `json:"title"`
		BringItems    []string `json:"bringItems"`
		WearItems     []string `json:"wearItems"`
		BeforeSession []string `json:"beforeSession"`
		SpecialNotes  []string `json:"specialNotes"`
	} `json:"prepInstructions"`
}

type appointmentFormView struct {
	appointmentFormProps
	MinDate    string
	MaxDate    string
	SunnahDays []string
}

var appointmentFormTmpl = template.Must(template.New("appointment-form").Parse(`<section class="appointment-form">
<h1>{{.Title}}</h1>
<p>{{.Description}}</p>
<form method="post" action="/booking/submit">
<input name="name" placeholder="Full name" required>
<input name="phone" type="tel" placeholder="Phone number" required>
<input name="email" type="email" placeholder="Email address" required>
<select name="service" required>
{{- range .ServiceTypes}}
<option value="{{.Name}}">{{.Line}}</option>
{{- end}}
</select>
<input type="date" name="date" min="{{.MinDate}}" max="{{.MaxDate}}" required>
<select name="time" required>
<option value="">Select time</option>
{{- range .TimeSlots}}
<option value="{{.}}">{{.}}</option>
{{- end}}
</select>
<textarea name="additionalNotes" placeholder="Any specific areas of concern, health conditions, or special requests..."></textarea>
<button type="submit">Book Appointment</button>
</form>
<aside class="sunnah-days">
<h3>Sunnah Days for Hijama</h3>
<p>This month's Sunnah days:</p>
<ul>
{{- range .SunnahDays}}
<li>{{.}}</li>
{{- end}}
</ul>
</aside>
{{- with .LocationInfo}}
<aside class="location">
<h3>Location</h3>
<p>{{.Address}}</p>
{{- if .MapURL}}
<a href="{{.MapURL}}" target="_blank" rel="noopener noreferrer">View on Google Maps</a>
{{- end}}
</aside>
{{- end}}
{{- with .PaymentInfo}}
<aside class="payment">
<h3>Payment Information</h3>
{{- if .DepositRequired}}
<p>A deposit of <strong>{{.DepositAmount}}</strong> is required to confirm your appointment.</p>
{{- end}}
{{- range .PaymentMethods}}
<div><p>{{.Method}}</p><p>{{.Recipient}}</p><p>{{.Details}}</p></div>
{{- end}}
</aside>
{{- end}}
{{- with .PrepInstructions}}
<details class="prep-instructions">
<summary>{{if .Title}}{{.Title}}{{else}}Preparation Instructions{{end}}</summary>
{{- if .BringItems}}
<h4>What to Bring</h4>
<ul>{{range .BringItems}}<li>{{.}}</li>{{end}}</ul>
{{- end}}
{{- if .WearItems}}
<h4>What to Wear</h4>
<ul>{{range .WearItems}}<li>{{.}}</li>{{end}}</ul>
{{- end}}
{{- if .BeforeSession}}
<h4>Before Your Session</h4>
<ul>{{range .BeforeSession}}<li>{{.}}</li>{{end}}</ul>
{{- end}}
{{- if .SpecialNotes}}
<h4>Special Notes</h4>
<ul>{{range .SpecialNotes}}<li>{{.}}</li>{{end}}</ul>
{{- end}}
</details>
{{- end}}
</section>`))

// AppointmentForm renders the booking form with its advisory Sunnah-day
// panel. The clock is injected so the selectable window and the "this
// month" panel are stable under test.
func AppointmentForm(now func() time.Time) modules.HandlerFunc {
	if now == nil {
		now = time.Now
	}
	return func(_ context.Context, key string, fields map[string]any) (modules.Rendered, error) {
		var props appointmentFormProps
		if err := decodeFields(fields, &props); err != nil {
			return modules.Rendered{}, err
		}
		if props.Title == "" {
			props.Title = defaultAppointmentTitle
		}
		if props.Description == "" {
			props.Description = defaultAppointmentDescription
		}

		today := now()
		window := booking.WindowFrom(today)

		view := appointmentFormView{
			appointmentFormProps: props,
			MinDate:              window.Min.Format("2006-01-02"),
			MaxDate:              window.Max.Format("2006-01-02"),
		}
		for _, d := range hijri.SunnahDaysInMonth(today.Year(), today.Month()) {
			view.SunnahDays = append(view.SunnahDays, d.Format("Mon, Jan 2"))
		}

		var buf bytes.Buffer
		if err := appointmentFormTmpl.Execute(&buf, view); err != nil {
			return modules.Rendered{}, err
		}
		return modules.Rendered{Key: key, Type: TypeAppointmentForm, HTML: buf.String()}, nil
	}
}
