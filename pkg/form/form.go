// Package form implements the contact form: local validation, a single
// submission attempt, and the demo-mode fallback when the backend fails.
package form

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"vincent-gallery/pkg/clients/gallery"
	"vincent-gallery/pkg/models"
)

const (
	DefaultSubmitLabel = "Send Message"
	SendingLabel       = "Sending..."

	SuccessMessage = "Thank you! Your message has been received."
	DemoMessage    = "Demo Mode: Form submitted successfully!\n\n" +
		"The gallery server could not record your message right now.\n" +
		"Your data was logged locally instead."
)

var ErrBusy = errors.New("a submission is already in progress")

// Dialog shows a message to the user and returns once it is dismissed
type Dialog interface {
	Alert(message string)
}

// WriterDialog prints each message on its own paragraph
type WriterDialog struct {
	W io.Writer
}

func (d WriterDialog) Alert(message string) {
	fmt.Fprintf(d.W, "%s\n\n", message)
}

type Outcome int

const (
	Rejected Outcome = iota
	Delivered
	Demo
	Busy
)

func (o Outcome) String() string {
	switch o {
	case Rejected:
		return "rejected"
	case Delivered:
		return "delivered"
	case Demo:
		return "demo"
	case Busy:
		return "busy"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// Result describes how a Submit call ended. Err is set for Rejected, Busy and
// Demo; Receipt only for Delivered.
type Result struct {
	Outcome Outcome
	Err     error
	Receipt *models.SubmissionReceipt
}

type submitControl struct {
	label    string
	disabled bool
}

// Form holds the three user fields and the state of its submit control
type Form struct {
	client      gallery.Client
	dialog      Dialog
	log         *zap.Logger
	sourceLabel string
	now         func() time.Time

	mu      sync.Mutex
	name    string
	email   string
	message string
	submit  submitControl
}

type Option func(*Form)

func WithClock(now func() time.Time) Option {
	return func(f *Form) { f.now = now }
}

func WithSubmitLabel(label string) Option {
	return func(f *Form) { f.submit.label = label }
}

// NewForm creates an empty form posting through client
func NewForm(client gallery.Client, dialog Dialog, log *zap.Logger, sourceLabel string, opts ...Option) *Form {
	f := &Form{
		client:      client,
		dialog:      dialog,
		log:         log,
		sourceLabel: sourceLabel,
		now:         time.Now,
		submit:      submitControl{label: DefaultSubmitLabel},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Form) SetFields(name, email, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.name, f.email, f.message = name, email, message
}

func (f *Form) Fields() (name, email, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.name, f.email, f.message
}

// SubmitControl reports the current label and disabled state of the submit control
func (f *Form) SubmitControl() (label string, disabled bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submit.label, f.submit.disabled
}

func (f *Form) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.name, f.email, f.message = "", "", ""
}

// Submit validates the fields and sends them once. Validation failures never
// reach the network; backend failures fall back to a demo acknowledgment.
// Either way the submit control ends enabled with its original label.
func (f *Form) Submit(ctx context.Context) Result {
	f.mu.Lock()
	if f.submit.disabled {
		f.mu.Unlock()
		return Result{Outcome: Busy, Err: ErrBusy}
	}
	name := strings.TrimSpace(f.name)
	email := strings.TrimSpace(f.email)
	message := strings.TrimSpace(f.message)
	f.mu.Unlock()

	if err := Validate(name, email, message); err != nil {
		f.dialog.Alert(rejectionMessages[err])
		return Result{Outcome: Rejected, Err: err}
	}

	f.mu.Lock()
	if f.submit.disabled {
		f.mu.Unlock()
		return Result{Outcome: Busy, Err: ErrBusy}
	}
	originalLabel := f.submit.label
	f.submit.label = SendingLabel
	f.submit.disabled = true
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.submit.label = originalLabel
		f.submit.disabled = false
		f.mu.Unlock()
	}()

	payload := models.ContactSubmission{
		Name:      name,
		Email:     email,
		Message:   message,
		Website:   f.sourceLabel,
		Timestamp: models.ISOTimestamp(f.now()),
	}

	f.log.Info("Sending contact form to API",
		zap.String("name", payload.Name),
		zap.String("email", payload.Email),
		zap.String("timestamp", payload.Timestamp),
	)

	resp, err := f.client.Submit(ctx, payload)
	if err != nil {
		f.log.Error("API Error", zap.Error(err))
		f.log.Info("Form data (not sent)",
			zap.String("name", payload.Name),
			zap.String("email", payload.Email),
			zap.String("message", payload.Message),
		)
		f.dialog.Alert(DemoMessage)
		f.reset()
		return Result{Outcome: Demo, Err: err}
	}

	f.log.Info("API Response", zap.Bool("success", resp.Success), zap.Any("data", resp.Data))
	f.dialog.Alert(SuccessMessage)
	f.reset()
	return Result{Outcome: Delivered, Receipt: resp.Data}
}
