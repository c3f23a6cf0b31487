package form

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"

	"vincent-gallery/pkg/clients/gallery"
	"vincent-gallery/pkg/models"
)

type recordingDialog struct {
	messages []string
}

func (d *recordingDialog) Alert(message string) {
	d.messages = append(d.messages, message)
}

type fakeClient struct {
	gallery.Client // only Submit is used by the form

	calls  []models.ContactSubmission
	err    error
	during func()
}

func (c *fakeClient) Submit(ctx context.Context, s models.ContactSubmission) (*models.SubmissionResponse, error) {
	c.calls = append(c.calls, s)
	if c.during != nil {
		c.during()
	}
	if c.err != nil {
		return nil, c.err
	}
	return &models.SubmissionResponse{
		Success: true,
		Data:    &models.SubmissionReceipt{ID: 7, Name: s.Name, Email: s.Email, Status: models.StatusReceived},
	}, nil
}

var fixedNow = func() time.Time { return time.Date(2024, 5, 1, 12, 30, 0, 250e6, time.UTC) }

func newTestForm(client gallery.Client) (*Form, *recordingDialog) {
	dialog := &recordingDialog{}
	return NewForm(client, dialog, zap.NewNop(), "Vincent Gallery", WithClock(fixedNow)), dialog
}

func assertControlRestored(t *testing.T, f *Form) {
	t.Helper()
	label, disabled := f.SubmitControl()
	if disabled {
		t.Error("expected submit control to be enabled")
	}
	if label != DefaultSubmitLabel {
		t.Errorf("expected label %q, got %q", DefaultSubmitLabel, label)
	}
}

func TestSubmit_MissingFields(t *testing.T) {
	cases := map[string][3]string{
		"empty name":         {"", "jane@example.com", "Hello"},
		"whitespace name":    {"   ", "jane@example.com", "Hello"},
		"empty email":        {"Jane Doe", "", "Hello"},
		"whitespace message": {"Jane Doe", "jane@example.com", "\t\n "},
		"all empty":          {"", "", ""},
		"empty plus bad":     {"", "not-an-email", "Hello"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			client := &fakeClient{}
			f, dialog := newTestForm(client)
			f.SetFields(in[0], in[1], in[2])

			res := f.Submit(context.Background())
			if res.Outcome != Rejected || !errors.Is(res.Err, ErrMissingFields) {
				t.Errorf("expected missing fields rejection, got %v %v", res.Outcome, res.Err)
			}
			if len(client.calls) != 0 {
				t.Errorf("expected no request, got %d", len(client.calls))
			}
			if len(dialog.messages) != 1 || dialog.messages[0] != "Please fill in all fields." {
				t.Errorf("unexpected dialogs %q", dialog.messages)
			}
			assertControlRestored(t, f)
		})
	}
}

func TestSubmit_MalformedEmail(t *testing.T) {
	for _, email := range []string{
		"jane",
		"jane@example",
		"jane.example.com",
		"@example.com",
		"jane@.com",
		"jane doe@example.com",
		"jane@@example.com",
	} {
		t.Run(email, func(t *testing.T) {
			client := &fakeClient{}
			f, dialog := newTestForm(client)
			f.SetFields("Jane Doe", email, "Hello")

			res := f.Submit(context.Background())
			if res.Outcome != Rejected || !errors.Is(res.Err, ErrInvalidEmail) {
				t.Errorf("expected invalid email rejection, got %v %v", res.Outcome, res.Err)
			}
			if len(client.calls) != 0 {
				t.Errorf("expected no request, got %d", len(client.calls))
			}
			if len(dialog.messages) != 1 || dialog.messages[0] != "Please enter a valid email address." {
				t.Errorf("unexpected dialogs %q", dialog.messages)
			}
			// rejected input stays in the form
			if name, _, _ := f.Fields(); name != "Jane Doe" {
				t.Errorf("expected fields to be kept after rejection, got name %q", name)
			}
		})
	}
}

func TestSubmit_Delivered(t *testing.T) {
	client := &fakeClient{}
	f, dialog := newTestForm(client)
	f.SetFields("  Jane Doe ", "jane@example.com", "Hello")

	client.during = func() {
		label, disabled := f.SubmitControl()
		if !disabled || label != SendingLabel {
			t.Errorf("expected disabled control labelled %q while sending, got %q disabled=%v", SendingLabel, label, disabled)
		}
	}

	res := f.Submit(context.Background())
	if res.Outcome != Delivered || res.Err != nil {
		t.Fatalf("expected delivered, got %v %v", res.Outcome, res.Err)
	}
	if res.Receipt == nil || res.Receipt.ID != 7 {
		t.Errorf("unexpected receipt %+v", res.Receipt)
	}

	if len(client.calls) != 1 {
		t.Fatalf("expected exactly one request, got %d", len(client.calls))
	}
	want := models.ContactSubmission{
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Message:   "Hello",
		Website:   "Vincent Gallery",
		Timestamp: "2024-05-01T12:30:00.250Z",
	}
	if client.calls[0] != want {
		t.Errorf("expected payload %+v, got %+v", want, client.calls[0])
	}

	if len(dialog.messages) != 1 || dialog.messages[0] != SuccessMessage {
		t.Errorf("unexpected dialogs %q", dialog.messages)
	}
	if n, e, m := f.Fields(); n != "" || e != "" || m != "" {
		t.Errorf("expected form to be cleared, got %q %q %q", n, e, m)
	}
	assertControlRestored(t, f)
}

func TestSubmit_DemoFallback(t *testing.T) {
	client := &fakeClient{err: errors.New("connection refused")}
	f, dialog := newTestForm(client)
	f.SetFields("Jane Doe", "jane@example.com", "Hello")

	res := f.Submit(context.Background())
	if res.Outcome != Demo || res.Err == nil {
		t.Fatalf("expected demo outcome with error, got %v %v", res.Outcome, res.Err)
	}
	if len(client.calls) != 1 {
		t.Errorf("expected a single attempt, got %d", len(client.calls))
	}
	if len(dialog.messages) != 1 || dialog.messages[0] != DemoMessage {
		t.Errorf("unexpected dialogs %q", dialog.messages)
	}
	if n, _, _ := f.Fields(); n != "" {
		t.Error("expected form to be cleared in demo mode")
	}
	assertControlRestored(t, f)
}

func TestSubmit_BusyWhileInFlight(t *testing.T) {
	client := &fakeClient{}
	f, _ := newTestForm(client)
	f.SetFields("Jane Doe", "jane@example.com", "Hello")

	var second Result
	client.during = func() {
		second = f.Submit(context.Background())
	}

	first := f.Submit(context.Background())
	if first.Outcome != Delivered {
		t.Fatalf("expected first submission delivered, got %v", first.Outcome)
	}
	if second.Outcome != Busy || !errors.Is(second.Err, ErrBusy) {
		t.Errorf("expected second submission to be refused, got %v %v", second.Outcome, second.Err)
	}
	if len(client.calls) != 1 {
		t.Errorf("expected one request, got %d", len(client.calls))
	}
}

func TestSubmit_CustomLabelRestored(t *testing.T) {
	dialog := &recordingDialog{}
	f := NewForm(&fakeClient{err: errors.New("down")}, dialog, zap.NewNop(), "Vincent Gallery", WithSubmitLabel("Send"))
	f.SetFields("Jane Doe", "jane@example.com", "Hello")
	f.Submit(context.Background())

	if label, disabled := f.SubmitControl(); label != "Send" || disabled {
		t.Errorf("expected label Send and enabled, got %q disabled=%v", label, disabled)
	}
}

func TestSubmit_AgainstHTTPBackend(t *testing.T) {
	cases := []struct {
		name   string
		status int
		want   Outcome
	}{
		{"ok", http.StatusOK, Delivered},
		{"server error", http.StatusInternalServerError, Demo},
		{"not found", http.StatusNotFound, Demo},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var requests atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				requests.Add(1)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				if tc.status == http.StatusOK {
					w.Write([]byte(`{"success":true,"message":"ok","data":{"id":1,"status":"received"}}`))
				} else {
					w.Write([]byte(`{"success":false,"message":"nope"}`))
				}
			}))
			defer srv.Close()

			f, _ := newTestForm(gallery.NewClient(srv.URL, 0))
			f.SetFields("Jane Doe", "jane@example.com", "Hello")

			if res := f.Submit(context.Background()); res.Outcome != tc.want {
				t.Errorf("expected %v, got %v (%v)", tc.want, res.Outcome, res.Err)
			}
			if n := requests.Load(); n != 1 {
				t.Errorf("expected one request, got %d", n)
			}
			assertControlRestored(t, f)
		})
	}
}

func TestWriterDialog(t *testing.T) {
	var buf bytes.Buffer
	WriterDialog{W: &buf}.Alert("hello")
	if !strings.HasPrefix(buf.String(), "hello\n") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestOutcomeString(t *testing.T) {
	if Demo.String() != "demo" || Outcome(9).String() != "outcome(9)" {
		t.Error("unexpected outcome names")
	}
}
