package notify_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/ehtasham11/nutritional-AI/internal/notify"
	"github.com/ehtasham11/nutritional-AI/pkg/events"
)

// ---------- Mocks ----------

type mockBus struct {
	subject string
	queue   string
	handler func(msg *events.Message)
}

func (m *mockBus) Subscribe(subject string, handler func(msg *events.Message)) error {
	m.subject = subject
	m.handler = handler
	return nil
}

func (m *mockBus) QueueSubscribe(subject, queue string, handler func(msg *events.Message)) error {
	m.subject = subject
	m.queue = queue
	m.handler = handler
	return nil
}

func (m *mockBus) Close() error { return nil }

func (m *mockBus) deliver(t *testing.T, data interface{}) {
	t.Helper()
	payload, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("marshal job: %v", err)
	}
	m.handler(&events.Message{Subject: m.subject, Data: payload, Timestamp: time.Now()})
}

type mockMailer struct {
	calls   int
	lastTo  string
	lastURL string
	sendErr error
}

func (m *mockMailer) SendConfirmationEmail(toEmail, firstName, confirmURL, token string) error {
	m.calls++
	m.lastTo = toEmail
	m.lastURL = confirmURL
	return m.sendErr
}

// ---------- Tests ----------

func TestWorkerSendsConfirmationEmail(t *testing.T) {
	bus := &mockBus{}
	ml := &mockMailer{}
	w := notify.NewWorker(bus, ml, "http://127.0.0.1:8055")

	if err := w.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if bus.subject != events.NotifyConfirmationEmail {
		t.Errorf("subscribed to %q, want %q", bus.subject, events.NotifyConfirmationEmail)
	}

	bus.deliver(t, events.ConfirmationEmailJob{
		Email:     "ada@example.com",
		FirstName: "Ada",
		Token:     "tok123",
	})

	if ml.calls != 1 {
		t.Fatalf("mailer calls = %d, want 1", ml.calls)
	}
	if ml.lastTo != "ada@example.com" {
		t.Errorf("recipient = %q, want ada@example.com", ml.lastTo)
	}
	if ml.lastURL != "http://127.0.0.1:8055/confirm-email/tok123" {
		t.Errorf("confirm URL = %q, want base URL + /confirm-email/ + token", ml.lastURL)
	}
}

func TestWorkerDeliveryFailureIsTerminal(t *testing.T) {
	bus := &mockBus{}
	ml := &mockMailer{sendErr: errors.New("smtp down")}
	w := notify.NewWorker(bus, ml, "http://127.0.0.1:8055")

	if err := w.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	// A failed send is logged, not retried.
	bus.deliver(t, events.ConfirmationEmailJob{Email: "ada@example.com", FirstName: "Ada", Token: "tok123"})

	if ml.calls != 1 {
		t.Errorf("mailer calls = %d, want exactly 1 (no retry)", ml.calls)
	}
}

func TestWorkerIgnoresMalformedJob(t *testing.T) {
	bus := &mockBus{}
	ml := &mockMailer{}
	w := notify.NewWorker(bus, ml, "http://127.0.0.1:8055")

	if err := w.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	bus.handler(&events.Message{Subject: bus.subject, Data: []byte("{not json"), Timestamp: time.Now()})

	if ml.calls != 0 {
		t.Errorf("mailer calls = %d, want 0 for malformed payload", ml.calls)
	}
}
