// Package notify runs the detached mail worker. Registration publishes jobs
// to the event bus and returns; this worker picks them up off the request
// path and drives the mail dispatcher.
package notify

import (
	"encoding/json"

	"github.com/ehtasham11/nutritional-AI/internal/mailer"
	"github.com/ehtasham11/nutritional-AI/internal/service"
	"github.com/ehtasham11/nutritional-AI/pkg/events"
	"github.com/ehtasham11/nutritional-AI/pkg/logger"
)

const queueGroup = "notify"

type Worker struct {
	bus     events.Subscriber
	mailer  mailer.Service
	baseURL string
}

func NewWorker(bus events.Subscriber, mailer mailer.Service, baseURL string) *Worker {
	return &Worker{
		bus:     bus,
		mailer:  mailer,
		baseURL: baseURL,
	}
}

// Start subscribes the worker to confirmation-email jobs. Delivery failures
// are terminal for the job: they are logged for manual remediation, never
// retried, and never touch the already-committed user record.
func (w *Worker) Start() error {
	return w.bus.QueueSubscribe(events.NotifyConfirmationEmail, queueGroup, w.handleConfirmationEmail)
}

func (w *Worker) handleConfirmationEmail(msg *events.Message) {
	var job events.ConfirmationEmailJob
	if err := json.Unmarshal(msg.Data, &job); err != nil {
		logger.Error("Failed to decode confirmation email job", "error", err)
		return
	}

	confirmURL := service.ConfirmationURL(w.baseURL, job.Token)
	if err := w.mailer.SendConfirmationEmail(job.Email, job.FirstName, confirmURL, job.Token); err != nil {
		logger.Error("Failed to send confirmation email",
			"error", err,
			"email", job.Email,
		)
		return
	}

	logger.Info("Confirmation email sent", "email", job.Email)
}
