package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"doctor-registration/internal/converter"
	"doctor-registration/internal/domain/entity"

	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"
)

const SubjectRegistrationSubmitted = "registration.submitted"

// Publisher is the part of *nats.Conn the NATS transport needs.
type Publisher interface {
	Publish(subject string, data []byte) error
}

var _ Publisher = (*nats.Conn)(nil)

// NATSTransport publishes each submission as a JSON event.
type NATSTransport struct {
	publisher Publisher
	subject   string
	log       *logrus.Logger
}

func NewNATSTransport(publisher Publisher, log *logrus.Logger) *NATSTransport {
	return &NATSTransport{
		publisher: publisher,
		subject:   SubjectRegistrationSubmitted,
		log:       log,
	}
}

func (t *NATSTransport) Submit(ctx context.Context, id entity.SubmissionID, rec entity.Registration) error {
	event := converter.RegistrationToEvent(id, rec, time.Now().UTC())
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event data: %w", err)
	}

	t.log.WithContext(ctx).WithFields(logrus.Fields{
		"subject":       t.subject,
		"submission_id": id.String(),
	}).Debug("Publishing event")

	if err := t.publisher.Publish(t.subject, payload); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}
