package service

import (
	"context"
	"encoding/json"
	"fmt"

	"doctor-registration/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

// LogTransport writes submitted registrations to the log. It is the default
// transport when no backend is configured.
type LogTransport struct {
	log *logrus.Logger
}

func NewLogTransport(log *logrus.Logger) *LogTransport {
	return &LogTransport{log: log}
}

func (t *LogTransport) Submit(ctx context.Context, id entity.SubmissionID, rec entity.Registration) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal registration: %w", err)
	}
	t.log.WithContext(ctx).WithFields(logrus.Fields{
		"submission_id": id.String(),
		"registration":  string(payload),
	}).Info("Registration submitted")
	return nil
}
