package registration

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"doctor-registration/internal/domain/entity"

	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
)

type SubmissionStatus string

const (
	StatusOpen       SubmissionStatus = "open"
	StatusSubmitting SubmissionStatus = "submitting"
	StatusSubmitted  SubmissionStatus = "submitted"
)

func newSubmissionID() entity.SubmissionID {
	id := ulid.MustNew(ulid.Timestamp(time.Now()), ulid.Monotonic(rand.Reader, 0))
	return entity.SubmissionID("sub_" + id.String())
}

// Submit hands the record to the transport once every section is complete.
// The record is frozen while the transport runs. A transport failure
// reopens the gate so the user can try again.
func (w *Wizard) Submit(ctx context.Context) (entity.SubmissionID, error) {
	w.mu.Lock()
	if err := w.editableLocked(); err != nil {
		w.mu.Unlock()
		return "", err
	}
	if !w.ready {
		w.mu.Unlock()
		return "", ErrNotReady
	}
	w.status = StatusSubmitting
	id := newSubmissionID()
	rec := w.store.Record()
	transport := w.deps.Transport
	w.mu.Unlock()

	err := transport.Submit(ctx, id, rec)

	w.mu.Lock()
	defer w.mu.Unlock()
	entry := w.log.WithFields(logrus.Fields{"registration_id": w.id, "submission_id": id})
	if err != nil {
		w.status = StatusOpen
		entry.Warnf("Failed to submit registration: %+v", err)
		return "", fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}
	w.status = StatusSubmitted
	w.submissionID = id
	entry.Info("Registration submitted")
	return id, nil
}

func (w *Wizard) Status() SubmissionStatus {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.status
}

// SubmissionID is empty until a submission succeeds.
func (w *Wizard) SubmissionID() entity.SubmissionID {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.submissionID
}
