package registration

import (
	"sort"
	"sync"

	"doctor-registration/internal/catalog"
	"doctor-registration/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// Wizard drives one registration through its steps. It owns the record,
// applies patches and cross-section rules, tracks navigation and gates the
// final submission. All methods are safe for concurrent use; lookups write
// back from their own goroutines through the same update path.
type Wizard struct {
	mu sync.Mutex

	id      string
	log     *logrus.Logger
	store   *Store
	checker *Checker
	rules   rules
	catalog *catalog.Catalog
	policy  Policy
	deps    Dependencies

	step      int
	visited   map[int]struct{}
	completed map[int]struct{}
	complete  map[Section]bool
	ready     bool

	status       SubmissionStatus
	submissionID entity.SubmissionID

	lookups *requestTracker
	group   singleflight.Group
}

func NewWizard(log *logrus.Logger, checker *Checker, cat *catalog.Catalog, policy Policy, deps Dependencies) *Wizard {
	w := &Wizard{
		id:        uuid.NewString(),
		log:       log,
		store:     NewStore(policy.currency()),
		checker:   checker,
		rules:     rules{catalog: cat, policy: policy},
		catalog:   cat,
		policy:    policy,
		deps:      deps,
		step:      1,
		visited:   map[int]struct{}{1: {}},
		completed: make(map[int]struct{}),
		complete:  make(map[Section]bool, len(Sections)),
		status:    StatusOpen,
		lookups:   newRequestTracker(),
	}
	w.recomputeLocked()
	return w
}

func (w *Wizard) ID() string {
	return w.id
}

func (w *Wizard) Catalog() *catalog.Catalog {
	return w.catalog
}

// Update shallow-merges p into its section, runs the cross-section rules
// once and recomputes completion. A patch that would break an invariant is
// rejected and nothing changes.
func (w *Wizard) Update(p Patch) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.updateLocked(p)
}

func (w *Wizard) updateLocked(p Patch) error {
	if err := w.editableLocked(); err != nil {
		return err
	}
	entry := w.log.WithFields(logrus.Fields{"registration_id": w.id, "section": p.Section()})

	before := w.store.Record()
	if err := w.rules.check(&before, p); err != nil {
		entry.Debugf("Rejected patch: %v", err)
		return err
	}
	w.store.Apply(p)
	if fired := w.rules.run(&before, &w.store.record, p); len(fired) > 0 {
		entry.WithField("rules", fired).Debug("Cross-section rules applied")
	}
	w.recomputeLocked()
	return nil
}

func (w *Wizard) editableLocked() error {
	switch w.status {
	case StatusSubmitting:
		return ErrSubmissionInProgress
	case StatusSubmitted:
		return ErrAlreadySubmitted
	}
	return nil
}

func (w *Wizard) recomputeLocked() {
	ready := true
	for _, s := range Sections {
		ok := w.checker.IsComplete(w.store.record, s)
		w.complete[s] = ok
		ready = ready && ok
	}
	w.ready = ready
}

// Record returns a deep copy of the current registration.
func (w *Wizard) Record() entity.Registration {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.store.Record()
}

func (w *Wizard) Section(s Section) (interface{}, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.store.Section(s)
}

func (w *Wizard) IsSectionComplete(s Section) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.complete[s]
}

func (w *Wizard) MissingFields(s Section) []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.checker.MissingFields(w.store.record, s)
}

// IsReady reports whether every section is complete.
func (w *Wizard) IsReady() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.ready
}

func (w *Wizard) CurrentStep() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// Next moves forward one step and marks the step being left as completed.
func (w *Wizard) Next() (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step >= TotalSteps {
		return w.step, ErrNoNextStep
	}
	w.completed[w.step] = struct{}{}
	w.moveLocked(w.step + 1)
	return w.step, nil
}

func (w *Wizard) Previous() (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step <= 1 {
		return w.step, ErrNoPreviousStep
	}
	w.moveLocked(w.step - 1)
	return w.step, nil
}

// GoToStep jumps to any step. Earlier steps do not need to be complete.
func (w *Wizard) GoToStep(n int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if n < 1 || n > TotalSteps {
		return ErrStepOutOfRange
	}
	w.moveLocked(n)
	return nil
}

func (w *Wizard) moveLocked(n int) {
	w.step = n
	w.visited[n] = struct{}{}
	w.log.WithFields(logrus.Fields{"registration_id": w.id, "step": n}).Debug("Moved to step")
}

// CompletedSteps returns the steps left through Next, ascending.
func (w *Wizard) CompletedSteps() []int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.completedStepsLocked()
}

func (w *Wizard) completedStepsLocked() []int {
	out := make([]int, 0, len(w.completed))
	for n := range w.completed {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// Progress is the current step as a percentage of all steps.
func (w *Wizard) Progress() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step * 100 / TotalSteps
}

type StepStatus struct {
	Step
	Current   bool
	Visited   bool
	Completed bool
	// SectionComplete is the validator result for the step's section, or
	// overall readiness for the review step.
	SectionComplete bool
}

func (w *Wizard) StepStatuses() []StepStatus {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stepStatusesLocked()
}

func (w *Wizard) stepStatusesLocked() []StepStatus {
	out := make([]StepStatus, 0, TotalSteps)
	for _, st := range steps {
		_, visited := w.visited[st.Number]
		_, completed := w.completed[st.Number]
		sectionComplete := w.ready
		if st.Section != "" {
			sectionComplete = w.complete[st.Section]
		}
		out = append(out, StepStatus{
			Step:            st,
			Current:         st.Number == w.step,
			Visited:         visited,
			Completed:       completed,
			SectionComplete: sectionComplete,
		})
	}
	return out
}

// Snapshot is a consistent view of the whole wizard taken under one lock.
type Snapshot struct {
	ID             string
	Record         entity.Registration
	CurrentStep    int
	CompletedSteps []int
	Steps          []StepStatus
	Missing        map[Section][]string
	Ready          bool
	Status         SubmissionStatus
	SubmissionID   entity.SubmissionID
}

func (w *Wizard) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	missing := make(map[Section][]string)
	for _, s := range Sections {
		if !w.complete[s] {
			missing[s] = w.checker.MissingFields(w.store.record, s)
		}
	}
	return Snapshot{
		ID:             w.id,
		Record:         w.store.Record(),
		CurrentStep:    w.step,
		CompletedSteps: w.completedStepsLocked(),
		Steps:          w.stepStatusesLocked(),
		Missing:        missing,
		Ready:          w.ready,
		Status:         w.status,
		SubmissionID:   w.submissionID,
	}
}
