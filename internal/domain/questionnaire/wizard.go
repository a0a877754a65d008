package questionnaire

import (
	"context"
	"sync"
	"time"
)

// Receipt identifies a record created by a Sink.
type Receipt struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// Sink accepts finished questionnaires.
type Sink interface {
	Create(ctx context.Context, payload SubmissionPayload) (Receipt, error)
}

// Listener receives the outcome of Submit. Either callback may be nil.
type Listener struct {
	OnComplete func(id string)
	OnFailure  func(message string)
}

// Snapshot is the serializable state of a Wizard.
type Snapshot struct {
	CurrentStep  int       `json:"current_step"`
	Form         FormState `json:"form_data"`
	IsSubmitting bool      `json:"is_submitting"`
}

// Wizard walks a user through the visible steps and submits the answers.
// Visible steps and validation are always derived from the current answers.
//
// While a submission is in flight every mutation is rejected with
// ErrSubmitting so the payload on the wire matches the form on screen.
type Wizard struct {
	mu          sync.Mutex
	currentStep int
	form        FormState
	submitting  bool
	listener    Listener
}

type Option func(*Wizard)

// WithListener registers submission callbacks.
func WithListener(l Listener) Option {
	return func(w *Wizard) { w.listener = l }
}

// New starts a wizard on step 1 with an empty form.
func New(opts ...Option) *Wizard {
	w := &Wizard{currentStep: StepBasicInfo, form: NewFormState()}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Restore rebuilds a wizard from a snapshot. An in-flight flag is not carried
// over: a restored wizard is never mid-submission.
func Restore(s Snapshot, opts ...Option) *Wizard {
	w := New(opts...)
	w.form = s.Form.Clone()
	w.form.Normalize()
	if s.CurrentStep >= StepBasicInfo && s.CurrentStep <= StepCreativeDirection {
		w.currentStep = s.CurrentStep
	}
	return w
}

func (w *Wizard) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return Snapshot{CurrentStep: w.currentStep, Form: w.form.Clone(), IsSubmitting: w.submitting}
}

func (w *Wizard) CurrentStep() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.currentStep
}

// Form returns a copy of the answers.
func (w *Wizard) Form() FormState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.form.Clone()
}

func (w *Wizard) IsSubmitting() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.submitting
}

func (w *Wizard) VisibleSteps() []int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return VisibleSteps(w.form)
}

// ValidationError reports what blocks the current step, or nil.
func (w *Wizard) ValidationError() *ValidationError {
	w.mu.Lock()
	defer w.mu.Unlock()
	return StepValidationError(w.currentStep, w.form)
}

// Progress returns the 1-based position of the current step among the visible
// steps and the number of visible steps.
func (w *Wizard) Progress() (position, total int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	steps := VisibleSteps(w.form)
	return indexOf(steps, w.currentStep) + 1, len(steps)
}

// IsFinalStep reports whether the current step is the last visible one.
func (w *Wizard) IsFinalStep() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	steps := VisibleSteps(w.form)
	return steps[len(steps)-1] == w.currentStep
}

// UpdateField replaces the value of a scalar field.
func (w *Wizard) UpdateField(field, value string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.submitting {
		return ErrSubmitting
	}
	get, ok := scalarFields[field]
	if !ok {
		return unknownField(field)
	}
	*get(&w.form) = value
	return nil
}

// ToggleMultiSelect removes value from a multi-select field when present and
// appends it otherwise.
func (w *Wizard) ToggleMultiSelect(field, value string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.submitting {
		return ErrSubmitting
	}
	get, ok := multiSelectFields[field]
	if !ok {
		return notMultiSelect(field)
	}
	list := get(&w.form)
	*list = toggle(*list, value)
	return nil
}

// ReplaceForm swaps the whole answer set, for example after applying a patch.
func (w *Wizard) ReplaceForm(s FormState) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.submitting {
		return ErrSubmitting
	}
	w.form = s.Clone()
	w.form.Normalize()
	return nil
}

// Advance moves to the next visible step. When the current step is invalid
// the returned error is a *ValidationError and the step is unchanged.
func (w *Wizard) Advance() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.submitting {
		return ErrSubmitting
	}
	if verr := StepValidationError(w.currentStep, w.form); verr != nil {
		return verr
	}
	w.currentStep = nextStep(VisibleSteps(w.form), w.currentStep)
	return nil
}

// Retreat moves to the previous visible step. It never validates.
func (w *Wizard) Retreat() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.submitting {
		return ErrSubmitting
	}
	w.currentStep = previousStep(VisibleSteps(w.form), w.currentStep)
	return nil
}

// Submit validates the final step, flattens the answers and hands them to
// sink. On failure the answers and step are left as they were so the caller
// can retry. The listener is notified of the outcome either way.
func (w *Wizard) Submit(ctx context.Context, sink Sink) (Receipt, error) {
	w.mu.Lock()
	if w.submitting {
		w.mu.Unlock()
		return Receipt{}, ErrSubmitting
	}
	steps := VisibleSteps(w.form)
	if steps[len(steps)-1] != w.currentStep {
		w.mu.Unlock()
		return Receipt{}, ErrNotFinalStep
	}
	if verr := StepValidationError(w.currentStep, w.form); verr != nil {
		w.mu.Unlock()
		return Receipt{}, verr
	}
	w.submitting = true
	payload := NewSubmissionPayload(w.form)
	listener := w.listener
	w.mu.Unlock()

	receipt, err := sink.Create(ctx, payload)

	w.mu.Lock()
	w.submitting = false
	w.mu.Unlock()

	if err != nil {
		if listener.OnFailure != nil {
			listener.OnFailure(FailureMessage(err))
		}
		return Receipt{}, err
	}
	if listener.OnComplete != nil {
		listener.OnComplete(receipt.ID)
	}
	return receipt, nil
}

func toggle(values []string, value string) []string {
	if i := indexOf(values, value); i >= 0 {
		out := make([]string, 0, len(values)-1)
		out = append(out, values[:i]...)
		return append(out, values[i+1:]...)
	}
	out := make([]string, 0, len(values)+1)
	out = append(out, values...)
	return append(out, value)
}

// nextStep picks the visible step after current. A current step that is no
// longer visible resolves to the first visible step above it.
func nextStep(steps []int, current int) int {
	for _, s := range steps {
		if s > current {
			return s
		}
	}
	return current
}

// previousStep mirrors nextStep.
func previousStep(steps []int, current int) int {
	for i := len(steps) - 1; i >= 0; i-- {
		if steps[i] < current {
			return steps[i]
		}
	}
	return current
}

func indexOf[T comparable](values []T, v T) int {
	for i, existing := range values {
		if existing == v {
			return i
		}
	}
	return -1
}
