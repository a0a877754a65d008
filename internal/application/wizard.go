package application

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/google/uuid"
	"github.com/linskybing/client-intake/internal/domain/questionnaire"
	"github.com/linskybing/client-intake/internal/domain/submission"
	"github.com/linskybing/client-intake/internal/repository"
)

var ErrInvalidPatch = errors.New("invalid form patch")

// WizardView is what a client needs to render the current step of a draft.
type WizardView struct {
	ID              string                         `json:"id"`
	CurrentStep     int                            `json:"current_step"`
	Title           string                         `json:"title"`
	VisibleSteps    []int                          `json:"visible_steps"`
	Position        int                            `json:"position"`
	TotalSteps      int                            `json:"total_steps"`
	Fields          []questionnaire.Field          `json:"fields"`
	Form            questionnaire.FormState        `json:"form_data"`
	ValidationError *questionnaire.ValidationError `json:"validation_error"`
	IsSubmitting    bool                           `json:"is_submitting"`
}

// WizardService runs the questionnaire engine server side, one redis draft
// per session.
type WizardService struct {
	Repos       *repository.Repos
	submissions *SubmissionService
	catalog     *questionnaire.Catalog
	now         func() time.Time
}

func NewWizardService(repos *repository.Repos, submissions *SubmissionService) *WizardService {
	catalog, err := questionnaire.DefaultCatalog()
	if err != nil {
		// the catalog is embedded, so this only fails on a broken build
		panic(err)
	}
	return &WizardService{
		Repos:       repos,
		submissions: submissions,
		catalog:     catalog,
		now:         time.Now,
	}
}

func (s *WizardService) StartDraft(ctx context.Context) (WizardView, error) {
	d := questionnaire.Draft{
		ID:    uuid.NewString(),
		State: questionnaire.New().Snapshot(),
	}
	if err := s.save(ctx, &d); err != nil {
		return WizardView{}, err
	}
	log.Printf("[Wizard] started draft %s", d.ID)
	return s.view(d.ID, d.Wizard()), nil
}

func (s *WizardService) GetDraft(ctx context.Context, id string) (WizardView, error) {
	d, err := s.Repos.Draft.GetDraft(ctx, id)
	if err != nil {
		return WizardView{}, err
	}
	return s.view(id, d.Wizard()), nil
}

// PatchForm applies an RFC 6902 patch to the draft's answers.
func (s *WizardService) PatchForm(ctx context.Context, id string, patch []byte) (WizardView, error) {
	return s.mutate(ctx, id, func(w *questionnaire.Wizard) error {
		form, err := applyFormPatch(w.Form(), patch)
		if err != nil {
			return err
		}
		return w.ReplaceForm(form)
	})
}

func (s *WizardService) ToggleOption(ctx context.Context, id, field, value string) (WizardView, error) {
	return s.mutate(ctx, id, func(w *questionnaire.Wizard) error {
		return w.ToggleMultiSelect(field, value)
	})
}

// Next advances the draft. A blocked step returns the view together with a
// *questionnaire.ValidationError.
func (s *WizardService) Next(ctx context.Context, id string) (WizardView, error) {
	return s.mutate(ctx, id, func(w *questionnaire.Wizard) error {
		return w.Advance()
	})
}

func (s *WizardService) Back(ctx context.Context, id string) (WizardView, error) {
	return s.mutate(ctx, id, func(w *questionnaire.Wizard) error {
		return w.Retreat()
	})
}

// Submit stores the draft as a submission and discards the draft. On any
// failure the draft is kept unchanged.
func (s *WizardService) Submit(ctx context.Context, id string, src submission.Source) (submission.Submission, error) {
	d, err := s.Repos.Draft.GetDraft(ctx, id)
	if err != nil {
		return submission.Submission{}, err
	}

	src.Channel = submission.ChannelWizard
	sink := &serviceSink{svc: s.submissions, src: src}
	w := d.Wizard(questionnaire.WithListener(questionnaire.Listener{
		OnFailure: func(msg string) { log.Printf("[Wizard] submit of draft %s failed: %s", id, msg) },
	}))
	if _, err := w.Submit(ctx, sink); err != nil {
		return submission.Submission{}, err
	}

	if err := s.Repos.Draft.DeleteDraft(ctx, id); err != nil {
		log.Printf("[Wizard] failed to delete submitted draft %s: %v", id, err)
	}
	return sink.created, nil
}

// mutate loads a draft, applies fn and stores the result. The draft is only
// written when fn succeeds; a validation error still returns the view.
func (s *WizardService) mutate(ctx context.Context, id string, fn func(*questionnaire.Wizard) error) (WizardView, error) {
	d, err := s.Repos.Draft.GetDraft(ctx, id)
	if err != nil {
		return WizardView{}, err
	}
	w := d.Wizard()
	if err := fn(w); err != nil {
		var verr *questionnaire.ValidationError
		if errors.As(err, &verr) {
			return s.view(id, w), err
		}
		return WizardView{}, err
	}

	d.State = w.Snapshot()
	if err := s.save(ctx, &d); err != nil {
		return WizardView{}, err
	}
	return s.view(id, w), nil
}

func (s *WizardService) save(ctx context.Context, d *questionnaire.Draft) error {
	d.UpdatedAt = s.now().UTC()
	return s.Repos.Draft.SaveDraft(ctx, *d)
}

func (s *WizardService) view(id string, w *questionnaire.Wizard) WizardView {
	snap := w.Snapshot()
	pos, total := w.Progress()
	v := WizardView{
		ID:              id,
		CurrentStep:     snap.CurrentStep,
		VisibleSteps:    w.VisibleSteps(),
		Position:        pos,
		TotalSteps:      total,
		Fields:          s.catalog.VisibleFields(snap.CurrentStep, snap.Form),
		Form:            snap.Form,
		ValidationError: w.ValidationError(),
		IsSubmitting:    snap.IsSubmitting,
	}
	if page, ok := s.catalog.Step(snap.CurrentStep); ok {
		v.Title = page.Title
	}
	return v
}

// applyFormPatch patches the JSON form of state. The result must still define
// every field with its proper type, and multi-selects must stay free of
// duplicates.
func applyFormPatch(state questionnaire.FormState, patchJSON []byte) (questionnaire.FormState, error) {
	currentJSON, err := json.Marshal(state)
	if err != nil {
		return questionnaire.FormState{}, fmt.Errorf("failed to marshal form: %w", err)
	}

	patch, err := jsonpatch.DecodePatch(patchJSON)
	if err != nil {
		return questionnaire.FormState{}, fmt.Errorf("%w: %v", ErrInvalidPatch, err)
	}
	modifiedJSON, err := patch.Apply(currentJSON)
	if err != nil {
		return questionnaire.FormState{}, fmt.Errorf("%w: %v", ErrInvalidPatch, err)
	}

	if err := checkPatchedForm(modifiedJSON); err != nil {
		return questionnaire.FormState{}, err
	}

	var result questionnaire.FormState
	if err := json.Unmarshal(modifiedJSON, &result); err != nil {
		return questionnaire.FormState{}, fmt.Errorf("%w: %v", ErrInvalidPatch, err)
	}
	return result, nil
}

func checkPatchedForm(doc []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(doc, &fields); err != nil {
		return fmt.Errorf("%w: form must be an object", ErrInvalidPatch)
	}
	for name, raw := range fields {
		if !questionnaire.IsScalarField(name) && !questionnaire.IsMultiSelectField(name) {
			return fmt.Errorf("%w: unknown field %q", ErrInvalidPatch, name)
		}
		if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return fmt.Errorf("%w: field %q may not be null", ErrInvalidPatch, name)
		}
	}
	for _, name := range questionnaire.ScalarFieldNames() {
		var v string
		if err := decodeField(fields, name, &v); err != nil {
			return err
		}
	}
	for _, name := range questionnaire.MultiSelectFieldNames() {
		var values []string
		if err := decodeField(fields, name, &values); err != nil {
			return err
		}
		seen := make(map[string]bool, len(values))
		for _, v := range values {
			if seen[v] {
				return fmt.Errorf("%w: duplicate %q in %s", ErrInvalidPatch, v, name)
			}
			seen[v] = true
		}
	}
	return nil
}

func decodeField(fields map[string]json.RawMessage, name string, dst interface{}) error {
	raw, ok := fields[name]
	if !ok {
		return fmt.Errorf("%w: field %q was removed", ErrInvalidPatch, name)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: field %q has the wrong type", ErrInvalidPatch, name)
	}
	return nil
}

// serviceSink hands a wizard payload straight to the submission service.
type serviceSink struct {
	svc     *SubmissionService
	src     submission.Source
	created submission.Submission
}

func (k *serviceSink) Create(ctx context.Context, payload questionnaire.SubmissionPayload) (questionnaire.Receipt, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return questionnaire.Receipt{}, err
	}
	var input submission.CreateSubmissionInput
	if err := json.Unmarshal(raw, &input); err != nil {
		return questionnaire.Receipt{}, err
	}

	sub, err := k.svc.CreateSubmission(ctx, input, k.src)
	if err != nil {
		se := &questionnaire.SubmitError{
			Kind:    questionnaire.FailureServer,
			Status:  500,
			Message: "Failed to create submission",
			Err:     err,
		}
		if errors.Is(err, ErrMissingRequired) {
			se.Status = 400
			se.Message = err.Error()
		}
		return questionnaire.Receipt{}, se
	}
	k.created = sub
	return questionnaire.Receipt{ID: sub.ID, CreatedAt: sub.CreatedAt}, nil
}
