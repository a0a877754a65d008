package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/linskybing/client-intake/internal/domain/questionnaire"
)

const (
	actionNext   = "Next"
	actionBack   = "Back"
	actionSubmit = "Submit"
)

// WizardRunner asks the catalog questions step by step and submits the
// answers to a sink.
type WizardRunner struct {
	driver  PromptDriver
	catalog *questionnaire.Catalog
	sink    questionnaire.Sink
}

func NewWizardRunner(driver PromptDriver, catalog *questionnaire.Catalog, sink questionnaire.Sink) *WizardRunner {
	return &WizardRunner{driver: driver, catalog: catalog, sink: sink}
}

// Run walks the visible steps until the questionnaire is submitted. A failed
// submission keeps every answer; the user may retry or give up, in which case
// the submit error is returned.
func (r *WizardRunner) Run(ctx context.Context) (questionnaire.Receipt, error) {
	var failure string
	w := questionnaire.New(questionnaire.WithListener(questionnaire.Listener{
		OnFailure: func(message string) { failure = message },
	}))

	for {
		if err := r.askStep(ctx, w); err != nil {
			return questionnaire.Receipt{}, err
		}

		action, err := r.chooseAction(ctx, w)
		if err != nil {
			return questionnaire.Receipt{}, err
		}

		switch action {
		case actionBack:
			if err := w.Retreat(); err != nil {
				return questionnaire.Receipt{}, err
			}
		case actionNext:
			if err := w.Advance(); err != nil {
				if err := r.showBlocked(ctx, err); err != nil {
					return questionnaire.Receipt{}, err
				}
			}
		case actionSubmit:
			receipt, done, err := r.submit(ctx, w, &failure)
			if done {
				return receipt, err
			}
		}
	}
}

// submit retries until the sink accepts the answers or the user gives up.
// done is false when a validation error sent the user back to the step.
func (r *WizardRunner) submit(ctx context.Context, w *questionnaire.Wizard, failure *string) (questionnaire.Receipt, bool, error) {
	for {
		*failure = ""
		receipt, err := w.Submit(ctx, r.sink)
		if err == nil {
			return receipt, true, nil
		}

		var verr *questionnaire.ValidationError
		if errors.As(err, &verr) {
			if err := r.showBlocked(ctx, err); err != nil {
				return questionnaire.Receipt{}, true, err
			}
			return questionnaire.Receipt{}, false, nil
		}

		msg := *failure
		if msg == "" {
			msg = questionnaire.FailureMessage(err)
		}
		if ierr := r.driver.Info(ctx, "Submission failed: "+msg); ierr != nil {
			return questionnaire.Receipt{}, true, ierr
		}
		retry, cerr := r.driver.Confirm(ctx, ConfirmConfig{Message: "Try again?", Default: true})
		if cerr != nil {
			return questionnaire.Receipt{}, true, cerr
		}
		if !retry {
			return questionnaire.Receipt{}, true, err
		}
	}
}

// askStep renders the header and asks every field of the current step.
// Visibility is re-checked per field so a conditional follow-up appears right
// after the answer that enables it.
func (r *WizardRunner) askStep(ctx context.Context, w *questionnaire.Wizard) error {
	step := w.CurrentStep()
	page, ok := r.catalog.Step(step)
	if !ok {
		return fmt.Errorf("no questions for step %d", step)
	}

	pos, total := w.Progress()
	if err := r.driver.Info(ctx, fmt.Sprintf("\nStep %d of %d: %s", pos, total, page.Title)); err != nil {
		return err
	}

	for _, f := range page.Fields {
		if !f.Visible(w.Form()) {
			continue
		}
		if err := r.askField(ctx, w, f); err != nil {
			return err
		}
	}
	return nil
}

func (r *WizardRunner) askField(ctx context.Context, w *questionnaire.Wizard, f questionnaire.Field) error {
	form := w.Form()
	msg := f.Label
	if f.Required {
		msg += " *"
	}

	switch f.Kind {
	case questionnaire.KindMulti:
		current, err := form.Selected(f.Name)
		if err != nil {
			return err
		}
		picked, err := r.driver.MultiSelect(ctx, SelectConfig{
			Message:  msg,
			Options:  f.Options,
			Defaults: indicesOf(f.Options, current),
			PageSize: len(f.Options),
		})
		if err != nil {
			return err
		}
		return syncSelection(w, f, current, picked)

	case questionnaire.KindSingle, questionnaire.KindSelect:
		current, err := form.Value(f.Name)
		if err != nil {
			return err
		}
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      msg,
			Options:      f.Options,
			DefaultIndex: indexOf(f.Options, current),
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(f.Options) {
			return nil
		}
		return w.UpdateField(f.Name, f.Options[idx])

	case questionnaire.KindTextArea:
		current, err := form.Value(f.Name)
		if err != nil {
			return err
		}
		val, err := r.driver.TextArea(ctx, TextAreaConfig{Message: msg, Default: current, Help: f.Placeholder})
		if err != nil {
			return err
		}
		return w.UpdateField(f.Name, val)

	default:
		current, err := form.Value(f.Name)
		if err != nil {
			return err
		}
		val, err := r.driver.Input(ctx, InputConfig{Message: msg, Default: current, Help: f.Placeholder})
		if err != nil {
			return err
		}
		return w.UpdateField(f.Name, strings.TrimRight(val, "\r\n"))
	}
}

// syncSelection toggles options until the field holds exactly the picked
// ones. New picks are appended in option order.
func syncSelection(w *questionnaire.Wizard, f questionnaire.Field, current []string, picked []int) error {
	want := make(map[string]bool, len(picked))
	for _, i := range picked {
		want[f.Options[i]] = true
	}
	for _, v := range current {
		if !want[v] {
			if err := w.ToggleMultiSelect(f.Name, v); err != nil {
				return err
			}
		}
	}
	have := make(map[string]bool, len(current))
	for _, v := range current {
		have[v] = true
	}
	for _, i := range picked {
		if v := f.Options[i]; !have[v] {
			if err := w.ToggleMultiSelect(f.Name, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *WizardRunner) chooseAction(ctx context.Context, w *questionnaire.Wizard) (string, error) {
	forward := actionNext
	if w.IsFinalStep() {
		forward = actionSubmit
	}
	options := []string{forward}
	if pos, _ := w.Progress(); pos > 1 {
		options = append(options, actionBack)
	}

	idx, err := r.driver.Select(ctx, SelectConfig{Message: "Continue", Options: options})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(options) {
		return forward, nil
	}
	return options[idx], nil
}

func (r *WizardRunner) showBlocked(ctx context.Context, err error) error {
	var verr *questionnaire.ValidationError
	if !errors.As(err, &verr) {
		return err
	}
	return r.driver.Info(ctx, fmt.Sprintf("%s: %s", verr.Title, verr.Description))
}
