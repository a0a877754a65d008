package questionnaire

import "strings"

// Step identities. The catalog is fixed; 3..6 are conditional.
const (
	StepBasicInfo         = 1
	StepServices          = 2
	StepVideo             = 3
	StepWebDevelopment    = 4
	StepBrandIdentity     = 5
	StepMetaAds           = 6
	StepCreativeDirection = 7
)

// StepDefinition pairs a step identity with its visibility and validation
// predicates. Both are pure functions of FormState.
type StepDefinition struct {
	ID       int
	Visible  func(FormState) bool
	Validate func(FormState) *ValidationError
}

func always(FormState) bool { return true }

func never(FormState) *ValidationError { return nil }

func selectedAny(values ...string) func(FormState) bool {
	return func(s FormState) bool {
		for _, v := range values {
			if contains(s.Services, v) {
				return true
			}
		}
		return false
	}
}

// Steps is the ordered step catalog.
var Steps = []StepDefinition{
	{ID: StepBasicInfo, Visible: always, Validate: validateBasicInfo},
	{ID: StepServices, Visible: always, Validate: validateServices},
	{ID: StepVideo, Visible: selectedAny(ServiceVideoEditing, ServiceMotionGraphics), Validate: never},
	{ID: StepWebDevelopment, Visible: selectedAny(ServiceWebDevelopment), Validate: never},
	{ID: StepBrandIdentity, Visible: selectedAny(ServiceBrandIdentity), Validate: never},
	{ID: StepMetaAds, Visible: selectedAny(ServiceMetaAds), Validate: never},
	{ID: StepCreativeDirection, Visible: always, Validate: never},
}

func validateBasicInfo(s FormState) *ValidationError {
	if isBlank(s.FullName) || isBlank(s.WorkEmail) {
		return &ValidationError{
			Title:       "Required fields missing",
			Description: "Please fill in all required fields.",
		}
	}
	return nil
}

func validateServices(s FormState) *ValidationError {
	if len(s.Services) == 0 {
		return &ValidationError{
			Title:       "Service selection required",
			Description: "Please select at least one service.",
		}
	}
	return nil
}

// VisibleSteps returns the steps the user walks through for the given answers,
// in catalog order.
func VisibleSteps(s FormState) []int {
	steps := make([]int, 0, len(Steps))
	for _, def := range Steps {
		if def.Visible(s) {
			steps = append(steps, def.ID)
		}
	}
	return steps
}

// StepValidationError returns the error blocking progress from step, or nil.
// Unknown steps never block.
func StepValidationError(step int, s FormState) *ValidationError {
	for _, def := range Steps {
		if def.ID == step {
			return def.Validate(s)
		}
	}
	return nil
}

func isBlank(v string) bool {
	return strings.TrimSpace(v) == ""
}
