package questionnaire

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v2"
)

//go:embed catalog.yaml
var catalogYAML []byte

// FieldKind tells a renderer which widget a field needs.
type FieldKind string

const (
	KindText     FieldKind = "text"
	KindTextArea FieldKind = "textarea"
	KindEmail    FieldKind = "email"
	KindSingle   FieldKind = "single"
	KindMulti    FieldKind = "multi"
	KindSelect   FieldKind = "select"
)

// Condition hides a field until another answer matches. Contains applies to
// multi-select fields, Equals to scalars.
type Condition struct {
	Field    string `yaml:"field" json:"field"`
	Contains string `yaml:"contains,omitempty" json:"contains,omitempty"`
	Equals   string `yaml:"equals,omitempty" json:"equals,omitempty"`
}

// Matches reports whether the condition holds for s.
func (c *Condition) Matches(s FormState) bool {
	if c == nil {
		return true
	}
	if c.Contains != "" {
		return s.Has(c.Field, c.Contains)
	}
	v, err := s.Value(c.Field)
	return err == nil && v == c.Equals
}

// Field describes one question.
type Field struct {
	Name        string     `yaml:"name" json:"name"`
	Label       string     `yaml:"label" json:"label"`
	Kind        FieldKind  `yaml:"kind" json:"kind"`
	Required    bool       `yaml:"required,omitempty" json:"required,omitempty"`
	Placeholder string     `yaml:"placeholder,omitempty" json:"placeholder,omitempty"`
	Options     []string   `yaml:"options,omitempty" json:"options,omitempty"`
	ShowIf      *Condition `yaml:"show_if,omitempty" json:"show_if,omitempty"`
}

// Visible reports whether the field should be asked given the answers so far.
func (f Field) Visible(s FormState) bool {
	return f.ShowIf.Matches(s)
}

// StepPage is the presentational side of a step.
type StepPage struct {
	ID     int     `yaml:"id" json:"id"`
	Title  string  `yaml:"title" json:"title"`
	Fields []Field `yaml:"fields" json:"fields"`
}

// Catalog lists the questions of every step.
type Catalog struct {
	Steps []StepPage `yaml:"steps" json:"steps"`
}

// Step returns the page for a step identity.
func (c *Catalog) Step(id int) (StepPage, bool) {
	for _, p := range c.Steps {
		if p.ID == id {
			return p, true
		}
	}
	return StepPage{}, false
}

// VisibleFields returns the fields of step that apply to s.
func (c *Catalog) VisibleFields(step int, s FormState) []Field {
	page, ok := c.Step(step)
	if !ok {
		return nil
	}
	out := make([]Field, 0, len(page.Fields))
	for _, f := range page.Fields {
		if f.Visible(s) {
			out = append(out, f)
		}
	}
	return out
}

// ParseCatalog decodes a catalog and checks that every field maps onto
// FormState with a matching kind.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	for _, page := range c.Steps {
		for _, f := range page.Fields {
			if err := checkField(f); err != nil {
				return nil, fmt.Errorf("step %d: %w", page.ID, err)
			}
		}
	}
	return &c, nil
}

func checkField(f Field) error {
	switch f.Kind {
	case KindMulti:
		if !IsMultiSelectField(f.Name) {
			return notMultiSelect(f.Name)
		}
	case KindText, KindTextArea, KindEmail, KindSingle, KindSelect:
		if !IsScalarField(f.Name) {
			return unknownField(f.Name)
		}
	default:
		return fmt.Errorf("field %q has unsupported kind %q", f.Name, f.Kind)
	}
	if f.ShowIf != nil && !IsScalarField(f.ShowIf.Field) && !IsMultiSelectField(f.ShowIf.Field) {
		return unknownField(f.ShowIf.Field)
	}
	return nil
}

var (
	defaultCatalogOnce sync.Once
	defaultCatalog     *Catalog
	defaultCatalogErr  error
)

// DefaultCatalog returns the embedded question catalog.
func DefaultCatalog() (*Catalog, error) {
	defaultCatalogOnce.Do(func() {
		defaultCatalog, defaultCatalogErr = ParseCatalog(catalogYAML)
	})
	return defaultCatalog, defaultCatalogErr
}
