package model

import (
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// ErrUnknownField is returned when setting a field the schema does not declare.
var ErrUnknownField = errors.New("unknown field")

// ValidationError lists the required fields a draft is missing.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
}

var textPolicy = bluemonday.StrictPolicy()

// CleanText strips markup and surrounding whitespace from user input. The
// sanitizer escapes entities; they are decoded again because values are
// stored as plain text and escaped on output.
func CleanText(s string) string {
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(s)))
}

// Draft is an item that has not been submitted yet. It always holds exactly
// one entry per schema field.
type Draft struct {
	schema Schema
	values Record
}

// NewDraft returns an empty draft for the category.
func NewDraft(c Category) *Draft {
	d := &Draft{schema: c.Schema()}
	d.Reset()
	return d
}

// DraftFrom returns a draft populated from rec. Fields outside the schema
// are rejected.
func DraftFrom(c Category, rec Record) (*Draft, error) {
	d := NewDraft(c)
	for k, v := range rec {
		if err := d.Set(k, v); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Category returns the draft's category.
func (d *Draft) Category() Category {
	return d.schema.Category
}

// Set updates a single field.
func (d *Draft) Set(field, value string) error {
	if _, ok := d.schema.Field(field); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	d.values[field] = CleanText(value)
	return nil
}

// Get returns the current value of a field.
func (d *Draft) Get(field string) string {
	return d.values[field]
}

// Record returns a copy of the draft's values.
func (d *Draft) Record() Record {
	return d.values.Clone()
}

// Missing returns the names of empty fields in schema order.
func (d *Draft) Missing() []string {
	var missing []string
	for _, f := range d.schema.Fields {
		if d.values[f.Name] == "" {
			missing = append(missing, f.Name)
		}
	}
	return missing
}

// Validate returns a *ValidationError if any field is empty.
func (d *Draft) Validate() error {
	if missing := d.Missing(); len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// Reset clears every field.
func (d *Draft) Reset() {
	d.values = make(Record, len(d.schema.Fields))
	for _, f := range d.schema.Fields {
		d.values[f.Name] = ""
	}
}

// IsEmpty reports whether every field is empty.
func (d *Draft) IsEmpty() bool {
	for _, v := range d.values {
		if v != "" {
			return false
		}
	}
	return true
}

// Equal reports whether both drafts hold the same category and values.
func (d *Draft) Equal(other *Draft) bool {
	if d.schema.Category != other.schema.Category || len(d.values) != len(other.values) {
		return false
	}
	for k, v := range d.values {
		if other.values[k] != v {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the draft.
func (d *Draft) Clone() *Draft {
	return &Draft{schema: d.schema, values: d.values.Clone()}
}
