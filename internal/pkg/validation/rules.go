package validation

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Source tells where a rule reads its fields from
type Source int

const (
	// Body reads fields from the JSON request body
	Body Source = iota
	// Query reads fields from the URL query string
	Query
)

// Field is a single required input. Tag is a validator tag; "required" when empty.
type Field struct {
	Name string
	Tag  string
}

func (f Field) tag() string {
	if f.Tag == "" {
		return "required"
	}
	return f.Tag
}

// Rule describes the required inputs of one route and the message returned
// with a 400 when any of them is missing.
type Rule struct {
	Source  Source
	Fields  []Field
	Message string
}

// RequireBody builds a body rule where every named field must be present
func RequireBody(message string, names ...string) Rule {
	return Rule{Source: Body, Fields: fields(names), Message: message}
}

// RequireQuery builds a query string rule where every named parameter must be present
func RequireQuery(message string, names ...string) Rule {
	return Rule{Source: Query, Fields: fields(names), Message: message}
}

// NonEmptyList marks a field that must be a list with at least one element
func NonEmptyList(name string) Field {
	return Field{Name: name, Tag: "required,min=1"}
}

// With appends extra fields to the rule
func (r Rule) With(extra ...Field) Rule {
	r.Fields = append(append([]Field{}, r.Fields...), extra...)
	return r
}

// Check reports whether every field of the rule is present in values.
// Presence follows JSON truthiness: null, "", 0, false and empty lists are missing.
func (r Rule) Check(values map[string]interface{}) bool {
	for _, f := range r.Fields {
		v, ok := values[f.Name]
		if !ok || v == nil {
			return false
		}
		if err := validate.Var(v, f.tag()); err != nil {
			return false
		}
	}
	return true
}

func fields(names []string) []Field {
	out := make([]Field, 0, len(names))
	for _, name := range names {
		out = append(out, Field{Name: name})
	}
	return out
}
