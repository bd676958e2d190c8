package xlog

import (
	"fmt"
	"strings"
)

// Args is a lazily formatted template: a printf format plus its values.
// Messages built with Msgf and FArgs fields are carried as Args until a
// drain needs the text.
type Args struct {
	Format string
	Values []any

	literal bool // Format is final text; '%' is not a verb
}

// Sprintf captures format and values without rendering them.
func Sprintf(format string, values ...any) Args {
	return Args{Format: format, Values: values}
}

// Text wraps an already rendered string.
func Text(s string) Args { return Args{Format: s, literal: true} }

// AsString returns the text when no rendering is needed, without allocating.
func (a Args) AsString() (string, bool) {
	if a.literal {
		return a.Format, true
	}
	if len(a.Values) != 0 || strings.IndexByte(a.Format, '%') >= 0 {
		return "", false
	}
	return a.Format, true
}

// String renders the template.
func (a Args) String() string {
	if s, ok := a.AsString(); ok {
		return s
	}
	return fmt.Sprintf(a.Format, a.Values...)
}
