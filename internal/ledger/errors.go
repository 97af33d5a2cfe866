package ledger

import "fmt"

// FormatError reports a time, date, or duration string that does not match
// its grammar. It is returned by the codec parse functions and never
// recovered internally.
type FormatError struct {
	Kind  string
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid %s %q", e.Kind, e.Input)
}

// ParseError reports a ledger line that does not match the record grammar.
// A single bad line aborts the whole load; Line is the 0-based index of the
// offending line.
type ParseError struct {
	Path string
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s#L%d: invalid record %q", e.Path, e.Line, e.Text)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError reports a record that violates its invariants, or a time
// string that is the "no time" sentinel where a concrete time is required.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }
