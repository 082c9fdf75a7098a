package editor

import "fmt"

// IndexError reports a mutation that referenced an index outside the current
// bounds of the edited sequence. Mutations fail fast before touching local
// state or the store.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d out of range (len %d)", e.Op, e.Index, e.Len)
}

func indexErr(op string, i, n int) error {
	return &IndexError{Op: op, Index: i, Len: n}
}

// FieldError reports an EditField call naming a field SubItem does not have.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("unknown sub-item field: %q", e.Field)
}

func fieldErr(field string) error {
	return &FieldError{Field: field}
}
