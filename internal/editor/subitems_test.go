package editor

import (
	"errors"
	"testing"

	"github.com/oliCHECK24/terminal-portfolio/internal/model"
)

func subLabels(s *SubItems) []string {
	out := make([]string, 0, s.Len())
	for _, it := range s.Items() {
		out = append(out, it.Label)
	}
	return out
}

func TestSubItems_MoveSwapsNeighbors(t *testing.T) {
	s := NewSubItems([]model.SubItem{{Label: "X"}, {Label: "Y"}, {Label: "Z"}})

	if err := s.Move(1, Up); err != nil {
		t.Fatalf("Move: %v", err)
	}
	got := subLabels(s)
	if got[0] != "Y" || got[1] != "X" || got[2] != "Z" {
		t.Fatalf("got %v", got)
	}

	if err := s.Move(1, Down); err != nil {
		t.Fatalf("Move: %v", err)
	}
	got = subLabels(s)
	if got[0] != "Y" || got[1] != "Z" || got[2] != "X" {
		t.Fatalf("got %v", got)
	}
}

func TestSubItems_MoveAtBoundaryIsNoOp(t *testing.T) {
	s := NewSubItems([]model.SubItem{{Label: "X"}, {Label: "Y"}})

	if err := s.Move(0, Up); err != nil {
		t.Fatalf("Move(0, Up): %v", err)
	}
	if err := s.Move(1, Down); err != nil {
		t.Fatalf("Move(1, Down): %v", err)
	}
	got := subLabels(s)
	if got[0] != "X" || got[1] != "Y" {
		t.Fatalf("boundary move changed order: %v", got)
	}
}

func TestSubItems_MoveOutOfRange(t *testing.T) {
	s := NewSubItems([]model.SubItem{{Label: "X"}})
	var ie *IndexError
	if err := s.Move(1, Up); !errors.As(err, &ie) {
		t.Fatalf("expected IndexError, got %v", err)
	}
	if err := s.Move(-1, Down); !errors.As(err, &ie) {
		t.Fatalf("expected IndexError, got %v", err)
	}
}

func TestSubItems_EditField(t *testing.T) {
	s := NewSubItems([]model.SubItem{{Label: "X"}})

	if err := s.EditField(0, FieldLabel, "repo"); err != nil {
		t.Fatalf("EditField: %v", err)
	}
	if err := s.EditField(0, FieldValue, "a project"); err != nil {
		t.Fatalf("EditField: %v", err)
	}
	if err := s.EditField(0, FieldURL, "https://example.com"); err != nil {
		t.Fatalf("EditField: %v", err)
	}
	it := s.Items()[0]
	if it.Label != "repo" || it.Value != "a project" || it.URL != "https://example.com" {
		t.Fatalf("got %+v", it)
	}

	var fe *FieldError
	if err := s.EditField(0, "nope", "v"); !errors.As(err, &fe) {
		t.Fatalf("expected FieldError, got %v", err)
	}
	var ie *IndexError
	if err := s.EditField(2, FieldLabel, "v"); !errors.As(err, &ie) {
		t.Fatalf("expected IndexError, got %v", err)
	}
}

func TestSubItems_AddAndDelete(t *testing.T) {
	s := NewSubItems(nil)
	s.Add()
	s.Add()
	if s.Len() != 2 {
		t.Fatalf("got %d rows", s.Len())
	}
	if err := s.EditField(1, FieldLabel, "keep"); err != nil {
		t.Fatalf("EditField: %v", err)
	}
	if err := s.Delete(0); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if s.Len() != 1 || s.Items()[0].Label != "keep" {
		t.Fatalf("got %+v", s.Items())
	}

	var ie *IndexError
	if err := s.Delete(3); !errors.As(err, &ie) {
		t.Fatalf("expected IndexError, got %v", err)
	}
}

func TestSubItems_CopiesInput(t *testing.T) {
	src := []model.SubItem{{Label: "X"}}
	s := NewSubItems(src)
	src[0].Label = "mutated"
	if s.Items()[0].Label != "X" {
		t.Fatalf("editor aliased the caller's slice")
	}
}
