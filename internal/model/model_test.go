package model

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestDocument_RoundTripKeepsUnknownFields(t *testing.T) {
	in := `{
  "name": "visitor",
  "theme": "ubuntu",
  "options": [
    {"label": "projects", "about": "ls", "value": "v", "editing": false,
     "data": [{"label": "repo", "value": "d", "url": "https://example.com"}]}
  ]
}`
	var doc Document
	if err := json.Unmarshal([]byte(in), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(doc.Options) != 1 || doc.Options[0].Label != "projects" {
		t.Fatalf("options: %+v", doc.Options)
	}
	if doc.Options[0].Data[0].URL != "https://example.com" {
		t.Fatalf("data: %+v", doc.Options[0].Data)
	}
	if string(doc.Extra["theme"]) != `"ubuntu"` {
		t.Fatalf("extra: %v", doc.Extra)
	}

	out, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back map[string]json.RawMessage
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatalf("re-unmarshal: %v", err)
	}
	for _, k := range []string{"name", "theme", "options"} {
		if _, ok := back[k]; !ok {
			t.Fatalf("field %q dropped: %s", k, out)
		}
	}
}

func TestDocument_MarshalEmitsOptionsWhenNil(t *testing.T) {
	out, err := json.Marshal(Document{})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back map[string]json.RawMessage
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if string(back["options"]) != "[]" {
		t.Fatalf("got %s", out)
	}
}

func TestCloneOptions_IsDeep(t *testing.T) {
	src := []Option{{Label: "a", Data: []SubItem{{Label: "s"}}}}
	dst := CloneOptions(src)
	dst[0].Data[0].Label = "changed"
	if src[0].Data[0].Label != "s" {
		t.Fatalf("clone shares sub-item storage")
	}
	if !reflect.DeepEqual(src, []Option{{Label: "a", Data: []SubItem{{Label: "s"}}}}) {
		t.Fatalf("source mutated: %+v", src)
	}
}

func TestDocument_Clone(t *testing.T) {
	d := &Document{
		Options: []Option{{Label: "a"}},
		Extra:   map[string]json.RawMessage{"name": json.RawMessage(`"x"`)},
	}
	c := d.Clone()
	c.Options[0].Label = "b"
	c.Extra["name"] = json.RawMessage(`"y"`)
	if d.Options[0].Label != "a" || string(d.Extra["name"]) != `"x"` {
		t.Fatalf("clone aliased the original: %+v", d)
	}
}
