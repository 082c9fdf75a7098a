package model

import (
	"encoding/json"
	"time"
)

// Option is one top-level editable section of a profile ("about", "projects", ...).
// Order within Document.Options is the canonical display and storage order.
type Option struct {
	Label string    `json:"label"`
	About string    `json:"about"`
	Value string    `json:"value"`
	Data  []SubItem `json:"data,omitempty"`

	// Editing is transient UI state. It is carried on the wire for
	// compatibility with existing documents but always persisted as false.
	Editing bool `json:"editing"`
}

// SubItem is one nested detail row of an Option. Identity is positional:
// there is no id, so mutations address sub-items by index.
type SubItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
	URL   string `json:"url,omitempty"`
}

// Document is the full persisted state for one username (or the default
// template). Top-level fields other than "options" are not modeled here;
// they round-trip opaquely through Extra so a save never drops them.
type Document struct {
	Options []Option

	Extra map[string]json.RawMessage
}

func (d *Document) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	d.Options = []Option{}
	if v, ok := raw["options"]; ok {
		if err := json.Unmarshal(v, &d.Options); err != nil {
			return err
		}
		delete(raw, "options")
	}
	d.Extra = raw
	return nil
}

func (d Document) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(d.Extra)+1)
	for k, v := range d.Extra {
		out[k] = v
	}
	opts := d.Options
	if opts == nil {
		opts = []Option{}
	}
	b, err := json.Marshal(opts)
	if err != nil {
		return nil, err
	}
	out["options"] = b
	return json.Marshal(out)
}

// Clone returns a deep copy. Editors snapshot documents before optimistic
// mutations so a failed persist can restore the prior state.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	out := &Document{Options: CloneOptions(d.Options)}
	if d.Extra != nil {
		out.Extra = make(map[string]json.RawMessage, len(d.Extra))
		for k, v := range d.Extra {
			out.Extra[k] = append(json.RawMessage(nil), v...)
		}
	}
	return out
}

func CloneOptions(opts []Option) []Option {
	out := make([]Option, len(opts))
	copy(out, opts)
	for i := range out {
		out[i].Data = append([]SubItem(nil), out[i].Data...)
	}
	return out
}

// Event is one recorded edit-history entry.
type Event struct {
	ID      string    `json:"id"`
	TS      time.Time `json:"ts"`
	Profile string    `json:"profile"`
	Type    string    `json:"type"`
	Payload any       `json:"payload"`
}
