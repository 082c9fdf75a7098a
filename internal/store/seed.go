package store

import (
	_ "embed"
	"encoding/json"

	"github.com/oliCHECK24/terminal-portfolio/internal/model"
)

// The built-in template keeps a fresh data dir immediately renderable.
// It is only read: the default.json file is materialized by the first
// anonymous save, never by loads.
//
//go:embed seed.json
var seedJSON []byte

func seedDocument() *model.Document {
	var doc model.Document
	if err := json.Unmarshal(seedJSON, &doc); err != nil {
		// The seed is compiled in; failing to parse it is a build defect.
		panic("store: invalid embedded seed document: " + err.Error())
	}
	return &doc
}
