package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/oliCHECK24/terminal-portfolio/internal/model"
)

const (
	defaultFileName = "default.json"
	profilesDirName = "profiles"
)

// Store is a filesystem-backed profile document store rooted at Dir.
//
// Layout:
//
//	<Dir>/default.json           template + anonymous document
//	<Dir>/profiles/<name>.json   one document per username
//	<Dir>/history.sqlite         append-only edit history
//
// Documents are written whole (atomic temp-file + rename); there are no
// partial or diff writes. In-process operations on the same document are
// serialized through a per-path lock table so concurrent load/save ordering
// is deterministic. Across processes the policy stays last-write-wins.
type Store struct {
	Dir string
}

func DefaultDir() (string, error) {
	if v := strings.TrimSpace(os.Getenv("PORTFOLIO_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".portfolio"), nil
}

func (s Store) Ensure() error {
	return os.MkdirAll(filepath.Join(s.Dir, profilesDirName), 0o755)
}

func (s Store) defaultPath() string {
	return filepath.Join(s.Dir, defaultFileName)
}

func (s Store) profilePath(username string) string {
	return filepath.Join(s.Dir, profilesDirName, username+".json")
}

// NormalizeUsername validates a username as a safe single-segment file name.
func NormalizeUsername(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.New("username is empty")
	}
	if strings.ContainsAny(name, "/\\") || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("invalid username: %q", name)
	}
	return name, nil
}

// Per-path lock table shared by all Store values in the process.
var (
	locksMu sync.Mutex
	locks   = map[string]*sync.Mutex{}
)

func pathLock(path string) *sync.Mutex {
	path = filepath.Clean(path)
	locksMu.Lock()
	defer locksMu.Unlock()
	mu, ok := locks[path]
	if !ok {
		mu = &sync.Mutex{}
		locks[path] = mu
	}
	return mu
}

// Load returns the document for username, or the default document when
// username is empty.
//
// A missing or unparseable per-user document falls back to the default
// document with Options cleared. The fallback must not leak the template's
// sections under an unrelated username; it exists so every username resolves
// to a renderable document before any content is saved. Read failures are
// therefore never surfaced as errors.
func (s Store) Load(username string) (*model.Document, error) {
	if strings.TrimSpace(username) == "" {
		mu := pathLock(s.defaultPath())
		mu.Lock()
		defer mu.Unlock()
		return s.readDefault(), nil
	}
	username, err := NormalizeUsername(username)
	if err != nil {
		return nil, err
	}
	mu := pathLock(s.profilePath(username))
	mu.Lock()
	defer mu.Unlock()
	return s.readProfile(username), nil
}

// Exists reports whether username has its own document (the default document
// always exists by way of the embedded seed).
func (s Store) Exists(username string) bool {
	username, err := NormalizeUsername(username)
	if err != nil {
		return false
	}
	_, statErr := os.Stat(s.profilePath(username))
	return statErr == nil
}

func (s Store) readDefault() *model.Document {
	b, err := os.ReadFile(s.defaultPath())
	if err != nil {
		return seedDocument()
	}
	var doc model.Document
	if err := json.Unmarshal(b, &doc); err != nil {
		// A corrupt template would otherwise poison every fallback load.
		return seedDocument()
	}
	return &doc
}

func (s Store) readProfile(username string) *model.Document {
	b, err := os.ReadFile(s.profilePath(username))
	if err != nil {
		doc := s.readDefault()
		doc.Options = []model.Option{}
		return doc
	}
	var doc model.Document
	if err := json.Unmarshal(b, &doc); err != nil {
		doc := s.readDefault()
		doc.Options = []model.Option{}
		return doc
	}
	return &doc
}

// Save replaces the options of username's document with the supplied sequence
// and writes the merged document back in full. An empty username targets the
// default document. Documents are created implicitly on first save, seeded
// from the template (with its own options replaced, never merged).
func (s Store) Save(options []model.Option, username string) error {
	path := s.defaultPath()
	if strings.TrimSpace(username) != "" {
		var err error
		username, err = NormalizeUsername(username)
		if err != nil {
			return err
		}
		path = s.profilePath(username)
	}

	mu := pathLock(path)
	mu.Lock()
	defer mu.Unlock()

	var doc *model.Document
	if path == s.defaultPath() {
		doc = s.readDefault()
	} else {
		// Merge over the existing document; fall back to the template so the
		// first save materializes {template..., options: new}.
		b, err := os.ReadFile(path)
		if err == nil {
			var existing model.Document
			if jsonErr := json.Unmarshal(b, &existing); jsonErr == nil {
				doc = &existing
			}
		}
		if doc == nil {
			doc = s.readDefault()
		}
	}

	doc.Options = normalizeOptions(options)
	return s.writeDocLocked(path, doc)
}

func (s Store) writeDocLocked(path string, doc *model.Document) error {
	if err := s.Ensure(); err != nil {
		return &PersistError{Path: path, Err: err}
	}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &PersistError{Path: path, Err: err}
	}
	if err := atomicWriteFile(filepath.Dir(path), filepath.Base(path)+".*.tmp", path, append(b, '\n'), 0o644); err != nil {
		return &PersistError{Path: path, Err: err}
	}
	return nil
}

// normalizeOptions clears transient edit state and drops empty data slices so
// persisted documents stay canonical.
func normalizeOptions(options []model.Option) []model.Option {
	out := model.CloneOptions(options)
	for i := range out {
		out[i].Editing = false
		if len(out[i].Data) == 0 {
			out[i].Data = nil
		}
	}
	return out
}

// Rename moves oldName's document to newName without touching its content.
// It fails before any filesystem mutation when the source is missing or the
// destination already exists.
func (s Store) Rename(oldName, newName string) error {
	oldName, err := NormalizeUsername(oldName)
	if err != nil {
		return err
	}
	newName, err = NormalizeUsername(newName)
	if err != nil {
		return err
	}
	if oldName == newName {
		return nil
	}

	oldPath := s.profilePath(oldName)
	newPath := s.profilePath(newName)

	// Lock both documents in a stable order to keep concurrent renames
	// deadlock-free.
	paths := []string{oldPath, newPath}
	sort.Strings(paths)
	first, second := pathLock(paths[0]), pathLock(paths[1])
	first.Lock()
	defer first.Unlock()
	second.Lock()
	defer second.Unlock()

	if _, err := os.Stat(oldPath); err != nil {
		return &NotFoundError{Username: oldName}
	}
	if _, err := os.Stat(newPath); err == nil {
		return &ConflictError{Username: newName}
	}
	if err := os.Rename(oldPath, newPath); err != nil {
		return &PersistError{Path: newPath, Err: err}
	}
	return nil
}

// ListProfiles returns the usernames that have their own document, sorted.
func (s Store) ListProfiles() ([]string, error) {
	ents, err := os.ReadDir(filepath.Join(s.Dir, profilesDirName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, err
	}
	out := make([]string, 0, len(ents))
	for _, e := range ents {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		out = append(out, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(out)
	return out, nil
}
