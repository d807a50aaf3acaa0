// Package store persists the issue collection as a flat JSON file under
// the tracker directory. The whole collection is read and rewritten on
// every command; if two processes race, the last writer wins at file
// granularity.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/evict-bt/evict/internal/codec"
	"github.com/evict-bt/evict/internal/types"
)

const (
	// DirName is the tracker directory created at the working-copy root.
	DirName = ".evict"

	// FileName is the collection file inside DirName.
	FileName = "issues.json"
)

// ErrNotInitialized reports a missing tracker directory.
var ErrNotInitialized = errors.New("no .evict directory here (run 'evict init')")

// Store reads and writes a single issue collection file.
type Store struct {
	dir string
}

// New returns a store rooted at the given tracker directory.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Default returns a store over ./.evict.
func Default() *Store {
	return New(DirName)
}

// Dir returns the tracker directory the store is rooted at.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path() string {
	return filepath.Join(s.dir, FileName)
}

// Exists reports whether the tracker directory has been initialized.
func (s *Store) Exists() bool {
	info, err := os.Stat(s.dir)
	return err == nil && info.IsDir()
}

// Init creates the tracker directory and an empty collection file. It is
// safe to call on an already-initialized tracker.
func (s *Store) Init() error {
	if err := os.MkdirAll(s.dir, 0750); err != nil {
		return fmt.Errorf("creating %s: %w", s.dir, err)
	}
	if _, err := os.Stat(s.path()); err == nil {
		return nil
	}
	return s.WriteAll(nil)
}

// ReadAll returns the raw issue trees from the collection file. A missing
// file inside an initialized tracker is an empty collection.
func (s *Store) ReadAll() ([]map[string]any, error) {
	if !s.Exists() {
		return nil, ErrNotInitialized
	}
	data, err := os.ReadFile(s.path())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path(), err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	var trees []map[string]any
	if err := json.Unmarshal(data, &trees); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.path(), err)
	}
	return trees, nil
}

// WriteAll replaces the collection file with the given raw trees. The
// write goes through a temp file and rename so a crash cannot leave a
// truncated collection behind.
func (s *Store) WriteAll(trees []map[string]any) error {
	if !s.Exists() {
		return ErrNotInitialized
	}
	if trees == nil {
		trees = []map[string]any{}
	}
	data, err := json.MarshalIndent(trees, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling issues: %w", err)
	}
	tmp, err := os.CreateTemp(s.dir, FileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing issues: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path()); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", s.path(), err)
	}
	return nil
}

// LoadIssues decodes the whole collection. Trees that fail to decode are
// skipped rather than failing the load; each decoded issue comes back
// with a time-sorted timeline.
func (s *Store) LoadIssues() ([]*types.Issue, error) {
	trees, err := s.ReadAll()
	if err != nil {
		return nil, err
	}
	issues := make([]*types.Issue, 0, len(trees))
	for _, tree := range trees {
		issue, err := codec.DecodeIssue(tree)
		if err != nil {
			continue
		}
		issues = append(issues, issue)
	}
	return issues, nil
}

// SaveIssues encodes and persists the whole collection.
func (s *Store) SaveIssues(issues []*types.Issue) error {
	trees := make([]map[string]any, 0, len(issues))
	for _, issue := range issues {
		trees = append(trees, codec.EncodeIssue(issue))
	}
	return s.WriteAll(trees)
}
