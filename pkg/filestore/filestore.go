// Package filestore persists a whole record set as one JSON document.
//
// Every Save rewrites the file through a pending temp file in the same
// directory which is fsynced and then renamed over the canonical path, so a
// crash mid-write leaves either the old or the new document, never a torn one.
// The directory is fsynced after the rename so a returned Save survives power loss.
package filestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/renameio/v2"
)

var (
	// ErrColdStart is returned by Load together with an empty result when the
	// backing file does not exist yet. Callers treat it as recoverable.
	ErrColdStart = errors.New("store file not found, starting empty")

	// ErrCorruptStore matches any *CorruptStoreError.
	ErrCorruptStore = errors.New("store file is corrupt")
)

// CorruptStoreError reports a backing file that exists but cannot be used.
type CorruptStoreError struct {
	Path string
	Err  error
}

func (e *CorruptStoreError) Error() string {
	return fmt.Sprintf("corrupt store file %s: %v", e.Path, e.Err)
}

func (e *CorruptStoreError) Unwrap() error { return e.Err }

func (e *CorruptStoreError) Is(target error) bool { return target == ErrCorruptStore }

// Store owns the backing file for a record set of T.
type Store[T any] struct {
	path     string
	perm     os.FileMode
	validate func([]T) error

	// mu serializes file access between concurrent Save calls.
	mu sync.Mutex

	// syncDir makes the rename itself durable.
	syncDir func(dir string) error

	// beforeReplace runs after the pending file is fully written and before
	// the rename. Tests use it to simulate a crash at the last step.
	beforeReplace func() error
}

type Option[T any] func(*Store[T])

// WithValidator runs fn over every loaded record set; a non-nil error
// turns into a *CorruptStoreError.
func WithValidator[T any](fn func([]T) error) Option[T] {
	return func(s *Store[T]) {
		s.validate = fn
	}
}

func WithPermissions[T any](perm os.FileMode) Option[T] {
	return func(s *Store[T]) {
		s.perm = perm
	}
}

func New[T any](path string, opts ...Option[T]) *Store[T] {
	s := &Store[T]{
		path:    path,
		perm:    0o644,
		syncDir: syncDirectory,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store[T]) Path() string {
	return s.path
}

// Load reads the whole backing file.
func (s *Store[T]) Load() ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []T{}, ErrColdStart
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, &CorruptStoreError{Path: s.path, Err: err}
	}
	// "null" decodes cleanly into a nil slice; only an array is a record set
	if items == nil {
		return nil, &CorruptStoreError{Path: s.path, Err: errors.New("document is not a JSON array")}
	}

	if s.validate != nil {
		if err := s.validate(items); err != nil {
			return nil, &CorruptStoreError{Path: s.path, Err: err}
		}
	}

	return items, nil
}

// Save replaces the backing file with items. It returns only after the new
// content is durable and visible at the canonical path.
func (s *Store[T]) Save(items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode records: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	pending, err := renameio.NewPendingFile(s.path,
		renameio.WithTempDir(filepath.Dir(s.path)),
		renameio.WithPermissions(s.perm),
	)
	if err != nil {
		return fmt.Errorf("create pending file for %s: %w", s.path, err)
	}
	// no-op once CloseAtomicallyReplace has succeeded
	defer pending.Cleanup()

	if _, err := pending.Write(data); err != nil {
		return fmt.Errorf("write pending file for %s: %w", s.path, err)
	}

	if s.beforeReplace != nil {
		if err := s.beforeReplace(); err != nil {
			return err
		}
	}

	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	// CloseAtomicallyReplace fsyncs the file but not the directory entry
	if err := s.syncDir(filepath.Dir(s.path)); err != nil {
		return fmt.Errorf("sync directory of %s: %w", s.path, err)
	}
	return nil
}

func syncDirectory(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return err
	}
	if err := d.Sync(); err != nil {
		d.Close()
		return err
	}
	return d.Close()
}
