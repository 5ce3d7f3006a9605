// Package filestore keeps the application collection in a single JSON
// document on local disk.
//
// Every mutation re-reads the document under an exclusive lock, applies the
// change and commits the whole collection through a temp file, fsync and
// rename. A failed commit leaves the previous document untouched.
package filestore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/iciso/iciso-z6/internal/domain"
)

// CommitFunc durably replaces the document at path with data.
type CommitFunc func(path string, data []byte) error

// Store is a file-backed application store. Safe for concurrent use within
// one process; separate processes must not share a path.
type Store struct {
	path   string
	commit CommitFunc
	log    *slog.Logger

	mu sync.RWMutex
}

// Option configures a Store.
type Option func(*Store)

// WithCommit replaces the commit step. Used to inject write failures.
func WithCommit(fn CommitFunc) Option {
	return func(s *Store) { s.commit = fn }
}

// New opens a store at path, creating the parent directory if needed.
// The document itself is created on first append.
func New(path string, log *slog.Logger, opts ...Option) (*Store, error) {
	if path == "" {
		return nil, errors.New("filestore: path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("filestore: create data dir: %w", err)
	}
	if log == nil {
		log = slog.Default()
	}

	s := &Store{
		path:   path,
		commit: WriteAtomic,
		log:    log.With("store", "file", "path", path),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Path returns the location of the JSON document.
func (s *Store) Path() string { return s.path }

// Append adds one application to the collection.
func (s *Store) Append(ctx context.Context, app domain.Application) error {
	const op = "append application"
	if err := ctx.Err(); err != nil {
		return domain.Unavailable(op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	apps, err := s.load()
	if err != nil {
		s.log.ErrorContext(ctx, "refusing to overwrite unreadable store", slog.String("error", err.Error()))
		return domain.Unavailable(op, err)
	}
	for _, existing := range apps {
		if existing.ID == app.ID {
			return domain.WriteFailed(op, fmt.Errorf("id %s: %w", app.ID, domain.ErrAlreadyExists))
		}
	}

	if err := s.save(append(apps, app)); err != nil {
		return domain.WriteFailed(op, err)
	}
	return nil
}

// ReadAll returns every committed application in insertion order.
func (s *Store) ReadAll(ctx context.Context) ([]domain.Application, error) {
	const op = "read applications"
	if err := ctx.Err(); err != nil {
		return nil, domain.Unavailable(op, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	apps, err := s.load()
	if err != nil {
		return nil, domain.Unavailable(op, err)
	}
	return apps, nil
}

// UpdateStatus sets the status of the application with the given id and
// returns the updated record. All other fields are preserved.
func (s *Store) UpdateStatus(ctx context.Context, id string, status domain.Status) (domain.Application, error) {
	const op = "update application status"
	if err := ctx.Err(); err != nil {
		return domain.Application{}, domain.Unavailable(op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	apps, err := s.load()
	if err != nil {
		return domain.Application{}, domain.Unavailable(op, err)
	}

	idx := -1
	for i := range apps {
		if apps[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.Application{}, fmt.Errorf("%s %s: %w", op, id, domain.ErrNotFound)
	}

	apps[idx].Status = status
	if err := s.save(apps); err != nil {
		return domain.Application{}, domain.WriteFailed(op, err)
	}
	return apps[idx], nil
}

// Ping checks that the document is readable.
func (s *Store) Ping(ctx context.Context) error {
	_, err := s.ReadAll(ctx)
	return err
}

// load reads the current document. A missing or empty file is an empty
// collection. Caller must hold s.mu.
func (s *Store) load() ([]domain.Application, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []domain.Application{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []domain.Application{}, nil
	}

	var apps []domain.Application
	if err := json.Unmarshal(data, &apps); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	if apps == nil {
		apps = []domain.Application{}
	}
	return apps, nil
}

// save commits the full collection. Caller must hold s.mu exclusively.
func (s *Store) save(apps []domain.Application) error {
	data, err := json.MarshalIndent(apps, "", "  ")
	if err != nil {
		return fmt.Errorf("encode applications: %w", err)
	}
	if err := s.commit(s.path, data); err != nil {
		if errors.Is(err, ErrDirNotSynced) {
			s.log.Warn("document replaced without directory fsync", slog.String("error", err.Error()))
			return nil
		}
		return fmt.Errorf("commit %s: %w", s.path, err)
	}
	return nil
}
