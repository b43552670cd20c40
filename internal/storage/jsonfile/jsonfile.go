// Package jsonfile is the record store backed by a local JSON file.
//
// The file uses the json-server layout, {"customers": [...]}, and a bare
// array is accepted too. The file is read on every search unless Watch is
// running, in which case parsed records are kept until the file changes.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/aanand-mishra/customer-search/internal/storage"
	"github.com/aanand-mishra/customer-search/internal/types"
)

// Store reads customers from a json-server style records file.
type Store struct {
	path string
	log  *slog.Logger

	mu       sync.RWMutex
	caching  bool
	cached   []types.Customer
	hasCache bool
	gen      uint64
}

var _ storage.Storage = (*Store)(nil)

// New returns a store reading path. A nil logger uses slog.Default.
func New(path string, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{path: path, log: log}
}

// SearchCustomers reads the records and applies f.
func (s *Store) SearchCustomers(ctx context.Context, f storage.Filter) ([]types.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	customers, err := s.customers()
	if err != nil {
		return nil, err
	}

	return f.Apply(customers), nil
}

func (s *Store) customers() ([]types.Customer, error) {
	s.mu.RLock()
	if s.hasCache {
		cached := s.cached
		s.mu.RUnlock()
		return cached, nil
	}
	caching, gen := s.caching, s.gen
	s.mu.RUnlock()

	customers, err := ReadFile(s.path)
	if err != nil {
		return nil, err
	}

	if caching {
		s.mu.Lock()
		// A change seen while reading makes this copy stale.
		if s.caching && s.gen == gen {
			s.cached = customers
			s.hasCache = true
		}
		s.mu.Unlock()
	}

	return customers, nil
}

func (s *Store) invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.hasCache = false
	s.gen++
	s.mu.Unlock()
}

// Watch enables caching and drops the cache whenever the records file is
// written, replaced or removed. It returns once the watch is established;
// watching stops when ctx is cancelled.
func (s *Store) Watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("jsonfile: create watcher: %w", err)
	}

	// Editors often replace the file, so watch its directory.
	dir := filepath.Dir(s.path)
	if err := w.Add(dir); err != nil {
		w.Close()
		return fmt.Errorf("jsonfile: watch %s: %w", dir, err)
	}

	s.mu.Lock()
	s.caching = true
	s.mu.Unlock()

	target := filepath.Clean(s.path)

	go func() {
		defer func() {
			w.Close()
			s.mu.Lock()
			s.caching = false
			s.mu.Unlock()
			s.invalidate()
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
					s.log.Debug("records file changed", slog.String("path", s.path), slog.String("op", ev.Op.String()))
					s.invalidate()
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				s.log.Warn("records watcher error", slog.String("error", err.Error()))
				s.invalidate()
			}
		}
	}()

	s.log.Info("watching records file", slog.String("path", s.path))
	return nil
}

type document struct {
	Customers []types.Customer `json:"customers"`
}

// ReadFile parses a records file.
func ReadFile(path string) ([]types.Customer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("jsonfile: read %s: %w: %w", path, storage.ErrUnavailable, err)
	}

	customers, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("jsonfile: parse %s: %w", path, err)
	}
	return customers, nil
}

// Parse decodes either layout of the records document.
func Parse(data []byte) ([]types.Customer, error) {
	trimmed := bytes.TrimSpace(data)

	var customers []types.Customer
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &customers); err != nil {
			return nil, fmt.Errorf("%w: %w", storage.ErrUnavailable, err)
		}
	} else {
		var doc document
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, fmt.Errorf("%w: %w", storage.ErrUnavailable, err)
		}
		customers = doc.Customers
	}

	if customers == nil {
		customers = []types.Customer{}
	}
	return customers, nil
}
