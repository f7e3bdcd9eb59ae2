package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/afcon-dashboard/internal/domain/dataset"
)

type entry struct {
	info dataset.Info
	raw  []byte
}

// Store keeps encoded snapshots in process memory. Records are stored as JSON so callers
// never share slices with the store.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
}

func NewStore() *Store {
	return &Store{entries: make(map[string]entry)}
}

func (s *Store) Load(_ context.Context, key dataset.Key, out any) (bool, error) {
	if err := key.Validate(); err != nil {
		return false, err
	}

	s.mu.RLock()
	e, ok := s.entries[key.Name]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if e.info.Key != key {
		return false, crerr.Mark(crerr.Newf("dataset %s: stored as %s", key, e.info.Key), dataset.ErrSchemaMismatch)
	}
	if err := sonic.Unmarshal(e.raw, out); err != nil {
		return false, crerr.Mark(crerr.Wrapf(err, "decode dataset %s", key), dataset.ErrCorrupt)
	}
	return true, nil
}

func (s *Store) Save(_ context.Context, key dataset.Key, records any, rows int) error {
	if err := key.Validate(); err != nil {
		return err
	}
	raw, err := sonic.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode dataset %s: %w", key, err)
	}

	s.mu.Lock()
	s.entries[key.Name] = entry{
		info: dataset.Info{
			Key:         key,
			Rows:        rows,
			GeneratedAt: time.Now().UTC(),
			SizeBytes:   int64(len(raw)),
		},
		raw: raw,
	}
	s.mu.Unlock()
	return nil
}

func (s *Store) Delete(_ context.Context, key dataset.Key) error {
	s.mu.Lock()
	delete(s.entries, key.Name)
	s.mu.Unlock()
	return nil
}

func (s *Store) List(_ context.Context) ([]dataset.Info, error) {
	s.mu.RLock()
	out := make([]dataset.Info, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e.info)
	}
	s.mu.RUnlock()

	slices.SortFunc(out, func(a, b dataset.Info) int { return strings.Compare(a.Key.Name, b.Key.Name) })
	return out, nil
}
