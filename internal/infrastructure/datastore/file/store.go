package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/afcon-dashboard/internal/domain/dataset"
	"github.com/valyala/bytebufferpool"
)

const fileSuffix = ".json"

// snapshot is the on-disk layout of one dataset file.
type snapshot struct {
	dataset.Envelope
	Records any `json:"records"`
}

type rawSnapshot struct {
	dataset.Envelope
	Records json.RawMessage `json:"records"`
}

// Store keeps one JSON document per dataset under a directory.
type Store struct {
	dir string
	mu  sync.RWMutex
	now func() time.Time
}

func NewStore(dir string) (*Store, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, fmt.Errorf("dataset cache dir is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create dataset cache dir %s: %w", dir, err)
	}
	return &Store{dir: dir, now: time.Now}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Path returns the file a key is stored in: <name>.v<schema>.json.
func (s *Store) Path(key dataset.Key) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s.v%d%s", key.Name, key.SchemaVersion, fileSuffix))
}

func (s *Store) Load(_ context.Context, key dataset.Key, out any) (bool, error) {
	if err := key.Validate(); err != nil {
		return false, err
	}

	s.mu.RLock()
	raw, err := os.ReadFile(s.Path(key))
	s.mu.RUnlock()
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read dataset %s: %w", key, err)
	}

	var snap rawSnapshot
	if err := sonic.Unmarshal(raw, &snap); err != nil {
		return false, crerr.Mark(crerr.Wrapf(err, "decode dataset %s", key), dataset.ErrCorrupt)
	}
	if !snap.Matches(key) {
		return false, crerr.Mark(
			crerr.Newf("dataset %s: stored as %s@s%d.g%d", key, snap.Dataset, snap.SchemaVersion, snap.SeedVersion),
			dataset.ErrSchemaMismatch,
		)
	}
	if len(snap.Records) == 0 {
		return false, crerr.Mark(crerr.Newf("dataset %s: records missing", key), dataset.ErrCorrupt)
	}
	if err := sonic.Unmarshal(snap.Records, out); err != nil {
		return false, crerr.Mark(crerr.Wrapf(err, "decode records of dataset %s", key), dataset.ErrCorrupt)
	}

	return true, nil
}

// Save writes the snapshot to a temporary file and renames it in place, so readers never see
// a partial document.
func (s *Store) Save(_ context.Context, key dataset.Key, records any, rows int) error {
	if err := key.Validate(); err != nil {
		return err
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	snap := snapshot{
		Envelope: dataset.Envelope{
			Dataset:       key.Name,
			SchemaVersion: key.SchemaVersion,
			SeedVersion:   key.SeedVersion,
			GeneratedAt:   s.now().UTC(),
			Rows:          rows,
		},
		Records: records,
	}
	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(snap); err != nil {
		return fmt.Errorf("encode dataset %s: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, key.Name+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file for dataset %s: %w", key, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(buf.B); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write dataset %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close dataset %s: %w", key, err)
	}
	if err := os.Rename(tmpName, s.Path(key)); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace dataset %s: %w", key, err)
	}

	return nil
}

// Delete removes the file of key. Only the name and schema version are needed, so snapshots
// listed with an unreadable envelope can still be removed.
func (s *Store) Delete(_ context.Context, key dataset.Key) error {
	if err := key.ValidateName(); err != nil {
		return err
	}
	if key.SchemaVersion <= 0 {
		return fmt.Errorf("dataset schema version must be > 0")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.Path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete dataset %s: %w", key, err)
	}
	return nil
}

// List reads the envelope of every dataset file in the directory. Files that cannot be decoded
// are reported with their name only.
func (s *Store) List(_ context.Context) ([]dataset.Info, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list dataset dir %s: %w", s.dir, err)
	}

	out := make([]dataset.Info, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), fileSuffix) {
			continue
		}
		path := filepath.Join(s.dir, entry.Name())
		stat, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("stat dataset file %s: %w", path, err)
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read dataset file %s: %w", path, err)
		}

		info := dataset.Info{
			Key:       keyFromFileName(entry.Name()),
			SizeBytes: stat.Size(),
		}
		var env dataset.Envelope
		if err := sonic.Unmarshal(raw, &env); err == nil && env.Dataset != "" {
			info.Key = dataset.Key{Name: env.Dataset, SchemaVersion: env.SchemaVersion, SeedVersion: env.SeedVersion}
			info.Rows = env.Rows
			info.GeneratedAt = env.GeneratedAt
		}
		out = append(out, info)
	}

	return out, nil
}

// keyFromFileName recovers name and schema version from "<name>.v<schema>.json".
func keyFromFileName(fileName string) dataset.Key {
	base := strings.TrimSuffix(fileName, fileSuffix)
	idx := strings.LastIndex(base, ".v")
	if idx <= 0 {
		return dataset.Key{Name: base}
	}
	version, err := strconv.Atoi(base[idx+2:])
	if err != nil {
		return dataset.Key{Name: base}
	}
	return dataset.Key{Name: base[:idx], SchemaVersion: version}
}
