package historystore

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aalvaropc/toolbelt/internal/domain"
	"github.com/aalvaropc/toolbelt/internal/ports"
)

const (
	defaultHistoryDir = "history"
	indexFile         = "index.jsonl"
)

type JSONStore struct {
	rootDir    string
	dirName    string
	writeIndex bool
	now        func() time.Time
	newID      func() string
}

type Option func(*JSONStore)

// WithIndex enables a simple JSONL index: history/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

// WithIDGenerator overrides record ID generation (useful for tests).
func WithIDGenerator(gen func() string) Option {
	return func(s *JSONStore) { s.newID = gen }
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	dir := cfg.History.Dir
	if strings.TrimSpace(dir) == "" {
		dir = defaultHistoryDir
	}

	s := &JSONStore{
		rootDir:    root,
		dirName:    dir,
		writeIndex: true,
		now:        time.Now,
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.HistoryStore = (*JSONStore)(nil)

func (s *JSONStore) dir() string {
	return filepath.Join(s.rootDir, s.dirName)
}

func (s *JSONStore) Save(rec domain.CalculationRecord) (string, error) {
	dir := s.dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "historystore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	toSave := rec
	if strings.TrimSpace(toSave.ID) == "" {
		toSave.ID = s.newID()
	}
	if toSave.CreatedAt.IsZero() {
		toSave.CreatedAt = s.now()
	}
	toSave.CreatedAt = toSave.CreatedAt.UTC()

	kind := string(toSave.Kind)
	if kind == "" {
		kind = "calc"
	}

	filename := fmt.Sprintf("%s_%s_%s.json", toSave.CreatedAt.Format("20060102T150405Z"), kind, toSave.ID)
	path := filepath.Join(dir, filename)

	b, err := json.MarshalIndent(toSave, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "historystore.marshal",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return "", &domain.OpError{
			Op:   "historystore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "historystore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		_ = s.appendIndex(dir, domain.RecordRef{
			ID:        toSave.ID,
			File:      filename,
			Kind:      toSave.Kind,
			Input:     toSave.Input,
			CreatedAt: toSave.CreatedAt,
		})
	}

	return toSave.ID, nil
}

func (s *JSONStore) appendIndex(dir string, ref domain.RecordRef) error {
	line, err := json.Marshal(ref)
	if err != nil {
		return err
	}

	indexPath := filepath.Join(dir, indexFile)
	f, err := os.OpenFile(indexPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}

// List returns index entries newest first. A missing index is an empty history.
// Malformed lines are skipped. limit <= 0 returns everything.
func (s *JSONStore) List(limit int) ([]domain.RecordRef, error) {
	indexPath := filepath.Join(s.dir(), indexFile)
	f, err := os.Open(indexPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []domain.RecordRef{}, nil
		}
		return nil, &domain.OpError{
			Op:   "historystore.list",
			Kind: domain.KindExecution,
			Path: indexPath,
			Err:  err,
		}
	}
	defer f.Close()

	refs := make([]domain.RecordRef, 0)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var ref domain.RecordRef
		if err := json.Unmarshal([]byte(line), &ref); err != nil {
			continue
		}
		refs = append(refs, ref)
	}
	if err := sc.Err(); err != nil {
		return nil, &domain.OpError{
			Op:   "historystore.list",
			Kind: domain.KindExecution,
			Path: indexPath,
			Err:  err,
		}
	}

	sort.SliceStable(refs, func(i, j int) bool { return refs[i].CreatedAt.After(refs[j].CreatedAt) })
	if limit > 0 && len(refs) > limit {
		refs = refs[:limit]
	}
	return refs, nil
}

// Load reads a record by ID or by an unambiguous ID prefix. It also returns the
// raw JSON so callers can run queries against it.
func (s *JSONStore) Load(id string) (domain.CalculationRecord, []byte, error) {
	id = strings.TrimSpace(id)
	if id == "" || strings.ContainsAny(id, `/\*?[`) {
		return domain.CalculationRecord{}, nil, &domain.OpError{
			Op:   "historystore.load",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("invalid record id %q", id),
		}
	}

	matches, err := filepath.Glob(filepath.Join(s.dir(), "*_*_"+id+"*.json"))
	if err != nil {
		return domain.CalculationRecord{}, nil, &domain.OpError{
			Op:   "historystore.load",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}
	switch len(matches) {
	case 0:
		return domain.CalculationRecord{}, nil, &domain.OpError{
			Op:   "historystore.load",
			Kind: domain.KindNotFound,
			Path: s.dir(),
			Err:  fmt.Errorf("record %q: %w", id, domain.ErrNotFound),
		}
	case 1:
	default:
		return domain.CalculationRecord{}, nil, &domain.OpError{
			Op:   "historystore.load",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("record id %q is ambiguous (%d matches)", id, len(matches)),
		}
	}

	path := matches[0]
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.CalculationRecord{}, nil, &domain.OpError{
			Op:   "historystore.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var rec domain.CalculationRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return domain.CalculationRecord{}, nil, &domain.OpError{
			Op:   "historystore.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return rec, b, nil
}
