package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Store reads and writes the study log, a JSON array of records kept in a
// single file.
type Store struct {
	path string
	log  *zap.Logger
}

func New(path string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{path: path, log: logger}
}

func (s *Store) Path() string {
	return s.path
}

// Load returns the whole study log. A missing, unreadable or malformed file
// yields an empty log; the failure is logged, never returned.
func (s *Store) Load() []Record {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.Warn("read study log", zap.String("path", s.path), zap.Error(err))
		}
		return []Record{}
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		s.log.Warn("decode study log", zap.String("path", s.path), zap.Error(err))
		return []Record{}
	}
	if records == nil {
		records = []Record{}
	}
	return records
}

// Check reads the log strictly: unlike Load, any read or decode failure is
// returned, and records whose timestamp cannot be parsed are reported by
// position. A missing file is not an error.
func (s *Store) Check() (int, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read study log: %w", err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return 0, fmt.Errorf("decode study log: %w", err)
	}
	var bad []error
	for i, r := range records {
		if _, err := r.Time(); err != nil {
			bad = append(bad, fmt.Errorf("record %d: %w", i, err))
		}
	}
	return len(records), errors.Join(bad...)
}

// Save replaces the file content with records.
func (s *Store) Save(records []Record) error {
	if records == nil {
		records = []Record{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode study log: %w", err)
	}
	if err := writeFile(s.path, data); err != nil {
		return fmt.Errorf("save study log: %w", err)
	}
	s.log.Debug("saved study log", zap.String("path", s.path), zap.Int("records", len(records)))
	return nil
}

// Append adds r to the end of the log on disk and returns the new log.
func (s *Store) Append(r Record) ([]Record, error) {
	records := append(s.Load(), r)
	if err := s.Save(records); err != nil {
		return nil, err
	}
	return records, nil
}

// writeFile writes through a temp file in the target directory and renames it
// into place.
func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".stt-tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return err
	}
	success = true
	return nil
}
