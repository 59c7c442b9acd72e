// Package logfile owns the on-disk interval log: appending raw bytes,
// reading the whole log back, removing it and exporting a copy.
package logfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

var (
	// ErrNoLog is returned when the log file has never been written.
	ErrNoLog = errors.New("no time currently logged")

	// ErrExportTargetIsDir is returned when an export destination is a directory.
	ErrExportTargetIsDir = errors.New("export target is a directory")

	// ErrExportTargetExists is returned when an export destination already exists.
	ErrExportTargetExists = errors.New("export target already exists")
)

// Store is a single interval log file. It satisfies timelog.Appender.
type Store struct {
	fs   afero.Fs
	path string
}

// NewStore creates a Store for the log at path on the given filesystem.
func NewStore(fsys afero.Fs, path string) *Store {
	return &Store{fs: fsys, path: path}
}

// NewOsStore creates a Store backed by the real filesystem.
func NewOsStore(path string) *Store {
	return NewStore(afero.NewOsFs(), path)
}

// Path returns the log file location.
func (s *Store) Path() string {
	return s.path
}

// Append adds p to the end of the log, creating the file and its parent
// directory if needed.
func (s *Store) Append(p []byte) error {
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}
	f, err := s.fs.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening log for append: %w", err)
	}
	if _, err := f.Write(p); err != nil {
		f.Close()
		return fmt.Errorf("writing log: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing log: %w", err)
	}
	return nil
}

// Exists reports whether the log file is present.
func (s *Store) Exists() (bool, error) {
	ok, err := afero.Exists(s.fs, s.path)
	if err != nil {
		return false, fmt.Errorf("checking log: %w", err)
	}
	return ok, nil
}

// ReadAll returns the full log text, or ErrNoLog if nothing was ever logged.
func (s *Store) ReadAll() (string, error) {
	b, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrNoLog
		}
		return "", fmt.Errorf("reading log: %w", err)
	}
	return string(b), nil
}

// Remove deletes the log. Removing a missing log is not an error.
func (s *Store) Remove() error {
	if err := s.fs.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing log: %w", err)
	}
	return nil
}

// ExportTo copies the raw log to dest. The destination must not exist yet.
func (s *Store) ExportTo(dest string) error {
	if info, err := s.fs.Stat(dest); err == nil && info.IsDir() {
		return fmt.Errorf("%s: %w", dest, ErrExportTargetIsDir)
	}

	content, err := s.ReadAll()
	if err != nil {
		return err
	}

	f, err := s.fs.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%s: %w", dest, ErrExportTargetExists)
		}
		return fmt.Errorf("opening export target: %w", err)
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return fmt.Errorf("writing export: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing export: %w", err)
	}
	return nil
}
