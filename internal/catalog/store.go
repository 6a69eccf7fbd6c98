// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"

	"shnippet/internal/logger"

	"gopkg.in/yaml.v3"
)

const (
	indexFileName = "index.yaml"
	scriptsDir    = "scripts"
	scriptExt     = ".sh"
)

var (
	ErrNotFound    = errors.New("shnippet not found")
	ErrExists      = errors.New("shnippet already exists")
	ErrInvalidName = errors.New("invalid shnippet name")
)

// reservedNames can never be used as shnippet names. They are either built-in
// commands of the primary binary or entry points used by shell completion.
var reservedNames = []string{
	"list", "new", "delete", "edit", "exec",
	"help", "completion", "__complete", "__completeNoDesc",
}

var namePattern = regexp.MustCompile(`^[A-Za-z0-9_][A-Za-z0-9_.-]*$`)

// index is the on-disk layout of index.yaml.
type index struct {
	Snippets []Entry `yaml:"snippets"`
}

// Store persists shnippets below a single directory:
//
//	<dir>/index.yaml          ordered names and descriptions
//	<dir>/scripts/<name>.sh   script content
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the root directory of the store.
func (s *Store) Dir() string { return s.dir }

// IsReserved reports whether name is claimed by a built-in command.
func IsReserved(name string) bool {
	return slices.Contains(reservedNames, name)
}

// ValidateName checks that name can be used as a command-line token and a
// file name. It does not check for duplicates.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidName)
	}
	if IsReserved(name) {
		return fmt.Errorf("%w: '%s' is a reserved command name", ErrInvalidName, name)
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("%w: '%s' may only contain letters, digits, '_', '.' and '-' and must not start with '.' or '-'", ErrInvalidName, name)
	}
	return nil
}

func (s *Store) indexPath() string {
	return filepath.Join(s.dir, indexFileName)
}

// ScriptPath returns the path of the script file for an existing shnippet.
func (s *Store) ScriptPath(name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	path := filepath.Join(s.dir, scriptsDir, name+scriptExt)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return "", fmt.Errorf("failed to stat script %s: %w", path, err)
	}
	return path, nil
}

func (s *Store) readIndex() (index, error) {
	data, err := os.ReadFile(s.indexPath())
	if err != nil {
		if os.IsNotExist(err) {
			return index{}, nil
		}
		return index{}, fmt.Errorf("failed to read index %s: %w", s.indexPath(), err)
	}
	var idx index
	if err := yaml.Unmarshal(data, &idx); err != nil {
		return index{}, fmt.Errorf("failed to parse index %s: %w", s.indexPath(), err)
	}
	return idx, nil
}

// writeIndex replaces index.yaml atomically. Callers must hold the lock.
func (s *Store) writeIndex(idx index) error {
	data, err := yaml.Marshal(idx)
	if err != nil {
		return fmt.Errorf("failed to marshal index: %w", err)
	}
	tmp, err := os.CreateTemp(s.dir, indexFileName+".*")
	if err != nil {
		return fmt.Errorf("failed to create temporary index: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temporary index: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temporary index: %w", err)
	}
	if err := os.Rename(tmpName, s.indexPath()); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace index %s: %w", s.indexPath(), err)
	}
	return nil
}

// Load reads a fresh catalog snapshot. A missing store yields an empty
// catalog. Entries with invalid, reserved or duplicate names are skipped.
func (s *Store) Load() (Catalog, error) {
	idx, err := s.readIndex()
	if err != nil {
		return Catalog{}, err
	}

	seen := make(map[string]bool, len(idx.Snippets))
	entries := make([]Entry, 0, len(idx.Snippets))
	for _, e := range idx.Snippets {
		if err := ValidateName(e.Name); err != nil {
			logger.Warn("Skipping index entry", "name", e.Name, "error", err)
			continue
		}
		if seen[e.Name] {
			logger.Warn("Skipping duplicate index entry", "name", e.Name)
			continue
		}
		seen[e.Name] = true
		entries = append(entries, e)
	}
	logger.Debug("Catalog loaded", "dir", s.dir, "count", len(entries))
	return New(entries...), nil
}

// Content returns the script body of the named shnippet.
func (s *Store) Content(name string) ([]byte, error) {
	path, err := s.ScriptPath(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script %s: %w", path, err)
	}
	return data, nil
}

// Create stores a new shnippet. It fails with ErrExists if the name is taken.
func (s *Store) Create(e Entry, content []byte) error {
	return s.save(e, content, false)
}

// Update replaces the description and content of an existing shnippet.
func (s *Store) Update(e Entry, content []byte) error {
	return s.save(e, content, true)
}

func (s *Store) save(e Entry, content []byte, mustExist bool) error {
	if err := ValidateName(e.Name); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Join(s.dir, scriptsDir), 0750); err != nil {
		return fmt.Errorf("failed to create store directory %s: %w", s.dir, err)
	}

	unlock, err := lockDir(s.dir)
	if err != nil {
		return err
	}
	defer unlock()

	idx, err := s.readIndex()
	if err != nil {
		return err
	}
	pos := slices.IndexFunc(idx.Snippets, func(x Entry) bool { return x.Name == e.Name })
	switch {
	case pos >= 0 && !mustExist:
		return fmt.Errorf("%w: %s", ErrExists, e.Name)
	case pos < 0 && mustExist:
		return fmt.Errorf("%w: %s", ErrNotFound, e.Name)
	case pos >= 0:
		idx.Snippets[pos] = e
	default:
		idx.Snippets = append(idx.Snippets, e)
	}

	path := filepath.Join(s.dir, scriptsDir, e.Name+scriptExt)
	if err := os.WriteFile(path, content, 0750); err != nil {
		return fmt.Errorf("failed to write script %s: %w", path, err)
	}
	if err := s.writeIndex(idx); err != nil {
		return err
	}
	logger.Info("Shnippet saved", "name", e.Name, "created", !mustExist)
	return nil
}

// Remove deletes the named shnippet from the index and its script file.
func (s *Store) Remove(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if _, err := os.Stat(s.dir); os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	unlock, err := lockDir(s.dir)
	if err != nil {
		return err
	}
	defer unlock()

	idx, err := s.readIndex()
	if err != nil {
		return err
	}
	before := len(idx.Snippets)
	idx.Snippets = slices.DeleteFunc(idx.Snippets, func(x Entry) bool { return x.Name == name })
	if len(idx.Snippets) == before {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err := s.writeIndex(idx); err != nil {
		return err
	}

	path := filepath.Join(s.dir, scriptsDir, name+scriptExt)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove script %s: %w", path, err)
	}
	logger.Info("Shnippet removed", "name", name)
	return nil
}
