// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"gopkg.in/yaml.v3"

	"github.com/staranto/cargoeval/internal/freshness"
	"github.com/staranto/cargoeval/internal/pathcodec"
)

const (
	sourceFile   = "source.path"
	metadataFile = "metadata.yaml"
)

var (
	// ErrNotFound is returned by Get when no record exists for an id.
	ErrNotFound = errors.New("cache record not found")
	// ErrInvalidID is returned for ids that would not name a single entry
	// directly beneath the store.
	ErrInvalidID = errors.New("invalid cache record id")
)

// Record describes one cached artifact.
type Record struct {
	// Source is the script the artifact was built from.
	Source string
	// BuildTime is when the artifact was built.
	BuildTime freshness.Timestamp
	// Debug is set for unoptimised builds.
	Debug bool
}

type metadata struct {
	BuildTime uint64 `yaml:"build_time"`
	Debug     bool   `yaml:"debug,omitempty"`
	Codec     string `yaml:"path_codec"`
}

// Store keeps records in per-id directories beneath Dir. The source path is
// stored in its own file, encoded with Codec, so the file boundary is the
// record boundary.
type Store struct {
	FS    billy.Filesystem
	Dir   string
	Codec pathcodec.Codec
}

// NewStore returns a Store under dir using the platform's path codec.
func NewStore(fsys billy.Filesystem, dir string) *Store {
	return &Store{FS: fsys, Dir: dir, Codec: pathcodec.Native}
}

// Put writes rec under id, replacing any existing record. Each file is
// replaced atomically, and the metadata is written last.
func (s *Store) Put(id string, rec Record) error {
	dir, err := s.entryDir(id)
	if err != nil {
		return err
	}
	if err := s.FS.MkdirAll(dir, 0o755); err != nil { //nolint:mnd
		return fmt.Errorf("failed to create cache entry: %w", err)
	}

	if err := s.writeFile(filepath.Join(dir, sourceFile), s.Codec.Encode(rec.Source)); err != nil {
		return fmt.Errorf("failed to write cache record: %w", err)
	}

	meta, err := yaml.Marshal(metadata{
		BuildTime: uint64(rec.BuildTime),
		Debug:     rec.Debug,
		Codec:     codecName(s.Codec),
	})
	if err != nil {
		return fmt.Errorf("failed to encode cache metadata: %w", err)
	}
	if err := s.writeFile(filepath.Join(dir, metadataFile), meta); err != nil {
		return fmt.Errorf("failed to write cache metadata: %w", err)
	}

	log.Debugf("wrote cache record %s", dir)
	return nil
}

// Get reads the record stored under id.
func (s *Store) Get(id string) (Record, error) {
	dir, err := s.entryDir(id)
	if err != nil {
		return Record{}, err
	}

	raw, err := util.ReadFile(s.FS, filepath.Join(dir, metadataFile))
	if errors.Is(err, fs.ErrNotExist) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("failed to read cache metadata: %w", err)
	}
	var meta metadata
	if err := yaml.Unmarshal(raw, &meta); err != nil {
		return Record{}, fmt.Errorf("failed to parse cache metadata %s: %w", dir, err)
	}
	if want := codecName(s.Codec); meta.Codec != want {
		return Record{}, fmt.Errorf("%w: record %s uses %q paths, expected %q", pathcodec.ErrCorrupt, id, meta.Codec, want)
	}

	enc, err := util.ReadFile(s.FS, filepath.Join(dir, sourceFile))
	if err != nil {
		return Record{}, fmt.Errorf("failed to read cache record: %w", err)
	}
	src, err := s.Codec.Decode(enc)
	if err != nil {
		return Record{}, fmt.Errorf("failed to decode cache record %s: %w", id, err)
	}

	return Record{
		Source:    src,
		BuildTime: freshness.Timestamp(meta.BuildTime),
		Debug:     meta.Debug,
	}, nil
}

func (s *Store) entryDir(id string) (string, error) {
	if id == "" || id == "." || strings.Contains(id, "..") || strings.ContainsAny(id, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return filepath.Join(s.Dir, id), nil
}

// writeFile replaces path with data through a temporary file in the same
// directory, so readers see either the old or the new content.
func (s *Store) writeFile(path string, data []byte) error {
	tmp, err := s.FS.TempFile(filepath.Dir(path), ".cache-")
	if err != nil {
		return err
	}
	name := tmp.Name()

	_, err = tmp.Write(data)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = s.FS.Rename(name, path)
	}
	if err != nil {
		_ = s.FS.Remove(name)
		return err
	}
	return nil
}

// Fresh reports whether an artifact built at rec.BuildTime is at least as
// new as a source last modified at sourceModified.
func Fresh(rec Record, sourceModified freshness.Timestamp) bool {
	return rec.BuildTime >= sourceModified
}

func codecName(c pathcodec.Codec) string {
	switch c.(type) {
	case pathcodec.Wide, *pathcodec.Wide:
		return "wide"
	default:
		return "bytes"
	}
}
