/*
Copyright 2026 tokentree contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config_test

import (
	"io"
	iofs "io/fs"
	"os"
	"testing"
	"time"

	"github.com/tokentree/dtcgnorm/config"
)

// memFS is a minimal in-memory fs.FileSystem fake, so loader tests don't
// touch the real filesystem.
type memFS struct {
	files map[string][]byte
}

func (m memFS) ReadFile(name string) ([]byte, error) {
	data, ok := m.files[name]
	if !ok {
		return nil, os.ErrNotExist
	}
	return data, nil
}

func (m memFS) Exists(path string) bool {
	_, ok := m.files[path]
	return ok
}

func (m memFS) Stat(name string) (iofs.FileInfo, error) {
	return nil, os.ErrNotExist
}

func (m memFS) ReadDir(name string) ([]iofs.DirEntry, error) {
	return nil, os.ErrNotExist
}

func (m memFS) Open(name string) (iofs.File, error) {
	data, ok := m.files[name]
	if !ok {
		return nil, os.ErrNotExist
	}
	return &memFile{name: name, r: data}, nil
}

type memFile struct {
	name string
	r    []byte
	pos  int
}

func (f *memFile) Stat() (iofs.FileInfo, error) { return memFileInfo{f.name, len(f.r)}, nil }
func (f *memFile) Read(p []byte) (int, error) {
	if f.pos >= len(f.r) {
		return 0, io.EOF
	}
	n := copy(p, f.r[f.pos:])
	f.pos += n
	return n, nil
}
func (f *memFile) Close() error { return nil }

type memFileInfo struct {
	name string
	size int
}

func (i memFileInfo) Name() string       { return i.name }
func (i memFileInfo) Size() int64        { return int64(i.size) }
func (i memFileInfo) Mode() iofs.FileMode { return 0 }
func (i memFileInfo) ModTime() time.Time { return time.Time{} }
func (i memFileInfo) IsDir() bool        { return false }
func (i memFileInfo) Sys() any           { return nil }

func TestLoadOrDefaultReturnsDefaultWithoutConfigFile(t *testing.T) {
	fs := memFS{files: map[string][]byte{}}
	cfg := config.LoadOrDefault(fs, "/project")
	if len(cfg.Files) != 0 {
		t.Errorf("expected no files in default config, got %v", cfg.Files)
	}
}

func TestLoadParsesYAMLConfig(t *testing.T) {
	fs := memFS{files: map[string][]byte{
		"/project/.config/dtcgnorm.yaml": []byte("files:\n  - tokens/colors.yaml\nignore:\n  deprecated: true\n"),
	}}

	cfg, err := config.Load(fs, "/project")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected a config")
	}
	if len(cfg.Files) != 1 || cfg.Files[0].Path != "tokens/colors.yaml" {
		t.Errorf("Files = %+v", cfg.Files)
	}
	if !cfg.Ignore.Deprecated {
		t.Error("expected ignore.deprecated to be true")
	}
}

func TestFileSpecUnmarshalAcceptsBareString(t *testing.T) {
	fs := memFS{files: map[string][]byte{
		"/project/.config/dtcgnorm.json": []byte(`{"files": ["a.json", {"path": "b.json"}]}`),
	}}

	cfg, err := config.Load(fs, "/project")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.FilePaths()[0] != "a.json" || cfg.FilePaths()[1] != "b.json" {
		t.Errorf("FilePaths = %v", cfg.FilePaths())
	}
}
