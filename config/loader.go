/*
Copyright 2026 tokentree contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	gofs "io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/tokentree/dtcgnorm/fs"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "dtcgnorm"

// ConfigDir is the directory config files are looked up in.
const ConfigDir = ".config"

var configExtensions = []string{".yaml", ".yml", ".json"}

// Load searches rootDir/.config/dtcgnorm.{yaml,yml,json}. It returns
// (nil, nil) if no config file exists; that is not an error.
func Load(filesystem fs.FileSystem, rootDir string) (*Config, error) {
	for _, ext := range configExtensions {
		path := filepath.Join(rootDir, ConfigDir, ConfigFileName+ext)
		if !filesystem.Exists(path) {
			continue
		}

		data, err := filesystem.ReadFile(path)
		if err != nil {
			return nil, err
		}

		cfg := &Config{}
		switch ext {
		case ".yaml", ".yml":
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, err
			}
		case ".json":
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, err
			}
		}
		return cfg, nil
	}
	return nil, nil
}

// LoadOrDefault is Load, falling back to Default() on any error or
// absent config file.
func LoadOrDefault(filesystem fs.FileSystem, rootDir string) *Config {
	cfg, err := Load(filesystem, rootDir)
	if err != nil || cfg == nil {
		return Default()
	}
	return cfg
}

// ExpandFiles resolves every configured file path/glob into concrete
// file paths relative to rootDir.
func (c *Config) ExpandFiles(filesystem fs.FileSystem, rootDir string) ([]string, error) {
	var result []string
	for _, spec := range c.Files {
		expanded, err := expandFilePath(filesystem, rootDir, spec.Path)
		if err != nil {
			return nil, err
		}
		result = append(result, expanded...)
	}
	return result, nil
}

func expandFilePath(filesystem fs.FileSystem, rootDir, pattern string) ([]string, error) {
	if !filepath.IsAbs(pattern) {
		pattern = filepath.Join(rootDir, pattern)
	}
	if !containsGlob(pattern) {
		return []string{pattern}, nil
	}
	return expandGlob(filesystem, pattern)
}

func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[")
}

func expandGlob(filesystem fs.FileSystem, pattern string) ([]string, error) {
	baseDir := pattern
	for containsGlob(baseDir) {
		baseDir = filepath.Dir(baseDir)
	}

	relPattern := strings.TrimPrefix(pattern, baseDir)
	relPattern = strings.TrimPrefix(relPattern, string(filepath.Separator))

	var matches []string
	err := gofs.WalkDir(asFS{filesystem}, baseDir, func(path string, d gofs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return gofs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		relPath := strings.TrimPrefix(path, baseDir)
		relPath = strings.TrimPrefix(relPath, string(filepath.Separator))
		if ok, _ := doublestar.Match(relPattern, relPath); ok {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// asFS adapts our FileSystem interface to io/fs.FS for fs.WalkDir.
type asFS struct{ fs.FileSystem }

func (a asFS) Open(name string) (gofs.File, error) { return a.FileSystem.Open(name) }
