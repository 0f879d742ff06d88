/*
Copyright 2026 tokentree contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for the normalization
// CLI: which token documents to load and how to filter them.
package config

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/tokentree/dtcgnorm/ignore"
)

// Config is the on-disk shape of a dtcgnorm project configuration file.
type Config struct {
	// Files lists the token documents to normalize, in the order their
	// groups should cascade.
	Files []FileSpec `yaml:"files" json:"files"`

	// Ignore configures which tokens the walk phase drops.
	Ignore ignore.Config `yaml:"ignore" json:"ignore"`
}

// FileSpec is one token document to load, specified either as a bare
// path/glob string or as an object carrying per-file overrides.
type FileSpec struct {
	// Path is the file path or glob pattern.
	Path string `yaml:"path" json:"path"`

	// Ignore, if set, overrides the top-level Ignore config for tokens
	// that come from this file alone.
	Ignore *ignore.Config `yaml:"ignore" json:"ignore"`
}

// UnmarshalYAML accepts either a bare path string or a full object.
func (f *FileSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		f.Path = node.Value
		return nil
	}
	type rawFileSpec FileSpec
	return node.Decode((*rawFileSpec)(f))
}

// UnmarshalJSON accepts either a bare path string or a full object.
func (f *FileSpec) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.Path = s
		return nil
	}
	type rawFileSpec FileSpec
	return json.Unmarshal(data, (*rawFileSpec)(f))
}

// Default returns an empty configuration.
func Default() *Config {
	return &Config{}
}

// IgnoreForFile returns the effective ignore config for path: the
// file's own override if it declares one, otherwise the project-wide
// default.
func (c *Config) IgnoreForFile(path string) ignore.Config {
	for _, spec := range c.Files {
		if spec.Path == path && spec.Ignore != nil {
			return *spec.Ignore
		}
	}
	return c.Ignore
}

// FilePaths returns every configured file path/glob, in order.
func (c *Config) FilePaths() []string {
	paths := make([]string, 0, len(c.Files))
	for _, spec := range c.Files {
		paths = append(paths, spec.Path)
	}
	return paths
}
