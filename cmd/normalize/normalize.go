/*
Copyright 2026 tokentree contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package normalize provides the normalize command for dtcgnorm.
package normalize

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tokentree/dtcgnorm/config"
	"github.com/tokentree/dtcgnorm/diag"
	"github.com/tokentree/dtcgnorm/document"
	"github.com/tokentree/dtcgnorm/fs"
	"github.com/tokentree/dtcgnorm/ignore"
	"github.com/tokentree/dtcgnorm/natural"
	"github.com/tokentree/dtcgnorm/pipeline"
	"github.com/tokentree/dtcgnorm/token"
	"github.com/tokentree/dtcgnorm/value"
)

// Cmd is the normalize cobra command.
var Cmd = &cobra.Command{
	Use:   "normalize [files...]",
	Short: "Normalize and resolve design token documents",
	Long:  `Walk one or more DTCG token documents, resolve their aliases, and print the flat, resolved token set.`,
	Args:  cobra.ArbitraryArgs,
	RunE:  run,
}

func init() {
	Cmd.Flags().String("type", "", "filter output to tokens of this $type")
	Cmd.Flags().Bool("drop-deprecated", false, "drop tokens whose resolved $deprecated is true")
	Cmd.Flags().StringSlice("ignore", nil, "glob pattern(s) of token IDs to drop")
	Cmd.Flags().String("format", "table", "output format: table, json")

	viper.BindPFlag("drop-deprecated", Cmd.Flags().Lookup("drop-deprecated"))
	viper.BindPFlag("ignore", Cmd.Flags().Lookup("ignore"))
}

func run(cmd *cobra.Command, args []string) error {
	typeFilter, _ := cmd.Flags().GetString("type")
	format, _ := cmd.Flags().GetString("format")
	verbose, _ := cmd.Flags().GetBool("verbose")

	filesystem := fs.NewOSFileSystem()

	// Config file values and CLI flags (already bound into viper above)
	// combine: deprecated tokens are dropped if either turns that on, and
	// --ignore patterns are appended to the config's patterns.
	cfg := config.LoadOrDefault(filesystem, ".")
	dropDeprecated := cfg.Ignore.Deprecated || viper.GetBool("drop-deprecated")
	ignorePatterns := append(append([]string{}, cfg.Ignore.Tokens...), viper.GetStringSlice("ignore")...)
	cliOverride := ignore.Config{Deprecated: dropDeprecated, Tokens: ignorePatterns}

	files := args
	if len(files) == 0 {
		expanded, err := cfg.ExpandFiles(filesystem, ".")
		if err != nil {
			return fmt.Errorf("expanding config files: %w", err)
		}
		files = expanded
	}
	if len(files) == 0 {
		return fmt.Errorf("no files specified and none found in config")
	}

	var sources []*document.Source
	perFileIgnore := map[string]ignore.Config{}
	for _, path := range files {
		data, err := filesystem.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error reading %s: %v\n", path, err)
			continue
		}
		src, err := document.Parse(path, data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error parsing %s: %v\n", path, err)
			continue
		}
		sources = append(sources, src)

		// A per-file ignore override in the config combines with the CLI
		// flags the same way the project-wide default does.
		fileIgnore := cfg.IgnoreForFile(path)
		perFileIgnore[path] = ignore.Config{
			Deprecated: fileIgnore.Deprecated || viper.GetBool("drop-deprecated"),
			Tokens:     append(append([]string{}, fileIgnore.Tokens...), viper.GetStringSlice("ignore")...),
		}
	}

	var sink diag.Sink = diag.Discard{}
	if verbose {
		sink = diag.NewStderrSink()
	}

	result := pipeline.Run(sources, pipeline.Options{
		Ignore:        cliOverride,
		PerFileIgnore: perFileIgnore,
		Sink:          sink,
	})

	ids := make([]string, 0, len(result.Tokens))
	for id, t := range result.Tokens {
		if typeFilter != "" && t.Type != typeFilter {
			continue
		}
		ids = append(ids, id)
	}
	natural.Sort(ids)

	switch format {
	case "json":
		return outputJSON(result.Tokens, ids)
	default:
		return outputTable(result.Tokens, ids)
	}
}

func outputTable(tokens map[string]*token.Normalized, ids []string) error {
	for _, id := range ids {
		t := tokens[id]
		typeStr := t.Type
		if typeStr == "" {
			typeStr = "-"
		}
		fmt.Printf("%-40s %-12s %v\n", t.ID, typeStr, value.ToAny(t.Value))
	}
	return nil
}

type tokenOutput struct {
	ID          string `json:"id"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
	Value       any    `json:"value"`
	AliasOf     string `json:"aliasOf,omitempty"`
	Deprecated  bool   `json:"deprecated,omitempty"`
}

func outputJSON(tokens map[string]*token.Normalized, ids []string) error {
	out := make([]tokenOutput, 0, len(ids))
	for _, id := range ids {
		t := tokens[id]
		o := tokenOutput{
			ID:    t.ID,
			Type:  t.Type,
			Value: value.ToAny(t.Value),
		}
		if t.Description != nil {
			o.Description = *t.Description
		}
		if t.Deprecated != nil {
			o.Deprecated = *t.Deprecated
		}
		if t.AliasOf != nil {
			o.AliasOf = *t.AliasOf
		}
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
