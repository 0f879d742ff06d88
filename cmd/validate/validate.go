/*
Copyright 2026 tokentree contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for dtcgnorm.
package validate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tokentree/dtcgnorm/config"
	"github.com/tokentree/dtcgnorm/diag"
	"github.com/tokentree/dtcgnorm/document"
	"github.com/tokentree/dtcgnorm/fs"
	"github.com/tokentree/dtcgnorm/ignore"
	"github.com/tokentree/dtcgnorm/pipeline"
)

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate design token documents",
	Long:  `Walk and resolve design token documents, reporting every diagnostic without printing the resolved token set.`,
	Args:  cobra.ArbitraryArgs,
	RunE:  run,
}

func init() {
	Cmd.Flags().Bool("quiet", false, "only print a final pass/fail line")
}

func run(cmd *cobra.Command, args []string) error {
	quiet, _ := cmd.Flags().GetBool("quiet")
	filesystem := fs.NewOSFileSystem()

	cfg := config.LoadOrDefault(filesystem, ".")

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
	hasParseErrors := false
	for _, path := range files {
		if !quiet {
			fmt.Printf("Validating %s...\n", path)
		}
		data, err := filesystem.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error reading %s: %v\n", path, err)
			hasParseErrors = true
			continue
		}
		src, err := document.Parse(path, data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error parsing %s: %v\n", path, err)
			hasParseErrors = true
			continue
		}
		sources = append(sources, src)
		perFileIgnore[path] = cfg.IgnoreForFile(path)
	}

	var collector diag.Collector
	pipeline.Run(sources, pipeline.Options{Ignore: cfg.Ignore, PerFileIgnore: perFileIgnore, Sink: &collector})

	for _, d := range collector.Diagnostics {
		fmt.Fprintf(os.Stderr, "%s[%s/%s]: %s\n", d.Kind, d.Group, d.Label, d.Message)
	}

	if hasParseErrors || len(collector.Diagnostics) > 0 {
		return fmt.Errorf("validation failed: %d diagnostic(s)", len(collector.Diagnostics))
	}
	fmt.Println("OK")
	return nil
}
