/*
Copyright 2026 tokentree contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides the dtcgnorm CLI commands.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tokentree/dtcgnorm/cmd/normalize"
	"github.com/tokentree/dtcgnorm/cmd/validate"
)

var rootCmd = &cobra.Command{
	Use:   "dtcgnorm",
	Short: "Normalize and resolve DTCG design token documents",
	Long:  `dtcgnorm flattens Design Tokens Community Group documents into a resolved token set, following aliases and deriving the reference graph.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path; not read by the subcommands, which always load .config/dtcgnorm.{yaml,yml,json}")
	rootCmd.PersistentFlags().Bool("verbose", false, "print diagnostics to stderr as they're found")
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(normalize.Cmd)
	rootCmd.AddCommand(validate.Cmd)
}
