// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the draftport CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the draftport CLI.
var rootCmd = &cobra.Command{
	Use:   "draftport",
	Short: "Convert legacy Schema 1 writing projects to portable formats",
	Long: `draftport converts legacy Schema 1 projects (folders of HTML documents
with soft-delete trash lists) into portable formats: a zip archive of
Markdown files, or a Schema 2 JSON project with block-structured rich
text and computed word counts.

Each output target is a subcommand: archive and schema2. The inspect
subcommand summarizes a project without converting it, and history
lists past conversion runs.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./draftport.yaml or ~/.config/draftport/config.yaml)")
	rootCmd.PersistentFlags().String("state-dir", "", "directory for the run catalog database (default: .draftport)")
	rootCmd.PersistentFlags().Bool("no-history", false, "do not record this run in the catalog")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("draftport")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "draftport"))
		}
	}

	viper.SetEnvPrefix("DRAFTPORT")
	viper.AutomaticEnv()

	viper.SetDefault("archive.output_path", "")
	viper.SetDefault("schema2.output_path", "")
	viper.SetDefault("schema2.indent", 2)
	viper.SetDefault("catalog.state_dir", ".draftport")
	viper.SetDefault("catalog.max_runs", 20)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
