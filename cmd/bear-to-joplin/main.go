// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the bear-to-joplin CLI.
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

// rootCmd is the base command for the bear-to-joplin CLI.
var rootCmd = &cobra.Command{
	Use:   "bear-to-joplin",
	Short: "Convert Bear markdown exports for Joplin import",
	Long: `bear-to-joplin rewrites markdown notes exported from Bear into
markdown-plus-front-matter files that Joplin can import: each note gains a
YAML block carrying its title, creation and modification times, and hashtags.

The reverse mode strips a previously written front-matter block and restores
the note's filesystem timestamps from the values it carries.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./bear-to-joplin.yaml or ~/.config/bear-to-joplin/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("bear-to-joplin")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "bear-to-joplin"))
		}
	}

	viper.SetEnvPrefix("BEAR_TO_JOPLIN")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
