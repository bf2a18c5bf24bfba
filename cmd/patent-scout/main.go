// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the patent-scout CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/patent-scout/internal/secrets"
	"github.com/pdiddy/patent-scout/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the patent-scout CLI.
var rootCmd = &cobra.Command{
	Use:   "patent-scout",
	Short: "Prior-art scouting for invention ideas",
	Long: `patent-scout takes a free-text invention description, searches the
PatentsView API for related prior patents, and asks a locally hosted
language model how novel the idea appears against that evidence.

The analyze subcommand runs the full pipeline; search queries prior art
without invoking the model.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		secrets.LoadDotenv()
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./patent-scout.yaml or ~/.config/patent-scout/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("patent-scout")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "patent-scout"))
		}
	}

	viper.SetEnvPrefix("PATENT_SCOUT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// exitCode maps error kinds to the CLI's documented exit codes.
func exitCode(err error) int {
	switch {
	case errors.Is(err, types.ErrConfiguration):
		return 2
	case errors.Is(err, types.ErrSearchAPI):
		return 3
	case errors.Is(err, types.ErrInference):
		return 4
	}
	return 1
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}
