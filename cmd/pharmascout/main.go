// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pharmascout CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/meshintel/pharmascout/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns fallback if non-empty, otherwise the secret value
// for key if one was loaded.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the pharmascout CLI.
var rootCmd = &cobra.Command{
	Use:   "pharmascout",
	Short: "Find PubMed papers with industry-affiliated authors",
	Long: `pharmascout queries the NCBI PubMed database for papers matching a
free-text query and keeps only those with at least one author affiliated
with a pharmaceutical, biotech, or other commercial organization. Results
are printed as a table or written as CSV, JSON, YAML, or SQLite.

NCBI asks every E-utilities client to identify itself with a contact email;
pass one via --email, the config file, PHARMASCOUT_EMAIL, or
.secrets/contact-email.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
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

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pharmascout.yaml or ~/.config/pharmascout/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pharmascout")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pharmascout"))
		}
	}

	viper.SetEnvPrefix("PHARMASCOUT")
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
