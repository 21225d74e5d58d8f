// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the md2office CLI.
// Implements: docs/ARCHITECTURE § CLI Surface.
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

// rootCmd is the base command for the md2office CLI.
var rootCmd = &cobra.Command{
	Use:   "md2office",
	Short: "Convert Markdown to styled office documents",
	Long: `md2office converts Markdown files into .docx or .doc documents laid out to
an academic thesis standard: A4 pages, SimSun/Times New Roman body text with
exact 20pt line spacing, and SimHei headings.

Conversion prefers pandoc when it is installed, passing the layout through a
generated reference document. Without pandoc a built-in renderer walks the
parsed Markdown and builds the document directly. Output to .doc additionally
requires LibreOffice.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./md2office.yaml or ~/.config/md2office/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("md2office")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "md2office"))
		}
	}

	viper.SetEnvPrefix("MD2OFFICE")
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
