// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/md2office/internal/style"
)

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "Print the resolved style sheet",
	Long: `Styles resolves the style configuration (if given) against the built-in
defaults and prints the fully populated sheet as YAML. Useful as a starting
point for a custom style file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		stylesPath, _ := cmd.Flags().GetString("styles")
		if stylesPath == "" {
			stylesPath = viper.GetString("styles")
		}

		sheet := style.Resolve(style.LoadConfig(stylesPath, os.Stderr))
		out, err := yaml.Marshal(sheet)
		if err != nil {
			return fmt.Errorf("marshaling style sheet: %w", err)
		}
		fmt.Print(string(out))
		return nil
	},
}

func init() {
	stylesCmd.Flags().String("styles", "", "style configuration file (YAML or JSON)")

	rootCmd.AddCommand(stylesCmd)
}
