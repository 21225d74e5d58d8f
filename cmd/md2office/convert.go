// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/md2office/internal/convert"
)

var convertCmd = &cobra.Command{
	Use:   "convert input.md",
	Short: "Convert a Markdown file to .docx or .doc",
	Long: `Convert renders a Markdown file as a styled office document. The output
format follows the output path extension; without -o the result is written
next to the input as <name>.docx. A style configuration file (YAML or JSON)
overrides any subset of the built-in layout; missing or malformed config
falls back to the defaults with a warning.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		header, _ := cmd.Flags().GetString("header")
		stylesPath, _ := cmd.Flags().GetString("styles")
		fallbackOnly, _ := cmd.Flags().GetBool("fallback-only")

		if stylesPath == "" {
			stylesPath = viper.GetString("styles")
		}
		if header == "" {
			header = viper.GetString("header")
		}

		result, err := convert.ConvertFile(convert.Options{
			Input:        args[0],
			Output:       output,
			Header:       header,
			StylesPath:   stylesPath,
			FallbackOnly: fallbackOnly,
		}, os.Stderr)
		if err != nil {
			return err
		}

		fmt.Printf("Converted: %s (%s)\n", result.OutputPath, result.Status)
		return nil
	},
}

func init() {
	convertCmd.Flags().StringP("output", "o", "", "output file path (.docx or .doc)")
	convertCmd.Flags().String("header", "", "page header text")
	convertCmd.Flags().String("styles", "", "style configuration file (YAML or JSON)")
	convertCmd.Flags().Bool("fallback-only", false, "skip pandoc and use the built-in renderer")

	rootCmd.AddCommand(convertCmd)
}
