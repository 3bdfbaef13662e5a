package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"cslex/internal/driver"
	"cslex/internal/tokfmt"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.cs",
	Short: "Tokenize a C#-like source file",
	Long:  `Tokenize breaks a source file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	cfg, err := loadConfig(filepath.Dir(filePath))
	if err != nil {
		return err
	}

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format == "" {
		format = "pretty"
		if cfg != nil && cfg.Output.Format != "" {
			format = cfg.Output.Format
		}
	}

	result, err := driver.Tokenize(filePath, resolveMaxDiagnostics(cmd, cfg))
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if !quiet && result.Bag.Len() > 0 {
		result.Bag.Sort()
		tokfmt.FormatDiagnostics(os.Stderr, result.Bag, tokfmt.DiagOpts{
			Color: useColor(cmd, cfg, os.Stderr),
		})
	}

	switch format {
	case "pretty":
		return tokfmt.FormatTokensPretty(os.Stdout, result.Tokens, result.File)
	case "json":
		return tokfmt.FormatTokensJSON(os.Stdout, result.Tokens, result.File)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
