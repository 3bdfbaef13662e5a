package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"cslex/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "cslex",
	Short: "C#-flavored lexical analysis toolkit",
	Long:  `cslex tokenizes C#-like source files and reports lexical diagnostics`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(tokenizeDirCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the --color mode (falling back to config) against
// whether the destination is a terminal.
func useColor(cmd *cobra.Command, cfg *fileConfig, dst *os.File) bool {
	mode, _ := cmd.Root().PersistentFlags().GetString("color")
	if !cmd.Root().PersistentFlags().Changed("color") && cfg != nil && cfg.Output.Color != "" {
		mode = cfg.Output.Color
	}
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(dst)
	}
}
