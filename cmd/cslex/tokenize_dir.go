package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"cslex/internal/driver"
	"cslex/internal/tokfmt"
	"cslex/internal/ui"
)

var tokenizeDirCmd = &cobra.Command{
	Use:   "tokenize-dir [flags] dir",
	Short: "Tokenize every source file under a directory",
	Long:  `Tokenize-dir walks a directory tree and lexes every matching file in parallel`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenizeDir,
}

func init() {
	tokenizeDirCmd.Flags().Int("jobs", 0, "number of parallel workers (0 = CPU count)")
	tokenizeDirCmd.Flags().Bool("ui", false, "show interactive progress")
	tokenizeDirCmd.Flags().String("cache-dir", "", "token cache directory")
}

func runTokenizeDir(cmd *cobra.Command, args []string) error {
	dir := args[0]

	cfg, err := loadConfig(dir)
	if err != nil {
		return err
	}

	opts := driver.DirOptions{
		MaxDiagnostics: resolveMaxDiagnostics(cmd, cfg),
	}
	opts.Jobs, _ = cmd.Flags().GetInt("jobs")
	if !cmd.Flags().Changed("jobs") && cfg != nil && cfg.Tokenize.Jobs > 0 {
		opts.Jobs = cfg.Tokenize.Jobs
	}
	if cfg != nil {
		opts.Extensions = cfg.Tokenize.Extensions
	}

	cacheDir, _ := cmd.Flags().GetString("cache-dir")
	if cacheDir == "" && cfg != nil {
		cacheDir = cfg.Cache.Dir
	}
	if cacheDir != "" {
		cache, err := driver.NewDiskCache(cacheDir)
		if err != nil {
			return err
		}
		opts.Cache = cache
	}

	withUI, _ := cmd.Flags().GetBool("ui")
	var res *driver.DirResult
	if withUI && isTerminal(os.Stdout) {
		res, err = runDirWithUI(cmd.Context(), dir, opts)
	} else {
		res, err = driver.TokenizeDir(cmd.Context(), dir, opts)
	}
	if err != nil {
		return err
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if !quiet && res.Bag.Len() > 0 {
		tokfmt.FormatDiagnostics(os.Stderr, res.Bag, tokfmt.DiagOpts{
			Color: useColor(cmd, cfg, os.Stderr),
		})
	}

	return printDirSummary(cmd, res, quiet)
}

type dirOutcome struct {
	result *driver.DirResult
	err    error
}

// runDirWithUI drives TokenizeDir behind a Bubble Tea progress screen. The
// run itself happens in a goroutine; the UI exits when the event channel
// closes.
func runDirWithUI(ctx context.Context, dir string, opts driver.DirOptions) (*driver.DirResult, error) {
	files, err := driver.ListFiles(dir, opts.Extensions)
	if err != nil {
		return nil, err
	}

	events := make(chan driver.Event, 256)
	outcomeCh := make(chan dirOutcome, 1)

	go func() {
		runOpts := opts
		runOpts.Sink = driver.ChannelSink{Ch: events}
		res, err := driver.TokenizeDir(ctx, dir, runOpts)
		outcomeCh <- dirOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("tokenizing "+dir, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}

func printDirSummary(cmd *cobra.Command, res *driver.DirResult, quiet bool) error {
	var failed int
	totalTokens := 0
	for _, fr := range res.Files {
		if fr.Err != nil {
			failed++
			continue
		}
		totalTokens += len(fr.Tokens)
		if !quiet {
			marker := ""
			if fr.FromCache {
				marker = " (cached)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d tokens%s\n", fr.Path, len(fr.Tokens), marker)
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d files, %d tokens, %d diagnostics\n",
		len(res.Files), totalTokens, res.Bag.Len())

	if failed > 0 {
		return fmt.Errorf("%d file(s) could not be read", failed)
	}
	return nil
}
