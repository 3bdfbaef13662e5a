package driver

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"cslex/internal/diag"
	"cslex/internal/lexer"
	"cslex/internal/source"
	"cslex/internal/token"
)

// DirOptions configures a directory run.
type DirOptions struct {
	// Jobs caps the number of concurrent workers; <=0 means NumCPU.
	Jobs int
	// MaxDiagnostics bounds the per-run diagnostic bag; <=0 uses a default.
	MaxDiagnostics int
	// Cache, when set, is consulted before lexing and updated after.
	Cache *DiskCache
	// Sink receives progress events; nil means no reporting.
	Sink Sink
	// Extensions filters which files are picked up; empty means ".cs".
	Extensions []string
}

// FileResult holds the outcome for one file of a directory run.
type FileResult struct {
	Path      string
	FileID    source.FileID
	Tokens    []token.Token
	FromCache bool
	Err       error
}

// DirResult is the aggregate outcome of TokenizeDir. Files is ordered by
// path regardless of worker scheduling.
type DirResult struct {
	FileSet *source.FileSet
	Files   []FileResult
	Bag     *diag.Bag
}

// TokenizeDir walks dir for .cs files and lexes them in parallel, one
// worker per file up to the job limit. Files that fail to load are recorded
// in the result rather than aborting the run; only a context cancellation
// or a walk error returns a non-nil error.
func TokenizeDir(ctx context.Context, dir string, opts DirOptions) (*DirResult, error) {
	exts := opts.Extensions
	if len(exts) == 0 {
		exts = []string{".cs"}
	}
	paths, err := listSourceFiles(dir, exts)
	if err != nil {
		return nil, err
	}

	sink := Sink(nopSink{})
	if opts.Sink != nil {
		sink = opts.Sink
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	// FileSet is not safe for concurrent mutation, so loading stays serial.
	// Workers only read File entries afterwards.
	fileSet := source.NewFileSet()
	results := make([]FileResult, len(paths))
	bags := make([]*diag.Bag, len(paths))
	for i, path := range paths {
		sink.Send(Event{Path: path, Stage: StageQueued})
		results[i].Path = path
		bags[i] = diag.NewBag(bagLimit(opts.MaxDiagnostics))

		fileID, loadErr := fileSet.Load(path)
		if loadErr != nil {
			results[i].Err = loadErr
			bags[i].Add(diag.Diagnostic{
				Severity: diag.SevError,
				Code:     diag.IOReadFailed,
				Message:  loadErr.Error(),
				Path:     path,
			})
			continue
		}
		results[i].FileID = fileID
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i := range results {
		if results[i].Err != nil {
			sink.Send(Event{Path: results[i].Path, Stage: StageFailed, Err: results[i].Err})
			continue
		}
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			lexOne(fileSet, &results[i], bags[i], opts.Cache, sink)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := diag.NewBag(bagLimit(opts.MaxDiagnostics))
	for _, bag := range bags {
		merged.Merge(bag)
	}
	merged.Sort()

	return &DirResult{
		FileSet: fileSet,
		Files:   results,
		Bag:     merged,
	}, nil
}

// lexOne tokenizes a single preloaded file, going through the cache when
// one is configured. Each call builds its own lexer and cursor, so workers
// share nothing but the read-only file content.
func lexOne(fileSet *source.FileSet, res *FileResult, bag *diag.Bag, cache *DiskCache, sink Sink) {
	file := fileSet.Get(res.FileID)

	if cache != nil {
		if tokens, ok := cache.Load(file.Hash); ok {
			res.Tokens = tokens
			res.FromCache = true
			sink.Send(Event{Path: res.Path, Stage: StageCached})
			return
		}
	}

	sink.Send(Event{Path: res.Path, Stage: StageLexing})

	lx := lexer.New(file.Buffer(), lexer.Options{
		Reporter: diag.PathBagReporter{Bag: bag, Path: file.Path},
	})
	res.Tokens = lx.Tokens()

	if cache != nil {
		if err := cache.Store(file.Path, file.Hash, res.Tokens); err != nil {
			bag.Add(diag.Diagnostic{
				Severity: diag.SevWarning,
				Code:     diag.IOCacheFailed,
				Message:  err.Error(),
				Path:     file.Path,
			})
		}
	}
	sink.Send(Event{Path: res.Path, Stage: StageDone})
}

// ListFiles returns the files a directory run over dir would process, in
// the order it would process them. Callers use it to size progress output.
func ListFiles(dir string, exts []string) ([]string, error) {
	if len(exts) == 0 {
		exts = []string{".cs"}
	}
	return listSourceFiles(dir, exts)
}

// listSourceFiles returns the sorted files under root matching one of the
// extensions, so runs are deterministic regardless of directory iteration
// order. Extension comparison ignores case.
func listSourceFiles(root string, exts []string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		for _, ext := range exts {
			if strings.EqualFold(filepath.Ext(path), ext) {
				paths = append(paths, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	sort.Strings(paths)
	return paths, nil
}
