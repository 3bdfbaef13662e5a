package driver

import (
	"cslex/internal/diag"
	"cslex/internal/lexer"
	"cslex/internal/source"
	"cslex/internal/token"
)

// Diagnostic capacity used when the caller does not set a limit.
const defaultMaxDiagnostics = 1024

func bagLimit(n int) int {
	if n <= 0 {
		return defaultMaxDiagnostics
	}
	return n
}

// TokenizeResult bundles the tokens and diagnostics for one file.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads one file from disk and lexes it to EOF.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenizeFile(fs, fileID, maxDiagnostics), nil
}

// TokenizeVirtual lexes in-memory content under the given name.
func TokenizeVirtual(name string, content []byte, maxDiagnostics int) *TokenizeResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return tokenizeFile(fs, fileID, maxDiagnostics)
}

func tokenizeFile(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) *TokenizeResult {
	file := fs.Get(fileID)
	bag := diag.NewBag(bagLimit(maxDiagnostics))

	lx := lexer.New(file.Buffer(), lexer.Options{
		Reporter: diag.PathBagReporter{Bag: bag, Path: file.Path},
	})

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  lx.Tokens(),
		Bag:     bag,
	}
}
