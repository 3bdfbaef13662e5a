package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"cslex/internal/source"
	"cslex/internal/token"
)

func spanOf(start, length uint32) source.Span {
	return source.Span{Start: start, Len: length}
}

func TestTokenizeVirtual(t *testing.T) {
	res := TokenizeVirtual("snippet.cs", []byte(`int x = 42;`), 0)

	wantKinds := []token.Kind{
		token.Keyword, token.Ident, token.Symbol, token.Number, token.Symbol, token.EOF,
	}
	if len(res.Tokens) != len(wantKinds) {
		t.Fatalf("token count = %d, want %d (%v)", len(res.Tokens), len(wantKinds), res.Tokens)
	}
	for i, want := range wantKinds {
		if res.Tokens[i].Kind != want {
			t.Errorf("token %d kind = %v, want %v", i, res.Tokens[i].Kind, want)
		}
	}
	if res.Bag.HasErrors() {
		t.Errorf("unexpected diagnostics: %v", res.Bag.Items())
	}
}

func TestTokenizeFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.cs")
	if err := os.WriteFile(path, []byte("class C { }\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := Tokenize(path, 0)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if got := len(res.Tokens); got != 5 { // class C { } EOF
		t.Fatalf("token count = %d, want 5 (%v)", got, res.Tokens)
	}
	if res.Tokens[0].Kind != token.Keyword {
		t.Errorf("first token kind = %v, want Keyword", res.Tokens[0].Kind)
	}
}

func TestTokenizeMissingFile(t *testing.T) {
	if _, err := Tokenize(filepath.Join(t.TempDir(), "absent.cs"), 0); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestListSourceFiles(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"b.cs":        "",
		"a.cs":        "",
		"sub/c.CS":    "",
		"notes.txt":   "",
		"sub/util.go": "",
	})

	paths, err := listSourceFiles(dir, []string{".cs"})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		filepath.Join(dir, "a.cs"),
		filepath.Join(dir, "b.cs"),
		filepath.Join(dir, "sub", "c.CS"),
	}
	if len(paths) != len(want) {
		t.Fatalf("paths = %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("paths[%d] = %q, want %q", i, paths[i], want[i])
		}
	}
}

func TestTokenizeDir(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"one.cs": "int a;\n",
		"two.cs": "string s = \"hi\";\n",
		"skip.txt": "not code",
	})

	res, err := TokenizeDir(context.Background(), dir, DirOptions{Jobs: 2})
	if err != nil {
		t.Fatalf("TokenizeDir: %v", err)
	}
	if len(res.Files) != 2 {
		t.Fatalf("file count = %d, want 2", len(res.Files))
	}
	// Results come back in path order, not completion order.
	if filepath.Base(res.Files[0].Path) != "one.cs" || filepath.Base(res.Files[1].Path) != "two.cs" {
		t.Errorf("unexpected order: %q, %q", res.Files[0].Path, res.Files[1].Path)
	}
	for _, fr := range res.Files {
		if fr.Err != nil {
			t.Errorf("%s: %v", fr.Path, fr.Err)
		}
		if len(fr.Tokens) == 0 || fr.Tokens[len(fr.Tokens)-1].Kind != token.EOF {
			t.Errorf("%s: token stream does not end in EOF: %v", fr.Path, fr.Tokens)
		}
	}
	if res.Bag.HasErrors() {
		t.Errorf("unexpected diagnostics: %v", res.Bag.Items())
	}
}

func TestTokenizeDirCollectsDiagnostics(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"bad.cs":  "string s = \"oops\n",
		"good.cs": "int a;\n",
	})

	res, err := TokenizeDir(context.Background(), dir, DirOptions{})
	if err != nil {
		t.Fatalf("TokenizeDir: %v", err)
	}
	if !res.Bag.HasErrors() {
		t.Fatal("expected unterminated string diagnostic")
	}
	for _, d := range res.Bag.Items() {
		if filepath.Base(d.Path) != "bad.cs" {
			t.Errorf("diagnostic attributed to %q, want bad.cs", d.Path)
		}
	}
}

func TestTokenizeDirCache(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"one.cs": "class C { int F() { return 1 + 2; } }\n",
	})
	cache, err := NewDiskCache(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}

	first, err := TokenizeDir(context.Background(), dir, DirOptions{Cache: cache})
	if err != nil {
		t.Fatal(err)
	}
	if first.Files[0].FromCache {
		t.Fatal("first run should miss the cache")
	}

	second, err := TokenizeDir(context.Background(), dir, DirOptions{Cache: cache})
	if err != nil {
		t.Fatal(err)
	}
	if !second.Files[0].FromCache {
		t.Fatal("second run should hit the cache")
	}
	if len(first.Files[0].Tokens) != len(second.Files[0].Tokens) {
		t.Fatalf("cached stream length %d, want %d",
			len(second.Files[0].Tokens), len(first.Files[0].Tokens))
	}
	for i, want := range first.Files[0].Tokens {
		if second.Files[0].Tokens[i] != want {
			t.Errorf("token %d: cached %v, fresh %v", i, second.Files[0].Tokens[i], want)
		}
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := NewDiskCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	hash := [32]byte{1, 2, 3}
	tokens := []token.Token{
		{Kind: token.Ident, Span: spanOf(0, 3)},
		{Kind: token.StringLit, Span: spanOf(4, 5), Trim: token.TrimEOF},
		{Kind: token.EOF, Span: spanOf(9, 0)},
	}

	if _, ok := cache.Load(hash); ok {
		t.Fatal("load before store should miss")
	}
	if err := cache.Store("a.cs", hash, tokens); err != nil {
		t.Fatal(err)
	}
	got, ok := cache.Load(hash)
	if !ok {
		t.Fatal("load after store should hit")
	}
	if len(got) != len(tokens) {
		t.Fatalf("len = %d, want %d", len(got), len(tokens))
	}
	for i := range tokens {
		if got[i] != tokens[i] {
			t.Errorf("token %d = %v, want %v", i, got[i], tokens[i])
		}
	}
}

func TestDiskCacheIgnoresCorruptEntry(t *testing.T) {
	dir := t.TempDir()
	cache, err := NewDiskCache(dir)
	if err != nil {
		t.Fatal(err)
	}
	hash := [32]byte{7}
	if err := os.WriteFile(cache.entryPath(hash), []byte("garbage"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, ok := cache.Load(hash); ok {
		t.Fatal("corrupt entry should read as a miss")
	}
}

func TestChannelSinkNeverBlocks(t *testing.T) {
	ch := make(chan Event, 1)
	sink := ChannelSink{Ch: ch}
	sink.Send(Event{Path: "a.cs", Stage: StageQueued})
	sink.Send(Event{Path: "b.cs", Stage: StageQueued}) // dropped, not stuck

	ev := <-ch
	if ev.Path != "a.cs" {
		t.Errorf("got %q, want a.cs", ev.Path)
	}
	select {
	case ev := <-ch:
		t.Errorf("unexpected second event: %v", ev)
	default:
	}
}

func TestTokenizeDirEmitsEvents(t *testing.T) {
	dir := writeTree(t, map[string]string{"one.cs": "int a;\n"})
	ch := make(chan Event, 16)

	if _, err := TokenizeDir(context.Background(), dir, DirOptions{Sink: ChannelSink{Ch: ch}}); err != nil {
		t.Fatal(err)
	}
	close(ch)

	stages := map[Stage]bool{}
	for ev := range ch {
		stages[ev.Stage] = true
	}
	for _, want := range []Stage{StageQueued, StageLexing, StageDone} {
		if !stages[want] {
			t.Errorf("missing %v event", want)
		}
	}
}
