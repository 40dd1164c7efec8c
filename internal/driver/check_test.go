package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"notemark/internal/diag"
	"notemark/internal/validate"
)

func writeNotes(t *testing.T, files map[string]string) string {
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

func TestCheckPathDirectory(t *testing.T) {
	dir := writeNotes(t, map[string]string{
		"a.txt":        "clean note @today\n",
		"b.md":         "broken date @2024/01/15\n",
		"sub/c.txt":    "bad prio #zzz\n",
		"ignored.json": "@2024/01/15",
	})

	_, results, err := CheckPath(context.Background(), dir, Options{Policy: validate.DefaultPolicy()})
	if err != nil {
		t.Fatalf("CheckPath: %v", err)
	}

	// Only the note extensions, in path order.
	if len(results) != 3 {
		t.Fatalf("results = %d, want 3", len(results))
	}
	wantOrder := []string{"a.txt", "b.md", filepath.Join("sub", "c.txt")}
	for i, want := range wantOrder {
		if results[i].Path != filepath.Join(dir, want) {
			t.Errorf("results[%d].Path = %q, want %q", i, results[i].Path, want)
		}
	}

	if results[0].Bag.Len() != 0 {
		t.Errorf("clean file got diagnostics: %v", results[0].Bag.Items())
	}
	if results[1].Bag.Len() == 0 {
		t.Error("slash date not diagnosed")
	}
	if results[2].Bag.Len() == 0 {
		t.Error("unknown priority not diagnosed")
	}
}

func TestCheckPathSingleFile(t *testing.T) {
	dir := writeNotes(t, map[string]string{"todo.txt": "due @2024-13-01\n"})
	path := filepath.Join(dir, "todo.txt")

	fs, results, err := CheckPath(context.Background(), path, Options{Policy: validate.DefaultPolicy()})
	if err != nil {
		t.Fatalf("CheckPath: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}
	if fs.BaseDir() != dir {
		t.Errorf("base dir = %q, want %q", fs.BaseDir(), dir)
	}
	if !results[0].Bag.HasErrors() {
		t.Error("out-of-range month should be an error")
	}
}

func TestCheckPathMissing(t *testing.T) {
	_, _, err := CheckPath(context.Background(), filepath.Join(t.TempDir(), "nope"), Options{})
	if err == nil {
		t.Fatal("expected stat error")
	}
}

func TestCheckPathEmptyDirectory(t *testing.T) {
	_, results, err := CheckPath(context.Background(), t.TempDir(), Options{})
	if err != nil {
		t.Fatalf("CheckPath: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("results = %d, want 0", len(results))
	}
}

func TestCheckPathUnreadableFile(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits do not apply to root")
	}
	dir := writeNotes(t, map[string]string{"locked.txt": "note"})
	path := filepath.Join(dir, "locked.txt")
	if err := os.Chmod(path, 0o000); err != nil {
		t.Fatal(err)
	}

	_, results, err := CheckPath(context.Background(), dir, Options{Policy: validate.DefaultPolicy()})
	if err != nil {
		t.Fatalf("CheckPath: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}
	items := results[0].Bag.Items()
	if len(items) != 1 || items[0].Code != diag.IOLoadFile {
		t.Errorf("diagnostics = %+v, want one IO load error", items)
	}
}

func TestCheckPathParallel(t *testing.T) {
	files := make(map[string]string, 20)
	for i := 0; i < 20; i++ {
		files[filepath.Join("notes", "n"+string(rune('a'+i))+".txt")] = "due @2024/01/15\n"
	}
	dir := writeNotes(t, files)

	_, results, err := CheckPath(context.Background(), dir, Options{Jobs: 4, Policy: validate.DefaultPolicy()})
	if err != nil {
		t.Fatalf("CheckPath: %v", err)
	}
	if len(results) != 20 {
		t.Fatalf("results = %d, want 20", len(results))
	}
	if TotalDiagnostics(results) != 20 {
		t.Errorf("diagnostics = %d, want one per file", TotalDiagnostics(results))
	}
	if !HasErrors(results) {
		t.Error("slash dates should surface as errors")
	}
}

func TestCheckPathCancelled(t *testing.T) {
	dir := writeNotes(t, map[string]string{"a.txt": "note"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := CheckPath(ctx, dir, Options{Policy: validate.DefaultPolicy()})
	if err == nil {
		t.Fatal("expected context error")
	}
}
