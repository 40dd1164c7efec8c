package driver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"notemark/internal/diag"
	"notemark/internal/source"
	"notemark/internal/validate"
)

// noteExtensions are the file types the checker walks by default.
var noteExtensions = []string{".txt", ".md"}

// CheckResult holds the analysis outcome for one note file.
type CheckResult struct {
	Path   string
	FileID source.FileID
	Bag    *diag.Bag
}

// Options configures a directory check run.
type Options struct {
	// Jobs bounds the number of files analyzed concurrently.
	// Zero means GOMAXPROCS.
	Jobs int
	// Policy carries the validation thresholds.
	Policy validate.Policy
}

// listNoteFiles returns a sorted list of note files under dir.
func listNoteFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		for _, ext := range noteExtensions {
			if strings.HasSuffix(path, ext) {
				files = append(files, path)
				break
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// CheckPath analyzes a single file or every note file under a
// directory. Files run in parallel; results come back in path order.
func CheckPath(ctx context.Context, path string, opts Options) (*source.FileSet, []CheckResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, err
	}
	if !info.IsDir() {
		fileSet := source.NewFileSetWithBase(filepath.Dir(path))
		results, err := checkFiles(ctx, fileSet, []string{path}, opts)
		return fileSet, results, err
	}

	files, err := listNoteFiles(path)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSetWithBase(path)
	if len(files) == 0 {
		return fileSet, nil, nil
	}
	results, err := checkFiles(ctx, fileSet, files, opts)
	return fileSet, results, err
}

func checkFiles(ctx context.Context, fileSet *source.FileSet, files []string, opts Options) ([]CheckResult, error) {
	// Load everything up front: FileSet mutation is not goroutine-safe,
	// analysis of immutable buffers is.
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	analyzer := validate.NewAnalyzer(validate.WithPolicy(opts.Policy))
	results := make([]CheckResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			if loadErr, hadError := loadErrors[path]; hadError {
				bag := diag.NewBag(opts.Policy.MaxDiagnostics)
				bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOLoadFile,
					Message:  fmt.Sprintf("failed to load file: %v", loadErr),
				})
				results[i] = CheckResult{Path: path, Bag: bag}
				return nil
			}

			fileID := fileIDs[path]
			// Index i is unique per goroutine, no mutex needed.
			results[i] = CheckResult{
				Path:   path,
				FileID: fileID,
				Bag:    analyzer.Analyze(fileSet.Get(fileID)),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// HasErrors reports whether any result carries an error diagnostic.
func HasErrors(results []CheckResult) bool {
	for _, r := range results {
		if r.Bag != nil && r.Bag.HasErrors() {
			return true
		}
	}
	return false
}

// TotalDiagnostics sums the diagnostics across results.
func TotalDiagnostics(results []CheckResult) int {
	total := 0
	for _, r := range results {
		if r.Bag != nil {
			total += r.Bag.Len()
		}
	}
	return total
}
