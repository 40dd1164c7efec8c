package fix

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"notemark/internal/diag"
	"notemark/internal/source"
)

// ErrNoFixes is returned when no fixes were applied.
var ErrNoFixes = errors.New("no applicable fixes found")

// ApplyMode determines the selection strategy for fixes.
type ApplyMode uint8

const (
	// ApplyModeOnce applies only the first applicable fix.
	ApplyModeOnce ApplyMode = iota
	// ApplyModeAll applies every non-conflicting fix.
	ApplyModeAll
	// ApplyModeID applies the fix with the given identifier.
	ApplyModeID
)

// ApplyOptions configures how fixes are selected.
type ApplyOptions struct {
	Mode     ApplyMode
	TargetID string
}

// AppliedFix records a successfully applied fix.
type AppliedFix struct {
	ID          string
	Label       string
	Code        diag.Code
	Message     string
	PrimaryPath string
}

// SkippedFix captures a skipped fix with a reason.
type SkippedFix struct {
	ID     string
	Label  string
	Reason string
}

// FileChange summarises modifications performed on a file.
type FileChange struct {
	Path      string
	EditCount int
}

// ApplyResult aggregates applied fixes, skipped ones, and file changes.
type ApplyResult struct {
	Applied     []AppliedFix
	Skipped     []SkippedFix
	FileChanges []FileChange
}

type candidate struct {
	diag  diag.Diagnostic
	fix   diag.QuickFix
	id    string
	order int
}

// Apply collects the quick fixes carried by diagnostics, selects a
// subset according to opts, and applies them to the underlying files.
// Every fix is a single span replace on its diagnostic's Primary range;
// fixes whose ranges conflict with an already-applied one are skipped.
func Apply(fs *source.FileSet, diagnostics []diag.Diagnostic, opts ApplyOptions) (*ApplyResult, error) {
	result := &ApplyResult{
		Applied:     make([]AppliedFix, 0),
		Skipped:     make([]SkippedFix, 0),
		FileChanges: make([]FileChange, 0),
	}
	if fs == nil {
		return result, fmt.Errorf("fix: FileSet is nil")
	}

	candidates := gatherCandidates(diagnostics)
	if len(candidates) == 0 {
		return result, ErrNoFixes
	}
	sortCandidates(candidates)

	selected, selectionSkips := selectCandidates(candidates, opts)
	result.Skipped = append(result.Skipped, selectionSkips...)
	if len(selected) == 0 {
		return result, ErrNoFixes
	}

	applied, applySkips, changes, err := applyCandidates(fs, selected)
	result.Applied = append(result.Applied, applied...)
	result.Skipped = append(result.Skipped, applySkips...)
	result.FileChanges = append(result.FileChanges, changes...)

	if err != nil {
		return result, err
	}
	if len(result.Applied) == 0 {
		return result, ErrNoFixes
	}
	return result, nil
}

// FixID synthesizes the stable identifier for a diagnostic's fix,
// usable with ApplyModeID.
func FixID(d diag.Diagnostic) string {
	return fmt.Sprintf("%s-%d-%d", d.Code.ID(), d.Primary.File, d.Primary.Start)
}

// gatherCandidates takes the first quick fix of every diagnostic that
// carries one, with a monotonic insertion order for deterministic
// sorting.
func gatherCandidates(diagnostics []diag.Diagnostic) []candidate {
	cands := make([]candidate, 0, len(diagnostics))
	for i, d := range diagnostics {
		if len(d.Fixes) == 0 {
			continue
		}
		cands = append(cands, candidate{
			diag:  d,
			fix:   d.Fixes[0],
			id:    FixID(d),
			order: i,
		})
	}
	return cands
}

func sortCandidates(candidates []candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		di, dj := candidates[i].diag, candidates[j].diag
		if di.Primary.File != dj.Primary.File {
			return di.Primary.File < dj.Primary.File
		}
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		if di.Primary.End != dj.Primary.End {
			return di.Primary.End < dj.Primary.End
		}
		if candidates[i].order != candidates[j].order {
			return candidates[i].order < candidates[j].order
		}
		return di.Code < dj.Code
	})
}

func selectCandidates(candidates []candidate, opts ApplyOptions) ([]candidate, []SkippedFix) {
	switch opts.Mode {
	case ApplyModeID:
		for _, cand := range candidates {
			if cand.id == opts.TargetID {
				return []candidate{cand}, nil
			}
		}
		return nil, []SkippedFix{{
			ID:     opts.TargetID,
			Reason: "fix id not found",
		}}
	case ApplyModeAll:
		return candidates, nil
	case ApplyModeOnce:
		return candidates[:1], nil
	default:
		return nil, nil
	}
}

func applyCandidates(fs *source.FileSet, selected []candidate) ([]AppliedFix, []SkippedFix, []FileChange, error) {
	buffers := make(map[source.FileID][]byte)
	appliedSpans := make(map[source.FileID][]source.Span)
	fileEditCount := make(map[source.FileID]int)

	applied := make([]AppliedFix, 0, len(selected))
	skipped := make([]SkippedFix, 0)

	baseDir := fs.BaseDir()

	// Apply back to front per file so earlier spans stay valid.
	byFile := make(map[source.FileID][]candidate)
	for _, cand := range selected {
		byFile[cand.diag.Primary.File] = append(byFile[cand.diag.Primary.File], cand)
	}

	fileIDs := make([]source.FileID, 0, len(byFile))
	for id := range byFile {
		fileIDs = append(fileIDs, id)
	}
	sort.Slice(fileIDs, func(i, j int) bool { return fileIDs[i] < fileIDs[j] })

	for _, fileID := range fileIDs {
		cands := byFile[fileID]
		sort.SliceStable(cands, func(i, j int) bool {
			return cands[i].diag.Primary.Start > cands[j].diag.Primary.Start
		})

		file := fs.Get(fileID)
		working := append([]byte(nil), file.Content...)

		for _, cand := range cands {
			span := cand.diag.Primary
			if conflicts(appliedSpans[fileID], span) {
				skipped = append(skipped, SkippedFix{
					ID:     cand.id,
					Label:  cand.fix.Label,
					Reason: "conflicts with previously applied fix",
				})
				continue
			}
			if int(span.End) > len(file.Content) || span.Start >= span.End {
				skipped = append(skipped, SkippedFix{
					ID:     cand.id,
					Label:  cand.fix.Label,
					Reason: "fix span out of range",
				})
				continue
			}

			working = ApplyToContent(working, span, cand.fix.Replacement)
			appliedSpans[fileID] = append(appliedSpans[fileID], span)
			fileEditCount[fileID]++
			applied = append(applied, AppliedFix{
				ID:          cand.id,
				Label:       cand.fix.Label,
				Code:        cand.diag.Code,
				Message:     cand.diag.Message,
				PrimaryPath: file.FormatPath("auto", baseDir),
			})
		}

		if fileEditCount[fileID] > 0 {
			buffers[fileID] = working
		}
	}

	if len(applied) == 0 {
		return applied, skipped, nil, nil
	}

	fileChanges := make([]FileChange, 0, len(buffers))
	for fileID, buf := range buffers {
		file := fs.Get(fileID)
		if file.Flags&source.FileVirtual != 0 {
			// Virtual buffers are the caller's to persist.
			fileChanges = append(fileChanges, FileChange{
				Path:      file.FormatPath("relative", baseDir),
				EditCount: fileEditCount[fileID],
			})
			continue
		}

		mode := os.FileMode(0o644)
		if info, err := os.Stat(file.Path); err == nil {
			mode = info.Mode()
		}
		if err := os.WriteFile(file.Path, buf, mode); err != nil {
			return applied, skipped, fileChanges, fmt.Errorf("write %s: %w", file.Path, err)
		}
		fileChanges = append(fileChanges, FileChange{
			Path:      file.FormatPath("relative", baseDir),
			EditCount: fileEditCount[fileID],
		})
	}

	sort.SliceStable(fileChanges, func(i, j int) bool {
		return fileChanges[i].Path < fileChanges[j].Path
	})

	return applied, skipped, fileChanges, nil
}

func conflicts(existing []source.Span, span source.Span) bool {
	for _, prev := range existing {
		if prev.Start < span.End && span.Start < prev.End {
			return true
		}
	}
	return false
}
