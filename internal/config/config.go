package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"notemark/internal/complete"
	"notemark/internal/marker"
	"notemark/internal/validate"
)

// FileName is the config file looked up from the working directory upward.
const FileName = "notemark.toml"

// Config is the on-disk configuration. Every field is optional; zero
// values fall back to the built-in defaults at merge time.
type Config struct {
	Check    CheckConfig    `toml:"check"`
	Complete CompleteConfig `toml:"complete"`
	Editor   EditorConfig   `toml:"editor"`
}

// CheckConfig tunes the validation thresholds.
type CheckConfig struct {
	PriorityPrefixTolerance  int `toml:"priority_prefix_tolerance"`
	AssigneePartialTolerance int `toml:"assignee_partial_tolerance"`
	TagMaxLen                int `toml:"tag_max_len"`
	AssigneeMaxLen           int `toml:"assignee_max_len"`
	MinIncompleteTag         int `toml:"min_incomplete_tag"`
	MinIncompleteColor       int `toml:"min_incomplete_color"`
	MinIncompleteSigil       int `toml:"min_incomplete_sigil"`
	MaxDiagnostics           int `toml:"max_diagnostics"`
}

// CompleteConfig tunes the completion source.
type CompleteConfig struct {
	CacheCapacity int `toml:"cache_capacity"`
	PopupLimit    int `toml:"popup_limit"`
	AssistLimit   int `toml:"assist_limit"`

	// Extra candidates appended to the built-in tables.
	Tags       []ExtraCandidate `toml:"tags"`
	Priorities []ExtraCandidate `toml:"priorities"`
	Assignees  []ExtraCandidate `toml:"assignees"`
}

// ExtraCandidate is one user-defined completion entry.
type ExtraCandidate struct {
	Value  string `toml:"value"`
	Label  string `toml:"label"`
	Detail string `toml:"detail"`
}

// EditorConfig tunes the interactive editor.
type EditorConfig struct {
	DebounceMs int `toml:"debounce_ms"`
}

// Default returns the configuration with everything unset, meaning all
// built-in defaults apply.
func Default() Config {
	return Config{}
}

// Find walks up from startDir to locate notemark.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load parses the config file at path.
func Load(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return cfg, nil
}

// Discover finds and loads the nearest config file, or returns the
// defaults when none exists.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Policy merges the check section onto the built-in validation policy.
func (c Config) Policy() validate.Policy {
	pol := validate.DefaultPolicy()
	if c.Check.PriorityPrefixTolerance > 0 {
		pol.PriorityPrefixTolerance = c.Check.PriorityPrefixTolerance
	}
	if c.Check.AssigneePartialTolerance > 0 {
		pol.AssigneePartialTolerance = c.Check.AssigneePartialTolerance
	}
	if c.Check.TagMaxLen > 0 {
		pol.TagMaxLen = c.Check.TagMaxLen
	}
	if c.Check.AssigneeMaxLen > 0 {
		pol.AssigneeMaxLen = c.Check.AssigneeMaxLen
	}
	if c.Check.MinIncompleteTag > 0 {
		pol.MinIncompleteTag = c.Check.MinIncompleteTag
	}
	if c.Check.MinIncompleteColor > 0 {
		pol.MinIncompleteColor = c.Check.MinIncompleteColor
	}
	if c.Check.MinIncompleteSigil > 0 {
		pol.MinIncompleteSigil = c.Check.MinIncompleteSigil
	}
	if c.Check.MaxDiagnostics > 0 {
		pol.MaxDiagnostics = c.Check.MaxDiagnostics
	}
	return pol
}

// SourceOptions translates the complete section into Source options.
func (c Config) SourceOptions() []complete.SourceOption {
	opts := make([]complete.SourceOption, 0, 4)
	if c.Complete.CacheCapacity > 0 {
		opts = append(opts, complete.WithCacheCapacity(c.Complete.CacheCapacity))
	}
	if c.Complete.PopupLimit > 0 || c.Complete.AssistLimit > 0 {
		opts = append(opts, complete.WithLimits(c.Complete.PopupLimit, c.Complete.AssistLimit))
	}
	for kind, extras := range map[marker.Kind][]ExtraCandidate{
		marker.KindTag:      c.Complete.Tags,
		marker.KindPriority: c.Complete.Priorities,
		marker.KindAssignee: c.Complete.Assignees,
	} {
		if len(extras) == 0 {
			continue
		}
		cands := make([]marker.Candidate, 0, len(extras))
		for _, e := range extras {
			if e.Value == "" {
				continue
			}
			label := e.Label
			if label == "" {
				label = e.Value
			}
			cands = append(cands, marker.Candidate{
				Value:  e.Value,
				Label:  label,
				Detail: e.Detail,
			})
		}
		if len(cands) > 0 {
			opts = append(opts, complete.WithExtraCandidates(kind, cands))
		}
	}
	return opts
}

// DebounceMs returns the tooltip debounce interval in milliseconds.
func (c Config) DebounceMs() int {
	if c.Editor.DebounceMs > 0 {
		return c.Editor.DebounceMs
	}
	return 300
}
