package complete

import (
	"go.uber.org/zap"

	"notemark/internal/marker"
)

// Limits for the two presentation surfaces.
const (
	// PopupLimit feeds the editor's native completion popup.
	PopupLimit = 10
	// AssistLimit feeds the floating assistant panel.
	AssistLimit = 8
)

// Source serves ranked completion candidates for the marker under the
// cursor. It owns the bounded cache; validators never touch it. Any
// internal failure surfaces as "no completions", never an error.
type Source struct {
	cache       *Cache
	log         *zap.Logger
	popupLimit  int
	assistLimit int
	extra       map[marker.Kind][]marker.Candidate
}

// SourceOption configures a Source.
type SourceOption func(*Source)

// WithCacheCapacity overrides the cache bound.
func WithCacheCapacity(n int) SourceOption {
	return func(s *Source) { s.cache = NewCache(n) }
}

// WithSourceLogger supplies the boundary logger for recovered faults.
func WithSourceLogger(log *zap.Logger) SourceOption {
	return func(s *Source) {
		if log != nil {
			s.log = log
		}
	}
}

// WithLimits overrides the per-surface result limits.
func WithLimits(popup, assist int) SourceOption {
	return func(s *Source) {
		if popup > 0 {
			s.popupLimit = popup
		}
		if assist > 0 {
			s.assistLimit = assist
		}
	}
}

// WithExtraCandidates appends user-configured candidates (from the
// config file) to a kind's static table.
func WithExtraCandidates(kind marker.Kind, cands []marker.Candidate) SourceOption {
	return func(s *Source) {
		s.extra[kind] = append(s.extra[kind], cands...)
	}
}

func NewSource(opts ...SourceOption) *Source {
	s := &Source{
		cache:       NewCache(DefaultCacheCapacity),
		log:         zap.NewNop(),
		popupLimit:  PopupLimit,
		assistLimit: AssistLimit,
		extra:       make(map[marker.Kind][]marker.Candidate),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// At returns up to PopupLimit candidates for the cursor position.
func (s *Source) At(content string, cursor int) []marker.Candidate {
	return s.lookup(content, cursor, s.popupLimit)
}

// Assist returns up to AssistLimit candidates for the cursor position.
func (s *Source) Assist(content string, cursor int) []marker.Candidate {
	return s.lookup(content, cursor, s.assistLimit)
}

// ClearCache drops every memoized result.
func (s *Source) ClearCache() {
	s.cache.Clear()
}

// CacheLen reports how many results are memoized.
func (s *Source) CacheLen() int {
	return s.cache.Len()
}

func (s *Source) lookup(content string, cursor, limit int) (out []marker.Candidate) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("completion lookup failed", zap.Any("panic", r))
			out = nil
		}
	}()

	ctx, ok := ContextAt(content, cursor)
	if !ok {
		return nil
	}

	ranked, hit := s.cache.Get(ctx.Kind, ctx.Query, ctx.Anchor)
	if !hit {
		ranked = rank(s.table(ctx.Kind), ctx.Query)
		s.cache.Put(ctx.Kind, ctx.Query, ctx.Anchor, ranked)
	}

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func (s *Source) table(kind marker.Kind) []marker.Candidate {
	base := marker.Candidates(kind)
	extra := s.extra[kind]
	if len(extra) == 0 {
		return base
	}
	merged := make([]marker.Candidate, 0, len(base)+len(extra))
	merged = append(merged, base...)
	merged = append(merged, extra...)
	return merged
}
