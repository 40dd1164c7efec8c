package complete

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notemark/internal/marker"
)

func TestContextAtDetectsKinds(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		kind  marker.Kind
		query string
	}{
		{"tag open", "note [gro", marker.KindTag, "gro"},
		{"tag empty query", "note [", marker.KindTag, ""},
		{"date", "due @tom", marker.KindDate, "tom"},
		{"assignee", "ping +al", marker.KindAssignee, "al"},
		{"priority", "prio #hi", marker.KindPriority, "hi"},
		{"color bare", "color:", marker.KindColor, ""},
		{"color hash", "color:#", marker.KindColor, "#"},
		{"color partial hex", "color:#ff", marker.KindColor, "#ff"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, ok := ContextAt(tt.text, len(tt.text))
			require.True(t, ok, "expected a completion context")
			assert.Equal(t, tt.kind, ctx.Kind)
			assert.Equal(t, tt.query, ctx.Query)
		})
	}
}

func TestContextAtNoContext(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"plain text", "nothing here"},
		{"empty buffer", ""},
		{"sigil on word byte", "+alice@ex"},
		{"hash inside word", "c#sh"},
		{"closed marker", "done [x] "},
		{"after whitespace", "note @tomorrow "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := ContextAt(tt.text, len(tt.text))
			assert.False(t, ok)
		})
	}
}

func TestContextAtMidBuffer(t *testing.T) {
	// The cursor sits right after "@fr"; the rest of the line is
	// irrelevant.
	text := "due @fr and more"
	ctx, ok := ContextAt(text, 7)
	require.True(t, ok)
	assert.Equal(t, marker.KindDate, ctx.Kind)
	assert.Equal(t, "fr", ctx.Query)
	assert.Equal(t, uint32(5), ctx.Anchor.Start)
	assert.Equal(t, uint32(7), ctx.Anchor.End)
}

func TestContextAtBounds(t *testing.T) {
	_, ok := ContextAt("note", -1)
	assert.False(t, ok)
	_, ok = ContextAt("note", 99)
	assert.False(t, ok)
}
