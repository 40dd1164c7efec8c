package complete

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notemark/internal/marker"
)

func values(cands []marker.Candidate) []string {
	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.Value
	}
	return out
}

func TestRankEmptyQueryKeepsCategoryOrder(t *testing.T) {
	ranked := rank(marker.Candidates(marker.KindDate), "")

	require.NotEmpty(t, ranked)
	// Quick entries first, then weekdays, then relative words.
	assert.Equal(t, "Quick", ranked[0].Category)
	lastRank := 0
	for _, c := range ranked {
		r := marker.CategoryRank(c.Category)
		assert.GreaterOrEqual(t, r, lastRank, "category order broken at %q", c.Value)
		lastRank = r
	}
}

func TestRankPrefixBeatsSubstring(t *testing.T) {
	cands := []marker.Candidate{
		{Value: "weekend", Label: "weekend"},
		{Value: "endive", Label: "endive"},
	}
	ranked := rank(cands, "end")

	require.Len(t, ranked, 2)
	// "endive" starts with the query; "weekend" only contains it.
	assert.Equal(t, []string{"endive", "weekend"}, values(ranked))
}

func TestRankSubstringBeatsSubsequence(t *testing.T) {
	cands := []marker.Candidate{
		{Value: "abcdef", Label: "abcdef"}, // "ace" only as a scattered subsequence
		{Value: "face", Label: "face"},     // contains "ace" outright
	}
	ranked := rank(cands, "ace")

	require.Len(t, ranked, 2)
	assert.Equal(t, []string{"face", "abcdef"}, values(ranked))
}

func TestRankFiltersNonMatches(t *testing.T) {
	ranked := rank(marker.Candidates(marker.KindDate), "xyz")
	assert.Empty(t, ranked)
}

func TestRankCaseInsensitive(t *testing.T) {
	ranked := rank(marker.Candidates(marker.KindDate), "TOM")

	require.NotEmpty(t, ranked)
	assert.Equal(t, "tomorrow", ranked[0].Value)
}

func TestRankMatchesLabels(t *testing.T) {
	// Color candidates carry hex values but human labels; the query
	// "red" matches the label.
	ranked := rank(marker.Candidates(marker.KindColor), "red")

	require.NotEmpty(t, ranked)
	assert.Equal(t, "#ff0000", ranked[0].Value)
}

func TestSubsequenceSpread(t *testing.T) {
	spread, ok := subsequenceSpread("monday", "mnd")
	require.True(t, ok)
	assert.Equal(t, 1, spread) // m-o-n-d spans 4 characters, query is 3

	_, ok = subsequenceSpread("monday", "dm")
	assert.False(t, ok, "out-of-order query must not match")
}
