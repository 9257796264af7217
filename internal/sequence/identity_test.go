package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_String(t *testing.T) {
	assert.Equal(t, "pre_load.my_loader", ID{Theme: "pre_load", Name: "my_loader"}.String())
	assert.Equal(t, "HEAD", Head.String())
	assert.Equal(t, "TAIL", Tail.String())
}

func TestID_Sentinels(t *testing.T) {
	assert.True(t, Head.IsSentinel())
	assert.True(t, Tail.IsSentinel())
	assert.False(t, ID{Theme: "pre_load", Name: "HEAD"}.IsSentinel(), "a themed plugin named HEAD is not the sentinel")
}

func TestID_KeyDistinguishesDottedThemeLabels(t *testing.T) {
	// Host-supplied theme labels may contain dots; the key must not merge
	// identities whose rendered forms happen to coincide.
	a := ID{Theme: "site.blog", Name: "loader"}
	b := ID{Theme: "site", Name: "blog.loader"}
	assert.Equal(t, a.String(), b.String())
	assert.NotEqual(t, a.Key(), b.Key())
}

func TestID_KeyComparesLikeTheTuple(t *testing.T) {
	// A theme that is a prefix of another must sort entirely before it,
	// exactly as tuple comparison would.
	shorter := ID{Theme: "pre", Name: "z"}
	longer := ID{Theme: "pre_load", Name: "a"}
	assert.Less(t, shorter.Key(), longer.Key())
}

func TestSequence_DottedHostThemeLabel(t *testing.T) {
	r := New()
	r.Analyze("site.blog", "a << b")

	order, err := r.Sequence()
	require.NoError(t, err)
	assert.Equal(t, []ID{
		{Theme: "site.blog", Name: "a"},
		{Theme: "site.blog", Name: "b"},
	}, order)
}
