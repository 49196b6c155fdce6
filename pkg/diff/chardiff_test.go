package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharsRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
	}{
		{"classic edit distance pair", "kitten", "sitting"},
		{"prefix change", "timeout=30", "timeout=45"},
		{"complete replacement", "alpha", "omega"},
		{"empty to value", "", "created"},
		{"value to empty", "deleted", ""},
		{"both empty", "", ""},
		{"identical", "same", "same"},
		{"unicode", "naïve café", "naive cafe"},
		{"multiline", "a\nb\nc", "a\nB\nc"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for _, cleanup := range []bool{false, true} {
				segs := Chars(tc.a, tc.b, cleanup)
				assert.Equal(t, tc.a, SideA(segs), "A-side reconstruction (cleanup=%v)", cleanup)
				assert.Equal(t, tc.b, SideB(segs), "B-side reconstruction (cleanup=%v)", cleanup)
			}
		})
	}
}

func TestCharsIdenticalInputsSingleEqualSegment(t *testing.T) {
	segs := Chars("unchanged", "unchanged", false)

	require.Len(t, segs, 1)
	assert.Equal(t, SegmentEqual, segs[0].Type)
	assert.Equal(t, "unchanged", segs[0].Value)
}

func TestCharsNoEmptySegments(t *testing.T) {
	segs := Chars("", "added", false)

	require.Len(t, segs, 1)
	assert.Equal(t, SegmentInsert, segs[0].Type)
	for _, s := range segs {
		assert.NotEmpty(t, s.Value)
	}
}

func TestCharsSegmentTypesCoverEdit(t *testing.T) {
	segs := Chars("config=old", "config=new", true)

	var sawEqual, sawDelete, sawInsert bool
	for _, s := range segs {
		switch s.Type {
		case SegmentEqual:
			sawEqual = true
		case SegmentDelete:
			sawDelete = true
		case SegmentInsert:
			sawInsert = true
		}
	}
	assert.True(t, sawEqual)
	assert.True(t, sawDelete)
	assert.True(t, sawInsert)
}
