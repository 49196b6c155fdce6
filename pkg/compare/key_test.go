package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/confdiff-inc/confdiff-engine/pkg/tabular"
)

func TestBuildKey(t *testing.T) {
	rec := tabular.Record{"region": "US", "id": 1, "val": "x"}

	key := buildKey(rec, []string{"region", "id"})

	assert.Equal(t, []string{"region", "id"}, key.Columns)
	assert.Equal(t, "US", key.Values["region"])
	assert.Equal(t, 1, key.Values["id"])
	assert.NotContains(t, key.Values, "val")
}

func TestBuildKeyMissingColumnYieldsNull(t *testing.T) {
	rec := tabular.Record{"id": 1}

	key := buildKey(rec, []string{"id", "region"})

	assert.Equal(t, []string{"id", "region"}, key.Columns)
	assert.Nil(t, key.Values["region"])
}

func TestPositionKey(t *testing.T) {
	key := positionKey(3)

	assert.Equal(t, []string{PositionColumn}, key.Columns)
	assert.Equal(t, 3, key.Values[PositionColumn])
}

func TestIndexStringCompositeComponents(t *testing.T) {
	a := tabular.Record{"region": "US", "id": 1}
	b := tabular.Record{"region": "US", "id": 1}
	c := tabular.Record{"region": "US", "id": 2}

	cols := []string{"region", "id"}
	assert.Equal(t, indexString(a, cols, false), indexString(b, cols, false))
	assert.NotEqual(t, indexString(a, cols, false), indexString(c, cols, false))
}

func TestIndexStringHonorsNormalizeOption(t *testing.T) {
	a := tabular.Record{"name": "  Foo  "}
	b := tabular.Record{"name": "foo"}

	cols := []string{"name"}
	assert.Equal(t, indexString(a, cols, true), indexString(b, cols, true))
	assert.NotEqual(t, indexString(a, cols, false), indexString(b, cols, false))
}

func TestIndexStringNoComponentCollision(t *testing.T) {
	cols := []string{"x", "y"}

	tests := []struct {
		name string
		a    tabular.Record
		b    tabular.Record
	}{
		{
			// ["ab","c"] and ["a","bc"] must build different composite keys.
			name: "shifted boundary",
			a:    tabular.Record{"x": "ab", "y": "c"},
			b:    tabular.Record{"x": "a", "y": "bc"},
		},
		{
			// Values containing the component separator byte must not
			// relocate the boundary between components.
			name: "embedded separator byte",
			a:    tabular.Record{"x": "a\x1fs:b", "y": "c"},
			b:    tabular.Record{"x": "a", "y": "b\x1fs:c"},
		},
		{
			// Same for the element separator inside nested arrays.
			name: "embedded element separator",
			a:    tabular.Record{"x": []any{"a\x1e", "b"}, "y": "c"},
			b:    tabular.Record{"x": []any{"a"}, "y": "\x1eb\x1ec"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.NotEqual(t, indexString(tc.a, cols, false), indexString(tc.b, cols, false))
		})
	}
}
