package compare

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/confdiff-inc/confdiff-engine/pkg/apperrors"
	"github.com/confdiff-inc/confdiff-engine/pkg/tabular"
)

func TestCompareRejectsByKeyWithoutKeyColumns(t *testing.T) {
	a := datasetFromRows(t, "a", []string{"id"}, tabular.Record{"id": 1})
	b := datasetFromRows(t, "b", []string{"id"}, tabular.Record{"id": 1})

	result, err := Compare(a, b, Options{MatchMode: MatchByKey})

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConfiguration))
	assert.Nil(t, result)
}

func TestCompareRejectsUnknownMode(t *testing.T) {
	_, err := Compare(nil, nil, Options{MatchMode: "fuzzy"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConfiguration))
}

func TestCompareRejectsEmptyFieldSelection(t *testing.T) {
	_, err := Compare(nil, nil, Options{Fields: []string{}})

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConfiguration))
}

func TestCompareEmptyDatasets(t *testing.T) {
	result, err := Compare(tabular.New("a"), tabular.New("b"), Options{MatchMode: MatchByPosition})

	require.NoError(t, err)
	assert.Empty(t, result.Rows)
	assert.Equal(t, Summary{}, result.Summary)
}

func TestCompareNilDatasetsTreatedAsEmpty(t *testing.T) {
	result, err := Compare(nil, nil, Options{KeyColumns: []string{"id"}})

	require.NoError(t, err)
	assert.Empty(t, result.Rows)
	assert.Equal(t, 0, result.Summary.Total)
}

func TestCompareSummaryInvariant(t *testing.T) {
	a := datasetFromRows(t, "a", []string{"id", "val"},
		tabular.Record{"id": 1, "val": "x"},
		tabular.Record{"id": 2, "val": "y"},
		tabular.Record{"id": 3, "val": "z"},
	)
	b := datasetFromRows(t, "b", []string{"id", "val"},
		tabular.Record{"id": 2, "val": "y"},
		tabular.Record{"id": 3, "val": "changed"},
		tabular.Record{"id": 4, "val": "w"},
	)

	result, err := Compare(a, b, Options{KeyColumns: []string{"id"}})
	require.NoError(t, err)

	s := result.Summary
	assert.Equal(t, len(result.Rows), s.Total)
	assert.Equal(t, s.Total, s.Matches+s.Differs+s.OnlyInA+s.OnlyInB)
	assert.Equal(t, 1, s.Matches)
	assert.Equal(t, 1, s.Differs)
	assert.Equal(t, 1, s.OnlyInA)
	assert.Equal(t, 1, s.OnlyInB)

	// Every row carries exactly one status with the right data sides.
	for _, row := range result.Rows {
		switch row.Status {
		case StatusMatch:
			assert.Empty(t, row.Differences)
		case StatusDiffer:
			assert.NotEmpty(t, row.Differences)
			assert.NotNil(t, row.DataA)
			assert.NotNil(t, row.DataB)
		case StatusOnlyInA:
			assert.Nil(t, row.DataB)
		case StatusOnlyInB:
			assert.Nil(t, row.DataA)
		default:
			t.Fatalf("unexpected status %q", row.Status)
		}
	}
}

func TestCompareDeterministic(t *testing.T) {
	a := datasetFromRows(t, "a", []string{"id", "val", "note"},
		tabular.Record{"id": 1, "val": "x", "note": "keep"},
		tabular.Record{"id": 2, "val": "y"},
		tabular.Record{"id": 5, "val": "only"},
	)
	b := datasetFromRows(t, "b", []string{"id", "val", "note"},
		tabular.Record{"id": 2, "val": "y2", "note": "added"},
		tabular.Record{"id": 1, "val": "x", "note": "keep"},
		tabular.Record{"id": 9, "val": "orphan"},
	)
	opts := Options{KeyColumns: []string{"id"}, Normalize: true, SemanticCleanup: true}

	first, err := Compare(a, b, opts)
	require.NoError(t, err)
	second, err := Compare(a, b, opts)
	require.NoError(t, err)

	// Run metadata differs per invocation; the ordered row output and
	// summary must be byte-identical.
	firstJSON, err := json.Marshal(first.Rows)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second.Rows)
	require.NoError(t, err)
	assert.Equal(t, string(firstJSON), string(secondJSON))

	if diff := cmp.Diff(first.Summary, second.Summary); diff != "" {
		t.Errorf("summary mismatch (-first +second):\n%s", diff)
	}
}

func TestCompareFieldSelectionLimitsOutput(t *testing.T) {
	a := datasetFromRows(t, "a", []string{"id", "val", "noise"},
		tabular.Record{"id": 1, "val": "x", "noise": "a"},
	)
	b := datasetFromRows(t, "b", []string{"id", "val", "noise"},
		tabular.Record{"id": 1, "val": "x", "noise": "b"},
	)

	result, err := Compare(a, b, Options{KeyColumns: []string{"id"}, Fields: []string{"id", "val"}})
	require.NoError(t, err)

	require.Len(t, result.Rows, 1)
	assert.Equal(t, StatusMatch, result.Rows[0].Status)
	assert.Equal(t, []string{"id", "val"}, result.Fields)
}

func TestCompareDefaultFieldsAreColumnUnion(t *testing.T) {
	a := datasetFromRows(t, "a", []string{"id", "alpha"}, tabular.Record{"id": 1, "alpha": "x"})
	b := datasetFromRows(t, "b", []string{"id", "beta"}, tabular.Record{"id": 1, "beta": "y"})

	result, err := Compare(a, b, Options{KeyColumns: []string{"id"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "alpha", "beta"}, result.Fields)
	require.Len(t, result.Rows, 1)
	assert.ElementsMatch(t, []string{"alpha", "beta"}, result.Rows[0].Differences)
}

func TestCompareDoesNotMutateInputs(t *testing.T) {
	recA := tabular.Record{"id": 1, "name": "  Foo  "}
	recB := tabular.Record{"id": 1, "name": "foo"}
	a := datasetFromRows(t, "a", []string{"id", "name"}, recA)
	b := datasetFromRows(t, "b", []string{"id", "name"}, recB)

	result, err := Compare(a, b, Options{KeyColumns: []string{"id"}, Normalize: true})
	require.NoError(t, err)

	// Normalization affects only the equality decision; originals stay.
	assert.Equal(t, "  Foo  ", recA["name"])
	assert.Equal(t, "  Foo  ", result.Rows[0].DataA["name"])
	assert.Equal(t, StatusMatch, result.Rows[0].Status)
}

func TestCompareResultMetadata(t *testing.T) {
	a := datasetFromRows(t, "prod.config", []string{"id"}, tabular.Record{"id": 1})
	b := datasetFromRows(t, "stage.config", []string{"id"}, tabular.Record{"id": 1})

	result, err := Compare(a, b, Options{KeyColumns: []string{"id"}})
	require.NoError(t, err)

	assert.Equal(t, "prod.config", result.SourceA)
	assert.Equal(t, "stage.config", result.SourceB)
	assert.Equal(t, MatchByKey, result.MatchMode)
	assert.Equal(t, []string{"id"}, result.KeyColumns)
	assert.False(t, result.Timestamp.IsZero())
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", result.RunID.String())
}

func TestCompareServiceDelegates(t *testing.T) {
	svc := NewCompareService(zaptest.NewLogger(t))

	a := datasetFromRows(t, "a", []string{"id", "val"}, tabular.Record{"id": 1, "val": "x"})
	b := datasetFromRows(t, "b", []string{"id", "val"}, tabular.Record{"id": 1, "val": "y"})

	result, err := svc.Compare(a, b, Options{KeyColumns: []string{"id"}})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Summary.Differs)

	_, err = svc.Compare(a, b, Options{MatchMode: MatchByKey})
	assert.True(t, errors.Is(err, apperrors.ErrConfiguration))
}
