package compare

import (
	"go.uber.org/zap"

	"github.com/confdiff-inc/confdiff-engine/pkg/jsonutil"
	"github.com/confdiff-inc/confdiff-engine/pkg/logging"
	"github.com/confdiff-inc/confdiff-engine/pkg/tabular"
)

// maxDebugRows caps how many differing rows get per-field debug logging.
const maxDebugRows = 10

// CompareService runs dataset comparisons with structured logging around the
// pure engine. Callers that need no logging can call Compare directly.
type CompareService interface {
	Compare(a, b *tabular.Dataset, opts Options) (*Result, error)
}

type compareService struct {
	logger *zap.Logger
}

// NewCompareService creates a CompareService. A nil logger disables logging.
func NewCompareService(logger *zap.Logger) CompareService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &compareService{logger: logger}
}

var _ CompareService = (*compareService)(nil)

func (s *compareService) Compare(a, b *tabular.Dataset, opts Options) (*Result, error) {
	s.logger.Info("Starting comparison",
		zap.String("source_a", datasetName(a)),
		zap.String("source_b", datasetName(b)),
		zap.Int("rows_a", a.Len()),
		zap.Int("rows_b", b.Len()),
		zap.Strings("key_columns", opts.KeyColumns),
		zap.String("match_mode", string(opts.MatchMode)),
		zap.Bool("normalize", opts.Normalize),
	)

	result, err := Compare(a, b, opts)
	if err != nil {
		s.logger.Error("Comparison rejected", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Comparison complete",
		zap.String("run_id", result.RunID.String()),
		zap.Int("total", result.Summary.Total),
		zap.Int("matches", result.Summary.Matches),
		zap.Int("differs", result.Summary.Differs),
		zap.Int("only_in_a", result.Summary.OnlyInA),
		zap.Int("only_in_b", result.Summary.OnlyInB),
	)

	if s.logger.Core().Enabled(zap.DebugLevel) {
		s.logDifferingRows(result)
	}

	return result, nil
}

// logDifferingRows logs a truncated sample of field-level differences.
func (s *compareService) logDifferingRows(result *Result) {
	logged := 0
	for _, row := range result.Rows {
		if row.Status != StatusDiffer {
			continue
		}
		if logged >= maxDebugRows {
			return
		}
		logged++

		for _, field := range row.Differences {
			s.logger.Debug("Field differs",
				zap.Any("key", row.Key.Values),
				zap.String("field", field),
				zap.String("value_a", logging.TruncateValue(jsonutil.Stringify(row.DataA[field]))),
				zap.String("value_b", logging.TruncateValue(jsonutil.Stringify(row.DataB[field]))),
			)
		}
	}
}

func datasetName(d *tabular.Dataset) string {
	if d == nil {
		return ""
	}
	return d.Name
}
