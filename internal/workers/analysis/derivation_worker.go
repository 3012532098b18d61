package analysis

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"athena/internal/domain/bars"
	"athena/internal/indicator"
	"athena/internal/metrics"
	"athena/internal/pattern"
	"athena/internal/workers"
	"athena/pkg/errors"
)

// DerivationWorker periodically recomputes the derived indicator frame and
// the pattern signal set for every configured instrument and persists both.
type DerivationWorker struct {
	*workers.BaseWorker

	barRepo      bars.Repository
	indicators   bars.IndicatorStore
	patterns     bars.PatternStore
	pipeline     *indicator.Pipeline
	catalog      pattern.Catalog
	symbols      []string
	outputWindow int
	historyLimit int
	concurrency  int
}

// NewDerivationWorker creates the derivation worker
func NewDerivationWorker(
	barRepo bars.Repository,
	indicators bars.IndicatorStore,
	patterns bars.PatternStore,
	symbols []string,
	outputWindow int,
	historyLimit int,
	concurrency int,
	interval time.Duration,
	enabled bool,
) *DerivationWorker {
	if concurrency < 1 {
		concurrency = 1
	}
	return &DerivationWorker{
		BaseWorker:   workers.NewBaseWorker("derivation", interval, enabled),
		barRepo:      barRepo,
		indicators:   indicators,
		patterns:     patterns,
		pipeline:     indicator.Default(),
		catalog:      pattern.DefaultCatalog(),
		symbols:      symbols,
		outputWindow: outputWindow,
		historyLimit: historyLimit,
		concurrency:  concurrency,
	}
}

// Run executes one derivation pass over all configured instruments
func (w *DerivationWorker) Run(ctx context.Context) error {
	runID := uuid.New().String()
	start := time.Now()

	w.Log().Infow("Derivation pass starting",
		"run_id", runID,
		"symbols", len(w.symbols),
		"output_window", w.outputWindow,
	)

	var rowsWritten, failed int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(w.concurrency)

	for _, symbol := range w.symbols {
		symbol := symbol
		g.Go(func() error {
			n, err := w.deriveSymbol(gctx, runID, symbol)
			if err != nil {
				atomic.AddInt64(&failed, 1)
				w.Log().Errorw("Symbol derivation failed",
					"run_id", runID,
					"symbol", symbol,
					"error", err,
				)
				// One broken instrument must not abort the pass.
				return nil
			}
			atomic.AddInt64(&rowsWritten, int64(n))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return errors.Wrap(err, "derivation pass aborted")
	}

	w.Log().Infow("Derivation pass complete",
		"run_id", runID,
		"rows_written", rowsWritten,
		"symbols_failed", failed,
		"duration", time.Since(start),
	)

	if failed == int64(len(w.symbols)) && len(w.symbols) > 0 {
		return errors.Wrapf(errors.ErrInternal, "all %d symbols failed", len(w.symbols))
	}
	return nil
}

// deriveSymbol computes and persists the indicator frame and the pattern
// signals for one instrument. Returns the number of indicator rows written.
func (w *DerivationWorker) deriveSymbol(ctx context.Context, runID, symbol string) (int, error) {
	series, err := w.barRepo.GetDaily(ctx, symbol, w.historyLimit)
	if err != nil {
		return 0, errors.Wrap(err, "fetch daily bars")
	}
	if len(series) == 0 {
		w.Log().Debugw("No bars for symbol, skipping", "run_id", runID, "symbol", symbol)
		return 0, nil
	}

	opts := indicator.Options{OutputWindow: w.outputWindow}

	frame, err := w.pipeline.Compute(series, opts)
	if err != nil {
		metrics.FramesComputed.WithLabelValues("error").Inc()
		return 0, errors.Wrap(err, "compute indicator frame")
	}
	metrics.FramesComputed.WithLabelValues("success").Inc()

	fields := indicator.DefaultColumns
	rows := make([]bars.IndicatorRow, frame.Len())
	for i := range rows {
		rows[i] = bars.IndicatorRow{
			Code:    symbol,
			Date:    frame.Bars[i].Date,
			Columns: fields,
			Values:  frame.Row(i, fields),
		}
	}
	if err := w.indicators.InsertIndicatorRows(ctx, rows); err != nil {
		return 0, errors.Wrap(err, "persist indicator rows")
	}
	metrics.FrameRowsWritten.Add(float64(len(rows)))

	if err := w.derivePatterns(ctx, runID, symbol, series); err != nil {
		// Pattern failures do not invalidate the indicator rows already
		// written; surface them in the log and move on.
		w.Log().Warnw("Pattern derivation failed",
			"run_id", runID,
			"symbol", symbol,
			"error", err,
		)
	}

	return len(rows), nil
}

func (w *DerivationWorker) derivePatterns(ctx context.Context, runID, symbol string, series []bars.Bar) error {
	opts := indicator.Options{OutputWindow: w.outputWindow}

	result, err := pattern.Compute(series, w.catalog, opts)
	if err != nil {
		metrics.PatternRunsComputed.WithLabelValues("error").Inc()
		return errors.Wrap(err, "compute pattern signals")
	}
	metrics.PatternRunsComputed.WithLabelValues("success").Inc()

	for _, name := range result.Failed() {
		metrics.ClassifierFailures.WithLabelValues(name).Inc()
	}

	columns := w.catalog.Names()
	rows := make([]bars.PatternRow, len(result.Bars))
	for i := range rows {
		rows[i] = result.Row(i, symbol, columns)
	}
	if err := w.patterns.InsertPatternRows(ctx, rows); err != nil {
		return errors.Wrap(err, "persist pattern rows")
	}

	w.Log().Debugw("Patterns derived",
		"run_id", runID,
		"symbol", symbol,
		"rows", len(rows),
		"failed_classifiers", len(result.Failed()),
	)
	return nil
}
