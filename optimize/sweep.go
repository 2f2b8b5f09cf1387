// Package optimize runs a strategy across a Cartesian grid of its
// parameters, sequentially or over a bounded worker pool, and ranks or
// pivots the resulting metric table. Every combination is independent:
// workers never share mutable state, and a failed or timed-out
// combination is dropped rather than aborting the sweep.
package optimize

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kieranhollis/quantcore/backtest"
	"github.com/kieranhollis/quantcore/strategy"
	"github.com/kieranhollis/quantcore/table"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

var validate = validator.New()

// Config configures a sweep. Zero values select the documented defaults:
// PriceCol "close", Concurrency runtime.NumCPU(), Timeout 30s. Backtest is
// left unvalidated here: it keeps its own zero-as-default lifecycle,
// applied when backtest.Run actually defaults and validates it.
type Config struct {
	PriceCol         string          `validate:"required"`
	Backtest         backtest.Config `validate:"-"`
	Concurrency      int             `validate:"gt=0"`
	Timeout          time.Duration   `validate:"gt=0"`
	ProgressCallback func(percent int)
}

func (c Config) withDefaults() (Config, error) {
	if c.PriceCol == "" {
		c.PriceCol = "close"
	}
	if c.Concurrency <= 0 {
		c.Concurrency = runtime.NumCPU()
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	if err := validate.Struct(c); err != nil {
		return Config{}, invalidConfigError(err)
	}
	return c, nil
}

// buildStrategy maps a grid combination's named float64 parameters onto
// the strategy constructor for kind. Composite has no flat parameter set
// of its own (its parameters are its children), so it isn't grid-sweepable.
func buildStrategy(kind strategy.Kind, priceCol string, params map[string]float64) (strategy.Strategy, error) {
	switch kind {
	case strategy.KindSmaCross:
		return strategy.SmaCross(int(params["fast"]), int(params["slow"]), priceCol), nil
	case strategy.KindEmaCross:
		return strategy.EmaCross(int(params["fast"]), int(params["slow"]), priceCol), nil
	case strategy.KindMacdCross:
		return strategy.MacdCross(int(params["fast"]), int(params["slow"]), int(params["signal"]), priceCol), nil
	case strategy.KindRsiThreshold:
		return strategy.RsiThreshold(int(params["period"]), params["oversold"], params["overbought"], priceCol), nil
	default:
		return strategy.Strategy{}, unsupportedGridKindError(string(kind))
	}
}

// metricColumns is the fixed set of metric fields runCombination adds to
// every result row, in the order they appear in a result Table.
var metricColumns = []string{
	"total_return", "annualized_return", "sharpe_ratio", "sortino_ratio",
	"calmar_ratio", "max_drawdown", "win_rate", "trade_count", "volatility",
}

func runCombination(t *table.Table, kind strategy.Kind, priceCol string, params map[string]float64, btCfg backtest.Config) (map[string]float64, error) {
	strat, err := buildStrategy(kind, priceCol, params)
	if err != nil {
		return nil, err
	}
	sig, err := strategy.GenerateSignals(t, strat)
	if err != nil {
		return nil, err
	}
	ran, err := backtest.Run(sig.Table, btCfg)
	if err != nil {
		return nil, err
	}
	m, err := backtest.ExtractMetrics(ran)
	if err != nil {
		return nil, err
	}

	row := make(map[string]float64, len(params)+9)
	for name, v := range params {
		row[name] = v
	}
	row["total_return"] = m.TotalReturn
	row["annualized_return"] = m.AnnualizedReturn
	row["sharpe_ratio"] = m.SharpeRatio
	row["sortino_ratio"] = m.SortinoRatio
	row["calmar_ratio"] = m.CalmarRatio
	row["max_drawdown"] = m.MaxDrawdown
	row["win_rate"] = m.WinRate
	row["trade_count"] = float64(m.TradeCount)
	row["volatility"] = m.Volatility
	return row, nil
}

// RunCombinations sweeps every combination in grid sequentially, in
// dispatch order, and collects one result row per combination that
// succeeded into a result Table. A combination that fails (bad params,
// insufficient rows for its window) is logged and dropped, not propagated.
func RunCombinations(t *table.Table, kind strategy.Kind, grid Grid, cfg Config) (*table.Table, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}
	combos := grid.Combinations()
	log.Info().
		Int("combinations", len(combos)).
		Str("strategy_kind", string(kind)).
		Msg("starting sequential parameter sweep")

	rows := make([]map[string]float64, 0, len(combos))
	for _, params := range combos {
		row, err := runCombination(t, kind, cfg.PriceCol, params, cfg.Backtest)
		if err != nil {
			log.Warn().Err(err).Interface("params", params).Msg("dropping failed parameter combination")
			continue
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, ErrNoValidResults
	}
	return resultTable(grid.Names, rows)
}

// runCombinationWithTimeout races runCombination against ctx's deadline.
// Go has no preemptive cancellation, so a combination already inside a
// long-running computation keeps running in its goroutine after the
// timeout fires — the sweep simply stops waiting on it and moves on.
func runCombinationWithTimeout(ctx context.Context, t *table.Table, kind strategy.Kind, priceCol string, params map[string]float64, btCfg backtest.Config, timeout time.Duration) (map[string]float64, error) {
	taskCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type outcome struct {
		row map[string]float64
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		row, err := runCombination(t, kind, priceCol, params, btCfg)
		done <- outcome{row, err}
	}()

	select {
	case <-taskCtx.Done():
		return nil, taskCtx.Err()
	case res := <-done:
		return res.row, res.err
	}
}

// RunCombinationsParallel sweeps grid over a bounded worker pool. Result
// rows preserve dispatch order regardless of completion order. A
// combination that times out or fails yields no row. The progress
// callback, when set, is invoked from a single dedicated goroutine so
// calls are always serialized even though workers complete concurrently.
func RunCombinationsParallel(ctx context.Context, t *table.Table, kind strategy.Kind, grid Grid, cfg Config) (*table.Table, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}
	combos := grid.Combinations()
	total := len(combos)
	log.Info().
		Int("combinations", total).
		Int("concurrency", cfg.Concurrency).
		Str("strategy_kind", string(kind)).
		Msg("starting parallel parameter sweep")

	rows := make([]map[string]float64, total)
	completions := make(chan struct{}, total)

	var progressWG sync.WaitGroup
	if cfg.ProgressCallback != nil && total > 0 {
		progressWG.Add(1)
		go func() {
			defer progressWG.Done()
			completed := 0
			for range completions {
				completed++
				cfg.ProgressCallback(clampPercent(100 * float64(completed) / float64(total)))
			}
		}()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Concurrency)

	for i, params := range combos {
		i, params := i, params
		g.Go(func() error {
			defer func() { completions <- struct{}{} }()
			row, err := runCombinationWithTimeout(gctx, t, kind, cfg.PriceCol, params, cfg.Backtest, cfg.Timeout)
			if err != nil {
				log.Warn().Err(err).Interface("params", params).Msg("dropping failed or timed-out parameter combination")
				return nil
			}
			rows[i] = row
			return nil
		})
	}
	_ = g.Wait()
	close(completions)
	progressWG.Wait()

	kept := make([]map[string]float64, 0, total)
	for _, row := range rows {
		if row != nil {
			kept = append(kept, row)
		}
	}
	if len(kept) == 0 {
		return nil, ErrNoValidResults
	}
	return resultTable(grid.Names, kept)
}

// resultTable builds the sweep's output Table with a deterministic column
// schema: grid.Names in dispatch order, followed by the fixed metric
// columns every runCombination row carries. table.FromRows alone would
// derive column order from Go's randomized map iteration order, so the
// schema is built explicitly instead.
func resultTable(paramNames []string, rows []map[string]float64) (*table.Table, error) {
	order := make([]string, 0, len(paramNames)+len(metricColumns))
	order = append(order, paramNames...)
	order = append(order, metricColumns...)

	data := make(map[string][]float64, len(order))
	for _, name := range order {
		data[name] = make([]float64, len(rows))
	}
	for i, row := range rows {
		for _, name := range order {
			data[name][i] = row[name]
		}
	}
	return table.New(order, data)
}
