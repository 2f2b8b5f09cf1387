// Package backtest implements the sequential single-pass portfolio walk:
// given a table that already carries a signal column, it appends
// portfolio_value, position, trade_return, total_return, max_drawdown,
// win_rate, and trade_count, exactly as described by the backtest stub.
// Leverage, shorting, and partial fills are deliberately absent — a -1
// signal only ever closes an open long, it never opens a short.
package backtest

import (
	"math"

	"github.com/go-playground/validator/v10"
	"github.com/kieranhollis/quantcore/table"
	"github.com/rs/zerolog/log"
)

var validate = validator.New()

// Config configures a backtest run. Zero values select the documented
// defaults: InitialCapital 10_000.0, Commission 0.001, Slippage 0.0005,
// PriceCol "close". Validated after defaulting, so a negative Commission
// or Slippage is rejected rather than silently defaulted.
type Config struct {
	InitialCapital float64 `validate:"gt=0"`
	Commission     float64 `validate:"gte=0"`
	Slippage       float64 `validate:"gte=0"`
	PriceCol       string  `validate:"required"`
}

func (c Config) withDefaults() (Config, error) {
	if c.InitialCapital <= 0 {
		c.InitialCapital = 10_000.0
	}
	if c.Commission == 0 {
		c.Commission = 0.001
	}
	if c.Slippage == 0 {
		c.Slippage = 0.0005
	}
	if c.PriceCol == "" {
		c.PriceCol = "close"
	}
	if err := validate.Struct(c); err != nil {
		return Config{}, invalidConfigError(err)
	}
	return c, nil
}

// Run walks t row by row, executing the signal column against PriceCol,
// and returns t with the seven backtest columns appended. A signal
// transition into 1 from 0 or -1 opens a long sized at
// floor(cash/(price*(1+slippage))) units; a transition out of 1 into 0
// or -1 closes it. portfolio_value is cash plus the mark-to-market value
// of any open position; max_drawdown is the running peak-to-trough
// decline; win_rate and trade_count update on each closed trade and hold
// their value between trades.
func Run(t *table.Table, cfg Config) (*table.Table, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}

	if t.Rows() == 0 {
		return nil, ErrInsufficientData
	}
	signal, ok := t.Column("signal")
	if !ok {
		return nil, ErrMissingSignalColumn
	}
	price, ok := t.Column(cfg.PriceCol)
	if !ok {
		return nil, columnMissingError(cfg.PriceCol)
	}

	n := t.Rows()
	log.Info().
		Int("rows", n).
		Float64("initial_capital", cfg.InitialCapital).
		Str("price_col", cfg.PriceCol).
		Msg("starting backtest run")

	portfolioValue := make([]float64, n)
	position := make([]float64, n)
	tradeReturn := make([]float64, n)
	totalReturn := make([]float64, n)
	maxDrawdown := make([]float64, n)
	winRate := make([]float64, n)
	tradeCount := make([]float64, n)

	cash := cfg.InitialCapital
	units := 0.0
	entryPrice := 0.0
	prevSignal := 0.0
	peak := cfg.InitialCapital
	runningMaxDD := 0.0
	wins := 0
	trades := 0

	for i := 0; i < n; i++ {
		p := price[i]
		sig := signal[i]

		switch {
		case units == 0 && prevSignal != 1 && sig == 1:
			entryExec := p * (1 + cfg.Slippage)
			size := math.Floor(cash / entryExec)
			if size > 0 {
				commission := size * p * cfg.Commission
				cash -= size*entryExec + commission
				units = size
				entryPrice = p
			}
		case units > 0 && prevSignal == 1 && sig != 1:
			exitExec := p * (1 - cfg.Slippage)
			commission := units * p * cfg.Commission
			cash += units*exitExec - commission
			ret := (p-entryPrice)/entryPrice - 2*cfg.Commission - cfg.Slippage
			tradeReturn[i] = ret
			trades++
			if ret > 0 {
				wins++
			}
			units = 0
			entryPrice = 0
		}

		portfolioValue[i] = cash + units*p
		position[i] = units
		if portfolioValue[i] > peak {
			peak = portfolioValue[i]
		}
		if peak > 0 {
			if dd := (peak - portfolioValue[i]) / peak; dd > runningMaxDD {
				runningMaxDD = dd
			}
		}
		maxDrawdown[i] = runningMaxDD
		totalReturn[i] = (portfolioValue[i] - cfg.InitialCapital) / cfg.InitialCapital
		if trades > 0 {
			winRate[i] = float64(wins) / float64(trades)
		}
		tradeCount[i] = float64(trades)
		prevSignal = sig
	}

	log.Info().
		Int("trades", trades).
		Float64("total_return", totalReturn[n-1]).
		Float64("max_drawdown", runningMaxDD).
		Msg("backtest run complete")

	return t.WithColumns(
		[]string{"portfolio_value", "position", "trade_return", "total_return", "max_drawdown", "win_rate", "trade_count"},
		map[string]table.Column{
			"portfolio_value": portfolioValue,
			"position":        position,
			"trade_return":    tradeReturn,
			"total_return":    totalReturn,
			"max_drawdown":    maxDrawdown,
			"win_rate":        winRate,
			"trade_count":     tradeCount,
		},
	)
}
