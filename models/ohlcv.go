// Package models provides the shared candle representation that feeds
// the table-based indicator, strategy, and backtest pipeline.
package models

import (
	"time"

	"github.com/kieranhollis/quantcore/table"
)

// OHLCV represents a single candlestick of price data.
// OHLCV stands for Open, High, Low, Close, Volume.
type OHLCV struct {
	// Timestamp is the start time of the candlestick period.
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
	// Symbol is the ticker symbol (e.g., "AAPL", "BTC-USD").
	Symbol string `json:"symbol" db:"symbol"`
	// Open is the opening price for the period.
	Open float64 `json:"open" db:"open"`
	// High is the highest price during the period.
	High float64 `json:"high" db:"high"`
	// Low is the lowest price during the period.
	Low float64 `json:"low" db:"low"`
	// Close is the closing price for the period.
	Close float64 `json:"close" db:"close"`
	// Volume is the trading volume during the period.
	Volume float64 `json:"volume" db:"volume"`
}

// ToTable converts an ordered slice of candles into the columnar form the
// indicator, strategy, and backtest packages operate on. Timestamp is
// carried as Unix seconds, since Column is strictly float64; Symbol
// doesn't survive the conversion since it's assumed constant across the
// series being converted.
func ToTable(candles []OHLCV) (*table.Table, error) {
	n := len(candles)
	timestamp := make([]float64, n)
	open := make([]float64, n)
	high := make([]float64, n)
	low := make([]float64, n)
	closePrice := make([]float64, n)
	volume := make([]float64, n)

	for i, c := range candles {
		timestamp[i] = float64(c.Timestamp.Unix())
		open[i] = c.Open
		high[i] = c.High
		low[i] = c.Low
		closePrice[i] = c.Close
		volume[i] = c.Volume
	}

	return table.New(
		[]string{"timestamp", "open", "high", "low", "close", "volume"},
		map[string][]float64{
			"timestamp": timestamp,
			"open":      open,
			"high":      high,
			"low":       low,
			"close":     closePrice,
			"volume":    volume,
		},
	)
}
