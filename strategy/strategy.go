// Package strategy composes indicator columns into discrete trading
// signals. A Strategy is a closed tagged variant (Kind plus the fields
// that kind uses); GenerateSignals dispatches on Kind with a flat switch,
// applies the strategy's required indicators, and emits the signal triple
// (signal, signal_strength, signal_reason) described by each kind's own
// logic.
package strategy

import "github.com/kieranhollis/quantcore/table"

// Kind identifies one of the closed set of strategy variants. Kinds are
// data, not behavior — GenerateSignals is the single dispatch point.
type Kind string

const (
	KindSmaCross       Kind = "sma_cross"
	KindEmaCross       Kind = "ema_cross"
	KindMacdCross      Kind = "macd_cross"
	KindRsiThreshold   Kind = "rsi_threshold"
	KindComposite      Kind = "composite"
	KindBollingerBands Kind = "bollinger_bands" // reserved, not implemented
)

// CompositeLogic selects how a Composite strategy aggregates its
// children's signals into one row-wise signal.
type CompositeLogic string

const (
	LogicAll      CompositeLogic = "all"
	LogicAny      CompositeLogic = "any"
	LogicMajority CompositeLogic = "majority"
	LogicWeighted CompositeLogic = "weighted"
)

// Strategy is a plain, independently constructible, cheaply copyable
// descriptor. Only the fields relevant to Kind are read by
// GenerateSignals; the rest are zero.
type Strategy struct {
	Kind     Kind
	PriceCol string

	// SmaCross / EmaCross
	Fast int
	Slow int

	// MacdCross
	Signal int

	// RsiThreshold
	Period     int
	Oversold   float64
	Overbought float64

	// Composite
	Children  []Strategy
	Logic     CompositeLogic
	Weights   []float64
	Threshold float64
}

// SmaCross builds an SMA-crossover descriptor.
func SmaCross(fast, slow int, priceCol string) Strategy {
	return Strategy{Kind: KindSmaCross, PriceCol: priceCol, Fast: fast, Slow: slow}
}

// EmaCross builds an EMA-crossover descriptor.
func EmaCross(fast, slow int, priceCol string) Strategy {
	return Strategy{Kind: KindEmaCross, PriceCol: priceCol, Fast: fast, Slow: slow}
}

// MacdCross builds a MACD-crossover descriptor.
func MacdCross(fast, slow, signal int, priceCol string) Strategy {
	return Strategy{Kind: KindMacdCross, PriceCol: priceCol, Fast: fast, Slow: slow, Signal: signal}
}

// RsiThreshold builds an RSI-threshold descriptor. oversold/overbought
// default to 30/70 when both are left at zero.
func RsiThreshold(period int, oversold, overbought float64, priceCol string) Strategy {
	return Strategy{
		Kind: KindRsiThreshold, PriceCol: priceCol, Period: period,
		Oversold: oversold, Overbought: overbought,
	}
}

// Composite builds a composite descriptor combining children under logic.
// A nil or empty weights slice selects equal weighting (1/n each) for the
// weighted logic.
func Composite(children []Strategy, logic CompositeLogic, weights []float64) Strategy {
	return Strategy{Kind: KindComposite, Children: children, Logic: logic, Weights: weights}
}

// ParameterSpec describes one configurable field of a strategy kind, for
// UIs and the optimizer's parameter grid to introspect.
type ParameterSpec struct {
	Name        string
	Default     interface{}
	Min         interface{}
	Max         interface{}
	Description string
}

// ParametersFor returns the configurable parameter specs for a strategy
// kind. BollingerBands and Composite (whose parameters are the children
// themselves) return an empty slice.
func ParametersFor(kind Kind) []ParameterSpec {
	switch kind {
	case KindSmaCross, KindEmaCross:
		return []ParameterSpec{
			{Name: "fast", Default: 10, Min: 2, Max: 100, Description: "fast moving-average period"},
			{Name: "slow", Default: 20, Min: 5, Max: 400, Description: "slow moving-average period"},
		}
	case KindMacdCross:
		return []ParameterSpec{
			{Name: "fast", Default: 12, Min: 2, Max: 100, Description: "MACD fast EMA period"},
			{Name: "slow", Default: 26, Min: 5, Max: 400, Description: "MACD slow EMA period"},
			{Name: "signal", Default: 9, Min: 2, Max: 100, Description: "MACD signal EMA period"},
		}
	case KindRsiThreshold:
		return []ParameterSpec{
			{Name: "period", Default: 14, Min: 2, Max: 100, Description: "RSI lookback period"},
			{Name: "oversold", Default: 30.0, Min: 0.0, Max: 50.0, Description: "oversold threshold"},
			{Name: "overbought", Default: 70.0, Min: 50.0, Max: 100.0, Description: "overbought threshold"},
		}
	default:
		return nil
	}
}

// AvailableKinds lists every strategy kind GenerateSignals can dispatch,
// in declaration order. BollingerBands is listed for forward reference
// but is not implemented — GenerateSignals rejects it.
func AvailableKinds() []Kind {
	return []Kind{KindSmaCross, KindEmaCross, KindMacdCross, KindRsiThreshold, KindComposite, KindBollingerBands}
}

// GenerateSignals validates the table, applies the strategy's required
// indicators, and emits the (signal, signal_strength, signal_reason)
// triple described by the strategy's kind.
func GenerateSignals(t *table.Table, s Strategy) (SignalResult, error) {
	if err := validateTable(t, s); err != nil {
		return SignalResult{}, err
	}

	switch s.Kind {
	case KindSmaCross, KindEmaCross:
		return generateCrossoverSignals(t, s)
	case KindMacdCross:
		return generateMacdSignals(t, s)
	case KindRsiThreshold:
		return generateRsiSignals(t, s)
	case KindComposite:
		return generateCompositeSignals(t, s)
	case KindBollingerBands:
		return SignalResult{}, ErrUnsupportedStrategy
	default:
		return SignalResult{}, ErrUnsupportedStrategy
	}
}
