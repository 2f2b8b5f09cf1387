package backtest

import (
	"math"

	"github.com/kieranhollis/quantcore/table"
	"gonum.org/v1/gonum/stat"
)

// Metrics is one row of the optimizer's result schema: the final-row
// backtest aggregates plus risk-adjusted metrics derived from the
// portfolio-value return series. Every ratio is 0.0 when its denominator
// is non-positive or not finite, per the numerical-degeneracy policy —
// never an error.
type Metrics struct {
	TotalReturn      float64
	AnnualizedReturn float64
	SharpeRatio      float64
	SortinoRatio     float64
	CalmarRatio      float64
	MaxDrawdown      float64
	WinRate          float64
	TradeCount       int
	Volatility       float64
}

func safeRatio(numerator, denominator float64) float64 {
	if denominator <= 0 || !table.Finite(denominator) {
		return 0
	}
	return numerator / denominator
}

func portfolioReturns(values table.Column) []float64 {
	if len(values) < 2 {
		return nil
	}
	returns := make([]float64, 0, len(values)-1)
	for i := 1; i < len(values); i++ {
		prev := values[i-1]
		if prev == 0 {
			continue
		}
		returns = append(returns, (values[i]-prev)/prev)
	}
	return returns
}

func downsideDeviation(returns []float64) float64 {
	var negatives []float64
	for _, r := range returns {
		if r < 0 {
			negatives = append(negatives, r)
		}
	}
	if len(negatives) < 2 {
		return 0
	}
	return stat.StdDev(negatives, nil)
}

// ExtractMetrics reads the final row of a backtest-run table's columns
// and derives volatility, Sharpe, Sortino, and Calmar from the
// portfolio-value return series.
func ExtractMetrics(t *table.Table) (Metrics, error) {
	portfolioValue, ok := t.Column("portfolio_value")
	if !ok {
		return Metrics{}, columnMissingError("portfolio_value")
	}
	totalReturnCol, ok := t.Column("total_return")
	if !ok {
		return Metrics{}, columnMissingError("total_return")
	}
	maxDrawdownCol, ok := t.Column("max_drawdown")
	if !ok {
		return Metrics{}, columnMissingError("max_drawdown")
	}
	winRateCol, ok := t.Column("win_rate")
	if !ok {
		return Metrics{}, columnMissingError("win_rate")
	}
	tradeCountCol, ok := t.Column("trade_count")
	if !ok {
		return Metrics{}, columnMissingError("trade_count")
	}
	if t.Rows() == 0 {
		return Metrics{}, ErrInsufficientData
	}

	last := t.Rows() - 1
	totalReturn := totalReturnCol[last]
	maxDrawdown := maxDrawdownCol[last]

	returns := portfolioReturns(portfolioValue)
	var volatility float64
	if len(returns) >= 2 {
		volatility = stat.StdDev(returns, nil)
	}

	m := Metrics{
		TotalReturn:  totalReturn,
		MaxDrawdown:  maxDrawdown,
		WinRate:      winRateCol[last],
		TradeCount:   int(tradeCountCol[last]),
		Volatility:   volatility,
		SharpeRatio:  safeRatio(totalReturn, volatility),
		SortinoRatio: safeRatio(totalReturn, downsideDeviation(returns)),
		CalmarRatio:  safeRatio(totalReturn, maxDrawdown),
	}

	if n := t.Rows(); n > 0 && table.Finite(totalReturn) {
		years := float64(n) / 252.0
		if years > 0 {
			base := 1 + totalReturn
			if base > 0 {
				m.AnnualizedReturn = math.Pow(base, 1/years) - 1
			}
		}
	}

	return m, nil
}
