package backtest

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kieranhollis/quantcore/table"
)

// Report renders a completed backtest run as human-readable or JSON text.
type Report struct {
	StrategyKind string
	Config       Config
	Metrics      Metrics
}

// NewReport builds a Report from a backtest-run table's final-row metrics.
func NewReport(t *table.Table, strategyKind string, cfg Config) (*Report, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}
	m, err := ExtractMetrics(t)
	if err != nil {
		return nil, err
	}
	return &Report{StrategyKind: strategyKind, Config: cfg, Metrics: m}, nil
}

// Summary returns a fixed-width text summary of the run.
func (r *Report) Summary() string {
	var sb strings.Builder

	sb.WriteString("═══════════════════════════════════════════════════════════════\n")
	sb.WriteString(fmt.Sprintf("                    BACKTEST REPORT: %s\n", r.StrategyKind))
	sb.WriteString("═══════════════════════════════════════════════════════════════\n\n")

	sb.WriteString("CONFIGURATION\n")
	sb.WriteString("───────────────────────────────────────────────────────────────\n")
	sb.WriteString(fmt.Sprintf("  Initial Capital: $%.2f\n", r.Config.InitialCapital))
	sb.WriteString(fmt.Sprintf("  Commission:      %.3f%%\n", r.Config.Commission*100))
	sb.WriteString(fmt.Sprintf("  Slippage:        %.3f%%\n", r.Config.Slippage*100))
	sb.WriteString(fmt.Sprintf("  Price Column:    %s\n", r.Config.PriceCol))
	sb.WriteString("\n")

	m := r.Metrics
	sb.WriteString("PERFORMANCE METRICS\n")
	sb.WriteString("───────────────────────────────────────────────────────────────\n")
	sb.WriteString(fmt.Sprintf("  Total Return:      %+.2f%%\n", m.TotalReturn*100))
	sb.WriteString(fmt.Sprintf("  Annualized Return: %+.2f%%\n", m.AnnualizedReturn*100))
	sb.WriteString(fmt.Sprintf("  Volatility:        %.4f\n", m.Volatility))
	sb.WriteString(fmt.Sprintf("  Sharpe Ratio:      %.2f\n", m.SharpeRatio))
	sb.WriteString(fmt.Sprintf("  Sortino Ratio:     %.2f\n", m.SortinoRatio))
	sb.WriteString(fmt.Sprintf("  Calmar Ratio:      %.2f\n", m.CalmarRatio))
	sb.WriteString(fmt.Sprintf("  Max Drawdown:      -%.2f%%\n", m.MaxDrawdown*100))
	sb.WriteString("\n")

	sb.WriteString("TRADE STATISTICS\n")
	sb.WriteString("───────────────────────────────────────────────────────────────\n")
	sb.WriteString(fmt.Sprintf("  Total Trades:    %d\n", m.TradeCount))
	sb.WriteString(fmt.Sprintf("  Win Rate:        %.1f%%\n", m.WinRate*100))
	sb.WriteString("\n")
	sb.WriteString("═══════════════════════════════════════════════════════════════\n")

	return sb.String()
}

// JSON returns the metrics as indented JSON.
func (r *Report) JSON() ([]byte, error) {
	return json.MarshalIndent(r.Metrics, "", "  ")
}
