package strategy

import (
	"fmt"
	"math"

	"github.com/kieranhollis/quantcore/table"
)

type childRun struct {
	kind     Kind
	signal   table.Column
	strength table.Column
}

func runChildren(t *table.Table, children []Strategy) ([]childRun, error) {
	runs := make([]childRun, len(children))
	for i, child := range children {
		res, err := GenerateSignals(t, child)
		if err != nil {
			return nil, childFailedError(i, child.Kind, err)
		}
		signal, ok := res.Table.Column("signal")
		if !ok {
			return nil, missingColumnError("signal")
		}
		strength, ok := res.Table.Column("signal_strength")
		if !ok {
			return nil, missingColumnError("signal_strength")
		}
		runs[i] = childRun{kind: child.Kind, signal: signal, strength: strength}
	}
	return runs, nil
}

func equalWeights(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1.0 / float64(n)
	}
	return w
}

// generateCompositeSignals runs every child strategy independently and
// fuses their per-row signal/strength columns under the composite's
// logic, per spec §4.5.
func generateCompositeSignals(t *table.Table, s Strategy) (SignalResult, error) {
	if len(s.Children) == 0 {
		return SignalResult{}, fmt.Errorf("%w: composite has no children", ErrUnsupportedStrategy)
	}

	runs, err := runChildren(t, s.Children)
	if err != nil {
		return SignalResult{}, err
	}

	n := t.Rows()
	signal := make([]float64, n)
	strength := make([]float64, n)
	reasons := make([]string, n)

	weights := s.Weights
	if len(weights) == 0 {
		weights = equalWeights(len(runs))
	}

	for i := 0; i < n; i++ {
		switch s.Logic {
		case LogicAll:
			signal[i], strength[i] = compositeAll(runs, i)
		case LogicAny:
			signal[i], strength[i] = compositeAny(runs, i)
		case LogicMajority:
			signal[i], strength[i] = compositeMajority(runs, i)
		default:
			signal[i], strength[i] = compositeWeighted(runs, weights, i)
		}
		reasons[i] = fmt.Sprintf("composite_%s", s.Logic)
	}

	return buildResult(t, signal, strength, reasons)
}

func compositeAll(runs []childRun, row int) (float64, float64) {
	first := runs[0].signal[row]
	if first == 0 {
		return 0, 0
	}
	sum := 0.0
	for _, r := range runs {
		if r.signal[row] != first {
			return 0, 0
		}
		sum += r.strength[row]
	}
	return first, sum / float64(len(runs))
}

func compositeAny(runs []childRun, row int) (float64, float64) {
	bestIdx := -1
	best := -1.0
	for i, r := range runs {
		if r.signal[row] == 0 {
			continue
		}
		if r.strength[row] > best {
			best = r.strength[row]
			bestIdx = i
		}
	}
	if bestIdx == -1 {
		return 0, 0
	}
	return runs[bestIdx].signal[row], runs[bestIdx].strength[row]
}

func compositeMajority(runs []childRun, row int) (float64, float64) {
	votes := map[float64]int{}
	strengthSum := map[float64]float64{}
	for _, r := range runs {
		v := r.signal[row]
		votes[v]++
		strengthSum[v] += r.strength[row]
	}
	n := len(runs)
	for _, v := range []float64{1, -1} {
		if votes[v] > n/2 {
			return v, strengthSum[v] / float64(votes[v])
		}
	}
	return 0, 0
}

func compositeWeighted(runs []childRun, weights []float64, row int) (float64, float64) {
	score := 0.0
	sumW := 0.0
	for i, r := range runs {
		w := weights[i]
		score += r.signal[row] * r.strength[row] * w
		sumW += w
	}
	switch {
	case score > 0.1:
		return 1, math.Min(score/sumW, 1.0)
	case score < -0.1:
		return -1, math.Min(-score/sumW, 1.0)
	default:
		return 0, 0
	}
}
