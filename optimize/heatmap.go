package optimize

import "github.com/kieranhollis/quantcore/table"

// ParameterHeatmap pivots results into a 2D table with one row per
// distinct (x, y) pair, in first-seen order, with metric averaged across
// every row sharing that pair.
func ParameterHeatmap(results *table.Table, x, y, metric string) (*table.Table, error) {
	xCol, ok := results.Column(x)
	if !ok {
		return nil, columnMissingError(x)
	}
	yCol, ok := results.Column(y)
	if !ok {
		return nil, columnMissingError(y)
	}
	mCol, ok := results.Column(metric)
	if !ok {
		return nil, columnMissingError(metric)
	}

	type cell struct{ x, y float64 }
	sums := make(map[cell]float64)
	counts := make(map[cell]int)
	var order []cell

	for i := 0; i < results.Rows(); i++ {
		c := cell{xCol[i], yCol[i]}
		if _, seen := sums[c]; !seen {
			order = append(order, c)
		}
		sums[c] += mCol[i]
		counts[c]++
	}

	xs := make([]float64, len(order))
	ys := make([]float64, len(order))
	avgs := make([]float64, len(order))
	for i, c := range order {
		xs[i] = c.x
		ys[i] = c.y
		avgs[i] = sums[c] / float64(counts[c])
	}

	return table.New([]string{x, y, metric}, map[string][]float64{x: xs, y: ys, metric: avgs})
}
