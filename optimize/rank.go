package optimize

import "github.com/kieranhollis/quantcore/table"

func rowAt(t *table.Table, i int) map[string]float64 {
	row := make(map[string]float64, len(t.Names()))
	for _, name := range t.Names() {
		col := t.MustColumn(name)
		row[name] = col[i]
	}
	return row
}

// FindBestParams returns the row of results maximizing metric, ties
// broken by first occurrence in row order. It returns (nil, false) when
// results is nil, empty, or doesn't carry metric.
func FindBestParams(results *table.Table, metric string) (map[string]float64, bool) {
	if results == nil || results.Rows() == 0 {
		return nil, false
	}
	col, ok := results.Column(metric)
	if !ok {
		return nil, false
	}

	bestIdx := -1
	var bestVal float64
	for i, v := range col {
		if !table.Finite(v) {
			continue
		}
		if bestIdx == -1 || v > bestVal {
			bestVal = v
			bestIdx = i
		}
	}
	if bestIdx == -1 {
		return nil, false
	}
	return rowAt(results, bestIdx), true
}
