package timesheet

import "extratime/models"

// TotalHours sums the billable hours of every record. Order does not matter
// beyond floating-point rounding. An empty slice totals zero.
func (c Calculator) TotalHours(records []models.OvertimeRecord) (float64, error) {
	var total float64
	for _, r := range records {
		hours, err := c.RecordHours(r)
		if err != nil {
			return 0, err
		}
		total += hours
	}
	return total, nil
}

// TotalValue prices the summed hours of the whole collection.
func (c Calculator) TotalValue(records []models.OvertimeRecord) (float64, error) {
	hours, err := c.TotalHours(records)
	if err != nil {
		return 0, err
	}
	return c.Value(hours), nil
}

// Group is the rollup for one grouping key.
type Group struct {
	Hours float64 `json:"hours"`
	Value float64 `json:"value"`
	Count int     `json:"count"`
}

// GroupBy partitions records by the given key and totals each partition.
// Keys that match no record do not appear in the result; an empty input
// yields an empty (non-nil) map.
func GroupBy[K comparable](c Calculator, records []models.OvertimeRecord, key func(models.OvertimeRecord) K) (map[K]Group, error) {
	groups := make(map[K]Group)
	for _, r := range records {
		hours, err := c.RecordHours(r)
		if err != nil {
			return nil, err
		}
		g := groups[key(r)]
		g.Hours += hours
		g.Count++
		groups[key(r)] = g
	}
	// Price each group once at the end so the group value always equals
	// group hours times the rate, independent of accumulation order.
	for k, g := range groups {
		g.Value = c.Value(g.Hours)
		groups[k] = g
	}
	return groups, nil
}
