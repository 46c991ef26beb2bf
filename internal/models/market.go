package models

// MarketSnapshot is a point-in-time set of market figures for one ticker.
// It is recomputed for every matched post and never cached. Numeric fields
// are pointers because upstream data can be partially unavailable; a nil
// field means "absent", not zero.
type MarketSnapshot struct {
	Company       string
	PreviousClose *float64
	CurrentPrice  *float64
	PercentChange *float64
}

// ComputePercentChange returns (current-prev)/prev*100, or nil when either
// input is absent or the previous close is zero.
func ComputePercentChange(prev, current *float64) *float64 {
	if prev == nil || current == nil || *prev == 0 {
		return nil
	}
	pc := (*current - *prev) / *prev * 100
	return &pc
}

// Float64Ptr returns a pointer to v. Convenience for building snapshots.
func Float64Ptr(v float64) *float64 {
	return &v
}
