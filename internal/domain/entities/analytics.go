package entities

// DailySeries is a fixed-length per-day view of order volume and paid
// revenue. The three slices are index-aligned; charting clients rely on
// the length matching the requested window exactly.
type DailySeries struct {
	Dates       []string  `json:"dates"`
	OrderCounts []int     `json:"order_counts"`
	Revenue     []float64 `json:"revenue"`
}

// MethodMix is the percentage split of orders by payment method
type MethodMix struct {
	Mobile float64 `json:"mobile"`
	Card   float64 `json:"card"`
	Bank   float64 `json:"bank"`
}

// StatusMix is the percentage split of orders by lifecycle status
type StatusMix struct {
	Paid    float64 `json:"paid"`
	Pending float64 `json:"pending"`
	Failed  float64 `json:"failed"`
}
