package telemetry

import "time"

// Data is the root structure stored in persistence.
type Data struct {
	Version   string     `json:"version"`
	Aggregate Aggregated `json:"aggregate"`
}

// Aggregated holds counters broken down by various dimensions. Only
// operation names, counts, durations and error kinds are recorded;
// operand values never leave the engine.
type Aggregated struct {
	Total       OpCounts            `json:"total"`
	ByOperation map[string]OpCounts `json:"by_operation"`
	ByError     map[string]int64    `json:"by_error"`
	BySession   map[string]OpCounts `json:"by_session"`
}

// OpCounts accumulates call counts and time spent for one dimension.
type OpCounts struct {
	Calls       int64 `json:"calls"`
	Errors      int64 `json:"errors"`
	TotalMicros int64 `json:"total_micros"`
}

// Add folds one observed operation into the counters.
func (oc *OpCounts) Add(took time.Duration, failed bool) {
	oc.Calls++
	if failed {
		oc.Errors++
	}
	oc.TotalMicros += took.Microseconds()
}
