package entity

import "encoding/json"

// AggregationRequest selects the source of one aggregation run.
type AggregationRequest struct {
	Identifier string `json:"identifier"`
	Mode       Mode   `json:"mode"`
}

// Snapshot is the read model of the chart store.
type Snapshot struct {
	Loading bool                      `json:"loading"`
	Charts  map[Field]json.RawMessage `json:"charts"`
}
