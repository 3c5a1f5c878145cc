package models

// BackendCall is one upstream round trip, recorded best-effort for
// diagnostics. Bodies are never stored, only shape metadata.
type BackendCall struct {
	RequestID  string `bson:"request_id" json:"request_id"`
	Method     string `bson:"method" json:"method"`
	Path       string `bson:"path" json:"path"`
	StatusCode int    `bson:"status_code" json:"status_code"`
	DurationMS int64  `bson:"duration_ms" json:"duration_ms"`
	Failed     bool   `bson:"failed" json:"failed"`
	OccurredAt string `bson:"occurred_at" json:"occurred_at"`
}
