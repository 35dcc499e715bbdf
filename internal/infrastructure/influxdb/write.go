package influxdb

import (
	"encoding/json"
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// WriteAuditEvent records one audit event as a time-series point.
//
// The write is non-blocking; points are batched and sent asynchronously.
// Event data is stored as a JSON field so the full trail is recoverable
// from the bucket.
func (c *Client) WriteAuditEvent(executionID, event string, data map[string]any, ts time.Time) {
	if !c.IsConnected() {
		return
	}

	fields := map[string]interface{}{
		"count": 1,
	}
	if len(data) > 0 {
		if b, err := json.Marshal(data); err == nil {
			fields["data"] = string(b)
		}
	}

	point := write.NewPoint(
		"audit_events",
		map[string]string{
			"execution_id": executionID,
			"event":        event,
		},
		fields,
		ts,
	)

	c.writeAPI.WritePoint(point)
}
