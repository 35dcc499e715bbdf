package audit

import "time"

// PointWriter is the minimal time-series surface the sink needs.
// Satisfied by influxdb.Client from the infrastructure layer.
type PointWriter interface {
	WriteAuditEvent(executionID, event string, data map[string]any, ts time.Time)
}

// InfluxSink records audit events as time-series points, which makes the
// execution trail queryable alongside other operational metrics.
type InfluxSink struct {
	writer PointWriter
}

// NewInfluxSink creates a sink writing through the given point writer.
func NewInfluxSink(writer PointWriter) *InfluxSink {
	return &InfluxSink{writer: writer}
}

// Emit implements Sink. Writes are batched and asynchronous; failures are
// handled by the influx client's error callback.
func (s *InfluxSink) Emit(evt Event) {
	ts, err := time.Parse(time.RFC3339, evt.Timestamp)
	if err != nil {
		ts = time.Now().UTC()
	}
	s.writer.WriteAuditEvent(evt.ExecutionID, evt.Event, evt.Data, ts)
}
