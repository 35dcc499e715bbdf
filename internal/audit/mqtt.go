package audit

import (
	"encoding/json"
	"fmt"
)

// Publisher is the minimal MQTT surface the sink needs.
// Satisfied by mqtt.Client from the infrastructure layer.
type Publisher interface {
	Publish(topic string, payload []byte, qos byte, retained bool) error
}

// auditTopicPrefix is the base for audit event topics:
// kivai/audit/{event_name}.
const auditTopicPrefix = "kivai/audit"

// MQTTSink publishes audit events to the broker so external collectors can
// subscribe to the trail without touching the runtime.
type MQTTSink struct {
	pub    Publisher
	qos    byte
	logger Logger
}

// NewMQTTSink creates a sink publishing events at the given QoS.
func NewMQTTSink(pub Publisher, qos byte, logger Logger) *MQTTSink {
	return &MQTTSink{pub: pub, qos: qos, logger: logger}
}

// Emit implements Sink. Publish failures are logged, never surfaced.
func (s *MQTTSink) Emit(evt Event) {
	payload, err := json.Marshal(evt)
	if err != nil {
		s.logger.Error("marshalling audit event", "error", err)
		return
	}

	topic := fmt.Sprintf("%s/%s", auditTopicPrefix, evt.Event)
	if err := s.pub.Publish(topic, payload, s.qos, false); err != nil {
		s.logger.Error("publishing audit event", "error", err, "topic", topic)
	}
}
