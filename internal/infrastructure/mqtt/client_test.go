package mqtt

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/tech4life-beyond/kivai/internal/infrastructure/config"
)

func TestClient_PublishValidation(t *testing.T) {
	c := &Client{}

	t.Run("empty topic", func(t *testing.T) {
		err := c.Publish("", []byte("x"), 1, false)
		if !errors.Is(err, ErrInvalidTopic) {
			t.Errorf("Publish() error = %v, want ErrInvalidTopic", err)
		}
	})

	t.Run("invalid qos", func(t *testing.T) {
		err := c.Publish("kivai/audit/execute.start", []byte("x"), 3, false)
		if !errors.Is(err, ErrInvalidQoS) {
			t.Errorf("Publish() error = %v, want ErrInvalidQoS", err)
		}
	})

	t.Run("oversized payload", func(t *testing.T) {
		big := make([]byte, maxPayloadSize+1)
		err := c.Publish("kivai/audit/execute.start", big, 1, false)
		if !errors.Is(err, ErrPublishFailed) {
			t.Errorf("Publish() error = %v, want ErrPublishFailed", err)
		}
	})

	t.Run("not connected", func(t *testing.T) {
		err := c.Publish("kivai/audit/execute.start", []byte("x"), 1, false)
		if !errors.Is(err, ErrNotConnected) {
			t.Errorf("Publish() error = %v, want ErrNotConnected", err)
		}
	})
}

func TestStatusPayloads(t *testing.T) {
	tests := []struct {
		name       string
		payload    string
		wantStatus string
	}{
		{"online", buildOnlinePayload("kivai-gateway"), "online"},
		{"offline", buildOfflinePayload("kivai-gateway"), "offline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var doc map[string]any
			if err := json.Unmarshal([]byte(tt.payload), &doc); err != nil {
				t.Fatalf("payload is not valid JSON: %v", err)
			}
			if doc["status"] != tt.wantStatus {
				t.Errorf("status = %v, want %q", doc["status"], tt.wantStatus)
			}
			if doc["client_id"] != "kivai-gateway" {
				t.Errorf("client_id = %v, want %q", doc["client_id"], "kivai-gateway")
			}
			if doc["timestamp"] == "" {
				t.Error("timestamp missing")
			}
		})
	}
}

func TestBuildClientOptions(t *testing.T) {
	cfg := config.MQTTConfig{
		Broker: config.MQTTBrokerConfig{Host: "broker.local", Port: 1883, ClientID: "kivai-test"},
		Auth:   config.MQTTAuthConfig{Username: "user", Password: "pass"},
		QoS:    1,
		Reconnect: config.MQTTReconnectConfig{
			InitialDelay: 1,
			MaxDelay:     60,
		},
	}

	opts := buildClientOptions(cfg)

	if len(opts.Servers) != 1 {
		t.Fatalf("Servers = %v, want one broker", opts.Servers)
	}
	if got := opts.Servers[0].String(); got != "tcp://broker.local:1883" {
		t.Errorf("broker URL = %q, want tcp scheme", got)
	}
	if opts.ClientID != "kivai-test" {
		t.Errorf("ClientID = %q", opts.ClientID)
	}
	if opts.Username != "user" {
		t.Errorf("Username = %q", opts.Username)
	}
	if !opts.AutoReconnect {
		t.Error("AutoReconnect = false, want true")
	}
}

func TestBuildClientOptions_TLS(t *testing.T) {
	cfg := config.MQTTConfig{
		Broker: config.MQTTBrokerConfig{Host: "broker.local", Port: 8883, TLS: true, ClientID: "kivai-test"},
	}

	opts := buildClientOptions(cfg)

	if len(opts.Servers) != 1 || !strings.HasPrefix(opts.Servers[0].String(), "ssl://") {
		t.Errorf("broker URL = %v, want ssl scheme", opts.Servers)
	}
	if opts.TLSConfig == nil {
		t.Error("TLSConfig = nil, want configured")
	}
}
