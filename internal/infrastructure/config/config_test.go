package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfigFile(t, "{}\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Gateway.Host != "127.0.0.1" {
		t.Errorf("Gateway.Host = %q, want default", cfg.Gateway.Host)
	}
	if cfg.Gateway.Port != 8080 {
		t.Errorf("Gateway.Port = %d, want 8080", cfg.Gateway.Port)
	}
	if cfg.Execution.Strict {
		t.Error("Execution.Strict = true, want false default")
	}
	if cfg.Execution.GatewayID != "local-gateway" {
		t.Errorf("Execution.GatewayID = %q, want default", cfg.Execution.GatewayID)
	}
	if len(cfg.Audit.Backends) != 1 || cfg.Audit.Backends[0] != "log" {
		t.Errorf("Audit.Backends = %v, want [log]", cfg.Audit.Backends)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v, want info/json defaults", cfg.Logging)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
gateway:
  host: 0.0.0.0
  port: 9090
execution:
  strict: true
  gateway_id: test-gw
devices:
  - id: light-kitchen-01
    zone: kitchen
    capabilities: [light_control]
audit:
  backends: [log, sqlite]
logging:
  level: debug
  format: text
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Gateway.Host != "0.0.0.0" || cfg.Gateway.Port != 9090 {
		t.Errorf("Gateway = %+v", cfg.Gateway)
	}
	if !cfg.Execution.Strict || cfg.Execution.GatewayID != "test-gw" {
		t.Errorf("Execution = %+v", cfg.Execution)
	}
	if len(cfg.Devices) != 1 || cfg.Devices[0].ID != "light-kitchen-01" {
		t.Errorf("Devices = %+v", cfg.Devices)
	}
	if len(cfg.Audit.Backends) != 2 {
		t.Errorf("Audit.Backends = %v, want [log sqlite]", cfg.Audit.Backends)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "text" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfigFile(t, `
gateway:
  host: 10.0.0.1
`)

	t.Setenv("KIVAI_GATEWAY_HOST", "192.168.1.5")
	t.Setenv("KIVAI_MQTT_USERNAME", "env-user")
	t.Setenv("KIVAI_MQTT_PASSWORD", "env-pass")
	t.Setenv("KIVAI_INFLUXDB_TOKEN", "env-token")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Gateway.Host != "192.168.1.5" {
		t.Errorf("Gateway.Host = %q, want env to override file", cfg.Gateway.Host)
	}
	if cfg.Audit.MQTT.Auth.Username != "env-user" || cfg.Audit.MQTT.Auth.Password != "env-pass" {
		t.Errorf("MQTT auth = %+v, want env values", cfg.Audit.MQTT.Auth)
	}
	if cfg.Audit.InfluxDB.Token != "env-token" {
		t.Errorf("InfluxDB.Token = %q, want env value", cfg.Audit.InfluxDB.Token)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("Load() = nil error, want failure for missing file")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Gateway.Port = 0 },
			wantErr: "gateway.port",
		},
		{
			name:    "unknown audit backend",
			mutate:  func(c *Config) { c.Audit.Backends = []string{"carrier_pigeon"} },
			wantErr: "unknown backend",
		},
		{
			name:    "invalid qos",
			mutate:  func(c *Config) { c.Audit.MQTT.QoS = 3 },
			wantErr: "qos",
		},
		{
			name: "device without id",
			mutate: func(c *Config) {
				c.Devices = []DeviceConfig{{Zone: "kitchen"}}
			},
			wantErr: "devices[0].id",
		},
		{
			name: "device without zone",
			mutate: func(c *Config) {
				c.Devices = []DeviceConfig{{ID: "dev-1"}}
			},
			wantErr: "devices[0].zone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_TimeoutAccessors(t *testing.T) {
	cfg := Default()

	if cfg.GetReadTimeout().Seconds() != 30 {
		t.Errorf("GetReadTimeout() = %v, want 30s", cfg.GetReadTimeout())
	}
	if cfg.GetIdleTimeout().Seconds() != 60 {
		t.Errorf("GetIdleTimeout() = %v, want 60s", cfg.GetIdleTimeout())
	}
}
