package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure for the Kivai runtime.
// All configuration is loaded from YAML and can be overridden by
// environment variables.
type Config struct {
	Gateway   GatewayConfig   `yaml:"gateway"`
	Execution ExecutionConfig `yaml:"execution"`
	Devices   []DeviceConfig  `yaml:"devices"`
	Audit     AuditConfig     `yaml:"audit"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// GatewayConfig contains HTTP gateway server settings.
type GatewayConfig struct {
	Host     string        `yaml:"host"`
	Port     int           `yaml:"port"`
	Timeouts TimeoutConfig `yaml:"timeouts"`
}

// TimeoutConfig contains HTTP timeout settings in seconds.
type TimeoutConfig struct {
	Read  int `yaml:"read"`
	Write int `yaml:"write"`
	Idle  int `yaml:"idle"`
}

// ExecutionConfig contains pipeline behaviour settings.
type ExecutionConfig struct {
	// Strict disables payload normalization (canonical payloads required).
	Strict bool `yaml:"strict"`

	// GatewayID identifies this gateway in adapter results and audit data.
	GatewayID string `yaml:"gateway_id"`
}

// DeviceConfig declares one device for the registry. An empty device list
// falls back to the built-in virtual home.
type DeviceConfig struct {
	ID           string   `yaml:"id"`
	Zone         string   `yaml:"zone"`
	Capabilities []string `yaml:"capabilities"`
}

// AuditConfig selects audit backends and their settings.
type AuditConfig struct {
	// Backends lists enabled sinks: "log", "sqlite", "mqtt", "influxdb".
	// An empty list means no audit trail (no-op sink).
	Backends []string `yaml:"backends"`

	SQLite   SQLiteConfig   `yaml:"sqlite"`
	MQTT     MQTTConfig     `yaml:"mqtt"`
	InfluxDB InfluxDBConfig `yaml:"influxdb"`
}

// SQLiteConfig contains SQLite settings for the audit trail database.
type SQLiteConfig struct {
	Path        string `yaml:"path"`
	WALMode     bool   `yaml:"wal_mode"`
	BusyTimeout int    `yaml:"busy_timeout"`
}

// MQTTConfig contains MQTT broker connection settings.
type MQTTConfig struct {
	Broker    MQTTBrokerConfig    `yaml:"broker"`
	Auth      MQTTAuthConfig      `yaml:"auth"`
	QoS       int                 `yaml:"qos"`
	Reconnect MQTTReconnectConfig `yaml:"reconnect"`
}

// MQTTBrokerConfig contains MQTT broker connection details.
type MQTTBrokerConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	TLS      bool   `yaml:"tls"`
	ClientID string `yaml:"client_id"`
}

// MQTTAuthConfig contains MQTT authentication credentials.
type MQTTAuthConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// MQTTReconnectConfig contains MQTT reconnection settings in seconds.
type MQTTReconnectConfig struct {
	InitialDelay int `yaml:"initial_delay"`
	MaxDelay     int `yaml:"max_delay"`
}

// InfluxDBConfig contains InfluxDB connection settings.
type InfluxDBConfig struct {
	URL           string `yaml:"url"`
	Token         string `yaml:"token"`
	Org           string `yaml:"org"`
	Bucket        string `yaml:"bucket"`
	BatchSize     int    `yaml:"batch_size"`
	FlushInterval int    `yaml:"flush_interval"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// Load reads configuration from a YAML file and applies environment
// variable overrides.
//
// The loading order is:
//  1. Default values (hardcoded)
//  2. YAML file values (override defaults)
//  3. Environment variables (override file values)
//
// Environment variables follow the pattern KIVAI_SECTION_KEY, e.g.
// KIVAI_GATEWAY_HOST, KIVAI_AUDIT_SQLITE_PATH.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns a Config with sensible development defaults.
func Default() *Config {
	return &Config{
		Gateway: GatewayConfig{
			Host: "127.0.0.1",
			Port: 8080,
			Timeouts: TimeoutConfig{
				Read:  30,
				Write: 30,
				Idle:  60,
			},
		},
		Execution: ExecutionConfig{
			Strict:    false,
			GatewayID: "local-gateway",
		},
		Audit: AuditConfig{
			Backends: []string{"log"},
			SQLite: SQLiteConfig{
				Path:        "./data/kivai-audit.db",
				WALMode:     true,
				BusyTimeout: 5,
			},
			MQTT: MQTTConfig{
				Broker: MQTTBrokerConfig{
					Host:     "localhost",
					Port:     1883,
					ClientID: "kivai-gateway",
				},
				QoS: 1,
				Reconnect: MQTTReconnectConfig{
					InitialDelay: 1,
					MaxDelay:     60,
				},
			},
			InfluxDB: InfluxDBConfig{
				BatchSize:     100,
				FlushInterval: 10,
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
	}
}

// applyEnvOverrides applies environment variable overrides to the
// configuration. Only settings that change between deployments without a
// config file edit are overridable.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("KIVAI_GATEWAY_HOST"); v != "" {
		cfg.Gateway.Host = v
	}
	if v := os.Getenv("KIVAI_AUDIT_SQLITE_PATH"); v != "" {
		cfg.Audit.SQLite.Path = v
	}
	if v := os.Getenv("KIVAI_MQTT_HOST"); v != "" {
		cfg.Audit.MQTT.Broker.Host = v
	}
	if v := os.Getenv("KIVAI_MQTT_USERNAME"); v != "" {
		cfg.Audit.MQTT.Auth.Username = v
	}
	if v := os.Getenv("KIVAI_MQTT_PASSWORD"); v != "" {
		cfg.Audit.MQTT.Auth.Password = v
	}
	if v := os.Getenv("KIVAI_INFLUXDB_TOKEN"); v != "" {
		cfg.Audit.InfluxDB.Token = v
	}
}

// knownBackends is the set of valid audit backend names.
var knownBackends = map[string]bool{
	"log":      true,
	"sqlite":   true,
	"mqtt":     true,
	"influxdb": true,
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []string

	if c.Gateway.Port < 1 || c.Gateway.Port > 65535 {
		errs = append(errs, "gateway.port must be between 1 and 65535")
	}

	for _, b := range c.Audit.Backends {
		if !knownBackends[b] {
			errs = append(errs, fmt.Sprintf("audit.backends: unknown backend %q", b))
		}
	}
	if c.Audit.MQTT.QoS < 0 || c.Audit.MQTT.QoS > 2 {
		errs = append(errs, "audit.mqtt.qos must be 0, 1, or 2")
	}

	for i, d := range c.Devices {
		if d.ID == "" {
			errs = append(errs, fmt.Sprintf("devices[%d].id is required", i))
		}
		if d.Zone == "" {
			errs = append(errs, fmt.Sprintf("devices[%d].zone is required", i))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}

// GetReadTimeout returns the gateway read timeout as a Duration.
func (c *Config) GetReadTimeout() time.Duration {
	return time.Duration(c.Gateway.Timeouts.Read) * time.Second
}

// GetWriteTimeout returns the gateway write timeout as a Duration.
func (c *Config) GetWriteTimeout() time.Duration {
	return time.Duration(c.Gateway.Timeouts.Write) * time.Second
}

// GetIdleTimeout returns the gateway idle timeout as a Duration.
func (c *Config) GetIdleTimeout() time.Duration {
	return time.Duration(c.Gateway.Timeouts.Idle) * time.Second
}
