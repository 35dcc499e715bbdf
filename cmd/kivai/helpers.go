package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tech4life-beyond/kivai/internal/audit"
	"github.com/tech4life-beyond/kivai/internal/device"
	"github.com/tech4life-beyond/kivai/internal/infrastructure/config"
	"github.com/tech4life-beyond/kivai/internal/infrastructure/database"
	"github.com/tech4life-beyond/kivai/internal/infrastructure/influxdb"
	"github.com/tech4life-beyond/kivai/internal/infrastructure/logging"
	"github.com/tech4life-beyond/kivai/internal/infrastructure/mqtt"
	"github.com/tech4life-beyond/kivai/internal/intent"
	"github.com/tech4life-beyond/kivai/internal/runtime"
)

// loadConfig resolves the configuration in order: --config flag,
// KIVAI_CONFIG environment variable, the default path if it exists,
// otherwise built-in defaults.
func loadConfig() (*config.Config, error) {
	path := configPathFlag
	if path == "" {
		path = os.Getenv("KIVAI_CONFIG")
	}
	if path != "" {
		return config.Load(path)
	}
	if _, err := os.Stat(defaultConfigPath); err == nil {
		return config.Load(defaultConfigPath)
	}
	return config.Default(), nil
}

// readPayload reads an intent payload from a JSON file, or from stdin
// when the path is "-".
func readPayload(path string) (intent.Payload, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return intent.Payload{}, fmt.Errorf("reading payload: %w", err)
	}

	var p intent.Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return intent.Payload{}, fmt.Errorf("parsing payload: %w", err)
	}
	return p, nil
}

// printAck writes an ACK to stdout as indented JSON.
func printAck(ack runtime.Ack) error {
	out, err := json.MarshalIndent(ack, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding ack: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// buildDeviceRegistry creates the device registry from configuration,
// falling back to the built-in virtual home when none is declared.
func buildDeviceRegistry(cfg *config.Config) *device.Registry {
	if len(cfg.Devices) == 0 {
		return device.DefaultRegistry()
	}

	reg := device.NewRegistry()
	for _, d := range cfg.Devices {
		caps := make([]device.Capability, 0, len(d.Capabilities))
		for _, c := range d.Capabilities {
			caps = append(caps, device.Capability(c))
		}
		reg.Upsert(device.Device{ID: d.ID, Zone: d.Zone, Capabilities: caps})
	}
	return reg
}

// buildAuditSink assembles the configured audit backends into a single
// sink. The returned cleanup function closes any backend connections
// and must be called on shutdown.
func buildAuditSink(ctx context.Context, cfg *config.Config, log *logging.Logger) (audit.Sink, func(), error) {
	var sinks audit.MultiSink
	var cleanups []func()

	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	for _, backend := range cfg.Audit.Backends {
		switch backend {
		case "log":
			sinks = append(sinks, audit.NewLogSink(log))

		case "sqlite":
			db, err := database.Open(ctx, cfg.Audit.SQLite)
			if err != nil {
				cleanup()
				return nil, nil, fmt.Errorf("opening audit database: %w", err)
			}
			cleanups = append(cleanups, func() {
				if closeErr := db.Close(); closeErr != nil {
					log.Error("error closing audit database", "error", closeErr)
				}
			})

			sink, err := audit.NewSQLiteSink(db.DB, log)
			if err != nil {
				cleanup()
				return nil, nil, fmt.Errorf("creating sqlite audit sink: %w", err)
			}
			sinks = append(sinks, sink)
			log.Info("sqlite audit sink enabled", "path", db.Path())

		case "mqtt":
			client, err := mqtt.Connect(cfg.Audit.MQTT)
			if err != nil {
				cleanup()
				return nil, nil, fmt.Errorf("connecting to MQTT: %w", err)
			}
			cleanups = append(cleanups, func() {
				if closeErr := client.Close(); closeErr != nil {
					log.Error("error closing MQTT", "error", closeErr)
				}
			})
			sinks = append(sinks, audit.NewMQTTSink(client, byte(cfg.Audit.MQTT.QoS), log))
			log.Info("mqtt audit sink enabled",
				"broker", fmt.Sprintf("%s:%d", cfg.Audit.MQTT.Broker.Host, cfg.Audit.MQTT.Broker.Port),
			)

		case "influxdb":
			client, err := influxdb.Connect(cfg.Audit.InfluxDB, log)
			if err != nil {
				cleanup()
				return nil, nil, fmt.Errorf("connecting to InfluxDB: %w", err)
			}
			cleanups = append(cleanups, func() {
				if closeErr := client.Close(); closeErr != nil {
					log.Error("error closing InfluxDB", "error", closeErr)
				}
			})
			sinks = append(sinks, audit.NewInfluxSink(client))
			log.Info("influxdb audit sink enabled", "url", cfg.Audit.InfluxDB.URL)
		}
	}

	switch len(sinks) {
	case 0:
		return audit.NopSink{}, cleanup, nil
	case 1:
		return sinks[0], cleanup, nil
	default:
		return sinks, cleanup, nil
	}
}

// buildExecutor wires an executor from configuration.
func buildExecutor(ctx context.Context, cfg *config.Config, log *logging.Logger) (*runtime.Executor, func(), error) {
	sink, cleanup, err := buildAuditSink(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}

	exec, err := runtime.NewExecutor(runtime.Options{
		Devices:   buildDeviceRegistry(cfg),
		Audit:     sink,
		Logger:    log,
		GatewayID: cfg.Execution.GatewayID,
	})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("building executor: %w", err)
	}
	return exec, cleanup, nil
}
