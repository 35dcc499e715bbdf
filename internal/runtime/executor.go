package runtime

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/tech4life-beyond/kivai/internal/adapter"
	"github.com/tech4life-beyond/kivai/internal/adapter/builtin"
	"github.com/tech4life-beyond/kivai/internal/audit"
	"github.com/tech4life-beyond/kivai/internal/device"
	"github.com/tech4life-beyond/kivai/internal/intent"
	"github.com/tech4life-beyond/kivai/internal/routing"
	"github.com/tech4life-beyond/kivai/internal/schema"
	"github.com/tech4life-beyond/kivai/internal/security"
)

// debugIntent is the reserved intent kept outside schema validation.
const debugIntent = "echo"

// Config controls per-invocation pipeline behaviour.
type Config struct {
	// Strict disables payload normalization; the caller must supply a
	// fully-formed canonical payload.
	Strict bool
}

// Logger is the logging interface used by the Executor.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Options configures an Executor. Zero-value fields fall back to the
// built-in defaults (reference adapters, virtual home devices, embedded
// schema, no-op audit sink).
type Options struct {
	Adapters  *adapter.Registry
	Devices   *device.Registry
	Validator *schema.Validator
	Audit     audit.Sink
	Logger    Logger
	GatewayID string
}

// Executor runs the intent execution pipeline.
//
// Registries and the compiled schema are fixed at construction and
// read-only afterwards, so one Executor serves concurrent requests.
type Executor struct {
	adapters  *adapter.Registry
	devices   *device.Registry
	validator *schema.Validator
	audit     audit.Sink
	logger    Logger
	gatewayID string
}

// NewExecutor creates an executor from the given options.
func NewExecutor(opts Options) (*Executor, error) {
	e := &Executor{
		adapters:  opts.Adapters,
		devices:   opts.Devices,
		validator: opts.Validator,
		audit:     opts.Audit,
		logger:    opts.Logger,
		gatewayID: opts.GatewayID,
	}
	if e.adapters == nil {
		e.adapters = builtin.DefaultRegistry()
	}
	if e.devices == nil {
		e.devices = device.DefaultRegistry()
	}
	if e.validator == nil {
		v, err := schema.NewValidator()
		if err != nil {
			return nil, fmt.Errorf("building schema validator: %w", err)
		}
		e.validator = v
	}
	if e.audit == nil {
		e.audit = audit.NopSink{}
	}
	if e.logger == nil {
		e.logger = noopLogger{}
	}
	if e.gatewayID == "" {
		e.gatewayID = adapter.DefaultGatewayID
	}
	return e, nil
}

// Execute runs the pipeline for one payload and always returns an ACK.
func (e *Executor) Execute(p intent.Payload, cfg Config) Ack {
	executionID := uuid.NewString()

	e.emit(executionID, "execute.start", map[string]any{
		"strict": cfg.Strict,
		"intent": p.Intent,
	})

	// Dev-mode normalization only. Normalize copies; the caller's payload
	// is never touched.
	if !cfg.Strict {
		p = intent.Normalize(p)
	}

	ack := newAck(p, executionID)

	ad := e.adapters.Resolve(p.Intent)
	if ad == nil {
		return e.fail(ack, CodeIntentUnsupported, fmt.Sprintf("Unsupported intent: %s", p.Intent))
	}

	caps, ok := declaredCapabilities(ad, p.Intent)
	if !ok {
		return e.fail(ack, CodeAdapterCapabilitiesMissing, "Adapter does not declare a capability contract")
	}

	// Authorization runs before schema validation so SCHEMA_INVALID cannot
	// mask a missing-auth failure. The adapter's declared baseline wins;
	// the static intent policy applies only when the adapter declares none.
	requiredRole := security.RequiredRoleForIntent(p.Intent)
	authData := map[string]any{"intent": p.Intent}
	if caps.RequiresAuth {
		requiredRole = security.Role(caps.RequiredRole)
		authData["required_role"] = caps.RequiredRole
	}
	decision := security.Authorize(p, requiredRole)
	authData["authorized"] = decision.Authorized
	if decision.ErrorCode != "" {
		authData["error_code"] = decision.ErrorCode
	}
	e.emit(executionID, "auth.evaluated", authData)
	if !decision.Authorized {
		code := decision.ErrorCode
		if code == "" {
			code = security.CodeAuthRequired
		}
		return e.fail(ack, code, "Authorization failed")
	}

	// Echo is kept outside schema validation; every other intent must pass.
	if p.Intent != debugIntent {
		valid, message := e.validator.Validate(p)
		e.emit(executionID, "schema.validated", map[string]any{"ok": valid})
		if !valid {
			return e.fail(ack, CodeSchemaInvalid, message)
		}
	}

	if match := routing.Route(p, e.devices); match != nil {
		ack.applyRoute(match)
		e.emit(executionID, "route.resolved", map[string]any{
			"device_id":    ack.Route.DeviceID,
			"zone":         ack.Route.Zone,
			"capabilities": ack.Route.Capabilities,
			"reason":       ack.Route.Reason,
		})
	}

	// A routed device must satisfy the adapter's capability set. Without a
	// route the check is skipped and the adapter executes blind.
	if ack.Route != nil && !caps.SatisfiedBy(ack.Route.Capabilities) {
		return e.fail(ack, CodeAdapterCapabilityMismatch,
			"Adapter capability requirements not satisfied by routed device")
	}

	execCtx := adapter.Context{GatewayID: e.gatewayID, RequestID: executionID}
	if p.Meta != nil {
		execCtx.UserID = p.Meta.UserID
	}
	res := adapter.NormalizeOutput(ad.Execute(p, execCtx))
	if !res.OK {
		return e.fail(ack, res.Err.Code, res.Err.Message)
	}

	ack.Status = StatusOK
	ack.Result = res.Data
	if ack.Result == nil {
		ack.Result = map[string]any{}
	}
	e.emit(executionID, "execute.end", map[string]any{"status": string(StatusOK)})
	e.logger.Debug("intent executed", "execution_id", executionID, "intent", p.Intent)
	return ack
}

// fail flips the ACK to failed with a single error, closes the audit
// trail, and returns it. Every stage failure funnels through here.
func (e *Executor) fail(ack Ack, code, message string) Ack {
	ack.Status = StatusFailed
	ack.Error = &AckError{Code: code, Message: message}
	e.emit(ack.ExecutionID, "execute.end", map[string]any{"status": string(StatusFailed)})
	e.logger.Debug("intent failed",
		"execution_id", ack.ExecutionID,
		"intent", ack.Intent,
		"code", code,
	)
	return ack
}

func (e *Executor) emit(executionID, name string, data map[string]any) {
	e.audit.Emit(audit.NewEvent(executionID, name, data))
}

// declaredCapabilities returns the adapter's capability declaration when
// it is valid and matches the adapter's own intent name.
func declaredCapabilities(ad adapter.Adapter, intentName string) (adapter.Capabilities, bool) {
	caps := ad.Capabilities()
	if caps.Validate() != nil || caps.Intent != intentName {
		return adapter.Capabilities{}, false
	}
	return caps, true
}
