package adapter

// Error codes for adapter-sourced failures.
const (
	// CodeAdapterError is the default code when an adapter reports failure
	// without one.
	CodeAdapterError = "ADAPTER_ERROR"

	// CodeAdapterInvalidResult marks an adapter return value the runtime
	// cannot interpret.
	CodeAdapterInvalidResult = "ADAPTER_INVALID_RESULT"

	// CodeBadRequest marks shallow parameter validation failures inside
	// reference adapters.
	CodeBadRequest = "BAD_REQUEST"
)

// Error describes an adapter execution failure.
type Error struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// Result is the structured outcome of an adapter execution. Exactly one of
// Data or Err is meaningful, selected by OK.
type Result struct {
	OK   bool
	Data map[string]any
	Err  *Error
}

// Success builds a successful result carrying data.
func Success(data map[string]any) Result {
	return Result{OK: true, Data: data}
}

// Failure builds a failed result with a stable code and a human-readable
// message.
func Failure(code, message string, details map[string]any) Result {
	return Result{OK: false, Err: &Error{Code: code, Message: message, Details: details}}
}

// NormalizeOutput converts a raw adapter return value into a Result.
//
// Rules, in order:
//   - a Result is kept as-is
//   - a map with ok == false converts its error sub-object into a failure
//     (code defaults to ADAPTER_ERROR, message to a generic failure string)
//   - any other map is treated wholesale as success data
//   - anything else fails with ADAPTER_INVALID_RESULT
func NormalizeOutput(raw any) Result {
	switch out := raw.(type) {
	case Result:
		return out
	case map[string]any:
		if ok, present := out["ok"].(bool); present && !ok {
			errObj, _ := out["error"].(map[string]any)
			code, _ := errObj["code"].(string)
			if code == "" {
				code = CodeAdapterError
			}
			message, _ := errObj["message"].(string)
			if message == "" {
				message = "Adapter execution failed"
			}
			details, _ := errObj["details"].(map[string]any)
			return Failure(code, message, details)
		}
		return Success(out)
	default:
		return Failure(CodeAdapterInvalidResult, "Adapter returned unsupported result type", nil)
	}
}
