package adapter

import (
	"testing"

	"github.com/tech4life-beyond/kivai/internal/intent"
)

func TestNormalizeOutput(t *testing.T) {
	t.Run("result passes through", func(t *testing.T) {
		in := Failure(CodeBadRequest, "params.value must be a number", nil)
		out := NormalizeOutput(in)
		if out.OK || out.Err.Code != CodeBadRequest {
			t.Errorf("NormalizeOutput() = %+v, want pass-through", out)
		}
	})

	t.Run("map with ok false becomes failure", func(t *testing.T) {
		out := NormalizeOutput(map[string]any{
			"ok": false,
			"error": map[string]any{
				"code":    "DEVICE_OFFLINE",
				"message": "device unreachable",
			},
		})
		if out.OK {
			t.Fatal("OK = true, want failure")
		}
		if out.Err.Code != "DEVICE_OFFLINE" {
			t.Errorf("Err.Code = %q, want %q", out.Err.Code, "DEVICE_OFFLINE")
		}
		if out.Err.Message != "device unreachable" {
			t.Errorf("Err.Message = %q, want %q", out.Err.Message, "device unreachable")
		}
	})

	t.Run("ok false without error object gets defaults", func(t *testing.T) {
		out := NormalizeOutput(map[string]any{"ok": false})
		if out.OK {
			t.Fatal("OK = true, want failure")
		}
		if out.Err.Code != CodeAdapterError {
			t.Errorf("Err.Code = %q, want %q", out.Err.Code, CodeAdapterError)
		}
		if out.Err.Message != "Adapter execution failed" {
			t.Errorf("Err.Message = %q, want default message", out.Err.Message)
		}
	})

	t.Run("plain map becomes success data", func(t *testing.T) {
		out := NormalizeOutput(map[string]any{"echo": "hi"})
		if !out.OK {
			t.Fatal("OK = false, want success")
		}
		if out.Data["echo"] != "hi" {
			t.Errorf("Data = %v, want map kept wholesale", out.Data)
		}
	})

	t.Run("map with ok true stays success", func(t *testing.T) {
		out := NormalizeOutput(map[string]any{"ok": true, "action": "play_music"})
		if !out.OK {
			t.Fatal("OK = false, want success")
		}
		if out.Data["action"] != "play_music" {
			t.Errorf("Data = %v, want full map", out.Data)
		}
	})

	t.Run("unsupported type is invalid result", func(t *testing.T) {
		for _, raw := range []any{nil, "string", 42, []any{"x"}} {
			out := NormalizeOutput(raw)
			if out.OK {
				t.Fatalf("NormalizeOutput(%v) succeeded, want failure", raw)
			}
			if out.Err.Code != CodeAdapterInvalidResult {
				t.Errorf("NormalizeOutput(%v) code = %q, want %q", raw, out.Err.Code, CodeAdapterInvalidResult)
			}
		}
	})
}

// stubAdapter is a minimal Adapter for registry tests.
type stubAdapter struct {
	intent string
	result map[string]any
}

func (s stubAdapter) Intent() string             { return s.intent }
func (s stubAdapter) Capabilities() Capabilities { return NewCapabilities(s.intent, nil) }
func (s stubAdapter) Execute(_ intent.Payload, _ Context) any {
	return s.result
}

func TestRegistry_Replace(t *testing.T) {
	reg := NewRegistry()
	first := stubAdapter{intent: "echo", result: map[string]any{"v": 1}}
	second := stubAdapter{intent: "echo", result: map[string]any{"v": 2}}

	reg.Register(first)
	reg.Register(second)

	if reg.Intents() != 1 {
		t.Fatalf("Intents() = %d, want 1", reg.Intents())
	}
	got := reg.Resolve("echo")
	if got == nil {
		t.Fatal("Resolve() = nil, want adapter")
	}
	out := got.Execute(intent.Payload{Intent: "echo"}, Context{})
	if m, ok := out.(map[string]any); !ok || m["v"] != 2 {
		t.Errorf("Execute() = %v, want later registration to win", out)
	}
}

func TestRegistry_ResolveEmptyIntent(t *testing.T) {
	reg := NewRegistry()
	reg.Register(stubAdapter{intent: "echo"})

	if got := reg.Resolve(""); got != nil {
		t.Errorf("Resolve(\"\") = %v, want nil", got)
	}
	if got := reg.Resolve("unknown"); got != nil {
		t.Errorf("Resolve(unknown) = %v, want nil", got)
	}
}
