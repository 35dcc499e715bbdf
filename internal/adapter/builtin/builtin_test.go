package builtin

import (
	"testing"

	"github.com/tech4life-beyond/kivai/internal/adapter"
	"github.com/tech4life-beyond/kivai/internal/intent"
)

func execCtx() adapter.Context {
	return adapter.Context{GatewayID: "test-gateway", RequestID: "req-1"}
}

func TestEcho_Execute(t *testing.T) {
	p := intent.Payload{
		Intent: "echo",
		Params: map[string]any{"message": "hello"},
	}

	out := Echo{}.Execute(p, execCtx())
	res := adapter.NormalizeOutput(out)
	if !res.OK {
		t.Fatalf("Execute() failed: %+v", res.Err)
	}
	if res.Data["echo"] != "hello" {
		t.Errorf("echo = %v, want %q", res.Data["echo"], "hello")
	}
	if res.Data["gateway_id"] != "test-gateway" {
		t.Errorf("gateway_id = %v, want %q", res.Data["gateway_id"], "test-gateway")
	}
}

func TestEcho_MissingMessage(t *testing.T) {
	p := intent.Payload{Intent: "echo", Params: map[string]any{}}

	res := adapter.NormalizeOutput(Echo{}.Execute(p, execCtx()))
	if !res.OK {
		t.Fatalf("Execute() failed: %+v", res.Err)
	}
	if res.Data["echo"] != "" {
		t.Errorf("echo = %v, want empty string for missing message", res.Data["echo"])
	}
}

func TestSetTemperature_Execute(t *testing.T) {
	tests := []struct {
		name      string
		params    map[string]any
		wantOK    bool
		wantValue float64
		wantUnit  string
	}{
		{
			name:      "float value default unit",
			params:    map[string]any{"value": 21.5},
			wantOK:    true,
			wantValue: 21.5,
			wantUnit:  "C",
		},
		{
			name:      "int value explicit unit",
			params:    map[string]any{"value": 70, "unit": "F"},
			wantOK:    true,
			wantValue: 70,
			wantUnit:  "F",
		},
		{
			name:   "missing value",
			params: map[string]any{},
			wantOK: false,
		},
		{
			name:   "string value",
			params: map[string]any{"value": "warm"},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := intent.Payload{Intent: "set_temperature", Params: tt.params}
			res := adapter.NormalizeOutput(SetTemperature{}.Execute(p, execCtx()))

			if res.OK != tt.wantOK {
				t.Fatalf("OK = %v, want %v (%+v)", res.OK, tt.wantOK, res.Err)
			}
			if !tt.wantOK {
				if res.Err.Code != adapter.CodeBadRequest {
					t.Errorf("Err.Code = %q, want %q", res.Err.Code, adapter.CodeBadRequest)
				}
				return
			}
			if res.Data["value"] != tt.wantValue {
				t.Errorf("value = %v, want %v", res.Data["value"], tt.wantValue)
			}
			if res.Data["unit"] != tt.wantUnit {
				t.Errorf("unit = %v, want %q", res.Data["unit"], tt.wantUnit)
			}
			if res.Data["action"] != "set_temperature" {
				t.Errorf("action = %v, want %q", res.Data["action"], "set_temperature")
			}
		})
	}
}

func TestPlayMusic_Execute(t *testing.T) {
	t.Run("explicit query", func(t *testing.T) {
		p := intent.Payload{Intent: "play_music", Params: map[string]any{"query": "jazz"}}
		res := adapter.NormalizeOutput(PlayMusic{}.Execute(p, execCtx()))
		if !res.OK {
			t.Fatalf("Execute() failed: %+v", res.Err)
		}
		if res.Data["query"] != "jazz" {
			t.Errorf("query = %v, want %q", res.Data["query"], "jazz")
		}
	})

	t.Run("default playlist", func(t *testing.T) {
		p := intent.Payload{Intent: "play_music", Params: map[string]any{}}
		res := adapter.NormalizeOutput(PlayMusic{}.Execute(p, execCtx()))
		if !res.OK {
			t.Fatalf("Execute() failed: %+v", res.Err)
		}
		if res.Data["query"] != "default_playlist" {
			t.Errorf("query = %v, want %q", res.Data["query"], "default_playlist")
		}
	})

	t.Run("non-string query", func(t *testing.T) {
		p := intent.Payload{Intent: "play_music", Params: map[string]any{"query": 7}}
		res := adapter.NormalizeOutput(PlayMusic{}.Execute(p, execCtx()))
		if res.OK {
			t.Fatal("Execute() succeeded, want BAD_REQUEST")
		}
		if res.Err.Code != adapter.CodeBadRequest {
			t.Errorf("Err.Code = %q, want %q", res.Err.Code, adapter.CodeBadRequest)
		}
	})
}

func TestUnlockDoor_Capabilities(t *testing.T) {
	caps := UnlockDoor{}.Capabilities()

	if err := caps.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if !caps.RequiresAuth || caps.RequiredRole != "owner" {
		t.Errorf("Capabilities() = %+v, want owner auth baseline", caps)
	}
	if !caps.SatisfiedBy([]string{"lock"}) {
		t.Error("lock capability does not satisfy declaration")
	}
}

func TestDefaultRegistry(t *testing.T) {
	reg := DefaultRegistry()

	if reg.Intents() != 4 {
		t.Fatalf("Intents() = %d, want 4", reg.Intents())
	}
	for _, name := range []string{"echo", "set_temperature", "play_music", "unlock_door"} {
		ad := reg.Resolve(name)
		if ad == nil {
			t.Errorf("Resolve(%q) = nil, want adapter", name)
			continue
		}
		caps := ad.Capabilities()
		if err := caps.Validate(); err != nil {
			t.Errorf("%s capabilities invalid: %v", name, err)
		}
		if caps.Intent != name {
			t.Errorf("%s declares intent %q", name, caps.Intent)
		}
	}
}
