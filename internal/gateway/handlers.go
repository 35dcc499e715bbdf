package gateway

import (
	"encoding/json"
	"net/http"

	"github.com/tech4life-beyond/kivai/internal/intent"
	"github.com/tech4life-beyond/kivai/internal/runtime"
)

// healthResponse reports gateway liveness.
type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// validateResponse reports the outcome of schema validation.
type validateResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Service: "kivai-gateway",
		Version: s.version,
	})
}

// handleValidate checks a payload against the intent schema without
// executing it. Validation failures are reported as 400 with the
// failure message so clients can correct the payload.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var p intent.Payload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeBadRequest(w, "invalid JSON payload")
		return
	}

	ok, message := s.validator.Validate(p)
	status := http.StatusOK
	if !ok {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, validateResponse{OK: ok, Message: message})
}

// handleExecute runs a payload through the execution pipeline and
// returns the ACK. Execution failures are still well-formed ACKs, so
// they are returned with 200; only transport errors map to 4xx.
func (s *Server) handleExecute(w http.ResponseWriter, r *http.Request) {
	var p intent.Payload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeBadRequest(w, "invalid JSON payload")
		return
	}

	ack := s.executor.Execute(p, runtime.Config{Strict: s.execCfg.Strict})
	writeJSON(w, http.StatusOK, ack)
}
