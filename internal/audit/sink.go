package audit

// Sink receives audit events from the execution pipeline.
//
// Emit is fire-and-forget: implementations swallow their own failures
// (logging them if they can) and must never panic.
type Sink interface {
	Emit(evt Event)
}

// NopSink discards every event. It is the default sink.
type NopSink struct{}

// Emit implements Sink.
func (NopSink) Emit(Event) {}

// Logger is the minimal logging interface sinks use to report their own
// failures. Compatible with logging.Logger and slog.Logger.
type Logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
}

// LogSink writes events to the structured logger.
type LogSink struct {
	logger Logger
}

// NewLogSink creates a sink that emits events at info level.
func NewLogSink(logger Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Emit implements Sink.
func (s *LogSink) Emit(evt Event) {
	s.logger.Info("audit event",
		"execution_id", evt.ExecutionID,
		"event", evt.Event,
		"data", evt.Data,
	)
}

// MultiSink fans one event out to several sinks in order.
type MultiSink []Sink

// Emit implements Sink.
func (m MultiSink) Emit(evt Event) {
	for _, s := range m {
		s.Emit(evt)
	}
}
